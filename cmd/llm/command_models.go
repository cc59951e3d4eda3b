package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var modelsCommand = &cobra.Command{
	Use:   "models",
	Short: "List the models available through the API",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.ListModels(cmd.Context())
		if err != nil {
			return err
		}

		for _, m := range resp.Data {
			fmt.Println(styleBold.Render(m.ID) + " " + styleFaint.Render(m.OwnedBy))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(modelsCommand)
}
