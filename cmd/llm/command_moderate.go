package main

import (
	"fmt"
	"sort"

	"github.com/picatz/llmsdk"
	"github.com/spf13/cobra"
)

var moderateCommand = &cobra.Command{
	Use:   "moderate <text>",
	Short: "Check text against the content policy",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.CreateModeration(cmd.Context(), llmsdk.NewCreateModerationRequest(args[0]))
		if err != nil {
			return err
		}

		for _, result := range resp.Results {
			if result.Flagged {
				fmt.Println(styleBold.Render("flagged"))
			} else {
				fmt.Println("not flagged")
			}

			categories := make([]string, 0, len(result.Categories))
			for category := range result.Categories {
				categories = append(categories, category)
			}
			sort.Strings(categories)

			for _, category := range categories {
				if result.Categories[category] {
					fmt.Printf("- %s (%.4f)\n", category, result.CategoryScores[category])
				}
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(moderateCommand)
}
