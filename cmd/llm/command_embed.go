package main

import (
	"encoding/json"
	"fmt"

	"github.com/picatz/llmsdk"
	"github.com/spf13/cobra"
)

var embedCommand = &cobra.Command{
	Use:   "embed <text>...",
	Short: "Embed text into vectors",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		model := cmd.Flag("model").Value.String()

		req := llmsdk.NewEmbeddingArrayRequest(args...).WithModel(model)

		if dims, err := cmd.Flags().GetInt("dimensions"); err == nil && dims > 0 {
			req.WithDimensions(dims)
		}

		resp, err := client.CreateEmbedding(cmd.Context(), req)
		if err != nil {
			return err
		}

		for _, data := range resp.Data {
			b, err := json.Marshal(data.Embedding)
			if err != nil {
				return err
			}
			fmt.Println(string(b))
		}

		fmt.Println(styleFaint.Render(fmt.Sprintf("tokens used: %d", resp.Usage.TotalTokens)))

		return nil
	},
}

func init() {
	embedCommand.Flags().String("model", llmsdk.ModelDefaultEmbedding, "model to use")
	embedCommand.Flags().Int("dimensions", 0, "output embedding dimensions (text-embedding-3 models only)")

	rootCmd.AddCommand(embedCommand)
}
