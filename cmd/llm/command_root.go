package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "llm",
	Short: "Chat, embed, transcribe, and generate with OpenAI-compatible APIs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return chatCommand.RunE(cmd, args)
	},
}
