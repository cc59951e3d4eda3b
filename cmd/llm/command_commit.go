package main

import (
	"fmt"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/picatz/llmsdk"
	"github.com/spf13/cobra"
)

var commitCommand = &cobra.Command{
	Use:   "commit",
	Short: "Draft a commit message for the staged changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := git.PlainOpenWithOptions(".", &git.PlainOpenOptions{
			DetectDotGit: true,
		})
		if err != nil {
			return fmt.Errorf("failed to open git repository: %w", err)
		}

		worktree, err := repo.Worktree()
		if err != nil {
			return fmt.Errorf("failed to get worktree: %w", err)
		}

		status, err := worktree.Status()
		if err != nil {
			return fmt.Errorf("failed to get worktree status: %w", err)
		}

		var staged strings.Builder
		for path, fileStatus := range status {
			if fileStatus.Staging == git.Unmodified || fileStatus.Staging == git.Untracked {
				continue
			}
			staged.WriteString(fmt.Sprintf("%c %s\n", fileStatus.Staging, path))
		}

		if staged.Len() == 0 {
			return fmt.Errorf("no staged changes to describe")
		}

		resp, err := client.ChatCompletion(cmd.Context(), llmsdk.NewChatCompletionRequest(
			llmsdk.SystemMessage(strings.Join([]string{
				"You write git commit messages.",
				"Given a summary of staged changes, write a single conventional commit message:",
				"a short imperative subject line, optionally followed by a blank line and a brief body.",
				"Output only the commit message.",
			}, " "), ""),
			llmsdk.UserMessage(staged.String(), ""),
		).WithModel(model))
		if err != nil {
			return err
		}

		if len(resp.Choices) == 0 {
			return fmt.Errorf("no commit message generated")
		}

		fmt.Println(strings.TrimSpace(resp.Choices[0].Message.Content))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(commitCommand)
}
