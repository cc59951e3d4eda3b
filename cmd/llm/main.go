package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/picatz/llmsdk"
)

var (
	apiKey  = os.Getenv("OPENAI_API_KEY")
	model   = os.Getenv("OPENAI_MODEL")
	baseURL = os.Getenv("OPENAI_BASE_URL")

	client *llmsdk.Client
)

func init() {
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "OPENAI_API_KEY environment variable is not set")
		os.Exit(1)
	}

	if model == "" {
		model = llmsdk.ModelDefaultChat
	}

	opts := []llmsdk.ClientOption{}
	if baseURL != "" {
		opts = append(opts, llmsdk.WithBaseURL(baseURL))
	}

	client = llmsdk.NewClient(apiKey, opts...)
}

func main() {
	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}
