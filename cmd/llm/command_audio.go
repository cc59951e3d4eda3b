package main

import (
	"fmt"
	"os"

	"github.com/picatz/llmsdk"
	"github.com/spf13/cobra"
)

var transcribeCommand = &cobra.Command{
	Use:   "transcribe <file>",
	Short: "Transcribe an audio file into text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		audio, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read audio file: %w", err)
		}

		req := llmsdk.NewTranscriptionRequest(audio).WithFilename(args[0])

		if language := cmd.Flag("language").Value.String(); language != "" {
			req.WithLanguage(language)
		}

		resp, err := client.CreateTranscription(cmd.Context(), req)
		if err != nil {
			return err
		}

		fmt.Println(resp.Text)

		return nil
	},
}

var translateCommand = &cobra.Command{
	Use:   "translate <file>",
	Short: "Translate an audio file into English text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		audio, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read audio file: %w", err)
		}

		resp, err := client.CreateTranslation(cmd.Context(), llmsdk.NewTranslationRequest(audio).
			WithFilename(args[0]))
		if err != nil {
			return err
		}

		fmt.Println(resp.Text)

		return nil
	},
}

var speakCommand = &cobra.Command{
	Use:   "speak <text>",
	Short: "Generate speech audio from text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		voice := cmd.Flag("voice").Value.String()
		out := cmd.Flag("output").Value.String()

		audio, err := client.CreateSpeech(cmd.Context(), llmsdk.NewSpeechRequest(args[0]).
			WithVoice(llmsdk.SpeechVoice(voice)))
		if err != nil {
			return err
		}

		if err := os.WriteFile(out, audio, 0o644); err != nil {
			return fmt.Errorf("failed to write audio file: %w", err)
		}

		fmt.Println(styleFaint.Render(fmt.Sprintf("wrote %d bytes to %s", len(audio), out)))

		return nil
	},
}

func init() {
	transcribeCommand.Flags().String("language", "", "input audio language (ISO-639-1)")

	speakCommand.Flags().String("voice", string(llmsdk.SpeechVoiceNova), "voice to use")
	speakCommand.Flags().StringP("output", "o", "speech.mp3", "output file path")

	rootCmd.AddCommand(
		transcribeCommand,
		translateCommand,
		speakCommand,
	)
}
