package llmsdk_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/picatz/llmsdk"
	"github.com/shoenig/test/must"
)

func TestCreateTranscription(t *testing.T) {
	audio := []byte("fake audio bytes")

	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		must.Eq(t, "/audio/transcriptions", r.URL.Path)
		must.NoError(t, r.ParseMultipartForm(1<<20))

		file, header, err := r.FormFile("file")
		must.NoError(t, err)
		defer file.Close()
		must.Eq(t, "speech.mp3", header.Filename)

		must.Eq(t, "whisper-1", r.FormValue("model"))
		must.Eq(t, "en", r.FormValue("language"))
		must.Eq(t, "json", r.FormValue("response_format"))
		must.Eq(t, "0.5", r.FormValue("temperature"))

		fmt.Fprint(w, `{"text":"Hello, world."}`)
	})

	resp, err := client.CreateTranscription(t.Context(), llmsdk.NewTranscriptionRequest(audio).
		WithFilename("speech.mp3").
		WithLanguage("en").
		WithTemperature(0.5))
	must.NoError(t, err)
	must.Eq(t, "Hello, world.", resp.Text)
}

func TestCreateTranscriptionTextFormat(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		must.NoError(t, r.ParseMultipartForm(1<<20))
		must.Eq(t, "text", r.FormValue("response_format"))

		// Plain text formats return the transcript verbatim, not JSON.
		fmt.Fprint(w, "Hello, world.\n")
	})

	resp, err := client.CreateTranscription(t.Context(), llmsdk.NewTranscriptionRequest([]byte("audio")).
		WithResponseFormat(llmsdk.AudioResponseFormatText))
	must.NoError(t, err)
	must.Eq(t, "Hello, world.\n", resp.Text)
}

func TestCreateTranslation(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		must.Eq(t, "/audio/translations", r.URL.Path)
		must.NoError(t, r.ParseMultipartForm(1<<20))

		must.Eq(t, "whisper-1", r.FormValue("model"))

		// Translation output is always English; the form never carries
		// a language part.
		_, ok := r.MultipartForm.Value["language"]
		must.False(t, ok)

		fmt.Fprint(w, `{"text":"Hello, how are you?"}`)
	})

	resp, err := client.CreateTranslation(t.Context(), llmsdk.NewTranslationRequest([]byte("audio")).
		WithPrompt("Casual greeting."))
	must.NoError(t, err)
	must.Eq(t, "Hello, how are you?", resp.Text)
}

func TestCreateSpeech(t *testing.T) {
	audio := []byte{0xFF, 0xFB, 0x90, 0x00} // mp3 frame header

	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		must.Eq(t, "/audio/speech", r.URL.Path)

		var req llmsdk.SpeechRequest
		must.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		must.Eq(t, llmsdk.ModelTTS1, req.Model)
		must.Eq(t, "Hello, world.", req.Input)
		must.Eq(t, llmsdk.SpeechVoiceOnyx, req.Voice)
		must.Eq(t, llmsdk.SpeechFormatMP3, req.ResponseFormat)

		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write(audio)
	})

	got, err := client.CreateSpeech(t.Context(), llmsdk.NewSpeechRequest("Hello, world.").
		WithVoice(llmsdk.SpeechVoiceOnyx))
	must.NoError(t, err)
	must.Eq(t, audio, got)
}

func TestCreateSpeechAPIError(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"message":"input too long","type":"invalid_request_error","code":"string_too_long"}}`)
	})

	_, err := client.CreateSpeech(t.Context(), llmsdk.NewSpeechRequest("way too much text"))
	must.Error(t, err)

	apiErr, ok := err.(*llmsdk.APIError)
	must.True(t, ok)
	must.Eq(t, http.StatusBadRequest, apiErr.StatusCode)
	must.Eq(t, "string_too_long", apiErr.Code)
}
