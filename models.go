package llmsdk

import (
	"context"
)

// Model is a known model identifier.
//
// The constants below are the identifiers this package's request
// constructors default to or that are commonly used with it; any identifier
// the server accepts can be passed through, the set is not closed.
type Model = string

// https://platform.openai.com/docs/models
const (
	// ModelGPT4o is the flagship multimodal chat model.
	ModelGPT4o Model = "gpt-4o"

	// ModelGPT4oMini is the small, fast variant of gpt-4o.
	ModelGPT4oMini Model = "gpt-4o-mini"

	// ModelGPT4Turbo is the previous-generation large chat model.
	ModelGPT4Turbo Model = "gpt-4-turbo"

	// ModelGPT35Turbo is the legacy fast chat model.
	ModelGPT35Turbo Model = "gpt-3.5-turbo"

	// ModelTextEmbeddingAda002 is the legacy embedding model.
	ModelTextEmbeddingAda002 Model = "text-embedding-ada-002"

	// ModelTextEmbedding3Small is the small current-generation embedding model.
	ModelTextEmbedding3Small Model = "text-embedding-3-small"

	// ModelTextEmbedding3Large is the large current-generation embedding model.
	ModelTextEmbedding3Large Model = "text-embedding-3-large"

	// ModelWhisper1 is the speech-to-text model used for transcription
	// and translation.
	ModelWhisper1 Model = "whisper-1"

	// ModelTTS1 is the realtime-optimized text-to-speech model.
	ModelTTS1 Model = "tts-1"

	// ModelTTS1HD is the quality-optimized text-to-speech model.
	ModelTTS1HD Model = "tts-1-hd"

	// ModelDallE3 is the image generation model.
	ModelDallE3 Model = "dall-e-3"

	// ModelTextModerationLatest is the automatically-updated moderation model.
	ModelTextModerationLatest Model = "text-moderation-latest"
)

// Defaults used by the request constructors when no model is chosen.
const (
	ModelDefaultChat          Model = ModelGPT4o
	ModelDefaultEmbedding     Model = ModelTextEmbeddingAda002
	ModelDefaultTranscription Model = ModelWhisper1
	ModelDefaultSpeech        Model = ModelTTS1
	ModelDefaultImage         Model = ModelDallE3
)

// ModelInfo describes a model available through the API.
//
// https://platform.openai.com/docs/api-reference/models/object
type ModelInfo struct {
	// ID is the model identifier, usable in requests.
	ID string `json:"id"`

	// Object type, always "model".
	Object string `json:"object"`

	// Created is the Unix timestamp of when the model was created.
	Created int `json:"created"`

	// OwnedBy is the organization that owns the model.
	OwnedBy string `json:"owned_by"`
}

// ListModelsResponse is received in response to a model listing request.
type ListModelsResponse struct {
	Object string      `json:"object"`
	Data   []ModelInfo `json:"data"`
}

// ListModels lists the models currently available through the API.
//
// https://platform.openai.com/docs/api-reference/models/list
func (c *Client) ListModels(ctx context.Context) (*ListModelsResponse, error) {
	resp := &ListModelsResponse{}
	if err := c.getJSON(ctx, "list models", "/models", resp); err != nil {
		return nil, err
	}
	return resp, nil
}
