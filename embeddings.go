package llmsdk

import (
	"context"
	"encoding/json"
)

// EmbeddingInput is the text to embed: a single string or an array of
// strings, encoded untagged on the wire. Arrays must be 2048 entries or
// fewer, and no entry may exceed the model's input token limit.
type EmbeddingInput interface {
	isEmbeddingInput()
}

// EmbeddingString is a single input string.
type EmbeddingString string

func (EmbeddingString) isEmbeddingInput() {}

// EmbeddingStringArray is an array of input strings, embedded in a single
// request.
type EmbeddingStringArray []string

func (EmbeddingStringArray) isEmbeddingInput() {}

// EmbeddingRequest asks the model to embed the given input.
//
// Build one with [NewEmbeddingRequest] or [NewEmbeddingArrayRequest] and the
// chained With* setters.
//
// https://platform.openai.com/docs/api-reference/embeddings/create
type EmbeddingRequest struct {
	// Input is the text to embed.
	//
	// Required.
	Input EmbeddingInput `json:"input"`

	// ID of the model to use.
	//
	// Required.
	Model Model `json:"model"`

	// EncodingFormat is the format to return the embeddings in: "float"
	// (the default) or "base64".
	//
	// Optional.
	EncodingFormat string `json:"encoding_format,omitempty"`

	// Dimensions is the number of dimensions the output embeddings
	// should have. Only supported by text-embedding-3 and later.
	//
	// Optional.
	Dimensions *int `json:"dimensions,omitempty"`

	// A unique identifier representing your end-user.
	//
	// Optional.
	User string `json:"user,omitempty"`
}

// NewEmbeddingRequest returns an embedding request for a single input string
// using [ModelDefaultEmbedding].
func NewEmbeddingRequest(input string) *EmbeddingRequest {
	return &EmbeddingRequest{
		Input: EmbeddingString(input),
		Model: ModelDefaultEmbedding,
	}
}

// NewEmbeddingArrayRequest returns an embedding request for multiple input
// strings using [ModelDefaultEmbedding].
func NewEmbeddingArrayRequest(inputs ...string) *EmbeddingRequest {
	return &EmbeddingRequest{
		Input: EmbeddingStringArray(inputs),
		Model: ModelDefaultEmbedding,
	}
}

// WithModel sets the model. Last call wins.
func (r *EmbeddingRequest) WithModel(model Model) *EmbeddingRequest {
	r.Model = model
	return r
}

// WithEncodingFormat sets the embedding encoding format. Last call wins.
func (r *EmbeddingRequest) WithEncodingFormat(format string) *EmbeddingRequest {
	r.EncodingFormat = format
	return r
}

// WithDimensions sets the output dimension count. Last call wins.
func (r *EmbeddingRequest) WithDimensions(dimensions int) *EmbeddingRequest {
	r.Dimensions = &dimensions
	return r
}

// WithUser sets the end-user identifier. Last call wins.
func (r *EmbeddingRequest) WithUser(user string) *EmbeddingRequest {
	r.User = user
	return r
}

// EmbeddingData is one embedding vector in a response.
type EmbeddingData struct {
	// Index of the embedding in the list of embeddings, matching the
	// input order.
	Index int `json:"index"`

	// Embedding is the embedding vector. Its length depends on the model.
	Embedding []float64 `json:"embedding"`

	// Object type, always "embedding".
	Object string `json:"object"`
}

// EmbeddingResponse is received in response to an embedding request.
//
// https://platform.openai.com/docs/api-reference/embeddings/object
type EmbeddingResponse struct {
	Object string          `json:"object"`
	Data   []EmbeddingData `json:"data"`
	Model  string          `json:"model"`
	Usage  Usage           `json:"usage"`
}

// CreateEmbedding sends an embedding request and returns the embedding
// vectors for its input.
//
// https://platform.openai.com/docs/api-reference/embeddings
func (c *Client) CreateEmbedding(ctx context.Context, req *EmbeddingRequest) (*EmbeddingResponse, error) {
	resp := &EmbeddingResponse{}
	if err := c.postJSON(ctx, "embedding", "/embeddings", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// UnmarshalJSON decodes the untagged input union: a JSON string becomes an
// [EmbeddingString], an array an [EmbeddingStringArray].
func (r *EmbeddingRequest) UnmarshalJSON(b []byte) error {
	type alias EmbeddingRequest
	aux := &struct {
		Input json.RawMessage `json:"input"`
		*alias
	}{
		alias: (*alias)(r),
	}

	if err := json.Unmarshal(b, aux); err != nil {
		return err
	}

	if len(aux.Input) == 0 {
		return nil
	}

	if aux.Input[0] == '[' {
		var arr EmbeddingStringArray
		if err := json.Unmarshal(aux.Input, &arr); err != nil {
			return err
		}
		r.Input = arr
		return nil
	}

	var s EmbeddingString
	if err := json.Unmarshal(aux.Input, &s); err != nil {
		return err
	}
	r.Input = s

	return nil
}
