package llmsdk

import (
	"context"
)

// CreateModerationRequest classifies whether text violates the provider's
// content policy.
//
// https://platform.openai.com/docs/api-reference/moderations/create
type CreateModerationRequest struct {
	// Input is the text to classify.
	//
	// Required.
	Input string `json:"input"`

	// ID of the model to use: "text-moderation-stable" or
	// "text-moderation-latest".
	Model Model `json:"model"`
}

// NewCreateModerationRequest returns a moderation request for the given input
// using [ModelTextModerationLatest].
func NewCreateModerationRequest(input string) *CreateModerationRequest {
	return &CreateModerationRequest{
		Input: input,
		Model: ModelTextModerationLatest,
	}
}

// WithModel sets the model. Last call wins.
func (r *CreateModerationRequest) WithModel(model Model) *CreateModerationRequest {
	r.Model = model
	return r
}

// ModerationResult is the classification of a single input.
type ModerationResult struct {
	// Flagged is true if the input violates the content policy.
	Flagged bool `json:"flagged"`

	// Categories maps each policy category to whether the input violates it.
	Categories map[string]bool `json:"categories"`

	// CategoryScores maps each policy category to the model's confidence
	// that the input violates it, from 0 to 1.
	CategoryScores map[string]float64 `json:"category_scores"`
}

// CreateModerationResponse is received in response to a moderation request.
//
// https://platform.openai.com/docs/api-reference/moderations/object
type CreateModerationResponse struct {
	ID      string             `json:"id"`
	Model   string             `json:"model"`
	Results []ModerationResult `json:"results"`
}

// CreateModeration classifies whether the input text violates the provider's
// content policy.
//
// https://platform.openai.com/docs/api-reference/moderations
func (c *Client) CreateModeration(ctx context.Context, req *CreateModerationRequest) (*CreateModerationResponse, error) {
	resp := &CreateModerationResponse{}
	if err := c.postJSON(ctx, "moderation", "/moderations", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}
