package llmsdk

import (
	"context"
)

// ImageQuality is the quality of the generated image.
type ImageQuality string

const (
	ImageQualityStandard ImageQuality = "standard"

	// ImageQualityHD generates images with finer details and greater
	// consistency. Only supported by dall-e-3.
	ImageQualityHD ImageQuality = "hd"
)

// ImageResponseFormat is how generated images are returned.
type ImageResponseFormat string

const (
	// ImageResponseFormatURL returns a URL to the image, valid for 60
	// minutes after generation.
	ImageResponseFormatURL ImageResponseFormat = "url"

	// ImageResponseFormatB64JSON returns the image as base64-encoded JSON.
	ImageResponseFormatB64JSON ImageResponseFormat = "b64_json"
)

// ImageSize is the size of the generated image.
type ImageSize string

const (
	ImageSize256x256   ImageSize = "256x256"
	ImageSize512x512   ImageSize = "512x512"
	ImageSize1024x1024 ImageSize = "1024x1024"
	ImageSize1792x1024 ImageSize = "1792x1024"
	ImageSize1024x1792 ImageSize = "1024x1792"
)

// ImageStyle is the style of the generated image. Only supported by dall-e-3.
type ImageStyle string

const (
	// ImageStyleVivid leans toward hyper-real, dramatic images.
	ImageStyleVivid ImageStyle = "vivid"

	// ImageStyleNatural leans toward more natural, less hyper-real images.
	ImageStyleNatural ImageStyle = "natural"
)

// CreateImageRequest generates images from a text prompt.
//
// Build one with [NewCreateImageRequest] and the chained With* setters. The
// model is always serialized; every other optional left unset is omitted
// from the wire payload entirely.
//
// https://platform.openai.com/docs/api-reference/images/create
type CreateImageRequest struct {
	// Prompt is a text description of the desired image(s). Maximum 1000
	// characters for dall-e-2, 4000 for dall-e-3.
	//
	// Required.
	Prompt string `json:"prompt"`

	// ID of the model to use.
	Model Model `json:"model"`

	// N is the number of images to generate, between 1 and 10. dall-e-3
	// only supports 1.
	//
	// Optional.
	N *int `json:"n,omitempty"`

	// Quality of the generated image.
	//
	// Optional. The provider defaults to "standard".
	Quality ImageQuality `json:"quality,omitempty"`

	// ResponseFormat of the generated images.
	//
	// Optional. The provider defaults to "url".
	ResponseFormat ImageResponseFormat `json:"response_format,omitempty"`

	// Size of the generated images.
	//
	// Optional. The provider defaults to "1024x1024".
	Size ImageSize `json:"size,omitempty"`

	// Style of the generated images.
	//
	// Optional. The provider defaults to "vivid".
	Style ImageStyle `json:"style,omitempty"`

	// A unique identifier representing your end-user.
	//
	// Optional.
	User string `json:"user,omitempty"`
}

// NewCreateImageRequest returns an image generation request for the given
// prompt using [ModelDefaultImage].
func NewCreateImageRequest(prompt string) *CreateImageRequest {
	return &CreateImageRequest{
		Prompt: prompt,
		Model:  ModelDefaultImage,
	}
}

// WithModel sets the model. Last call wins.
func (r *CreateImageRequest) WithModel(model Model) *CreateImageRequest {
	r.Model = model
	return r
}

// WithN sets the number of images to generate. Last call wins.
func (r *CreateImageRequest) WithN(n int) *CreateImageRequest {
	r.N = &n
	return r
}

// WithQuality sets the image quality. Last call wins.
func (r *CreateImageRequest) WithQuality(quality ImageQuality) *CreateImageRequest {
	r.Quality = quality
	return r
}

// WithResponseFormat sets the image response format. Last call wins.
func (r *CreateImageRequest) WithResponseFormat(format ImageResponseFormat) *CreateImageRequest {
	r.ResponseFormat = format
	return r
}

// WithSize sets the image size. Last call wins.
func (r *CreateImageRequest) WithSize(size ImageSize) *CreateImageRequest {
	r.Size = size
	return r
}

// WithStyle sets the image style. Last call wins.
func (r *CreateImageRequest) WithStyle(style ImageStyle) *CreateImageRequest {
	r.Style = style
	return r
}

// WithUser sets the end-user identifier. Last call wins.
func (r *CreateImageRequest) WithUser(user string) *CreateImageRequest {
	r.User = user
	return r
}

// ImageData is a single generated image. Exactly one of URL or B64JSON is
// populated, matching the request's response format.
type ImageData struct {
	// URL of the generated image, when the response format is "url".
	URL string `json:"url,omitempty"`

	// B64JSON is the base64-encoded image, when the response format is
	// "b64_json".
	B64JSON string `json:"b64_json,omitempty"`

	// RevisedPrompt is the prompt actually used to generate the image,
	// after any provider-side rewriting. Only set by dall-e-3.
	RevisedPrompt string `json:"revised_prompt,omitempty"`
}

// CreateImageResponse is received in response to an image generation request.
//
// https://platform.openai.com/docs/api-reference/images/object
type CreateImageResponse struct {
	// Created is the Unix timestamp of when the images were generated.
	Created int `json:"created"`

	// Data is the list of generated images.
	Data []ImageData `json:"data"`
}

// CreateImage generates images from a text prompt.
//
// https://platform.openai.com/docs/api-reference/images/create
func (c *Client) CreateImage(ctx context.Context, req *CreateImageRequest) (*CreateImageResponse, error) {
	resp := &CreateImageResponse{}
	if err := c.postJSON(ctx, "image generation", "/images/generations", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}
