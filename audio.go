package llmsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strconv"
)

// AudioResponseFormat is the transcript output format.
//
// https://platform.openai.com/docs/api-reference/audio/createTranscription#audio-createtranscription-response_format
type AudioResponseFormat string

const (
	AudioResponseFormatJSON        AudioResponseFormat = "json"
	AudioResponseFormatText        AudioResponseFormat = "text"
	AudioResponseFormatSRT         AudioResponseFormat = "srt"
	AudioResponseFormatVerboseJSON AudioResponseFormat = "verbose_json"
	AudioResponseFormatVTT         AudioResponseFormat = "vtt"
)

// TranscriptionRequest transcribes audio into its source language.
//
// The audio bytes travel as one multipart form part named "file"; every
// scalar parameter is a sibling part under its wire name. Build one with
// [NewTranscriptionRequest] and the chained With* setters.
//
// https://platform.openai.com/docs/api-reference/audio/createTranscription
type TranscriptionRequest struct {
	// File is the raw audio to transcribe, in one of: flac, mp3, mp4,
	// mpeg, mpga, m4a, ogg, wav, or webm.
	//
	// Required.
	File []byte

	// Filename accompanies the file part. Some servers sniff the audio
	// container from its extension.
	//
	// Optional. Defaults to "file".
	Filename string

	// ID of the model to use. Only whisper-1 is currently available.
	Model Model

	// Language of the input audio in ISO-639-1 format. Supplying it
	// improves accuracy and latency.
	//
	// Optional.
	Language string

	// Prompt is optional text to guide the model's style or continue a
	// previous audio segment. It should match the audio language.
	//
	// Optional.
	Prompt string

	// ResponseFormat of the transcript output.
	//
	// Defaults to [AudioResponseFormatJSON].
	ResponseFormat AudioResponseFormat

	// Temperature is the sampling temperature, between 0 and 1.
	//
	// Optional.
	Temperature *float64
}

// NewTranscriptionRequest returns a transcription request for the given
// audio bytes using [ModelDefaultTranscription].
func NewTranscriptionRequest(file []byte) *TranscriptionRequest {
	return &TranscriptionRequest{
		File:           file,
		Model:          ModelDefaultTranscription,
		ResponseFormat: AudioResponseFormatJSON,
	}
}

// WithFilename sets the file part's filename. Last call wins.
func (r *TranscriptionRequest) WithFilename(name string) *TranscriptionRequest {
	r.Filename = name
	return r
}

// WithModel sets the model. Last call wins.
func (r *TranscriptionRequest) WithModel(model Model) *TranscriptionRequest {
	r.Model = model
	return r
}

// WithLanguage sets the input audio language. Last call wins.
func (r *TranscriptionRequest) WithLanguage(language string) *TranscriptionRequest {
	r.Language = language
	return r
}

// WithPrompt sets the guidance prompt. Last call wins.
func (r *TranscriptionRequest) WithPrompt(prompt string) *TranscriptionRequest {
	r.Prompt = prompt
	return r
}

// WithResponseFormat sets the transcript output format. Last call wins.
func (r *TranscriptionRequest) WithResponseFormat(format AudioResponseFormat) *TranscriptionRequest {
	r.ResponseFormat = format
	return r
}

// WithTemperature sets the sampling temperature. Last call wins.
func (r *TranscriptionRequest) WithTemperature(temperature float64) *TranscriptionRequest {
	r.Temperature = &temperature
	return r
}

// TranscriptionResponse is the transcript of the input audio.
type TranscriptionResponse struct {
	Text string `json:"text"`
}

// TranslationRequest translates audio into English.
//
// It mirrors [TranscriptionRequest] except there is no language parameter;
// the output language is always English.
//
// https://platform.openai.com/docs/api-reference/audio/createTranslation
type TranslationRequest struct {
	// File is the raw audio to translate.
	//
	// Required.
	File []byte

	// Filename accompanies the file part.
	//
	// Optional. Defaults to "file".
	Filename string

	// ID of the model to use. Only whisper-1 is currently available.
	Model Model

	// Prompt is optional English text to guide the model's style.
	//
	// Optional.
	Prompt string

	// ResponseFormat of the transcript output.
	//
	// Defaults to [AudioResponseFormatJSON].
	ResponseFormat AudioResponseFormat

	// Temperature is the sampling temperature, between 0 and 1.
	//
	// Optional.
	Temperature *float64
}

// NewTranslationRequest returns a translation request for the given audio
// bytes using [ModelDefaultTranscription].
func NewTranslationRequest(file []byte) *TranslationRequest {
	return &TranslationRequest{
		File:           file,
		Model:          ModelDefaultTranscription,
		ResponseFormat: AudioResponseFormatJSON,
	}
}

// WithFilename sets the file part's filename. Last call wins.
func (r *TranslationRequest) WithFilename(name string) *TranslationRequest {
	r.Filename = name
	return r
}

// WithModel sets the model. Last call wins.
func (r *TranslationRequest) WithModel(model Model) *TranslationRequest {
	r.Model = model
	return r
}

// WithPrompt sets the guidance prompt. Last call wins.
func (r *TranslationRequest) WithPrompt(prompt string) *TranslationRequest {
	r.Prompt = prompt
	return r
}

// WithResponseFormat sets the transcript output format. Last call wins.
func (r *TranslationRequest) WithResponseFormat(format AudioResponseFormat) *TranslationRequest {
	r.ResponseFormat = format
	return r
}

// WithTemperature sets the sampling temperature. Last call wins.
func (r *TranslationRequest) WithTemperature(temperature float64) *TranslationRequest {
	r.Temperature = &temperature
	return r
}

// TranslationResponse is the English transcript of the input audio.
type TranslationResponse struct {
	Text string `json:"text"`
}

// audioFormValues are the scalar sibling parts of a whisper multipart form.
type audioFormValues struct {
	model          Model
	language       string
	prompt         string
	responseFormat AudioResponseFormat
	temperature    *float64
}

// encodeAudioForm writes the multipart body for a whisper-style request:
// the audio bytes as the "file" part, then each set scalar as a sibling
// part under its exact wire name.
func encodeAudioForm(file []byte, filename string, values audioFormValues) (*bytes.Buffer, string, error) {
	b := new(bytes.Buffer)
	w := multipart.NewWriter(b)

	if filename == "" {
		filename = "file"
	}

	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, "", err
	}

	if _, err := fw.Write(file); err != nil {
		return nil, "", err
	}

	if err := w.WriteField("model", values.model); err != nil {
		return nil, "", err
	}

	if values.language != "" {
		if err := w.WriteField("language", values.language); err != nil {
			return nil, "", err
		}
	}

	if values.prompt != "" {
		if err := w.WriteField("prompt", values.prompt); err != nil {
			return nil, "", err
		}
	}

	if values.responseFormat != "" {
		if err := w.WriteField("response_format", string(values.responseFormat)); err != nil {
			return nil, "", err
		}
	}

	if values.temperature != nil {
		if err := w.WriteField("temperature", strconv.FormatFloat(*values.temperature, 'f', -1, 64)); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return b, w.FormDataContentType(), nil
}

// whisperText decodes a whisper endpoint's success body: JSON formats carry
// a {"text": ...} object, the subtitle and plain text formats are returned
// verbatim.
func whisperText(format AudioResponseFormat, status int, body []byte) (string, error) {
	switch format {
	case "", AudioResponseFormatJSON, AudioResponseFormatVerboseJSON:
		var decoded struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(body, &decoded); err != nil {
			return "", &DecodeError{StatusCode: status, Body: body, Err: err}
		}
		return decoded.Text, nil
	default:
		return string(body), nil
	}
}

// CreateTranscription transcribes audio into the input language.
//
// https://platform.openai.com/docs/api-reference/audio/createTranscription
func (c *Client) CreateTranscription(ctx context.Context, req *TranscriptionRequest) (*TranscriptionResponse, error) {
	form, contentType, err := encodeAudioForm(req.File, req.Filename, audioFormValues{
		model:          req.Model,
		language:       req.Language,
		prompt:         req.Prompt,
		responseFormat: req.ResponseFormat,
		temperature:    req.Temperature,
	})
	if err != nil {
		return nil, err
	}

	status, body, err := c.do(ctx, "transcription", http.MethodPost, "/audio/transcriptions", form, contentType)
	if err != nil {
		return nil, err
	}

	if !successStatus(status) {
		return nil, decodeErrorResponse(status, body)
	}

	text, err := whisperText(req.ResponseFormat, status, body)
	if err != nil {
		return nil, err
	}

	return &TranscriptionResponse{Text: text}, nil
}

// CreateTranslation translates audio into English.
//
// https://platform.openai.com/docs/api-reference/audio/createTranslation
func (c *Client) CreateTranslation(ctx context.Context, req *TranslationRequest) (*TranslationResponse, error) {
	form, contentType, err := encodeAudioForm(req.File, req.Filename, audioFormValues{
		model:          req.Model,
		prompt:         req.Prompt,
		responseFormat: req.ResponseFormat,
		temperature:    req.Temperature,
	})
	if err != nil {
		return nil, err
	}

	status, body, err := c.do(ctx, "translation", http.MethodPost, "/audio/translations", form, contentType)
	if err != nil {
		return nil, err
	}

	if !successStatus(status) {
		return nil, decodeErrorResponse(status, body)
	}

	text, err := whisperText(req.ResponseFormat, status, body)
	if err != nil {
		return nil, err
	}

	return &TranslationResponse{Text: text}, nil
}

// SpeechVoice is the voice used when generating audio.
//
// https://platform.openai.com/docs/api-reference/audio/createSpeech#audio-createspeech-voice
type SpeechVoice string

const (
	SpeechVoiceAlloy   SpeechVoice = "alloy"
	SpeechVoiceEcho    SpeechVoice = "echo"
	SpeechVoiceFable   SpeechVoice = "fable"
	SpeechVoiceOnyx    SpeechVoice = "onyx"
	SpeechVoiceNova    SpeechVoice = "nova"
	SpeechVoiceShimmer SpeechVoice = "shimmer"
)

// SpeechFormat is the container format of the generated audio.
type SpeechFormat string

const (
	SpeechFormatMP3  SpeechFormat = "mp3"
	SpeechFormatOpus SpeechFormat = "opus"
	SpeechFormatAAC  SpeechFormat = "aac"
	SpeechFormatFLAC SpeechFormat = "flac"
)

// SpeechRequest generates audio from input text.
//
// Build one with [NewSpeechRequest] and the chained With* setters.
//
// https://platform.openai.com/docs/api-reference/audio/createSpeech
type SpeechRequest struct {
	// ID of the model to use: tts-1 or tts-1-hd.
	Model Model `json:"model"`

	// Input is the text to generate audio for. Maximum 4096 characters.
	//
	// Required.
	Input string `json:"input"`

	// Voice to use when generating the audio.
	//
	// Defaults to [SpeechVoiceNova].
	Voice SpeechVoice `json:"voice"`

	// ResponseFormat is the audio container format.
	//
	// Defaults to [SpeechFormatMP3].
	ResponseFormat SpeechFormat `json:"response_format"`

	// Speed of the generated audio, from 0.25 to 4.0.
	//
	// Optional. The provider defaults to 1.0.
	Speed *float64 `json:"speed,omitempty"`
}

// NewSpeechRequest returns a speech request for the given input text using
// [ModelDefaultSpeech].
func NewSpeechRequest(input string) *SpeechRequest {
	return &SpeechRequest{
		Model:          ModelDefaultSpeech,
		Input:          input,
		Voice:          SpeechVoiceNova,
		ResponseFormat: SpeechFormatMP3,
	}
}

// WithModel sets the model. Last call wins.
func (r *SpeechRequest) WithModel(model Model) *SpeechRequest {
	r.Model = model
	return r
}

// WithVoice sets the voice. Last call wins.
func (r *SpeechRequest) WithVoice(voice SpeechVoice) *SpeechRequest {
	r.Voice = voice
	return r
}

// WithResponseFormat sets the audio container format. Last call wins.
func (r *SpeechRequest) WithResponseFormat(format SpeechFormat) *SpeechRequest {
	r.ResponseFormat = format
	return r
}

// WithSpeed sets the audio speed. Last call wins.
func (r *SpeechRequest) WithSpeed(speed float64) *SpeechRequest {
	r.Speed = &speed
	return r
}

// CreateSpeech generates audio from the input text, returning the raw audio
// bytes in the requested format.
//
// https://platform.openai.com/docs/api-reference/audio/createSpeech
func (c *Client) CreateSpeech(ctx context.Context, req *SpeechRequest) ([]byte, error) {
	return c.postJSONRaw(ctx, "speech", "/audio/speech", req)
}
