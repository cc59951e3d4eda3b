package llmsdk

import (
	"context"
	"encoding/json"
)

// ChatCompletionMessage is a single message in a conversation.
//
// https://platform.openai.com/docs/api-reference/chat/create#chat-create-messages
type ChatCompletionMessage struct {
	// Role of the message author.
	//
	// Required.
	Role ChatRole `json:"role"`

	// Content is the text of the message.
	//
	// Required for most roles; may be empty on assistant messages that
	// only carry tool calls.
	Content string `json:"content"`

	// Name of the participant, used to distinguish between participants
	// of the same role. May contain a-z, A-Z, 0-9, and underscores, with
	// a maximum length of 64 characters.
	//
	// Optional.
	Name string `json:"name,omitempty"`

	// ToolCalls generated by the model, present on assistant messages
	// that request tool invocations.
	//
	// Optional.
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`

	// ToolCallID identifies which [ToolCall] this message responds to.
	// Required when Role is [ChatRoleTool].
	//
	// Optional.
	ToolCallID string `json:"tool_call_id,omitempty"`
}

// SystemMessage returns a system message with an optional participant name,
// omitted from the wire payload when empty.
func SystemMessage(content, name string) ChatCompletionMessage {
	return ChatCompletionMessage{Role: ChatRoleSystem, Content: content, Name: name}
}

// UserMessage returns a user message with an optional participant name,
// omitted from the wire payload when empty.
func UserMessage(content, name string) ChatCompletionMessage {
	return ChatCompletionMessage{Role: ChatRoleUser, Content: content, Name: name}
}

// AssistantMessage returns an assistant message, typically echoing a prior
// model response back into the conversation context.
func AssistantMessage(content string) ChatCompletionMessage {
	return ChatCompletionMessage{Role: ChatRoleAssistant, Content: content}
}

// ToolMessage returns a tool-result message answering the tool call with
// the given ID.
func ToolMessage(content, toolCallID string) ChatCompletionMessage {
	return ChatCompletionMessage{Role: ChatRoleTool, Content: content, ToolCallID: toolCallID}
}

// ChatCompletionRequest is sent to the API, which will return a completion
// for the included messages (the conversation context and history).
//
// The API is designed to be used in a loop: the response from the previous
// request is typically folded into the messages of the next one, and the
// caller maintains that context window.
//
// Build one with [NewChatCompletionRequest] and the chained With* setters.
// Optional fields left unset are omitted from the wire payload entirely,
// never encoded as null.
//
// https://platform.openai.com/docs/api-reference/chat/create
type ChatCompletionRequest struct {
	// ID of the model to use, e.g. "gpt-4o".
	//
	// Required.
	Model Model `json:"model"`

	// Messages is the conversation so far, in order.
	//
	// Required.
	Messages []ChatCompletionMessage `json:"messages"`

	// What sampling temperature to use, between 0 and 2.
	//
	// Optional.
	Temperature *float64 `json:"temperature,omitempty"`

	// Nucleus sampling: the model considers only the tokens comprising
	// the top_p probability mass.
	//
	// Optional.
	TopP *float64 `json:"top_p,omitempty"`

	// How many completion choices to generate.
	//
	// Optional. The provider defaults to 1.
	N *int `json:"n,omitempty"`

	// Up to 4 sequences where the API will stop generating further tokens.
	//
	// Optional.
	Stop []string `json:"stop,omitempty"`

	// The maximum number of tokens to generate in the completion.
	//
	// Optional.
	MaxTokens *int `json:"max_tokens,omitempty"`

	// Number between -2.0 and 2.0. Positive values penalize tokens that
	// already appear in the text, encouraging new topics.
	//
	// Optional.
	PresencePenalty *float64 `json:"presence_penalty,omitempty"`

	// Number between -2.0 and 2.0. Positive values penalize tokens by
	// their existing frequency, discouraging verbatim repetition.
	//
	// Optional.
	FrequencyPenalty *float64 `json:"frequency_penalty,omitempty"`

	// Seed for best-effort deterministic sampling.
	//
	// Optional.
	Seed *int `json:"seed,omitempty"`

	// Tools the model may call.
	//
	// Optional.
	Tools []Tool `json:"tools,omitempty"`

	// ToolChoice controls how the model selects tools.
	//
	// Optional. The provider defaults to "none" without tools and
	// "auto" with them.
	ToolChoice ToolChoice `json:"tool_choice,omitempty"`

	// A unique identifier representing your end-user, which can help the
	// provider monitor and detect abuse.
	//
	// Optional.
	User string `json:"user,omitempty"`
}

// NewChatCompletionRequest returns a chat completion request for the given
// messages using [ModelDefaultChat]. No validation beyond the constructor
// signature happens locally; role ordering and similar rules are the remote
// service's to enforce.
func NewChatCompletionRequest(messages ...ChatCompletionMessage) *ChatCompletionRequest {
	return &ChatCompletionRequest{
		Model:    ModelDefaultChat,
		Messages: messages,
	}
}

// WithModel sets the model. Last call wins.
func (r *ChatCompletionRequest) WithModel(model Model) *ChatCompletionRequest {
	r.Model = model
	return r
}

// WithTemperature sets the sampling temperature. Last call wins.
func (r *ChatCompletionRequest) WithTemperature(temperature float64) *ChatCompletionRequest {
	r.Temperature = &temperature
	return r
}

// WithTopP sets the nucleus sampling mass. Last call wins.
func (r *ChatCompletionRequest) WithTopP(topP float64) *ChatCompletionRequest {
	r.TopP = &topP
	return r
}

// WithN sets the number of choices to generate. Last call wins.
func (r *ChatCompletionRequest) WithN(n int) *ChatCompletionRequest {
	r.N = &n
	return r
}

// WithStop appends stop sequences.
func (r *ChatCompletionRequest) WithStop(stop ...string) *ChatCompletionRequest {
	r.Stop = append(r.Stop, stop...)
	return r
}

// WithMaxTokens sets the completion token limit. Last call wins.
func (r *ChatCompletionRequest) WithMaxTokens(maxTokens int) *ChatCompletionRequest {
	r.MaxTokens = &maxTokens
	return r
}

// WithPresencePenalty sets the presence penalty. Last call wins.
func (r *ChatCompletionRequest) WithPresencePenalty(penalty float64) *ChatCompletionRequest {
	r.PresencePenalty = &penalty
	return r
}

// WithFrequencyPenalty sets the frequency penalty. Last call wins.
func (r *ChatCompletionRequest) WithFrequencyPenalty(penalty float64) *ChatCompletionRequest {
	r.FrequencyPenalty = &penalty
	return r
}

// WithSeed sets the sampling seed. Last call wins.
func (r *ChatCompletionRequest) WithSeed(seed int) *ChatCompletionRequest {
	r.Seed = &seed
	return r
}

// WithTools appends tools the model may call.
func (r *ChatCompletionRequest) WithTools(tools ...Tool) *ChatCompletionRequest {
	r.Tools = append(r.Tools, tools...)
	return r
}

// WithToolChoice sets the tool selection mode. Last call wins.
func (r *ChatCompletionRequest) WithToolChoice(choice ToolChoice) *ChatCompletionRequest {
	r.ToolChoice = choice
	return r
}

// WithUser sets the end-user identifier. Last call wins.
func (r *ChatCompletionRequest) WithUser(user string) *ChatCompletionRequest {
	r.User = user
	return r
}

// UnmarshalJSON decodes the tool choice union: a JSON string becomes a
// [ToolChoiceMode], the `{"type":"function",...}` object form a
// [ToolChoiceFunction].
func (r *ChatCompletionRequest) UnmarshalJSON(b []byte) error {
	type alias ChatCompletionRequest
	aux := &struct {
		ToolChoice json.RawMessage `json:"tool_choice"`
		*alias
	}{
		alias: (*alias)(r),
	}

	if err := json.Unmarshal(b, aux); err != nil {
		return err
	}

	if len(aux.ToolChoice) == 0 || string(aux.ToolChoice) == "null" {
		return nil
	}

	if aux.ToolChoice[0] == '{' {
		var forced struct {
			Function struct {
				Name string `json:"name"`
			} `json:"function"`
		}
		if err := json.Unmarshal(aux.ToolChoice, &forced); err != nil {
			return err
		}
		r.ToolChoice = ToolChoiceFunction(forced.Function.Name)
		return nil
	}

	var mode ToolChoiceMode
	if err := json.Unmarshal(aux.ToolChoice, &mode); err != nil {
		return err
	}
	r.ToolChoice = mode

	return nil
}

// ChatCompletionChoice is a single generated completion.
type ChatCompletionChoice struct {
	// Index of the choice within the response.
	Index int `json:"index"`

	// Message generated by the model.
	Message ChatCompletionMessage `json:"message"`

	// FinishReason is why generation stopped: "stop", "length",
	// "tool_calls", or "content_filter".
	FinishReason string `json:"finish_reason"`
}

// Usage is the provider's token accounting for a request.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens,omitempty"`
	TotalTokens      int `json:"total_tokens"`
}

// ChatCompletionResponse is received in response to a chat completion request.
//
// https://platform.openai.com/docs/api-reference/chat/object
type ChatCompletionResponse struct {
	ID      string                 `json:"id"`
	Object  string                 `json:"object"`
	Created int                    `json:"created"`
	Model   string                 `json:"model"`
	Choices []ChatCompletionChoice `json:"choices"`
	Usage   Usage                  `json:"usage"`
}

// ChatCompletion sends a chat completion request and returns the model's
// response for the included messages.
//
// https://platform.openai.com/docs/api-reference/chat/create
func (c *Client) ChatCompletion(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionResponse, error) {
	resp := &ChatCompletionResponse{}
	if err := c.postJSON(ctx, "chat completion", "/chat/completions", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}
