package llmsdk_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/picatz/llmsdk"
	"github.com/shoenig/test/must"
)

func TestChatCompletionRequestSerialization(t *testing.T) {
	req := llmsdk.NewChatCompletionRequest(
		llmsdk.SystemMessage("You are a helpful assistant.", ""),
		llmsdk.UserMessage("Hello!", "user1"),
	).WithModel(llmsdk.ModelGPT4oMini)

	b, err := json.Marshal(req)
	must.NoError(t, err)

	must.Eq(t, `{"model":"gpt-4o-mini","messages":[{"role":"system","content":"You are a helpful assistant."},{"role":"user","content":"Hello!","name":"user1"}]}`, string(b))
}

func TestChatCompletionRequestOmitsUnsetOptionals(t *testing.T) {
	req := llmsdk.NewChatCompletionRequest(llmsdk.UserMessage("hi", ""))

	b, err := json.Marshal(req)
	must.NoError(t, err)

	var decoded map[string]any
	must.NoError(t, json.Unmarshal(b, &decoded))

	// Only the required fields appear; no optional is encoded as null.
	must.MapLen(t, 2, decoded)
	must.MapContainsKey(t, decoded, "model")
	must.MapContainsKey(t, decoded, "messages")
}

func TestChatCompletionRequestZeroTemperature(t *testing.T) {
	// Explicitly setting zero is not the same as leaving it unset.
	req := llmsdk.NewChatCompletionRequest(llmsdk.UserMessage("hi", "")).
		WithTemperature(0)

	b, err := json.Marshal(req)
	must.NoError(t, err)

	var decoded map[string]any
	must.NoError(t, json.Unmarshal(b, &decoded))
	must.MapContainsKey(t, decoded, "temperature")
	must.Eq(t, 0.0, decoded["temperature"].(float64))
}

func TestChatCompletionRequestSetterSemantics(t *testing.T) {
	req := llmsdk.NewChatCompletionRequest(llmsdk.UserMessage("hi", "")).
		WithTemperature(0.2).
		WithTemperature(0.9).
		WithStop("a").
		WithStop("b", "c")

	// Scalar setters are last-call-wins, list setters append.
	must.Eq(t, 0.9, *req.Temperature)
	must.Eq(t, []string{"a", "b", "c"}, req.Stop)
}

func TestChatCompletionRequestToolsAppend(t *testing.T) {
	weather := llmsdk.NewTool("get_weather", "Get the current weather.", &llmsdk.JSONSchema{
		Type: "object",
		Properties: map[string]*llmsdk.JSONSchema{
			"location": {Type: "string", Description: "City and state."},
		},
		Required: []string{"location"},
	})
	clock := llmsdk.NewTool("get_time", "Get the current time.", nil)

	req := llmsdk.NewChatCompletionRequest(llmsdk.UserMessage("hi", "")).
		WithTools(weather).
		WithTools(clock)

	must.Len(t, 2, req.Tools)
	must.Eq(t, "get_weather", req.Tools[0].Function.Name)
	must.Eq(t, "get_time", req.Tools[1].Function.Name)
}

func TestChatCompletion(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		must.Eq(t, "/chat/completions", r.URL.Path)
		must.Eq(t, "application/json", r.Header.Get("Content-Type"))

		fmt.Fprint(w, `{
			"id": "chatcmpl-123",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "gpt-4o",
			"choices": [{
				"index": 0,
				"message": {"role": "assistant", "content": "Hello there!"},
				"finish_reason": "stop"
			}],
			"usage": {"prompt_tokens": 9, "completion_tokens": 3, "total_tokens": 12}
		}`)
	})

	resp, err := client.ChatCompletion(t.Context(), llmsdk.NewChatCompletionRequest(
		llmsdk.UserMessage("Hello!", ""),
	))
	must.NoError(t, err)
	must.Eq(t, "chatcmpl-123", resp.ID)
	must.Len(t, 1, resp.Choices)
	must.Eq(t, llmsdk.ChatRoleAssistant, resp.Choices[0].Message.Role)
	must.Eq(t, "Hello there!", resp.Choices[0].Message.Content)
	must.Eq(t, "stop", resp.Choices[0].FinishReason)
	must.Eq(t, 12, resp.Usage.TotalTokens)
}

func TestChatCompletionToolCalls(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"id": "chatcmpl-456",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "gpt-4o",
			"choices": [{
				"index": 0,
				"message": {
					"role": "assistant",
					"content": "",
					"tool_calls": [{
						"id": "call_abc",
						"type": "function",
						"function": {"name": "get_weather", "arguments": "{\"location\": \"Boston, MA\"}"}
					}]
				},
				"finish_reason": "tool_calls"
			}],
			"usage": {"prompt_tokens": 20, "completion_tokens": 10, "total_tokens": 30}
		}`)
	})

	resp, err := client.ChatCompletion(t.Context(), llmsdk.NewChatCompletionRequest(
		llmsdk.UserMessage("What's the weather in Boston?", ""),
	))
	must.NoError(t, err)

	calls := resp.Choices[0].Message.ToolCalls
	must.Len(t, 1, calls)
	must.Eq(t, "call_abc", calls[0].ID)
	must.Eq(t, "get_weather", calls[0].Function.Name)

	location, err := llmsdk.GetTypedFunctionCallArgumentValue[string]("location", calls[0].Function.Arguments)
	must.NoError(t, err)
	must.Eq(t, "Boston, MA", location)
}

func TestFunctionCallRoundTrip(t *testing.T) {
	call := llmsdk.FunctionCall{
		Name:      "get_weather",
		Arguments: llmsdk.FunctionCallArguments{"location": "Boston, MA"},
	}

	b, err := json.Marshal(call)
	must.NoError(t, err)
	must.Eq(t, `{"name":"get_weather","arguments":"{\"location\":\"Boston, MA\"}"}`, string(b))

	var decoded llmsdk.FunctionCall
	must.NoError(t, json.Unmarshal(b, &decoded))
	must.Eq(t, call.Name, decoded.Name)
	must.Eq(t, "Boston, MA", decoded.Arguments["location"].(string))
}

func TestToolChoiceSerialization(t *testing.T) {
	mode, err := json.Marshal(llmsdk.ToolChoiceAuto)
	must.NoError(t, err)
	must.Eq(t, `"auto"`, string(mode))

	forced, err := json.Marshal(llmsdk.ToolChoiceFunction("get_weather"))
	must.NoError(t, err)
	must.Eq(t, `{"type":"function","function":{"name":"get_weather"}}`, string(forced))
}

func TestChatCompletionRequestToolChoiceRoundTrip(t *testing.T) {
	auto := llmsdk.NewChatCompletionRequest(llmsdk.UserMessage("hi", "")).
		WithToolChoice(llmsdk.ToolChoiceAuto)

	b, err := json.Marshal(auto)
	must.NoError(t, err)
	must.StrContains(t, string(b), `"tool_choice":"auto"`)

	var decodedAuto llmsdk.ChatCompletionRequest
	must.NoError(t, json.Unmarshal(b, &decodedAuto))
	must.Eq(t, llmsdk.ToolChoiceAuto, decodedAuto.ToolChoice.(llmsdk.ToolChoiceMode))

	forced := llmsdk.NewChatCompletionRequest(llmsdk.UserMessage("hi", "")).
		WithToolChoice(llmsdk.ToolChoiceFunction("get_weather"))

	b, err = json.Marshal(forced)
	must.NoError(t, err)
	must.StrContains(t, string(b), `"tool_choice":{"type":"function","function":{"name":"get_weather"}}`)

	var decodedForced llmsdk.ChatCompletionRequest
	must.NoError(t, json.Unmarshal(b, &decodedForced))
	must.Eq(t, llmsdk.ToolChoiceFunction("get_weather"), decodedForced.ToolChoice.(llmsdk.ToolChoiceFunction))

	// Absent tool_choice stays absent after a round trip.
	plain := llmsdk.NewChatCompletionRequest(llmsdk.UserMessage("hi", ""))

	b, err = json.Marshal(plain)
	must.NoError(t, err)

	var decodedPlain llmsdk.ChatCompletionRequest
	must.NoError(t, json.Unmarshal(b, &decodedPlain))
	must.Nil(t, decodedPlain.ToolChoice)
}

func TestFunctionCallNilArguments(t *testing.T) {
	b, err := json.Marshal(llmsdk.FunctionCall{Name: "noop"})
	must.NoError(t, err)
	must.Eq(t, `{"name":"noop","arguments":"{}"}`, string(b))
}

func TestToolMessageRoundTrip(t *testing.T) {
	msg := llmsdk.ToolMessage(`{"temperature": 72}`, "call_abc")

	b, err := json.Marshal(msg)
	must.NoError(t, err)
	must.Eq(t, `{"role":"tool","content":"{\"temperature\": 72}","tool_call_id":"call_abc"}`, string(b))
}
