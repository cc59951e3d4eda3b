package llmsdk

import (
	"encoding/json"
	"fmt"
)

// ToolTypeFunction is the only tool type the provider currently defines.
const ToolTypeFunction = "function"

// Tool is a callable function made available to the model in a chat
// completion request. The model refers back to it by name in tool calls.
//
// https://platform.openai.com/docs/api-reference/chat/create#chat-create-tools
type Tool struct {
	// Type of the tool. Always "function".
	Type string `json:"type"`

	// Function describes the callable function.
	Function ToolFunction `json:"function"`
}

// ToolFunction describes a callable function: its name, what it does, and
// the JSON Schema of its parameters.
type ToolFunction struct {
	// Name is the name of the function. May contain a-z, A-Z, 0-9,
	// underscores and dashes, with a maximum length of 64 characters.
	//
	// Required.
	Name string `json:"name"`

	// Description of what the function does, used by the model to decide
	// when to call it.
	//
	// Optional.
	Description string `json:"description,omitempty"`

	// Parameters is a JSON Schema object describing the function's
	// parameters, either a hand-written [*JSONSchema] or a schema
	// reflected from a Go struct with [SchemaFromStruct].
	//
	// https://json-schema.org/understanding-json-schema/
	//
	// Optional.
	Parameters any `json:"parameters,omitempty"`
}

// NewTool returns a function tool with the given name, description, and
// parameter schema.
func NewTool(name, description string, parameters any) Tool {
	return Tool{
		Type: ToolTypeFunction,
		Function: ToolFunction{
			Name:        name,
			Description: description,
			Parameters:  parameters,
		},
	}
}

// FunctionCallArguments is a map of argument name to value.
type FunctionCallArguments map[string]any

// GetTypedFunctionCallArgumentValue returns the value of the argument with
// the given name, asserted to the requested type.
func GetTypedFunctionCallArgumentValue[T any](name string, args FunctionCallArguments) (T, error) {
	v, ok := args[name].(T)
	if !ok {
		return v, fmt.Errorf("argument %q is not of type %T", name, v)
	}

	return v, nil
}

// FunctionCall is the name and arguments of a function the model chose to
// call, as generated by the model.
type FunctionCall struct {
	Name      string                `json:"name"`
	Arguments FunctionCallArguments `json:"arguments"`
}

// The API transmits arguments as a JSON-encoded string. Custom marshalling
// surfaces them as a map[string]any that is a little easier to work with,
// and round-trips back to the string encoding the wire contract expects.
func (f *FunctionCall) UnmarshalJSON(b []byte) error {
	var tmp struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"`
	}

	if err := json.Unmarshal(b, &tmp); err != nil {
		return err
	}

	var args map[string]any
	if tmp.Arguments != "" {
		if err := json.Unmarshal([]byte(tmp.Arguments), &args); err != nil {
			return err
		}
	}

	f.Name = tmp.Name
	f.Arguments = args

	return nil
}

// MarshalJSON marshals the function call with its arguments re-encoded as a
// JSON string. A nil argument map encodes as an empty object, so a zero-value
// call still carries a valid arguments string.
func (f FunctionCall) MarshalJSON() ([]byte, error) {
	args := []byte("{}")
	if f.Arguments != nil {
		var err error
		args, err = json.Marshal(f.Arguments)
		if err != nil {
			return nil, err
		}
	}

	return json.Marshal(struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"`
	}{
		Name:      f.Name,
		Arguments: string(args),
	})
}

// ToolCall is a single tool invocation requested by the model. The ID must
// be echoed back in a [ChatRoleTool] message carrying the tool's result.
//
// https://platform.openai.com/docs/api-reference/chat/object#chat/object-choices
type ToolCall struct {
	// ID of the tool call.
	ID string `json:"id"`

	// Type of the tool. Always "function".
	Type string `json:"type"`

	// Function holds the name of the function to call and its arguments.
	Function FunctionCall `json:"function"`
}

// ToolChoice controls how the model selects tools: "none", "auto",
// "required", or a specific function by name via [ToolChoiceFunction].
//
// https://platform.openai.com/docs/api-reference/chat/create#chat-create-tool_choice
type ToolChoice interface {
	isToolChoice()
}

// ToolChoiceMode is one of the provider's predefined tool choice strings.
type ToolChoiceMode string

func (ToolChoiceMode) isToolChoice() {}

const (
	// ToolChoiceNone means the model will not call any tool.
	ToolChoiceNone ToolChoiceMode = "none"

	// ToolChoiceAuto lets the model pick between a message and tool calls.
	ToolChoiceAuto ToolChoiceMode = "auto"

	// ToolChoiceRequired means the model must call one or more tools.
	ToolChoiceRequired ToolChoiceMode = "required"
)

// ToolChoiceFunction forces the model to call the named function.
type ToolChoiceFunction string

func (ToolChoiceFunction) isToolChoice() {}

// MarshalJSON marshals the forced function choice into the object form the
// wire contract expects.
func (tc ToolChoiceFunction) MarshalJSON() ([]byte, error) {
	type function struct {
		Name string `json:"name"`
	}
	return json.Marshal(struct {
		Type     string   `json:"type"`
		Function function `json:"function"`
	}{
		Type:     ToolTypeFunction,
		Function: function{Name: string(tc)},
	})
}
