package llmsdk_test

import (
	"encoding/json"
	"testing"

	"github.com/picatz/llmsdk"
	"github.com/shoenig/test/must"
)

func TestJSONSchemaSerialization(t *testing.T) {
	schema := &llmsdk.JSONSchema{
		Type: "object",
		Properties: map[string]*llmsdk.JSONSchema{
			"location": {
				Type:        "string",
				Description: "City and state, e.g. San Francisco, CA.",
			},
			"unit": {
				Type: "string",
				Enum: []string{"celsius", "fahrenheit"},
			},
		},
		Required: []string{"location"},
	}

	b, err := json.Marshal(schema)
	must.NoError(t, err)

	var decoded map[string]any
	must.NoError(t, json.Unmarshal(b, &decoded))
	must.Eq(t, "object", decoded["type"].(string))
	must.Eq(t, []any{"location"}, decoded["required"].([]any))
}

func TestSchemaFromStruct(t *testing.T) {
	type weatherParams struct {
		Location string `json:"location" required:"true" description:"City and state."`
		Unit     string `json:"unit,omitempty" enum:"celsius,fahrenheit"`
	}

	schema, err := llmsdk.SchemaFromStruct(weatherParams{})
	must.NoError(t, err)
	must.Eq(t, "object", schema["type"].(string))

	properties := schema["properties"].(map[string]any)
	must.MapContainsKey(t, properties, "location")
	must.MapContainsKey(t, properties, "unit")

	// The reflected schema must be usable directly as tool parameters.
	tool := llmsdk.NewTool("get_weather", "Get the current weather.", schema)
	b, err := json.Marshal(tool)
	must.NoError(t, err)
	must.StrContains(t, string(b), `"name":"get_weather"`)
	must.StrContains(t, string(b), `"location"`)
}
