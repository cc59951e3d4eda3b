package llmsdk

import (
	"encoding/json"
	"fmt"

	"github.com/swaggest/jsonschema-go"
)

// JSONSchema is a JSON Schema, used to describe tool parameters.
//
// https://json-schema.org/understanding-json-schema/reference/index.html
type JSONSchema struct {
	// Type is the type of the schema.
	Type string `json:"type,omitempty"`

	// Description is the description of the schema.
	Description string `json:"description,omitempty"`

	// Properties is the properties of the schema.
	Properties map[string]*JSONSchema `json:"properties,omitempty"`

	// Required is the required properties of the schema.
	Required []string `json:"required,omitempty"`

	// Enum is the enum of the schema.
	Enum []string `json:"enum,omitempty"`

	// Items is the items of the schema.
	Items *JSONSchema `json:"items,omitempty"`

	// AdditionalProperties is the additional properties of the schema.
	AdditionalProperties *JSONSchema `json:"additionalProperties,omitempty"`

	// AnyOf is the anyOf of the schema.
	AnyOf []*JSONSchema `json:"anyOf,omitempty"`

	// Default is the default of the schema.
	Default any `json:"default,omitempty"`

	// Pattern is the pattern of the schema.
	Pattern string `json:"pattern,omitempty"`
}

// SchemaFromStruct reflects a JSON Schema from a Go struct, returned as a
// generic map suitable for [ToolFunction.Parameters]. Field behavior is
// controlled with json and jsonschema struct tags:
//
//	type WeatherParams struct {
//		Location string `json:"location" required:"true" description:"City and state"`
//		Unit     string `json:"unit,omitempty" enum:"celsius,fahrenheit"`
//	}
func SchemaFromStruct(v any) (map[string]any, error) {
	reflector := jsonschema.Reflector{}

	schema, err := reflector.Reflect(v)
	if err != nil {
		return nil, fmt.Errorf("failed to reflect struct to JSON schema: %w", err)
	}

	b, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	var schemaMap map[string]any
	if err := json.Unmarshal(b, &schemaMap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema: %w", err)
	}

	return schemaMap, nil
}
