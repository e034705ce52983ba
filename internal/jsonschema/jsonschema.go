package jsonschema

// Schema represents the structure of a JSON Schema used for defining function
// parameters and structured responses. It follows the JSON Schema standard,
// supporting the types, properties, and validation keywords that chat
// completion wire formats understand.
type Schema struct {
	// Type specifies the data type (e.g. "object", "array", "string", "number").
	Type        string   `json:"type,omitempty"`
	Description string   `json:"description,omitempty"`
	Required    []string `json:"required,omitempty"`
	// Properties of an object schema, each with its own schema.
	Properties map[string]*Schema `json:"properties,omitempty"`
	// Items defines the element schema for array types.
	Items *Schema `json:"items,omitempty"`
	// AdditionalProperties controls whether undeclared properties are allowed.
	AdditionalProperties any `json:"additionalProperties,omitempty"`
	// Default value for the parameter.
	Default any `json:"default,omitempty"`
	// Enum lists the allowed values for the parameter.
	Enum []any `json:"enum,omitempty"`
}

// ObjectSchema returns the empty object schema, the default for function
// declarations that omit their parameters.
func ObjectSchema() *Schema {
	return &Schema{Type: "object"}
}
