package schema

import (
	"github.com/santhosh-tekuri/jsonschema/v6"
)

type jsonSchemaValidator struct {
	schema *jsonschema.Schema
}

// JSONSchema wraps a compiled JSON Schema as a Validator. JSON Schema has no
// coercion semantics, so this adapter validates the JSON view of the value
// as-is regardless of strictness.
func JSONSchema(s *jsonschema.Schema) Validator {
	return &jsonSchemaValidator{schema: s}
}

func (v *jsonSchemaValidator) Validate(value any, opts ...Option) (any, error) {
	normalized, err := normalize(value)
	if err != nil {
		return nil, err
	}
	if err := v.schema.Validate(normalized); err != nil {
		return nil, err
	}
	return normalized, nil
}
