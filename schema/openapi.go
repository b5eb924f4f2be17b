package schema

import (
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/drblury/routeweaver/jsonutil"
)

type openapiValidator struct {
	schema *openapi3.Schema
}

// OpenAPI wraps a kin-openapi schema as a Validator. Unless the call is
// strict, string leaves are coerced to the integer, number, or boolean type
// the schema declares, which is what makes path parameters and query values
// (always captured as strings) validatable against typed schemas.
func OpenAPI(s *openapi3.Schema) Validator {
	return &openapiValidator{schema: s}
}

func (v *openapiValidator) Validate(value any, opts ...Option) (any, error) {
	settings := buildOptions(opts)

	normalized, err := normalize(value)
	if err != nil {
		return nil, err
	}

	if !settings.Strict {
		normalized = coerce(normalized, v.schema)
	}

	if err := v.schema.VisitJSON(normalized, openapi3.MultiErrors()); err != nil {
		return nil, err
	}
	return normalized, nil
}

// normalize produces the JSON view of a value so the schema engine sees the
// types serialization would produce. Values already in JSON shape pass
// through untouched.
func normalize(value any) (any, error) {
	switch value.(type) {
	case nil, bool, string, float64, int64, map[string]any, []any:
		return value, nil
	}

	raw, err := jsonutil.Marshal(value)
	if err != nil {
		return nil, err
	}
	var normalized any
	if err := jsonutil.Unmarshal(raw, &normalized); err != nil {
		return nil, err
	}
	return normalized, nil
}

// coerce converts string leaves to the scalar type the schema declares.
// Unparseable strings are left alone so validation reports them itself.
func coerce(value any, s *openapi3.Schema) any {
	if s == nil {
		return value
	}

	switch typed := value.(type) {
	case string:
		return coerceScalar(typed, s)
	case map[string]any:
		for name, ref := range s.Properties {
			if ref == nil || ref.Value == nil {
				continue
			}
			if member, ok := typed[name]; ok {
				typed[name] = coerce(member, ref.Value)
			}
		}
		return typed
	default:
		return value
	}
}

func coerceScalar(raw string, s *openapi3.Schema) any {
	switch {
	case s.Type.Includes(openapi3.TypeInteger):
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return parsed
		}
	case s.Type.Includes(openapi3.TypeNumber):
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
			return parsed
		}
	case s.Type.Includes(openapi3.TypeBoolean):
		if parsed, err := strconv.ParseBool(raw); err == nil {
			return parsed
		}
	}
	return raw
}
