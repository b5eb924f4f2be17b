package schema_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/drblury/routeweaver/schema"
)

func TestOpenAPIValidatorCoercion(t *testing.T) {
	s := openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewIntegerSchema()).
		WithProperty("ratio", openapi3.NewFloat64Schema()).
		WithProperty("active", openapi3.NewBoolSchema()).
		WithProperty("label", openapi3.NewStringSchema())
	s.Required = []string{"id"}

	validator := schema.OpenAPI(s)

	t.Run("string leaves coerce to declared types", func(t *testing.T) {
		validated, err := validator.Validate(map[string]string{
			"id":     "42",
			"ratio":  "0.5",
			"active": "true",
			"label":  "seven",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := map[string]any{
			"id":     int64(42),
			"ratio":  0.5,
			"active": true,
			"label":  "seven",
		}
		if !reflect.DeepEqual(validated, want) {
			t.Fatalf("unexpected value: got %#v want %#v", validated, want)
		}
	})

	t.Run("unparseable strings fail validation with the field name", func(t *testing.T) {
		_, err := validator.Validate(map[string]string{"id": "abc"})
		if err == nil {
			t.Fatal("expected validation error")
		}
		if !strings.Contains(err.Error(), "id") {
			t.Fatalf("expected message to reference the failing field, got %q", err)
		}
	})

	t.Run("missing required property fails", func(t *testing.T) {
		if _, err := validator.Validate(map[string]any{"label": "x"}); err == nil {
			t.Fatal("expected validation error for missing id")
		}
	})

	t.Run("strict mode never coerces", func(t *testing.T) {
		if _, err := validator.Validate(map[string]any{"id": "42"}, schema.Strict()); err == nil {
			t.Fatal("expected strict validation to reject a string id")
		}

		validated, err := validator.Validate(map[string]any{"id": float64(42)}, schema.Strict())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(validated, map[string]any{"id": float64(42)}) {
			t.Fatalf("unexpected value: %#v", validated)
		}
	})

	t.Run("structs are validated through their JSON view", func(t *testing.T) {
		type payload struct {
			ID int `json:"id"`
		}
		if _, err := validator.Validate(payload{ID: 7}, schema.Strict()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestJSONSchemaValidator(t *testing.T) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(`{
		"type": "object",
		"required": ["name"],
		"properties": {"name": {"type": "string"}}
	}`))
	if err != nil {
		t.Fatalf("failed to parse schema document: %v", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("item.json", doc); err != nil {
		t.Fatalf("failed to add schema resource: %v", err)
	}
	compiled, err := compiler.Compile("item.json")
	if err != nil {
		t.Fatalf("failed to compile schema: %v", err)
	}

	validator := schema.JSONSchema(compiled)

	t.Run("valid value passes", func(t *testing.T) {
		validated, err := validator.Validate(map[string]any{"name": "x"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(validated, map[string]any{"name": "x"}) {
			t.Fatalf("unexpected value: %#v", validated)
		}
	})

	t.Run("missing required property fails", func(t *testing.T) {
		if _, err := validator.Validate(map[string]any{}); err == nil {
			t.Fatal("expected validation error")
		}
	})
}

func TestValidatorFunc(t *testing.T) {
	called := false
	fn := schema.ValidatorFunc(func(value any, opts ...schema.Option) (any, error) {
		called = true
		return value, nil
	})

	if _, err := fn.Validate("anything"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatal("expected wrapped function to be called")
	}
}
