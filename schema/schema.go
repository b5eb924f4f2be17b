// Package schema defines the validation boundary the dispatcher consumes and
// ships adapters for kin-openapi schemas and JSON Schema documents. Any
// component implementing Validator can gate a route's body, params, query,
// or response.
package schema

// Validator validates a value and returns it, possibly coerced, or a
// descriptive error. Implementations must be safe for concurrent use.
type Validator interface {
	Validate(value any, opts ...Option) (any, error)
}

// Option tunes a single Validate call.
type Option func(*Options)

// Options collects the per-call validation settings.
type Options struct {
	// Strict disables coercion: the value's shape must already be
	// correct. Response validation always runs strict.
	Strict bool
}

// Strict disables coercion for this Validate call.
func Strict() Option {
	return func(o *Options) {
		o.Strict = true
	}
}

func buildOptions(opts []Option) Options {
	var settings Options
	for _, opt := range opts {
		if opt != nil {
			opt(&settings)
		}
	}
	return settings
}

// ValidatorFunc adapts a plain function to the Validator interface.
type ValidatorFunc func(value any, opts ...Option) (any, error)

// Validate calls fn.
func (fn ValidatorFunc) Validate(value any, opts ...Option) (any, error) {
	return fn(value, opts...)
}
