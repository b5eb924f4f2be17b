package dispatch

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/drblury/routeweaver/jsonutil"
	"github.com/drblury/routeweaver/schema"
)

// execute runs one RequestHandler: it validates whichever request parts the
// handler declares schemas for, populates the Context, invokes the handler,
// and serializes a returned value as the response. Validation failures map
// to 422; handler errors propagate untouched.
func (d *Dispatcher) execute(rh RequestHandler, w *responseWriter, r *http.Request, params map[string]string, ctx *Context) error {
	if rh.Handler == nil {
		return nil
	}

	if rh.Body != nil {
		body, err := readBody(r)
		if err != nil {
			return err
		}
		validated, err := rh.Body.Validate(body)
		if err != nil {
			return NewUnprocessableError(err.Error())
		}
		ctx.Body = validated
	}

	if rh.Params != nil {
		if params == nil {
			return NewUnprocessableError("no url parameters found")
		}
		validated, err := rh.Params.Validate(paramsValue(params))
		if err != nil {
			return NewUnprocessableError(err.Error())
		}
		ctx.Params = validated
	}

	if rh.Query != nil {
		validated, err := rh.Query.Validate(queryValue(r.URL))
		if err != nil {
			return NewUnprocessableError(err.Error())
		}
		ctx.Query = validated
	}

	out, err := rh.Handler(ctx, w, r)
	if err != nil {
		return err
	}

	// A handler that wrote its own response took full control; a nil
	// return means this execution was middleware-like. Either way there
	// is nothing left to serialize.
	if w.Written() || out == nil {
		return nil
	}

	if rh.Response != nil {
		validated, err := rh.Response.Validate(out, schema.Strict())
		if err != nil {
			return fmt.Errorf("response validation failed: %w", err)
		}
		out = validated
	}

	d.resp.RespondJSON(w, r, http.StatusOK, out)
	return nil
}

// readBody drains the request body and decodes it as JSON. Parse failures
// are client errors; stream failures are not.
func readBody(r *http.Request) (any, error) {
	if r.Body == nil {
		return nil, NewUnprocessableError("request body is required")
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}

	var decoded any
	if err := jsonutil.Unmarshal(raw, &decoded); err != nil {
		return nil, NewUnprocessableError(err.Error())
	}
	return decoded, nil
}

func paramsValue(params map[string]string) map[string]any {
	value := make(map[string]any, len(params))
	for name, captured := range params {
		value[name] = captured
	}
	return value
}

// queryValue flattens the query string to a single value per key, last value
// winning on duplicates.
func queryValue(u *url.URL) map[string]any {
	values := u.Query()
	flat := make(map[string]any, len(values))
	for key, candidates := range values {
		if len(candidates) > 0 {
			flat[key] = candidates[len(candidates)-1]
		}
	}
	return flat
}
