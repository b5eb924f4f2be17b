// Package middleware lets externally written middleware participate in the
// dispatch pipeline: connect-style callback middleware via Adapt, stock
// net/http middleware via AdaptHTTP, and whole-document OpenAPI request
// validation via OpenAPIRequestValidator.
package middleware

import (
	"net/http"
	"sync"

	"github.com/drblury/routeweaver/dispatch"
)

// Func is a three-argument callback-style middleware: it receives the raw
// request and response and signals completion by calling next, optionally
// with an error.
type Func func(w http.ResponseWriter, r *http.Request, next func(err error))

// ErrorHandler recovers from an error supplied by an adapted middleware's
// completion callback. Its return values become the handler's.
type ErrorHandler func(ctx *dispatch.Context, w http.ResponseWriter, r *http.Request, err error) (any, error)

// Adapt wraps a callback-style middleware as a route handler with no schemas
// attached. The handler blocks until the middleware's completion callback
// fires; only the first invocation of the callback counts. A callback error
// goes to onError when provided and otherwise fails the request with 500
// "Middleware error: <error>".
func Adapt(mw Func, onError ErrorHandler) dispatch.HandlerFunc {
	return func(ctx *dispatch.Context, w http.ResponseWriter, r *http.Request) (any, error) {
		done := make(chan error, 1)
		var once sync.Once

		mw(w, r, func(err error) {
			once.Do(func() {
				done <- err
			})
		})

		if err := <-done; err != nil {
			if onError != nil {
				return onError(ctx, w, r, err)
			}
			return nil, dispatch.NewMiddlewareError(err)
		}
		return nil, nil
	}
}

// AdaptHTTP wraps net/http middleware as a route handler. The middleware
// either writes a response, which stops dispatch for the request, or passes
// through to a no-op next, which lets later routes run.
func AdaptHTTP(mw func(http.Handler) http.Handler) dispatch.HandlerFunc {
	passthrough := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	return func(ctx *dispatch.Context, w http.ResponseWriter, r *http.Request) (any, error) {
		mw(passthrough).ServeHTTP(w, r)
		return nil, nil
	}
}
