package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
)

// HTTPMiddleware wraps an http.Handler to produce a new http.Handler.
type HTTPMiddleware func(http.Handler) http.Handler

// Chain applies middlewares around handler, first middleware outermost.
func Chain(handler http.Handler, middlewares ...HTTPMiddleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		middleware := middlewares[i]
		if middleware == nil {
			continue
		}
		handler = middleware(handler)
	}
	return handler
}

// RequestLogging logs each incoming request at debug level before handing it
// to the dispatcher. Paths in quietdownRoutes are skipped entirely; header
// names in hideHeaders are redacted from the log record.
func RequestLogging(logger *slog.Logger, quietdownRoutes []string, hideHeaders []string) HTTPMiddleware {
	quietRoutesCopy := cloneStrings(quietdownRoutes)
	redactedCopy := cloneStrings(hideHeaders)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !shouldQuietRoute(r.URL.Path, quietRoutesCopy) {
				headers := cloneHeaders(r.Header)
				redactHeaders(headers, redactedCopy)

				attrs := []any{
					"Path", r.URL.Path,
					"Method", r.Method,
					"Header", headers,
				}

				if r.ContentLength > 0 {
					attrs = append(attrs, "ContentLength", r.ContentLength)
				}

				logger.With(attrs...).Debug("Request")
			}

			next.ServeHTTP(w, r)
		})
	}
}

func shouldQuietRoute(path string, quietdownRoutes []string) bool {
	for _, quietPath := range quietdownRoutes {
		if path == quietPath {
			return true
		}
	}
	return false
}

func cloneStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	cloned := make([]string, len(values))
	copy(cloned, values)
	return cloned
}

func cloneHeaders(src http.Header) http.Header {
	headers := make(http.Header, len(src))
	for k, v := range src {
		copied := make([]string, len(v))
		copy(copied, v)
		headers[k] = copied
	}
	return headers
}

func redactHeaders(headers http.Header, hideHeaders []string) {
	for _, header := range hideHeaders {
		canonical := http.CanonicalHeaderKey(header)
		values, exists := headers[canonical]
		if !exists {
			continue
		}

		redactedLen := 0
		for _, value := range values {
			redactedLen += len(value)
		}

		headers[canonical] = []string{fmt.Sprintf("[REDACTED - %d bytes]", redactedLen)}
	}
}
