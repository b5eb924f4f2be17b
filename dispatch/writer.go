package dispatch

import "net/http"

// responseWriter records whether the response has begun being written. Once
// it has, no further validation, handler invocation, or response writing may
// happen for the request; every step of the dispatcher consults Written
// before proceeding.
type responseWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (w *responseWriter) WriteHeader(status int) {
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}

// Written reports whether headers have been sent.
func (w *responseWriter) Written() bool {
	return w.wroteHeader
}

// Unwrap exposes the underlying writer for http.ResponseController.
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
