package dispatch

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a failure that carries the HTTP status it should map to. All
// failures the dispatcher raises itself are of this type; handler errors of
// any other shape default to 500.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// HTTPStatus reports the response status this error maps to.
func (e *Error) HTTPStatus() int {
	return e.Status
}

// NewError builds an Error with an explicit status code.
func NewError(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// NewMalformedRequestError marks a request that arrived without a URL or
// method. Unreachable with a conformant net/http server.
func NewMalformedRequestError() *Error {
	return NewError(http.StatusTeapot, "request is missing a url or method")
}

// NewNotFoundError marks a request for which no route produced a response.
func NewNotFoundError(method, path string) *Error {
	return NewError(http.StatusNotFound, fmt.Sprintf("%s %s", method, path))
}

// NewUnprocessableError marks a body, params, or query validation failure.
// The message is the validator's own so clients get actionable feedback.
func NewUnprocessableError(message string) *Error {
	return NewError(http.StatusUnprocessableEntity, message)
}

// NewMiddlewareError wraps an error supplied by an adapted middleware's
// completion callback when no custom error handler was installed.
func NewMiddlewareError(err error) *Error {
	return NewError(http.StatusInternalServerError, fmt.Sprintf("Middleware error: %v", err))
}

// StatusOf extracts the HTTP status an error declares, defaulting to 500 for
// errors of unknown shape.
func StatusOf(err error) int {
	var statusErr *Error
	if errors.As(err, &statusErr) {
		return statusErr.Status
	}
	var carrier interface{ HTTPStatus() int }
	if errors.As(err, &carrier) {
		return carrier.HTTPStatus()
	}
	return http.StatusInternalServerError
}
