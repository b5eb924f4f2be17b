// Package responder maps request-processing failures to JSON error responses
// and writes success payloads. It is the single failure boundary the
// dispatcher funnels every error through.
package responder

import (
	"errors"
	"log/slog"
	"net/http"
)

const (
	jsonContentType = "application/json"

	// internalServerErrorMessage replaces 5xx messages in production so
	// server internals never reach clients. 4xx messages always keep
	// their specific text.
	internalServerErrorMessage = "internal server error"
)

// ErrorClassifierFunc inspects an error and returns the HTTP status that
// should be used for the response. The boolean indicates whether the error
// was classified and prevents the default status derivation from running.
type ErrorClassifierFunc func(err error) (status int, handled bool)

// ResponderOption follows the functional options pattern used by
// NewResponder to configure optional collaborators.
type ResponderOption func(*Responder)

// Responder centralises error mapping, JSON rendering, and diagnostics for
// the dispatch pipeline. Error bodies are always {"message": <string>}.
type Responder struct {
	log             *slog.Logger
	production      bool
	errorClassifier ErrorClassifierFunc
}

// NewResponder constructs a Responder with the global slog logger and
// non-production behaviour. Use ResponderOption functions to override
// specific behaviours.
func NewResponder(opts ...ResponderOption) *Responder {
	r := &Responder{
		log: slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// WithLogger injects a custom slog logger for failure diagnostics.
func WithLogger(logger *slog.Logger) ResponderOption {
	return func(r *Responder) {
		if logger != nil {
			r.log = logger
		}
	}
}

// WithProduction controls redaction: in production, messages of 5xx
// responses are replaced with a generic string and raw failures are not
// logged.
func WithProduction(production bool) ResponderOption {
	return func(r *Responder) {
		r.production = production
	}
}

// WithErrorClassifier installs a classifier used by WriteError to derive the
// HTTP status code from errors before the default derivation runs.
func WithErrorClassifier(classifier ErrorClassifierFunc) ResponderOption {
	return func(r *Responder) {
		r.errorClassifier = classifier
	}
}

// Logger returns the slog logger used internally by the responder.
func (r *Responder) Logger() *slog.Logger {
	return r.logger()
}

func (r *Responder) logger() *slog.Logger {
	if r == nil || r.log == nil {
		return slog.Default()
	}
	return r.log
}

func (r *Responder) status(err error) int {
	if r.errorClassifier != nil {
		if status, handled := r.errorClassifier(err); handled {
			return status
		}
	}

	var carrier interface{ HTTPStatus() int }
	if errors.As(err, &carrier) {
		return carrier.HTTPStatus()
	}
	return http.StatusInternalServerError
}
