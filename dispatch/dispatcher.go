package dispatch

import (
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"github.com/drblury/routeweaver/responder"
)

// Option configures the dispatcher via the functional options pattern.
type Option func(*options)

type options struct {
	logger     *slog.Logger
	responder  *responder.Responder
	production bool
}

func defaultOptions() *options {
	return &options{}
}

// WithLogger provides the structured logger used for dispatch diagnostics
// and, unless a custom responder is supplied, for error reporting.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithResponder replaces the responder used to write success and error
// responses.
func WithResponder(r *responder.Responder) Option {
	return func(o *options) {
		if r != nil {
			o.responder = r
		}
	}
}

// WithProduction toggles production behaviour on the default responder:
// 5xx messages are redacted and raw failures are no longer logged.
func WithProduction(production bool) Option {
	return func(o *options) {
		o.production = production
	}
}

// Dispatcher routes requests through an ordered route list. It implements
// http.Handler and is safe for concurrent use: the route list is read-only
// and all per-request state lives in the Context.
type Dispatcher struct {
	routes []Route
	resp   *responder.Responder
	log    *slog.Logger
}

// New builds a Dispatcher over the given routes. The slice is copied; the
// routes themselves must not be mutated afterwards.
func New(routes []Route, opts ...Option) *Dispatcher {
	settings := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(settings)
		}
	}

	// Without an explicit logger the dispatcher and its responder share
	// one: the supplied responder's, or slog's default.
	if settings.responder == nil {
		if settings.logger == nil {
			settings.logger = slog.Default()
		}
		settings.responder = responder.NewResponder(
			responder.WithLogger(settings.logger),
			responder.WithProduction(settings.production),
		)
	} else if settings.logger == nil {
		settings.logger = settings.responder.Logger()
	}

	cloned := make([]Route, len(routes))
	copy(cloned, routes)

	return &Dispatcher{
		routes: cloned,
		resp:   settings.responder,
		log:    settings.logger,
	}
}

// ServeHTTP is the per-request failure boundary: any error raised by
// matching, validation, or handler invocation is mapped to a JSON error
// response here, unless the response was already written, in which case the
// error can only be logged.
func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rw := &responseWriter{ResponseWriter: w}

	defer func() {
		if recovered := recover(); recovered != nil {
			d.handleFailure(rw, r, fmt.Errorf("handler panic: %v", recovered))
		}
	}()

	if err := d.dispatch(rw, r); err != nil {
		d.handleFailure(rw, r, err)
	}
}

func (d *Dispatcher) handleFailure(w *responseWriter, r *http.Request, err error) {
	if w.Written() {
		d.log.Error("request failed after response was written",
			"error", err,
			"method", r.Method,
			"path", requestPath(r),
		)
		return
	}
	d.resp.WriteError(w, r, err)
}

func requestPath(r *http.Request) string {
	if r.URL == nil {
		return ""
	}
	return r.URL.Path
}

func (d *Dispatcher) dispatch(w *responseWriter, r *http.Request) error {
	if r.URL == nil || r.URL.Path == "" || r.Method == "" {
		return NewMalformedRequestError()
	}

	path := r.URL.Path
	method := strings.ToUpper(r.Method)
	ctx := &Context{}

	for _, route := range d.routes {
		if route.Pattern == nil {
			continue
		}

		params, ok := matchParams(route.Pattern, path)
		if !ok {
			continue
		}

		if rh, declared := route.Handlers[MethodAny]; declared {
			if err := d.execute(rh, w, r, params, ctx); err != nil {
				return err
			}
			if w.Written() {
				return nil
			}
		}

		if rh, declared := route.Handlers[method]; declared {
			if err := d.execute(rh, w, r, params, ctx); err != nil {
				return err
			}
			if w.Written() {
				return nil
			}
		}
	}

	return NewNotFoundError(method, path)
}

// matchParams tests the pattern against the path and captures named groups
// in the same pass, so handlers never re-run the pattern.
func matchParams(pattern *regexp.Regexp, path string) (map[string]string, bool) {
	match := pattern.FindStringSubmatch(path)
	if match == nil {
		return nil, false
	}

	params := make(map[string]string)
	for i, name := range pattern.SubexpNames() {
		if i == 0 || name == "" {
			continue
		}
		params[name] = match[i]
	}
	return params, true
}
