package health

import (
	"context"
	"net/http"
	"regexp"
	"time"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/drblury/routeweaver/dispatch"
	"github.com/drblury/routeweaver/schema"
)

const defaultProbeTimeout = 2 * time.Second

// VersionProvider returns the payload exposed by the version endpoint,
// commonly backed by build metadata injected at link time.
type VersionProvider func() any

// Option configures the health routes via the functional options pattern.
type Option func(*handler)

type handler struct {
	probeTimeout    time.Duration
	livenessChecks  []CheckFunc
	readinessChecks []CheckFunc
	version         VersionProvider
}

// WithLivenessChecks registers probes run by the healthz endpoint.
func WithLivenessChecks(checks ...CheckFunc) Option {
	return func(h *handler) {
		h.livenessChecks = append(h.livenessChecks, checks...)
	}
}

// WithReadinessChecks registers probes run by the readyz endpoint.
func WithReadinessChecks(checks ...CheckFunc) Option {
	return func(h *handler) {
		h.readinessChecks = append(h.readinessChecks, checks...)
	}
}

// WithProbeTimeout bounds how long a single endpoint spends on its probes.
func WithProbeTimeout(timeout time.Duration) Option {
	return func(h *handler) {
		if timeout > 0 {
			h.probeTimeout = timeout
		}
	}
}

// WithVersionProvider swaps the default version payload with a user supplied
// source of build metadata.
func WithVersionProvider(provider VersionProvider) Option {
	return func(h *handler) {
		if provider != nil {
			h.version = provider
		}
	}
}

type statusPayload struct {
	Status string `json:"status"`
}

var statusSchema = schema.OpenAPI(
	openapi3.NewObjectSchema().WithProperty("status", openapi3.NewStringSchema()),
)

// Routes returns dispatch routes for /healthz, /readyz, /status, and
// /version. Append them to an application's route list and serve them
// through the dispatcher like any other route.
func Routes(opts ...Option) []dispatch.Route {
	h := &handler{
		probeTimeout: defaultProbeTimeout,
		version: func() any {
			return map[string]string{}
		},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}

	return []dispatch.Route{
		{
			Pattern: regexp.MustCompile(`^/healthz$`),
			Handlers: map[string]dispatch.RequestHandler{
				http.MethodGet: {Handler: h.getHealthz, Response: statusSchema},
			},
		},
		{
			Pattern: regexp.MustCompile(`^/readyz$`),
			Handlers: map[string]dispatch.RequestHandler{
				http.MethodGet: {Handler: h.getReadyz, Response: statusSchema},
			},
		},
		{
			Pattern: regexp.MustCompile(`^/status$`),
			Handlers: map[string]dispatch.RequestHandler{
				http.MethodGet: {Handler: h.getStatus, Response: statusSchema},
			},
		},
		{
			Pattern: regexp.MustCompile(`^/version$`),
			Handlers: map[string]dispatch.RequestHandler{
				http.MethodGet: {Handler: h.getVersion},
			},
		},
	}
}

func (h *handler) getHealthz(ctx *dispatch.Context, w http.ResponseWriter, r *http.Request) (any, error) {
	if err := h.runChecks(r.Context(), h.livenessChecks); err != nil {
		return nil, dispatch.NewError(http.StatusServiceUnavailable, err.Error())
	}
	return statusPayload{Status: "ok"}, nil
}

func (h *handler) getReadyz(ctx *dispatch.Context, w http.ResponseWriter, r *http.Request) (any, error) {
	if err := h.runChecks(r.Context(), h.readinessChecks); err != nil {
		return nil, dispatch.NewError(http.StatusServiceUnavailable, err.Error())
	}
	return statusPayload{Status: "ready"}, nil
}

func (h *handler) getStatus(ctx *dispatch.Context, w http.ResponseWriter, r *http.Request) (any, error) {
	return statusPayload{Status: "HEALTHY"}, nil
}

func (h *handler) getVersion(ctx *dispatch.Context, w http.ResponseWriter, r *http.Request) (any, error) {
	payload := h.version()
	if payload == nil {
		payload = map[string]string{}
	}
	return payload, nil
}

func (h *handler) runChecks(ctx context.Context, checks []CheckFunc) error {
	if len(checks) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(contextOrBackground(ctx), h.probeTimeout)
	defer cancel()

	for _, check := range checks {
		if check == nil {
			continue
		}
		if err := check(ctx); err != nil {
			return err
		}
	}
	return nil
}
