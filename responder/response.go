package responder

import (
	"net/http"

	"github.com/drblury/routeweaver/jsonutil"
)

type errorEnvelope struct {
	Message string `json:"message"`
}

// WriteError maps err to a status code and writes the {"message": <string>}
// error body. Outside production the raw failure is logged with a trace ID
// before the response is written.
func (r *Responder) WriteError(w http.ResponseWriter, req *http.Request, err error) {
	if err == nil {
		return
	}

	status := r.status(err)
	message := err.Error()

	if !r.production {
		r.logger().With(
			"error", err.Error(),
			"traceId", newTraceID(),
			"status", status,
			"method", requestMethod(req),
			"path", requestPath(req),
		).Error("request failed")
	}

	if status >= http.StatusInternalServerError && r.production {
		message = internalServerErrorMessage
	}

	r.respondWithJSON(w, status, errorEnvelope{Message: message})
}

// RespondJSON serialises the provided value and writes it to the response
// using the supplied status code.
func (r *Responder) RespondJSON(w http.ResponseWriter, req *http.Request, status int, v any) {
	r.respondWithJSON(w, status, v)
}

func (r *Responder) respondWithJSON(w http.ResponseWriter, status int, payload any) {
	if w == nil {
		return
	}

	body, err := jsonutil.Marshal(payload)
	if err != nil {
		r.logger().Error("failed to encode response", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", jsonContentType)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		r.logger().Error("failed to write response", "error", err)
	}
}

func requestMethod(req *http.Request) string {
	if req == nil {
		return ""
	}
	return req.Method
}

func requestPath(req *http.Request) string {
	if req == nil || req.URL == nil {
		return ""
	}
	return req.URL.Path
}
