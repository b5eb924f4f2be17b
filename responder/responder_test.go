package responder_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/drblury/routeweaver/dispatch"
	"github.com/drblury/routeweaver/responder"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWriteErrorDefaultsToInternalServerError(t *testing.T) {
	r := responder.NewResponder(responder.WithLogger(quietLogger()))
	rr := httptest.NewRecorder()

	r.WriteError(rr, httptest.NewRequest(http.MethodGet, "/x", nil), errors.New("database exploded"))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status: got %d want %d", rr.Code, http.StatusInternalServerError)
	}
	if got := strings.TrimSpace(rr.Body.String()); got != `{"message":"database exploded"}` {
		t.Fatalf("unexpected body: %q", got)
	}
	if got := rr.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("unexpected content type: %q", got)
	}
}

func TestWriteErrorHonoursDeclaredStatus(t *testing.T) {
	r := responder.NewResponder(responder.WithLogger(quietLogger()))
	rr := httptest.NewRecorder()

	r.WriteError(rr, httptest.NewRequest(http.MethodGet, "/x", nil), dispatch.NewUnprocessableError("name is required"))

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("unexpected status: got %d want %d", rr.Code, http.StatusUnprocessableEntity)
	}
	if got := strings.TrimSpace(rr.Body.String()); got != `{"message":"name is required"}` {
		t.Fatalf("unexpected body: %q", got)
	}
}

func TestWriteErrorProductionRedaction(t *testing.T) {
	r := responder.NewResponder(
		responder.WithLogger(quietLogger()),
		responder.WithProduction(true),
	)

	t.Run("5xx messages are replaced", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r.WriteError(rr, httptest.NewRequest(http.MethodGet, "/x", nil), errors.New("secret connection string leaked"))

		if rr.Code != http.StatusInternalServerError {
			t.Fatalf("unexpected status: got %d", rr.Code)
		}
		if got := strings.TrimSpace(rr.Body.String()); got != `{"message":"internal server error"}` {
			t.Fatalf("expected redacted message, got %q", got)
		}
	})

	t.Run("4xx messages keep their specific text", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r.WriteError(rr, httptest.NewRequest(http.MethodGet, "/x", nil), dispatch.NewUnprocessableError("id must be an integer"))

		if got := strings.TrimSpace(rr.Body.String()); got != `{"message":"id must be an integer"}` {
			t.Fatalf("expected specific message, got %q", got)
		}
	})
}

func TestWriteErrorUsesClassifier(t *testing.T) {
	sentinel := errors.New("quota exceeded")
	r := responder.NewResponder(
		responder.WithLogger(quietLogger()),
		responder.WithErrorClassifier(func(err error) (int, bool) {
			if errors.Is(err, sentinel) {
				return http.StatusTooManyRequests, true
			}
			return 0, false
		}),
	)

	rr := httptest.NewRecorder()
	r.WriteError(rr, httptest.NewRequest(http.MethodGet, "/x", nil), sentinel)

	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("unexpected status: got %d want %d", rr.Code, http.StatusTooManyRequests)
	}
}

func TestWriteErrorIgnoresNil(t *testing.T) {
	r := responder.NewResponder(responder.WithLogger(quietLogger()))
	rr := httptest.NewRecorder()

	r.WriteError(rr, httptest.NewRequest(http.MethodGet, "/x", nil), nil)

	if rr.Code != http.StatusOK || rr.Body.Len() != 0 {
		t.Fatalf("expected untouched recorder, got status %d body %q", rr.Code, rr.Body.String())
	}
}

func TestRespondJSON(t *testing.T) {
	r := responder.NewResponder(responder.WithLogger(quietLogger()))
	rr := httptest.NewRecorder()

	r.RespondJSON(rr, httptest.NewRequest(http.MethodGet, "/x", nil), http.StatusCreated, map[string]string{"id": "7"})

	if rr.Code != http.StatusCreated {
		t.Fatalf("unexpected status: got %d want %d", rr.Code, http.StatusCreated)
	}
	if got := strings.TrimSpace(rr.Body.String()); got != `{"id":"7"}` {
		t.Fatalf("unexpected body: %q", got)
	}
	if got := rr.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("unexpected content type: %q", got)
	}
}
