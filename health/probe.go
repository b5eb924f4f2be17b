// Package health exposes liveness, readiness, status, and version endpoints
// as dispatch routes, plus probe constructors for the dependencies a service
// typically waits on.
package health

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// CheckFunc is a health check that returns an error when the resource is
// unavailable.
type CheckFunc func(ctx context.Context) error

// DBPinger captures the subset of *sql.DB used for readiness checks.
type DBPinger interface {
	PingContext(ctx context.Context) error
}

// MongoPinger captures the subset of the MongoDB client used for readiness
// checks.
type MongoPinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

// HTTPDoer represents the subset of *http.Client required by the HTTP probe.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Ping wraps an arbitrary ping function with standardised error handling.
func Ping(name string, fn func(ctx context.Context) error) CheckFunc {
	return func(ctx context.Context) error {
		if fn == nil {
			return fmt.Errorf("%s probe: ping function is nil", name)
		}
		if err := fn(contextOrBackground(ctx)); err != nil {
			return fmt.Errorf("%s probe failed: %w", name, err)
		}
		return nil
	}
}

// MongoPing creates a CheckFunc that pings MongoDB using the provided
// client. If readPref is nil it defaults to readpref.Primary.
func MongoPing(client MongoPinger, readPref *readpref.ReadPref) CheckFunc {
	return func(ctx context.Context) error {
		if client == nil {
			return errors.New("mongo probe: client is nil")
		}

		rp := readPref
		if rp == nil {
			rp = readpref.Primary()
		}

		if err := client.Ping(contextOrBackground(ctx), rp); err != nil {
			return fmt.Errorf("mongo probe failed: %w", err)
		}
		return nil
	}
}

// DBPing creates a CheckFunc that pings databases such as PostgreSQL using
// the provided client.
func DBPing(name string, db DBPinger) CheckFunc {
	return func(ctx context.Context) error {
		if db == nil {
			return fmt.Errorf("%s probe: db client is nil", name)
		}
		if err := db.PingContext(contextOrBackground(ctx)); err != nil {
			return fmt.Errorf("%s probe failed: %w", name, err)
		}
		return nil
	}
}

// HTTP creates a CheckFunc that performs an HTTP request against the
// supplied endpoint and succeeds on a 2xx response.
func HTTP(name, method, target string, client HTTPDoer) CheckFunc {
	return func(ctx context.Context) error {
		trimmedTarget := strings.TrimSpace(target)
		if trimmedTarget == "" {
			return fmt.Errorf("%s probe: target URL is required", name)
		}

		verb := strings.ToUpper(strings.TrimSpace(method))
		if verb == "" {
			verb = http.MethodGet
		}

		req, err := http.NewRequestWithContext(contextOrBackground(ctx), verb, trimmedTarget, nil)
		if err != nil {
			return fmt.Errorf("%s probe: failed to build request: %w", name, err)
		}

		doer := client
		if doer == nil {
			doer = http.DefaultClient
		}

		resp, err := doer.Do(req)
		if err != nil {
			return fmt.Errorf("%s probe request failed: %w", name, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("%s probe: unexpected status %d %s", name, resp.StatusCode, http.StatusText(resp.StatusCode))
		}

		if _, err := io.Copy(io.Discard, resp.Body); err != nil {
			return fmt.Errorf("%s probe: failed to drain response body: %w", name, err)
		}
		return nil
	}
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}
	return context.Background()
}
