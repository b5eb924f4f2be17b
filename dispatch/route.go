package dispatch

import (
	"net/http"
	"regexp"

	"github.com/drblury/routeweaver/schema"
)

// MethodAny registers a handler that runs for every HTTP method before the
// method-specific handler of the same route.
const MethodAny = "*"

// HandlerFunc is the application-supplied handler invoked once a route's
// declared schemas have validated the request. Returning a non-nil value has
// it serialized as the JSON response body; returning nil after writing to w
// (or returning nil without writing anything) leaves the response to a later
// route.
type HandlerFunc func(ctx *Context, w http.ResponseWriter, r *http.Request) (any, error)

// RequestHandler pairs a handler with the optional schemas that gate it. A
// nil schema leaves the corresponding Context slot unpopulated and
// unvalidated.
type RequestHandler struct {
	Handler HandlerFunc

	// Body validates the JSON-decoded request body.
	Body schema.Validator
	// Params validates the pattern's named capture groups.
	Params schema.Validator
	// Query validates the flattened query string.
	Query schema.Validator
	// Response validates the handler's return value in strict mode before
	// it is serialized. A failure here is a programming error and surfaces
	// as an internal failure, never a client error.
	Response schema.Validator
}

// Route binds a compiled path pattern to at most one RequestHandler per HTTP
// method (or MethodAny). Routes are immutable once handed to New and are
// shared read-only across all in-flight requests.
type Route struct {
	Pattern  *regexp.Regexp
	Handlers map[string]RequestHandler
}
