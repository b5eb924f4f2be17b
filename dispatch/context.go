package dispatch

// Context carries validated request data across every handler that runs for
// a single request. The dispatcher creates one Context per request, lends it
// to each handler in turn, and discards it when the request completes. It is
// never shared between requests, so handlers may mutate it without locking.
type Context struct {
	// User is never populated by the dispatcher itself; it exists so an
	// authentication route can hand its result to later routes.
	User any
	// Body holds the validated request body when a body schema was
	// declared, nil otherwise. Query and Params behave the same way for
	// their respective schemas.
	Body   any
	Query  any
	Params any
}
