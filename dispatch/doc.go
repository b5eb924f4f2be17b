// Package dispatch matches incoming requests against an ordered list of
// regex routes, validates bodies, path parameters, and query strings against
// the schemas each handler declares, and serializes handler return values as
// JSON responses.
//
// Routes are tried in declaration order and every matching route runs until
// one of them writes a response. A per-request Context is shared across all
// handlers that run for the same request, so an early route can populate
// Context.User for a later one. Route order is therefore part of the route
// list's contract.
package dispatch
