// Package routeweaver provides a minimal request-dispatch layer in front of
// net/http: an ordered list of regex routes is matched against each incoming
// request, declared schemas validate the body, path parameters, and query
// string, and handler return values are validated and serialized as JSON
// responses. Failures funnel through a single error mapper that writes
// {"message": <string>} bodies with an appropriate status code.
//
// # Packages
//
//   - dispatch: the route matcher, per-request Context, handler executor,
//     and the status-carrying error taxonomy.
//   - schema: the validation boundary plus adapters for kin-openapi schemas
//     and compiled JSON Schema documents.
//   - responder: JSON rendering and error mapping with production redaction
//     of 5xx messages and trace-tagged diagnostics.
//   - middleware: adapters that let callback-style and net/http middleware
//     run as route handlers, including OpenAPI request validation.
//   - health: liveness, readiness, status, and version endpoints expressed
//     as dispatch routes, with mongo/db/http probe constructors.
//   - jsonutil: tiny helpers around sonic for performance-sensitive encoding
//     tasks.
//
// # Quick Start
//
//	routes := []dispatch.Route{
//	    {
//	        Pattern: regexp.MustCompile(`^/users/(?P<id>\d+)$`),
//	        Handlers: map[string]dispatch.RequestHandler{
//	            http.MethodGet: {
//	                Params:  schema.OpenAPI(userParams),
//	                Handler: getUser,
//	            },
//	        },
//	    },
//	}
//	routes = append(routes, health.Routes()...)
//
//	d := dispatch.New(routes, dispatch.WithLogger(logger))
//	http.ListenAndServe(":8080", d)
//
// Routes run in declaration order and every route matching the path gets a
// chance to respond, so an authentication route registered first can
// populate Context.User for the resource routes behind it.
package routeweaver
