package middleware

import (
	"context"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	oapiMW "github.com/oapi-codegen/nethttp-middleware"

	"github.com/drblury/routeweaver/dispatch"
)

// OpenAPIRequestValidator returns a route handler that validates incoming
// requests against a full OpenAPI document. Register it on an early
// catch-all route to reject non-conforming requests before resource routes
// run. Invalid requests get an error response written by the validator;
// valid ones fall through to later routes.
func OpenAPIRequestValidator(doc *openapi3.T) dispatch.HandlerFunc {
	// Clear out the servers array in the document, that skips validating
	// that server names match. We don't know how this thing will be run.
	doc.Servers = nil

	validatorOptions := &oapiMW.Options{
		Options: openapi3filter.Options{
			AuthenticationFunc: func(c context.Context, input *openapi3filter.AuthenticationInput) error {
				return nil
			},
		},
	}

	return AdaptHTTP(oapiMW.OapiRequestValidatorWithOptions(doc, validatorOptions))
}
