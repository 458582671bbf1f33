// Package lkhttp wraps API Gateway proxy handlers for AWS Lambda. The
// pipeline invokes a business function, serializes its result, and converts
// any returned error into a JSON error response with the status code fixed
// by the error's kind. The wrapped handler never returns an error to the
// Lambda runtime: every invocation produces exactly one response.
package lkhttp

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
)

// Result is the value a business function returns on success.
type Result struct {
	// StatusCode of the response. When nil the pipeline defaults to 200.
	// A present-but-zero value is sent verbatim; defaulting is keyed on
	// the field being absent, not on it being falsy.
	StatusCode *int

	// Headers are merged over the default response headers; on key
	// collision the handler's value wins.
	Headers map[string]string

	// Body is JSON-serialized into the response. A nil body produces an
	// empty response body.
	Body any
}

// Status returns a pointer for Result.StatusCode.
func Status(code int) *int { return &code }

// HandlerFunc is the business function invoked once per request.
type HandlerFunc func(ctx context.Context, req events.APIGatewayProxyRequest) (Result, error)

// Handler is the wrapped form accepted by the Lambda runtime.
type Handler func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// Middleware wraps a Handler to add cross-cutting behavior.
type Middleware func(next Handler) Handler
