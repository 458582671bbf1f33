package lkhttp

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/cockroachdb/errors"
	"github.com/stackmill/lambdakit/lkerr"
	"github.com/stackmill/lambdakit/lktracing"
	"go.opentelemetry.io/otel/metric"
	mnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tnoop "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

// Pipeline wraps business functions into Lambda proxy handlers. All
// observability sinks are injected at construction; the zero middleware
// chain is just the business function with response normalization.
type Pipeline struct {
	log        *zap.Logger
	tracer     trace.TracerProvider
	meter      metric.MeterProvider
	middleware []Middleware
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithTracerProvider enables a per-invocation span around the business
// function.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(p *Pipeline) { p.tracer = tp }
}

// WithMeterProvider enables invocation count, error count and duration
// metrics.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(p *Pipeline) { p.meter = mp }
}

// WithMiddleware appends middleware applied in registration order: the
// first registered middleware is the outermost.
func WithMiddleware(mw ...Middleware) Option {
	return func(p *Pipeline) { p.middleware = append(p.middleware, mw...) }
}

// New creates a Pipeline logging through the given logger. Tracing and
// metrics are no-ops unless providers are supplied.
func New(log *zap.Logger, opts ...Option) *Pipeline {
	p := &Pipeline{
		log:    log,
		tracer: tnoop.NewTracerProvider(),
		meter:  mnoop.NewMeterProvider(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Wrap converts a business function into a Lambda proxy handler. The
// returned handler never yields an error: failures become JSON error
// responses with the status code fixed by the error's kind.
func (p *Pipeline) Wrap(fn HandlerFunc) Handler {
	h := p.base(fn)
	chain := make([]Middleware, 0, len(p.middleware)+2)
	chain = append(chain, tracingMiddleware(p.tracer), metricsMiddleware(p.meter))
	chain = append(chain, p.middleware...)
	for i := len(chain) - 1; i >= 0; i-- {
		h = chain[i](h)
	}
	return h
}

// base invokes the business function exactly once and normalizes the
// outcome; this is the single exit point for both branches.
func (p *Pipeline) base(fn HandlerFunc) Handler {
	return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		res, err := fn(ctx, req)
		if err != nil {
			return p.errorResponse(ctx, err), nil
		}
		resp, err := successResponse(res)
		if err != nil {
			return p.errorResponse(ctx, err), nil
		}
		return resp, nil
	}
}

func successResponse(res Result) (events.APIGatewayProxyResponse, error) {
	status := http.StatusOK
	if res.StatusCode != nil {
		status = *res.StatusCode
	}

	body := ""
	if res.Body != nil {
		raw, err := json.Marshal(res.Body)
		if err != nil {
			return events.APIGatewayProxyResponse{}, errors.Wrap(err, "serialize response body")
		}
		body = string(raw)
	}

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    mergeHeaders(res.Headers),
		Body:       body,
	}, nil
}

// errorBody is the client-facing shape of every error response.
type errorBody struct {
	Error      string `json:"error"`
	StatusCode int    `json:"statusCode"`
}

func (p *Pipeline) errorResponse(ctx context.Context, err error) events.APIGatewayProxyResponse {
	fields := lktracing.Fields(ctx)

	// First emission: the raw error, unconditionally, with internal detail.
	p.log.Error("handler error", append(fields, zap.Error(err))...)

	kind := lkerr.KindOf(err)
	status := kind.Status()
	msg := lkerr.ClientMessage(err)

	// Second emission: the classified, client-facing view.
	p.log.Error(msg, append(fields,
		zap.String("errorName", msg),
		zap.Int("statusCode", status),
	)...)

	raw, _ := json.Marshal(errorBody{Error: msg, StatusCode: status})

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    mergeHeaders(nil),
		Body:       string(raw),
	}
}
