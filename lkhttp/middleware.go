package lkhttp

import (
	"context"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const scopeName = "github.com/stackmill/lambdakit/lkhttp"

// tracingMiddleware opens a span per invocation. The span is named after
// the routed method and path and records the final status code.
func tracingMiddleware(tp trace.TracerProvider) Middleware {
	tracer := tp.Tracer(scopeName)

	return func(next Handler) Handler {
		return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
			name := req.HTTPMethod + " " + req.Path
			ctx, span := tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindServer))
			defer span.End()

			span.SetAttributes(
				attribute.String("http.request.method", req.HTTPMethod),
				attribute.String("url.path", req.Path),
			)
			if lc, ok := lambdacontext.FromContext(ctx); ok {
				span.SetAttributes(attribute.String("faas.invocation_id", lc.AwsRequestID))
			}

			resp, err := next(ctx, req)

			span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
			if resp.StatusCode >= 500 {
				span.SetStatus(codes.Error, "")
			}
			return resp, err
		}
	}
}

// metricsMiddleware records invocation count, error count, and duration.
// Instrument creation failures are ignored; the otel SDK returns usable
// no-op instruments alongside the error.
func metricsMiddleware(mp metric.MeterProvider) Middleware {
	meter := mp.Meter(scopeName)
	invocations, _ := meter.Int64Counter("lkhttp.invocations")
	failures, _ := meter.Int64Counter("lkhttp.errors")
	duration, _ := meter.Float64Histogram("lkhttp.duration",
		metric.WithUnit("ms"))

	return func(next Handler) Handler {
		return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)
			elapsed := float64(time.Since(start)) / float64(time.Millisecond)

			attrs := metric.WithAttributes(
				attribute.String("http.request.method", req.HTTPMethod),
				attribute.Int("http.response.status_code", resp.StatusCode),
			)
			invocations.Add(ctx, 1, attrs)
			if resp.StatusCode >= 400 {
				failures.Add(ctx, 1, attrs)
			}
			duration.Record(ctx, elapsed, attrs)
			return resp, err
		}
	}
}
