// Package lktracing configures OpenTelemetry tracing for Lambda-based
// services. The tracer provider and propagator are constructed explicitly
// and injected by the caller; nothing is registered on otel globals.
//
// The exporter kind is typically taken from the OTEL_EXPORTER environment
// variable:
//   - "stdout": pretty-printed spans for local development (default)
//   - "xrayudp": export directly to Lambda's built-in X-Ray daemon
package lktracing

import (
	"context"

	"github.com/aws-observability/aws-otel-go/exporters/xrayudp"
	"github.com/cockroachdb/errors"
	lambdadetector "go.opentelemetry.io/contrib/detectors/aws/lambda"
	"go.opentelemetry.io/contrib/propagators/aws/xray"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Exporter kinds accepted by NewTracerProvider.
const (
	ExporterStdout  = "stdout"
	ExporterXRayUDP = "xrayudp"
)

// NewTracerProvider creates a tracer provider with the given exporter kind.
// The caller owns the provider and must call Shutdown before exit.
//
// A synchronous span processor is used: Lambda may freeze the container
// between invocations, and sync export ensures spans are sent immediately
// instead of being lost in an unflushed batch.
func NewTracerProvider(ctx context.Context, exporterKind, serviceName string) (*sdktrace.TracerProvider, error) {
	exporter, err := newExporter(ctx, exporterKind)
	if err != nil {
		return nil, err
	}

	res, err := newResource(ctx, exporterKind, serviceName)
	if err != nil {
		return nil, err
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
		sdktrace.WithResource(res),
		sdktrace.WithIDGenerator(xray.NewIDGenerator()),
	), nil
}

// NewPropagator returns the composite propagator used by all services:
// W3C trace context and baggage for generic callers, plus the X-Ray
// propagation format for API Gateway and other AWS callers.
func NewPropagator() propagation.TextMapPropagator {
	return propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
		xray.Propagator{},
	)
}

func newExporter(ctx context.Context, kind string) (sdktrace.SpanExporter, error) {
	switch kind {
	case ExporterStdout, "":
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	case ExporterXRayUDP:
		return xrayudp.NewSpanExporter(ctx)
	default:
		return nil, errors.Newf("unsupported OTEL_EXPORTER: %q (supported: stdout, xrayudp)", kind)
	}
}

func newResource(ctx context.Context, exporterKind, serviceName string) (*resource.Resource, error) {
	base := resource.NewWithAttributes(semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName))

	// The Lambda detector only yields attributes inside a Lambda runtime;
	// skip it for local stdout runs.
	if exporterKind != ExporterXRayUDP {
		return base, nil
	}

	detected, err := lambdadetector.NewResourceDetector().Detect(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "detect lambda resource")
	}
	merged, err := resource.Merge(detected, base)
	if err != nil {
		return nil, errors.Wrap(err, "merge resources")
	}
	return merged, nil
}
