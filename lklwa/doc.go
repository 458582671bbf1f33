// Package lklwa provides a batteries-included framework for building HTTP
// services that run on AWS Lambda with Lambda Web Adapter (LWA).
//
// lklwa handles the boilerplate of setting up an HTTP server optimized for
// Lambda: environment parsing, structured logging, OpenTelemetry tracing,
// AWS SDK clients, error-to-status-code mapping, and graceful shutdown.
// A complete application can be created in a single call:
//
//	lklwa.NewApp[Env](func(m *lklwa.Mux, h *Handlers) {
//	    m.HandleFunc("GET /items", h.ListItems)
//	    m.HandleFunc("GET /items/{id}", h.GetItem, "get-item")
//	},
//	    lklwa.WithAWSClient(func(cfg aws.Config) *dynamodb.Client {
//	        return dynamodb.NewFromConfig(cfg)
//	    }),
//	    lklwa.WithFx(fx.Provide(NewHandlers)),
//	).Run()
//
// Define your environment by embedding [lkenv.BaseEnvironment]:
//
//	type Env struct {
//	    lkenv.BaseEnvironment
//	    MainTableName string `env:"MAIN_TABLE_NAME,required"`
//	}
//
// Handlers return errors instead of writing error responses themselves.
// Returned errors are classified through the lkerr taxonomy and converted
// into JSON error responses with the kind's fixed status code; unknown
// errors become a generic 500 without leaking internal detail.
//
// Request-scoped values are accessed through context functions:
//
//   - [Log] returns a trace-correlated zap logger
//   - [Span] returns the current OpenTelemetry span
//   - [Env] retrieves the typed environment configuration
//   - [AWS] retrieves a registered AWS SDK client by type
//   - [LWA] retrieves Lambda execution context (request ID, deadline, etc.)
//
// A health endpoint is registered automatically at
// AWS_LWA_READINESS_CHECK_PATH; Lambda Web Adapter uses it to determine
// readiness. The tracer provider and propagator are injected explicitly,
// never registered on otel globals.
package lklwa
