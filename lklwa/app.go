package lklwa

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stackmill/lambdakit/lkenv"
	"github.com/stackmill/lambdakit/lktracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// appOptions holds NewApp configuration.
type appOptions struct {
	fxOptions []fx.Option
	health    http.HandlerFunc
}

// AppOption configures NewApp.
type AppOption func(*appOptions)

// WithFx adds fx options, typically fx.Provide for handler constructors.
func WithFx(opts ...fx.Option) AppOption {
	return func(o *appOptions) {
		o.fxOptions = append(o.fxOptions, opts...)
	}
}

// WithAWSClient registers an AWS SDK v2 client for injection and context
// lookup. The factory receives an aws.Config with the region already
// configured; by default clients target the local region.
func WithAWSClient[T any](build func(aws.Config) T, opts ...ClientOption) AppOption {
	factory := RegisterAWSClient(build, opts...)
	return func(o *appOptions) {
		o.fxOptions = append(o.fxOptions, factory.provide())
	}
}

// WithHealthHandler replaces the default readiness check handler.
func WithHealthHandler(h http.HandlerFunc) AppOption {
	return func(o *appOptions) {
		o.health = h
	}
}

// App is a fully wired LWA HTTP application.
type App struct {
	fxApp *fx.App
}

// NewApp assembles an application. The register function receives the mux
// plus any types provided through WithFx and is called once to set up
// routes before the server starts.
func NewApp[E lkenv.Environment](register any, opts ...AppOption) *App {
	o := &appOptions{
		health: func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) },
	}
	for _, opt := range opts {
		opt(o)
	}

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			lkenv.Parse[E](),
			func(env E) lkenv.Environment { return env },
			NewLogger,
			NewTracerProvider,
			NewPropagator,
			provideAWSConfig,
			provideMux,
			NewRuntime[E],
		),
		fx.Options(o.fxOptions...),
		fx.Invoke(register),
		fx.Invoke(newServer(o.health)),
	)

	return &App{fxApp: app}
}

// Run starts the application and blocks until shutdown.
func (a *App) Run() {
	a.fxApp.Run()
}

// Start runs the application until the context is canceled, then shuts
// it down gracefully.
func (a *App) Start(ctx context.Context) error {
	if err := a.fxApp.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return a.fxApp.Stop(stopCtx)
}

// NewLogger builds the service logger at the configured level.
func NewLogger(env lkenv.Environment) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(env.LogLevel())
	cfg.InitialFields = map[string]any{"service": env.ServiceName()}
	return cfg.Build()
}

// NewTracerProvider builds the tracer provider from the environment's
// exporter setting and registers its shutdown on the fx lifecycle.
// OTEL_SDK_DISABLED=true yields a no-op provider for tests.
func NewTracerProvider(lc fx.Lifecycle, env lkenv.Environment) (trace.TracerProvider, error) {
	if lkenv.Bool("OTEL_SDK_DISABLED", false) {
		return noop.NewTracerProvider(), nil
	}

	tp, err := lktracing.NewTracerProvider(context.Background(), env.OtelExporter(), env.ServiceName())
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{OnStop: tp.Shutdown})
	return tp, nil
}

// NewPropagator returns the propagator used for incoming and outgoing
// requests.
func NewPropagator(lkenv.Environment) propagation.TextMapPropagator {
	return lktracing.NewPropagator()
}

// muxParams collects everything the request context must expose.
type muxParams struct {
	fx.In

	Log     *zap.Logger
	Env     lkenv.Environment
	Clients []awsClientEntry `group:"awsclients"`
}

// provideMux creates the mux with context injection, LWA context parsing,
// and error mapping installed before any routes are registered.
func provideMux(p muxParams) *Mux {
	m := newMux()

	d := &deps{
		logger:     p.Log,
		env:        p.Env,
		mux:        m,
		awsClients: make(map[string]any, len(p.Clients)),
	}
	for _, entry := range p.Clients {
		d.awsClients[entry.key] = entry.client
	}

	m.Use(withDeps(d), withLWAContext(), withErrorMapping(p.Log))
	return m
}

// serverParams collects the dependencies of the HTTP server.
type serverParams struct {
	fx.In

	LC   fx.Lifecycle
	Log  *zap.Logger
	Env  lkenv.Environment
	Mux  *Mux
	TP   trace.TracerProvider
	Prop propagation.TextMapPropagator
}

// newServer returns an fx invoke function that runs the HTTP server on
// the LWA port. The health endpoint bypasses tracing so readiness probes
// do not pollute traces.
func newServer(health http.HandlerFunc) func(p serverParams) {
	return func(p serverParams) {
		root := http.NewServeMux()
		root.HandleFunc(p.Env.ReadinessCheckPath(), health)
		root.Handle("/", otelhttp.NewHandler(p.Mux, p.Env.ServiceName(),
			otelhttp.WithTracerProvider(p.TP),
			otelhttp.WithPropagators(p.Prop),
		))

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", p.Env.Port()),
			Handler:           root,
			ReadHeaderTimeout: 5 * time.Second,
		}

		p.LC.Append(fx.Hook{
			OnStart: func(context.Context) error {
				ln, err := net.Listen("tcp", srv.Addr)
				if err != nil {
					return err
				}
				p.Log.Info("http server listening", zap.String("addr", srv.Addr))
				go func() {
					if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
						p.Log.Error("http server failed", zap.Error(err))
					}
				}()
				return nil
			},
			OnStop: srv.Shutdown,
		})
	}
}
