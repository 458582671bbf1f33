package lklwa

import (
	"context"
	"reflect"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/stackmill/lambdakit/lkenv"
	"go.opentelemetry.io/contrib/instrumentation/github.com/aws/aws-sdk-go-v2/otelaws"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

// clientOptions holds configuration for AWS client registration.
type clientOptions struct {
	region Region
}

// ClientOption configures AWS client registration.
type ClientOption func(*clientOptions)

// ForPrimaryRegion configures the client to target the PRIMARY_REGION
// environment variable. Use this for cross-region operations that must
// reach the primary deployment region.
func ForPrimaryRegion() ClientOption {
	return func(o *clientOptions) {
		o.region = PrimaryRegion()
	}
}

// ForRegion configures the client to target a specific fixed region.
func ForRegion(region string) ClientOption {
	return func(o *clientOptions) {
		o.region = FixedRegion(region)
	}
}

// AWSClientFactory describes a registered AWS client: how to build it and
// which region it targets.
type AWSClientFactory[T any] struct {
	Build  func(aws.Config) T
	Region Region
}

// RegisterAWSClient creates a factory for an AWS SDK v2 client. The
// factory receives an aws.Config with the region already configured.
// By default clients target the local region.
func RegisterAWSClient[T any](build func(aws.Config) T, opts ...ClientOption) *AWSClientFactory[T] {
	options := &clientOptions{region: LocalRegion()}
	for _, opt := range opts {
		opt(options)
	}
	return &AWSClientFactory[T]{Build: build, Region: options.region}
}

// awsClientEntry is collected into the context deps map so handlers can
// retrieve clients with AWS[T].
type awsClientEntry struct {
	key    string
	client any
}

// provide exposes the client both as its own type for constructor
// injection and as a keyed entry for context lookup.
func (f *AWSClientFactory[T]) provide() fx.Option {
	return fx.Options(
		fx.Provide(func(cfg aws.Config, env lkenv.Environment) T {
			clientCfg := cfg.Copy()
			if r := f.Region.resolve(env); r != "" {
				clientCfg.Region = r
			}
			return f.Build(clientCfg)
		}),
		fx.Provide(fx.Annotate(func(client T) awsClientEntry {
			return awsClientEntry{key: clientKey(client, f.Region), client: client}
		}, fx.ResultTags(`group:"awsclients"`))),
	)
}

// clientKey derives the lookup key from the client's pointed-to type, so
// a factory returning *dynamodb.Client matches AWS[dynamodb.Client].
func clientKey(client any, region Region) string {
	t := reflect.TypeOf(client)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.PkgPath() + "." + t.Name() + "#" + region.key()
}

const awsConfigTimeout = 10 * time.Second

// NewAWSConfig loads the default AWS SDK v2 configuration.
func NewAWSConfig(ctx context.Context) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx)
}

// provideAWSConfig loads AWS config with a timeout and instruments it
// with OpenTelemetry for AWS SDK call tracing. The tracer provider and
// propagator are explicitly injected to avoid global state.
func provideAWSConfig(tp trace.TracerProvider, prop propagation.TextMapPropagator) (aws.Config, error) {
	ctx, cancel := context.WithTimeout(context.Background(), awsConfigTimeout)
	defer cancel()
	cfg, err := NewAWSConfig(ctx)
	if err != nil {
		return cfg, err
	}
	otelaws.AppendMiddlewares(&cfg.APIOptions,
		otelaws.WithTracerProvider(tp),
		otelaws.WithTextMapPropagator(prop),
	)
	return cfg, nil
}
