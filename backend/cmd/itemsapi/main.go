// Command itemsapi is a proxy-mode Lambda serving the /items resource.
// It wires the request pipeline, a DynamoDB-backed store, and tracing
// from environment configuration.
package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/caarlos0/env/v11"
	"github.com/stackmill/lambdakit/backend/internal/items"
	"github.com/stackmill/lambdakit/lkdynamo"
	"github.com/stackmill/lambdakit/lkhttp"
	"github.com/stackmill/lambdakit/lklwa"
	"github.com/stackmill/lambdakit/lktracing"
	"go.opentelemetry.io/contrib/instrumentation/github.com/aws/aws-sdk-go-v2/otelaws"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type config struct {
	ServiceName  string        `env:"SERVICE_NAME"  envDefault:"itemsapi"`
	TableName    string        `env:"MAIN_TABLE_NAME,required"`
	OtelExporter string        `env:"OTEL_EXPORTER" envDefault:"xrayudp"`
	LogLevel     zapcore.Level `env:"LOG_LEVEL"     envDefault:"info"`
}

func main() {
	ctx := context.Background()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("parse environment: %v", err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	zcfg.InitialFields = map[string]any{"service": cfg.ServiceName}
	logger, err := zcfg.Build()
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer logger.Sync()

	tp, err := lktracing.NewTracerProvider(ctx, cfg.OtelExporter, cfg.ServiceName)
	if err != nil {
		logger.Fatal("init tracing", zap.Error(err))
	}
	defer tp.Shutdown(ctx)

	awsCfg, err := lklwa.NewAWSConfig(ctx)
	if err != nil {
		logger.Fatal("load aws config", zap.Error(err))
	}
	otelaws.AppendMiddlewares(&awsCfg.APIOptions,
		otelaws.WithTracerProvider(tp),
		otelaws.WithTextMapPropagator(lktracing.NewPropagator()),
	)

	store := lkdynamo.NewStore(dynamodb.NewFromConfig(awsCfg), cfg.TableName)
	h := items.NewHandlers(store)

	pipeline := lkhttp.New(logger, lkhttp.WithTracerProvider(tp))
	lambda.Start(pipeline.Wrap(h.Route))
}
