package lkhttp_test

import (
	"context"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stackmill/lambdakit/lkerr"
	"github.com/stackmill/lambdakit/lkhttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap"
)

func TestPipelineMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	p := lkhttp.New(zap.NewNop(), lkhttp.WithMeterProvider(mp))
	h := p.Wrap(func(_ context.Context, req events.APIGatewayProxyRequest) (lkhttp.Result, error) {
		if req.Path == "/boom" {
			return lkhttp.Result{}, lkerr.NotFound("item not found")
		}
		return lkhttp.Result{}, nil
	})

	for _, path := range []string{"/ok", "/ok", "/boom"} {
		if _, err := h(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: "GET", Path: path}); err != nil {
			t.Fatalf("handler returned error: %v", err)
		}
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect metrics: %v", err)
	}

	sums := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			var total int64
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
			sums[m.Name] = total
		}
	}

	if sums["lkhttp.invocations"] != 3 {
		t.Errorf("invocations = %d, want 3", sums["lkhttp.invocations"])
	}
	if sums["lkhttp.errors"] != 1 {
		t.Errorf("errors = %d, want 1", sums["lkhttp.errors"])
	}
}
