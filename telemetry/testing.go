package telemetry

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// TestTelemetry is an enabled Telemetry backed by in-memory exporters.
type TestTelemetry struct {
	*TelemetryImpl
	mr    *sdkmetric.ManualReader
	spans *tracetest.InMemoryExporter
}

// NewTestTelemetry creates an enabled Telemetry whose spans and metrics can be inspected.
func NewTestTelemetry(t *testing.T) *TestTelemetry {
	t.Helper()

	spans := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(spans))
	otel.SetTracerProvider(tp)

	mr := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(mr))
	otel.SetMeterProvider(mp)

	impl, err := newImpl(tp, mp, true)
	if err != nil {
		t.Fatalf("create test telemetry: %v", err)
	}

	return &TestTelemetry{
		TelemetryImpl: impl,
		mr:            mr,
		spans:         spans,
	}
}

// GetReader returns the metric reader for testing
func (tt *TestTelemetry) GetReader() *sdkmetric.ManualReader {
	return tt.mr
}

// Spans returns the finished spans.
func (tt *TestTelemetry) Spans() tracetest.SpanStubs {
	return tt.spans.GetSpans()
}

// Shutdown gracefully shuts down the test telemetry providers
func (tt *TestTelemetry) Shutdown(ctx context.Context) error {
	return tt.TelemetryImpl.Shutdown(ctx)
}
