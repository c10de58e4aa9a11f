package telemetry

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

type TelemetrySuite struct {
	suite.Suite
	ctx context.Context
}

func (s *TelemetrySuite) SetupTest() {
	s.ctx = context.Background()
}

func TestTelemetrySuite(t *testing.T) {
	suite.Run(t, new(TelemetrySuite))
}

func (s *TelemetrySuite) TestNewDebug() {
	tel, err := New(s.ctx, Config{
		ServiceName:    "test-service",
		ServiceVersion: "1.0.0",
		Environment:    "test",
		Debug:          true,
		Enabled:        true,
		TraceWriter:    io.Discard,
		MetricWriter:   io.Discard,
	})
	s.Require().NoError(err)
	s.True(tel.IsEnabled())
	s.NotNil(tel.tp)
	s.NotNil(tel.mp)
	s.NotNil(tel.tracer)
	s.NotNil(tel.requestDuration)
	s.NotNil(tel.errorCounter)
	s.NoError(tel.Shutdown(s.ctx))
}

func (s *TelemetrySuite) TestNewDisabled() {
	tel, err := New(s.ctx, Config{ServiceName: "test-service"})
	s.Require().NoError(err)
	s.False(tel.IsEnabled())
}

func (s *TelemetrySuite) TestNewNoop() {
	tel, err := NewNoop()
	s.Require().NoError(err)
	s.False(tel.IsEnabled())

	ctx, span := tel.StartSpan(s.ctx, "noop")
	s.Equal(s.ctx, ctx)
	s.False(span.IsRecording())
	span.End()

	// must not panic
	tel.RecordRequest(s.ctx, time.Millisecond, "get_version", "200", nil)
}

func (s *TelemetrySuite) TestStartSpan() {
	tel := NewTestTelemetry(s.T())
	defer tel.Shutdown(s.ctx)

	ctx, span := tel.StartSpan(s.ctx, "Matrix.Client.Call get_version")
	s.NotEqual(s.ctx, ctx)
	s.True(span.IsRecording())
	span.End()

	spans := tel.Spans()
	s.Require().Len(spans, 1)
	s.Equal("Matrix.Client.Call get_version", spans[0].Name)
}

func (s *TelemetrySuite) TestRecordRequest() {
	tel := NewTestTelemetry(s.T())
	defer tel.Shutdown(s.ctx)

	tel.RecordRequest(s.ctx, 100*time.Millisecond, "get_all_classes", "200", nil)
	tel.RecordRequest(s.ctx, 200*time.Millisecond, "get_all_classes", "500", errors.New("boom"))

	var rm metricdata.ResourceMetrics
	s.Require().NoError(tel.GetReader().Collect(s.ctx, &rm))
	s.Require().NotEmpty(rm.ScopeMetrics)

	names := map[string]bool{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			names[m.Name] = true
		}
	}
	s.True(names["matrix_request_duration"])
	s.True(names["matrix_error_count"])
}

func (s *TelemetrySuite) TestNewFromEnv() {
	s.T().Setenv("OTEL_ENABLED", "false")

	tel, err := NewFromEnv(s.ctx, "test-service", "1.0.0")
	s.Require().NoError(err)
	s.False(tel.IsEnabled())

	s.T().Setenv("OTEL_ENABLED", "true")
	s.T().Setenv("OTEL_DEBUG", "true")

	tel, err = NewFromEnv(s.ctx, "test-service", "1.0.0")
	s.Require().NoError(err)
	s.True(tel.IsEnabled())
	s.NoError(tel.Shutdown(s.ctx))
}

func (s *TelemetrySuite) TestGetEnvOrDefault() {
	s.T().Setenv("MATRIX_TEST_ENV_VAR", "test-value")
	s.Equal("test-value", getEnvOrDefault("MATRIX_TEST_ENV_VAR", "default-value"))

	os.Unsetenv("MATRIX_TEST_ENV_VAR")
	s.Equal("default-value", getEnvOrDefault("MATRIX_TEST_ENV_VAR", "default-value"))
}
