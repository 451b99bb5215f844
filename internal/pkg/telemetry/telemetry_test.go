package telemetry_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/KirkDiggler/statblock-importer/internal/errors"
	"github.com/KirkDiggler/statblock-importer/internal/pkg/telemetry"
)

type TelemetryTestSuite struct {
	suite.Suite
	ctx context.Context
}

func TestTelemetrySuite(t *testing.T) {
	suite.Run(t, new(TelemetryTestSuite))
}

func (s *TelemetryTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *TelemetryTestSuite) TestSetupNothingEnabled() {
	p, err := telemetry.Setup(s.ctx, &telemetry.Config{})
	s.Require().NoError(err)
	s.Nil(p.MetricsHandler)
	s.NoError(p.Shutdown(s.ctx))

	p, err = telemetry.Setup(s.ctx, nil)
	s.Require().NoError(err)
	s.NoError(p.Shutdown(s.ctx))
}

func (s *TelemetryTestSuite) TestSetupTracingToUnreachableCollector() {
	origTP := otel.GetTracerProvider()
	s.T().Cleanup(func() { otel.SetTracerProvider(origTP) })

	// 192.0.2.0/24 is reserved for documentation and never answers
	p, err := telemetry.Setup(s.ctx, &telemetry.Config{TraceEndpoint: "http://192.0.2.1:4318"})
	s.Require().NoError(err)
	s.Nil(p.MetricsHandler)
	s.NoError(p.Shutdown(s.ctx))
}

func (s *TelemetryTestSuite) TestSetupMetricsServesPrometheus() {
	origMP := otel.GetMeterProvider()
	s.T().Cleanup(func() { otel.SetMeterProvider(origMP) })

	p, err := telemetry.Setup(s.ctx, &telemetry.Config{Metrics: true})
	s.Require().NoError(err)
	s.Require().NotNil(p.MetricsHandler)
	defer func() { s.NoError(p.Shutdown(s.ctx)) }()

	met, err := telemetry.NewMetrics(otel.GetMeterProvider())
	s.Require().NoError(err)
	met.RecordRoll(s.ctx, "tier2")

	rec := httptest.NewRecorder()
	p.MetricsHandler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "power_rolls")
}

func (s *TelemetryTestSuite) TestEndSpanRecordsError() {
	exp := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
	s.T().Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	origTP := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	s.T().Cleanup(func() { otel.SetTracerProvider(origTP) })

	_, span := telemetry.StartSpan(s.ctx, "ok")
	telemetry.EndSpan(span, nil)
	_, span = telemetry.StartSpan(s.ctx, "failed")
	telemetry.EndSpan(span, errors.InvalidArgument("bad export"))

	spans := exp.GetSpans()
	s.Require().Len(spans, 2)
	s.Equal(codes.Unset, spans[0].Status.Code)
	s.Equal(codes.Error, spans[1].Status.Code)
	s.Len(spans[1].Events, 1)
}

func (s *TelemetryTestSuite) TestRecordImportCountsByOutcome() {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	met, err := telemetry.NewMetrics(mp)
	s.Require().NoError(err)

	met.RecordImport(s.ctx, 0.01, nil)
	met.RecordImport(s.ctx, 0.02, nil)
	met.RecordImport(s.ctx, 0.01, errors.InvalidArgument("bad"))

	var rm metricdata.ResourceMetrics
	s.Require().NoError(reader.Collect(s.ctx, &rm))

	counts := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "statblock.imports" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			s.Require().True(ok)
			for _, dp := range sum.DataPoints {
				outcome, _ := dp.Attributes.Value("outcome")
				counts[outcome.AsString()] = dp.Value
			}
		}
	}

	s.Equal(int64(2), counts[telemetry.OutcomeOK])
	s.Equal(int64(1), counts[telemetry.OutcomeError])
}

func (s *TelemetryTestSuite) TestDefaultIsShared() {
	s.Same(telemetry.Default(), telemetry.Default())
}
