package telemetry

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Outcome attribute values
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics holds the importer's instruments. All fields are safe for
// concurrent use.
type Metrics struct {
	// Imports counts ImportMonster calls by outcome
	Imports metric.Int64Counter

	// ImportDuration tracks decode-to-store time of one export, in seconds
	ImportDuration metric.Float64Histogram

	// Rolls counts power rolls by tier
	Rolls metric.Int64Counter
}

var importBuckets = []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}

// NewMetrics creates the instruments on the given provider
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(scopeName)
	met := &Metrics{}
	var err error

	if met.Imports, err = m.Int64Counter("statblock.imports",
		metric.WithDescription("Statblock imports by outcome."),
	); err != nil {
		return nil, err
	}
	if met.ImportDuration, err = m.Float64Histogram("statblock.import.duration",
		metric.WithDescription("Time to import one statblock export."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(importBuckets...),
	); err != nil {
		return nil, err
	}
	if met.Rolls, err = m.Int64Counter("statblock.power_rolls",
		metric.WithDescription("Power rolls by resulting tier."),
	); err != nil {
		return nil, err
	}

	return met, nil
}

var (
	defaultOnce    sync.Once
	defaultMetrics *Metrics
)

// Default returns instruments bound to the global meter provider. They follow
// a provider installed later by Setup.
func Default() *Metrics {
	defaultOnce.Do(func() {
		met, err := NewMetrics(otel.GetMeterProvider())
		if err != nil {
			slog.Warn("Falling back to no-op metrics", "error", err)
			met, _ = NewMetrics(noop.NewMeterProvider()) // nolint:errcheck // no-op instruments never fail
		}
		defaultMetrics = met
	})
	return defaultMetrics
}

// RecordImport counts one import and its duration
func (m *Metrics) RecordImport(ctx context.Context, seconds float64, err error) {
	outcome := attribute.String("outcome", outcomeOf(err))
	m.Imports.Add(ctx, 1, metric.WithAttributes(outcome))
	m.ImportDuration.Record(ctx, seconds, metric.WithAttributes(outcome))
}

// RecordRoll counts one power roll
func (m *Metrics) RecordRoll(ctx context.Context, tier string) {
	m.Rolls.Add(ctx, 1, metric.WithAttributes(attribute.String("tier", tier)))
}

func outcomeOf(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeOK
}
