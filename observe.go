package keeper

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/agentkeeper-ai/sdk/reconstruct"
)

// instruments holds the OpenTelemetry metrics recorded per query. All
// instruments come from the configured meter; with no meter they are
// no-ops.
type instruments struct {
	asks         metric.Int64Counter
	tokensUsed   metric.Int64Histogram
	recoveryRate metric.Float64Histogram
}

func newInstruments(meter metric.Meter) *instruments {
	if meter == nil {
		meter = noop.NewMeterProvider().Meter("keeper")
	}

	asks, err := meter.Int64Counter("keeper.asks",
		metric.WithDescription("Number of agent queries"))
	if err != nil {
		asks = noopCounter()
	}
	tokensUsed, err := meter.Int64Histogram("keeper.tokens_used",
		metric.WithDescription("Estimated tokens injected per query"),
		metric.WithUnit("{token}"))
	if err != nil {
		tokensUsed = noopHistogram()
	}
	recoveryRate, err := meter.Float64Histogram("keeper.critical_recovery_rate",
		metric.WithDescription("Fraction of critical facts selected per query"))
	if err != nil {
		recoveryRate = noopFloatHistogram()
	}

	return &instruments{
		asks:         asks,
		tokensUsed:   tokensUsed,
		recoveryRate: recoveryRate,
	}
}

// recordAsk records the selection outcome of one query.
func (in *instruments) recordAsk(ctx context.Context, provider string, stats reconstruct.Stats) {
	attrs := metric.WithAttributes(attribute.String("keeper.provider", provider))
	in.asks.Add(ctx, 1, attrs)
	in.tokensUsed.Record(ctx, int64(stats.TokensUsed), attrs)
	in.recoveryRate.Record(ctx, stats.CriticalRecoveryRate, attrs)
}

func noopCounter() metric.Int64Counter {
	c, _ := noop.NewMeterProvider().Meter("keeper").Int64Counter("noop")
	return c
}

func noopHistogram() metric.Int64Histogram {
	h, _ := noop.NewMeterProvider().Meter("keeper").Int64Histogram("noop")
	return h
}

func noopFloatHistogram() metric.Float64Histogram {
	h, _ := noop.NewMeterProvider().Meter("keeper").Float64Histogram("noop")
	return h
}
