package keeper

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestAskTracing(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	registry, _ := mockRegistry()
	agent, err := Create("traced",
		WithProviders(registry),
		WithDefaultProvider("mock"),
		WithTracer(provider.Tracer("keeper")))
	require.NoError(t, err)

	agent.Remember("traced fact", true)
	_, err = agent.Ask(context.Background(), "what do you know?")
	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	span := spans[0]
	assert.Equal(t, "keeper.ask", span.Name())

	attrs := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, "traced", attrs["keeper.agent_id"].AsString())
	assert.Equal(t, "mock", attrs["keeper.provider"].AsString())
	assert.Equal(t, int64(1), attrs["keeper.facts_selected"].AsInt64())
	assert.Equal(t, int64(4000), attrs["keeper.token_budget"].AsInt64())
}

func TestAskMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	registry, _ := mockRegistry()
	agent, err := Create("metered",
		WithProviders(registry),
		WithDefaultProvider("mock"),
		WithMeter(provider.Meter("keeper")))
	require.NoError(t, err)

	agent.Remember("metered fact", true)
	ctx := context.Background()
	_, err = agent.Ask(ctx, "first")
	require.NoError(t, err)
	_, err = agent.Ask(ctx, "second")
	require.NoError(t, err)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	byName := make(map[string]metricdata.Metrics)
	for _, m := range rm.ScopeMetrics[0].Metrics {
		byName[m.Name] = m
	}

	asks, ok := byName["keeper.asks"]
	require.True(t, ok)
	sum, ok := asks.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(2), sum.DataPoints[0].Value)
	assert.True(t, sum.DataPoints[0].Attributes.HasValue("keeper.provider"))

	tokens, ok := byName["keeper.tokens_used"]
	require.True(t, ok)
	hist, ok := tokens.Data.(metricdata.Histogram[int64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, uint64(2), hist.DataPoints[0].Count)
}

func TestAskWithoutMeter(t *testing.T) {
	registry, _ := mockRegistry()
	agent, err := Create("plain",
		WithProviders(registry),
		WithDefaultProvider("mock"))
	require.NoError(t, err)

	agent.Remember("fact", false)
	_, err = agent.Ask(context.Background(), "still works")
	assert.NoError(t, err)
}
