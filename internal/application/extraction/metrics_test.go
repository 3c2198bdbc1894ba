package extraction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/resource"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// newTestReader installs an isolated meter provider backed by a manual reader
// and restores the previous one when the test ends.
func newTestReader(t *testing.T) *sdkmetric.ManualReader {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(resource.Empty()),
	)

	previous := otel.GetMeterProvider()
	otel.SetMeterProvider(provider)
	t.Cleanup(func() {
		otel.SetMeterProvider(previous)
	})

	return reader
}

func collectSums(t *testing.T, reader *sdkmetric.ManualReader) map[string]int64 {
	t.Helper()

	var data metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &data))

	sums := make(map[string]int64)
	for _, scope := range data.ScopeMetrics {
		for _, m := range scope.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, point := range sum.DataPoints {
				sums[m.Name] += point.Value
			}
		}
	}
	return sums
}

func TestExtractionMetrics_Recording(t *testing.T) {
	reader := newTestReader(t)

	metrics, err := newExtractionMetrics()
	require.NoError(t, err)

	ctx := context.Background()
	metrics.recordClass(ctx)
	metrics.recordClass(ctx)
	metrics.recordMember(ctx, "method")
	metrics.recordMember(ctx, "getter")
	metrics.recordMember(ctx, "getter")
	metrics.recordWarning(ctx, warnUnknownIdentifier)
	metrics.recordDuration(ctx, 0.25, "widgets")

	sums := collectSums(t, reader)
	assert.Equal(t, int64(2), sums[classesCounterName])
	assert.Equal(t, int64(3), sums[membersCounterName])
	assert.Equal(t, int64(1), sums[warningsCounterName])
}

func TestExtractionMetrics_NilReceiverIsSafe(t *testing.T) {
	var metrics *extractionMetrics

	ctx := context.Background()
	assert.NotPanics(t, func() {
		metrics.recordClass(ctx)
		metrics.recordMember(ctx, "method")
		metrics.recordWarning(ctx, warnMalformedIdentifier)
		metrics.recordDuration(ctx, 1.0, "widgets")
	})
}

func TestWalker_WarningMetrics(t *testing.T) {
	reader := newTestReader(t)

	metrics, err := newExtractionMetrics()
	require.NoError(t, err)

	root := headerTree(
		widgetAlias(),
		fn("not_a_binding_symbol", voidHandle()),
		fn("___finch_bindgen___gadgets___class___Widget___drop", voidHandle(), receiverArg()),
	)

	state := NewTraversalState()
	err = NewWalker(state).withMetrics(metrics).Walk(context.Background(), root)
	require.NoError(t, err)

	sums := collectSums(t, reader)
	assert.Equal(t, int64(1), sums[classesCounterName])
	assert.Equal(t, int64(2), sums[warningsCounterName])
}
