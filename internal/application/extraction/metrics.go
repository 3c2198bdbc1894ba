package extraction

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric names following OpenTelemetry semantic conventions for the
// extraction pass.
const (
	meterName                = "finch-frontend-api/extraction"
	classesCounterName       = "binding_classes_extracted_total"
	membersCounterName       = "binding_members_extracted_total"
	warningsCounterName      = "binding_decode_warnings_total"
	durationHistogramName    = "binding_extraction_duration_seconds"
	attrMemberCategory       = "member_category"
	attrWarningReason        = "warning_reason"
	attrPackageNamespaceName = "package_namespace"
)

// extractionMetrics records extraction observability through the global OTEL
// meter. All methods are nil-receiver safe so the walker can run without
// metrics in tests.
type extractionMetrics struct {
	classesCounter    metric.Int64Counter
	membersCounter    metric.Int64Counter
	warningsCounter   metric.Int64Counter
	durationHistogram metric.Float64Histogram
}

// newExtractionMetrics creates the extraction metric instruments.
func newExtractionMetrics() (*extractionMetrics, error) {
	meter := otel.Meter(meterName)

	classesCounter, err := meter.Int64Counter(
		classesCounterName,
		metric.WithDescription("Number of class descriptors extracted from binding headers"),
	)
	if err != nil {
		return nil, fmt.Errorf("create classes counter: %w", err)
	}

	membersCounter, err := meter.Int64Counter(
		membersCounterName,
		metric.WithDescription("Number of member descriptors attached to classes, by category"),
	)
	if err != nil {
		return nil, fmt.Errorf("create members counter: %w", err)
	}

	warningsCounter, err := meter.Int64Counter(
		warningsCounterName,
		metric.WithDescription("Number of declarations skipped with a decode warning, by reason"),
	)
	if err != nil {
		return nil, fmt.Errorf("create warnings counter: %w", err)
	}

	durationHistogram, err := meter.Float64Histogram(
		durationHistogramName,
		metric.WithDescription("Duration of full extraction runs"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("create duration histogram: %w", err)
	}

	return &extractionMetrics{
		classesCounter:    classesCounter,
		membersCounter:    membersCounter,
		warningsCounter:   warningsCounter,
		durationHistogram: durationHistogram,
	}, nil
}

func (m *extractionMetrics) recordClass(ctx context.Context) {
	if m == nil {
		return
	}
	m.classesCounter.Add(ctx, 1)
}

func (m *extractionMetrics) recordMember(ctx context.Context, category string) {
	if m == nil {
		return
	}
	m.membersCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String(attrMemberCategory, category),
	))
}

func (m *extractionMetrics) recordWarning(ctx context.Context, reason string) {
	if m == nil {
		return
	}
	m.warningsCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String(attrWarningReason, reason),
	))
}

func (m *extractionMetrics) recordDuration(ctx context.Context, seconds float64, packageNamespace string) {
	if m == nil {
		return
	}
	m.durationHistogram.Record(ctx, seconds, metric.WithAttributes(
		attribute.String(attrPackageNamespaceName, packageNamespace),
	))
}
