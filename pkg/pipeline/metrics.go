package pipeline

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// Metrics holds the counters C4 increments on batch flush and
// per-submission outcome, following the teacher's RED-metric naming
// convention in pkg/observability (observability.go) scaled down to
// this pipeline's two events.
type Metrics struct {
	reader *sdkmetric.ManualReader

	batchFlushes   metric.Int64Counter
	batchSize      metric.Int64Histogram
	submissionsOK  metric.Int64Counter
	submissionsErr metric.Int64Counter
}

// NewMetrics constructs a self-contained meter provider (no OTLP
// exporter wired — see DESIGN.md) and registers the pipeline's
// instruments on it.
func NewMetrics() (*Metrics, error) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	meter := provider.Meter("auditor.pipeline")

	m := &Metrics{reader: reader}

	var err error
	m.batchFlushes, err = meter.Int64Counter("auditor.pipeline.batch_flushes",
		metric.WithDescription("Number of batcher flush events"),
		metric.WithUnit("{flush}"),
	)
	if err != nil {
		return nil, fmt.Errorf("pipeline: init batch_flushes counter: %w", err)
	}

	m.batchSize, err = meter.Int64Histogram("auditor.pipeline.batch_size",
		metric.WithDescription("Number of submissions per flushed batch"),
		metric.WithUnit("{submission}"),
	)
	if err != nil {
		return nil, fmt.Errorf("pipeline: init batch_size histogram: %w", err)
	}

	m.submissionsOK, err = meter.Int64Counter("auditor.pipeline.submissions_committed",
		metric.WithDescription("Submissions that completed the full commit sequence"),
		metric.WithUnit("{submission}"),
	)
	if err != nil {
		return nil, fmt.Errorf("pipeline: init submissions_committed counter: %w", err)
	}

	m.submissionsErr, err = meter.Int64Counter("auditor.pipeline.submissions_failed",
		metric.WithDescription("Submissions that failed at some step of the commit sequence"),
		metric.WithUnit("{submission}"),
	)
	if err != nil {
		return nil, fmt.Errorf("pipeline: init submissions_failed counter: %w", err)
	}

	return m, nil
}

// RecordFlush records one batcher flush event of the given size.
func (m *Metrics) RecordFlush(ctx context.Context, size int) {
	m.batchFlushes.Add(ctx, 1)
	m.batchSize.Record(ctx, int64(size))
}

// RecordSubmission records the outcome of one submission's commit
// sequence.
func (m *Metrics) RecordSubmission(ctx context.Context, err error) {
	if err != nil {
		m.submissionsErr.Add(ctx, 1)
		return
	}
	m.submissionsOK.Add(ctx, 1)
}
