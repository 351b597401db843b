package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"

	"github.com/lowlandresearch/larc/maybe"
)

// Metric names.
const (
	MetricPipelineRuns  = "larc.pipeline.runs"
	MetricStageDuration = "larc.pipeline.stage.duration"
	MetricShortCircuits = "larc.pipeline.short_circuits"
)

// PipelineObserver records pipeline outcomes as OpenTelemetry metrics.
// It implements maybe.Observer.
type PipelineObserver struct {
	runs          metric.Int64Counter
	stageDuration metric.Float64Histogram
	shortCircuits metric.Int64Counter
}

var _ maybe.Observer = (*PipelineObserver)(nil)

// NewPipelineObserver creates the metric instruments on meter.
func NewPipelineObserver(meter metric.Meter) (*PipelineObserver, error) {
	runs, err := meter.Int64Counter(MetricPipelineRuns,
		metric.WithDescription("Pipeline runs by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricPipelineRuns, err)
	}

	stageDuration, err := meter.Float64Histogram(MetricStageDuration,
		metric.WithDescription("Duration of pipeline stages in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricStageDuration, err)
	}

	shortCircuits, err := meter.Int64Counter(MetricShortCircuits,
		metric.WithDescription("Stages that stopped a pipeline, by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricShortCircuits, err)
	}

	return &PipelineObserver{
		runs:          runs,
		stageDuration: stageDuration,
		shortCircuits: shortCircuits,
	}, nil
}

// StageDone records the stage duration and counts stages that stopped the run.
func (o *PipelineObserver) StageDone(pipeline string, index int, kind maybe.Kind, d time.Duration) {
	ctx := context.Background()
	attrs := metric.WithAttributes(
		attribute.String(AttrPipeline, pipeline),
		attribute.Int(AttrStageIndex, index),
		attribute.String(AttrOutcome, kind.String()),
	)
	o.stageDuration.Record(ctx, d.Seconds(), attrs)
	if kind != maybe.Continued {
		o.shortCircuits.Add(ctx, 1, attrs)
	}
}

// PipelineDone counts the run.
func (o *PipelineObserver) PipelineDone(pipeline string, kind maybe.Kind, _ time.Duration) {
	o.runs.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String(AttrPipeline, pipeline),
		attribute.String(AttrOutcome, kind.String()),
	))
}

// EvaluateTraced evaluates p inside a span named after the pipeline. Failed
// runs record the stage error and set the span status to Error.
func EvaluateTraced(ctx context.Context, p *maybe.Pipeline, v any) maybe.Report {
	ctx, span := StartSpan(ctx, "pipeline."+p.Name())
	defer span.End()

	rep := p.Evaluate(v)

	span.SetAttributes(
		attribute.String(AttrPipeline, p.Name()),
		attribute.String(AttrRunID, p.ID()),
		attribute.String(AttrOutcome, rep.Kind.String()),
		attribute.Int64(AttrDurationMs, rep.Duration.Milliseconds()),
	)
	if rep.Stage >= 0 {
		span.SetAttributes(
			attribute.String(AttrStage, rep.StageName),
			attribute.Int(AttrStageIndex, rep.Stage),
		)
	}
	if err := rep.Err(); err != nil {
		SetSpanError(ctx, err)
		span.SetStatus(codes.Error, err.Error())
	}
	return rep
}
