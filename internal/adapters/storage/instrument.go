package storage

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/go-task-tracker/internal/platform/telemetry"
)

// instrumentation wraps store operations in a client span and records their
// duration and outcome.
type instrumentation struct {
	table   string
	metrics *telemetry.Metrics
}

func newInstrumentation(table string, metrics *telemetry.Metrics) instrumentation {
	if metrics == nil {
		metrics = telemetry.NoopMetrics()
	}
	return instrumentation{table: table, metrics: metrics}
}

func (in instrumentation) observe(ctx context.Context, operation string, fn func(context.Context) error) error {
	tracer := otel.GetTracerProvider().Tracer("storage")
	ctx, span := tracer.Start(ctx, in.table+"."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.operation", operation),
			attribute.String("db.table", in.table),
		),
	)
	defer span.End()

	start := time.Now()
	err := fn(ctx)

	result := "success"
	if err != nil {
		result = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	attrs := metric.WithAttributes(
		telemetry.AttrOperation.String(operation),
		telemetry.AttrTable.String(in.table),
		telemetry.AttrResult.String(result),
	)
	in.metrics.StoreOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	in.metrics.StoreOperationTotal.Add(ctx, 1, attrs)

	return err
}
