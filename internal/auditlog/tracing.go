package auditlog

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"staffaudit/internal/models"
)

const instrumentationName = "staffaudit/internal/auditlog"

// tracedStore decorates a Store with one span per operation.
type tracedStore struct {
	next    Store
	tracer  trace.Tracer
	backend string
	table   string
}

// WithTracing wraps next so every EnsureReady and Upsert call is recorded as a
// span. If tp is nil, a noop tracer provider is used.
func WithTracing(next Store, backend, table string, tp trace.TracerProvider) Store {
	if tp == nil {
		tp = noop.NewTracerProvider()
	}
	return &tracedStore{
		next:    next,
		tracer:  tp.Tracer(instrumentationName),
		backend: backend,
		table:   table,
	}
}

func (t *tracedStore) EnsureReady(ctx context.Context) error {
	ctx, span := t.tracer.Start(ctx, "auditlog.EnsureReady", trace.WithAttributes(t.baseAttrs()...))
	defer span.End()

	err := t.next.EnsureReady(ctx)
	recordResult(span, err)
	return err
}

func (t *tracedStore) Upsert(ctx context.Context, entry *models.AuditLogEntry) error {
	attrs := t.baseAttrs()
	if entry != nil {
		attrs = append(attrs,
			attribute.String("auditlog.partition_key", entry.PartitionKey),
			attribute.String("auditlog.row_key", entry.RowKey),
			attribute.String("auditlog.action", string(entry.Action)),
			attribute.Int64("employee.id", int64(entry.EmployeeID)),
		)
	}
	ctx, span := t.tracer.Start(ctx, "auditlog.Upsert", trace.WithAttributes(attrs...))
	defer span.End()

	err := t.next.Upsert(ctx, entry)
	recordResult(span, err)
	return err
}

func (t *tracedStore) Close() error {
	return t.next.Close()
}

// Unwrap returns the decorated store.
func (t *tracedStore) Unwrap() Store {
	return t.next
}

func (t *tracedStore) baseAttrs() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("auditlog.backend", t.backend),
		attribute.String("auditlog.table", t.table),
	}
}

func recordResult(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}
