package fs

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracedHost records one span per Host call.
type TracedHost struct {
	inner  Host
	tracer trace.Tracer
}

// NewTracedHost wraps inner so its calls show up in traces from tracer.
func NewTracedHost(inner Host, tracer trace.Tracer) *TracedHost {
	return &TracedHost{inner: inner, tracer: tracer}
}

func (t *TracedHost) start(ctx context.Context, name, path string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, name, trace.WithAttributes(attribute.String("fs.path", path)))
}

func finish(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (t *TracedHost) ReadDir(ctx context.Context, dir string) ([]Entry, error) {
	ctx, span := t.start(ctx, "fs.ReadDir", dir)
	entries, err := t.inner.ReadDir(ctx, dir)
	span.SetAttributes(attribute.Int("fs.entries", len(entries)))
	finish(span, err)
	return entries, err
}

func (t *TracedHost) Exists(ctx context.Context, path string) (bool, error) {
	ctx, span := t.start(ctx, "fs.Exists", path)
	ok, err := t.inner.Exists(ctx, path)
	span.SetAttributes(attribute.Bool("fs.exists", ok))
	finish(span, err)
	return ok, err
}

func (t *TracedHost) CreateDir(ctx context.Context, path string) error {
	ctx, span := t.start(ctx, "fs.CreateDir", path)
	err := t.inner.CreateDir(ctx, path)
	finish(span, err)
	return err
}

func (t *TracedHost) CreateFile(ctx context.Context, path string) error {
	ctx, span := t.start(ctx, "fs.CreateFile", path)
	err := t.inner.CreateFile(ctx, path)
	finish(span, err)
	return err
}
