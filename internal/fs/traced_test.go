package fs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type failingHost struct{ countingHost }

func (failingHost) CreateDir(context.Context, string) error { return errors.New("denied") }

func TestTracedHostRecordsSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	host := NewTracedHost(&failingHost{countingHost{entries: []Entry{{Name: "a"}, {Name: "b"}}}}, provider.Tracer("test"))
	ctx := context.Background()

	_, err := host.ReadDir(ctx, "/data")
	require.NoError(t, err)
	require.Error(t, host.CreateDir(ctx, "/data/x"))

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	require.Equal(t, "fs.ReadDir", spans[0].Name())
	require.Equal(t, "fs.CreateDir", spans[1].Name())
	require.Equal(t, codes.Error, spans[1].Status().Code)

	var entries int64 = -1
	for _, attr := range spans[0].Attributes() {
		if attr.Key == "fs.entries" {
			entries = attr.Value.AsInt64()
		}
	}
	require.Equal(t, int64(2), entries)
}
