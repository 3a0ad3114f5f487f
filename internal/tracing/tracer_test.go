package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func attrMap(kvs []attribute.KeyValue) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value, len(kvs))
	for _, kv := range kvs {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestLocateTracer_RecordsResolution(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	lt := NewLocateTracerWithProvider(tp, "file-locator")

	_, span := lt.StartLocateSpan(context.Background(), "src/a.go", "query")
	lt.RecordResolution(span, "/p/src/a.go", true, false, "ok")
	span.End()

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "locator.locate", spans[0].Name())

	attrs := attrMap(spans[0].Attributes())
	assert.Equal(t, "src/a.go", attrs["locator.file"].AsString())
	assert.Equal(t, "query", attrs["locator.encoding"].AsString())
	assert.Equal(t, "/p/src/a.go", attrs["locator.absolute_path"].AsString())
	assert.True(t, attrs["locator.exists"].AsBool())
	assert.Equal(t, "ok", attrs["locator.outcome"].AsString())
}

func TestLocateTracer_RecordError(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	lt := NewLocateTracerWithProvider(tp, "file-locator")

	_, span := lt.StartLocateSpan(context.Background(), "a", "json")
	lt.RecordError(span, errors.New("permission denied"), attribute.String("path", "/a"))
	span.End()

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestTracerProvider_NilShutdown(t *testing.T) {
	var tp *TracerProvider
	assert.NoError(t, tp.Shutdown(context.Background()))
}

func TestNewLocateTracer_DefaultsToGlobal(t *testing.T) {
	lt := NewLocateTracer("file-locator")
	_, span := lt.StartLocateSpan(context.Background(), "a", "path")
	lt.RecordResolution(span, "/a", false, false, "not_found")
	span.End()
}
