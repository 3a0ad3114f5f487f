package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// TracerProvider manages the lifecycle of the OpenTelemetry tracer
type TracerProvider struct {
	tp *sdktrace.TracerProvider
}

// LocateTracer provides spans for the locate pipeline
type LocateTracer struct {
	tracer trace.Tracer
}

// NewTracerProvider creates an OTLP/gRPC backed tracer provider and installs
// it as the global provider.
func NewTracerProvider(ctx context.Context, serviceName, serviceVersion, otlpEndpoint string) (*TracerProvider, error) {
	exporter, err := otlptracegrpc.New(
		ctx,
		otlptracegrpc.WithEndpoint(otlpEndpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	res, err := resource.New(
		ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
			semconv.ServiceVersionKey.String(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
	)

	otel.SetTracerProvider(tp)

	return &TracerProvider{tp: tp}, nil
}

// Shutdown flushes pending spans and stops the exporter
func (tp *TracerProvider) Shutdown(ctx context.Context) error {
	if tp == nil || tp.tp == nil {
		return nil
	}
	return tp.tp.Shutdown(ctx)
}

// NewLocateTracer returns a tracer bound to the global provider. Without a
// configured provider the global no-op tracer is used.
func NewLocateTracer(serviceName string) *LocateTracer {
	return &LocateTracer{tracer: otel.Tracer(serviceName)}
}

// NewLocateTracerWithProvider binds to an explicit provider (tests).
func NewLocateTracerWithProvider(tp trace.TracerProvider, serviceName string) *LocateTracer {
	return &LocateTracer{tracer: tp.Tracer(serviceName)}
}

// StartLocateSpan starts the span covering one locate call
func (lt *LocateTracer) StartLocateSpan(ctx context.Context, file, encoding string) (context.Context, trace.Span) {
	return lt.tracer.Start(ctx, "locator.locate",
		trace.WithAttributes(
			attribute.String("locator.file", file),
			attribute.String("locator.encoding", encoding),
			attribute.String("component", "file-locator"),
		),
	)
}

// RecordResolution attaches the resolution result to a span
func (lt *LocateTracer) RecordResolution(span trace.Span, absPath string, exists, excluded bool, outcome string) {
	span.SetAttributes(
		attribute.String("locator.absolute_path", absPath),
		attribute.Bool("locator.exists", exists),
		attribute.Bool("locator.excluded", excluded),
		attribute.String("locator.outcome", outcome),
	)
}

// RecordError records an error on a span
func (lt *LocateTracer) RecordError(span trace.Span, err error, attrs ...attribute.KeyValue) {
	span.SetStatus(codes.Error, err.Error())
	span.SetAttributes(attrs...)
	span.RecordError(err)
}
