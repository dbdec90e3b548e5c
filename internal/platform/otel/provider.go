// Package otel wires opt-in OpenTelemetry tracing for the tracker process.
package otel

import (
	"context"
	"fmt"

	"github.com/louisbranch/cyclingtracker/internal/platform/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Options controls trace export.
type Options struct {
	Enabled  bool   `env:"CYCLING_TRACKER_OTEL_ENABLED" envDefault:"true"`
	Endpoint string `env:"CYCLING_TRACKER_OTEL_ENDPOINT"`
	// SampleRatio is the fraction of root spans kept; 1 keeps everything.
	SampleRatio float64 `env:"CYCLING_TRACKER_OTEL_SAMPLE_RATIO" envDefault:"1"`
}

// active reports whether exporting should be configured at all.
func (o Options) active() bool {
	return o.Enabled && o.Endpoint != ""
}

func (o Options) sampler() sdktrace.Sampler {
	switch {
	case o.SampleRatio >= 1:
		return sdktrace.AlwaysSample()
	case o.SampleRatio <= 0:
		return sdktrace.NeverSample()
	default:
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(o.SampleRatio))
	}
}

// OptionsFromEnv reads tracing options from the environment.
func OptionsFromEnv() (Options, error) {
	var opts Options
	if err := config.ParseEnv(&opts); err != nil {
		return Options{}, fmt.Errorf("otel options: %w", err)
	}
	return opts, nil
}

// Setup initialises tracing for serviceName from environment options.
//
// Tracing is opt-in: when CYCLING_TRACKER_OTEL_ENDPOINT is empty or
// CYCLING_TRACKER_OTEL_ENABLED is false, Setup returns a no-op shutdown and
// registers no global provider.
func Setup(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	opts, err := OptionsFromEnv()
	if err != nil {
		return noop, err
	}
	return SetupWithOptions(ctx, serviceName, opts)
}

// SetupWithOptions is Setup with explicit options. The returned shutdown
// flushes pending spans and should be deferred by the caller.
func SetupWithOptions(ctx context.Context, serviceName string, opts Options) (shutdown func(context.Context) error, err error) {
	if !opts.active() {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(opts.Endpoint))
	if err != nil {
		return noop, fmt.Errorf("otlp exporter: %w", err)
	}
	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(serviceName)))
	if err != nil {
		return noop, fmt.Errorf("otel resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(opts.sampler()),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp.Shutdown, nil
}

func noop(context.Context) error { return nil }
