// Package telemetry sets up OpenTelemetry tracing and metrics with a stdout
// exporter for development or OTLP/HTTP for production.
//
//	opts := telemetry.Options{ServiceName: "flowboard", Exporter: telemetry.ExporterStdout}
//	tp, err := telemetry.InitTracer(ctx, opts)
//	defer tp.Shutdown(ctx)
//	mp, err := telemetry.InitMeter(ctx, opts)
//	defer mp.Shutdown(ctx)
//
//	metrics, err := telemetry.NewMetrics(mp)
//	metrics.RecordCommand(ctx, "MoveCard", telemetry.ResultOK, elapsed)
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Exporter names accepted in Options.Exporter.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// InstrumentationName scopes the tracer and meter of this module.
const InstrumentationName = "github.com/jsamuelsen11/flowboard"

// Options selects and configures the exporters. Endpoint is the OTLP/HTTP
// collector URL or host:port, and Headers are sent with every OTLP request.
// Writer receives stdout exporter output and defaults to os.Stdout.
type Options struct {
	ServiceName string
	Exporter    string
	Endpoint    string
	Headers     map[string]string
	Writer      io.Writer
}

func (o Options) validate() error {
	switch o.Exporter {
	case ExporterStdout:
		return nil
	case ExporterOTLP:
		if o.Endpoint == "" {
			return errors.New("otlp exporter requires an endpoint")
		}
		return nil
	default:
		return fmt.Errorf("unsupported exporter %q", o.Exporter)
	}
}

func (o Options) writer() io.Writer {
	if o.Writer == nil {
		return os.Stdout
	}
	return o.Writer
}

// InitTracer creates a TracerProvider, registers it globally together with
// the W3C trace-context and baggage propagators, and returns it. Shut it down
// on exit to flush batched spans.
func InitTracer(ctx context.Context, opts Options) (*sdktrace.TracerProvider, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	res, err := newResource(opts.ServiceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	spanExporter, err := newSpanExporter(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(spanExporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp, nil
}

// InitMeter creates a MeterProvider with a periodic reader, registers it
// globally and returns it. Shut it down on exit to flush the last export.
func InitMeter(ctx context.Context, opts Options) (*sdkmetric.MeterProvider, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	res, err := newResource(opts.ServiceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	metricExporter, err := newMetricExporter(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	return mp, nil
}

func newResource(serviceName string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}

func newSpanExporter(ctx context.Context, opts Options) (sdktrace.SpanExporter, error) {
	if opts.Exporter == ExporterOTLP {
		o := []otlptracehttp.Option{otlptracehttp.WithEndpoint(hostPort(opts.Endpoint))}
		if !isHTTPS(opts.Endpoint) {
			o = append(o, otlptracehttp.WithInsecure())
		}
		if len(opts.Headers) > 0 {
			o = append(o, otlptracehttp.WithHeaders(opts.Headers))
		}
		return otlptracehttp.New(ctx, o...)
	}
	return stdouttrace.New(stdouttrace.WithWriter(opts.writer()), stdouttrace.WithPrettyPrint())
}

func newMetricExporter(ctx context.Context, opts Options) (sdkmetric.Exporter, error) {
	if opts.Exporter == ExporterOTLP {
		o := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(hostPort(opts.Endpoint))}
		if !isHTTPS(opts.Endpoint) {
			o = append(o, otlpmetrichttp.WithInsecure())
		}
		if len(opts.Headers) > 0 {
			o = append(o, otlpmetrichttp.WithHeaders(opts.Headers))
		}
		return otlpmetrichttp.New(ctx, o...)
	}
	return stdoutmetric.New(stdoutmetric.WithWriter(opts.writer()))
}

// hostPort turns "http://otel-collector:4318" into "otel-collector:4318".
// Values without a scheme are returned unchanged.
func hostPort(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint
	}
	return u.Host
}

func isHTTPS(endpoint string) bool {
	u, err := url.Parse(endpoint)
	if err != nil {
		return false
	}
	return u.Scheme == "https"
}
