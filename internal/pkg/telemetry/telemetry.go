// Package telemetry initializes OpenTelemetry logging, metrics and tracing with
// OTLP exporters over gRPC. It creates a unified Resource for the service,
// registers global providers, and exposes a ShutdownFunc to flush and stop all
// telemetry pipelines.
//
// Exporters read their endpoint and credentials from the standard
// OTEL_EXPORTER_OTLP_* environment variables.
package telemetry

import (
	"context"
	"errors"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

// loggerProvider holds the provider created by Init so the logger package can
// bridge its entries into it.
var loggerProvider atomic.Pointer[sdklog.LoggerProvider]

// LoggerProvider returns the OTLP logger provider registered by Init, or nil
// when telemetry has not been initialized.
func LoggerProvider() *sdklog.LoggerProvider {
	return loggerProvider.Load()
}

// initMeterProvider sets up an OTLP gRPC MeterProvider using a periodic reader
// and registers it as the global MeterProvider.
func initMeterProvider(ctx context.Context, res *sdkresource.Resource) (*sdkmetric.MeterProvider, error) {
	exporter, err := otlpmetricgrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)
	return mp, nil
}

// initTracerProvider sets up an OTLP gRPC TracerProvider using a batched
// exporter and registers it as the global TracerProvider.
func initTracerProvider(ctx context.Context, res *sdkresource.Resource) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracegrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	return tp, nil
}

// initLoggerProvider sets up an OTLP gRPC LoggerProvider using a batch
// processor and makes it available through LoggerProvider.
func initLoggerProvider(ctx context.Context, res *sdkresource.Resource) (*sdklog.LoggerProvider, error) {
	exporter, err := otlploggrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	lp := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
		sdklog.WithResource(res),
	)

	loggerProvider.Store(lp)
	return lp, nil
}

// newResource merges the default system resource with a ServiceName attribute.
func newResource(serviceName string) (*sdkresource.Resource, error) {
	return sdkresource.Merge(
		sdkresource.Default(),
		sdkresource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}

// ShutdownFunc flushes and stops all telemetry providers. Call it at
// application shutdown to ensure all telemetry is sent.
type ShutdownFunc func(ctx context.Context) error

// shutdowner is implemented by every SDK provider.
type shutdowner interface {
	Shutdown(ctx context.Context) error
}

// newShutdownFunc stops every provider and joins their errors.
func newShutdownFunc(providers ...shutdowner) ShutdownFunc {
	return func(ctx context.Context) error {
		errs := make([]error, 0, len(providers))
		for _, p := range providers {
			errs = append(errs, p.Shutdown(ctx))
		}

		loggerProvider.Store(nil)
		return errors.Join(errs...)
	}
}

// Init configures OpenTelemetry logs, metrics and traces using OTLP over gRPC.
//
// serviceName identifies the telemetry data in the observability backend.
// Providers created before a failure are shut down before the error is
// returned. The logger provider must be initialized before the logger package
// for log entries to be bridged.
func Init(ctx context.Context, serviceName string) (ShutdownFunc, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, err
	}

	var started []shutdowner
	abort := func(err error) (ShutdownFunc, error) {
		return nil, errors.Join(err, newShutdownFunc(started...)(ctx))
	}

	mp, err := initMeterProvider(ctx, res)
	if err != nil {
		return abort(err)
	}
	started = append(started, mp)

	tp, err := initTracerProvider(ctx, res)
	if err != nil {
		return abort(err)
	}
	started = append(started, tp)

	lp, err := initLoggerProvider(ctx, res)
	if err != nil {
		return abort(err)
	}
	started = append(started, lp)

	return newShutdownFunc(started...), nil
}
