// Package logger provides a global, Sugared Zap logger with optional
// OpenTelemetry integration. It supports configuring the log level and output
// via functional options, emits JSON logs, and adds an OTEL bridge core when a
// telemetry logger provider is available.
//
// Every logging function takes a context. When the context carries a valid
// span, its trace and span IDs are attached to the entry. Fields attached with
// Derive are attached as well.
package logger

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/gabapcia/chainpub/internal/pkg/telemetry"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// instrumentationName identifies log records forwarded through the OTEL bridge.
const instrumentationName = "github.com/gabapcia/chainpub"

type ctxKeyType struct{}

// ctxKey stores derived key/value pairs in a context.
var ctxKey ctxKeyType

var (
	// logger is the global SugaredLogger instance. It discards everything
	// until Init is called.
	logger = zap.NewNop().Sugar()

	// initOnce ensures the logger is only configured a single time.
	initOnce sync.Once
)

// config holds configuration options for the logger.
type config struct {
	level  string    // the minimum log level (debug, info, warn, error, panic, fatal)
	output io.Writer // destination of the JSON encoded entries
}

// Option configures the logger before initialization.
type Option func(*config)

// WithLevel sets the minimum log level for the global logger.
// Example levels: "debug", "info", "warn", "error", "panic", "fatal".
func WithLevel(l string) Option {
	return func(c *config) {
		c.level = l
	}
}

// WithOutput sets where JSON entries are written. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.output = w
	}
}

// Init configures the global logger. By default, it logs JSON to stdout at the
// "info" level. If an OpenTelemetry LoggerProvider is registered via
// telemetry.LoggerProvider(), an OTEL bridge core is added to forward logs to
// the telemetry backend. Calling Init multiple times has no effect after the
// first successful initialization.
//
// Returns an error if parsing the log level fails.
func Init(opts ...Option) error {
	cfg := config{
		level:  "info",
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	level, err := zapcore.ParseLevel(cfg.level)
	if err != nil {
		return err
	}

	initOnce.Do(func() {
		encoderConfig := zap.NewProductionEncoderConfig()
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

		cores := []zapcore.Core{
			zapcore.NewCore(
				zapcore.NewJSONEncoder(encoderConfig),
				zapcore.AddSync(cfg.output),
				level,
			),
		}

		if lp := telemetry.LoggerProvider(); lp != nil {
			cores = append(cores, otelzap.NewCore(instrumentationName, otelzap.WithLoggerProvider(lp)))
		}

		logger = zap.New(zapcore.NewTee(cores...)).Sugar()
	})

	return nil
}

// Sync flushes any buffered log entries. It should be called on application
// shutdown to ensure all logs are written out.
func Sync() error {
	return logger.Sync()
}

// Derive returns a copy of ctx that makes every entry logged with it carry the
// given key/value pairs, in addition to those already derived.
func Derive(ctx context.Context, keysAndValues ...any) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	prev, _ := ctx.Value(ctxKey).([]any)
	fields := make([]any, 0, len(prev)+len(keysAndValues))
	fields = append(fields, prev...)
	fields = append(fields, keysAndValues...)

	return context.WithValue(ctx, ctxKey, fields)
}

// fromCtx returns the global logger enriched with the derived fields and the
// active span of ctx, if any.
func fromCtx(ctx context.Context) *zap.SugaredLogger {
	if ctx == nil {
		return logger
	}

	l := logger
	if fields, ok := ctx.Value(ctxKey).([]any); ok && len(fields) > 0 {
		l = l.With(fields...)
	}

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		l = l.With(
			"trace_id", sc.TraceID().String(),
			"span_id", sc.SpanID().String(),
		)
	}

	return l
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	fromCtx(ctx).Debugw(msg, keysAndValues...)
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	fromCtx(ctx).Infow(msg, keysAndValues...)
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	fromCtx(ctx).Warnw(msg, keysAndValues...)
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	fromCtx(ctx).Errorw(msg, keysAndValues...)
}

// Panic logs a panic-level message (and then panics) with optional key/value context.
func Panic(ctx context.Context, msg string, keysAndValues ...any) {
	fromCtx(ctx).Panicw(msg, keysAndValues...)
}

// Fatal logs a fatal-level message (and then exits) with optional key/value context.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	fromCtx(ctx).Fatalw(msg, keysAndValues...)
}
