// Package logger provides a global, Sugared Zap logger with optional
// OpenTelemetry integration. Request-scoped fields can be attached to a
// context with Derive, and every log call made with that context carries them,
// together with the active trace and span identifiers.
package logger

import (
	"context"
	"os"
	"sync"

	"github.com/gabapcia/faucet/internal/pkg/telemetry"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ctxKeyType is unexported so no other package can collide with ctxKey.
type ctxKeyType struct{}

var (
	// baseLogger is the process-wide logger. It is set once by Init.
	baseLogger *zap.SugaredLogger

	// initBaseLoggerOnce guards the one-time configuration of baseLogger.
	initBaseLoggerOnce sync.Once

	// ctxKey stores a derived *zap.SugaredLogger inside a context.
	ctxKey = ctxKeyType{}
)

// Init configures the global logger at the given level ("debug", "info",
// "warn", "error", "panic", "fatal"). Logs are JSON encoded to stderr so that
// stdout only carries command output. When telemetry has registered a
// LoggerProvider, records are also forwarded to it through the otelzap bridge.
//
// Only the first successful call has any effect.
func Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	initBaseLoggerOnce.Do(func() {
		cores := []zapcore.Core{
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(os.Stderr),
				lvl,
			),
		}

		if lp := telemetry.LoggerProvider(); lp != nil {
			cores = append(cores, otelzap.NewCore("github.com/gabapcia/faucet", otelzap.WithLoggerProvider(lp)))
		}

		baseLogger = zap.New(zapcore.NewTee(cores...)).Sugar()
	})

	return nil
}

// Sync flushes any buffered log entries. Call it before the process exits.
func Sync() error {
	return baseLogger.Sync()
}

// deriveFromCtx returns the logger stored in ctx (or the base logger) extended
// with the trace identifiers found in ctx and the given key/value pairs.
func deriveFromCtx(ctx context.Context, keysAndValues ...any) *zap.SugaredLogger {
	l, ok := ctx.Value(ctxKey).(*zap.SugaredLogger)
	if !ok {
		l = baseLogger
	}

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		l = l.With("trace_id", sc.TraceID().String(), "span_id", sc.SpanID().String())
	}

	if len(keysAndValues) == 0 {
		return l
	}

	return l.With(keysAndValues...)
}

// Derive returns a copy of ctx whose logger carries the given key/value pairs.
// Fields accumulate across nested calls.
func Derive(ctx context.Context, keysAndValues ...any) context.Context {
	l, ok := ctx.Value(ctxKey).(*zap.SugaredLogger)
	if !ok {
		l = baseLogger
	}

	return context.WithValue(ctx, ctxKey, l.With(keysAndValues...))
}

func log(ctx context.Context, level zapcore.Level, msg string, keysAndValues ...any) {
	l := deriveFromCtx(ctx)
	switch level {
	case zapcore.DebugLevel:
		l.Debugw(msg, keysAndValues...)
	case zapcore.WarnLevel:
		l.Warnw(msg, keysAndValues...)
	case zapcore.ErrorLevel:
		l.Errorw(msg, keysAndValues...)
	default:
		l.Infow(msg, keysAndValues...)
	}
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.DebugLevel, msg, keysAndValues...)
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.InfoLevel, msg, keysAndValues...)
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.WarnLevel, msg, keysAndValues...)
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.ErrorLevel, msg, keysAndValues...)
}

// Panic logs a panic-level message and then panics.
func Panic(ctx context.Context, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Panicw(msg, keysAndValues...)
}

// Fatal logs a fatal-level message and then exits the process with status 1.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Fatalw(msg, keysAndValues...)
}
