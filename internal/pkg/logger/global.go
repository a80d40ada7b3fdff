package logger

import (
	"context"
	"sync"

	"github.com/newrelic/go-agent/v3/newrelic"
	"go.uber.org/zap"

	pkgctx "github.com/piresc/transferflow/internal/pkg/context"
)

var (
	globalLogger *ZapLogger
	mu           sync.RWMutex
)

// SetGlobalLogger installs the process-wide logger. Call it once during startup.
func SetGlobalLogger(l *ZapLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = l
}

// GetGlobalLogger returns the process-wide logger, a production zap logger if none was set
func GetGlobalLogger() *ZapLogger {
	mu.RLock()
	l := globalLogger
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if globalLogger == nil {
		base, err := zap.NewProduction()
		if err != nil {
			base = zap.NewNop()
		}
		globalLogger = Wrap(base)
	}
	return globalLogger
}

// Info logs at info level using the global logger
func Info(msg string, fields ...Field) {
	GetGlobalLogger().Info(msg, fields...)
}

// Warn logs at warn level using the global logger
func Warn(msg string, fields ...Field) {
	GetGlobalLogger().Warn(msg, fields...)
}

// Debug logs at debug level using the global logger
func Debug(msg string, fields ...Field) {
	GetGlobalLogger().Debug(msg, fields...)
}

// Error logs at error level using the global logger
func Error(msg string, fields ...Field) {
	GetGlobalLogger().Error(msg, fields...)
}

// Fatal logs and exits using the global logger
func Fatal(msg string, fields ...Field) {
	GetGlobalLogger().Fatal(msg, fields...)
}

func fromContext(ctx context.Context) *ZapLogger {
	l := GetGlobalLogger()
	if ctx == nil {
		return l
	}
	l = l.WithTransaction(newrelic.FromContext(ctx))

	values := pkgctx.Values(ctx)
	if len(values) == 0 {
		return l
	}
	fields := make([]Field, 0, len(values))
	for name, v := range values {
		fields = append(fields, String(name, v))
	}
	clone := *l
	clone.Logger = l.Logger.With(fields...)
	return &clone
}

// InfoCtx logs at info level, correlated with the New Relic transaction in ctx if any
func InfoCtx(ctx context.Context, msg string, fields ...Field) {
	fromContext(ctx).Info(msg, fields...)
}

// WarnCtx logs at warn level, correlated with the New Relic transaction in ctx if any
func WarnCtx(ctx context.Context, msg string, fields ...Field) {
	fromContext(ctx).Warn(msg, fields...)
}

// ErrorCtx logs at error level, correlated with the New Relic transaction in ctx if any
func ErrorCtx(ctx context.Context, msg string, fields ...Field) {
	fromContext(ctx).Error(msg, fields...)
}

// DebugCtx logs at debug level, correlated with the New Relic transaction in ctx if any
func DebugCtx(ctx context.Context, msg string, fields ...Field) {
	fromContext(ctx).Debug(msg, fields...)
}
