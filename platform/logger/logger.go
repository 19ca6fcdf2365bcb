package logger

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxFieldsKey struct{}

var (
	globalLogger *logger
	initOnce     sync.Once
	mu           sync.RWMutex
)

type logger struct {
	zl *zap.Logger
}

// Init builds the global logger. Level is one of debug, info, warn, error.
func Init(level string, asJSON bool) error {
	var initErr error

	initOnce.Do(func() {
		lvl, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
		if err != nil {
			initErr = fmt.Errorf("logger.Init: %w", err)
			return
		}

		encCfg := zap.NewProductionEncoderConfig()
		encCfg.TimeKey = "timestamp"
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

		var enc zapcore.Encoder
		if asJSON {
			enc = zapcore.NewJSONEncoder(encCfg)
		} else {
			encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
			enc = zapcore.NewConsoleEncoder(encCfg)
		}

		core := zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), zap.NewAtomicLevelAt(lvl))
		set(zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)))
	})

	return initErr
}

// SetNopLogger replaces the global logger with one that drops everything.
// Used by tests.
func SetNopLogger() {
	set(zap.NewNop())
}

// Sync flushes buffered entries.
func Sync() error {
	return L().zl.Sync()
}

// L returns the global logger, a no-op one until Init is called.
func L() *logger {
	mu.RLock()
	defer mu.RUnlock()

	if globalLogger == nil {
		return &logger{zl: zap.NewNop()}
	}
	return globalLogger
}

func set(zl *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()

	globalLogger = &logger{zl: zl}
}

// With returns a child of the global logger carrying fields.
func With(fields ...Field) *logger {
	return L().With(fields...)
}

// ContextWithFields attaches fields to ctx; every log call made with the
// returned context includes them.
func ContextWithFields(ctx context.Context, fields ...Field) context.Context {
	if len(fields) == 0 {
		return ctx
	}

	prev, _ := ctx.Value(ctxFieldsKey{}).([]Field)
	merged := make([]Field, 0, len(prev)+len(fields))
	merged = append(merged, prev...)
	merged = append(merged, fields...)

	return context.WithValue(ctx, ctxFieldsKey{}, merged)
}

func Debug(ctx context.Context, msg string, fields ...Field) { L().Debug(ctx, msg, fields...) }
func Info(ctx context.Context, msg string, fields ...Field)  { L().Info(ctx, msg, fields...) }
func Warn(ctx context.Context, msg string, fields ...Field)  { L().Warn(ctx, msg, fields...) }
func Error(ctx context.Context, msg string, fields ...Field) { L().Error(ctx, msg, fields...) }

func (l *logger) With(fields ...Field) *logger {
	return &logger{zl: l.zl.With(fields...)}
}

func (l *logger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.zl.Debug(msg, withContext(ctx, fields)...)
}

func (l *logger) Info(ctx context.Context, msg string, fields ...Field) {
	l.zl.Info(msg, withContext(ctx, fields)...)
}

func (l *logger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.zl.Warn(msg, withContext(ctx, fields)...)
}

func (l *logger) Error(ctx context.Context, msg string, fields ...Field) {
	l.zl.Error(msg, withContext(ctx, fields)...)
}

func withContext(ctx context.Context, fields []Field) []Field {
	if ctx == nil {
		return fields
	}

	ctxFields, ok := ctx.Value(ctxFieldsKey{}).([]Field)
	if !ok || len(ctxFields) == 0 {
		return fields
	}

	return append(ctxFields[:len(ctxFields):len(ctxFields)], fields...)
}

// NoopLogger satisfies the small Logger interfaces of platform packages
// without writing anything.
type NoopLogger struct{}

func (NoopLogger) Info(context.Context, string, ...zap.Field)  {}
func (NoopLogger) Error(context.Context, string, ...zap.Field) {}
