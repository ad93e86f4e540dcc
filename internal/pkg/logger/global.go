package logger

import (
	"context"
	"sync"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/escrow/internal/pkg/requestcontext"
	"go.uber.org/zap"
)

var (
	mu     sync.RWMutex
	global *ZapLogger

	fallback = sync.OnceValue(func() *ZapLogger {
		l, err := zap.NewProduction()
		if err != nil {
			l = zap.NewNop()
		}
		return &ZapLogger{Logger: l}
	})
)

// SetGlobalLogger installs the logger used by the package-level helpers.
// Binaries call it once after building their logger.
func SetGlobalLogger(l *ZapLogger) {
	mu.Lock()
	defer mu.Unlock()
	global = l
}

// GetGlobalLogger returns the installed logger, or a production default
// for code running before SetGlobalLogger (tests, init)
func GetGlobalLogger() *ZapLogger {
	mu.RLock()
	defer mu.RUnlock()
	if global == nil {
		return fallback()
	}
	return global
}

func Info(msg string, fields ...Field)  { caller().Info(msg, fields...) }
func Warn(msg string, fields ...Field)  { caller().Warn(msg, fields...) }
func Error(msg string, fields ...Field) { caller().Error(msg, fields...) }
func Debug(msg string, fields ...Field) { caller().Debug(msg, fields...) }

func InfoCtx(ctx context.Context, msg string, fields ...Field)  { fromContext(ctx).Info(msg, fields...) }
func WarnCtx(ctx context.Context, msg string, fields ...Field)  { fromContext(ctx).Warn(msg, fields...) }
func ErrorCtx(ctx context.Context, msg string, fields ...Field) { fromContext(ctx).Error(msg, fields...) }
func DebugCtx(ctx context.Context, msg string, fields ...Field) { fromContext(ctx).Debug(msg, fields...) }

// caller reports the code that called the package helper, not this file
func caller() *zap.Logger {
	return GetGlobalLogger().WithOptions(zap.AddCallerSkip(1))
}

// fromContext adds the New Relic trace and the request and user ids the
// request context middleware stored on ctx
func fromContext(ctx context.Context) *zap.Logger {
	zl := GetGlobalLogger()
	l := zl.Logger
	if txn := newrelic.FromContext(ctx); txn != nil {
		l = zl.WithTrace(txn)
	}

	var extra []Field
	if id := requestcontext.GetRequestID(ctx); id != "" {
		extra = append(extra, String("request_id", id))
	}
	if id := requestcontext.GetUserID(ctx); id != "" {
		extra = append(extra, String("user_id", id))
	}
	if len(extra) > 0 {
		l = l.With(extra...)
	}
	return l.WithOptions(zap.AddCallerSkip(1))
}
