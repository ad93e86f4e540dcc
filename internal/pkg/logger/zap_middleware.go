package logger

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/escrow/internal/pkg/requestcontext"
	"go.uber.org/zap"
)

// AccessLog writes one entry per request. The route pattern is logged
// instead of the raw URL so transaction ids and query strings stay out of
// the message. 5xx is an error, 4xx a warning.
func AccessLog(zl *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			latency := time.Since(start)

			ctx := c.Request().Context()
			status := c.Response().Status
			var he *echo.HTTPError
			if errors.As(err, &he) {
				status = he.Code
			} else if err != nil {
				status = http.StatusInternalServerError
			}

			l := zl.Logger
			if txn := newrelic.FromContext(ctx); txn != nil {
				l = zl.WithTrace(txn)
				txn.AddAttribute("response_time_ms", latency.Milliseconds())
			}
			fields := []zap.Field{
				zap.String("method", c.Request().Method),
				zap.String("route", c.Path()),
				zap.Int("status", status),
				zap.Duration("latency", latency),
				zap.String("client_ip", c.RealIP()),
				zap.String("request_id", requestcontext.GetRequestID(ctx)),
				zap.String("trace_id", requestcontext.GetTraceID(ctx)),
			}
			if uid := requestcontext.GetUserID(ctx); uid != "" {
				fields = append(fields, zap.String("user_id", uid))
			}

			switch {
			case status >= http.StatusInternalServerError:
				l.Error("Request failed", append(fields, zap.Error(err))...)
			case status >= http.StatusBadRequest:
				l.Warn("Request rejected", fields...)
			default:
				l.Info("Request served", fields...)
			}
			return err
		}
	}
}
