package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/escrow/internal/pkg/requestcontext"
)

// RequestContext puts the request and trace ids on the request's
// context.Context, where the ctx-aware loggers and the access log read them.
// Both ids are echoed back to the caller.
func RequestContext(serviceName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqCtx := requestcontext.FromEchoContext(c)
			reqCtx.ServiceName = serviceName

			req := c.Request()
			c.SetRequest(req.WithContext(requestcontext.WithRequestContext(req.Context(), reqCtx)))

			header := c.Response().Header()
			header.Set(echo.HeaderXRequestID, reqCtx.RequestID)
			header.Set("X-Trace-ID", reqCtx.TraceID)
			AddAttribute(c, "request.id", reqCtx.RequestID)

			return next(c)
		}
	}
}

// bindUserID records the authenticated caller once the token is verified
func bindUserID(c echo.Context, userID string) {
	req := c.Request()
	c.SetRequest(req.WithContext(requestcontext.WithUserID(req.Context(), userID)))
	SetUserID(c, userID)
}
