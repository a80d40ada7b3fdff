package context

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestID propagates the caller's X-Request-ID, or a fresh one, to the response header and
// the request context so that log entries of the request can be correlated.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			requestID := req.Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, requestID)
			c.SetRequest(req.WithContext(WithRequestID(req.Context(), requestID)))
			return next(c)
		}
	}
}

// SetUserID records the authenticated user on the request context
func SetUserID(c echo.Context, userID string) {
	req := c.Request()
	c.SetRequest(req.WithContext(WithUserID(req.Context(), userID)))
}

// SetSessionID records the payment session addressed by the request
func SetSessionID(c echo.Context, sessionID string) {
	req := c.Request()
	c.SetRequest(req.WithContext(WithSessionID(req.Context(), sessionID)))
}
