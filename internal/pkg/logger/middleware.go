package logger

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// UserIDKey is the echo context key the auth middleware stores the caller id under
const UserIDKey = "user_id"

// EchoMiddleware writes an access log entry per request and annotates the New Relic
// transaction started by nrecho, if any.
func EchoMiddleware(l *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			err := next(c)
			if err != nil {
				// let echo write the response so the logged status is the real one
				c.Error(err)
			}

			userID := "anonymous"
			if v := c.Get(UserIDKey); v != nil {
				userID = fmt.Sprintf("%v", v)
			}
			requestID := c.Response().Header().Get(echo.HeaderXRequestID)
			latency := time.Since(start)

			txn := newrelic.FromContext(req.Context())
			if txn != nil {
				txn.AddAttribute("user_id", userID)
				txn.AddAttribute("request_id", requestID)
				if err != nil {
					txn.NoticeError(err)
				}
			}

			path := req.URL.Path
			if req.URL.RawQuery != "" {
				path += "?" + req.URL.RawQuery
			}
			l.WithTransaction(txn).LogHTTPRequest(HTTPRequest{
				Method:    req.Method,
				Path:      path,
				Status:    c.Response().Status,
				Latency:   latency,
				ClientIP:  c.RealIP(),
				UserID:    userID,
				RequestID: requestID,
				Err:       err,
			})
			return nil
		}
	}
}
