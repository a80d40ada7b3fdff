package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/piresc/transferflow/internal/pkg/logger"
	"github.com/piresc/transferflow/internal/utils"
)

// Recover turns a panic in a handler into a 500 response, logs it with its stack and reports
// it to New Relic when a transaction is active.
func Recover() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				req := c.Request()
				msg := fmt.Sprintf("%v", r)
				logger.ErrorCtx(req.Context(), "Panic recovered during request processing",
					logger.String("panic", msg),
					logger.String("panic_type", fmt.Sprintf("%T", r)),
					logger.String("stack", string(debug.Stack())),
					logger.String("method", req.Method),
					logger.String("path", req.URL.Path))

				if txn := newrelic.FromContext(req.Context()); txn != nil {
					txn.NoticeError(newrelic.Error{Message: msg, Class: "PanicError"})
				}

				if !c.Response().Committed {
					err = utils.InternalServerErrorResponse(c, "")
				}
			}()
			return next(c)
		}
	}
}
