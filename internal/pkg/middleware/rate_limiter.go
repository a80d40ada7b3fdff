package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"

	"github.com/piresc/transferflow/internal/pkg/constants"
	"github.com/piresc/transferflow/internal/pkg/logger"
	"github.com/piresc/transferflow/internal/utils"
)

// RateLimiterConfig limits one action per caller in a fixed window
type RateLimiterConfig struct {
	Client *redis.Client
	// Key names the limited action, e.g. "otp_resend"
	Key    string
	Limit  int
	Period time.Duration
}

// RateLimiter counts requests per authenticated user (or client IP) in Redis. Redis failures
// let the request through.
func RateLimiter(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identifier := c.RealIP()
			if user, ok := AuthUser(c); ok {
				identifier = user.ID
			}
			key := fmt.Sprintf(constants.KeyRateLimit, config.Key, identifier)
			ctx := c.Request().Context()

			count, err := config.Client.Incr(ctx, key).Result()
			if err != nil {
				logger.WarnCtx(ctx, "Rate limiter unavailable", logger.String("key", key), logger.Err(err))
				return next(c)
			}
			if count == 1 {
				config.Client.Expire(ctx, key, config.Period)
			}

			remaining := config.Limit - int(count)
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if int(count) > config.Limit {
				ttl, _ := config.Client.TTL(ctx, key).Result()
				c.Response().Header().Set("Retry-After", strconv.Itoa(int(ttl.Seconds())))
				return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, "Too many requests, try again later")
			}
			return next(c)
		}
	}
}
