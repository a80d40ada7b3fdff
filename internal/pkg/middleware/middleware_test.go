package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtpkg "github.com/piresc/transferflow/internal/pkg/jwt"
	"github.com/piresc/transferflow/internal/pkg/models"
)

var jwtConfig = models.JWTConfig{Secret: "secret", Expiration: 5, Issuer: "test"}

func newAuthedServer(t *testing.T, mw ...echo.MiddlewareFunc) *echo.Echo {
	t.Helper()
	e := echo.New()
	chain := append([]echo.MiddlewareFunc{JWTAuth(jwtConfig)}, mw...)
	e.GET("/me", func(c echo.Context) error {
		user, ok := AuthUser(c)
		if !ok {
			return c.NoContent(http.StatusTeapot)
		}
		return c.JSON(http.StatusOK, user)
	}, chain...)
	return e
}

func bearer(t *testing.T, user models.AuthUser) string {
	t.Helper()
	token, _, err := jwtpkg.GenerateToken(user, jwtConfig)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestJWTAuth(t *testing.T) {
	e := newAuthedServer(t)
	user := models.AuthUser{ID: "user-1", Email: "ana.petrovic@example.com"}

	tests := []struct {
		name   string
		header string
		status int
	}{
		{name: "Valid token", header: bearer(t, user), status: http.StatusOK},
		{name: "Missing header", header: "", status: http.StatusUnauthorized},
		{name: "Malformed", header: "Bearer nope", status: http.StatusUnauthorized},
		{name: "Wrong scheme", header: "Basic abc", status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.Contains(t, rec.Body.String(), "ana.petrovic@example.com")
			}
		})
	}
}

func TestRateLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	e := newAuthedServer(t, RateLimiter(RateLimiterConfig{Client: client, Key: "otp_resend", Limit: 2, Period: time.Minute}))
	auth := bearer(t, models.AuthUser{ID: "user-1"})

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(echo.HeaderAuthorization, auth)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, do().Code)
	assert.Equal(t, http.StatusOK, do().Code)
	rec := do()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, time.Minute, mr.TTL("payment:ratelimit:otp_resend:user-1"))

	mr.FastForward(2 * time.Minute)
	assert.Equal(t, http.StatusOK, do().Code)
}

func TestRateLimiter_RedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	mr.Close()

	e := newAuthedServer(t, RateLimiter(RateLimiterConfig{Client: client, Key: "otp_resend", Limit: 1, Period: time.Minute}))
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(echo.HeaderAuthorization, bearer(t, models.AuthUser{ID: "user-1"}))
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecover(t *testing.T) {
	e := echo.New()
	e.Use(Recover())
	e.GET("/panic", func(c echo.Context) error { panic("boom") })
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal server error")
}
