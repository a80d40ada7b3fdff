package logger

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	pkgctx "github.com/piresc/transferflow/internal/pkg/context"
)

func observed(t *testing.T) (*ZapLogger, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return Wrap(zap.New(core)), logs
}

func TestGlobalLogger(t *testing.T) {
	l, logs := observed(t)
	SetGlobalLogger(l)
	t.Cleanup(func() { SetGlobalLogger(nil) })

	Info("session created", String("session_id", "s-1"))
	WarnCtx(context.Background(), "lookup slow", Duration("elapsed", 0))
	Error("publish failed", Err(errors.New("boom")))

	require.Equal(t, 3, logs.Len())
	entries := logs.All()
	assert.Equal(t, "session created", entries[0].Message)
	assert.Equal(t, "s-1", entries[0].ContextMap()["session_id"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "boom", entries[2].ContextMap()["error"])
}

func TestCtxLogging_CarriesRequestFields(t *testing.T) {
	l, logs := observed(t)
	SetGlobalLogger(l)
	t.Cleanup(func() { SetGlobalLogger(nil) })

	ctx := pkgctx.WithUserID(pkgctx.WithRequestID(context.Background(), "req-7"), "user-7")
	ctx = pkgctx.WithSessionID(ctx, "sess-7")
	InfoCtx(ctx, "otp verified")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "req-7", fields["request_id"])
	assert.Equal(t, "user-7", fields["user_id"])
	assert.Equal(t, "sess-7", fields["session_id"])
}

func TestAmountField(t *testing.T) {
	l, logs := observed(t)

	l.Info("payment", Amount("amount", decimal.RequireFromString("1234.5")))

	assert.Equal(t, "1234.50", logs.All()[0].ContextMap()["amount"])
}

func TestGetGlobalLogger_Default(t *testing.T) {
	SetGlobalLogger(nil)
	assert.NotNil(t, GetGlobalLogger())
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	l, err := New(Config{Level: "debug", FilePath: path, Service: "payments"}, nil)
	require.NoError(t, err)
	l.Info("hello")
	require.NoError(t, l.Close())

	assert.Equal(t, path, l.GetFilePath())
	assert.FileExists(t, path)
}

func TestEchoMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		handler echo.HandlerFunc
		status  int
		level   zapcore.Level
	}{
		{
			name:    "Success",
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			status:  http.StatusOK,
			level:   zapcore.InfoLevel,
		},
		{
			name:    "Client error",
			handler: func(c echo.Context) error { return echo.NewHTTPError(http.StatusNotFound, "missing") },
			status:  http.StatusNotFound,
			level:   zapcore.WarnLevel,
		},
		{
			name:    "Server error",
			handler: func(c echo.Context) error { return errors.New("db down") },
			status:  http.StatusInternalServerError,
			level:   zapcore.ErrorLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, logs := observed(t)
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/payments/accounts?x=1", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.Set(UserIDKey, "user-1")

			err := EchoMiddleware(l)(tt.handler)(c)

			require.NoError(t, err)
			assert.Equal(t, tt.status, rec.Code)
			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.level, entry.Level)
			assert.Equal(t, "user-1", entry.ContextMap()["user_id"])
			assert.Equal(t, "/payments/accounts?x=1", entry.ContextMap()["path"])
			assert.EqualValues(t, tt.status, entry.ContextMap()["status"])
		})
	}
}
