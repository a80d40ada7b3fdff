package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/piresc/transferflow/internal/pkg/models"
)

// ZapLogger wraps a zap logger writing to stdout, an optional file and optionally New Relic
type ZapLogger struct {
	*zap.Logger
	service  string
	nrApp    *newrelic.Application
	filePath string
	file     *os.File
}

// Config holds logger configuration
type Config struct {
	Level    string `json:"level" mapstructure:"level"`
	FilePath string `json:"file_path" mapstructure:"file_path"`
	Service  string `json:"service" mapstructure:"service"`
	// Format is "json" (default) or "console"
	Format string `json:"format" mapstructure:"format"`
}

// New builds a logger from cfg. nrApp may be nil.
func New(cfg Config, nrApp *newrelic.Application) (*ZapLogger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	var encoder zapcore.Encoder
	if cfg.Format == "console" {
		encoder = zapcore.NewConsoleEncoder(encCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encCfg)
	}

	zl := &ZapLogger{
		service:  cfg.Service,
		nrApp:    nrApp,
		filePath: cfg.FilePath,
	}

	cores := []zapcore.Core{zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level)}
	if cfg.FilePath != "" {
		if err := zl.openFile(cfg.FilePath); err != nil {
			return nil, fmt.Errorf("failed to setup file output: %w", err)
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(zl.file), level))
	}
	if nrApp != nil {
		cores = append(cores, newNewRelicCore(nrApp, level, cfg.Service))
	}

	base := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	if cfg.Service != "" {
		base = base.With(zap.String("service", cfg.Service))
	}
	zl.Logger = base
	return zl, nil
}

// NewFromConfig builds a logger from the application config
func NewFromConfig(cfg *models.Config, nrApp *newrelic.Application) (*ZapLogger, error) {
	return New(Config{
		Level:    cfg.Logger.Level,
		FilePath: cfg.Logger.FilePath,
		Service:  cfg.App.Name,
		Format:   cfg.Logger.Type,
	}, nrApp)
}

// Wrap adapts an existing zap logger, mostly for tests
func Wrap(l *zap.Logger) *ZapLogger {
	return &ZapLogger{Logger: l}
}

func (zl *ZapLogger) openFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	zl.file = file
	return nil
}

// Close flushes buffered entries and closes the log file
func (zl *ZapLogger) Close() error {
	_ = zl.Logger.Sync()
	if zl.file != nil {
		return zl.file.Close()
	}
	return nil
}

// WithTransaction correlates entries with a New Relic transaction
func (zl *ZapLogger) WithTransaction(txn *newrelic.Transaction) *ZapLogger {
	if txn == nil {
		return zl
	}
	md := txn.GetLinkingMetadata()
	if md.TraceID == "" {
		return zl
	}
	clone := *zl
	clone.Logger = zl.Logger.With(zap.String("trace.id", md.TraceID), zap.String("span.id", md.SpanID))
	return &clone
}

// LogHTTPRequest writes one access log entry, at error level for 5xx and warn for 4xx
func (zl *ZapLogger) LogHTTPRequest(req HTTPRequest) {
	l := zl.Logger.With(
		zap.String("method", req.Method),
		zap.String("path", req.Path),
		zap.Int("status", req.Status),
		zap.Duration("latency", req.Latency),
		zap.Int64("latency_ms", req.Latency.Milliseconds()),
		zap.String("client_ip", req.ClientIP),
		zap.String("user_id", req.UserID),
		zap.String("request_id", req.RequestID),
	)
	switch {
	case req.Status >= 500:
		l.Error("Server error", zap.Error(req.Err))
	case req.Status >= 400:
		l.Warn("Client error", zap.Error(req.Err))
	default:
		l.Info("Request processed")
	}
}

// HTTPRequest is one served request
type HTTPRequest struct {
	Method    string
	Path      string
	Status    int
	Latency   time.Duration
	ClientIP  string
	UserID    string
	RequestID string
	Err       error
}

// GetFilePath returns the log file path, empty when logging to stdout only
func (zl *ZapLogger) GetFilePath() string {
	return zl.filePath
}
