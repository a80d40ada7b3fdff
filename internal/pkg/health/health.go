package health

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/piresc/transferflow/internal/pkg/circuitbreaker"
	"github.com/piresc/transferflow/internal/pkg/database"
	"github.com/piresc/transferflow/internal/pkg/logger"
	"github.com/piresc/transferflow/internal/pkg/nats"
	"github.com/piresc/transferflow/internal/pkg/nsq"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// HealthChecker checks one dependency
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a function to HealthChecker
type CheckerFunc func(ctx context.Context) error

// CheckHealth calls f
func (f CheckerFunc) CheckHealth(ctx context.Context) error {
	return f(ctx)
}

// Postgres checks the database connection
func Postgres(client *database.PostgresClient) HealthChecker {
	return CheckerFunc(client.Ping)
}

// Redis checks the Redis connection
func Redis(client *database.RedisClient) HealthChecker {
	return CheckerFunc(client.Ping)
}

// NATS checks that the NATS connection is up
func NATS(client *nats.Client) HealthChecker {
	return CheckerFunc(func(ctx context.Context) error {
		if !client.IsConnected() {
			return errors.New("nats not connected")
		}
		return nil
	})
}

// NSQ pings nsqd
func NSQ(producer *nsq.Producer) HealthChecker {
	return CheckerFunc(func(ctx context.Context) error {
		return producer.Ping()
	})
}

// Breaker reports unhealthy while the upstream's circuit breaker is open
func Breaker(stats func() circuitbreaker.Stats) HealthChecker {
	return CheckerFunc(func(ctx context.Context) error {
		st := stats()
		if st.State == circuitbreaker.StateOpen.String() {
			return fmt.Errorf("circuit breaker %s is open after %d consecutive failures", st.Name, st.ConsecutiveFailures)
		}
		return nil
	})
}

// DependencyInfo is the health of one dependency
type DependencyInfo struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Response is the body of the detailed health endpoints
type Response struct {
	Status       string                    `json:"status"`
	Timestamp    time.Time                 `json:"timestamp"`
	Service      string                    `json:"service"`
	Version      string                    `json:"version,omitempty"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
}

// Service runs the registered checks concurrently
type Service struct {
	name     string
	version  string
	mu       sync.RWMutex
	checkers map[string]HealthChecker
}

// NewService creates a health service for the named application
func NewService(name, version string) *Service {
	return &Service{
		name:     name,
		version:  version,
		checkers: make(map[string]HealthChecker),
	}
}

// AddChecker registers a dependency check
func (s *Service) AddChecker(name string, checker HealthChecker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkers[name] = checker
}

// Check runs every check and reports unhealthy when any fails
func (s *Service) Check(ctx context.Context) Response {
	s.mu.RLock()
	names := make([]string, 0, len(s.checkers))
	for name := range s.checkers {
		names = append(names, name)
	}
	s.mu.RUnlock()
	sort.Strings(names)

	results := make([]DependencyInfo, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		s.mu.RLock()
		checker := s.checkers[name]
		s.mu.RUnlock()

		wg.Add(1)
		go func(i int, name string, checker HealthChecker) {
			defer wg.Done()
			if err := checker.CheckHealth(ctx); err != nil {
				logger.WarnCtx(ctx, "Health check failed", logger.String("dependency", name), logger.Err(err))
				results[i] = DependencyInfo{Status: StatusUnhealthy, Error: err.Error()}
				return
			}
			results[i] = DependencyInfo{Status: StatusHealthy}
		}(i, name, checker)
	}
	wg.Wait()

	resp := Response{
		Status:       StatusHealthy,
		Timestamp:    time.Now(),
		Service:      s.name,
		Version:      s.version,
		Dependencies: make(map[string]DependencyInfo, len(names)),
	}
	for i, name := range names {
		resp.Dependencies[name] = results[i]
		if results[i].Status != StatusHealthy {
			resp.Status = StatusUnhealthy
		}
	}
	return resp
}

// BuildInfo describes the running binary
type BuildInfo struct {
	Version     string    `json:"version"`
	GitCommit   string    `json:"git_commit"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// NewPingHandler answers with build information
func NewPingHandler(serviceName, version string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	info := BuildInfo{
		Version:     version,
		GitCommit:   "unknown",
		ServiceName: serviceName,
		GoVersion:   runtime.Version(),
		Hostname:    hostname,
	}
	if commit := os.Getenv("GIT_COMMIT"); commit != "" {
		info.GitCommit = commit
	}

	return func(c echo.Context) error {
		resp := info
		resp.ServerTime = time.Now()
		return c.JSON(http.StatusOK, resp)
	}
}

// RegisterEndpoints adds /ping, /health, /health/detailed and /health/ready
func RegisterEndpoints(e *echo.Echo, svc *Service) {
	e.GET("/ping", NewPingHandler(svc.name, svc.version))

	group := e.Group("/health")
	group.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":    "ok",
			"service":   svc.name,
			"timestamp": time.Now(),
		})
	})

	detailed := func(timeout time.Duration) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
			defer cancel()

			resp := svc.Check(ctx)
			status := http.StatusOK
			if resp.Status != StatusHealthy {
				status = http.StatusServiceUnavailable
			}
			return c.JSON(status, resp)
		}
	}
	group.GET("/detailed", detailed(5*time.Second))
	group.GET("/ready", detailed(3*time.Second))
}
