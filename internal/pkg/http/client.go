package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/piresc/transferflow/internal/pkg/circuitbreaker"
	nrpkg "github.com/piresc/transferflow/internal/pkg/newrelic"
	"github.com/piresc/transferflow/internal/pkg/retry"
)

// Config configures a Client
type Config struct {
	BaseURL string
	Timeout time.Duration
	Retry   retry.Config
	Breaker circuitbreaker.Config
}

// StatusError is a non-2xx upstream response
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// Client calls one upstream JSON API with retries and a circuit breaker. Server errors and
// transport failures are retried; client errors are returned at once.
type Client struct {
	baseURL    string
	httpClient *http.Client
	retrier    *retry.Retrier
	breaker    *circuitbreaker.Breaker
}

// NewClient creates a client for cfg.BaseURL
func NewClient(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.Breaker.FailureThreshold == 0 {
		cfg.Breaker = circuitbreaker.DefaultConfig()
	}
	cfg.Breaker.IsFailure = func(err error) bool {
		if err == nil {
			return false
		}
		var se *StatusError
		if errors.As(err, &se) {
			return se.StatusCode >= 500
		}
		return true
	}

	host := cfg.BaseURL
	if u, err := url.Parse(cfg.BaseURL); err == nil && u.Host != "" {
		host = u.Host
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		retrier:    retry.New(cfg.Retry),
		breaker:    circuitbreaker.New(host, cfg.Breaker),
	}
}

// GetJSON performs GET baseURL+path and decodes the response body into out
func (c *Client) GetJSON(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, out)
}

func (c *Client) do(ctx context.Context, method, path string, out interface{}) error {
	return c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.retrier.Execute(ctx, func(ctx context.Context) error {
			req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
			if err != nil {
				return retry.Permanent(fmt.Errorf("failed to build request: %w", err))
			}
			req.Header.Set("Accept", "application/json")

			resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
				return c.httpClient.Do(req)
			})
			if err != nil {
				return fmt.Errorf("request failed: %w", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
				se := &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
				if resp.StatusCode < 500 {
					return retry.Permanent(se)
				}
				return se
			}

			if out == nil {
				return nil
			}
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				return retry.Permanent(fmt.Errorf("failed to decode response: %w", err))
			}
			return nil
		})
	})
}

// BreakerStats exposes the circuit breaker counters for health reporting
func (c *Client) BreakerStats() circuitbreaker.Stats {
	return c.breaker.Stats()
}
