package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/transferflow/internal/pkg/circuitbreaker"
	"github.com/piresc/transferflow/internal/pkg/retry"
)

func testConfig(url string) Config {
	return Config{
		BaseURL: url + "/",
		Timeout: time.Second,
		Retry:   retry.Config{MaxRetries: 2, BaseDelay: time.Millisecond},
		Breaker: circuitbreaker.Config{MaxRequests: 1, Timeout: time.Minute, FailureThreshold: 2},
	}
}

func TestClient_GetJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/160-1", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"accountNumber":"160-1"}`))
	}))
	defer server.Close()

	var out struct {
		AccountNumber string `json:"accountNumber"`
	}
	err := NewClient(testConfig(server.URL)).GetJSON(context.Background(), "/accounts/160-1", &out)

	require.NoError(t, err)
	assert.Equal(t, "160-1", out.AccountNumber)
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	err := NewClient(testConfig(server.URL)).GetJSON(context.Background(), "/x", &struct{}{})

	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_ClientErrorNotRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "no such account", http.StatusNotFound)
	}))
	defer server.Close()
	client := NewClient(testConfig(server.URL))

	for i := 0; i < 3; i++ {
		err := client.GetJSON(context.Background(), "/x", nil)
		var se *StatusError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, http.StatusNotFound, se.StatusCode)
		assert.Equal(t, "no such account", se.Body)
	}

	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	assert.Equal(t, "closed", client.BreakerStats().State)
}

func TestClient_BreakerOpens(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()
	client := NewClient(testConfig(server.URL))

	require.Error(t, client.GetJSON(context.Background(), "/x", nil))
	require.Error(t, client.GetJSON(context.Background(), "/x", nil))
	err := client.GetJSON(context.Background(), "/x", nil)

	assert.ErrorIs(t, err, circuitbreaker.ErrOpen)
	assert.Equal(t, int32(6), atomic.LoadInt32(&calls))
}

func TestClient_DecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	var out map[string]string
	err := NewClient(testConfig(server.URL)).GetJSON(context.Background(), "/x", &out)

	assert.ErrorContains(t, err, "failed to decode response")
}
