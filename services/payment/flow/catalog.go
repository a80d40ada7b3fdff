package flow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/piresc/transferflow/internal/pkg/models"
)

// DefaultPaymentCode is matched when the user leaves the payment code blank
const DefaultPaymentCode = "289"

var (
	// ErrCatalogNotReady is returned by Match while codes are still loading or failed to load
	ErrCatalogNotReady = errors.New("payment code catalog not loaded")
	// ErrCodeNotFound is returned by Match for a code missing from the catalog
	ErrCodeNotFound = errors.New("payment code not found")
)

// CodeFetcher loads the payment code catalog
type CodeFetcher interface {
	FetchPaymentCodes(ctx context.Context) ([]models.PaymentCode, error)
}

// CatalogStatus is the loading state of the catalog
type CatalogStatus string

const (
	CatalogIdle    CatalogStatus = "idle"
	CatalogLoading CatalogStatus = "loading"
	CatalogLoaded  CatalogStatus = "loaded"
	CatalogFailed  CatalogStatus = "failed"
)

// Catalog holds the payment codes of one flow. It is safe for concurrent use.
type Catalog struct {
	fetcher     CodeFetcher
	timeout     time.Duration
	defaultCode string

	mu     sync.RWMutex
	status CatalogStatus
	codes  map[string]models.PaymentCode
	err    *Error
}

// NewCatalog creates an empty catalog
func NewCatalog(fetcher CodeFetcher, timeout time.Duration, defaultCode string) *Catalog {
	if defaultCode == "" {
		defaultCode = DefaultPaymentCode
	}
	return &Catalog{
		fetcher:     fetcher,
		timeout:     timeout,
		defaultCode: defaultCode,
		status:      CatalogIdle,
	}
}

// Load fetches the codes once. Calling Load while loading or after success is a no-op.
func (c *Catalog) Load(ctx context.Context) error {
	c.mu.Lock()
	if c.status == CatalogLoading || c.status == CatalogLoaded {
		c.mu.Unlock()
		return nil
	}
	c.status = CatalogLoading
	c.err = nil
	c.mu.Unlock()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	codes, err := c.fetcher.FetchPaymentCodes(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.status = CatalogFailed
		c.err = newError(KindResolution, ReasonCatalogUnavailable, FieldPaymentCode,
			"Failed to load payment codes", err.Error()).wrap(err)
		return fmt.Errorf("failed to load payment codes: %w", err)
	}

	c.codes = make(map[string]models.PaymentCode, len(codes))
	for _, pc := range codes {
		c.codes[pc.Code] = pc
	}
	c.status = CatalogLoaded
	return nil
}

// Reload retries a failed load. It does nothing unless the last load failed.
func (c *Catalog) Reload(ctx context.Context) error {
	if c.Status() != CatalogFailed {
		return nil
	}
	return c.Load(ctx)
}

// Match looks a code up by its text. A blank code matches the default code.
func (c *Catalog) Match(code string) (models.PaymentCode, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		code = c.defaultCode
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.status != CatalogLoaded {
		return models.PaymentCode{}, ErrCatalogNotReady
	}
	pc, ok := c.codes[code]
	if !ok {
		return models.PaymentCode{}, fmt.Errorf("%w: %s", ErrCodeNotFound, code)
	}
	return pc, nil
}

// Status returns the loading state
func (c *Catalog) Status() CatalogStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

// Failure returns the load error, if the last load failed
func (c *Catalog) Failure() *Error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.err
}

// Len returns the number of loaded codes
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.codes)
}
