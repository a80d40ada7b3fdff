package flow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrCurrencyNotFound is returned when the recipient account has no resolvable currency
var ErrCurrencyNotFound = errors.New("recipient currency not found")

// CurrencyFetcher looks up the currency of a recipient account
type CurrencyFetcher interface {
	FetchRecipientCurrencyID(ctx context.Context, accountNumber string) (string, error)
}

// Resolution is the outcome of one recipient currency lookup
type Resolution struct {
	Token         uint64
	AccountNumber string
	CurrencyID    string
	Err           error
}

// Resolver serializes recipient currency lookups with last-request-wins semantics.
// Every lookup gets a token and only the result carrying the latest token is accepted.
// Resolver is not safe for concurrent use; the owning flow guards Begin, Invalidate and Accept.
type Resolver struct {
	fetcher  CurrencyFetcher
	timeout  time.Duration
	latest   uint64
	inFlight bool
}

// NewResolver creates a resolver whose lookups give up after timeout
func NewResolver(fetcher CurrencyFetcher, timeout time.Duration) *Resolver {
	return &Resolver{fetcher: fetcher, timeout: timeout}
}

// Begin registers a new lookup and returns its token
func (r *Resolver) Begin() uint64 {
	r.latest++
	r.inFlight = true
	return r.latest
}

// Invalidate makes every outstanding lookup stale
func (r *Resolver) Invalidate() {
	r.latest++
	r.inFlight = false
}

// Loading reports whether the latest lookup has not settled yet
func (r *Resolver) Loading() bool {
	return r.inFlight
}

// Accept reports whether res answers the latest lookup; if so the resolver stops loading
func (r *Resolver) Accept(res Resolution) bool {
	if res.Token != r.latest {
		return false
	}
	r.inFlight = false
	return true
}

// Resolve performs the lookup for token. It never blocks longer than the resolver timeout and
// turns every failure, including a missing currency, into ErrCurrencyNotFound.
func (r *Resolver) Resolve(ctx context.Context, token uint64, accountNumber string) Resolution {
	res := Resolution{Token: token, AccountNumber: accountNumber}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	currencyID, err := r.fetcher.FetchRecipientCurrencyID(ctx, strings.TrimSpace(accountNumber))
	switch {
	case err != nil:
		res.Err = fmt.Errorf("%w: %v", ErrCurrencyNotFound, err)
	case currencyID == "":
		res.Err = ErrCurrencyNotFound
	default:
		res.CurrencyID = currencyID
	}
	return res
}
