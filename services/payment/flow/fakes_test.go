package flow

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/piresc/transferflow/internal/pkg/models"
)

type fakeCurrency struct {
	mu         sync.Mutex
	currencies map[string]string
	gates      map[string]chan struct{}
	calls      []string
}

func newFakeCurrency(currencies map[string]string) *fakeCurrency {
	return &fakeCurrency{currencies: currencies, gates: map[string]chan struct{}{}}
}

// hold makes lookups of account block until the returned func is called
func (f *fakeCurrency) hold(account string) func() {
	gate := make(chan struct{})
	f.mu.Lock()
	f.gates[account] = gate
	f.mu.Unlock()
	var once sync.Once
	return func() { once.Do(func() { close(gate) }) }
}

func (f *fakeCurrency) FetchRecipientCurrencyID(ctx context.Context, account string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, account)
	gate := f.gates[account]
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	id, ok := f.currencies[account]
	if !ok {
		return "", errors.New("account not found")
	}
	return id, nil
}

type fakeCodes struct {
	codes []models.PaymentCode
	err   error
	gate  chan struct{}
	calls int
	mu    sync.Mutex
}

func (f *fakeCodes) FetchPaymentCodes(ctx context.Context) ([]models.PaymentCode, error) {
	f.mu.Lock()
	f.calls++
	gate := f.gate
	err := f.err
	f.mu.Unlock()
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	return f.codes, nil
}

func defaultCodes() *fakeCodes {
	return &fakeCodes{codes: []models.PaymentCode{
		{ID: "code-289", Code: "289", Description: "Transactions by legal entities and individuals"},
		{ID: "code-221", Code: "221", Description: "Utilities"},
	}}
}

// fakeOTP hands out codes from a fixed sequence and keeps only live challenges verifiable
type fakeOTP struct {
	mu        sync.Mutex
	sequence  []string
	next      int
	live      map[string]string
	issued    []models.ChallengeTicket
	verifies  []string
	revoked   []string
	issueErr  error
	verifyErr error
}

func newFakeOTP(codes ...string) *fakeOTP {
	return &fakeOTP{sequence: codes, live: map[string]string{}}
}

func (f *fakeOTP) Issue(ctx context.Context, contact models.Contact) (models.ChallengeTicket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.issueErr != nil {
		return models.ChallengeTicket{}, f.issueErr
	}
	code := f.sequence[f.next%len(f.sequence)]
	f.next++
	id := fmt.Sprintf("challenge-%d", f.next)
	f.live[id] = code
	now := time.Now()
	ticket := models.ChallengeTicket{
		ChallengeID: id,
		Channel:     "email",
		Destination: contact.Email,
		IssuedAt:    now,
		ExpiresAt:   now.Add(5 * time.Minute),
	}
	f.issued = append(f.issued, ticket)
	return ticket, nil
}

func (f *fakeOTP) Verify(ctx context.Context, challengeID, code string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.verifies = append(f.verifies, code)
	if f.verifyErr != nil {
		return false, f.verifyErr
	}
	want, ok := f.live[challengeID]
	if !ok || want != code {
		return false, nil
	}
	delete(f.live, challengeID)
	return true, nil
}

func (f *fakeOTP) Revoke(ctx context.Context, challengeID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revoked = append(f.revoked, challengeID)
	delete(f.live, challengeID)
	return nil
}

func (f *fakeOTP) issueCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.issued)
}

func (f *fakeOTP) verifyCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.verifies)
}

// fakeConfirmer fails while err is set and otherwise returns a reference derived from key
type fakeConfirmer struct {
	mu   sync.Mutex
	err  error
	keys []string
}

func (f *fakeConfirmer) ConfirmPayment(ctx context.Context, key string, instruction models.PaymentInstruction) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keys = append(f.keys, key)
	if f.err != nil {
		return "", f.err
	}
	return "payment-" + key, nil
}

func (f *fakeConfirmer) fail(err error) {
	f.mu.Lock()
	f.err = err
	f.mu.Unlock()
}

func (f *fakeConfirmer) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.keys...)
}

// forget makes later lookups of account fail until learn is called
func (f *fakeCurrency) forget(account string) {
	f.mu.Lock()
	delete(f.currencies, account)
	f.mu.Unlock()
}

func (f *fakeCurrency) learn(account, currencyID string) {
	f.mu.Lock()
	f.currencies[account] = currencyID
	f.mu.Unlock()
}

func (f *fakeCurrency) lookups(account string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, a := range f.calls {
		if a == account {
			n++
		}
	}
	return n
}

var testContact = models.Contact{Email: "ana.petrovic@example.com"}

func rsdAccount(limit string) models.PayerAccount {
	return models.PayerAccount{
		ID:            "acc-1",
		UserID:        "user-1",
		AccountNumber: "265-0000000012345-67",
		Name:          "Current account",
		CurrencyID:    "cur-rsd",
		CurrencyCode:  "RSD",
		DailyLimit:    decimal.RequireFromString(limit),
	}
}
