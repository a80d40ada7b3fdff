package flow

import (
	"errors"
	"fmt"
	"time"

	"github.com/piresc/transferflow/internal/pkg/models"
)

// Kind classifies flow errors by how the user recovers from them
type Kind string

const (
	// KindValidation is a field-scoped input problem the user corrects
	KindValidation Kind = "validation"
	// KindResolution is a failed currency or payment-code lookup; submission stays blocked
	KindResolution Kind = "resolution"
	// KindLimitExceeded blocks submission but not input
	KindLimitExceeded Kind = "limit_exceeded"
	// KindChallenge is an OTP issuance or verification failure, retryable via resend
	KindChallenge Kind = "challenge"
	// KindFatal is an illegal state transition
	KindFatal Kind = "fatal"
)

// Reason identifies the precise cause of a flow error
type Reason string

const (
	ReasonInvalidForm        Reason = "invalid_form"
	ReasonInvalidInput       Reason = "invalid_input"
	ReasonUnknownField       Reason = "unknown_field"
	ReasonLimitExceeded      Reason = "limit_exceeded"
	ReasonCatalogNotReady    Reason = "catalog_not_ready"
	ReasonCatalogUnavailable Reason = "catalog_unavailable"
	ReasonCodeNotFound       Reason = "code_not_found"
	ReasonPayerMissing       Reason = "payer_missing"
	ReasonCurrencyLoading    Reason = "currency_loading"
	ReasonCurrencyUnresolved Reason = "currency_unresolved"
	ReasonCurrencyNotFound   Reason = "currency_not_found"
	ReasonIssueFailed        Reason = "otp_issue_failed"
	ReasonVerifyFailed       Reason = "otp_verify_failed"
	ReasonCodeRejected       Reason = "otp_code_rejected"
	ReasonAttemptsExhausted  Reason = "otp_attempts_exhausted"
	ReasonNoChallenge        Reason = "otp_no_challenge"
	ReasonConfirmFailed      Reason = "payment_confirm_failed"
	ReasonIllegalTransition  Reason = "illegal_transition"
)

// Error is the single error type produced by the payment flow
type Error struct {
	ID          int64
	Kind        Kind
	Reason      Reason
	Field       string
	Title       string
	Description string
	FieldErrors []models.FieldError
	Err         error
}

func newError(kind Kind, reason Reason, field, title, description string) *Error {
	return &Error{
		ID:          time.Now().UnixNano(),
		Kind:        kind,
		Reason:      reason,
		Field:       field,
		Title:       title,
		Description: description,
	}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Reason, e.Description)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Record converts the error into the structure rendered next to its field or step
func (e *Error) Record() models.ErrorRecord {
	return models.ErrorRecord{
		ID:          e.ID,
		Kind:        string(e.Kind),
		Field:       e.Field,
		Title:       e.Title,
		Description: e.Description,
	}
}

func (e *Error) wrap(err error) *Error {
	e.Err = err
	return e
}

// AsError extracts a flow error from err
func AsError(err error) (*Error, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// IsKind reports whether err is a flow error of the given kind
func IsKind(err error, kind Kind) bool {
	fe, ok := AsError(err)
	return ok && fe.Kind == kind
}

// ReasonOf returns the reason of a flow error, or "" for any other error
func ReasonOf(err error) Reason {
	if fe, ok := AsError(err); ok {
		return fe.Reason
	}
	return ""
}

// errorSet keeps at most one error per scope, in the order scopes were first reported
type errorSet struct {
	scopes []string
	byKey  map[string]*Error
}

func (s *errorSet) set(scope string, err *Error) {
	if s.byKey == nil {
		s.byKey = make(map[string]*Error)
	}
	if _, ok := s.byKey[scope]; !ok {
		s.scopes = append(s.scopes, scope)
	}
	s.byKey[scope] = err
}

func (s *errorSet) clear(scope string) {
	if _, ok := s.byKey[scope]; !ok {
		return
	}
	delete(s.byKey, scope)
	for i, sc := range s.scopes {
		if sc == scope {
			s.scopes = append(s.scopes[:i], s.scopes[i+1:]...)
			break
		}
	}
}

func (s *errorSet) get(scope string) *Error {
	return s.byKey[scope]
}

func (s *errorSet) records() []models.ErrorRecord {
	out := make([]models.ErrorRecord, 0, len(s.scopes))
	for _, sc := range s.scopes {
		out = append(out, s.byKey[sc].Record())
	}
	return out
}
