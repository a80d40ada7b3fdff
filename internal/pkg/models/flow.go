package models

import (
	"time"

	"github.com/google/uuid"
)

// FlowState is the step a payment attempt is in
type FlowState string

const (
	FlowStateForm       FlowState = "form"
	FlowStateOtpPending FlowState = "otp"
	FlowStateSuccess    FlowState = "success"
)

// ErrorRecord is the structured error shown next to a field or step
type ErrorRecord struct {
	ID          int64  `json:"id"`
	Kind        string `json:"kind"`
	Field       string `json:"field,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// FieldError is a schema violation of a single form field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ChallengeView is the presentation state of the OTP step
type ChallengeView struct {
	Status      string    `json:"status"`
	Destination string    `json:"destination,omitempty"`
	Channel     string    `json:"channel,omitempty"`
	Value       string    `json:"value"`
	Attempts    int       `json:"attempts"`
	IssuedAt    time.Time `json:"issued_at,omitempty"`
	ExpiresAt   time.Time `json:"expires_at,omitempty"`
}

// FormView mirrors the editable form fields
type FormView struct {
	PayerAccountID    string  `json:"payer_account_id"`
	PayerCurrency     string  `json:"payer_currency"`
	RecipientAccount  string  `json:"recipient_account"`
	RecipientCurrency *string `json:"recipient_currency_id"`
	Amount            *string `json:"amount"`
	AmountDisplay     string  `json:"amount_display,omitempty"`
	ReferenceNumber   string  `json:"reference_number"`
	Purpose           string  `json:"purpose"`
	PaymentCode       string  `json:"payment_code"`
}

// LimitView describes the daily limit of the selected payer account
type LimitView struct {
	DailyLimit string `json:"daily_limit"`
	Remaining  string `json:"remaining"`
	Currency   string `json:"currency"`
	Exceeded   bool   `json:"exceeded"`
	Message    string `json:"message,omitempty"`
}

// FlowView is everything the presentation layer needs to render a payment attempt
type FlowView struct {
	State           FlowState      `json:"state"`
	Form            FormView       `json:"form"`
	Limit           *LimitView     `json:"limit,omitempty"`
	FieldErrors     []FieldError   `json:"field_errors,omitempty"`
	Errors          []ErrorRecord  `json:"errors,omitempty"`
	LoadingCurrency bool           `json:"loading_currency"`
	LimitExceeded   bool           `json:"limit_exceeded"`
	CatalogStatus   string         `json:"catalog_status"`
	SubmitEnabled   bool           `json:"submit_enabled"`
	Challenge       *ChallengeView `json:"challenge,omitempty"`
	ConfirmPending  bool           `json:"confirm_pending,omitempty"`
}

// SessionView is a flow view bound to its session
type SessionView struct {
	SessionID uuid.UUID `json:"session_id"`
	PaymentID string    `json:"payment_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	FlowView
}
