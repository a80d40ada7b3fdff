package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentCode is a catalog entry describing the purpose of a transfer
type PaymentCode struct {
	ID          string `json:"id" db:"id"`
	Code        string `json:"code" db:"code"`
	Description string `json:"description,omitempty" db:"description"`
}

// PayerAccount is an account owned by the authenticated user that can be debited
type PayerAccount struct {
	ID            string          `json:"id" db:"id"`
	UserID        string          `json:"user_id" db:"user_id"`
	AccountNumber string          `json:"account_number" db:"account_number"`
	Name          string          `json:"name" db:"name"`
	CurrencyID    string          `json:"currency_id" db:"currency_id"`
	CurrencyCode  string          `json:"currency_code" db:"currency_code"`
	DailyLimit    decimal.Decimal `json:"daily_limit" db:"daily_limit"`
}

// SpendingLimit is the daily limit of the selected payer account
type SpendingLimit struct {
	DailyLimit decimal.Decimal `json:"daily_limit"`
	Currency   string          `json:"currency"`
}

// PaymentInstruction is the payload produced by a successful form submission
type PaymentInstruction struct {
	FromAccountID   string          `json:"from_account_id"`
	FromCurrencyID  string          `json:"from_currency_id"`
	ToAccountNumber string          `json:"to_account_number"`
	ToCurrencyID    string          `json:"to_currency_id"`
	Amount          decimal.Decimal `json:"amount"`
	CodeID          string          `json:"code_id"`
	ReferenceNumber string          `json:"reference_number,omitempty"`
	Purpose         string          `json:"purpose"`
}

// PaymentStatus represents the persisted state of a payment
type PaymentStatus string

const (
	PaymentStatusConfirmed PaymentStatus = "confirmed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Payment is a confirmed transfer order
type Payment struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	SessionID       uuid.UUID       `json:"session_id" db:"session_id"`
	UserID          string          `json:"user_id" db:"user_id"`
	FromAccountID   string          `json:"from_account_id" db:"from_account_id"`
	FromCurrencyID  string          `json:"from_currency_id" db:"from_currency_id"`
	ToAccountNumber string          `json:"to_account_number" db:"to_account_number"`
	ToCurrencyID    string          `json:"to_currency_id" db:"to_currency_id"`
	Amount          decimal.Decimal `json:"amount" db:"amount"`
	CodeID          string          `json:"code_id" db:"code_id"`
	ReferenceNumber string          `json:"reference_number" db:"reference_number"`
	Purpose         string          `json:"purpose" db:"purpose"`
	Status          PaymentStatus   `json:"status" db:"status"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
}

// PaymentConfirmedEvent is published once a payment passed OTP confirmation
type PaymentConfirmedEvent struct {
	PaymentID       string          `json:"payment_id"`
	UserID          string          `json:"user_id"`
	FromAccountID   string          `json:"from_account_id"`
	ToAccountNumber string          `json:"to_account_number"`
	Amount          decimal.Decimal `json:"amount"`
	CurrencyID      string          `json:"currency_id"`
	CodeID          string          `json:"code_id"`
	ConfirmedAt     time.Time       `json:"confirmed_at"`
}

// RecipientAccountResponse is the core-banking answer to an account lookup
type RecipientAccountResponse struct {
	AccountNumber string `json:"accountNumber"`
	Currency      *struct {
		ID   string `json:"id"`
		Code string `json:"code"`
	} `json:"currency"`
}

// SelectPayerRequest selects the account to debit
type SelectPayerRequest struct {
	AccountID string `json:"account_id" validate:"required"`
}

// UpdateFieldRequest edits a single form field
type UpdateFieldRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}
