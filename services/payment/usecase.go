package payment

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/piresc/transferflow/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/transferflow/services/payment PaymentUC

var (
	// ErrSessionNotFound is returned for unknown or expired sessions
	ErrSessionNotFound = errors.New("payment session not found")
	// ErrSessionForbidden is returned when a session belongs to another user
	ErrSessionForbidden = errors.New("payment session belongs to another user")
	// ErrAccountNotFound is returned when the payer account is not owned by the user
	ErrAccountNotFound = errors.New("payer account not found")
)

// PaymentUC drives payment attempts of authenticated users. Flow errors are returned together
// with the session view they were recorded on.
type PaymentUC interface {
	// Sessions
	StartSession(ctx context.Context, user models.AuthUser) (*models.SessionView, error)
	GetSession(ctx context.Context, user models.AuthUser, sessionID uuid.UUID) (*models.SessionView, error)
	DiscardSession(ctx context.Context, user models.AuthUser, sessionID uuid.UUID) error

	// Form
	ListPayerAccounts(ctx context.Context, user models.AuthUser) ([]models.PayerAccount, error)
	SelectPayerAccount(ctx context.Context, user models.AuthUser, sessionID uuid.UUID, accountID string) (*models.SessionView, error)
	UpdateField(ctx context.Context, user models.AuthUser, sessionID uuid.UUID, field, value string) (*models.SessionView, error)
	ReloadCodes(ctx context.Context, user models.AuthUser, sessionID uuid.UUID) (*models.SessionView, error)
	Submit(ctx context.Context, user models.AuthUser, sessionID uuid.UUID) (*models.SessionView, error)

	// OTP
	EnterOTP(ctx context.Context, user models.AuthUser, sessionID uuid.UUID, value string) (*models.SessionView, error)
	ResendOTP(ctx context.Context, user models.AuthUser, sessionID uuid.UUID) (*models.SessionView, error)
	Cancel(ctx context.Context, user models.AuthUser, sessionID uuid.UUID) (*models.SessionView, error)
}
