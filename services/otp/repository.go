package otp

import (
	"context"
	"errors"
	"time"

	"github.com/piresc/transferflow/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/transferflow/services/otp OTPRepo

// ErrOTPNotFound is returned for unknown, expired or revoked challenges
var ErrOTPNotFound = errors.New("otp not found")

// OTPRepo stores hashed one-time passwords
type OTPRepo interface {
	Save(ctx context.Context, otp *models.OTP, ttl time.Duration) error
	Get(ctx context.Context, challengeID string) (*models.OTP, error)
	IncrementAttempts(ctx context.Context, challengeID string) (int, error)
	Delete(ctx context.Context, challengeID string) error
}
