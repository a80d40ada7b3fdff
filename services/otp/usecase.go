package otp

import (
	"context"

	"github.com/piresc/transferflow/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/transferflow/services/otp OTPUC

// OTPUC issues and verifies one-time passwords confirming payments
type OTPUC interface {
	Issue(ctx context.Context, contact models.Contact) (models.ChallengeTicket, error)
	Verify(ctx context.Context, challengeID, code string) (bool, error)
	Revoke(ctx context.Context, challengeID string) error
}
