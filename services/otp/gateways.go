package otp

import (
	"context"

	"github.com/piresc/transferflow/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/transferflow/services/otp OTPGW

// OTPGW hands codes to the notification sender
type OTPGW interface {
	// NSQ Gateway
	DeliverOTP(ctx context.Context, delivery *models.OTPDelivery) error
}
