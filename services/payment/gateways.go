package payment

import (
	"context"

	"github.com/piresc/transferflow/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/transferflow/services/payment PaymentGW

// PaymentGW defines the payment gateways interface
type PaymentGW interface {
	// HTTP Gateway
	FetchRecipientCurrencyID(ctx context.Context, accountNumber string) (string, error)

	// NATS Gateway
	PublishPaymentConfirmed(ctx context.Context, event *models.PaymentConfirmedEvent) error
}
