package payment

import (
	"context"

	"github.com/piresc/transferflow/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/transferflow/services/payment PaymentRepo

// PaymentRepo defines the payment repository interface
type PaymentRepo interface {
	// Reference data
	ListPaymentCodes(ctx context.Context) ([]models.PaymentCode, error)
	ListPayerAccounts(ctx context.Context, userID string) ([]models.PayerAccount, error)
	GetPayerAccount(ctx context.Context, userID, accountID string) (*models.PayerAccount, error)

	// Payments
	CreatePayment(ctx context.Context, payment *models.Payment) error
}
