package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/piresc/transferflow/internal/pkg/models"
	"github.com/piresc/transferflow/internal/pkg/retry"
	"github.com/piresc/transferflow/services/payment"
	"github.com/piresc/transferflow/services/payment/flow"
)

// PaymentUC implements payment.PaymentUC on top of in-memory flows
type PaymentUC struct {
	paymentRepo payment.PaymentRepo
	paymentGW   payment.PaymentGW
	otpService  flow.OTPService
	sessions    *SessionStore
	retrier     *retry.Retrier
	cfg         *models.Config
}

// NewPaymentUC creates a new payment usecase instance
func NewPaymentUC(
	paymentRepo payment.PaymentRepo,
	paymentGW payment.PaymentGW,
	otpService flow.OTPService,
	sessions *SessionStore,
	cfg *models.Config,
) *PaymentUC {
	return &PaymentUC{
		paymentRepo: paymentRepo,
		paymentGW:   paymentGW,
		otpService:  otpService,
		sessions:    sessions,
		retrier:     retry.NewWithDefaults(),
		cfg:         cfg,
	}
}

// codeFetcher serves the payment code catalog from the repository
type codeFetcher struct {
	repo payment.PaymentRepo
}

func (c codeFetcher) FetchPaymentCodes(ctx context.Context) ([]models.PaymentCode, error) {
	return c.repo.ListPaymentCodes(ctx)
}

func (u *PaymentUC) newFlow(sessionID uuid.UUID, user models.AuthUser) *flow.Flow {
	return flow.New(flow.Dependencies{
		Currency: u.paymentGW,
		Codes:    codeFetcher{repo: u.paymentRepo},
		OTP:      u.otpService,
		Confirm:  confirmer{uc: u, sessionID: sessionID, userID: user.ID},
	}, user.Contact(), flow.Options{
		DefaultCode:    u.cfg.Payment.DefaultCode,
		AsyncTimeout:   u.cfg.Payment.AsyncTimeout,
		OTPLength:      u.cfg.OTP.Length,
		OTPMaxAttempts: u.cfg.OTP.MaxAttempts,
	})
}
