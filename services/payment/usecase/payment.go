package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/piresc/transferflow/internal/pkg/logger"
	"github.com/piresc/transferflow/internal/pkg/models"
)

// StartSession opens a payment attempt and starts loading the payment code catalog
func (u *PaymentUC) StartSession(ctx context.Context, user models.AuthUser) (*models.SessionView, error) {
	id := uuid.New()
	f := u.newFlow(id, user)
	sess := u.sessions.Add(id, user.ID, f)
	f.Start()

	logger.InfoCtx(ctx, "Payment session started",
		logger.Stringer("session_id", sess.ID),
		logger.String("user_id", user.ID))
	return sess.View(), nil
}

// GetSession returns the current view of a session
func (u *PaymentUC) GetSession(ctx context.Context, user models.AuthUser, sessionID uuid.UUID) (*models.SessionView, error) {
	sess, err := u.sessions.Get(sessionID, user.ID)
	if err != nil {
		return nil, err
	}
	return sess.View(), nil
}

// DiscardSession abandons an attempt, revoking a pending OTP challenge
func (u *PaymentUC) DiscardSession(ctx context.Context, user models.AuthUser, sessionID uuid.UUID) error {
	sess, err := u.sessions.Remove(sessionID, user.ID)
	if err != nil {
		return err
	}
	if sess.Flow.State() == models.FlowStateOtpPending {
		if err := sess.Flow.Cancel(ctx); err != nil {
			logger.WarnCtx(ctx, "Failed to cancel discarded payment session", logger.Err(err))
		}
	}
	sess.Flow.Close()

	logger.InfoCtx(ctx, "Payment session discarded", logger.Stringer("session_id", sessionID))
	return nil
}

// ListPayerAccounts returns the accounts the user may debit
func (u *PaymentUC) ListPayerAccounts(ctx context.Context, user models.AuthUser) ([]models.PayerAccount, error) {
	return u.paymentRepo.ListPayerAccounts(ctx, user.ID)
}

// SelectPayerAccount sets the account to debit together with its daily limit
func (u *PaymentUC) SelectPayerAccount(ctx context.Context, user models.AuthUser, sessionID uuid.UUID, accountID string) (*models.SessionView, error) {
	sess, err := u.sessions.Get(sessionID, user.ID)
	if err != nil {
		return nil, err
	}
	account, err := u.paymentRepo.GetPayerAccount(ctx, user.ID, accountID)
	if err != nil {
		return nil, err
	}
	err = sess.Flow.SelectPayerAccount(*account)
	return sess.View(), err
}

// UpdateField edits one form field
func (u *PaymentUC) UpdateField(ctx context.Context, user models.AuthUser, sessionID uuid.UUID, field, value string) (*models.SessionView, error) {
	sess, err := u.sessions.Get(sessionID, user.ID)
	if err != nil {
		return nil, err
	}
	err = sess.Flow.SetField(field, value)
	return sess.View(), err
}

// ReloadCodes retries loading the payment code catalog after a failure
func (u *PaymentUC) ReloadCodes(ctx context.Context, user models.AuthUser, sessionID uuid.UUID) (*models.SessionView, error) {
	sess, err := u.sessions.Get(sessionID, user.ID)
	if err != nil {
		return nil, err
	}
	sess.Flow.ReloadCodes()
	return sess.View(), nil
}

// Submit validates the form and moves the attempt to OTP confirmation
func (u *PaymentUC) Submit(ctx context.Context, user models.AuthUser, sessionID uuid.UUID) (*models.SessionView, error) {
	sess, err := u.sessions.Get(sessionID, user.ID)
	if err != nil {
		return nil, err
	}
	if _, err := sess.Flow.Submit(ctx); err != nil {
		logger.InfoCtx(ctx, "Payment submission blocked",
			logger.Stringer("session_id", sessionID),
			logger.Err(err))
		return sess.View(), err
	}
	return sess.View(), nil
}

// EnterOTP passes typed digits to the OTP step. The flow confirms the payment through confirmer
// before it reports success; after a failed confirmation another call retries it.
func (u *PaymentUC) EnterOTP(ctx context.Context, user models.AuthUser, sessionID uuid.UUID, value string) (*models.SessionView, error) {
	sess, err := u.sessions.Get(sessionID, user.ID)
	if err != nil {
		return nil, err
	}
	err = sess.Flow.EnterOTP(ctx, value)
	return sess.View(), err
}

// ResendOTP issues a fresh code, invalidating the previous one
func (u *PaymentUC) ResendOTP(ctx context.Context, user models.AuthUser, sessionID uuid.UUID) (*models.SessionView, error) {
	sess, err := u.sessions.Get(sessionID, user.ID)
	if err != nil {
		return nil, err
	}
	err = sess.Flow.ResendOTP(ctx)
	return sess.View(), err
}

// Cancel leaves OTP confirmation back to the form
func (u *PaymentUC) Cancel(ctx context.Context, user models.AuthUser, sessionID uuid.UUID) (*models.SessionView, error) {
	sess, err := u.sessions.Get(sessionID, user.ID)
	if err != nil {
		return nil, err
	}
	err = sess.Flow.Cancel(ctx)
	return sess.View(), err
}

// confirmer stores and announces the payment of one session. The flow's key is the payment ID,
// so a retried confirmation hits the same row.
type confirmer struct {
	uc        *PaymentUC
	sessionID uuid.UUID
	userID    string
}

// ConfirmPayment persists the verified payment and announces it. Publishing is best effort.
func (c confirmer) ConfirmPayment(ctx context.Context, key string, instr models.PaymentInstruction) (string, error) {
	id, err := uuid.Parse(key)
	if err != nil {
		return "", fmt.Errorf("invalid confirmation key %q: %w", key, err)
	}

	p := &models.Payment{
		ID:              id,
		SessionID:       c.sessionID,
		UserID:          c.userID,
		FromAccountID:   instr.FromAccountID,
		FromCurrencyID:  instr.FromCurrencyID,
		ToAccountNumber: instr.ToAccountNumber,
		ToCurrencyID:    instr.ToCurrencyID,
		Amount:          instr.Amount,
		CodeID:          instr.CodeID,
		ReferenceNumber: instr.ReferenceNumber,
		Purpose:         instr.Purpose,
		Status:          models.PaymentStatusConfirmed,
		CreatedAt:       time.Now(),
	}
	err = c.uc.retrier.Execute(ctx, func(ctx context.Context) error {
		return c.uc.paymentRepo.CreatePayment(ctx, p)
	})
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to store confirmed payment",
			logger.Stringer("session_id", c.sessionID),
			logger.Stringer("payment_id", p.ID),
			logger.Err(err))
		return "", fmt.Errorf("failed to store payment: %w", err)
	}

	event := &models.PaymentConfirmedEvent{
		PaymentID:       p.ID.String(),
		UserID:          p.UserID,
		FromAccountID:   p.FromAccountID,
		ToAccountNumber: p.ToAccountNumber,
		Amount:          p.Amount,
		CurrencyID:      p.FromCurrencyID,
		CodeID:          p.CodeID,
		ConfirmedAt:     p.CreatedAt,
	}
	if err := c.uc.paymentGW.PublishPaymentConfirmed(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish payment confirmed event",
			logger.String("payment_id", event.PaymentID),
			logger.Err(err))
	}

	logger.InfoCtx(ctx, "Payment confirmed",
		logger.String("payment_id", event.PaymentID),
		logger.Amount("amount", p.Amount),
		logger.Stringer("session_id", c.sessionID))
	return event.PaymentID, nil
}
