package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/piresc/transferflow/internal/pkg/models"
	"github.com/piresc/transferflow/services/payment"
)

// ListPaymentCodes returns the payment code catalog
func (r *PaymentRepo) ListPaymentCodes(ctx context.Context) ([]models.PaymentCode, error) {
	query := `
		SELECT id, code, description
		FROM payment_codes
		WHERE is_active = TRUE
		ORDER BY code
	`

	var codes []models.PaymentCode
	if err := r.db.SelectContext(ctx, &codes, query); err != nil {
		return nil, fmt.Errorf("failed to list payment codes: %w", err)
	}
	return codes, nil
}

// ListPayerAccounts returns the accounts userID may debit
func (r *PaymentRepo) ListPayerAccounts(ctx context.Context, userID string) ([]models.PayerAccount, error) {
	query := `
		SELECT id, user_id, account_number, name, currency_id, currency_code, daily_limit
		FROM payer_accounts
		WHERE user_id = $1
		ORDER BY name
	`

	var accounts []models.PayerAccount
	if err := r.db.SelectContext(ctx, &accounts, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list payer accounts: %w", err)
	}
	return accounts, nil
}

// GetPayerAccount returns one account of userID
func (r *PaymentRepo) GetPayerAccount(ctx context.Context, userID, accountID string) (*models.PayerAccount, error) {
	query := `
		SELECT id, user_id, account_number, name, currency_id, currency_code, daily_limit
		FROM payer_accounts
		WHERE user_id = $1 AND id = $2
	`

	var account models.PayerAccount
	err := r.db.GetContext(ctx, &account, query, userID, accountID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, payment.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payer account: %w", err)
	}
	return &account, nil
}

// CreatePayment stores a confirmed payment. ID and CreatedAt are assigned when empty; storing an
// ID that already exists is a no-op.
func (r *PaymentRepo) CreatePayment(ctx context.Context, p *models.Payment) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO payments (id, session_id, user_id, from_account_id, from_currency_id,
			to_account_number, to_currency_id, amount, code_id, reference_number, purpose,
			status, created_at
		) VALUES (:id, :session_id, :user_id, :from_account_id, :from_currency_id,
			:to_account_number, :to_currency_id, :amount, :code_id, :reference_number, :purpose,
			:status, :created_at)
		ON CONFLICT (id) DO NOTHING
	`
	if _, err := r.db.NamedExecContext(ctx, query, p); err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	return nil
}
