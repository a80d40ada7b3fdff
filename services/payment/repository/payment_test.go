package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/transferflow/internal/pkg/models"
	"github.com/piresc/transferflow/services/payment"
)

func setupPaymentRepoTest(t *testing.T) (*PaymentRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		sqlxDB.Close()
	})
	return NewPaymentRepo(sqlxDB), mock
}

var accountColumns = []string{"id", "user_id", "account_number", "name", "currency_id", "currency_code", "daily_limit"}

func TestListPaymentCodes(t *testing.T) {
	repo, mock := setupPaymentRepoTest(t)
	rows := sqlmock.NewRows([]string{"id", "code", "description"}).
		AddRow("c-221", "221", "Goods and services").
		AddRow("c-289", "289", "Other transactions")
	mock.ExpectQuery("^SELECT (.+) FROM payment_codes").WillReturnRows(rows)

	codes, err := repo.ListPaymentCodes(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.PaymentCode{
		{ID: "c-221", Code: "221", Description: "Goods and services"},
		{ID: "c-289", Code: "289", Description: "Other transactions"},
	}, codes)
}

func TestListPaymentCodes_Error(t *testing.T) {
	repo, mock := setupPaymentRepoTest(t)
	mock.ExpectQuery("^SELECT (.+) FROM payment_codes").WillReturnError(errors.New("connection reset"))

	_, err := repo.ListPaymentCodes(context.Background())

	assert.ErrorContains(t, err, "failed to list payment codes")
}

func TestListPayerAccounts(t *testing.T) {
	repo, mock := setupPaymentRepoTest(t)
	rows := sqlmock.NewRows(accountColumns).
		AddRow("acc-1", "user-1", "265-0000000011234-56", "Current RSD", "cur-rsd", "RSD", "1000.00")
	mock.ExpectQuery("^SELECT (.+) FROM payer_accounts WHERE user_id").
		WithArgs("user-1").
		WillReturnRows(rows)

	accounts, err := repo.ListPayerAccounts(context.Background(), "user-1")

	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "RSD", accounts[0].CurrencyCode)
	assert.True(t, decimal.NewFromInt(1000).Equal(accounts[0].DailyLimit))
}

func TestGetPayerAccount(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "Found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM payer_accounts WHERE user_id = (.+) AND id").
					WithArgs("user-1", "acc-1").
					WillReturnRows(sqlmock.NewRows(accountColumns).
						AddRow("acc-1", "user-1", "265-0000000011234-56", "Current RSD", "cur-rsd", "RSD", "1000.00"))
			},
		},
		{
			name: "Other user's account",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM payer_accounts").
					WithArgs("user-1", "acc-1").
					WillReturnRows(sqlmock.NewRows(accountColumns))
			},
			wantErr: payment.ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := setupPaymentRepoTest(t)
			tt.setup(mock)

			account, err := repo.GetPayerAccount(context.Background(), "user-1", "acc-1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, account)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "acc-1", account.ID)
			assert.Equal(t, "cur-rsd", account.CurrencyID)
		})
	}
}

func TestCreatePayment(t *testing.T) {
	repo, mock := setupPaymentRepoTest(t)
	p := &models.Payment{
		SessionID:       uuid.New(),
		UserID:          "user-1",
		FromAccountID:   "acc-1",
		FromCurrencyID:  "cur-rsd",
		ToAccountNumber: "160-0000000012345-67",
		ToCurrencyID:    "cur-rsd",
		Amount:          decimal.RequireFromString("200.00"),
		CodeID:          "c-289",
		Purpose:         "Utility bill",
		Status:          models.PaymentStatusConfirmed,
	}
	mock.ExpectExec("^INSERT INTO payments").
		WithArgs(sqlmock.AnyArg(), p.SessionID.String(), "user-1", "acc-1", "cur-rsd",
			"160-0000000012345-67", "cur-rsd", sqlmock.AnyArg(), "c-289", "", "Utility bill",
			"confirmed", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreatePayment(context.Background(), p)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.WithinDuration(t, time.Now(), p.CreatedAt, time.Minute)
}

func TestCreatePayment_Error(t *testing.T) {
	repo, mock := setupPaymentRepoTest(t)
	mock.ExpectExec("^INSERT INTO payments").WillReturnError(errors.New("duplicate key"))

	err := repo.CreatePayment(context.Background(), &models.Payment{Status: models.PaymentStatusConfirmed})

	assert.ErrorContains(t, err, "failed to insert payment")
}

func TestCreatePayment_RetryIsIdempotent(t *testing.T) {
	repo, mock := setupPaymentRepoTest(t)
	id := uuid.New()
	p := &models.Payment{ID: id, SessionID: uuid.New(), UserID: "user-1", Status: models.PaymentStatusConfirmed}

	// the first insert commits but the reply is lost; the retry hits the stored row
	mock.ExpectExec(`^INSERT INTO payments (.+) ON CONFLICT \(id\) DO NOTHING`).
		WithArgs(id.String(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("connection reset by peer"))
	mock.ExpectExec(`^INSERT INTO payments (.+) ON CONFLICT \(id\) DO NOTHING`).
		WithArgs(id.String(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.CreatePayment(context.Background(), p)
	require.ErrorContains(t, err, "failed to insert payment")

	err = repo.CreatePayment(context.Background(), p)

	require.NoError(t, err)
	assert.Equal(t, id, p.ID)
}
