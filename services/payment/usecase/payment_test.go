package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/transferflow/internal/pkg/models"
	"github.com/piresc/transferflow/internal/pkg/retry"
	otpmocks "github.com/piresc/transferflow/services/otp/mocks"
	"github.com/piresc/transferflow/services/payment"
	"github.com/piresc/transferflow/services/payment/flow"
	"github.com/piresc/transferflow/services/payment/mocks"
)

const recipient = "160-0000000012345-67"

var (
	testUser  = models.AuthUser{ID: "user-1", Email: "ana.petrovic@example.com"}
	otherUser = models.AuthUser{ID: "user-2", Email: "marko@example.com"}

	testAccount = &models.PayerAccount{
		ID:           "acc-1",
		UserID:       "user-1",
		Name:         "Current RSD",
		CurrencyID:   "cur-rsd",
		CurrencyCode: "RSD",
		DailyLimit:   decimal.NewFromInt(1000),
	}
	testCodes = []models.PaymentCode{
		{ID: "c-221", Code: "221", Description: "Goods and services"},
		{ID: "c-289", Code: "289", Description: "Other transactions"},
	}
	testTicket = models.ChallengeTicket{ChallengeID: "challenge-1", Channel: "email", Destination: "an**********@example.com"}
)

type testEnv struct {
	uc   *PaymentUC
	repo *mocks.MockPaymentRepo
	gw   *mocks.MockPaymentGW
	otp  *otpmocks.MockOTPUC
}

func setupPaymentUC(t *testing.T) *testEnv {
	ctrl := gomock.NewController(t)
	env := &testEnv{
		repo: mocks.NewMockPaymentRepo(ctrl),
		gw:   mocks.NewMockPaymentGW(ctrl),
		otp:  otpmocks.NewMockOTPUC(ctrl),
	}
	cfg := &models.Config{
		Payment: models.PaymentConfig{DefaultCode: "289", AsyncTimeout: time.Second, SessionTTL: time.Minute},
		OTP:     models.OTPConfig{Length: 6, MaxAttempts: 3},
	}
	sessions := NewSessionStore(cfg.Payment.SessionTTL)
	t.Cleanup(sessions.closeAll)
	env.uc = NewPaymentUC(env.repo, env.gw, env.otp, sessions, cfg)
	env.uc.retrier = retry.New(retry.Config{MaxRetries: 1, BaseDelay: time.Millisecond})
	return env
}

func (env *testEnv) settle(t *testing.T, id uuid.UUID) {
	t.Helper()
	sess, err := env.uc.sessions.Get(id, testUser.ID)
	require.NoError(t, err)
	sess.Flow.Settle()
}

// start opens a session with a loaded catalog
func (env *testEnv) start(t *testing.T) uuid.UUID {
	t.Helper()
	env.repo.EXPECT().ListPaymentCodes(gomock.Any()).Return(testCodes, nil)
	view, err := env.uc.StartSession(context.Background(), testUser)
	require.NoError(t, err)
	env.settle(t, view.SessionID)
	return view.SessionID
}

// fill enters a complete valid form
func (env *testEnv) fill(t *testing.T, id uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	env.repo.EXPECT().GetPayerAccount(gomock.Any(), "user-1", "acc-1").Return(testAccount, nil)
	env.gw.EXPECT().FetchRecipientCurrencyID(gomock.Any(), recipient).Return("cur-rsd", nil)

	_, err := env.uc.SelectPayerAccount(ctx, testUser, id, "acc-1")
	require.NoError(t, err)
	_, err = env.uc.UpdateField(ctx, testUser, id, flow.FieldRecipientAccount, recipient)
	require.NoError(t, err)
	_, err = env.uc.UpdateField(ctx, testUser, id, flow.FieldAmount, "200,00")
	require.NoError(t, err)
	_, err = env.uc.UpdateField(ctx, testUser, id, flow.FieldPurpose, "Utility bill")
	require.NoError(t, err)
	env.settle(t, id)
}

func TestPaymentUC_ConfirmsPayment(t *testing.T) {
	env := setupPaymentUC(t)
	ctx := context.Background()
	id := env.start(t)
	env.fill(t, id)

	env.otp.EXPECT().Issue(gomock.Any(), testUser.Contact()).Return(testTicket, nil)
	view, err := env.uc.Submit(ctx, testUser, id)
	require.NoError(t, err)
	assert.Equal(t, models.FlowStateOtpPending, view.State)
	require.NotNil(t, view.Challenge)
	assert.Equal(t, "an**********@example.com", view.Challenge.Destination)

	var stored *models.Payment
	env.otp.EXPECT().Verify(gomock.Any(), "challenge-1", "482913").Return(true, nil)
	env.repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.Payment) error {
			stored = p
			return nil
		})
	env.gw.EXPECT().PublishPaymentConfirmed(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *models.PaymentConfirmedEvent) error {
			assert.Equal(t, stored.ID.String(), e.PaymentID)
			assert.Equal(t, "cur-rsd", e.CurrencyID)
			return nil
		})

	view, err = env.uc.EnterOTP(ctx, testUser, id, "482913")

	require.NoError(t, err)
	assert.Equal(t, models.FlowStateSuccess, view.State)
	require.NotNil(t, stored)
	assert.Equal(t, stored.ID.String(), view.PaymentID)
	assert.Equal(t, id, stored.SessionID)
	assert.Equal(t, "user-1", stored.UserID)
	assert.Equal(t, "acc-1", stored.FromAccountID)
	assert.Equal(t, recipient, stored.ToAccountNumber)
	assert.Equal(t, "c-289", stored.CodeID)
	assert.Equal(t, "Utility bill", stored.Purpose)
	assert.Equal(t, models.PaymentStatusConfirmed, stored.Status)
	assert.True(t, decimal.RequireFromString("200").Equal(stored.Amount))
}

func TestPaymentUC_PublishFailureStillConfirms(t *testing.T) {
	env := setupPaymentUC(t)
	ctx := context.Background()
	id := env.start(t)
	env.fill(t, id)
	env.otp.EXPECT().Issue(gomock.Any(), gomock.Any()).Return(testTicket, nil)
	_, err := env.uc.Submit(ctx, testUser, id)
	require.NoError(t, err)

	env.otp.EXPECT().Verify(gomock.Any(), "challenge-1", "482913").Return(true, nil)
	env.repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(nil)
	env.gw.EXPECT().PublishPaymentConfirmed(gomock.Any(), gomock.Any()).Return(errors.New("nats down"))

	view, err := env.uc.EnterOTP(ctx, testUser, id, "482913")

	require.NoError(t, err)
	assert.NotEmpty(t, view.PaymentID)
}

func TestPaymentUC_StoreFailure(t *testing.T) {
	env := setupPaymentUC(t)
	ctx := context.Background()
	id := env.start(t)
	env.fill(t, id)
	env.otp.EXPECT().Issue(gomock.Any(), gomock.Any()).Return(testTicket, nil)
	_, err := env.uc.Submit(ctx, testUser, id)
	require.NoError(t, err)

	var attempted []uuid.UUID
	record := func(_ context.Context, p *models.Payment) error {
		attempted = append(attempted, p.ID)
		return errors.New("db down")
	}
	env.otp.EXPECT().Verify(gomock.Any(), "challenge-1", "482913").Return(true, nil)
	env.repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(record).Times(2)

	view, err := env.uc.EnterOTP(ctx, testUser, id, "482913")

	assert.ErrorContains(t, err, "failed to store payment")
	assert.Equal(t, flow.ReasonConfirmFailed, flow.ReasonOf(err))
	assert.Equal(t, models.FlowStateOtpPending, view.State)
	assert.True(t, view.ConfirmPending)
	assert.Empty(t, view.PaymentID)

	t.Run("Retry confirms with the same payment ID", func(t *testing.T) {
		var stored *models.Payment
		env.repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *models.Payment) error {
				stored = p
				return nil
			})
		env.gw.EXPECT().PublishPaymentConfirmed(gomock.Any(), gomock.Any()).Return(nil)

		view, err := env.uc.EnterOTP(ctx, testUser, id, "")

		require.NoError(t, err)
		assert.Equal(t, models.FlowStateSuccess, view.State)
		assert.False(t, view.ConfirmPending)
		require.NotNil(t, stored)
		assert.Equal(t, stored.ID.String(), view.PaymentID)
		require.Len(t, attempted, 2)
		assert.Equal(t, attempted[0], stored.ID)
		assert.Equal(t, attempted[1], stored.ID)
		assert.Empty(t, view.Errors)
	})
}

func TestPaymentUC_PartialOTPDoesNotVerify(t *testing.T) {
	env := setupPaymentUC(t)
	ctx := context.Background()
	id := env.start(t)
	env.fill(t, id)
	env.otp.EXPECT().Issue(gomock.Any(), gomock.Any()).Return(testTicket, nil)
	_, err := env.uc.Submit(ctx, testUser, id)
	require.NoError(t, err)

	view, err := env.uc.EnterOTP(ctx, testUser, id, "48291")

	require.NoError(t, err)
	assert.Equal(t, models.FlowStateOtpPending, view.State)
	assert.Equal(t, "48291", view.Challenge.Value)
}

func TestPaymentUC_SubmitBlockedReturnsView(t *testing.T) {
	env := setupPaymentUC(t)
	id := env.start(t)

	view, err := env.uc.Submit(context.Background(), testUser, id)

	require.Error(t, err)
	assert.Equal(t, flow.ReasonInvalidForm, flow.ReasonOf(err))
	require.NotNil(t, view)
	assert.Equal(t, models.FlowStateForm, view.State)
	assert.NotEmpty(t, view.FieldErrors)
}

func TestPaymentUC_CancelAndResend(t *testing.T) {
	env := setupPaymentUC(t)
	ctx := context.Background()
	id := env.start(t)
	env.fill(t, id)

	second := testTicket
	second.ChallengeID = "challenge-2"
	gomock.InOrder(
		env.otp.EXPECT().Issue(gomock.Any(), gomock.Any()).Return(testTicket, nil),
		env.otp.EXPECT().Revoke(gomock.Any(), "challenge-1").Return(nil),
		env.otp.EXPECT().Issue(gomock.Any(), gomock.Any()).Return(second, nil),
		env.otp.EXPECT().Revoke(gomock.Any(), "challenge-2").Return(nil),
	)

	_, err := env.uc.Submit(ctx, testUser, id)
	require.NoError(t, err)
	_, err = env.uc.ResendOTP(ctx, testUser, id)
	require.NoError(t, err)

	view, err := env.uc.Cancel(ctx, testUser, id)

	require.NoError(t, err)
	assert.Equal(t, models.FlowStateForm, view.State)
	assert.Nil(t, view.Challenge)
}

func TestPaymentUC_SelectUnknownAccount(t *testing.T) {
	env := setupPaymentUC(t)
	id := env.start(t)
	env.repo.EXPECT().GetPayerAccount(gomock.Any(), "user-1", "acc-9").Return(nil, payment.ErrAccountNotFound)

	_, err := env.uc.SelectPayerAccount(context.Background(), testUser, id, "acc-9")

	assert.ErrorIs(t, err, payment.ErrAccountNotFound)
}

func TestPaymentUC_ReloadCodes(t *testing.T) {
	env := setupPaymentUC(t)
	ctx := context.Background()
	gomock.InOrder(
		env.repo.EXPECT().ListPaymentCodes(gomock.Any()).Return(nil, errors.New("db down")),
		env.repo.EXPECT().ListPaymentCodes(gomock.Any()).Return(testCodes, nil),
	)
	view, err := env.uc.StartSession(ctx, testUser)
	require.NoError(t, err)
	id := view.SessionID
	env.settle(t, id)

	view, err = env.uc.GetSession(ctx, testUser, id)
	require.NoError(t, err)
	assert.Equal(t, string(flow.CatalogFailed), view.CatalogStatus)

	_, err = env.uc.ReloadCodes(ctx, testUser, id)
	require.NoError(t, err)
	env.settle(t, id)

	view, err = env.uc.GetSession(ctx, testUser, id)
	require.NoError(t, err)
	assert.Equal(t, string(flow.CatalogLoaded), view.CatalogStatus)
}

func TestPaymentUC_Ownership(t *testing.T) {
	env := setupPaymentUC(t)
	ctx := context.Background()
	id := env.start(t)

	_, err := env.uc.GetSession(ctx, otherUser, id)
	assert.ErrorIs(t, err, payment.ErrSessionForbidden)
	_, err = env.uc.UpdateField(ctx, otherUser, id, flow.FieldPurpose, "x")
	assert.ErrorIs(t, err, payment.ErrSessionForbidden)
	assert.ErrorIs(t, env.uc.DiscardSession(ctx, otherUser, id), payment.ErrSessionForbidden)

	_, err = env.uc.GetSession(ctx, testUser, uuid.New())
	assert.ErrorIs(t, err, payment.ErrSessionNotFound)
}

func TestPaymentUC_DiscardRevokesChallenge(t *testing.T) {
	env := setupPaymentUC(t)
	ctx := context.Background()
	id := env.start(t)
	env.fill(t, id)
	env.otp.EXPECT().Issue(gomock.Any(), gomock.Any()).Return(testTicket, nil)
	_, err := env.uc.Submit(ctx, testUser, id)
	require.NoError(t, err)
	env.otp.EXPECT().Revoke(gomock.Any(), "challenge-1").Return(nil)

	require.NoError(t, env.uc.DiscardSession(ctx, testUser, id))

	_, err = env.uc.GetSession(ctx, testUser, id)
	assert.ErrorIs(t, err, payment.ErrSessionNotFound)
}

func TestPaymentUC_ListPayerAccounts(t *testing.T) {
	env := setupPaymentUC(t)
	env.repo.EXPECT().ListPayerAccounts(gomock.Any(), "user-1").Return([]models.PayerAccount{*testAccount}, nil)

	accounts, err := env.uc.ListPayerAccounts(context.Background(), testUser)

	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}
