// Package flow implements the payment attempt state machine: form -> otp -> success.
//
// A Flow owns one PaymentDraft for the lifetime of an attempt. Currency resolution and the
// payment code catalog load run in the background; their results are applied under the flow
// lock and stale results are dropped on arrival. OTP issuance and verification run on the
// caller's goroutine.
package flow

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/piresc/transferflow/internal/pkg/logger"
	"github.com/piresc/transferflow/internal/pkg/models"
)

// DefaultAsyncTimeout bounds every lookup when Options leave it unset
const DefaultAsyncTimeout = 10 * time.Second

// error scopes not tied to a form field
const (
	errSubmit  = "submit"
	errConfirm = "confirm"
)

// Confirmer commits a verified payment and returns its reference. key is stable for one
// submitted instruction, so a retried confirmation must not store the payment twice.
type Confirmer interface {
	ConfirmPayment(ctx context.Context, key string, instruction models.PaymentInstruction) (string, error)
}

// Dependencies are the external collaborators of a flow. Without a Confirmer a verified code
// completes the flow on its own.
type Dependencies struct {
	Currency CurrencyFetcher
	Codes    CodeFetcher
	OTP      OTPService
	Confirm  Confirmer
}

// Options tunes a flow
type Options struct {
	DefaultCode    string
	AsyncTimeout   time.Duration
	OTPLength      int
	OTPMaxAttempts int
}

// Flow is the controller of one payment attempt
type Flow struct {
	mu sync.Mutex

	state       models.FlowState
	draft       *Draft
	contact     models.Contact
	resolver    *Resolver
	catalog     *Catalog
	guard       *Guard
	challenge   *Challenge
	otp         OTPService
	confirmer   Confirmer
	opts        Options
	fieldErrors []models.FieldError
	errs        errorSet
	instruction *models.PaymentInstruction
	confirmKey  string
	reference   string
	exceeded    bool

	started bool
	ctx     context.Context
	cancel  context.CancelFunc
	pending sync.WaitGroup
}

// New creates a flow in the Form state. contact is where OTP codes are delivered.
func New(deps Dependencies, contact models.Contact, opts Options) *Flow {
	if opts.AsyncTimeout <= 0 {
		opts.AsyncTimeout = DefaultAsyncTimeout
	}
	if opts.DefaultCode == "" {
		opts.DefaultCode = DefaultPaymentCode
	}
	if opts.OTPLength <= 0 {
		opts.OTPLength = DefaultOTPLength
	}

	ctx, cancel := context.WithCancel(context.Background())
	f := &Flow{
		state:    models.FlowStateForm,
		draft:    NewDraft(opts.DefaultCode),
		contact:  contact,
		resolver: NewResolver(deps.Currency, opts.AsyncTimeout),
		catalog:  NewCatalog(deps.Codes, opts.AsyncTimeout, opts.DefaultCode),
		otp:       deps.OTP,
		confirmer: deps.Confirm,
		opts:      opts,
		ctx:      ctx,
		cancel:   cancel,
	}
	f.guard = NewGuard(f.onLimitChange)
	return f
}

// Start loads the payment code catalog in the background. Only the first call loads.
func (f *Flow) Start() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.started {
		return
	}
	f.started = true
	f.loadCatalog(f.catalog.Load)
}

// ReloadCodes retries a failed catalog load
func (f *Flow) ReloadCodes() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.catalog.Status() == CatalogFailed {
		f.loadCatalog(f.catalog.Reload)
	}
}

func (f *Flow) loadCatalog(load func(context.Context) error) {
	f.pending.Add(1)
	go func() {
		defer f.pending.Done()
		if err := load(f.ctx); err != nil {
			logger.Warn("Payment code catalog unavailable", logger.Err(err))
		}
	}()
}

// Settle blocks until background lookups have been applied
func (f *Flow) Settle() {
	f.pending.Wait()
}

// Close stops interest in background lookups and waits for them to return
func (f *Flow) Close() {
	f.cancel()
	f.pending.Wait()
}

// State returns the current step
func (f *Flow) State() models.FlowState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// SelectPayerAccount chooses the account to debit. Its daily limit replaces the current one and
// the entered amount is cleared.
func (f *Flow) SelectPayerAccount(account models.PayerAccount) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.requireState(models.FlowStateForm, "select payer account"); err != nil {
		return err
	}

	f.draft.PayerAccountID = account.ID
	f.draft.PayerCurrencyID = account.CurrencyID
	f.draft.PayerCurrencyCode = account.CurrencyCode
	f.draft.Amount = nil
	f.draft.AmountInput = ""
	f.guard.SetLimit(models.SpendingLimit{DailyLimit: account.DailyLimit, Currency: account.CurrencyCode})
	f.clearFieldError(FieldPayerAccount)
	return nil
}

// SetField edits one form field. It implements FieldSetter for the presentation layer.
func (f *Flow) SetField(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.requireState(models.FlowStateForm, "edit field"); err != nil {
		return err
	}
	if name == FieldOTP {
		return newError(KindValidation, ReasonUnknownField, name, "Unknown field",
			"Field otp is set by the verification step.")
	}

	prevRecipient := strings.TrimSpace(f.draft.RecipientAccount)
	if err := f.draft.SetField(name, value); err != nil {
		return err
	}
	f.clearFieldError(name)

	switch name {
	case FieldAmount:
		f.guard.Update(f.draft.Amount)
	case FieldRecipientAccount:
		recipient := strings.TrimSpace(value)
		if recipient == prevRecipient && (f.draft.RecipientCurrencyID != nil || f.resolver.Loading()) {
			return nil
		}
		f.errs.clear(FieldRecipientAccount)
		f.draft.RecipientCurrencyID = nil
		if recipient == "" {
			f.resolver.Invalidate()
			return nil
		}
		f.resolveCurrency(recipient)
	case FieldPaymentCode:
		f.errs.clear(FieldPaymentCode)
	}
	return nil
}

func (f *Flow) resolveCurrency(account string) {
	token := f.resolver.Begin()
	f.pending.Add(1)
	go func() {
		defer f.pending.Done()
		res := f.resolver.Resolve(f.ctx, token, account)
		f.applyResolution(res)
	}()
}

func (f *Flow) applyResolution(res Resolution) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.resolver.Accept(res) {
		logger.Debug("Discarding stale currency resolution",
			logger.String("account", res.AccountNumber),
			logger.Uint64("token", res.Token))
		return
	}
	if f.state != models.FlowStateForm {
		return
	}

	if res.Err != nil {
		f.draft.RecipientCurrencyID = nil
		f.errs.set(FieldRecipientAccount, newError(KindResolution, ReasonCurrencyNotFound, FieldRecipientAccount,
			"Recipient account not found",
			"Recipient account is invalid or does not have a valid currency.").wrap(res.Err))
		logger.Warn("Recipient currency resolution failed",
			logger.String("account", res.AccountNumber),
			logger.Err(res.Err))
		return
	}

	currencyID := res.CurrencyID
	f.draft.RecipientCurrencyID = &currencyID
	f.errs.clear(FieldRecipientAccount)
}

func (f *Flow) onLimitChange(exceeded bool) {
	f.exceeded = exceeded
	if !exceeded {
		f.errs.clear(FieldAmount)
		return
	}
	limit, _ := f.guard.Limit()
	f.errs.set(FieldAmount, newError(KindLimitExceeded, ReasonLimitExceeded, FieldAmount,
		"Daily limit exceeded", f.guard.Current().Message(limit.Currency)))
}

// Submit re-verifies every precondition atomically. On success the flow enters the OTP step
// and issues a challenge; a failed issuance is reported on the OTP step, not here.
func (f *Flow) Submit(ctx context.Context) (*models.PaymentInstruction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.requireState(models.FlowStateForm, "submit"); err != nil {
		return nil, err
	}

	instruction, ferr := f.check()
	if ferr != nil {
		f.errs.set(errSubmit, ferr)
		return nil, ferr
	}
	f.errs.clear(errSubmit)
	f.instruction = &instruction
	f.confirmKey = uuid.NewString()

	if err := f.transition(models.FlowStateOtpPending); err != nil {
		return nil, err
	}

	f.challenge = NewChallenge(f.otp, f.contact, f.draft, ChallengeOptions{
		Length:      f.opts.OTPLength,
		MaxAttempts: f.opts.OTPMaxAttempts,
		Timeout:     f.opts.AsyncTimeout,
	})
	if err := f.challenge.Begin(ctx); err != nil {
		f.recordChallengeError(err)
	}
	return f.instruction, nil
}

func (f *Flow) check() (models.PaymentInstruction, *Error) {
	f.fieldErrors = f.draft.Validate()
	if len(f.fieldErrors) > 0 && !f.onlyPayerMissing() {
		e := newError(KindValidation, ReasonInvalidForm, "", "Invalid payment form",
			"Some fields need to be corrected.")
		e.FieldErrors = f.fieldErrors
		return models.PaymentInstruction{}, e
	}

	if f.guard.Exceeded() {
		limit, _ := f.guard.Limit()
		return models.PaymentInstruction{}, newError(KindLimitExceeded, ReasonLimitExceeded, FieldAmount,
			"Daily limit exceeded", f.guard.Current().Message(limit.Currency))
	}

	code, err := f.catalog.Match(f.draft.PaymentCode)
	switch {
	case errors.Is(err, ErrCatalogNotReady):
		return models.PaymentInstruction{}, newError(KindResolution, ReasonCatalogNotReady, FieldPaymentCode,
			"Payment codes not loaded", "Please wait, loading payment codes...").wrap(err)
	case err != nil:
		return models.PaymentInstruction{}, newError(KindResolution, ReasonCodeNotFound, FieldPaymentCode,
			"Unknown payment code", "Code "+f.effectiveCode()+" not found in loaded payment codes.").wrap(err)
	}

	if f.draft.PayerAccountID == "" || f.draft.PayerCurrencyID == "" {
		return models.PaymentInstruction{}, newError(KindValidation, ReasonPayerMissing, FieldPayerAccount,
			"Payer account missing", "Payer account is missing or invalid.")
	}

	if f.resolver.Loading() {
		return models.PaymentInstruction{}, newError(KindResolution, ReasonCurrencyLoading, FieldRecipientAccount,
			"Recipient currency loading", "Please wait, fetching recipient currency...")
	}

	if f.draft.RecipientCurrencyID == nil {
		return models.PaymentInstruction{}, newError(KindResolution, ReasonCurrencyUnresolved, FieldRecipientAccount,
			"Recipient currency unresolved", "Recipient account is invalid or does not have a valid currency.")
	}

	return models.PaymentInstruction{
		FromAccountID:   f.draft.PayerAccountID,
		FromCurrencyID:  f.draft.PayerCurrencyID,
		ToAccountNumber: strings.TrimSpace(f.draft.RecipientAccount),
		ToCurrencyID:    *f.draft.RecipientCurrencyID,
		Amount:          *f.draft.Amount,
		CodeID:          code.ID,
		ReferenceNumber: f.draft.ReferenceNumber,
		Purpose:         f.draft.Purpose,
	}, nil
}

// onlyPayerMissing reports a form whose sole schema error is the unselected payer account. That
// case is reported as ReasonPayerMissing once the earlier checks pass.
func (f *Flow) onlyPayerMissing() bool {
	return len(f.fieldErrors) == 1 && f.fieldErrors[0].Field == FieldPayerAccount
}

func (f *Flow) effectiveCode() string {
	if code := strings.TrimSpace(f.draft.PaymentCode); code != "" {
		return code
	}
	return f.opts.DefaultCode
}

// EnterOTP passes the typed digits to the OTP step. A verified code completes the flow once the
// payment is confirmed. While a verified payment awaits confirmation every call retries the
// confirmation and value is ignored.
func (f *Flow) EnterOTP(ctx context.Context, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.requireState(models.FlowStateOtpPending, "enter otp"); err != nil {
		return err
	}
	if f.challenge.Verified() {
		return f.complete(ctx)
	}

	verified, err := f.challenge.Enter(ctx, value)
	if err != nil {
		f.recordChallengeError(err)
		return err
	}
	if !verified {
		return nil
	}
	f.errs.clear(FieldOTP)
	return f.complete(ctx)
}

func (f *Flow) complete(ctx context.Context) error {
	if f.confirmer != nil {
		ref, err := f.confirmer.ConfirmPayment(ctx, f.confirmKey, *f.instruction)
		if err != nil {
			ferr := newError(KindChallenge, ReasonConfirmFailed, FieldOTP, "Payment not confirmed",
				"The payment could not be completed. Please try again.").wrap(err)
			f.errs.set(errConfirm, ferr)
			return ferr
		}
		f.reference = ref
		f.errs.clear(errConfirm)
	}
	return f.transition(models.FlowStateSuccess)
}

// ResendOTP replaces the live challenge with a new one
func (f *Flow) ResendOTP(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.requireState(models.FlowStateOtpPending, "resend otp"); err != nil {
		return err
	}

	if err := f.challenge.Resend(ctx); err != nil {
		f.recordChallengeError(err)
		return err
	}
	f.errs.clear(FieldOTP)
	return nil
}

// Cancel leaves the OTP step back to the form, discarding the challenge
func (f *Flow) Cancel(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.transitionCtx(ctx, models.FlowStateForm)
}

// Transition requests a state change. Only form->otp after a successful submission,
// otp->success after a verified code and otp->form are legal; anything else is a fatal
// flow error and leaves the state untouched.
func (f *Flow) Transition(ctx context.Context, to models.FlowState) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.transitionCtx(ctx, to)
}

func (f *Flow) transitionCtx(ctx context.Context, to models.FlowState) error {
	if to == models.FlowStateForm && f.state == models.FlowStateOtpPending {
		if f.challenge != nil {
			f.challenge.Discard(ctx)
		}
	}
	return f.transition(to)
}

func (f *Flow) transition(to models.FlowState) error {
	from := f.state
	legal := false
	switch {
	case from == models.FlowStateForm && to == models.FlowStateOtpPending:
		legal = f.instruction != nil
	case from == models.FlowStateOtpPending && to == models.FlowStateSuccess:
		legal = f.challenge != nil && f.challenge.Verified() && (f.confirmer == nil || f.reference != "")
	case from == models.FlowStateOtpPending && to == models.FlowStateForm:
		legal = true
	}
	if !legal {
		return f.fatal("transition "+string(from)+" -> "+string(to), from, to)
	}

	f.state = to
	if to == models.FlowStateForm {
		f.challenge = nil
		f.instruction = nil
		f.confirmKey = ""
		f.errs.clear(FieldOTP)
		f.errs.clear(errConfirm)
	}
	logger.Info("Payment flow transition",
		logger.String("from", string(from)),
		logger.String("to", string(to)))
	return nil
}

func (f *Flow) requireState(want models.FlowState, action string) error {
	if f.state == want {
		return nil
	}
	return f.fatal(action+" in state "+string(f.state), f.state, want)
}

func (f *Flow) fatal(description string, from, to models.FlowState) error {
	err := newError(KindFatal, ReasonIllegalTransition, "", "Illegal flow transition", description)
	logger.Error("Illegal payment flow transition",
		logger.String("from", string(from)),
		logger.String("to", string(to)),
		logger.String("detail", description))
	return err
}

func (f *Flow) recordChallengeError(err error) {
	if fe, ok := AsError(err); ok {
		f.errs.set(FieldOTP, fe)
		return
	}
	f.errs.set(FieldOTP, newError(KindChallenge, ReasonVerifyFailed, FieldOTP,
		"Failed to confirm OTP", err.Error()).wrap(err))
}

func (f *Flow) clearFieldError(field string) {
	kept := f.fieldErrors[:0]
	for _, fe := range f.fieldErrors {
		if fe.Field != field {
			kept = append(kept, fe)
		}
	}
	f.fieldErrors = kept
}

// Instruction returns the submitted payment, nil before a successful submission
func (f *Flow) Instruction() *models.PaymentInstruction {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.instruction == nil {
		return nil
	}
	instr := *f.instruction
	return &instr
}

// Reference returns what the Confirmer returned for the completed payment, empty until then
func (f *Flow) Reference() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reference
}

// View snapshots everything the presentation layer renders
func (f *Flow) View() models.FlowView {
	f.mu.Lock()
	defer f.mu.Unlock()

	loading := f.resolver.Loading()
	catalogStatus := f.catalog.Status()

	v := models.FlowView{
		State:           f.state,
		Form:            f.draft.View(),
		Limit:           f.guard.View(),
		LoadingCurrency: loading,
		LimitExceeded:   f.exceeded,
		CatalogStatus:   string(catalogStatus),
		SubmitEnabled: f.state == models.FlowStateForm &&
			!f.exceeded &&
			!loading &&
			f.draft.PayerAccountID != "" &&
			f.draft.RecipientCurrencyID != nil &&
			catalogStatus == CatalogLoaded &&
			len(f.draft.Validate()) == 0,
		ConfirmPending: f.state == models.FlowStateOtpPending && f.challenge != nil && f.challenge.Verified(),
	}
	if len(f.fieldErrors) > 0 {
		v.FieldErrors = append([]models.FieldError(nil), f.fieldErrors...)
	}

	records := f.errs.records()
	if cerr := f.catalog.Failure(); cerr != nil {
		records = append(records, cerr.Record())
	}
	if len(records) > 0 {
		v.Errors = records
	}
	if f.challenge != nil {
		v.Challenge = f.challenge.View()
	}
	return v
}
