package flow

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/transferflow/internal/pkg/logger"
	"github.com/piresc/transferflow/internal/pkg/models"
)

// DefaultOTPLength is the number of digits of a one-time password
const DefaultOTPLength = 6

// OTPService issues and verifies one-time passwords. Issue acknowledges delivery of a new code;
// Verify answers whether code matches the live challenge. Revoking a challenge makes its code
// unusable.
type OTPService interface {
	Issue(ctx context.Context, contact models.Contact) (models.ChallengeTicket, error)
	Verify(ctx context.Context, challengeID, code string) (bool, error)
	Revoke(ctx context.Context, challengeID string) error
}

// ChallengeStatus is the state of the OTP step
type ChallengeStatus string

const (
	ChallengeIdle     ChallengeStatus = "idle"
	ChallengeIssued   ChallengeStatus = "issued"
	ChallengeVerified ChallengeStatus = "verified"
	ChallengeFailed   ChallengeStatus = "failed"
)

// ChallengeOptions tunes a challenge
type ChallengeOptions struct {
	Length      int
	MaxAttempts int
	Timeout     time.Duration
}

// Challenge drives the OTP step of one payment attempt
type Challenge struct {
	svc     OTPService
	contact models.Contact
	setter  FieldSetter
	opts    ChallengeOptions

	began    bool
	status   ChallengeStatus
	ticket   *models.ChallengeTicket
	value    string
	attempts int
}

// NewChallenge creates an idle challenge delivering codes to contact. The verified code is
// written through setter.
func NewChallenge(svc OTPService, contact models.Contact, setter FieldSetter, opts ChallengeOptions) *Challenge {
	if opts.Length <= 0 {
		opts.Length = DefaultOTPLength
	}
	return &Challenge{
		svc:     svc,
		contact: contact,
		setter:  setter,
		opts:    opts,
		status:  ChallengeIdle,
	}
}

func (c *Challenge) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.opts.Timeout > 0 {
		return context.WithTimeout(ctx, c.opts.Timeout)
	}
	return context.WithCancel(ctx)
}

// Begin issues the challenge on entering the step. Only the first call issues; later calls,
// including after a failed issuance, do nothing. Use Resend to issue again.
func (c *Challenge) Begin(ctx context.Context) error {
	if c.began {
		return nil
	}
	c.began = true
	return c.issue(ctx)
}

// Resend revokes the current challenge and issues a fresh one
func (c *Challenge) Resend(ctx context.Context) error {
	if c.status == ChallengeVerified {
		return nil
	}
	c.began = true
	c.revoke(ctx)
	return c.issue(ctx)
}

func (c *Challenge) issue(ctx context.Context) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	c.value = ""
	c.attempts = 0
	ticket, err := c.svc.Issue(ctx, c.contact)
	if err != nil {
		c.ticket = nil
		c.status = ChallengeFailed
		return newError(KindChallenge, ReasonIssueFailed, FieldOTP,
			"Failed to reach backend", err.Error()).wrap(err)
	}
	c.ticket = &ticket
	c.status = ChallengeIssued
	return nil
}

func (c *Challenge) revoke(ctx context.Context) {
	if c.ticket == nil {
		return
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if err := c.svc.Revoke(ctx, c.ticket.ChallengeID); err != nil {
		logger.WarnCtx(ctx, "Failed to revoke OTP challenge",
			logger.String("challenge_id", c.ticket.ChallengeID),
			logger.Err(err))
	}
	c.ticket = nil
}

// Enter accepts the digits typed so far. Input containing anything but digits, or longer than
// the code length, is rejected and leaves the value unchanged. Verification runs once each
// time the value becomes a new complete code; it reports true when the code was accepted.
func (c *Challenge) Enter(ctx context.Context, input string) (bool, error) {
	if c.status == ChallengeVerified {
		return true, nil
	}
	for _, r := range input {
		if r < '0' || r > '9' {
			return false, newError(KindValidation, ReasonInvalidInput, FieldOTP,
				"Invalid code", "Only digits are allowed.")
		}
	}
	if len(input) > c.opts.Length {
		return false, newError(KindValidation, ReasonInvalidInput, FieldOTP,
			"Invalid code", fmt.Sprintf("The code has at most %d digits.", c.opts.Length))
	}

	prev := c.value
	c.value = input
	if len(input) != c.opts.Length || input == prev {
		return false, nil
	}
	return c.verify(ctx, input)
}

func (c *Challenge) verify(ctx context.Context, code string) (bool, error) {
	if c.ticket == nil {
		c.value = ""
		return false, newError(KindChallenge, ReasonNoChallenge, FieldOTP,
			"No active code", "Request a new verification code.")
	}
	if c.opts.MaxAttempts > 0 && c.attempts >= c.opts.MaxAttempts {
		c.value = ""
		return false, newError(KindChallenge, ReasonAttemptsExhausted, FieldOTP,
			"Too many attempts", "Request a new verification code.")
	}
	c.attempts++

	vctx, cancel := c.withTimeout(ctx)
	defer cancel()

	ok, err := c.svc.Verify(vctx, c.ticket.ChallengeID, code)
	if err != nil {
		c.status = ChallengeFailed
		c.value = ""
		return false, newError(KindChallenge, ReasonVerifyFailed, FieldOTP,
			"Failed to confirm OTP", err.Error()).wrap(err)
	}
	if !ok {
		c.status = ChallengeFailed
		c.value = ""
		return false, newError(KindChallenge, ReasonCodeRejected, FieldOTP,
			"Failed to confirm OTP", "The code is incorrect or expired.")
	}

	c.status = ChallengeVerified
	if c.setter != nil {
		if err := c.setter.SetField(FieldOTP, code); err != nil {
			return false, err
		}
	}
	return true, nil
}

// Discard revokes the live challenge and resets the step
func (c *Challenge) Discard(ctx context.Context) {
	if c.status != ChallengeVerified {
		c.revoke(ctx)
	}
	c.ticket = nil
	c.value = ""
	c.attempts = 0
	c.began = false
	c.status = ChallengeIdle
}

// Status returns the challenge state
func (c *Challenge) Status() ChallengeStatus {
	return c.status
}

// Verified reports whether a code was accepted
func (c *Challenge) Verified() bool {
	return c.status == ChallengeVerified
}

// Ticket returns the live challenge, nil when none is issued
func (c *Challenge) Ticket() *models.ChallengeTicket {
	return c.ticket
}

// View renders the step for presentation
func (c *Challenge) View() *models.ChallengeView {
	v := &models.ChallengeView{
		Status:   string(c.status),
		Value:    c.value,
		Attempts: c.attempts,
	}
	if c.ticket != nil {
		v.Destination = c.ticket.Destination
		v.Channel = c.ticket.Channel
		v.IssuedAt = c.ticket.IssuedAt
		v.ExpiresAt = c.ticket.ExpiresAt
	}
	return v
}
