package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/piresc/transferflow/internal/pkg/logger"
	"github.com/piresc/transferflow/internal/pkg/models"
	"github.com/piresc/transferflow/internal/utils"
	"github.com/piresc/transferflow/services/otp"
)

const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
)

// ErrNoDestination is returned when the contact has no address for any channel
var ErrNoDestination = errors.New("no registered destination for otp")

// destination picks the configured channel, falling back to the other one
func (u *OTPUC) destination(contact models.Contact) (channel, address, masked string, err error) {
	email := func() (string, string, string, error) {
		return ChannelEmail, contact.Email, utils.MaskEmail(contact.Email), nil
	}
	sms := func() (string, string, string, error) {
		return ChannelSMS, contact.MSISDN, utils.MaskPhoneNumber(contact.MSISDN), nil
	}

	preferSMS := u.cfg.Channel == ChannelSMS
	switch {
	case preferSMS && contact.MSISDN != "":
		return sms()
	case contact.Email != "":
		return email()
	case contact.MSISDN != "":
		return sms()
	}
	return "", "", "", ErrNoDestination
}

// Issue creates a new challenge and queues its code for delivery
func (u *OTPUC) Issue(ctx context.Context, contact models.Contact) (models.ChallengeTicket, error) {
	channel, address, masked, err := u.destination(contact)
	if err != nil {
		return models.ChallengeTicket{}, err
	}

	code, err := utils.GenerateNumericCode(u.cfg.Length)
	if err != nil {
		return models.ChallengeTicket{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return models.ChallengeTicket{}, fmt.Errorf("failed to hash otp: %w", err)
	}

	now := u.now()
	record := &models.OTP{
		ChallengeID: uuid.New().String(),
		Destination: address,
		CodeHash:    string(hash),
		CreatedAt:   now,
		ExpiresAt:   now.Add(u.cfg.TTL),
	}
	if err := u.otpRepo.Save(ctx, record, u.cfg.TTL); err != nil {
		return models.ChallengeTicket{}, err
	}

	err = u.otpGW.DeliverOTP(ctx, &models.OTPDelivery{
		ChallengeID: record.ChallengeID,
		Channel:     channel,
		Destination: address,
		Code:        code,
		ExpiresAt:   record.ExpiresAt,
	})
	if err != nil {
		if derr := u.otpRepo.Delete(ctx, record.ChallengeID); derr != nil {
			logger.WarnCtx(ctx, "Failed to drop undelivered OTP",
				logger.String("challenge_id", record.ChallengeID),
				logger.Err(derr))
		}
		return models.ChallengeTicket{}, err
	}

	logger.InfoCtx(ctx, "OTP issued",
		logger.String("challenge_id", record.ChallengeID),
		logger.String("channel", channel),
		logger.String("destination", masked))

	return models.ChallengeTicket{
		ChallengeID: record.ChallengeID,
		Channel:     channel,
		Destination: masked,
		IssuedAt:    record.CreatedAt,
		ExpiresAt:   record.ExpiresAt,
	}, nil
}

// Verify checks code against a live challenge. Unknown or expired challenges and wrong codes
// answer false; an accepted code consumes the challenge. After MaxAttempts wrong codes the
// challenge is dropped.
func (u *OTPUC) Verify(ctx context.Context, challengeID, code string) (bool, error) {
	record, err := u.otpRepo.Get(ctx, challengeID)
	if errors.Is(err, otp.ErrOTPNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if record.Attempts >= u.cfg.MaxAttempts || !u.now().Before(record.ExpiresAt) {
		u.drop(ctx, challengeID)
		return false, nil
	}

	if bcrypt.CompareHashAndPassword([]byte(record.CodeHash), []byte(code)) != nil {
		attempts, err := u.otpRepo.IncrementAttempts(ctx, challengeID)
		if err != nil && !errors.Is(err, otp.ErrOTPNotFound) {
			return false, err
		}
		if attempts >= u.cfg.MaxAttempts {
			u.drop(ctx, challengeID)
		}
		logger.InfoCtx(ctx, "OTP rejected",
			logger.String("challenge_id", challengeID),
			logger.Int("attempts", attempts))
		return false, nil
	}

	if err := u.otpRepo.Delete(ctx, challengeID); err != nil {
		return false, err
	}
	logger.InfoCtx(ctx, "OTP verified", logger.String("challenge_id", challengeID))
	return true, nil
}

// Revoke makes a challenge unusable
func (u *OTPUC) Revoke(ctx context.Context, challengeID string) error {
	return u.otpRepo.Delete(ctx, challengeID)
}

func (u *OTPUC) drop(ctx context.Context, challengeID string) {
	if err := u.otpRepo.Delete(ctx, challengeID); err != nil {
		logger.WarnCtx(ctx, "Failed to drop OTP", logger.String("challenge_id", challengeID), logger.Err(err))
	}
}
