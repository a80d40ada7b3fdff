package usecase

import (
	"time"

	"github.com/piresc/transferflow/internal/pkg/models"
	"github.com/piresc/transferflow/services/otp"
)

// OTPUC issues bcrypt-hashed codes stored in Redis and queued for delivery over NSQ
type OTPUC struct {
	otpRepo otp.OTPRepo
	otpGW   otp.OTPGW
	cfg     models.OTPConfig
	now     func() time.Time
}

// NewOTPUC creates a new OTP usecase instance
func NewOTPUC(
	otpRepo otp.OTPRepo,
	otpGW otp.OTPGW,
	cfg models.OTPConfig,
) *OTPUC {
	if cfg.Length <= 0 {
		cfg.Length = 6
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 5 * time.Minute
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	return &OTPUC{
		otpRepo: otpRepo,
		otpGW:   otpGW,
		cfg:     cfg,
		now:     time.Now,
	}
}
