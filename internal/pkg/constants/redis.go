package constants

// Redis key formats
const (
	// OTP Service
	KeyPaymentOTP = "payment:otp:%s" // Format: payment:otp:{challenge_id}

	// Rate Limiting
	KeyRateLimit = "payment:ratelimit:%s:%s" // Format: payment:ratelimit:{action}:{user_id}

	RateLimitOTPResend = "otp_resend"
)
