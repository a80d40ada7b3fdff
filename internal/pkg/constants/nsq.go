package constants

// NSQ Topics
const (
	// OTP Service
	TopicOTPDelivery = "otp_delivery"
)
