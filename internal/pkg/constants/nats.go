package constants

// NATS Subjects
const (
	// Payment Service
	SubjectPaymentConfirmed = "payment.confirmed"
)
