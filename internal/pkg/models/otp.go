package models

import (
	"time"
)

// Contact is the registered destination for one-time passwords
type Contact struct {
	Email  string `json:"email,omitempty"`
	MSISDN string `json:"msisdn,omitempty"`
}

// ChallengeTicket acknowledges an issued OTP challenge
type ChallengeTicket struct {
	ChallengeID string    `json:"challenge_id"`
	Channel     string    `json:"channel"`
	Destination string    `json:"destination"`
	IssuedAt    time.Time `json:"issued_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// OTP is the stored form of an issued one-time password
type OTP struct {
	ChallengeID string    `json:"challenge_id"`
	Destination string    `json:"destination"`
	CodeHash    string    `json:"code_hash"`
	Attempts    int       `json:"attempts"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// OTPDelivery is queued for the notification sender
type OTPDelivery struct {
	ChallengeID string    `json:"challenge_id"`
	Channel     string    `json:"channel"`
	Destination string    `json:"destination"`
	Code        string    `json:"code"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// OTPEntryRequest carries the digits typed by the user
type OTPEntryRequest struct {
	Value string `json:"value"`
}
