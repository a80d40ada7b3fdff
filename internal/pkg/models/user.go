package models

// AuthUser is the authenticated caller extracted from the access token
type AuthUser struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	MSISDN string `json:"msisdn,omitempty"`
}

// Contact returns the OTP destination of the user
func (u AuthUser) Contact() Contact {
	return Contact{Email: u.Email, MSISDN: u.MSISDN}
}
