package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/piresc/transferflow/internal/pkg/models"
)

// Claims carries the authenticated user of a payments request
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	MSISDN string `json:"msisdn,omitempty"`
	jwt.RegisteredClaims
}

// User returns the user the claims were issued for
func (c *Claims) User() models.AuthUser {
	return models.AuthUser{ID: c.UserID, Email: c.Email, MSISDN: c.MSISDN}
}

// GenerateToken signs a token for user. It returns the token and its expiry.
func GenerateToken(user models.AuthUser, cfg models.JWTConfig) (string, time.Time, error) {
	expiresAt := time.Now().Add(time.Duration(cfg.Expiration) * time.Minute)
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		MSISDN: user.MSISDN,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ValidateToken parses tokenString and checks its signature, expiry and user id
func ValidateToken(tokenString string, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.UserID == "" {
		return nil, errors.New("token has no user_id claim")
	}
	return claims, nil
}
