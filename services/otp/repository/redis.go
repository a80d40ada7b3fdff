package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/piresc/transferflow/internal/pkg/constants"
	"github.com/piresc/transferflow/internal/pkg/database"
	"github.com/piresc/transferflow/internal/pkg/models"
	"github.com/piresc/transferflow/services/otp"
)

const (
	fieldDestination = "destination"
	fieldCodeHash    = "code_hash"
	fieldAttempts    = "attempts"
	fieldCreatedAt   = "created_at"
	fieldExpiresAt   = "expires_at"
)

// OTPRepo keeps each challenge in a Redis hash that expires with the code
type OTPRepo struct {
	redisClient *database.RedisClient
}

// NewOTPRepo creates a new OTP repository
func NewOTPRepo(redisClient *database.RedisClient) *OTPRepo {
	return &OTPRepo{redisClient: redisClient}
}

func otpKey(challengeID string) string {
	return fmt.Sprintf(constants.KeyPaymentOTP, challengeID)
}

// Save stores otp for ttl
func (r *OTPRepo) Save(ctx context.Context, otp *models.OTP, ttl time.Duration) error {
	key := otpKey(otp.ChallengeID)
	err := r.redisClient.HSet(ctx, key, map[string]interface{}{
		fieldDestination: otp.Destination,
		fieldCodeHash:    otp.CodeHash,
		fieldAttempts:    otp.Attempts,
		fieldCreatedAt:   otp.CreatedAt.UTC().Format(time.RFC3339Nano),
		fieldExpiresAt:   otp.ExpiresAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return fmt.Errorf("failed to store otp: %w", err)
	}
	if err := r.redisClient.Expire(ctx, key, ttl); err != nil {
		return fmt.Errorf("failed to set otp expiry: %w", err)
	}
	return nil
}

// Get loads a live challenge
func (r *OTPRepo) Get(ctx context.Context, challengeID string) (*models.OTP, error) {
	values, err := r.redisClient.HGetAll(ctx, otpKey(challengeID))
	if err != nil {
		return nil, fmt.Errorf("failed to get otp: %w", err)
	}
	if len(values) == 0 {
		return nil, otp.ErrOTPNotFound
	}

	attempts, err := strconv.Atoi(values[fieldAttempts])
	if err != nil {
		return nil, fmt.Errorf("corrupt otp attempts: %w", err)
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, values[fieldCreatedAt])
	expiresAt, _ := time.Parse(time.RFC3339Nano, values[fieldExpiresAt])

	return &models.OTP{
		ChallengeID: challengeID,
		Destination: values[fieldDestination],
		CodeHash:    values[fieldCodeHash],
		Attempts:    attempts,
		CreatedAt:   createdAt,
		ExpiresAt:   expiresAt,
	}, nil
}

// IncrementAttempts records a failed verification and returns the new count
func (r *OTPRepo) IncrementAttempts(ctx context.Context, challengeID string) (int, error) {
	key := otpKey(challengeID)
	exists, err := r.redisClient.GetClient().Exists(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to check otp: %w", err)
	}
	if exists == 0 {
		return 0, otp.ErrOTPNotFound
	}

	attempts, err := r.redisClient.HIncrBy(ctx, key, fieldAttempts, 1)
	if err != nil {
		return 0, fmt.Errorf("failed to increment otp attempts: %w", err)
	}
	return int(attempts), nil
}

// Delete removes a challenge. Deleting a missing challenge is not an error.
func (r *OTPRepo) Delete(ctx context.Context, challengeID string) error {
	if err := r.redisClient.Delete(ctx, otpKey(challengeID)); err != nil {
		return fmt.Errorf("failed to delete otp: %w", err)
	}
	return nil
}
