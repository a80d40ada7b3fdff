package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/transferflow/internal/pkg/constants"
	"github.com/piresc/transferflow/internal/pkg/logger"
	"github.com/piresc/transferflow/internal/pkg/models"
)

// Producer publishes JSON messages on an NSQ topic
type Producer interface {
	Publish(topic string, message interface{}) error
}

// OTPGW queues OTP deliveries for the mail and SMS senders
type OTPGW struct {
	producer Producer
}

// NewOTPGW creates a new OTP gateway
func NewOTPGW(producer Producer) *OTPGW {
	return &OTPGW{producer: producer}
}

// DeliverOTP queues delivery on the otp_delivery topic
func (g *OTPGW) DeliverOTP(ctx context.Context, delivery *models.OTPDelivery) error {
	if err := g.producer.Publish(constants.TopicOTPDelivery, delivery); err != nil {
		return fmt.Errorf("failed to queue otp delivery: %w", err)
	}
	logger.DebugCtx(ctx, "Queued OTP delivery",
		logger.String("challenge_id", delivery.ChallengeID),
		logger.String("channel", delivery.Channel))
	return nil
}
