package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/transferflow/internal/pkg/constants"
	"github.com/piresc/transferflow/internal/pkg/logger"
	"github.com/piresc/transferflow/internal/pkg/models"
)

// PublishPaymentConfirmed announces a confirmed payment on payment.confirmed
func (g *PaymentGW) PublishPaymentConfirmed(ctx context.Context, event *models.PaymentConfirmedEvent) error {
	if err := g.publisher.PublishJSON(constants.SubjectPaymentConfirmed, event); err != nil {
		return fmt.Errorf("failed to publish payment confirmed event: %w", err)
	}
	logger.InfoCtx(ctx, "Published payment confirmed event",
		logger.String("payment_id", event.PaymentID),
		logger.String("subject", constants.SubjectPaymentConfirmed))
	return nil
}
