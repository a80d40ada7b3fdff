package gateway

import (
	httpclient "github.com/piresc/transferflow/internal/pkg/http"
)

// Publisher sends JSON events to a NATS subject
type Publisher interface {
	PublishJSON(subject string, v interface{}) error
}

// PaymentGW implements payment.PaymentGW over the core-banking HTTP API and NATS
type PaymentGW struct {
	coreBanking *httpclient.Client
	publisher   Publisher
}

// NewPaymentGW creates a new payment gateway
func NewPaymentGW(coreBanking *httpclient.Client, publisher Publisher) *PaymentGW {
	return &PaymentGW{
		coreBanking: coreBanking,
		publisher:   publisher,
	}
}
