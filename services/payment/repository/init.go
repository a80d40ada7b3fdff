package repository

import (
	"github.com/jmoiron/sqlx"
)

// PaymentRepo implements payment.PaymentRepo on PostgreSQL
type PaymentRepo struct {
	db *sqlx.DB
}

// NewPaymentRepo creates a new payment repository
func NewPaymentRepo(db *sqlx.DB) *PaymentRepo {
	return &PaymentRepo{db: db}
}
