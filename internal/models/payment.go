package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment records money received from a customer. Payments are immutable
// once created; the allocation across debts lives on the debts themselves.
type Payment struct {
	ID     string          `json:"id" yaml:"id"`
	Amount decimal.Decimal `json:"amount" yaml:"amount"`
	Date   time.Time       `json:"date" yaml:"date"`
	Note   string          `json:"note,omitempty" yaml:"note,omitempty"`
}

// NewPayment creates a payment record. Amount validation happens in the
// ledger engine before this is called.
func NewPayment(amount decimal.Decimal, date time.Time, note string) *Payment {
	return &Payment{
		ID:     uuid.NewString(),
		Amount: Round2(amount),
		Date:   date,
		Note:   note,
	}
}
