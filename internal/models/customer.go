package models

import (
	"time"

	"github.com/google/uuid"
)

// Customer is the unit of ownership in the ledger. A customer exclusively
// owns its debts, payments and history entries; deleting the customer
// removes all of them.
type Customer struct {
	ID            string         `json:"id" yaml:"id"`
	Name          string         `json:"name" yaml:"name"`
	Phone         string         `json:"phone" yaml:"phone"`
	Note          string         `json:"note,omitempty" yaml:"note,omitempty"`
	RepaymentDays int            `json:"repayment_days" yaml:"repayment_days"`
	Debts         []*Debt        `json:"debts" yaml:"debts"`
	Payments      []*Payment     `json:"payments" yaml:"payments"`
	History       []HistoryEntry `json:"history" yaml:"history"`
	LastPaymentAt time.Time      `json:"last_payment_at,omitempty" yaml:"last_payment_at,omitempty"`
	CreatedAt     time.Time      `json:"created_at" yaml:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at" yaml:"updated_at"`
}

// NewCustomer creates a customer with a fresh ID and empty ledgers.
func NewCustomer(name, phone, note string, repaymentDays int, now time.Time) *Customer {
	return &Customer{
		ID:            uuid.NewString(),
		Name:          name,
		Phone:         phone,
		Note:          note,
		RepaymentDays: repaymentDays,
		Debts:         []*Debt{},
		Payments:      []*Payment{},
		History:       []HistoryEntry{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Touch updates the customer's modification timestamp.
func (c *Customer) Touch(now time.Time) {
	c.UpdatedAt = now
}
