package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReminderFlags are one-way latches per notification condition. Once a flag
// is set, no repeat notification fires for that condition until the debt is
// settled, which clears both flags.
type ReminderFlags struct {
	DueToday bool `json:"due_today" yaml:"due_today"`
	Overdue  bool `json:"overdue" yaml:"overdue"`
}

// Debt is a single amount a customer owes. PaidAmount grows monotonically
// from zero toward Amount as payments are allocated; it never exceeds Amount.
type Debt struct {
	ID          string          `json:"id" yaml:"id"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
	PaidAmount  decimal.Decimal `json:"paid_amount" yaml:"paid_amount"`
	Date        time.Time       `json:"date" yaml:"date"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	DueDate     time.Time       `json:"due_date" yaml:"due_date"`
	Reminders   ReminderFlags   `json:"reminders" yaml:"reminders"`
}

// NewDebt creates a debt dated at date with the given due date and nothing
// paid yet. Amount validation happens in the ledger engine before this is
// called.
func NewDebt(amount decimal.Decimal, date, dueDate time.Time, description string) *Debt {
	return &Debt{
		ID:          uuid.NewString(),
		Amount:      Round2(amount),
		PaidAmount:  decimal.Zero,
		Date:        date,
		Description: description,
		DueDate:     dueDate,
	}
}

// Outstanding returns the unpaid remainder, rounded to two decimals and
// floored at zero.
func (d *Debt) Outstanding() decimal.Decimal {
	return ClampNonNegative(Round2(d.Amount.Sub(d.PaidAmount)))
}

// Settled reports whether nothing remains outstanding on this debt.
func (d *Debt) Settled() bool {
	return !d.Outstanding().IsPositive()
}
