package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryType distinguishes the two kinds of audit entries.
type EntryType string

const (
	EntryDebt    EntryType = "debt"
	EntryPayment EntryType = "payment"
)

// HistoryEntry is an append-only audit record. One entry is written per
// recorded debt or payment; entries are never mutated or deleted except by
// deleting the owning customer. Display order is by entry date descending,
// not insertion order.
type HistoryEntry struct {
	ID          string          `json:"id" yaml:"id"`
	Type        EntryType       `json:"type" yaml:"type"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
	Date        time.Time       `json:"date" yaml:"date"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
}

// NewHistoryEntry creates an audit entry for a debt or payment.
func NewHistoryEntry(typ EntryType, amount decimal.Decimal, date time.Time, description string) HistoryEntry {
	return HistoryEntry{
		ID:          uuid.NewString(),
		Type:        typ,
		Amount:      Round2(amount),
		Date:        date,
		Description: description,
	}
}
