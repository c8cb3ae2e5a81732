package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"tallybook/internal/dateutils"
	"tallybook/internal/ledgererror"
	"tallybook/internal/logging"
	"tallybook/internal/models"
)

// RecordPayment appends a payment to the customer's ledger and allocates it
// across outstanding debts oldest first. An audit history entry is written,
// LastPaymentAt and UpdatedAt are refreshed.
//
// Any payment amount beyond the customer's total outstanding is silently
// absorbed rather than carried as credit, matching how the ledger has
// always behaved.
func (e *Engine) RecordPayment(s *models.Snapshot, customerID string, amount decimal.Decimal, date time.Time, note string) (*models.Payment, error) {
	if !amount.IsPositive() {
		return nil, &ledgererror.InvalidAmountError{Operation: "record payment", Amount: amount.String()}
	}
	c, err := e.FindCustomer(s, customerID)
	if err != nil {
		return nil, err
	}

	date = dateutils.Midnight(date)
	payment := models.NewPayment(amount, date, note)
	c.Payments = append(c.Payments, payment)

	e.allocate(c, payment.Amount)

	c.History = append(c.History, models.NewHistoryEntry(models.EntryPayment, amount, date, note))
	c.LastPaymentAt = date
	c.Touch(e.clock())

	e.log.Info("payment recorded",
		logging.F(logging.FieldCustomerID, c.ID),
		logging.F(logging.FieldPaymentID, payment.ID),
		logging.F(logging.FieldAmount, models.FormatAmount(payment.Amount)))
	return payment, nil
}

// allocate walks the customer's debts oldest first (stable on ties) and
// applies the payment to each outstanding debt in turn, rounding to two
// decimals after every step, until the payment is exhausted. Debts that end
// up settled get their reminder latches cleared.
func (e *Engine) allocate(c *models.Customer, amount decimal.Decimal) {
	remaining := models.Round2(amount)
	for _, debt := range debtsByDateAsc(c) {
		if !remaining.IsPositive() {
			break
		}
		outstanding := debt.Outstanding()
		if !outstanding.IsPositive() {
			continue
		}
		applied := decimal.Min(outstanding, remaining)
		debt.PaidAmount = models.Round2(debt.PaidAmount.Add(applied))
		remaining = models.Round2(remaining.Sub(applied))
	}

	for _, debt := range c.Debts {
		if debt.Settled() {
			debt.Reminders = models.ReminderFlags{}
		}
	}
}

// CustomerBalance returns the sum of all the customer's outstanding debt
// amounts, rounded to two decimals. Pure query.
func CustomerBalance(c *models.Customer) decimal.Decimal {
	total := decimal.Zero
	for _, debt := range c.Debts {
		total = total.Add(debt.Outstanding())
	}
	return models.Round2(total)
}

// DueInfo describes a customer's repayment situation.
type DueInfo struct {
	Status models.DueStatus
	// NextDueDate is the earliest due date among outstanding debts, nil
	// when the customer is settled.
	NextDueDate *time.Time
	// DaysLeft is the calendar-day distance from today to NextDueDate;
	// negative when overdue. Zero and meaningless when settled.
	DaysLeft int
}

// CustomerDueInfo classifies the customer against today's date. The debt
// with the earliest due date among those still outstanding decides the
// status; ties go to the first debt in storage order. Pure query.
func CustomerDueInfo(c *models.Customer, today time.Time) DueInfo {
	var next *models.Debt
	for _, debt := range c.Debts {
		if !debt.Outstanding().IsPositive() {
			continue
		}
		if next == nil || dateutils.CompareDates(debt.DueDate, next.DueDate) < 0 {
			next = debt
		}
	}
	if next == nil {
		return DueInfo{Status: models.StatusSettled}
	}

	daysLeft := dateutils.DaysUntil(today, next.DueDate)
	status := models.StatusOnTrack
	switch {
	case daysLeft < 0:
		status = models.StatusOverdue
	case daysLeft <= 2:
		status = models.StatusDueSoon
	}
	due := dateutils.Midnight(next.DueDate)
	return DueInfo{Status: status, NextDueDate: &due, DaysLeft: daysLeft}
}

// HistoryByDateDesc returns the customer's audit trail in display order:
// newest entry date first. The stored log itself is never reordered; the
// stable sort keeps same-day entries in insertion order.
func HistoryByDateDesc(c *models.Customer) []models.HistoryEntry {
	sorted := make([]models.HistoryEntry, len(c.History))
	copy(sorted, c.History)
	sort.SliceStable(sorted, func(i, j int) bool {
		return dateutils.CompareDates(sorted[i].Date, sorted[j].Date) > 0
	})
	return sorted
}
