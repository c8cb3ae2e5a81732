package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"tallybook/internal/dateutils"
	"tallybook/internal/ledgererror"
	"tallybook/internal/logging"
	"tallybook/internal/models"
)

// RecordDebt appends a new debt to the customer's ledger. The due date is
// computed as date plus repaymentDays calendar days (month and year
// boundaries roll over). A non-positive repaymentDays falls back to the
// customer's own repayment window. An audit history entry is written and
// the customer's UpdatedAt is refreshed.
func (e *Engine) RecordDebt(s *models.Snapshot, customerID string, amount decimal.Decimal, date time.Time, description string, repaymentDays int) (*models.Debt, error) {
	if !amount.IsPositive() {
		return nil, &ledgererror.InvalidAmountError{Operation: "record debt", Amount: amount.String()}
	}
	c, err := e.FindCustomer(s, customerID)
	if err != nil {
		return nil, err
	}

	if repaymentDays <= 0 {
		repaymentDays = c.RepaymentDays
	}
	date = dateutils.Midnight(date)
	dueDate := dateutils.AddDays(date, repaymentDays)

	debt := models.NewDebt(amount, date, dueDate, description)
	c.Debts = append(c.Debts, debt)
	c.History = append(c.History, models.NewHistoryEntry(models.EntryDebt, amount, date, description))
	c.Touch(e.clock())

	e.log.Info("debt recorded",
		logging.F(logging.FieldCustomerID, c.ID),
		logging.F(logging.FieldDebtID, debt.ID),
		logging.F(logging.FieldAmount, models.FormatAmount(debt.Amount)),
		logging.F(logging.FieldDueDate, dateutils.ToISODate(debt.DueDate)))
	return debt, nil
}
