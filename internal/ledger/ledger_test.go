package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tallybook/internal/ledgererror"
	"tallybook/internal/logging"
	"tallybook/internal/models"
)

var fixedNow = time.Date(2024, time.January, 10, 9, 0, 0, 0, time.Local)

func newTestEngine() (*Engine, *logging.MockLogger) {
	mock := &logging.MockLogger{}
	return New(mock, func() time.Time { return fixedNow }), mock
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func amt(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAddCustomer(t *testing.T) {
	e, _ := newTestEngine()
	s := models.NewSnapshot()

	c := e.AddCustomer(s, "Asha", "0712345678", "", 0, 7)

	require.Len(t, s.Customers, 1)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, 7, c.RepaymentDays, "non-positive repayment days falls back to default")
	assert.Equal(t, fixedNow, c.CreatedAt)
	assert.Empty(t, c.Debts)
}

func TestRecordDebt(t *testing.T) {
	e, _ := newTestEngine()
	s := models.NewSnapshot()
	c := e.AddCustomer(s, "Asha", "", "", 14, 7)

	debt, err := e.RecordDebt(s, c.ID, amt("250.50"), date(2024, time.January, 28), "rice and oil", 5)
	require.NoError(t, err)

	assert.Equal(t, "2024-02-02", debt.DueDate.Format("2006-01-02"), "due date rolls over the month boundary")
	assert.True(t, debt.PaidAmount.IsZero())
	require.Len(t, c.History, 1)
	assert.Equal(t, models.EntryDebt, c.History[0].Type)
	assert.Equal(t, fixedNow, c.UpdatedAt)
}

func TestRecordDebt_DefaultRepaymentDays(t *testing.T) {
	e, _ := newTestEngine()
	s := models.NewSnapshot()
	c := e.AddCustomer(s, "Asha", "", "", 14, 7)

	debt, err := e.RecordDebt(s, c.ID, amt("10"), date(2024, time.January, 1), "", 0)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", debt.DueDate.Format("2006-01-02"), "falls back to the customer's window")
}

func TestRecordDebt_InvalidAmount(t *testing.T) {
	e, _ := newTestEngine()
	s := models.NewSnapshot()
	c := e.AddCustomer(s, "Asha", "", "", 7, 7)

	tests := []struct {
		name   string
		amount decimal.Decimal
	}{
		{"zero", decimal.Zero},
		{"negative", amt("-5")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.RecordDebt(s, c.ID, tc.amount, date(2024, time.January, 1), "", 7)

			var invalid *ledgererror.InvalidAmountError
			require.ErrorAs(t, err, &invalid)
			assert.Empty(t, c.Debts, "rejected mutation must not touch state")
			assert.Empty(t, c.History)
		})
	}
}

func TestRecordDebt_CustomerNotFound(t *testing.T) {
	e, _ := newTestEngine()
	s := models.NewSnapshot()

	_, err := e.RecordDebt(s, "no-such-id", amt("10"), date(2024, time.January, 1), "", 7)

	var notFound *ledgererror.CustomerNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "no-such-id", notFound.ID)
}

func TestRecordPayment_AllocationOrder(t *testing.T) {
	e, _ := newTestEngine()
	s := models.NewSnapshot()
	c := e.AddCustomer(s, "Asha", "", "", 7, 7)

	d1, err := e.RecordDebt(s, c.ID, amt("100"), date(2024, time.January, 1), "", 30)
	require.NoError(t, err)
	d2, err := e.RecordDebt(s, c.ID, amt("50"), date(2024, time.January, 5), "", 30)
	require.NoError(t, err)

	_, err = e.RecordPayment(s, c.ID, amt("120"), date(2024, time.January, 10), "")
	require.NoError(t, err)

	assert.True(t, d1.Outstanding().IsZero(), "oldest debt paid off first")
	assert.Equal(t, "30.00", models.FormatAmount(d2.Outstanding()))
	assert.Equal(t, "30.00", models.FormatAmount(CustomerBalance(c)))
	assert.Equal(t, date(2024, time.January, 10), c.LastPaymentAt)
}

func TestRecordPayment_InsertionOrderNotAllocationOrder(t *testing.T) {
	e, _ := newTestEngine()
	s := models.NewSnapshot()
	c := e.AddCustomer(s, "Asha", "", "", 7, 7)

	// Newer debt recorded first: allocation must still hit the older one.
	newer, err := e.RecordDebt(s, c.ID, amt("40"), date(2024, time.March, 1), "", 7)
	require.NoError(t, err)
	older, err := e.RecordDebt(s, c.ID, amt("40"), date(2024, time.February, 1), "", 7)
	require.NoError(t, err)

	_, err = e.RecordPayment(s, c.ID, amt("40"), date(2024, time.March, 5), "")
	require.NoError(t, err)

	assert.True(t, older.Outstanding().IsZero())
	assert.Equal(t, "40.00", models.FormatAmount(newer.Outstanding()))
}

func TestRecordPayment_OverflowSilentlyAbsorbed(t *testing.T) {
	e, _ := newTestEngine()
	s := models.NewSnapshot()
	c := e.AddCustomer(s, "Asha", "", "", 7, 7)

	debt, err := e.RecordDebt(s, c.ID, amt("30"), date(2024, time.January, 1), "", 7)
	require.NoError(t, err)

	_, err = e.RecordPayment(s, c.ID, amt("100"), date(2024, time.January, 2), "")
	require.NoError(t, err)

	assert.True(t, debt.Outstanding().IsZero())
	assert.True(t, CustomerBalance(c).IsZero(), "no credit balance is carried")
	assert.Equal(t, "30.00", models.FormatAmount(debt.PaidAmount), "paid amount never exceeds the debt amount")
}

func TestRecordPayment_IdempotentRejection(t *testing.T) {
	e, _ := newTestEngine()
	s := models.NewSnapshot()
	c := e.AddCustomer(s, "Asha", "", "", 7, 7)
	_, err := e.RecordDebt(s, c.ID, amt("50"), date(2024, time.January, 1), "", 7)
	require.NoError(t, err)

	_, err = e.RecordPayment(s, c.ID, amt("-5"), date(2024, time.January, 2), "")

	var invalid *ledgererror.InvalidAmountError
	require.ErrorAs(t, err, &invalid)
	assert.Len(t, c.Debts, 1)
	assert.Empty(t, c.Payments)
	assert.Len(t, c.History, 1, "only the debt entry remains")
	assert.True(t, c.LastPaymentAt.IsZero())
}

func TestRecordPayment_RoundingAcrossManyDebts(t *testing.T) {
	e, _ := newTestEngine()
	s := models.NewSnapshot()
	c := e.AddCustomer(s, "Asha", "", "", 7, 7)

	// Amounts chosen to drift under float arithmetic.
	for i := 0; i < 10; i++ {
		_, err := e.RecordDebt(s, c.ID, amt("0.10"), date(2024, time.January, 1+i), "", 30)
		require.NoError(t, err)
	}

	_, err := e.RecordPayment(s, c.ID, amt("0.30"), date(2024, time.January, 20), "")
	require.NoError(t, err)

	assert.Equal(t, "0.70", models.FormatAmount(CustomerBalance(c)))
}

func TestRecordPayment_SettlementClearsReminderFlags(t *testing.T) {
	e, _ := newTestEngine()
	s := models.NewSnapshot()
	c := e.AddCustomer(s, "Asha", "", "", 7, 7)

	debt, err := e.RecordDebt(s, c.ID, amt("20"), date(2024, time.January, 1), "", 7)
	require.NoError(t, err)
	debt.Reminders = models.ReminderFlags{DueToday: true, Overdue: true}

	// Partial payment leaves the latches alone.
	_, err = e.RecordPayment(s, c.ID, amt("5"), date(2024, time.January, 2), "")
	require.NoError(t, err)
	assert.True(t, debt.Reminders.Overdue)

	// Settling the debt clears both.
	_, err = e.RecordPayment(s, c.ID, amt("15"), date(2024, time.January, 3), "")
	require.NoError(t, err)
	assert.False(t, debt.Reminders.DueToday)
	assert.False(t, debt.Reminders.Overdue)
}

func TestCustomerBalance_MatchesSumOfOutstanding(t *testing.T) {
	e, _ := newTestEngine()
	s := models.NewSnapshot()
	c := e.AddCustomer(s, "Asha", "", "", 7, 7)

	_, err := e.RecordDebt(s, c.ID, amt("12.34"), date(2024, time.January, 1), "", 7)
	require.NoError(t, err)
	_, err = e.RecordDebt(s, c.ID, amt("56.78"), date(2024, time.January, 2), "", 7)
	require.NoError(t, err)
	_, err = e.RecordPayment(s, c.ID, amt("10"), date(2024, time.January, 3), "")
	require.NoError(t, err)

	sum := decimal.Zero
	for _, d := range c.Debts {
		sum = sum.Add(d.Outstanding())
	}
	assert.True(t, CustomerBalance(c).Equal(models.Round2(sum)))
}

func TestCustomerDueInfo(t *testing.T) {
	today := date(2024, time.June, 10)

	tests := []struct {
		name           string
		dueDate        time.Time
		expectedStatus models.DueStatus
		expectedDays   int
	}{
		{"due yesterday is overdue", date(2024, time.June, 9), models.StatusOverdue, -1},
		{"due exactly today is due soon", date(2024, time.June, 10), models.StatusDueSoon, 0},
		{"due in two days is due soon", date(2024, time.June, 12), models.StatusDueSoon, 2},
		{"due in three days is on track", date(2024, time.June, 13), models.StatusOnTrack, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := models.NewCustomer("Asha", "", "", 7, today)
			debt := models.NewDebt(amt("10"), date(2024, time.June, 1), tc.dueDate, "")
			c.Debts = append(c.Debts, debt)

			info := CustomerDueInfo(c, today)
			assert.Equal(t, tc.expectedStatus, info.Status)
			assert.Equal(t, tc.expectedDays, info.DaysLeft)
			require.NotNil(t, info.NextDueDate)
			assert.Equal(t, tc.dueDate, *info.NextDueDate)
		})
	}
}

func TestCustomerDueInfo_Settled(t *testing.T) {
	c := models.NewCustomer("Asha", "", "", 7, fixedNow)
	debt := models.NewDebt(amt("10"), date(2024, time.June, 1), date(2024, time.June, 8), "")
	debt.PaidAmount = debt.Amount
	c.Debts = append(c.Debts, debt)

	info := CustomerDueInfo(c, fixedNow)
	assert.Equal(t, models.StatusSettled, info.Status)
	assert.Nil(t, info.NextDueDate)
}

func TestCustomerDueInfo_PicksEarliestOutstandingDueDate(t *testing.T) {
	today := date(2024, time.June, 10)
	c := models.NewCustomer("Asha", "", "", 7, today)

	settled := models.NewDebt(amt("10"), date(2024, time.May, 1), date(2024, time.May, 8), "")
	settled.PaidAmount = settled.Amount
	open1 := models.NewDebt(amt("10"), date(2024, time.June, 1), date(2024, time.June, 20), "")
	open2 := models.NewDebt(amt("10"), date(2024, time.June, 2), date(2024, time.June, 15), "")
	c.Debts = append(c.Debts, settled, open1, open2)

	info := CustomerDueInfo(c, today)
	require.NotNil(t, info.NextDueDate)
	assert.Equal(t, date(2024, time.June, 15), *info.NextDueDate, "settled debts are skipped, earliest open due date wins")
}

func TestHistoryByDateDesc(t *testing.T) {
	e, _ := newTestEngine()
	s := models.NewSnapshot()
	c := e.AddCustomer(s, "Asha", "", "", 7, 7)

	_, err := e.RecordDebt(s, c.ID, amt("10"), date(2024, time.January, 5), "first", 7)
	require.NoError(t, err)
	_, err = e.RecordDebt(s, c.ID, amt("20"), date(2024, time.January, 1), "second", 7)
	require.NoError(t, err)
	_, err = e.RecordPayment(s, c.ID, amt("5"), date(2024, time.January, 5), "third")
	require.NoError(t, err)

	entries := HistoryByDateDesc(c)
	require.Len(t, entries, 3)
	assert.Equal(t, "first", entries[0].Description, "same-day entries keep insertion order")
	assert.Equal(t, "third", entries[1].Description)
	assert.Equal(t, "second", entries[2].Description)

	// The stored log itself is untouched.
	assert.Equal(t, "first", c.History[0].Description)
}

func TestDeleteCustomer(t *testing.T) {
	e, _ := newTestEngine()
	s := models.NewSnapshot()
	c := e.AddCustomer(s, "Asha", "", "", 7, 7)
	e.AddCustomer(s, "Binti", "", "", 7, 7)

	require.NoError(t, e.DeleteCustomer(s, c.ID))
	assert.Len(t, s.Customers, 1)
	assert.Equal(t, "Binti", s.Customers[0].Name)

	var notFound *ledgererror.CustomerNotFoundError
	assert.ErrorAs(t, e.DeleteCustomer(s, c.ID), &notFound)
}

func TestSearchCustomers(t *testing.T) {
	e, _ := newTestEngine()
	s := models.NewSnapshot()
	e.AddCustomer(s, "Asha Omar", "0712", "", 7, 7)
	e.AddCustomer(s, "Binti Juma", "0733", "", 7, 7)

	assert.Len(t, SearchCustomers(s, "asha"), 1)
	assert.Len(t, SearchCustomers(s, "0733"), 1)
	assert.Len(t, SearchCustomers(s, ""), 2)
	assert.Empty(t, SearchCustomers(s, "zzz"))
}
