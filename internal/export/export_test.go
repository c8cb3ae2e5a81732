package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tallybook/internal/logging"
	"tallybook/internal/models"
)

func TestWriteHistoryCSV(t *testing.T) {
	now := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)
	c := models.NewCustomer("Asha", "0712", "", 7, now)
	c.History = append(c.History,
		models.NewHistoryEntry(models.EntryDebt, decimal.RequireFromString("50"), now, "flour"),
		models.NewHistoryEntry(models.EntryPayment, decimal.RequireFromString("20"), now.AddDate(0, 0, 3), "part payment"),
	)

	path := filepath.Join(t.TempDir(), "history.csv")
	ex := New(",", &logging.MockLogger{}, func() time.Time { return now })
	require.NoError(t, ex.WriteHistoryCSV(c, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Customer,Type,Amount,Date,Description", lines[0])
	assert.Contains(t, lines[1], "payment", "newest entry first")
	assert.Contains(t, lines[1], "20.00")
	assert.Contains(t, lines[2], "debt")
}

func TestWriteCustomersCSV_CustomDelimiter(t *testing.T) {
	now := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local)
	s := models.NewSnapshot()
	c := models.NewCustomer("Asha", "0712", "", 7, now)
	c.Debts = append(c.Debts, models.NewDebt(decimal.RequireFromString("80"), now, now.AddDate(0, 0, 1), ""))
	s.Customers = append(s.Customers, c)

	path := filepath.Join(t.TempDir(), "customers.csv")
	ex := New(";", &logging.MockLogger{}, func() time.Time { return now })
	require.NoError(t, ex.WriteCustomersCSV(s, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Name;Phone;Balance")
	assert.Contains(t, lines[1], "Asha;0712;80.00;dueSoon")
}
