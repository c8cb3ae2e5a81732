package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tallybook/internal/logging"
	"tallybook/internal/models"
)

func TestLoad_MissingFileYieldsEmptySnapshot(t *testing.T) {
	st := NewSnapshotStore(filepath.Join(t.TempDir(), "ledger.yaml"), &logging.MockLogger{})

	s, err := st.Load()
	require.NoError(t, err)
	assert.Empty(t, s.Customers)
	assert.Empty(t, s.Tasks)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "ledger.yaml")
	st := NewSnapshotStore(path, &logging.MockLogger{})

	now := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	s := models.NewSnapshot()
	c := models.NewCustomer("Asha", "0712", "", 7, now)
	debt := models.NewDebt(decimal.RequireFromString("99.95"), now, now.AddDate(0, 0, 7), "flour")
	c.Debts = append(c.Debts, debt)
	s.Customers = append(s.Customers, c)
	s.Tasks = append(s.Tasks, models.NewTask("Stocktake", "", now, "", now))

	require.NoError(t, st.Save(s))

	loaded, err := st.Load()
	require.NoError(t, err)
	require.Len(t, loaded.Customers, 1)
	assert.Equal(t, c.ID, loaded.Customers[0].ID)
	require.Len(t, loaded.Customers[0].Debts, 1)
	assert.True(t, loaded.Customers[0].Debts[0].Amount.Equal(debt.Amount))
	assert.Len(t, loaded.Tasks, 1)
}

func TestSave_LeavesNoTempFilesBehind(t *testing.T) {
	dir := t.TempDir()
	st := NewSnapshotStore(filepath.Join(dir, "ledger.yaml"), &logging.MockLogger{})

	require.NoError(t, st.Save(models.NewSnapshot()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ledger.yaml", entries[0].Name())
}

func TestLoad_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.yaml")
	require.NoError(t, os.WriteFile(path, []byte("customers: [not, a, snapshot"), 0o644))

	st := NewSnapshotStore(path, &logging.MockLogger{})
	_, err := st.Load()
	assert.Error(t, err)
}
