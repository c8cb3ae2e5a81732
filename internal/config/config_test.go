package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_Defaults(t *testing.T) {
	clearTestEnvVars(t)

	cfg, err := Initialize()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.NotEmpty(t, cfg.Data.File)
	assert.Equal(t, 7, cfg.Ledger.DefaultRepaymentDays)
	assert.Equal(t, 60, cfg.Reminder.IntervalSeconds)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, 60*time.Second, cfg.ReminderInterval())
}

func TestInitialize_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)

	t.Setenv("TALLY_LOG_LEVEL", "debug")
	t.Setenv("TALLY_LOG_FORMAT", "json")
	t.Setenv("TALLY_DATA_FILE", "/tmp/test-ledger.yaml")
	t.Setenv("TALLY_LEDGER_DEFAULT_REPAYMENT_DAYS", "14")
	t.Setenv("TALLY_REMINDER_INTERVAL_SECONDS", "5")

	cfg, err := Initialize()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/tmp/test-ledger.yaml", cfg.Data.File)
	assert.Equal(t, 14, cfg.Ledger.DefaultRepaymentDays)
	assert.Equal(t, 5*time.Second, cfg.ReminderInterval())
}

func clearTestEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TALLY_LOG_LEVEL",
		"TALLY_LOG_FORMAT",
		"TALLY_DATA_FILE",
		"TALLY_LEDGER_DEFAULT_REPAYMENT_DAYS",
		"TALLY_REMINDER_INTERVAL_SECONDS",
		"TALLY_CSV_DELIMITER",
	} {
		if value, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, value) })
			os.Unsetenv(key)
		}
	}
}
