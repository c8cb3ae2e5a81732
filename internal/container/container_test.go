package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tallybook/internal/config"
	"tallybook/internal/store"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Log.Level = "error"
	cfg.Log.Format = "text"
	cfg.Data.File = "/tmp/tallybook-test.yaml"
	cfg.Ledger.DefaultRepaymentDays = 7
	cfg.Reminder.IntervalSeconds = 60
	cfg.CSV.Delimiter = ","
	return cfg
}

func TestNew_WiresEverything(t *testing.T) {
	c, err := New(testConfig())
	require.NoError(t, err)

	assert.NotNil(t, c.Logger())
	assert.NotNil(t, c.Store())
	assert.NotNil(t, c.Engine())
	assert.NotNil(t, c.Scanner())
	assert.NotNil(t, c.Loop())
	assert.NotNil(t, c.Exporter())
}

func TestNew_NilConfig(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}

func TestNew_WithStoreOverride(t *testing.T) {
	mock := &store.MockStore{}
	c, err := New(testConfig(), WithStore(mock))
	require.NoError(t, err)
	assert.Same(t, mock, c.Store().(*store.MockStore))
}
