package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLogger_CapturesEntries(t *testing.T) {
	mock := &MockLogger{}

	mock.Info("customer added", F(FieldCustomerID, "c-1"))
	mock.Warn("something odd")

	entries := mock.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "INFO", entries[0].Level)
	assert.Equal(t, "customer added", entries[0].Message)
	require.Len(t, entries[0].Fields, 1)
	assert.Equal(t, FieldCustomerID, entries[0].Fields[0].Key)
	assert.True(t, mock.HasMessage("something odd"))
}

func TestMockLogger_DerivedLoggersShareEntries(t *testing.T) {
	mock := &MockLogger{}
	err := errors.New("boom")

	mock.WithError(err).Error("delivery failed")
	mock.WithField(FieldTaskID, "t-1").Debug("task scanned")

	entries := mock.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, err, entries[0].Error)
	assert.Equal(t, FieldTaskID, entries[1].Fields[0].Key)
	assert.True(t, mock.HasMessage("delivery failed"), "entries logged through derived loggers are visible on the parent")
}
