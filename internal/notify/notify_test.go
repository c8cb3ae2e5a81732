package notify

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewConsoleNotifier(&buf)

	require.NoError(t, n.Notify("Payment due today", "Asha owes 50.00"))
	assert.Equal(t, "[reminder] Payment due today: Asha owes 50.00\n", buf.String())
}

func TestMockNotifier_RecordsAndFails(t *testing.T) {
	m := &MockNotifier{Err: assert.AnError}

	err := m.Notify("title", "body")

	assert.Error(t, err)
	require.Len(t, m.Notifications, 1, "delivery is recorded even when it fails")
	assert.Equal(t, "title", m.Notifications[0].Title)
}
