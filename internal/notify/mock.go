package notify

// Sent is a notification captured by the mock.
type Sent struct {
	Title string
	Body  string
}

// MockNotifier records notifications for verification in tests. Setting Err
// makes every delivery fail, which tests use to verify that failures are
// swallowed.
type MockNotifier struct {
	Notifications []Sent
	Err           error
}

// Notify records the notification and returns the configured error.
func (m *MockNotifier) Notify(title, body string) error {
	m.Notifications = append(m.Notifications, Sent{Title: title, Body: body})
	return m.Err
}
