// Package notify abstracts notification delivery. The reminder loop emits
// through a Notifier; delivery is best-effort and a failing notifier never
// affects latch updates or persistence.
package notify

import (
	"fmt"
	"io"
	"os"
)

// Notifier delivers a single notification to the user.
type Notifier interface {
	Notify(title, body string) error
}

// ConsoleNotifier writes notifications to a terminal stream.
type ConsoleNotifier struct {
	out io.Writer
}

// NewConsoleNotifier creates a notifier writing to w, or stdout when w is
// nil.
func NewConsoleNotifier(w io.Writer) *ConsoleNotifier {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleNotifier{out: w}
}

// Notify prints the notification.
func (n *ConsoleNotifier) Notify(title, body string) error {
	_, err := fmt.Fprintf(n.out, "[reminder] %s: %s\n", title, body)
	return err
}
