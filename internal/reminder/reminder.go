// Package reminder implements the periodic due-date scan. Each scan walks
// every customer's debts and every open task, emits a notification at most
// once per (debt, condition) or task, and latches a flag so the same
// condition never notifies twice. The latches are cleared elsewhere: debt
// flags when the debt is settled, task latches when the task is reopened.
package reminder

import (
	"context"
	"fmt"
	"time"

	"tallybook/internal/dateutils"
	"tallybook/internal/ledgererror"
	"tallybook/internal/logging"
	"tallybook/internal/models"
	"tallybook/internal/notify"
)

// DefaultInterval is how often the loop scans when nothing else is
// configured.
const DefaultInterval = 60 * time.Second

// Clock supplies the current time for scans.
type Clock func() time.Time

// Notification is one emitted reminder, returned to the caller for
// inspection and testing.
type Notification struct {
	Title string
	Body  string
}

// Scanner performs a single reminder pass over a snapshot.
type Scanner struct {
	notifier notify.Notifier
	log      logging.Logger
	clock    Clock
}

// NewScanner creates a scanner. A nil clock defaults to time.Now.
func NewScanner(notifier notify.Notifier, log logging.Logger, clock Clock) *Scanner {
	if clock == nil {
		clock = time.Now
	}
	return &Scanner{notifier: notifier, log: log, clock: clock}
}

// Scan walks all debts and tasks once, latching flags and emitting
// notifications. Flags are updated whether or not delivery succeeds; a
// condition counts as handled once emission was attempted. The snapshot is
// mutated (flag updates), so the caller should persist it after a scan that
// returned anything.
func (sc *Scanner) Scan(s *models.Snapshot) []Notification {
	today := dateutils.Midnight(sc.clock())
	var emitted []Notification

	for _, c := range s.Customers {
		for _, debt := range c.Debts {
			if !debt.Outstanding().IsPositive() {
				continue
			}
			daysLeft := dateutils.DaysUntil(today, debt.DueDate)
			switch {
			case daysLeft < 0 && !debt.Reminders.Overdue:
				debt.Reminders.Overdue = true
				emitted = append(emitted, sc.emit(
					"Payment overdue",
					fmt.Sprintf("%s owes %s, due date %s has passed",
						c.Name, models.FormatAmount(debt.Outstanding()), dateutils.ToISODate(debt.DueDate)),
				))
			case daysLeft == 0 && !debt.Reminders.DueToday:
				debt.Reminders.DueToday = true
				emitted = append(emitted, sc.emit(
					"Payment due today",
					fmt.Sprintf("%s owes %s, due today",
						c.Name, models.FormatAmount(debt.Outstanding())),
				))
			}
		}
	}

	for _, task := range s.Tasks {
		if task.Done || task.ReminderSent || !dateutils.SameDay(task.DueDate, today) {
			continue
		}
		task.ReminderSent = true
		emitted = append(emitted, sc.emit("Task due today", task.Name))
	}

	if len(emitted) > 0 {
		sc.log.Debug("reminder scan finished", logging.F(logging.FieldCount, len(emitted)))
	}
	return emitted
}

// emit attempts delivery and swallows failures.
func (sc *Scanner) emit(title, body string) Notification {
	if err := sc.notifier.Notify(title, body); err != nil {
		notifErr := &ledgererror.NotificationError{Title: title, Err: err}
		sc.log.WithError(notifErr).Warn("notification delivery failed")
	}
	return Notification{Title: title, Body: body}
}

// Loop drives the scanner on a fixed interval.
type Loop struct {
	scanner  *Scanner
	interval time.Duration
	log      logging.Logger
}

// NewLoop creates a reminder loop. A non-positive interval falls back to
// DefaultInterval.
func NewLoop(scanner *Scanner, interval time.Duration, log logging.Logger) *Loop {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Loop{scanner: scanner, interval: interval, log: log}
}

// Run scans immediately and then on every tick until the context is
// cancelled. Scans run synchronously: a tick never overlaps a running scan.
// After any scan that emitted something, persist is called with the mutated
// snapshot; persistence errors are logged and the loop carries on.
func (l *Loop) Run(ctx context.Context, s *models.Snapshot, persist func(*models.Snapshot) error) {
	l.log.Info("reminder loop started", logging.F("interval", l.interval.String()))

	scanAndPersist := func() {
		if emitted := l.scanner.Scan(s); len(emitted) > 0 && persist != nil {
			if err := persist(s); err != nil {
				l.log.WithError(err).Error("failed to persist reminder flags")
			}
		}
	}

	scanAndPersist()

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			l.log.Info("reminder loop stopped")
			return
		case <-ticker.C:
			scanAndPersist()
		}
	}
}
