// Package schedule builds day-indexed agenda views over the ledger state:
// which tasks and debt due dates land on a given day, and which days of a
// calendar month carry anything at all. The ledger snapshot is the source
// of truth; this package only queries it.
package schedule

import (
	"sort"
	"time"

	"tallybook/internal/dateutils"
	"tallybook/internal/models"
)

// ItemKind distinguishes agenda entries.
type ItemKind string

const (
	// KindTask is a user-created task due that day.
	KindTask ItemKind = "task"
	// KindDebtReminder is a synthetic entry for a customer debt falling
	// due that day. It is read-only in any view: there is nothing to
	// check off, payment settles it.
	KindDebtReminder ItemKind = "debtReminder"
)

// AgendaItem is one entry of a per-day agenda.
type AgendaItem struct {
	Kind ItemKind
	Date time.Time

	// Task is set when Kind is KindTask.
	Task *models.Task

	// Customer and Debt are set when Kind is KindDebtReminder.
	Customer *models.Customer
	Debt     *models.Debt
}

// ItemsForDate returns the agenda for a single day: first every task due
// that day, undone-and-oldest first, then a debt reminder for every
// outstanding debt due that day, in the order customers and debts are
// stored.
func ItemsForDate(s *models.Snapshot, date time.Time) []AgendaItem {
	date = dateutils.Midnight(date)

	var tasks []*models.Task
	for _, task := range s.Tasks {
		if dateutils.SameDay(task.DueDate, date) {
			tasks = append(tasks, task)
		}
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Done != tasks[j].Done {
			return !tasks[i].Done
		}
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})

	var items []AgendaItem
	for _, task := range tasks {
		items = append(items, AgendaItem{Kind: KindTask, Date: date, Task: task})
	}
	for _, c := range s.Customers {
		for _, debt := range c.Debts {
			if debt.Outstanding().IsPositive() && dateutils.SameDay(debt.DueDate, date) {
				items = append(items, AgendaItem{Kind: KindDebtReminder, Date: date, Customer: c, Debt: debt})
			}
		}
	}
	return items
}

// ItemsByDateForMonth indexes everything due in a calendar month by ISO
// date. Calendar views use it to decide which day cells get an indicator.
// Month membership is an ISO-prefix match on the normalized due date, so an
// item due on the last day of the month stays in that month.
func ItemsByDateForMonth(s *models.Snapshot, year int, month time.Month) map[string][]AgendaItem {
	index := make(map[string][]AgendaItem)
	add := func(day time.Time, item AgendaItem) {
		key := dateutils.ToISODate(dateutils.Midnight(day))
		index[key] = append(index[key], item)
	}

	for _, task := range s.Tasks {
		if dateutils.InMonth(task.DueDate, year, month) {
			add(task.DueDate, AgendaItem{Kind: KindTask, Date: dateutils.Midnight(task.DueDate), Task: task})
		}
	}
	for _, c := range s.Customers {
		for _, debt := range c.Debts {
			if debt.Outstanding().IsPositive() && dateutils.InMonth(debt.DueDate, year, month) {
				add(debt.DueDate, AgendaItem{Kind: KindDebtReminder, Date: dateutils.Midnight(debt.DueDate), Customer: c, Debt: debt})
			}
		}
	}
	return index
}
