// Package ledger implements the debt/payment engine: it owns customer
// debt, payment and history records inside a state snapshot and answers
// balance and due-status queries. Mutating operations validate their input
// before touching any state, so a rejected call has zero effect; the caller
// persists the snapshot after each successful mutation.
package ledger

import (
	"sort"
	"strings"
	"time"

	"tallybook/internal/dateutils"
	"tallybook/internal/ledgererror"
	"tallybook/internal/logging"
	"tallybook/internal/models"
)

// Clock supplies the current time. Injected so operations are testable
// without wall-clock dependency.
type Clock func() time.Time

// Engine performs all mutating ledger operations. It holds no state of its
// own: every operation receives the snapshot it acts on.
type Engine struct {
	log   logging.Logger
	clock Clock
}

// New creates an engine. A nil clock defaults to time.Now.
func New(log logging.Logger, clock Clock) *Engine {
	if clock == nil {
		clock = time.Now
	}
	return &Engine{log: log, clock: clock}
}

// AddCustomer appends a new customer to the snapshot. A non-positive
// repaymentDays falls back to defaultDays.
func (e *Engine) AddCustomer(s *models.Snapshot, name, phone, note string, repaymentDays, defaultDays int) *models.Customer {
	if repaymentDays <= 0 {
		repaymentDays = defaultDays
	}
	c := models.NewCustomer(name, phone, note, repaymentDays, e.clock())
	s.Customers = append(s.Customers, c)
	e.log.Info("customer added",
		logging.F(logging.FieldCustomerID, c.ID),
		logging.F(logging.FieldCustomer, c.Name))
	return c
}

// FindCustomer resolves a customer id against the snapshot.
func (e *Engine) FindCustomer(s *models.Snapshot, id string) (*models.Customer, error) {
	c := s.CustomerByID(id)
	if c == nil {
		return nil, &ledgererror.CustomerNotFoundError{ID: id}
	}
	return c, nil
}

// DeleteCustomer removes a customer together with all owned debts,
// payments and history entries.
func (e *Engine) DeleteCustomer(s *models.Snapshot, id string) error {
	for i, c := range s.Customers {
		if c.ID == id {
			s.Customers = append(s.Customers[:i], s.Customers[i+1:]...)
			e.log.Info("customer deleted",
				logging.F(logging.FieldCustomerID, id),
				logging.F(logging.FieldCustomer, c.Name))
			return nil
		}
	}
	return &ledgererror.CustomerNotFoundError{ID: id}
}

// SearchCustomers returns customers whose name or phone contains the query,
// case-insensitive. An empty query matches everyone.
func SearchCustomers(s *models.Snapshot, query string) []*models.Customer {
	query = strings.ToLower(strings.TrimSpace(query))
	var matches []*models.Customer
	for _, c := range s.Customers {
		if query == "" ||
			strings.Contains(strings.ToLower(c.Name), query) ||
			strings.Contains(c.Phone, query) {
			matches = append(matches, c)
		}
	}
	return matches
}

// CustomersByActivity returns customers ordered by most recent activity,
// the order the original list view used.
func CustomersByActivity(s *models.Snapshot) []*models.Customer {
	sorted := make([]*models.Customer, len(s.Customers))
	copy(sorted, s.Customers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt)
	})
	return sorted
}

// debtsByDateAsc returns the customer's debts sorted oldest first. The sort
// is stable: debts recorded the same day keep their original order.
func debtsByDateAsc(c *models.Customer) []*models.Debt {
	sorted := make([]*models.Debt, len(c.Debts))
	copy(sorted, c.Debts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return dateutils.CompareDates(sorted[i].Date, sorted[j].Date) < 0
	})
	return sorted
}
