// Package ledgererror defines the typed errors the ledger engine and
// reminder loop return. Engine operations validate before touching state,
// so any of these errors implies zero mutation took place.
package ledgererror

import "fmt"

// InvalidAmountError is returned when a debt or payment is created with an
// amount that is not strictly positive.
type InvalidAmountError struct {
	Operation string
	Amount    string
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("%s: amount must be greater than zero, got %s", e.Operation, e.Amount)
}

// CustomerNotFoundError is returned when a referenced customer id does not
// exist in the current snapshot.
type CustomerNotFoundError struct {
	ID string
}

func (e *CustomerNotFoundError) Error() string {
	return fmt.Sprintf("customer not found: %s", e.ID)
}

// TaskNotFoundError is returned when a referenced task id does not exist in
// the current snapshot.
type TaskNotFoundError struct {
	ID string
}

func (e *TaskNotFoundError) Error() string {
	return fmt.Sprintf("task not found: %s", e.ID)
}

// NotificationError wraps a failure to deliver a notification. It is only
// ever logged: reminder emission is best-effort and a delivery failure
// never blocks latch updates or persistence.
type NotificationError struct {
	Title string
	Err   error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("notification '%s' failed: %v", e.Title, e.Err)
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}
