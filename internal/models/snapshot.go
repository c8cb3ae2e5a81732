package models

// Snapshot is the full application state tree: every customer with their
// debts, payments and history, plus all standalone tasks. The engine
// mutates a snapshot in place; the caller is responsible for persisting it
// after each mutating operation.
type Snapshot struct {
	Customers []*Customer `json:"customers" yaml:"customers"`
	Tasks     []*Task     `json:"tasks" yaml:"tasks"`
}

// NewSnapshot returns an empty state tree.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Customers: []*Customer{},
		Tasks:     []*Task{},
	}
}

// CustomerByID returns the customer with the given id, or nil.
func (s *Snapshot) CustomerByID(id string) *Customer {
	for _, c := range s.Customers {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// TaskByID returns the task with the given id, or nil.
func (s *Snapshot) TaskByID(id string) *Task {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}
