package models

import (
	"time"

	"github.com/google/uuid"
)

// Task is a standalone to-do with a due date, independent of any customer.
// ReminderSent is a latch: it re-arms (resets to false) whenever Done
// transitions back to false, so a reopened task can notify again.
type Task struct {
	ID           string    `json:"id" yaml:"id"`
	Name         string    `json:"name" yaml:"name"`
	Type         string    `json:"type,omitempty" yaml:"type,omitempty"`
	DueDate      time.Time `json:"due_date" yaml:"due_date"`
	Note         string    `json:"note,omitempty" yaml:"note,omitempty"`
	Done         bool      `json:"done" yaml:"done"`
	ReminderSent bool      `json:"reminder_sent" yaml:"reminder_sent"`
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
}

// NewTask creates an open task with a fresh ID.
func NewTask(name, typ string, dueDate time.Time, note string, now time.Time) *Task {
	return &Task{
		ID:        uuid.NewString(),
		Name:      name,
		Type:      typ,
		DueDate:   dueDate,
		Note:      note,
		CreatedAt: now,
	}
}
