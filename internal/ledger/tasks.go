package ledger

import (
	"time"

	"tallybook/internal/dateutils"
	"tallybook/internal/ledgererror"
	"tallybook/internal/logging"
	"tallybook/internal/models"
)

// CreateTask appends a standalone task to the snapshot.
func (e *Engine) CreateTask(s *models.Snapshot, name, typ string, dueDate time.Time, note string) *models.Task {
	task := models.NewTask(name, typ, dateutils.Midnight(dueDate), note, e.clock())
	s.Tasks = append(s.Tasks, task)
	e.log.Info("task created",
		logging.F(logging.FieldTaskID, task.ID),
		logging.F(logging.FieldDueDate, dateutils.ToISODate(task.DueDate)))
	return task
}

// ToggleTaskDone flips a task's done state. A task transitioning back to
// not-done re-arms its reminder latch so the next matching scan can notify
// again.
func (e *Engine) ToggleTaskDone(s *models.Snapshot, id string) (*models.Task, error) {
	task := s.TaskByID(id)
	if task == nil {
		return nil, &ledgererror.TaskNotFoundError{ID: id}
	}
	task.Done = !task.Done
	if !task.Done {
		task.ReminderSent = false
	}
	e.log.Debug("task toggled",
		logging.F(logging.FieldTaskID, task.ID),
		logging.F(logging.FieldStatus, task.Done))
	return task, nil
}

// DeleteTask removes a task from the snapshot.
func (e *Engine) DeleteTask(s *models.Snapshot, id string) error {
	for i, task := range s.Tasks {
		if task.ID == id {
			s.Tasks = append(s.Tasks[:i], s.Tasks[i+1:]...)
			e.log.Info("task deleted", logging.F(logging.FieldTaskID, id))
			return nil
		}
	}
	return &ledgererror.TaskNotFoundError{ID: id}
}
