package store

import (
	"tallybook/internal/models"
)

// MockStore is an in-memory Store for testing.
type MockStore struct {
	Snapshot *models.Snapshot
	Saves    int

	// Error flags for testing error conditions
	LoadError error
	SaveError error
}

// Load returns the mock snapshot, or an empty one if none was set.
func (m *MockStore) Load() (*models.Snapshot, error) {
	if m.LoadError != nil {
		return nil, m.LoadError
	}
	if m.Snapshot == nil {
		return models.NewSnapshot(), nil
	}
	return m.Snapshot, nil
}

// Save stores the snapshot in memory and counts the call.
func (m *MockStore) Save(s *models.Snapshot) error {
	if m.SaveError != nil {
		return m.SaveError
	}
	m.Snapshot = s
	m.Saves++
	return nil
}
