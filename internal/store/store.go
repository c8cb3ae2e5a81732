// Package store persists the full ledger snapshot to a local YAML file.
// Writes go through a temp file plus rename so the caller never observes a
// partially written state tree.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"tallybook/internal/fileutils"
	"tallybook/internal/logging"
	"tallybook/internal/models"
)

// Store loads and saves the application state tree.
type Store interface {
	Load() (*models.Snapshot, error)
	Save(s *models.Snapshot) error
}

// SnapshotStore is the file-backed Store implementation.
type SnapshotStore struct {
	path string
	log  logging.Logger
}

// NewSnapshotStore creates a store writing to path.
func NewSnapshotStore(path string, log logging.Logger) *SnapshotStore {
	return &SnapshotStore{path: path, log: log}
}

// Path returns the backing file path.
func (st *SnapshotStore) Path() string {
	return st.path
}

// Load reads the snapshot from disk. A missing file is not an error: it
// yields an empty snapshot, the state of a freshly installed app.
func (st *SnapshotStore) Load() (*models.Snapshot, error) {
	data, err := os.ReadFile(st.path)
	if err != nil {
		if os.IsNotExist(err) {
			st.log.Debug("no snapshot file yet, starting empty",
				logging.F(logging.FieldFile, st.path))
			return models.NewSnapshot(), nil
		}
		return nil, fmt.Errorf("error reading snapshot file %s: %w", st.path, err)
	}

	snapshot := models.NewSnapshot()
	if err := yaml.Unmarshal(data, snapshot); err != nil {
		return nil, fmt.Errorf("error parsing snapshot file %s: %w", st.path, err)
	}
	if snapshot.Customers == nil {
		snapshot.Customers = []*models.Customer{}
	}
	if snapshot.Tasks == nil {
		snapshot.Tasks = []*models.Task{}
	}
	return snapshot, nil
}

// Save writes the snapshot atomically: marshal, write to a temp file in the
// same directory, then rename over the target.
func (st *SnapshotStore) Save(s *models.Snapshot) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("error marshaling snapshot: %w", err)
	}

	dir := filepath.Dir(st.path)
	if err := fileutils.EnsureDirectoryExists(dir); err != nil {
		return fmt.Errorf("error creating data directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".tallybook-*.yaml")
	if err != nil {
		return fmt.Errorf("error creating temp snapshot file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing temp snapshot file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error closing temp snapshot file: %w", err)
	}
	if err := os.Rename(tmpName, st.path); err != nil {
		return fmt.Errorf("error replacing snapshot file %s: %w", st.path, err)
	}

	st.log.Debug("snapshot saved",
		logging.F(logging.FieldFile, st.path),
		logging.F(logging.FieldCount, len(s.Customers)))
	return nil
}
