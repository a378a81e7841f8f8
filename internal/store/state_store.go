package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"calcpad/internal/domain"
)

const stateFilename = "state.json"

// StateFileStore persists the editor snapshot to disk.
type StateFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewStateFileStore returns a StateFileStore rooted at dir.
func NewStateFileStore(dir string) *StateFileStore {
	return &StateFileStore{dir: dir}
}

// Path returns the state file location.
func (s *StateFileStore) Path() string { return filepath.Join(s.dir, stateFilename) }

// ClearState removes the stored snapshot. Removing a missing file is not an error.
func (s *StateFileStore) ClearState() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.Path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// SaveState writes snap, replacing any previous state.
func (s *StateFileStore) SaveState(snap domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	return writeJSON(s.Path(), snap, 0o600)
}

// LoadState reads the stored snapshot. ok is false when nothing was saved yet.
func (s *StateFileStore) LoadState() (snap domain.Snapshot, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.Path())
	if err != nil || b == nil {
		return domain.Snapshot{}, false, err
	}
	if err := json.Unmarshal(b, &snap); err != nil {
		return domain.Snapshot{}, false, fmt.Errorf("decode %s: %w", stateFilename, err)
	}
	return snap, true, nil
}

// Compile-time assertion that StateFileStore implements domain.StateStore.
var _ domain.StateStore = (*StateFileStore)(nil)
