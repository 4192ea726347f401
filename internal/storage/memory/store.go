package memory

import (
	"fmt"
	"slices"

	"github.com/tiwariParth/todo-repl/internal/models"
	"github.com/tiwariParth/todo-repl/internal/storage"
)

// MemoryStore implements the storage.Storage interface using in-memory storage.
// It keeps a copy of the last saved collection and never touches disk.
type MemoryStore struct {
	tasks   []models.Task
	exists  bool
	saves   int
	saveErr error
	loadErr error
}

var _ storage.Storage = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store that reports ErrNotExist until
// the first Save.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewMemoryStoreWith creates a store that already holds tasks.
func NewMemoryStoreWith(tasks []models.Task) *MemoryStore {
	return &MemoryStore{
		tasks:  slices.Clone(tasks),
		exists: true,
	}
}

// Load returns a copy of the stored tasks.
func (m *MemoryStore) Load() ([]models.Task, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if !m.exists {
		return nil, fmt.Errorf("memory: %w", storage.ErrNotExist)
	}
	return slices.Clone(m.tasks), nil
}

// Save replaces the stored tasks, unless a save error has been injected.
func (m *MemoryStore) Save(tasks []models.Task) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.tasks = slices.Clone(tasks)
	m.exists = true
	m.saves++
	return nil
}

// FailSaves makes every following Save return err. Pass nil to recover.
func (m *MemoryStore) FailSaves(err error) {
	m.saveErr = err
}

// FailLoads makes every following Load return err.
func (m *MemoryStore) FailLoads(err error) {
	m.loadErr = err
}

// Tasks returns a copy of what was last saved.
func (m *MemoryStore) Tasks() []models.Task {
	return slices.Clone(m.tasks)
}

// Saves reports how many saves succeeded.
func (m *MemoryStore) Saves() int {
	return m.saves
}
