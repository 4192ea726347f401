package task

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/tiwariParth/todo-repl/internal/models"
	"github.com/tiwariParth/todo-repl/internal/storage"
)

// Store owns the ordered task collection and the id counter, and keeps
// them in sync with its backing storage. It is not safe for concurrent use.
type Store struct {
	tasks   []models.Task
	nextID  int
	backend storage.Storage
	logger  *log.Logger
}

// Open creates a store bound to backend and loads whatever it holds.
// Load problems are logged and recovered from; Open never fails.
func Open(backend storage.Storage, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Store{
		tasks:   []models.Task{},
		nextID:  1,
		backend: backend,
		logger:  logger,
	}
	s.load()
	return s
}

// Add appends a new pending task and returns its id. A zero priority
// means DefaultPriority. When only persisting fails, the id is still
// valid and the returned error wraps ErrPersist.
func (s *Store) Add(description string, priority models.Priority) (int, error) {
	if strings.TrimSpace(description) == "" {
		return 0, ErrEmptyDescription
	}
	if priority == 0 {
		priority = models.DefaultPriority
	}
	if s.nextID == 0 {
		return 0, ErrIDsExhausted
	}

	t := models.NewTask(description, priority)
	t.ID = s.nextID
	if err := t.Validate(); err != nil {
		return 0, fmt.Errorf("invalid task: %w", err)
	}

	s.tasks = append(s.tasks, t)
	s.nextID = advance(s.nextID)
	return t.ID, s.persist()
}

// List returns tasks ordered by priority and then id. Completed tasks
// are left out unless includeCompleted is set.
func (s *Store) List(includeCompleted bool) []models.Task {
	return sortedView(s.tasks, includeCompleted)
}

// Complete marks the task with id as completed. Completing an already
// completed task succeeds.
func (s *Store) Complete(id int) error {
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("task %d: %w", id, ErrTaskNotFound)
	}
	s.tasks[i].Complete()
	return s.persist()
}

// Delete removes the task with id, keeping the others in order.
func (s *Store) Delete(id int) error {
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("task %d: %w", id, ErrTaskNotFound)
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	return s.persist()
}

// NextID reports the id the next Add will assign, or 0 when no ids are left.
func (s *Store) NextID() int {
	return s.nextID
}

// Len reports how many tasks the store holds.
func (s *Store) Len() int {
	return len(s.tasks)
}

func (s *Store) indexOf(id int) int {
	return slices.IndexFunc(s.tasks, func(t models.Task) bool {
		return t.ID == id
	})
}

func (s *Store) load() {
	tasks, err := s.backend.Load()
	switch {
	case err == nil:
		s.tasks = tasks
		if s.tasks == nil {
			s.tasks = []models.Task{}
		}
	case errors.Is(err, storage.ErrNotExist):
		s.logger.Debug("no saved tasks, starting empty")
		_ = s.persist()
	default:
		s.logger.Warn("Error loading tasks, starting with empty task list", "err", err)
	}
	s.nextID = nextIDAfter(s.tasks)
	if s.nextID == 0 {
		s.logger.Warn("Highest task id is the largest possible id, new tasks cannot be added")
	}
	s.logger.Debug("tasks loaded", "count", len(s.tasks), "next_id", s.nextID)
}

func (s *Store) persist() error {
	if err := s.backend.Save(s.tasks); err != nil {
		s.logger.Error("Error saving tasks", "err", err)
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}
