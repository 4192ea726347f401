package storage

import (
	"errors"

	"github.com/tiwariParth/todo-repl/internal/models"
)

// Common errors that can be returned by any storage implementation
var (
	ErrNotExist  = errors.New("storage does not exist yet")
	ErrMalformed = errors.New("stored task data is malformed")
)

// Storage persists the full task collection. Implementations always
// replace the whole collection on Save; there are no partial updates.
type Storage interface {
	// Load returns every stored task in its natural order. It returns an
	// error wrapping ErrNotExist when nothing has been stored yet and one
	// wrapping ErrMalformed when the stored data cannot be decoded.
	Load() ([]models.Task, error)

	// Save overwrites the stored collection with tasks, keeping their order.
	Save(tasks []models.Task) error
}
