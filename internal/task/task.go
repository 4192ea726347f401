package task

import (
	"cmp"
	"errors"
	"math"
	"slices"

	"github.com/tiwariParth/todo-repl/internal/models"
)

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrEmptyDescription = errors.New("task description cannot be empty")
	ErrPersist          = errors.New("failed to persist tasks")
	ErrIDsExhausted     = errors.New("no task ids left")
)

// byDisplayOrder orders tasks by priority, then by id.
func byDisplayOrder(a, b models.Task) int {
	if c := cmp.Compare(a.Priority, b.Priority); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// sortedView returns a sorted copy of tasks, leaving the input untouched.
func sortedView(tasks []models.Task, includeCompleted bool) []models.Task {
	view := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if !includeCompleted && t.Completed {
			continue
		}
		view = append(view, t)
	}
	slices.SortFunc(view, byDisplayOrder)
	return view
}

// nextIDAfter returns one more than the largest id in tasks, or 1.
// It returns 0 when the largest id is math.MaxInt.
func nextIDAfter(tasks []models.Task) int {
	next := 1
	for _, t := range tasks {
		if t.ID == math.MaxInt {
			return 0
		}
		if t.ID >= next {
			next = t.ID + 1
		}
	}
	return next
}

// advance returns the id after id, or 0 once the int range is used up.
func advance(id int) int {
	if id == math.MaxInt {
		return 0
	}
	return id + 1
}
