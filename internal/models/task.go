package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Priority represents the importance level of a task. Lower values sort first.
type Priority int

const (
	High   Priority = 1
	Medium Priority = 2
	Low    Priority = 3
)

// DefaultPriority is used when no priority, or an unrecognized one, is given.
const DefaultPriority = Medium

// String returns the display form of Priority
func (p Priority) String() string {
	switch p {
	case High:
		return "HIGH"
	case Medium:
		return "MEDIUM"
	case Low:
		return "LOW"
	default:
		return "UNKNOWN"
	}
}

// ParsePriority maps "high", "medium" and "low" to their Priority.
// Anything else, including the empty string, yields DefaultPriority.
func ParsePriority(s string) Priority {
	switch s {
	case "high":
		return High
	case "low":
		return Low
	default:
		return DefaultPriority
	}
}

// Task represents a single tracked item.
type Task struct {
	ID          int    `validate:"min=1"`
	Description string `validate:"required"`
	Completed   bool
	Priority    Priority `validate:"oneof=1 2 3"`
}

// NewTask creates a pending task. The caller assigns the ID.
func NewTask(description string, priority Priority) Task {
	return Task{
		Description: description,
		Priority:    priority,
	}
}

var validate = validator.New()

// Validate checks if the task has valid data
func (t *Task) Validate() error {
	if err := validate.Struct(t); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		msgs := make([]string, 0, len(verrs))
		for _, e := range verrs {
			msgs = append(msgs, fmt.Sprintf("field '%s' failed rule '%s' (value: '%v')", e.Field(), e.Tag(), e.Value()))
		}
		return errors.New(strings.Join(msgs, "; "))
	}
	return nil
}

// Complete marks the task as completed
func (t *Task) Complete() {
	t.Completed = true
}
