package file

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/tiwariParth/todo-repl/internal/models"
)

// record is the on-disk shape of a task. Fields are pointers so that a
// missing key can be told apart from a zero value.
type record struct {
	ID          *int    `json:"id" validate:"required"`
	Description *string `json:"description" validate:"required"`
	Completed   *bool   `json:"completed" validate:"required"`
	Priority    *int    `json:"priority" validate:"required"`
}

var validate = validator.New()

func toRecord(t models.Task) record {
	priority := int(t.Priority)
	return record{
		ID:          &t.ID,
		Description: &t.Description,
		Completed:   &t.Completed,
		Priority:    &priority,
	}
}

func (r record) toTask() (models.Task, error) {
	if err := validate.Struct(r); err != nil {
		return models.Task{}, err
	}
	return models.Task{
		ID:          *r.ID,
		Description: *r.Description,
		Completed:   *r.Completed,
		Priority:    models.Priority(*r.Priority),
	}, nil
}

func encode(tasks []models.Task) []record {
	records := make([]record, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, toRecord(t))
	}
	return records
}

func decode(records []record) ([]models.Task, error) {
	tasks := make([]models.Task, 0, len(records))
	for i, r := range records {
		t, err := r.toTask()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}
