package file

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/tiwariParth/todo-repl/internal/models"
	"github.com/tiwariParth/todo-repl/internal/storage"
)

// DefaultPath is used when no file path is configured.
const DefaultPath = "tasks.json"

// FileStore implements the storage.Storage interface as a single JSON
// array rewritten in full on every save.
type FileStore struct {
	fs       afero.Fs
	filePath string
}

var _ storage.Storage = (*FileStore)(nil)

// NewFileStore creates a new instance of FileStore backed by fsys.
func NewFileStore(fsys afero.Fs, filePath string) *FileStore {
	if filePath == "" {
		filePath = DefaultPath
	}
	return &FileStore{
		fs:       fsys,
		filePath: filePath,
	}
}

// Path returns the location of the backing file.
func (f *FileStore) Path() string {
	return f.filePath
}

// Load reads and decodes the whole file.
func (f *FileStore) Load() ([]models.Task, error) {
	data, err := afero.ReadFile(f.fs, f.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", f.filePath, storage.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to read file %s: %w", f.filePath, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []models.Task{}, nil
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", storage.ErrMalformed, f.filePath, err)
	}

	tasks, err := decode(records)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", storage.ErrMalformed, f.filePath, err)
	}
	return tasks, nil
}

// Save overwrites the file with tasks in the given order.
func (f *FileStore) Save(tasks []models.Task) error {
	data, err := json.MarshalIndent(encode(tasks), "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(f.filePath); dir != "." && dir != "" {
		if err := f.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := afero.WriteFile(f.fs, f.filePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
