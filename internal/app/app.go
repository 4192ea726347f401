package app

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/tiwariParth/todo-repl/internal/cli"
	"github.com/tiwariParth/todo-repl/internal/config"
	"github.com/tiwariParth/todo-repl/internal/logging"
	"github.com/tiwariParth/todo-repl/internal/storage"
	"github.com/tiwariParth/todo-repl/internal/storage/file"
	"github.com/tiwariParth/todo-repl/internal/storage/memory"
	"github.com/tiwariParth/todo-repl/internal/task"
)

// Streams bundles the session's standard streams.
type Streams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

// TodoApp wires configuration, storage, the task store and the command loop.
type TodoApp struct {
	store  *task.Store
	cli    *cli.CLI
	logger *log.Logger
}

// NewTodoApp builds a session over fsys. Load problems with the task file
// are recovered inside the store; only bad logging settings fail here.
func NewTodoApp(cfg config.Config, fsys afero.Fs, streams Streams) (*TodoApp, error) {
	opts := logging.DefaultOptions()
	if cfg.Log.Level != "" {
		opts.Level = cfg.Log.Level
	}
	logger, err := logging.New(streams.ErrOut, opts)
	if err != nil {
		return nil, err
	}

	store := task.Open(newBackend(cfg.Data, fsys, logger), logger)

	return &TodoApp{
		store:  store,
		cli:    cli.NewCLI(store, cli.WithIO(streams.In, streams.Out), cli.WithColor(cfg.Color)),
		logger: logger,
	}, nil
}

func newBackend(data config.DataConfig, fsys afero.Fs, logger *log.Logger) storage.Storage {
	if data.Ephemeral() {
		logger.Debug("keeping tasks in memory only")
		return memory.NewMemoryStore()
	}
	backend := file.NewFileStore(fsys, data.File)
	logger.Debug("opening task file", "path", backend.Path())
	return backend
}

// Store returns the session's task store.
func (app *TodoApp) Store() *task.Store {
	return app.store
}

// Run runs the interactive session until exit or end of input.
func (app *TodoApp) Run() error {
	if err := app.cli.Run(); err != nil {
		app.logger.Error("reading input failed", "err", err)
		return err
	}
	return nil
}
