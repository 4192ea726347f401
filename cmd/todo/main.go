package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tiwariParth/todo-repl/internal/app"
	"github.com/tiwariParth/todo-repl/internal/config"
)

var version = "0.1.0"

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "todo",
		Short: "Interactive command-line task tracker",
		Long: `todo keeps a prioritized task list in a JSON file and edits it
through an interactive prompt. Settings come from .todo.yaml, a .env
file or TODO_* environment variables (TODO_DATA_FILE, TODO_LOG_LEVEL,
TODO_COLOR).`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(viper.New())
			if err != nil {
				return err
			}

			todo, err := app.NewTodoApp(cfg, afero.NewOsFs(), app.Streams{
				In:     cmd.InOrStdin(),
				Out:    cmd.OutOrStdout(),
				ErrOut: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			return todo.Run()
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
