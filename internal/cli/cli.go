package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tiwariParth/todo-repl/internal/task"
)

// Prompt is printed before every read.
const Prompt = "> "

// CLI represents the interactive command loop.
type CLI struct {
	Store   *task.Store
	in      io.Reader
	out     io.Writer
	color   bool
	palette palette
}

// Option configures a CLI.
type Option func(*CLI)

// WithIO replaces standard input and output.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(c *CLI) {
		c.in = in
		c.out = out
	}
}

// WithColor turns colored output on or off.
func WithColor(enabled bool) Option {
	return func(c *CLI) {
		c.color = enabled
	}
}

// NewCLI initializes a new CLI reading from stdin and writing to stdout.
func NewCLI(store *task.Store, opts ...Option) *CLI {
	c := &CLI{
		Store: store,
		in:    os.Stdin,
		out:   os.Stdout,
		color: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.palette = newPalette(c.out, c.color)
	return c
}

// Run prints the help banner and processes lines until exit or end of
// input. Only a read failure is returned as an error.
func (c *CLI) Run() error {
	writeHelp(c.out, c.palette)

	reader := bufio.NewReader(c.in)
	for {
		fmt.Fprint(c.out, Prompt)
		line, err := reader.ReadString('\n')
		if line == "" && err != nil {
			fmt.Fprintln(c.out)
			fmt.Fprintln(c.out, "Goodbye!")
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if c.Execute(trimLineEnd(line)) {
			fmt.Fprintln(c.out, "Goodbye!")
			return nil
		}
	}
}

func trimLineEnd(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// Execute handles a single input line. It returns true when the line
// asks to end the session.
func (c *CLI) Execute(line string) bool {
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return false
	}

	cmd := Parse(tokens)
	switch cmd.Kind {
	case CmdExit:
		return true
	case CmdHelp:
		writeHelp(c.out, c.palette)
	case CmdAdd:
		c.add(cmd)
	case CmdList:
		writeTasks(c.out, c.palette, c.Store.List(!cmd.PendingOnly))
	case CmdDone:
		c.withID(cmd, c.Store.Complete, "Task marked as completed!")
	case CmdDelete:
		c.withID(cmd, c.Store.Delete, "Task deleted successfully!")
	default:
		fmt.Fprintln(c.out, "Unknown command. Type 'help' for available commands.")
	}
	return false
}

func (c *CLI) add(cmd Command) {
	id, err := c.Store.Add(cmd.Description, cmd.Priority)
	switch {
	case err == nil, errors.Is(err, task.ErrPersist):
		// persist failures are already reported by the store
		fmt.Fprintf(c.out, "Task added with ID: %d\n", id)
	case errors.Is(err, task.ErrEmptyDescription):
		fmt.Fprintln(c.out, "Task description cannot be empty.")
	default:
		fmt.Fprintf(c.out, "Failed to add task: %v\n", err)
	}
}

func (c *CLI) withID(cmd Command, op func(int) error, success string) {
	if !cmd.IDValid {
		fmt.Fprintln(c.out, "Invalid task ID.")
		return
	}
	err := op(cmd.ID)
	switch {
	case err == nil, errors.Is(err, task.ErrPersist):
		fmt.Fprintln(c.out, success)
	case errors.Is(err, task.ErrTaskNotFound):
		fmt.Fprintf(c.out, "Task with ID %d not found.\n", cmd.ID)
	default:
		fmt.Fprintf(c.out, "Error: %v\n", err)
	}
}
