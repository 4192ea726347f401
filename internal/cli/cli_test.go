package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiwariParth/todo-repl/internal/models"
	"github.com/tiwariParth/todo-repl/internal/storage/memory"
	"github.com/tiwariParth/todo-repl/internal/task"
)

func newTestCLI(t *testing.T, input string) (*CLI, *bytes.Buffer, *memory.MemoryStore) {
	t.Helper()
	backend := memory.NewMemoryStore()
	out := &bytes.Buffer{}
	c := NewCLI(task.Open(backend, nil), WithIO(strings.NewReader(input), out), WithColor(false))
	return c, out, backend
}

// run executes one line and returns what it printed.
func run(c *CLI, out *bytes.Buffer, line string) string {
	out.Reset()
	c.Execute(line)
	return out.String()
}

func TestScenario(t *testing.T) {
	c, out, _ := newTestCLI(t, "")

	assert.Equal(t, "Task added with ID: 1\n", run(c, out, `add "Buy milk" -p high`))
	assert.Equal(t, "Task added with ID: 2\n", run(c, out, `add "Clean"`))

	listing := run(c, out, "list")
	assert.Equal(t, "\nTASK LIST\n---------\n"+
		"ID: 1 | [PENDING] | PRIORITY: HIGH | Buy milk\n"+
		"ID: 2 | [PENDING] | PRIORITY: MEDIUM | Clean\n\n", listing)

	assert.Equal(t, "Task marked as completed!\n", run(c, out, "done 1"))
	assert.Contains(t, run(c, out, "list"), "ID: 1 | [DONE] | PRIORITY: HIGH | Buy milk")

	pending := run(c, out, "list pending")
	assert.Contains(t, pending, "ID: 2 |")
	assert.NotContains(t, pending, "ID: 1 |")

	assert.Equal(t, "Task deleted successfully!\n", run(c, out, "delete 2"))
	assert.Equal(t, "No tasks found.\n", run(c, out, "list pending"))
	assert.Equal(t, "Task with ID 99 not found.\n", run(c, out, "done 99"))
}

func TestExecute_Messages(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"invalid id done", "done abc", "Invalid task ID.\n"},
		{"invalid id delete", "delete 1x", "Invalid task ID.\n"},
		{"missing delete target", "delete 5", "Task with ID 5 not found.\n"},
		{"unknown", "jump", "Unknown command. Type 'help' for available commands.\n"},
		{"add without description", "add -p high", "Unknown command. Type 'help' for available commands.\n"},
		{"wrong arity", "done 1 2", "Unknown command. Type 'help' for available commands.\n"},
		{"empty quoted description", `add ""`, "Task description cannot be empty.\n"},
		{"empty list", "list", "No tasks found.\n"},
		{"blank line", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, out, _ := newTestCLI(t, "")
			assert.Equal(t, tt.want, run(c, out, tt.line))
		})
	}
}

func TestExecute_NoStateChangeOnErrors(t *testing.T) {
	c, out, backend := newTestCLI(t, "")
	run(c, out, "add keep")
	saves := backend.Saves()

	for _, line := range []string{"done x", "delete 9", "bogus", "add", `add ""`, "list pending extra"} {
		run(c, out, line)
	}
	assert.Equal(t, saves, backend.Saves())
	assert.Equal(t, 1, c.Store.Len())
	assert.Equal(t, 2, c.Store.NextID())
}

func TestExecute_CompleteTwice(t *testing.T) {
	c, out, _ := newTestCLI(t, "")
	run(c, out, "add once")
	assert.Equal(t, "Task marked as completed!\n", run(c, out, "done 1"))
	assert.Equal(t, "Task marked as completed!\n", run(c, out, "done 1"))
}

func TestExecute_PersistFailureStillConfirms(t *testing.T) {
	c, out, backend := newTestCLI(t, "")
	backend.FailSaves(errors.New("permission denied"))

	assert.Equal(t, "Task added with ID: 1\n", run(c, out, "add survive"))
	assert.Equal(t, "Task marked as completed!\n", run(c, out, "done 1"))
	assert.Contains(t, run(c, out, "list"), "[DONE]")
	assert.Equal(t, "Task deleted successfully!\n", run(c, out, "delete 1"))
}

func TestExecute_ExitAndHelp(t *testing.T) {
	c, out, _ := newTestCLI(t, "")
	assert.True(t, c.Execute("exit"))
	assert.False(t, c.Execute("exit now"))

	help := run(c, out, "help")
	assert.Contains(t, help, "COMMAND LINE TASK MANAGER")
	assert.Contains(t, help, "add <description> [-p high|medium|low]")
	assert.Contains(t, help, "list pending")
}

func TestRun_UntilExit(t *testing.T) {
	c, out, backend := newTestCLI(t, "add \"Buy milk\" -p high\n\nexit\nadd never\n")

	require.NoError(t, c.Run())
	text := out.String()

	assert.True(t, strings.HasPrefix(text, "\nCOMMAND LINE TASK MANAGER\n"), "banner first")
	assert.Contains(t, text, "> Task added with ID: 1\n")
	assert.True(t, strings.HasSuffix(text, "> Goodbye!\n"))
	session := text[strings.Index(text, "> Task added"):]
	assert.Equal(t, 3, strings.Count(session, Prompt), "one prompt per line read")

	tasks := backend.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, models.High, tasks[0].Priority)
}

func TestRun_EndOfInput(t *testing.T) {
	c, out, _ := newTestCLI(t, "list")

	require.NoError(t, c.Run())
	text := out.String()
	assert.Contains(t, text, "No tasks found.\n")
	assert.True(t, strings.HasSuffix(text, "> \nGoodbye!\n"))
}

func TestRun_VeryLongLineKeepsSession(t *testing.T) {
	long := strings.Repeat("x", 2*1024*1024)
	c, out, backend := newTestCLI(t, "add "+long+"\nadd after\nexit\n")

	require.NoError(t, c.Run())
	assert.Contains(t, out.String(), "Task added with ID: 2\n")
	assert.True(t, strings.HasSuffix(out.String(), "> Goodbye!\n"))

	saved := backend.Tasks()
	require.Len(t, saved, 2)
	assert.Len(t, saved[0].Description, len(long))
	assert.Equal(t, "after", saved[1].Description)
}

func TestRun_CRLFLineEndings(t *testing.T) {
	c, out, backend := newTestCLI(t, "add \"Buy milk\" -p high\r\nexit\r\n")

	require.NoError(t, c.Run())
	assert.Contains(t, out.String(), "Task added with ID: 1\n")
	require.Len(t, backend.Tasks(), 1)
	assert.Equal(t, "Buy milk", backend.Tasks()[0].Description)
}

func TestExecute_KeepsDescriptionPadding(t *testing.T) {
	c, out, backend := newTestCLI(t, "")

	assert.Equal(t, "Task added with ID: 1\n", run(c, out, `add "  padded  " -p low`))
	require.Len(t, backend.Tasks(), 1)
	assert.Equal(t, "  padded  ", backend.Tasks()[0].Description)
}

func TestRun_ReadError(t *testing.T) {
	backend := memory.NewMemoryStore()
	out := &bytes.Buffer{}
	c := NewCLI(task.Open(backend, nil), WithIO(errReader{}, out), WithColor(false))

	assert.Error(t, c.Run())
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}
