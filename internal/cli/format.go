package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"github.com/tiwariParth/todo-repl/internal/models"
)

const helpBody = `--------------------------
USAGE:
  add <description> [-p high|medium|low]  Add a new task
  list                                    List all tasks
  list pending                            List pending tasks only
  done <id>                               Mark task as completed
  delete <id>                             Delete a task
  help                                    Show this help message
  exit                                    Exit the program

EXAMPLES:
  add "Buy groceries" -p high
  add "Walk the dog"
  done 2
`

// palette holds the colors used for task rows.
type palette struct {
	bold    *color.Color
	done    *color.Color
	pending *color.Color
	high    *color.Color
	medium  *color.Color
	low     *color.Color
	title   lipgloss.Style
}

// newPalette builds the output colors. When enabled is false every color
// is forced off; otherwise terminal detection and NO_COLOR decide.
func newPalette(w io.Writer, enabled bool) palette {
	p := palette{
		bold:    color.New(color.Bold),
		done:    color.New(color.FgGreen),
		pending: color.New(color.FgYellow),
		high:    color.New(color.FgRed, color.Bold),
		medium:  color.New(color.FgYellow),
		low:     color.New(color.FgCyan),
		title:   lipgloss.NewRenderer(w).NewStyle().Bold(true),
	}
	if !enabled {
		for _, c := range []*color.Color{p.bold, p.done, p.pending, p.high, p.medium, p.low} {
			c.DisableColor()
		}
		p.title = lipgloss.NewStyle()
	}
	return p
}

func (p palette) status(t models.Task) string {
	if t.Completed {
		return p.done.Sprint("[DONE]")
	}
	return p.pending.Sprint("[PENDING]")
}

func (p palette) priority(pr models.Priority) string {
	switch pr {
	case models.High:
		return p.high.Sprint(pr.String())
	case models.Medium:
		return p.medium.Sprint(pr.String())
	case models.Low:
		return p.low.Sprint(pr.String())
	default:
		return pr.String()
	}
}

func writeHelp(w io.Writer, p palette) {
	fmt.Fprintf(w, "\n%s\n%s\n", p.title.Render("COMMAND LINE TASK MANAGER"), helpBody)
}

func writeTasks(w io.Writer, p palette, tasks []models.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks found.")
		return
	}

	fmt.Fprint(w, "\nTASK LIST\n---------\n")
	for _, t := range tasks {
		fmt.Fprintf(w, "ID: %s | %s | PRIORITY: %s | %s\n",
			p.bold.Sprint(t.ID), p.status(t), p.priority(t.Priority), t.Description)
	}
	fmt.Fprintln(w)
}
