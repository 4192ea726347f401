package cli

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/tiwariParth/todo-repl/internal/models"
)

// CommandKind identifies a parsed input line.
type CommandKind int

const (
	CmdUnknown CommandKind = iota
	CmdAdd
	CmdList
	CmdDone
	CmdDelete
	CmdHelp
	CmdExit
)

const priorityFlag = "-p"

// Command is the result of parsing one input line.
type Command struct {
	Kind        CommandKind
	Description string
	Priority    models.Priority
	PendingOnly bool
	ID          int
	// IDValid is false when the id argument of done/delete was not an integer.
	IDValid bool
}

// Tokenize splits line on whitespace. A token opening with a double quote
// runs to the matching closing quote, keeping inner whitespace; \" and \\
// inside it are unescaped. An unterminated quote runs to the end of line.
func Tokenize(line string) []string {
	var tokens []string
	runes := []rune(line)
	i := 0
	for i < len(runes) {
		for i < len(runes) && unicode.IsSpace(runes[i]) {
			i++
		}
		if i >= len(runes) {
			break
		}

		var b strings.Builder
		if runes[i] == '"' {
			i++
			for i < len(runes) && runes[i] != '"' {
				if runes[i] == '\\' && i+1 < len(runes) && (runes[i+1] == '"' || runes[i+1] == '\\') {
					i++
				}
				b.WriteRune(runes[i])
				i++
			}
			// closing quote
			i++
		} else {
			for i < len(runes) && !unicode.IsSpace(runes[i]) {
				b.WriteRune(runes[i])
				i++
			}
		}
		tokens = append(tokens, b.String())
	}
	return tokens
}

// ParseID parses a task id argument. It reports false instead of
// returning an error so an invalid id is an ordinary branch for callers.
func ParseID(s string) (int, bool) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Parse maps tokens to a Command. The first token is the command name.
// Unknown names and wrong argument counts produce CmdUnknown.
func Parse(tokens []string) Command {
	if len(tokens) == 0 {
		return Command{Kind: CmdUnknown}
	}
	name, args := tokens[0], tokens[1:]

	switch name {
	case "add":
		return parseAdd(args)
	case "list":
		switch len(args) {
		case 0:
			return Command{Kind: CmdList}
		case 1:
			return Command{Kind: CmdList, PendingOnly: args[0] == "pending"}
		}
	case "done", "delete":
		if len(args) != 1 {
			break
		}
		kind := CmdDone
		if name == "delete" {
			kind = CmdDelete
		}
		id, ok := ParseID(args[0])
		return Command{Kind: kind, ID: id, IDValid: ok}
	case "help":
		if len(args) == 0 {
			return Command{Kind: CmdHelp}
		}
	case "exit":
		if len(args) == 0 {
			return Command{Kind: CmdExit}
		}
	}
	return Command{Kind: CmdUnknown}
}

func parseAdd(args []string) Command {
	priority := models.DefaultPriority
	var words []string
	for i := 0; i < len(args); i++ {
		if args[i] == priorityFlag {
			// a trailing -p without a value is ignored
			if i+1 < len(args) {
				i++
				priority = models.ParsePriority(args[i])
			}
			continue
		}
		words = append(words, args[i])
	}
	if len(words) == 0 {
		return Command{Kind: CmdUnknown}
	}
	return Command{
		Kind:        CmdAdd,
		Description: strings.Join(words, " "),
		Priority:    priority,
	}
}
