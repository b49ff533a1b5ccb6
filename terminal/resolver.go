package terminal

import (
	"fmt"
	"strings"
	"time"
)

// ClearCommand resets the transcript instead of producing output.
const ClearCommand = "clear"

// Result is what a raw input line resolves to.
// When Reset is set, Lines is nil and the transcript must be wiped.
type Result struct {
	Command string
	Lines   []string
	Reset   bool
	Found   bool
}

// Normalize trims surrounding whitespace and lowercases the input.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Resolve maps a raw input line to its output using table.
// It has no side effects.
func Resolve(table *Table, raw string, now time.Time) Result {
	cmd := Normalize(raw)
	switch {
	case cmd == "":
		return Result{Lines: []string{""}}
	case cmd == ClearCommand:
		return Result{Command: cmd, Reset: true, Found: true}
	}
	if lines, ok := table.Lookup(cmd, now); ok {
		return Result{Command: cmd, Lines: lines, Found: true}
	}
	return Result{
		Command: cmd,
		Lines: []string{
			fmt.Sprintf("Command '%s' not found.", cmd),
			"Type 'help' to see available commands.",
		},
	}
}
