package runner

import (
	"context"
	"strings"
)

// Stdio selects what happens to a child process's output.
type Stdio int

const (
	// StdioInherit streams output straight to the invoking terminal.
	StdioInherit Stdio = iota
	// StdioDiscard drops all output.
	StdioDiscard
	// StdioCapture buffers stdout into ExitResult.Output, for version probes.
	StdioCapture
)

// Command describes a single child-process invocation.
type Command struct {
	Name  string
	Args  []string
	Dir   string
	Stdio Stdio
}

// String renders the command the way a user would type it.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, c.Name)
	for _, a := range c.Args {
		if a == "" || strings.ContainsAny(a, " \t\"'") {
			a = "'" + strings.ReplaceAll(a, "'", `'\''`) + "'"
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}

// ExitResult captures how a child process finished.
type ExitResult struct {
	Code int
	// Output holds stdout when the command ran with StdioCapture.
	Output string
}

// Success reports whether the process exited with status 0.
func (r ExitResult) Success() bool { return r.Code == 0 }

// CommandRunner runs external commands. A non-zero exit is reported through
// ExitResult, not as an error; the error return is for processes that could
// not be started at all (e.g. the binary is missing).
type CommandRunner interface {
	Run(ctx context.Context, cmd Command) (ExitResult, error)
}
