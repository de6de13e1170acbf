package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// ExecRunner runs commands as real child processes.
type ExecRunner struct {
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
}

// NewExec returns an ExecRunner streaming to the process's own stdio.
func NewExec() *ExecRunner {
	return &ExecRunner{}
}

// Run starts cmd and waits for it. With StdioInherit the child's output is
// streamed unbuffered to the configured writers.
func (e *ExecRunner) Run(ctx context.Context, cmd Command) (ExitResult, error) {
	bin, err := exec.LookPath(cmd.Name)
	if err != nil {
		return ExitResult{Code: -1}, fmt.Errorf("%s not found: %w", cmd.Name, err)
	}

	c := exec.CommandContext(ctx, bin, cmd.Args...)
	c.Dir = cmd.Dir

	var captured bytes.Buffer
	switch cmd.Stdio {
	case StdioCapture:
		c.Stdout = &captured
		c.Stderr = io.Discard
	case StdioDiscard:
		c.Stdout = io.Discard
		c.Stderr = io.Discard
	case StdioInherit:
		c.Stdout = orDefault(e.Stdout, os.Stdout)
		c.Stderr = orDefault(e.Stderr, os.Stderr)
		if e.Stdin != nil {
			c.Stdin = e.Stdin
		} else {
			c.Stdin = os.Stdin
		}
	}

	err = c.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return ExitResult{Code: exitErr.ExitCode(), Output: captured.String()}, nil
		}
		return ExitResult{Code: -1}, fmt.Errorf("running %s: %w", cmd.Name, err)
	}

	return ExitResult{Code: 0, Output: captured.String()}, nil
}

func orDefault(w io.Writer, def io.Writer) io.Writer {
	if w == nil {
		return def
	}
	return w
}
