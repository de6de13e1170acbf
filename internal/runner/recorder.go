package runner

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Response is a scripted outcome for a command matched by Recorder.
type Response struct {
	Result ExitResult
	Err    error
	// Output is written to Recorder.Stdout when the command inherits stdio,
	// and returned in ExitResult.Output when it captures.
	Output string
}

// Recorder is a CommandRunner that records every command and answers from a
// script instead of spawning processes. Commands are matched by the prefix of
// their rendered String(); the longest matching prefix wins. Unmatched
// commands succeed with exit code 0 unless Missing marks the binary absent.
type Recorder struct {
	mu        sync.Mutex
	Commands  []Command
	responses map[string]Response
	missing   map[string]bool
	Stdout    io.Writer
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		responses: make(map[string]Response),
		missing:   make(map[string]bool),
	}
}

// On scripts the response for commands whose rendered form starts with prefix.
func (r *Recorder) On(prefix string, resp Response) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.responses[prefix] = resp
	return r
}

// Missing makes every command for the named binary fail to start.
func (r *Recorder) Missing(names ...string) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range names {
		r.missing[n] = true
	}
	return r
}

// Run records cmd and returns the scripted response.
func (r *Recorder) Run(ctx context.Context, cmd Command) (ExitResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Commands = append(r.Commands, cmd)

	if err := ctx.Err(); err != nil {
		return ExitResult{Code: -1}, err
	}
	if r.missing[cmd.Name] {
		return ExitResult{Code: -1}, fmt.Errorf("%s not found", cmd.Name)
	}

	line := cmd.String()
	best := ""
	found := false
	for prefix := range r.responses {
		if strings.HasPrefix(line, prefix) && len(prefix) >= len(best) {
			best = prefix
			found = true
		}
	}
	if !found {
		return ExitResult{}, nil
	}

	resp := r.responses[best]
	result := resp.Result
	switch cmd.Stdio {
	case StdioInherit:
		if resp.Output != "" && r.Stdout != nil {
			_, _ = io.WriteString(r.Stdout, resp.Output)
		}
	case StdioCapture:
		result.Output = resp.Output
	}
	return result, resp.Err
}

// Lines returns the rendered form of every recorded command, in order.
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.Commands))
	for i, c := range r.Commands {
		out[i] = c.String()
	}
	return out
}
