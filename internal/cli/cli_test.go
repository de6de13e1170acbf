package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aurimyth/aury-web/internal/prompt"
	"github.com/aurimyth/aury-web/internal/runner"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// harness runs commands in a fresh working directory with scripted
// processes and prompts.
type harness struct {
	dir      string
	runner   *runner.Recorder
	prompter *prompt.Scripted
}

func setup(t *testing.T, answers ...any) *harness {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	h := &harness{
		dir:      dir,
		runner:   runner.NewRecorder(),
		prompter: prompt.NewScripted(answers...),
	}

	origRunner, origPrompter, origNow := newRunner, newPrompter, now
	newRunner = func() runner.CommandRunner { return h.runner }
	newPrompter = func() prompt.Prompter { return h.prompter }
	now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() {
		newRunner, newPrompter, now = origRunner, origPrompter, origNow
		viper.Reset()
	})
	return h
}

// run executes the root command with args and returns stdout and stderr.
func (h *harness) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append(args, "--no-color"))
	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func (h *harness) path(rel string) string {
	return filepath.Join(h.dir, filepath.FromSlash(rel))
}

func (h *harness) write(t *testing.T, rel, content string) {
	t.Helper()
	p := h.path(rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
}

func (h *harness) read(t *testing.T, rel string) string {
	t.Helper()
	data, err := os.ReadFile(h.path(rel))
	require.NoError(t, err)
	return string(data)
}

// hasPrefixLine reports whether any recorded command starts with prefix.
func (h *harness) hasPrefixLine(prefix string) bool {
	for _, l := range h.runner.Lines() {
		if strings.HasPrefix(l, prefix) {
			return true
		}
	}
	return false
}
