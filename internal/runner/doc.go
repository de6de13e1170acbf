// Package runner defines the CommandRunner capability used to delegate work to
// external tools (package managers, git, the shadcn installer). ExecRunner
// spawns real processes; Recorder is a deterministic stand-in for tests.
package runner
