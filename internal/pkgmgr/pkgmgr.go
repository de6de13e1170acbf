// Package pkgmgr knows the four JavaScript package managers a generated
// project can use: how to detect them, which one a project prefers, and how to
// spell their install, run and one-off execution commands.
package pkgmgr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/aurimyth/aury-web/internal/runner"
)

// Manager is a supported package manager.
type Manager string

const (
	NPM  Manager = "npm"
	PNPM Manager = "pnpm"
	Yarn Manager = "yarn"
	Bun  Manager = "bun"
)

// probeOrder is the order detection reports managers in.
var probeOrder = []Manager{PNPM, Bun, Yarn, NPM}

// lockfiles maps lockfile names to their manager, checked in this order.
var lockfiles = []struct {
	name    string
	manager Manager
}{
	{"pnpm-lock.yaml", PNPM},
	{"bun.lockb", Bun},
	{"bun.lock", Bun},
	{"yarn.lock", Yarn},
	{"package-lock.json", NPM},
}

// All returns every supported manager in detection order.
func All() []Manager {
	return append([]Manager(nil), probeOrder...)
}

// Parse validates a manager name.
func Parse(s string) (Manager, error) {
	m := Manager(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range probeOrder {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown package manager %q: must be one of npm, pnpm, yarn, bun", s)
}

func (m Manager) String() string { return string(m) }

// Detected is a manager found on PATH together with the version it reported.
// Version is nil when the output could not be parsed as semver.
type Detected struct {
	Manager Manager
	Version *semver.Version
}

// Detect probes "<pm> --version" for every manager and returns the ones that
// answered successfully, in the order pnpm, bun, yarn, npm. A failing probe
// means "not available" and is never an error.
func Detect(ctx context.Context, r runner.CommandRunner) []Detected {
	var found []Detected
	for _, m := range probeOrder {
		if ctx.Err() != nil {
			break
		}
		v, ok := probe(ctx, r, m)
		if !ok {
			continue
		}
		found = append(found, Detected{Manager: m, Version: v})
	}
	return found
}

// DetectManagers is Detect without version information.
func DetectManagers(ctx context.Context, r runner.CommandRunner) []Manager {
	detected := Detect(ctx, r)
	out := make([]Manager, len(detected))
	for i, d := range detected {
		out[i] = d.Manager
	}
	return out
}

func probe(ctx context.Context, r runner.CommandRunner, m Manager) (*semver.Version, bool) {
	res, err := r.Run(ctx, runner.Command{Name: string(m), Args: []string{"--version"}, Stdio: runner.StdioCapture})
	if err != nil || !res.Success() {
		return nil, false
	}
	v, _ := ParseVersion(res.Output)
	return v, true
}

// ParseVersion extracts a semantic version from tool output such as
// "10.12.1", "v20.11.0" or "1.22.19\n".
func ParseVersion(out string) (*semver.Version, error) {
	fields := strings.Fields(out)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty version output")
	}
	for _, f := range fields {
		if v, err := semver.NewVersion(strings.TrimPrefix(f, "v")); err == nil {
			return v, nil
		}
	}
	return nil, fmt.Errorf("no version found in %q", strings.TrimSpace(out))
}

// FromLockfile returns the manager whose lockfile exists in dir.
func FromLockfile(dir string) (Manager, bool) {
	for _, lf := range lockfiles {
		if _, err := os.Stat(filepath.Join(dir, lf.name)); err == nil {
			return lf.manager, true
		}
	}
	return "", false
}

// Recommend picks a manager for dir: the one owning an existing lockfile,
// else pnpm when installed, else the first detected manager, else npm.
func Recommend(ctx context.Context, r runner.CommandRunner, dir string) Manager {
	if m, ok := FromLockfile(dir); ok {
		return m
	}
	available := DetectManagers(ctx, r)
	for _, m := range available {
		if m == PNPM {
			return PNPM
		}
	}
	if len(available) > 0 {
		return available[0]
	}
	return NPM
}

// InstallCommand returns the dependency-install command for m, run in dir.
func InstallCommand(m Manager, dir string) runner.Command {
	switch m {
	case Yarn:
		return runner.Command{Name: "yarn", Dir: dir}
	case PNPM, Bun:
		return runner.Command{Name: string(m), Args: []string{"install"}, Dir: dir}
	default:
		return runner.Command{Name: "npm", Args: []string{"install"}, Dir: dir}
	}
}

// RunScriptCommand returns the command that runs a package.json script.
func RunScriptCommand(m Manager, script, dir string) runner.Command {
	switch m {
	case PNPM, Yarn:
		return runner.Command{Name: string(m), Args: []string{script}, Dir: dir}
	case Bun:
		return runner.Command{Name: "bun", Args: []string{"run", script}, Dir: dir}
	default:
		return runner.Command{Name: "npm", Args: []string{"run", script}, Dir: dir}
	}
}

// DlxCommand returns the command that downloads and executes a package
// binary once (npx and its equivalents).
func DlxCommand(m Manager, dir string, args ...string) runner.Command {
	switch m {
	case PNPM, Yarn:
		return runner.Command{Name: string(m), Args: append([]string{"dlx"}, args...), Dir: dir}
	case Bun:
		return runner.Command{Name: "bunx", Args: args, Dir: dir}
	default:
		return runner.Command{Name: "npx", Args: args, Dir: dir}
	}
}
