// Package shadcn installs shadcn/ui components into a generated project by
// invoking the shadcn CLI through the project's package manager.
package shadcn

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/aurimyth/aury-web/internal/pkgmgr"
	"github.com/aurimyth/aury-web/internal/runner"
)

// Package is the installer package executed through dlx.
const Package = "shadcn@latest"

// Preset is a named component list.
type Preset string

const (
	Minimal  Preset = "minimal"
	Standard Preset = "standard"
	Full     Preset = "full"
	// None skips component installation.
	None Preset = "none"
)

// DefaultPreset is used when the user does not pick one.
const DefaultPreset = Standard

var presets = map[Preset][]string{
	Minimal: {
		"button", "input", "label", "card", "badge",
		"form", "select", "checkbox", "switch",
		"dialog", "tabs", "sheet",
		"toast", "alert",
		"table",
	},
	Standard: {
		"button", "input", "label", "textarea", "card", "badge",
		"form", "select", "checkbox", "switch", "slider",
		"dialog", "sheet", "tabs", "accordion", "separator",
		"table", "avatar", "skeleton", "progress",
		"dropdown-menu", "navigation-menu", "breadcrumb",
		"sonner", "alert",
	},
	Full: {
		"button", "input", "label", "textarea", "card", "badge", "avatar", "separator", "aspect-ratio", "scroll-area",
		"form", "select", "checkbox", "radio-group", "switch", "slider", "calendar", "date-picker", "combobox", "input-otp",
		"tabs", "accordion", "sheet", "dialog", "drawer", "popover", "dropdown-menu", "navigation-menu", "command", "context-menu", "menubar", "collapsible",
		"table", "pagination", "progress", "skeleton", "breadcrumb", "carousel", "chart", "sidebar",
		"sonner", "alert", "alert-dialog", "tooltip", "hover-card", "resizable",
		"toggle", "toggle-group",
	},
}

// ParsePreset validates a preset name. The empty string selects the default.
func ParsePreset(s string) (Preset, error) {
	p := Preset(strings.ToLower(strings.TrimSpace(s)))
	if p == "" {
		return DefaultPreset, nil
	}
	if p == None {
		return None, nil
	}
	if _, ok := presets[p]; !ok {
		return "", fmt.Errorf("unknown component preset %q: must be one of %s, none", s, strings.Join(presetNames(), ", "))
	}
	return p, nil
}

// Presets returns the installable presets, smallest first.
func Presets() []Preset {
	return []Preset{Minimal, Standard, Full}
}

// Components returns a copy of the component list for p.
func Components(p Preset) []string {
	return append([]string(nil), presets[p]...)
}

func presetNames() []string {
	names := make([]string, 0, len(presets))
	for p := range presets {
		names = append(names, string(p))
	}
	sort.Strings(names)
	return names
}

// Install adds every component of preset to the project in dir, overwriting
// existing component files.
func Install(ctx context.Context, r runner.CommandRunner, dir string, pm pkgmgr.Manager, preset Preset) error {
	components, ok := presets[preset]
	if !ok {
		return fmt.Errorf("unknown component preset %q", preset)
	}
	args := append([]string{Package, "add"}, components...)
	args = append(args, "--yes", "--overwrite")
	return run(ctx, r, pkgmgr.DlxCommand(pm, dir, args...))
}

// Add installs the named components into the project in dir.
func Add(ctx context.Context, r runner.CommandRunner, dir string, pm pkgmgr.Manager, components []string) error {
	if len(components) == 0 {
		return fmt.Errorf("no components given")
	}
	args := append([]string{Package, "add"}, components...)
	args = append(args, "--yes")
	return run(ctx, r, pkgmgr.DlxCommand(pm, dir, args...))
}

// Init runs the installer's own project initialization with defaults.
func Init(ctx context.Context, r runner.CommandRunner, dir string, pm pkgmgr.Manager) error {
	return run(ctx, r, pkgmgr.DlxCommand(pm, dir, Package, "init", "--yes", "--defaults"))
}

// ManualCommand is the line printed when an install fails so users can
// retry by hand.
func ManualCommand(pm pkgmgr.Manager, components []string) string {
	args := append([]string{Package, "add"}, components...)
	return pkgmgr.DlxCommand(pm, "", args...).String()
}

func run(ctx context.Context, r runner.CommandRunner, cmd runner.Command) error {
	res, err := r.Run(ctx, cmd)
	if err != nil {
		return fmt.Errorf("running %s: %w", cmd.Name, err)
	}
	if !res.Success() {
		return fmt.Errorf("%s exited with code %d", cmd.String(), res.Code)
	}
	return nil
}
