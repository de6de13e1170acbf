package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/aurimyth/aury-web/internal/branding"
	"github.com/aurimyth/aury-web/internal/naming"
	"github.com/aurimyth/aury-web/internal/pkgmgr"
	"github.com/aurimyth/aury-web/internal/project"
	"github.com/aurimyth/aury-web/internal/shadcn"
	"github.com/aurimyth/aury-web/internal/theme"
)

// ErrNoPackageManager is returned when no package manager is installed.
var ErrNoPackageManager = errors.New("no package manager found; install npm, pnpm, yarn, or bun")

const skipChoice = "skip"

// Wizard fills in an InitConfig one question at a time. Every step takes
// the config by value and returns the updated copy; steps whose field is
// already set (by flags) return it unchanged without asking.
type Wizard struct {
	Prompter Prompter
	Themes   []theme.Theme
	// Managers lists installed package managers in preference order.
	Managers func(ctx context.Context) []pkgmgr.Detected
}

// Run executes every step in order.
func (w Wizard) Run(ctx context.Context, cfg project.InitConfig, cwd string) (project.InitConfig, error) {
	steps := []func(context.Context, project.InitConfig) (project.InitConfig, error){
		w.AskName,
		func(ctx context.Context, c project.InitConfig) (project.InitConfig, error) {
			return w.ConfirmTarget(ctx, c.ResolveTarget(cwd))
		},
		w.AskTemplate,
		w.AskPackageManager,
		w.AskComponents,
	}
	var err error
	for _, step := range steps {
		if cfg, err = step(ctx, cfg); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// AskName asks for the project name when none was given.
func (w Wizard) AskName(ctx context.Context, cfg project.InitConfig) (project.InitConfig, error) {
	if cfg.Name != "" {
		return cfg, project.ValidateName(cfg.Name)
	}
	name, err := w.Prompter.Input(ctx, InputConfig{
		Message:   "Project name:",
		Default:   "my-aury-app",
		Help:      `Use "." for the current directory`,
		Validator: project.ValidateName,
	})
	if err != nil {
		return cfg, err
	}
	cfg.Name = name
	return cfg, nil
}

// ConfirmTarget asks before writing into a non-empty directory.
func (w Wizard) ConfirmTarget(ctx context.Context, cfg project.InitConfig) (project.InitConfig, error) {
	empty, err := project.IsEmptyDir(cfg.Dir)
	if err != nil {
		return cfg, fmt.Errorf("checking %s: %w", cfg.Dir, err)
	}
	if empty {
		return cfg, nil
	}
	ok, err := w.Prompter.Confirm(ctx, ConfirmConfig{
		Message: fmt.Sprintf("Directory %s is not empty. Continue?", cfg.Name),
	})
	if err != nil {
		return cfg, err
	}
	if !ok {
		return cfg, ErrAborted
	}
	return cfg, nil
}

// AskTemplate asks which theme to use.
func (w Wizard) AskTemplate(ctx context.Context, cfg project.InitConfig) (project.InitConfig, error) {
	if cfg.Template != "" {
		return cfg, nil
	}
	options := make([]Option, 0, len(w.Themes))
	for _, t := range w.Themes {
		options = append(options, Option{Value: t.Name, Label: t.DisplayName, Hint: t.Description})
	}
	if len(options) == 0 {
		return cfg, nil
	}
	choice, err := w.Prompter.Select(ctx, SelectConfig{Message: "Select a theme:", Options: options})
	if err != nil {
		return cfg, err
	}
	cfg.Template = choice
	return cfg, nil
}

// AskPackageManager asks which installed package manager to use.
func (w Wizard) AskPackageManager(ctx context.Context, cfg project.InitConfig) (project.InitConfig, error) {
	if cfg.PackageManager != "" {
		return cfg, nil
	}
	var detected []pkgmgr.Detected
	if w.Managers != nil {
		detected = w.Managers(ctx)
	}
	if len(detected) == 0 {
		return cfg, ErrNoPackageManager
	}

	options := make([]Option, len(detected))
	for i, d := range detected {
		o := Option{Value: string(d.Manager)}
		if d.Version != nil {
			o.Label = fmt.Sprintf("%s (%s)", d.Manager, d.Version)
		}
		if d.Manager == pkgmgr.PNPM {
			o.Hint = "Recommended"
		}
		options[i] = o
	}
	choice, err := w.Prompter.Select(ctx, SelectConfig{Message: "Select package manager:", Options: options})
	if err != nil {
		return cfg, err
	}
	cfg.PackageManager = pkgmgr.Manager(choice)
	return cfg, nil
}

// AskComponents asks for a component preset unless components are skipped
// or nothing will be installed.
func (w Wizard) AskComponents(ctx context.Context, cfg project.InitConfig) (project.InitConfig, error) {
	if cfg.SkipComponents || cfg.SkipInstall || cfg.Components != "" {
		return cfg, nil
	}
	hints := map[shadcn.Preset]string{
		shadcn.Standard: "Recommended - covers most use cases",
		shadcn.Minimal:  "Core essentials only",
		shadcn.Full:     "Everything included",
	}
	var options []Option
	for _, p := range []shadcn.Preset{shadcn.Standard, shadcn.Minimal, shadcn.Full} {
		options = append(options, Option{
			Value: string(p),
			Label: fmt.Sprintf("%s (%d components)", naming.ToPascalCase(string(p)), len(shadcn.Components(p))),
			Hint:  hints[p],
		})
	}
	options = append(options, Option{
		Value: skipChoice,
		Label: "Skip",
		Hint:  fmt.Sprintf("Add components later with: %s add", branding.CLIName()),
	})

	choice, err := w.Prompter.Select(ctx, SelectConfig{
		Message: "Select Shadcn UI components:",
		Options: options,
		Default: []string{string(shadcn.DefaultPreset)},
	})
	if err != nil {
		return cfg, err
	}
	if choice == skipChoice {
		cfg.Components = shadcn.None
		return cfg, nil
	}
	cfg.Components = shadcn.Preset(choice)
	return cfg, nil
}
