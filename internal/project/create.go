package project

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/aurimyth/aury-web/internal/pkgmgr"
	"github.com/aurimyth/aury-web/internal/runner"
	"github.com/aurimyth/aury-web/internal/scaffold"
	"github.com/aurimyth/aury-web/internal/shadcn"
)

// Description is written into package.json of every new project.
const Description = "A modern React app created with Create Aury Web"

var namePattern = regexp.MustCompile(`^[a-z0-9.-]+$`)

// InitConfig is everything the init flow needs. The wizard fills it in one
// step at a time; flags pre-populate it.
type InitConfig struct {
	// Name is what the user typed; "." means the current directory.
	Name string
	// Dir is the absolute project directory.
	Dir string
	// PackageName goes into package.json.
	PackageName    string
	Template       string
	PackageManager pkgmgr.Manager
	Components     shadcn.Preset
	SkipComponents bool
	SkipGit        bool
	SkipInstall    bool
}

// ValidateName reports whether name is usable as a project name.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("project name is required")
	}
	if name == "." {
		return nil
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("project name %q can only contain lowercase letters, numbers, hyphens, and dots", name)
	}
	return nil
}

// ResolveTarget fills Dir and PackageName from Name relative to cwd.
func (c InitConfig) ResolveTarget(cwd string) InitConfig {
	if c.Name == "." {
		c.Dir = cwd
		c.PackageName = filepath.Base(cwd)
		return c
	}
	c.Dir = filepath.Join(cwd, c.Name)
	c.PackageName = filepath.Base(c.Name)
	return c
}

// InstallsComponents reports whether Create will run the component installer.
func (c InitConfig) InstallsComponents() bool {
	return !c.SkipInstall && !c.SkipComponents && c.Components != "" && c.Components != shadcn.None
}

// Deps are the collaborators Create talks to.
type Deps struct {
	Templates fs.FS
	Runner    runner.CommandRunner
	Logger    *slog.Logger
	// Progress receives one line per step; may be nil.
	Progress func(msg string)
	// Version is recorded in the project metadata.
	Version string
	Now     func() time.Time
}

// CreateResult describes what Create did.
type CreateResult struct {
	Dir        string
	Manifest   *scaffold.Result
	Config     Config
	GitInit    bool
	Installed  bool
	Components []string
	// Warnings are non-fatal failures (git init, component install).
	Warnings []string
}

// Create materializes a new project according to cfg. Template or install
// failures abort; git and component failures are recorded as warnings.
func Create(ctx context.Context, cfg InitConfig, deps Deps) (*CreateResult, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("project directory not set")
	}
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	now := time.Now
	if deps.Now != nil {
		now = deps.Now
	}
	progress := func(msg string) {
		log.Debug(msg, "dir", cfg.Dir)
		if deps.Progress != nil {
			deps.Progress(msg)
		}
	}

	res := &CreateResult{Dir: cfg.Dir}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating project directory: %w", err)
	}

	progress("Copying template files...")
	createdAt := now().UTC().Format(time.RFC3339)
	manifest, err := scaffold.Materialize(deps.Templates, cfg.Template, cfg.Dir, scaffold.Replacements{
		"PROJECT_NAME":        cfg.PackageName,
		"PROJECT_DESCRIPTION": Description,
		"TIMESTAMP":           createdAt,
	})
	if err != nil {
		return nil, fmt.Errorf("copying template: %w", err)
	}
	res.Manifest = manifest
	log.Debug("template materialized", "files", len(manifest.Files()), "theme", manifest.ThemeApplied)

	if !cfg.SkipGit {
		if _, err := os.Stat(filepath.Join(cfg.Dir, ".git")); os.IsNotExist(err) {
			progress("Initializing git repository...")
			gitRes, err := deps.Runner.Run(ctx, runner.Command{Name: "git", Args: []string{"init"}, Dir: cfg.Dir, Stdio: runner.StdioDiscard})
			switch {
			case err != nil:
				res.Warnings = append(res.Warnings, fmt.Sprintf("git init failed: %v", err))
			case !gitRes.Success():
				res.Warnings = append(res.Warnings, fmt.Sprintf("git init exited with code %d", gitRes.Code))
			default:
				res.GitInit = true
			}
		}
		if err := MergeGitignore(cfg.Dir, DefaultIgnores); err != nil {
			return nil, err
		}
	}

	if !cfg.SkipInstall {
		progress(fmt.Sprintf("Installing dependencies with %s...", cfg.PackageManager))
		cmd := pkgmgr.InstallCommand(cfg.PackageManager, cfg.Dir)
		installRes, err := deps.Runner.Run(ctx, cmd)
		if err != nil {
			return nil, fmt.Errorf("installing dependencies: %w", err)
		}
		if !installRes.Success() {
			return nil, fmt.Errorf("installing dependencies: %s exited with code %d", cmd.String(), installRes.Code)
		}
		res.Installed = true
	}

	if cfg.InstallsComponents() {
		progress(fmt.Sprintf("Installing Shadcn UI components (%s)...", cfg.Components))
		if err := shadcn.Install(ctx, deps.Runner, cfg.Dir, cfg.PackageManager, cfg.Components); err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("Shadcn UI installation failed: %v", err))
		} else {
			res.Components = shadcn.Components(cfg.Components)
		}
	}

	version := deps.Version
	if version == "" {
		version = "dev"
	}
	theme := cfg.Template
	if theme == "" {
		theme = scaffold.BaseDir
	}
	res.Config = Config{
		Theme:          theme,
		Version:        version,
		PackageManager: string(cfg.PackageManager),
		Components:     res.Components,
		CreatedAt:      createdAt,
	}
	if err := WriteConfig(cfg.Dir, res.Config); err != nil {
		return nil, fmt.Errorf("writing project metadata: %w", err)
	}

	return res, nil
}

// IsEmptyDir reports whether dir is missing or has no entries.
func IsEmptyDir(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, err
	}
	return len(entries) == 0, nil
}
