package cli

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/aurimyth/aury-web/internal/branding"
	"github.com/aurimyth/aury-web/internal/config"
	"github.com/aurimyth/aury-web/internal/pkgmgr"
	"github.com/aurimyth/aury-web/internal/project"
	"github.com/aurimyth/aury-web/internal/prompt"
	"github.com/aurimyth/aury-web/internal/shadcn"
	"github.com/aurimyth/aury-web/internal/theme"
	"github.com/spf13/cobra"
)

var (
	initTemplate       string
	initPM             string
	initComponents     string
	initSkipComponents bool
	initSkipGit        bool
	initSkipInstall    bool
)

var initCmd = &cobra.Command{
	Use:   "init [name]",
	Short: "Create a new project",
	Long: heredoc.Doc(`
		Create a new React project from the built-in templates.

		Missing choices (name, theme, package manager, component preset) are
		asked interactively. Use "." as the name to initialize the current
		directory.
	`),
	Example: heredoc.Doc(`
		aury-web init my-app
		aury-web init . --template cyberpunk --pm pnpm --components minimal
		aury-web init shop --skip-install
	`),
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initTemplate, "template", "t", "", "Theme to use (minimal, cyberpunk)")
	initCmd.Flags().StringVar(&initPM, "pm", "", "Package manager (npm, pnpm, yarn, bun)")
	initCmd.Flags().StringVar(&initComponents, "components", "", "Shadcn UI preset (minimal, standard, full)")
	initCmd.Flags().BoolVar(&initSkipComponents, "skip-components", false, "Do not install Shadcn UI components")
	initCmd.Flags().BoolVar(&initSkipGit, "skip-git", false, "Do not initialize a git repository")
	initCmd.Flags().BoolVar(&initSkipInstall, "skip-install", false, "Do not install dependencies")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := printer(cmd)

	cfg, err := initConfigFromFlags(args)
	if err != nil {
		return err
	}

	root, err := templatesRoot()
	if err != nil {
		return err
	}
	catalog, err := theme.Load(root)
	if err != nil {
		return err
	}
	if cfg.Template != "" {
		if _, err := catalog.Get(cfg.Template); err != nil {
			return fmt.Errorf("unknown theme %q (available: %v)", cfg.Template, catalog.Names())
		}
	}

	cwd, err := workingDir()
	if err != nil {
		return err
	}

	out.Title("Create %s", branding.DisplayName())

	r := newRunner()
	wizard := prompt.Wizard{
		Prompter: newPrompter(),
		Themes:   catalog.Themes,
		Managers: func(ctx context.Context) []pkgmgr.Detected { return pkgmgr.Detect(ctx, r) },
	}
	cfg, err = wizard.Run(ctx, cfg, cwd)
	if err != nil {
		return err
	}
	logger.Debug("init config", "name", cfg.Name, "dir", cfg.Dir, "template", cfg.Template, "pm", cfg.PackageManager, "components", cfg.Components)

	res, err := project.Create(ctx, cfg, project.Deps{
		Templates: root,
		Runner:    r,
		Logger:    logger,
		Progress:  func(msg string) { out.Step("%s", msg) },
		Version:   buildVersion,
		Now:       now,
	})
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	for _, w := range res.Warnings {
		out.Warn("%s", w)
	}
	if len(res.Warnings) > 0 && cfg.InstallsComponents() && res.Components == nil {
		out.Detail("Install components later with: %s", shadcn.ManualCommand(cfg.PackageManager, shadcn.Components(cfg.Components)))
	}
	out.Success("Project created successfully!")

	out.Blank()
	out.Info("Next steps:")
	if cfg.Name != "." {
		out.Command("cd " + cfg.Name)
	}
	if cfg.SkipInstall {
		out.Command(pkgmgr.InstallCommand(cfg.PackageManager, "").String())
	}
	out.Command(pkgmgr.RunScriptCommand(cfg.PackageManager, "dev", "").String())
	out.Blank()
	return nil
}

// initConfigFromFlags builds the starting InitConfig from arguments, flags
// and user settings.
func initConfigFromFlags(args []string) (project.InitConfig, error) {
	cfg := project.InitConfig{
		Template:       firstNonEmpty(initTemplate, config.Get(config.KeyTemplate)),
		SkipComponents: initSkipComponents,
		SkipGit:        initSkipGit,
		SkipInstall:    initSkipInstall,
	}
	if len(args) == 1 {
		cfg.Name = args[0]
	}

	if pm := firstNonEmpty(initPM, config.Get(config.KeyPackageManager)); pm != "" {
		m, err := pkgmgr.Parse(pm)
		if err != nil {
			return cfg, err
		}
		cfg.PackageManager = m
	}

	if preset := firstNonEmpty(initComponents, config.Get(config.KeyComponents)); preset != "" && !cfg.SkipComponents {
		p, err := shadcn.ParsePreset(preset)
		if err != nil {
			return cfg, err
		}
		cfg.Components = p
	}
	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
