package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/MakeNowJust/heredoc"
	"github.com/aurimyth/aury-web/internal/branding"
	"github.com/aurimyth/aury-web/internal/config"
	"github.com/aurimyth/aury-web/internal/prompt"
	"github.com/aurimyth/aury-web/internal/runner"
	"github.com/aurimyth/aury-web/internal/templates"
	"github.com/aurimyth/aury-web/internal/ui"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	templatesDir string
	noColor      bool
	verbose      bool
)

// Seams replaced in tests.
var (
	newRunner   = func() runner.CommandRunner { return runner.NewExec() }
	newPrompter = func() prompt.Prompter { return prompt.NewSurvey() }
	now         = time.Now
	logger      = slog.New(slog.DiscardHandler)
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: heredoc.Docf(`
		%s scaffolds React applications built on Vite, TanStack Router,
		Tailwind CSS and shadcn/ui, and generates features, components, pages,
		API modules, stores and hooks inside them.
	`, branding.DisplayName()),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		logger = slog.New(slog.DiscardHandler)
		if verbose {
			logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&templatesDir, "templates-dir", "", "Use templates from this directory instead of the built-in ones")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug logs to stderr")
}

// Execute runs the root command with build info injected via ldflags.
// Errors are printed once to stderr; a cancelled prompt is not an error.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.ExecuteContext(context.Background())
	if err == nil {
		return nil
	}
	if errors.Is(err, prompt.ErrAborted) {
		ui.New(rootCmd.ErrOrStderr(), !noColor).Warn("Cancelled")
		return nil
	}
	ui.New(rootCmd.ErrOrStderr(), !noColor).Error("%v", err)
	return err
}

func printer(cmd *cobra.Command) *ui.Printer {
	return ui.New(cmd.OutOrStdout(), !noColor)
}

func errPrinter(cmd *cobra.Command) *ui.Printer {
	return ui.New(cmd.ErrOrStderr(), !noColor)
}

// templatesRoot resolves --templates-dir, then the templates_dir setting,
// then the built-in templates.
func templatesRoot() (fs.FS, error) {
	dir := templatesDir
	if dir == "" {
		dir = config.Get(config.KeyTemplatesDir)
	}
	root, err := templates.Resolve(dir)
	if err != nil {
		return nil, err
	}
	if dir != "" {
		logger.Debug("using templates from disk", "dir", dir)
	}
	return root, nil
}

func workingDir() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	return wd, nil
}
