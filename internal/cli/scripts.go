package cli

import (
	"fmt"

	"github.com/aurimyth/aury-web/internal/pkgmgr"
	"github.com/aurimyth/aury-web/internal/runner"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(scriptCmd("dev", "Start the development server"))
	rootCmd.AddCommand(scriptCmd("build", "Build the project for production"))
	rootCmd.AddCommand(scriptCmd("preview", "Preview the production build"))
}

// scriptCmd delegates to the package.json script of the same name using the
// project's package manager.
func scriptCmd(script, short string) *cobra.Command {
	return &cobra.Command{
		Use:   script,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd, script)
		},
	}
}

func runScript(cmd *cobra.Command, script string) error {
	ctx := cmd.Context()
	cwd, err := workingDir()
	if err != nil {
		return err
	}

	r := newRunner()
	pm := pkgmgr.Recommend(ctx, r, cwd)
	c := pkgmgr.RunScriptCommand(pm, script, cwd)
	c.Stdio = runner.StdioInherit
	logger.Debug("running script", "command", c.String(), "dir", cwd)

	res, err := r.Run(ctx, c)
	if err == nil && res.Success() {
		return nil
	}

	ep := errPrinter(cmd)
	ep.Info("Try one of:")
	for _, m := range pkgmgr.All() {
		if m != pm {
			ep.Command(pkgmgr.RunScriptCommand(m, script, "").String())
		}
	}
	if err != nil {
		return fmt.Errorf("running %s: %w", c, err)
	}
	return fmt.Errorf("%s exited with code %d", c, res.Code)
}
