package cli

import (
	"strings"

	"github.com/aurimyth/aury-web/internal/pkgmgr"
	"github.com/aurimyth/aury-web/internal/shadcn"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:     "add <components...>",
	Short:   "Add Shadcn UI components to the current project",
	Example: "  aury-web add button card dialog",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := printer(cmd)

		cwd, err := workingDir()
		if err != nil {
			return err
		}
		r := newRunner()
		pm := pkgmgr.Recommend(ctx, r, cwd)
		logger.Debug("adding components", "pm", pm, "components", args)

		out.Info("Adding components: %s", out.Accent(strings.Join(args, ", ")))
		if err := shadcn.Add(ctx, r, cwd, pm, args); err != nil {
			errPrinter(cmd).Info("You can try manually: %s", shadcn.ManualCommand(pkgmgr.NPM, args))
			return err
		}
		out.Success("Done!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
