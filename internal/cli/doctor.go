package cli

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/aurimyth/aury-web/internal/pkgmgr"
	"github.com/aurimyth/aury-web/internal/runner"
	"github.com/spf13/cobra"
)

// minNode is the oldest Node.js the templates build with.
const minNode = ">= 18.0.0"

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the local toolchain",
	Long:  `Report installed package managers, git, and whether Node.js is recent enough.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := printer(cmd)
		r := newRunner()

		out.Title("Package managers")
		detected := pkgmgr.Detect(ctx, r)
		if len(detected) == 0 {
			out.Warn("No package manager found")
		}
		for _, d := range detected {
			v := "unknown version"
			if d.Version != nil {
				v = d.Version.String()
			}
			out.Item(d.Manager.String(), v)
		}

		out.Blank()
		out.Title("Tools")
		problems := 0
		if v, ok := toolVersion(cmd, r, "git"); ok {
			out.Success("git %s", v)
		} else {
			out.Warn("git not found; projects will be created without a repository")
		}

		constraint, err := semver.NewConstraint(minNode)
		if err != nil {
			return fmt.Errorf("parsing node constraint: %w", err)
		}
		nodeVersion, ok := toolVersion(cmd, r, "node")
		switch {
		case !ok:
			out.Error("node not found (need %s)", minNode)
			problems++
		case !constraint.Check(nodeVersion):
			out.Error("node %s is too old (need %s)", nodeVersion, minNode)
			problems++
		default:
			out.Success("node %s", nodeVersion)
		}

		if problems > 0 || len(detected) == 0 {
			return fmt.Errorf("doctor found problems")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func toolVersion(cmd *cobra.Command, r runner.CommandRunner, name string) (*semver.Version, bool) {
	res, err := r.Run(cmd.Context(), runner.Command{Name: name, Args: []string{"--version"}, Stdio: runner.StdioCapture})
	if err != nil || !res.Success() {
		logger.Debug("tool probe failed", "tool", name, "err", err, "code", res.Code)
		return nil, false
	}
	v, err := pkgmgr.ParseVersion(res.Output)
	if err != nil {
		logger.Debug("unparseable version", "tool", name, "output", res.Output)
		return nil, false
	}
	return v, true
}
