package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/aurimyth/aury-web/internal/theme"
	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "List and inspect themes",
	Example: heredoc.Doc(`
		aury-web theme list
		aury-web theme current
		aury-web theme describe cyberpunk
	`),
}

var themeListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List available themes",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		out := printer(cmd)
		out.Title("Available themes")
		for _, t := range catalog.Themes {
			desc := t.Description
			if !t.Installed {
				desc += " (not installed)"
			}
			out.Item(t.Name, desc)
		}
		return nil
	},
}

var themeCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the theme of the project in the current directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := workingDir()
		if err != nil {
			return err
		}
		printer(cmd).Info("Current theme: %s", theme.Current(cwd))
		return nil
	},
}

var themeDescribeCmd = &cobra.Command{
	Use:   "describe <name>",
	Short: "Show details for a theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		t, err := catalog.Get(args[0])
		if err != nil {
			return fmt.Errorf("%w (available: %v)", err, catalog.Names())
		}
		out := printer(cmd)
		out.Title("%s", t.DisplayName)
		installed := "no"
		if t.Installed {
			installed = "yes"
		}
		out.Table([][2]string{
			{"name", t.Name},
			{"description", t.Description},
			{"author", t.Author},
			{"version", t.Version},
			{"installed", installed},
		})
		return nil
	},
}

func init() {
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeCurrentCmd)
	themeCmd.AddCommand(themeDescribeCmd)
	rootCmd.AddCommand(themeCmd)
}

func loadCatalog() (*theme.Catalog, error) {
	root, err := templatesRoot()
	if err != nil {
		return nil, err
	}
	return theme.Load(root)
}
