package cli

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/MakeNowJust/heredoc"
	"github.com/aurimyth/aury-web/internal/docs"
	"github.com/aurimyth/aury-web/internal/prompt"
	"github.com/spf13/cobra"
)

var docsForce bool

var docsCmd = &cobra.Command{
	Use:   "docs <action>",
	Short: "Generate project documentation",
	Long: heredoc.Docf(`
		Write %s/ and %s into the project in the current directory.

		Actions:
		  generate   Generate documentation from the templates
	`, docs.DocsDir, docs.AgentsFile),
	Example: "  aury-web docs generate",
	Args:    cobra.ExactArgs(1),
	RunE:    runDocs,
}

func init() {
	docsCmd.Flags().BoolVarP(&docsForce, "force", "f", false, "Overwrite existing documentation without asking")
	rootCmd.AddCommand(docsCmd)
}

func runDocs(cmd *cobra.Command, args []string) error {
	action := args[0]
	if !slices.Contains(docs.Actions, action) {
		ep := errPrinter(cmd)
		ep.Info("Available actions:")
		for _, a := range docs.Actions {
			ep.Item(a, "")
		}
		return fmt.Errorf("unknown docs action %q", action)
	}

	cwd, err := workingDir()
	if err != nil {
		return err
	}
	if docs.Exists(cwd) && !docsForce {
		ok, err := newPrompter().Confirm(cmd.Context(), prompt.ConfirmConfig{
			Message: fmt.Sprintf("%s already exists. Overwrite?", docs.DocsDir),
		})
		if err != nil {
			return err
		}
		if !ok {
			return prompt.ErrAborted
		}
	}

	root, err := templatesRoot()
	if err != nil {
		return err
	}
	res, err := docs.Generate(root, cwd, now())
	if err != nil {
		return fmt.Errorf("failed to generate docs: %w", err)
	}

	out := printer(cmd)
	out.Success("Documentation generated!")
	for _, f := range res.Files {
		out.Item(filepath.ToSlash(f), "")
	}
	return nil
}
