package cli

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/aurimyth/aury-web/internal/generate"
	"github.com/aurimyth/aury-web/internal/prompt"
	"github.com/spf13/cobra"
)

var (
	generateInteractive bool
	generateBaseURL     string
)

var generateCmd = &cobra.Command{
	Use:     "generate <type> <name>",
	Aliases: []string{"g"},
	Short:   "Generate a feature, component, page, api, store or hook",
	Long:    generateLong(),
	Example: heredoc.Doc(`
		aury-web generate feature user-profile
		aury-web g c DataTable
		aury-web g api orders --base-url /api/v2/orders
		aury-web g f billing -i
	`),
	Args: cobra.ExactArgs(2),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().BoolVarP(&generateInteractive, "interactive", "i", false, "Choose feature parts and API base URL interactively")
	generateCmd.Flags().StringVar(&generateBaseURL, "base-url", "", "API base URL for api generation")
	rootCmd.AddCommand(generateCmd)
}

func generateLong() string {
	s := "Generate boilerplate inside the current project.\n\nAvailable types:\n"
	for _, k := range generate.Kinds() {
		s += fmt.Sprintf("  %-10s (%s)  %s\n", k, k.Alias(), k.Summary())
	}
	return s
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := printer(cmd)

	kind, err := generate.ParseKind(args[0])
	if err != nil {
		ep := errPrinter(cmd)
		ep.Error("Unknown generator type: %s", args[0])
		ep.Info("Available types:")
		for _, k := range generate.Kinds() {
			ep.Item(fmt.Sprintf("%s (%s)", k, k.Alias()), k.Summary())
		}
		return err
	}
	name := args[1]

	opts := generate.Options{BaseURL: generateBaseURL}
	if generateInteractive {
		p := newPrompter()
		switch kind {
		case generate.Feature:
			opts.Parts, err = askFeatureParts(cmd, p)
		case generate.API:
			if opts.BaseURL == "" {
				opts.BaseURL, err = p.Input(ctx, prompt.InputConfig{
					Message: "API base URL",
					Default: generate.DefaultBaseURL(name),
				})
			}
		case generate.Component, generate.Page, generate.Store, generate.Hook:
		}
		if err != nil {
			return err
		}
	}

	res, err := generate.Generate(kind, name, opts)
	if err != nil {
		if errors.Is(err, generate.ErrExists) {
			return fmt.Errorf("%s %q already exists: %w", kind, name, err)
		}
		return fmt.Errorf("failed to generate %s: %w", kind, err)
	}

	out.Success("%s %q generated!", kind, name)
	for _, f := range res.Files {
		out.Item("created", f)
	}
	for _, f := range res.Updated {
		out.Item("updated", f)
	}
	if res.BaseURL != "" {
		out.Detail("Base URL: %s", res.BaseURL)
	}
	if kind == generate.Page {
		out.Detail("Route: /%s", routeOf(res.Files[0]))
	}
	return nil
}

func askFeatureParts(cmd *cobra.Command, p prompt.Prompter) ([]generate.Part, error) {
	var options []prompt.Option
	var all []string
	for _, part := range generate.AllParts() {
		options = append(options, prompt.Option{Value: string(part), Hint: part.Hint()})
		all = append(all, string(part))
	}
	chosen, err := p.MultiSelect(cmd.Context(), prompt.SelectConfig{
		Message: "Select feature parts to generate",
		Options: options,
		Default: all,
	})
	if err != nil {
		return nil, err
	}
	parts, err := generate.ParseParts(chosen)
	if err != nil {
		return nil, err
	}
	if len(parts) == 0 {
		return nil, prompt.ErrAborted
	}
	return parts, nil
}

// routeOf turns "src/routes/user-settings.tsx" into "user-settings".
func routeOf(file string) string {
	const prefix, suffix = "src/routes/", ".tsx"
	if len(file) > len(prefix)+len(suffix) {
		return file[len(prefix) : len(file)-len(suffix)]
	}
	return file
}
