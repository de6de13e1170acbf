package cli

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/aurimyth/aury-web/internal/dockergen"
	"github.com/aurimyth/aury-web/internal/prompt"
	"github.com/spf13/cobra"
)

var (
	dockerNginx      bool
	dockerMultiStage bool
	dockerForce      bool
)

var dockerCmd = &cobra.Command{
	Use:   "docker",
	Short: "Generate Dockerfile, docker-compose.yml and .dockerignore",
	Long: heredoc.Doc(`
		Generate a Docker setup for the project in the current directory.

		By default the app is built inside the image and served by nginx.
		Use --nginx=false to serve it with a Node static server instead, and
		--multi-stage=false to copy a host build (run the build script first).
	`),
	Example: heredoc.Doc(`
		aury-web docker
		aury-web docker --nginx=false
		aury-web docker --multi-stage=false --force
	`),
	Args: cobra.NoArgs,
	RunE: runDocker,
}

func init() {
	dockerCmd.Flags().BoolVar(&dockerNginx, "nginx", true, "Serve the build with nginx")
	dockerCmd.Flags().BoolVar(&dockerMultiStage, "multi-stage", true, "Build the app inside the image")
	dockerCmd.Flags().BoolVarP(&dockerForce, "force", "f", false, "Overwrite existing files without asking")
	rootCmd.AddCommand(dockerCmd)
}

func runDocker(cmd *cobra.Command, args []string) error {
	out := printer(cmd)
	cwd, err := workingDir()
	if err != nil {
		return err
	}
	if !dockergen.IsProject(cwd) {
		return dockergen.ErrNotProject
	}
	opts := dockergen.Options{Nginx: dockerNginx, MultiStage: dockerMultiStage}

	if existing := dockergen.Existing(cwd, opts); len(existing) > 0 && !dockerForce {
		ok, err := newPrompter().Confirm(cmd.Context(), prompt.ConfirmConfig{
			Message: fmt.Sprintf("%s already exist. Overwrite?", strings.Join(existing, ", ")),
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
	files, err := dockergen.Generate(root, cwd, opts)
	if err != nil {
		return fmt.Errorf("failed to generate Docker files: %w", err)
	}

	out.Success("Docker configuration generated!")
	for _, f := range files {
		out.Item(f.Name, f.Note)
	}
	out.Blank()
	out.Info("Usage:")
	out.Table(dockergen.Usage())
	if !opts.MultiStage {
		out.Detail("Run the build script before building the image.")
	}
	return nil
}
