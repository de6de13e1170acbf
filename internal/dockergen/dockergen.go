// Package dockergen writes a Docker build setup into an existing project.
package dockergen

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/aurimyth/aury-web/internal/scaffold"
)

// TemplateDir is the docker template directory inside a templates root.
const TemplateDir = "docker"

// ErrNotProject is returned when the target has no package.json.
var ErrNotProject = errors.New("no package.json found; run this command in a project directory")

// Options select the Dockerfile variant.
type Options struct {
	// Nginx serves the build with nginx instead of a Node static server.
	Nginx bool
	// MultiStage builds inside the image instead of copying a host build.
	MultiStage bool
	// ProjectName tags the compose image.
	ProjectName string
}

// File is one generated output.
type File struct {
	Name   string
	Source string
	Note   string
}

// Plan lists the files Generate writes for opts, in write order.
func Plan(opts Options) []File {
	files := []File{
		{Name: "Dockerfile", Source: dockerfileSource(opts), Note: dockerfileNote(opts)},
		{Name: "docker-compose.yml", Source: "docker-compose.yml", Note: "Container orchestration"},
		{Name: ".dockerignore", Source: ".dockerignore", Note: "Build optimization"},
	}
	if opts.Nginx {
		files = append(files, File{Name: "nginx.conf", Source: "nginx.conf", Note: "SPA-ready Nginx config"})
	}
	return files
}

func dockerfileSource(opts Options) string {
	switch {
	case opts.Nginx && opts.MultiStage:
		return "Dockerfile.nginx"
	case opts.Nginx:
		return "Dockerfile.nginx-single"
	case opts.MultiStage:
		return "Dockerfile.node"
	default:
		return "Dockerfile.node-single"
	}
}

func dockerfileNote(opts Options) string {
	server := "Node static server"
	if opts.Nginx {
		server = "Nginx"
	}
	if opts.MultiStage {
		return "Multi-stage build served by " + server
	}
	return "Single-stage image served by " + server
}

// ports returns the host and container ports for compose.
func ports(opts Options) (host, container string) {
	switch dockerfileSource(opts) {
	case "Dockerfile.nginx", "Dockerfile.nginx-single":
		return "8080", "80"
	case "Dockerfile.node":
		return "3000", "3000"
	default:
		return "4173", "4173"
	}
}

// Existing returns the names from Plan(opts) already present in dir.
func Existing(dir string, opts Options) []string {
	var found []string
	for _, f := range Plan(opts) {
		if _, err := os.Stat(filepath.Join(dir, f.Name)); err == nil {
			found = append(found, f.Name)
		}
	}
	return found
}

// IsProject reports whether dir has a package.json.
func IsProject(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, "package.json"))
	return err == nil
}

// Generate writes the Docker files into the project at dir, overwriting any
// existing ones. Callers confirm overwrites beforehand.
func Generate(root fs.FS, dir string, opts Options) ([]File, error) {
	if !IsProject(dir) {
		return nil, ErrNotProject
	}
	if opts.ProjectName == "" {
		opts.ProjectName = filepath.Base(dir)
	}

	host, container := ports(opts)
	rep := scaffold.Replacements{
		"PROJECT_NAME":   opts.ProjectName,
		"HOST_PORT":      host,
		"CONTAINER_PORT": container,
	}

	files := Plan(opts)
	for _, f := range files {
		data, err := fs.ReadFile(root, path.Join(TemplateDir, f.Source))
		if err != nil {
			return nil, &scaffold.ConfigurationError{Template: TemplateDir, Reason: "missing " + f.Source, Err: err}
		}
		dst := filepath.Join(dir, f.Name)
		if err := os.WriteFile(dst, []byte(rep.Apply(string(data))), 0o644); err != nil {
			return nil, &scaffold.IOError{Op: "write", Path: dst, Err: err}
		}
	}
	return files, nil
}

// Usage lists follow-up commands for the generated setup.
func Usage() [][2]string {
	return [][2]string{
		{"docker compose up --build", "Build and run"},
		{"docker compose up -d", "Run in background"},
	}
}
