// Package docs writes the project documentation set (aury_docs/ and
// AGENTS.md) from the base template into an existing project.
package docs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/aurimyth/aury-web/internal/scaffold"
)

const (
	// DocsDir is the documentation directory name in base and in projects.
	DocsDir = "aury_docs"
	// AgentsFile is the assistant guide at the project root.
	AgentsFile = "AGENTS.md"
)

// ErrNotProject is returned when the target has no package.json.
var ErrNotProject = errors.New("no package.json found; run this command in a project directory")

// Actions are the subcommands of the docs command.
var Actions = []string{"generate"}

// Result lists the written files relative to the project root.
type Result struct {
	Files []string
}

// Exists reports whether the project at dir already has a docs directory.
func Exists(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, DocsDir))
	return err == nil && info.IsDir()
}

// Generate copies the documentation templates into the project at dir,
// substituting the project's name and description from package.json.
func Generate(root fs.FS, dir string, now time.Time) (*Result, error) {
	pkg, err := readPackageJSON(dir)
	if err != nil {
		return nil, err
	}

	rep := scaffold.Replacements{
		"PROJECT_NAME":        pkg.Name,
		"PROJECT_DESCRIPTION": pkg.Description,
		"TIMESTAMP":           now.UTC().Format(time.RFC3339),
	}
	res := &Result{}

	entries, err := scaffold.CopyTree(root, path.Join(scaffold.BaseDir, DocsDir), filepath.Join(dir, DocsDir), rep)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.Kind == scaffold.KindFile {
			res.Files = append(res.Files, path.Join(DocsDir, e.Path))
		}
	}

	data, err := fs.ReadFile(root, path.Join(scaffold.BaseDir, AgentsFile))
	switch {
	case err == nil:
		dst := filepath.Join(dir, AgentsFile)
		if err := os.WriteFile(dst, []byte(rep.Apply(string(data))), 0o644); err != nil {
			return nil, &scaffold.IOError{Op: "write", Path: dst, Err: err}
		}
		res.Files = append(res.Files, AgentsFile)
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, &scaffold.IOError{Op: "read", Path: AgentsFile, Err: err}
	}

	return res, nil
}

type packageJSON struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func readPackageJSON(dir string) (*packageJSON, error) {
	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotProject
		}
		return nil, fmt.Errorf("reading package.json: %w", err)
	}
	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("parsing package.json: %w", err)
	}
	if pkg.Name == "" {
		pkg.Name = filepath.Base(dir)
	}
	return &pkg, nil
}
