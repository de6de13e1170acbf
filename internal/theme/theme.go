// Package theme reads the theme catalog that ships with the templates and
// answers which theme a project was created with.
package theme

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/Masterminds/semver/v3"
	"github.com/aurimyth/aury-web/internal/project"
	"github.com/aurimyth/aury-web/internal/scaffold"
	"go.yaml.in/yaml/v3"
)

// CatalogFile is the catalog path inside a templates root.
const CatalogFile = "themes.yaml"

// Unknown is reported by Current when the project records no theme.
const Unknown = "unknown"

// ErrNotFound is returned by Catalog.Get for names not in the catalog.
var ErrNotFound = errors.New("theme not found")

// Theme describes one installable theme.
type Theme struct {
	Name        string `yaml:"name"`
	DisplayName string `yaml:"displayName"`
	Description string `yaml:"description"`
	Author      string `yaml:"author"`
	Version     string `yaml:"version"`

	// Installed reports whether the templates root has an overlay tree.
	Installed bool `yaml:"-"`
}

// SemVer parses the theme's version.
func (t Theme) SemVer() (*semver.Version, error) {
	return semver.NewVersion(t.Version)
}

// Catalog is the ordered list of themes in a templates root.
type Catalog struct {
	Themes []Theme `yaml:"themes"`
}

// Load reads the catalog from the templates root. Themes present as overlay
// directories but missing from the catalog file are appended by name so the
// listing never hides an installable theme.
func Load(root fs.FS) (*Catalog, error) {
	var cat Catalog

	data, err := fs.ReadFile(root, CatalogFile)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cat); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", CatalogFile, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("reading %s: %w", CatalogFile, err)
	}

	seen := make(map[string]bool, len(cat.Themes))
	for i := range cat.Themes {
		t := &cat.Themes[i]
		if t.Name == "" {
			return nil, fmt.Errorf("%s: theme #%d has no name", CatalogFile, i+1)
		}
		if seen[t.Name] {
			return nil, fmt.Errorf("%s: duplicate theme %q", CatalogFile, t.Name)
		}
		if t.Version != "" {
			if _, err := t.SemVer(); err != nil {
				return nil, fmt.Errorf("%s: theme %q has invalid version %q: %w", CatalogFile, t.Name, t.Version, err)
			}
		}
		seen[t.Name] = true
		t.Installed = scaffold.HasTheme(root, t.Name)
	}

	entries, err := fs.ReadDir(root, scaffold.ThemesDir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("listing themes: %w", err)
	}
	var extra []string
	for _, e := range entries {
		if e.IsDir() && !seen[e.Name()] {
			extra = append(extra, e.Name())
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		cat.Themes = append(cat.Themes, Theme{Name: name, DisplayName: name, Installed: true})
	}

	return &cat, nil
}

// Names returns the theme names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Themes))
	for i, t := range c.Themes {
		names[i] = t.Name
	}
	return names
}

// Get returns the named theme.
func (c *Catalog) Get(name string) (Theme, error) {
	for _, t := range c.Themes {
		if t.Name == name {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("%q: %w", name, ErrNotFound)
}

// Current returns the theme recorded for the project in dir, or Unknown when
// dir is not a project or the metadata cannot be read.
func Current(dir string) string {
	cfg, err := project.LoadConfig(dir)
	if err != nil || cfg.Theme == "" {
		return Unknown
	}
	return cfg.Theme
}
