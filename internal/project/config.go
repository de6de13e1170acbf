package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aurimyth/aury-web/internal/branding"
	"go.yaml.in/yaml/v3"
)

// ConfigFile is the metadata file name inside the project's dot-directory.
const ConfigFile = "project.yaml"

// ErrNoConfig is returned by LoadConfig when dir holds no project file.
var ErrNoConfig = errors.New("not an aury-web project")

// Config is the metadata persisted for a generated project.
type Config struct {
	Theme          string   `yaml:"theme"`
	Version        string   `yaml:"version"`
	PackageManager string   `yaml:"packageManager,omitempty"`
	Components     []string `yaml:"components,omitempty"`
	CreatedAt      string   `yaml:"createdAt"`
}

// ConfigPath returns the metadata file path for the project in dir.
func ConfigPath(dir string) string {
	return filepath.Join(dir, branding.HomeDir(), ConfigFile)
}

// WriteConfig validates cfg and writes it to the project in dir.
func WriteConfig(dir string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling project config: %w", err)
	}

	path := ConfigPath(dir)
	res, err := Validate(data)
	if err != nil {
		return err
	}
	if !res.Valid {
		return &ValidationError{Path: path, Issues: res.Issues}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// LoadConfig reads and validates the metadata of the project in dir.
func LoadConfig(dir string) (*Config, error) {
	path := ConfigPath(dir)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", dir, ErrNoConfig)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	res, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if !res.Valid {
		return nil, &ValidationError{Path: path, Issues: res.Issues}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}
