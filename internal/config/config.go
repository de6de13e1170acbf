package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/aurimyth/aury-web/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyPackageManager = "package_manager"
	KeyTemplate       = "template"
	KeyComponents     = "components"
	KeyTemplatesDir   = "templates_dir"
)

var knownKeys = map[string]string{
	KeyPackageManager: "Default package manager for init (npm, pnpm, yarn, bun)",
	KeyTemplate:       "Default theme for init",
	KeyComponents:     "Default Shadcn UI preset for init (minimal, standard, full)",
	KeyTemplatesDir:   "Directory with base/ and themes/ that replaces the built-in templates",
}

// Dir returns the path to the config directory (~/.aury/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.aury/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()
	for key := range knownKeys {
		_ = viper.BindEnv(key)
	}

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Known reports whether key is a recognized configuration key.
func Known(key string) bool {
	_, ok := knownKeys[key]
	return ok
}

// Keys returns the recognized keys with their descriptions, sorted by key.
func Keys() [][2]string {
	out := make([][2]string, 0, len(knownKeys))
	for k, v := range knownKeys {
		out = append(out, [2]string{k, v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !Known(key) {
		return fmt.Errorf("unknown config key %q", key)
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
