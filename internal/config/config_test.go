package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func setupHome(t *testing.T) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestSetAndGet(t *testing.T) {
	home := setupHome(t)
	Load()

	if err := Set(KeyPackageManager, "pnpm"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if got := Get(KeyPackageManager); got != "pnpm" {
		t.Errorf("Get() = %q, want %q", got, "pnpm")
	}

	data, err := os.ReadFile(filepath.Join(home, ".aury", "config.yaml"))
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(data), "package_manager: pnpm") {
		t.Errorf("config file missing key, got:\n%s", data)
	}
}

func TestSetUnknownKey(t *testing.T) {
	setupHome(t)
	Load()

	if err := Set("mirror_url", "x"); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestEnvOverride(t *testing.T) {
	setupHome(t)
	t.Setenv("AURY_TEMPLATES_DIR", "/srv/templates")
	Load()

	if got := Get(KeyTemplatesDir); got != "/srv/templates" {
		t.Errorf("Get(templates_dir) = %q, want %q", got, "/srv/templates")
	}
}

func TestKeysSorted(t *testing.T) {
	keys := Keys()
	if len(keys) != 4 {
		t.Fatalf("expected 4 keys, got %d", len(keys))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1][0] > keys[i][0] {
			t.Errorf("keys not sorted: %q before %q", keys[i-1][0], keys[i][0])
		}
	}
}
