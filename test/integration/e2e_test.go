//go:build integration

package integration_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aurimyth/aury-web/internal/dockergen"
	"github.com/aurimyth/aury-web/internal/docs"
	"github.com/aurimyth/aury-web/internal/generate"
	"github.com/aurimyth/aury-web/internal/pkgmgr"
	"github.com/aurimyth/aury-web/internal/project"
	"github.com/aurimyth/aury-web/internal/runner"
	"github.com/aurimyth/aury-web/internal/shadcn"
	"github.com/aurimyth/aury-web/internal/templates"
	"github.com/aurimyth/aury-web/internal/theme"
)

// TestFullFlowCreateAndExtend tests the complete flow:
// create project -> generate code -> add docker and docs -> verify state.
func TestFullFlowCreateAndExtend(t *testing.T) {
	env := setupTestEnv(t)
	rec := runner.NewRecorder()
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	// Step 1: Create a project from the cyberpunk theme.
	cfg := project.InitConfig{
		Name:           "shop",
		Template:       "cyberpunk",
		PackageManager: pkgmgr.PNPM,
		Components:     shadcn.Standard,
	}.ResolveTarget(env.ProjectDir)

	res, err := project.Create(context.Background(), cfg, project.Deps{
		Templates: templates.Embedded(),
		Runner:    rec,
		Version:   "1.0.0",
		Now:       func() time.Time { return created },
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("Create warnings = %v, want none", res.Warnings)
	}
	if !res.GitInit || !res.Installed {
		t.Errorf("GitInit = %v, Installed = %v, want both true", res.GitInit, res.Installed)
	}

	dir := cfg.Dir
	assertFileContains(t, filepath.Join(dir, "package.json"), `"name": "shop"`)
	assertFileContains(t, filepath.Join(dir, ".gitignore"), "node_modules")
	assertFileContains(t, filepath.Join(dir, "src/index.css"), "neon-text")
	assertDirExists(t, filepath.Join(dir, "src/components/common"))

	lines := rec.Lines()
	if len(lines) != 3 {
		t.Fatalf("recorded %d commands, want 3: %v", len(lines), lines)
	}
	if lines[0] != "git init" || lines[1] != "pnpm install" {
		t.Errorf("commands = %v, want git init then pnpm install first", lines)
	}

	// Step 2: Verify project metadata.
	if got := theme.Current(dir); got != "cyberpunk" {
		t.Errorf("theme.Current() = %q, want %q", got, "cyberpunk")
	}
	meta, err := project.LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if meta.CreatedAt != "2025-03-01T12:00:00Z" {
		t.Errorf("CreatedAt = %q, want %q", meta.CreatedAt, "2025-03-01T12:00:00Z")
	}
	if len(meta.Components) != len(shadcn.Components(shadcn.Standard)) {
		t.Errorf("recorded %d components, want %d", len(meta.Components), len(shadcn.Components(shadcn.Standard)))
	}

	// Step 3: Generate code inside the project.
	for _, g := range []struct {
		kind generate.Kind
		name string
	}{
		{generate.Feature, "orders"},
		{generate.Component, "price-tag"},
		{generate.Hook, "cart"},
		{generate.Store, "cart"},
		{generate.Page, "checkout"},
	} {
		if _, err := generate.Generate(g.kind, g.name, generate.Options{Root: dir}); err != nil {
			t.Fatalf("Generate(%s, %s): %v", g.kind, g.name, err)
		}
	}
	assertFileExists(t, filepath.Join(dir, "src/features/orders/api/orders.ts"))
	assertFileContains(t, filepath.Join(dir, "src/components/common/index.ts"), "export * from './PriceTag'")
	assertFileContains(t, filepath.Join(dir, "src/hooks/index.ts"), "export * from './useCart'")
	assertFileContains(t, filepath.Join(dir, "src/stores/index.ts"), "export * from './cartStore'")
	assertFileExists(t, filepath.Join(dir, "src/routes/checkout.tsx"))

	if _, err := generate.Generate(generate.Feature, "orders", generate.Options{Root: dir}); !errors.Is(err, generate.ErrExists) {
		t.Errorf("second Generate(feature, orders) error = %v, want ErrExists", err)
	}

	// Step 4: Add Docker and documentation.
	if _, err := dockergen.Generate(templates.Embedded(), dir, dockergen.Options{Nginx: true, MultiStage: true}); err != nil {
		t.Fatalf("dockergen.Generate: %v", err)
	}
	assertFileContains(t, filepath.Join(dir, "docker-compose.yml"), "shop:latest")
	assertFileExists(t, filepath.Join(dir, "nginx.conf"))

	if _, err := docs.Generate(templates.Embedded(), dir, created); err != nil {
		t.Fatalf("docs.Generate: %v", err)
	}
	assertDirExists(t, filepath.Join(dir, docs.DocsDir))
	assertFileContains(t, filepath.Join(dir, docs.AgentsFile), "shop")
}

// TestCreateFromTemplatesDir creates a project from an on-disk templates
// root that only has a base tree.
func TestCreateFromTemplatesDir(t *testing.T) {
	env := setupTestEnv(t)

	tplDir := t.TempDir()
	writeFile(t, filepath.Join(tplDir, "base", "package.json"), `{"name": "{{PROJECT_NAME}}"}`+"\n")
	writeFile(t, filepath.Join(tplDir, "base", "src", "main.tsx"), "// {{PROJECT_NAME}}\n")
	writeFile(t, filepath.Join(tplDir, "base", "node_modules", "x", "index.js"), "skip\n")

	root, err := templates.Resolve(tplDir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	cfg := project.InitConfig{Name: "plain", PackageManager: pkgmgr.NPM, SkipGit: true, SkipInstall: true}.ResolveTarget(env.ProjectDir)
	if _, err := project.Create(context.Background(), cfg, project.Deps{Templates: root, Runner: runner.NewRecorder()}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	assertFileContains(t, filepath.Join(cfg.Dir, "src", "main.tsx"), "// plain")
	assertFileNotExists(t, filepath.Join(cfg.Dir, "node_modules"))
	assertFileNotExists(t, filepath.Join(cfg.Dir, ".gitignore"))
	if got := theme.Current(cfg.Dir); got != "base" {
		t.Errorf("theme.Current() = %q, want %q", got, "base")
	}
	if _, err := os.Stat(filepath.Join(cfg.Dir, ".aury", "project.yaml")); err != nil {
		t.Errorf("project metadata missing: %v", err)
	}
}
