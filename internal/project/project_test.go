package project

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/aurimyth/aury-web/internal/pkgmgr"
	"github.com/aurimyth/aury-web/internal/runner"
	"github.com/aurimyth/aury-web/internal/scaffold"
	"github.com/aurimyth/aury-web/internal/shadcn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTemplates = fstest.MapFS{
	"base/package.json":                   {Data: []byte(`{"name":"{{PROJECT_NAME}}","description":"{{PROJECT_DESCRIPTION}}"}`)},
	"base/.gitignore":                     {Data: []byte("node_modules\ncoverage\n")},
	"base/src/routes/index.tsx":           {Data: []byte("base {{PROJECT_NAME}}")},
	"themes/minimal/src/routes/index.tsx": {Data: []byte("minimal {{PROJECT_NAME}}")},
}

var fixedNow = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

func newConfig(t *testing.T) InitConfig {
	t.Helper()
	return InitConfig{
		Name:           "my-app",
		Template:       "minimal",
		PackageManager: pkgmgr.PNPM,
		Components:     shadcn.Minimal,
	}.ResolveTarget(t.TempDir())
}

func TestValidateName(t *testing.T) {
	for _, ok := range []string{".", "my-app", "app.v2", "a1"} {
		assert.NoError(t, ValidateName(ok), ok)
	}
	for _, bad := range []string{"", "My-App", "my app", "my_app", "../x"} {
		assert.Error(t, ValidateName(bad), bad)
	}
}

func TestResolveTarget(t *testing.T) {
	cfg := InitConfig{Name: "."}.ResolveTarget("/work/shop")
	assert.Equal(t, "/work/shop", cfg.Dir)
	assert.Equal(t, "shop", cfg.PackageName)

	cfg = InitConfig{Name: "web"}.ResolveTarget("/work")
	assert.Equal(t, filepath.Join("/work", "web"), cfg.Dir)
	assert.Equal(t, "web", cfg.PackageName)
}

func TestCreateFullFlow(t *testing.T) {
	cfg := newConfig(t)
	rec := runner.NewRecorder()
	var steps []string

	res, err := Create(context.Background(), cfg, Deps{
		Templates: testTemplates,
		Runner:    rec,
		Progress:  func(msg string) { steps = append(steps, msg) },
		Version:   "1.2.3",
		Now:       fixedNow,
	})
	require.NoError(t, err)

	pkg, err := os.ReadFile(filepath.Join(cfg.Dir, "package.json"))
	require.NoError(t, err)
	assert.Equal(t, `{"name":"my-app","description":"`+Description+`"}`, string(pkg))

	route, err := os.ReadFile(filepath.Join(cfg.Dir, "src/routes/index.tsx"))
	require.NoError(t, err)
	assert.Equal(t, "minimal my-app", string(route))

	assert.Equal(t, []string{
		"git init",
		"pnpm install",
		"pnpm dlx " + strings.Join(append(append([]string{"shadcn@latest", "add"}, shadcn.Components(shadcn.Minimal)...), "--yes", "--overwrite"), " "),
	}, rec.Lines())
	for _, c := range rec.Commands {
		assert.Equal(t, cfg.Dir, c.Dir)
	}

	assert.True(t, res.GitInit)
	assert.True(t, res.Installed)
	assert.Empty(t, res.Warnings)
	assert.Len(t, steps, 4)

	gitignore, err := os.ReadFile(filepath.Join(cfg.Dir, ".gitignore"))
	require.NoError(t, err)
	assert.Equal(t, "node_modules\ncoverage\ndist\n.env.local\n.DS_Store\n*.log\n", string(gitignore))

	loaded, err := LoadConfig(cfg.Dir)
	require.NoError(t, err)
	assert.Equal(t, "minimal", loaded.Theme)
	assert.Equal(t, "1.2.3", loaded.Version)
	assert.Equal(t, "pnpm", loaded.PackageManager)
	assert.Equal(t, "2026-01-02T03:04:05Z", loaded.CreatedAt)
	assert.Equal(t, shadcn.Components(shadcn.Minimal), loaded.Components)
}

func TestCreateSkipsEverything(t *testing.T) {
	cfg := newConfig(t)
	cfg.SkipGit = true
	cfg.SkipInstall = true
	rec := runner.NewRecorder()

	res, err := Create(context.Background(), cfg, Deps{Templates: testTemplates, Runner: rec, Now: fixedNow})
	require.NoError(t, err)

	assert.Empty(t, rec.Commands)
	assert.False(t, res.Installed)
	assert.Empty(t, res.Components)

	gitignore, err := os.ReadFile(filepath.Join(cfg.Dir, ".gitignore"))
	require.NoError(t, err)
	assert.Equal(t, "node_modules\ncoverage\n", string(gitignore), "gitignore left as the template wrote it")

	loaded, err := LoadConfig(cfg.Dir)
	require.NoError(t, err)
	assert.Equal(t, "dev", loaded.Version)
	assert.Nil(t, loaded.Components)
}

func TestCreateExistingGitRepoSkipsInit(t *testing.T) {
	cfg := newConfig(t)
	cfg.SkipInstall = true
	require.NoError(t, os.MkdirAll(filepath.Join(cfg.Dir, ".git"), 0o755))
	rec := runner.NewRecorder()

	res, err := Create(context.Background(), cfg, Deps{Templates: testTemplates, Runner: rec})
	require.NoError(t, err)
	assert.Empty(t, rec.Commands)
	assert.False(t, res.GitInit)
}

func TestCreateGitFailureIsWarning(t *testing.T) {
	cfg := newConfig(t)
	cfg.SkipInstall = true
	rec := runner.NewRecorder().Missing("git")

	res, err := Create(context.Background(), cfg, Deps{Templates: testTemplates, Runner: rec})
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "git init failed")
}

func TestCreateInstallFailureIsFatal(t *testing.T) {
	cfg := newConfig(t)
	rec := runner.NewRecorder().On("pnpm install", runner.Response{Result: runner.ExitResult{Code: 1}})

	_, err := Create(context.Background(), cfg, Deps{Templates: testTemplates, Runner: rec})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "installing dependencies")
	assert.NotContains(t, strings.Join(rec.Lines(), "\n"), "shadcn", "components must not install after a failed install")

	_, statErr := os.Stat(ConfigPath(cfg.Dir))
	assert.True(t, os.IsNotExist(statErr))
}

func TestCreateComponentFailureIsWarning(t *testing.T) {
	cfg := newConfig(t)
	rec := runner.NewRecorder().On("pnpm dlx shadcn@latest", runner.Response{Result: runner.ExitResult{Code: 2}})

	res, err := Create(context.Background(), cfg, Deps{Templates: testTemplates, Runner: rec})
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "Shadcn UI installation failed")
	assert.Empty(t, res.Config.Components)
}

func TestCreateMissingBaseIsConfigurationError(t *testing.T) {
	cfg := newConfig(t)
	rec := runner.NewRecorder()

	_, err := Create(context.Background(), cfg, Deps{Templates: fstest.MapFS{}, Runner: rec})
	require.Error(t, err)
	assert.True(t, errors.Is(err, scaffold.ErrConfiguration))
	assert.Empty(t, rec.Commands)
}

func TestInstallsComponents(t *testing.T) {
	base := InitConfig{Components: shadcn.Standard}
	assert.True(t, base.InstallsComponents())

	c := base
	c.SkipInstall = true
	assert.False(t, c.InstallsComponents())

	c = base
	c.SkipComponents = true
	assert.False(t, c.InstallsComponents())

	c = base
	c.Components = shadcn.None
	assert.False(t, c.InstallsComponents())
}

func TestIsEmptyDir(t *testing.T) {
	dir := t.TempDir()

	empty, err := IsEmptyDir(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.True(t, empty)

	empty, err = IsEmptyDir(dir)
	require.NoError(t, err)
	assert.True(t, empty)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "x"), nil, 0o644))
	empty, err = IsEmptyDir(dir)
	require.NoError(t, err)
	assert.False(t, empty)
}
