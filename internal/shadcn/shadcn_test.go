package shadcn

import (
	"context"
	"strings"
	"testing"

	"github.com/aurimyth/aury-web/internal/pkgmgr"
	"github.com/aurimyth/aury-web/internal/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetSizes(t *testing.T) {
	assert.Len(t, Components(Minimal), 15)
	assert.Len(t, Components(Standard), 25)
	assert.Greater(t, len(Components(Full)), len(Components(Standard)))
}

func TestPresetsHaveNoDuplicates(t *testing.T) {
	for _, p := range Presets() {
		seen := map[string]bool{}
		for _, c := range Components(p) {
			assert.False(t, seen[c], "preset %s lists %s twice", p, c)
			seen[c] = true
		}
	}
}

func TestComponentsReturnsCopy(t *testing.T) {
	c := Components(Minimal)
	c[0] = "mutated"
	assert.Equal(t, "button", Components(Minimal)[0])
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset("")
	require.NoError(t, err)
	assert.Equal(t, Standard, p)

	p, err = ParsePreset("FULL")
	require.NoError(t, err)
	assert.Equal(t, Full, p)

	p, err = ParsePreset("none")
	require.NoError(t, err)
	assert.Equal(t, None, p)

	_, err = ParsePreset("huge")
	assert.ErrorContains(t, err, "unknown component preset")
}

func TestInstall(t *testing.T) {
	rec := runner.NewRecorder()
	err := Install(context.Background(), rec, "/work/app", pkgmgr.PNPM, Minimal)
	require.NoError(t, err)

	require.Len(t, rec.Commands, 1)
	cmd := rec.Commands[0]
	assert.Equal(t, "pnpm", cmd.Name)
	assert.Equal(t, "/work/app", cmd.Dir)
	line := cmd.String()
	assert.True(t, strings.HasPrefix(line, "pnpm dlx shadcn@latest add button input"), line)
	assert.True(t, strings.HasSuffix(line, "table --yes --overwrite"), line)
}

func TestInstallUnknownPreset(t *testing.T) {
	rec := runner.NewRecorder()
	err := Install(context.Background(), rec, ".", pkgmgr.NPM, None)
	assert.Error(t, err)
	assert.Empty(t, rec.Commands)
}

func TestAddReportsExitCode(t *testing.T) {
	rec := runner.NewRecorder().On("bunx shadcn@latest add", runner.Response{Result: runner.ExitResult{Code: 3}})
	err := Add(context.Background(), rec, ".", pkgmgr.Bun, []string{"button", "card"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exited with code 3")
	assert.Equal(t, []string{"bunx shadcn@latest add button card --yes"}, rec.Lines())
}

func TestAddRequiresComponents(t *testing.T) {
	assert.Error(t, Add(context.Background(), runner.NewRecorder(), ".", pkgmgr.NPM, nil))
}

func TestInit(t *testing.T) {
	rec := runner.NewRecorder()
	require.NoError(t, Init(context.Background(), rec, ".", pkgmgr.NPM))
	assert.Equal(t, []string{"npx shadcn@latest init --yes --defaults"}, rec.Lines())
}

func TestInitMissingBinary(t *testing.T) {
	rec := runner.NewRecorder().Missing("npx")
	err := Init(context.Background(), rec, ".", pkgmgr.NPM)
	assert.ErrorContains(t, err, "running npx")
}

func TestManualCommand(t *testing.T) {
	assert.Equal(t, "yarn dlx shadcn@latest add button", ManualCommand(pkgmgr.Yarn, []string{"button"}))
}
