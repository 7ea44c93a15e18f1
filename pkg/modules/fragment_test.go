// pkg/modules/fragment_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Real filesystem (t.TempDir)
// PURPOSE: Test loading fragments from a module directory

package modules_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotctl/pkg/errors"
	"github.com/arthur-debert/dotctl/pkg/modules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func moduleDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "system.toml"), `
[system.defaults.dock]
autohide = false
tilesize = 48
`)
	writeFile(t, filepath.Join(dir, "shell.yaml"), `
system:
  defaults:
    dock:
      autohide: true
shell:
  editor: hx
`)
	writeFile(t, filepath.Join(dir, "README.md"), "not a fragment")
	return dir
}

func TestLoadFragments_Order(t *testing.T) {
	dir := moduleDir(t)

	frags, err := modules.LoadFragments(dir, []string{"system", "shell"})
	require.NoError(t, err)
	require.Len(t, frags, 2)
	assert.Equal(t, "system", frags[0].Name)
	assert.Equal(t, filepath.Join(dir, "system.toml"), frags[0].Path)

	tree, err := modules.Aggregate(frags...)
	require.NoError(t, err)
	assert.Equal(t, true, tree.Get("system.defaults.dock.autohide"))
	assert.Equal(t, int64(48), tree.Get("system.defaults.dock.tilesize"))

	// reversed order, reversed winner
	frags, err = modules.LoadFragments(dir, []string{"shell", "system"})
	require.NoError(t, err)
	tree, err = modules.Aggregate(frags...)
	require.NoError(t, err)
	assert.Equal(t, false, tree.Get("system.defaults.dock.autohide"))
}

func TestLoadFragments_Alphabetical(t *testing.T) {
	dir := moduleDir(t)

	frags, err := modules.LoadFragments(dir, nil)
	require.NoError(t, err)
	require.Len(t, frags, 2)
	assert.Equal(t, "shell", frags[0].Name)
	assert.Equal(t, "system", frags[1].Name)
}

func TestLoadFragments_MissingDirIsEmpty(t *testing.T) {
	frags, err := modules.LoadFragments(filepath.Join(t.TempDir(), "nope"), nil)
	require.NoError(t, err)
	assert.Empty(t, frags)
}

func TestLoadFragments_Errors(t *testing.T) {
	dir := moduleDir(t)

	_, err := modules.LoadFragments(dir, []string{"system", "homebrew"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.Equal(t, "homebrew", errors.GetErrorDetails(err)["fragment"])

	writeFile(t, filepath.Join(dir, "broken.toml"), "[unclosed")
	_, err = modules.LoadFragments(dir, []string{"broken"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrFragmentInvalid))
}
