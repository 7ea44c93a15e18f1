// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Isolated test environments on the real filesystem

package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotctl/pkg/paths"
	"github.com/stretchr/testify/require"
)

// TestEnvironment is an isolated set of dotctl directories
type TestEnvironment struct {
	Root        string
	HomeDir     string
	DotfilesDir string
	ConfigDir   string
	StateHome   string

	Paths paths.Paths

	t *testing.T
}

// NewTestEnvironment creates the directories and points HOME, DOTFILES_DIR,
// NIX_CONFIG_DIR and the XDG variables at them for the duration of the test.
// The home directory is created empty; the dotfiles and config directories
// are not created.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	// macOS temp dirs live behind a /var -> /private/var symlink
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	env := &TestEnvironment{
		Root:        root,
		HomeDir:     filepath.Join(root, "home"),
		DotfilesDir: filepath.Join(root, "home", "dotfiles"),
		ConfigDir:   filepath.Join(root, "home", ".config", "nix-darwin"),
		StateHome:   filepath.Join(root, "home", ".local", "state"),
		t:           t,
	}
	MkdirAll(t, env.HomeDir)

	t.Setenv(paths.EnvHome, env.HomeDir)
	t.Setenv(paths.EnvDotfilesDir, env.DotfilesDir)
	t.Setenv(paths.EnvConfigDir, env.ConfigDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(env.HomeDir, ".config"))
	t.Setenv("XDG_STATE_HOME", env.StateHome)

	p, err := paths.New(paths.Options{})
	require.NoError(t, err)
	env.Paths = p

	return env
}

// Home returns a path under the home directory
func (env *TestEnvironment) Home(parts ...string) string {
	return filepath.Join(append([]string{env.HomeDir}, parts...)...)
}

// Dotfiles returns a path under the dotfiles directory
func (env *TestEnvironment) Dotfiles(parts ...string) string {
	return filepath.Join(append([]string{env.DotfilesDir}, parts...)...)
}

// WriteDotfile writes a file relative to the dotfiles directory
func (env *TestEnvironment) WriteDotfile(rel, content string) string {
	env.t.Helper()
	path := env.Dotfiles(rel)
	WriteFile(env.t, path, content)
	return path
}

// WriteConfig writes dotctl.toml into the config directory
func (env *TestEnvironment) WriteConfig(content string) string {
	env.t.Helper()
	path := filepath.Join(env.ConfigDir, paths.ConfigFileName)
	WriteFile(env.t, path, content)
	return path
}
