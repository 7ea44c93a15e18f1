package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteFile writes content to path, creating parent directories
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// WriteExecutable writes an executable file
func WriteExecutable(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0755))
}

// MkdirAll creates a directory tree
func MkdirAll(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(path, 0755))
}

// Symlink creates newname pointing at oldname, creating parent directories
func Symlink(t *testing.T, oldname, newname string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(newname), 0755))
	require.NoError(t, os.Symlink(oldname, newname))
}
