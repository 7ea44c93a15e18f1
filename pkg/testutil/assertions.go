package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertDir checks that path is a directory
func AssertDir(t *testing.T, path string) bool {
	t.Helper()
	info, err := os.Stat(path)
	if !assert.NoError(t, err, "expected directory %s", path) {
		return false
	}
	return assert.True(t, info.IsDir(), "%s is not a directory", path)
}

// AssertNotExists checks that nothing, not even a dangling symlink, is at path
func AssertNotExists(t *testing.T, path string) bool {
	t.Helper()
	_, err := os.Lstat(path)
	return assert.True(t, os.IsNotExist(err), "expected %s to not exist", path)
}

// AssertSymlink checks that path is a symlink pointing at target
func AssertSymlink(t *testing.T, path, target string) bool {
	t.Helper()
	got, err := os.Readlink(path)
	if !assert.NoError(t, err, "expected symlink at %s", path) {
		return false
	}
	return assert.Equal(t, target, got, "symlink %s points elsewhere", path)
}

// AssertFileContent checks a regular file's content
func AssertFileContent(t *testing.T, path, want string) bool {
	t.Helper()
	data, err := os.ReadFile(path)
	if !assert.NoError(t, err) {
		return false
	}
	return assert.Equal(t, want, string(data))
}
