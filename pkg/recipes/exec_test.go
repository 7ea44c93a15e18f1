// pkg/recipes/exec_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: /bin/sh, real executor
// PURPOSE: Test exit code passthrough against real processes

package recipes_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/arthur-debert/dotctl/pkg/executor"
	"github.com/arthur-debert/dotctl/pkg/recipes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_RealShell(t *testing.T) {
	dir := t.TempDir()
	book, err := recipes.NewBook(
		recipes.Recipe{Name: "ok", Run: []string{`echo "$@" "$DOTFILES_DIR"`}},
		recipes.Recipe{Name: "fail", Run: []string{"exit 7", "echo unreachable"}},
	)
	require.NoError(t, err)

	var stdout bytes.Buffer
	d := recipes.NewDispatcher(book, executor.New(false), recipes.Options{
		DotfilesDir: dir,
		ConfigDir:   dir,
		Stdout:      &stdout,
		Stderr:      &bytes.Buffer{},
	})

	code, err := d.Run(context.Background(), "ok", []string{"hello", "world"})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "hello world "+dir+"\n", stdout.String())

	stdout.Reset()
	code, err = d.Run(context.Background(), "fail", nil)
	require.NoError(t, err)
	assert.Equal(t, 7, code)
	assert.Empty(t, stdout.String())
}
