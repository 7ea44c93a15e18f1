// pkg/executor/executor_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: /bin/sh
// PURPOSE: Test exit code passthrough and output capture

package executor_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotctl/pkg/errors"
	"github.com/arthur-debert/dotctl/pkg/executor"
	"github.com/arthur-debert/dotctl/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ExitCodePassthrough(t *testing.T) {
	tests := []struct {
		name     string
		script   string
		wantCode int
	}{
		{name: "success", script: "exit 0", wantCode: 0},
		{name: "failure", script: "exit 3", wantCode: 3},
		{name: "false", script: "false", wantCode: 1},
		{name: "killed_by_signal", script: "kill -TERM $$", wantCode: 128 + 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := executor.New(false).Run(context.Background(), types.Command{
				Name:   "sh",
				Args:   []string{"-c", tt.script},
				Stdout: &bytes.Buffer{},
				Stderr: &bytes.Buffer{},
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestRun_Environment(t *testing.T) {
	var out bytes.Buffer
	code, err := executor.New(false).Run(context.Background(), types.Command{
		Name:   "sh",
		Args:   []string{"-c", `printf '%s' "$DOTCTL_TEST_VALUE"`},
		Env:    []string{"DOTCTL_TEST_VALUE=hello"},
		Stdout: &out,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "hello", out.String())
}

func TestRun_MissingTool(t *testing.T) {
	code, err := executor.New(false).Run(context.Background(), types.Command{
		Name: "dotctl-definitely-not-a-real-tool",
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrToolStart))
	assert.Equal(t, 127, code)
}

func TestRun_MissingWorkingDir(t *testing.T) {
	_, err := executor.New(false).Run(context.Background(), types.Command{
		Name: "true",
		Dir:  filepath.Join(t.TempDir(), "missing"),
	})
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
}

func TestRun_DryRunDoesNotStart(t *testing.T) {
	marker := filepath.Join(t.TempDir(), "marker")
	code, err := executor.New(true).Run(context.Background(), types.Command{
		Name: "sh",
		Args: []string{"-c", "touch " + marker},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.NoFileExists(t, marker)
}

func TestOutput(t *testing.T) {
	out, code, err := executor.Output(context.Background(), executor.New(false), types.Command{
		Name: "sh",
		Args: []string{"-c", "echo tracked.txt; echo oops >&2"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "tracked.txt\n", out)
}
