// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code lookups

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/dotctl/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "recipe_not_found",
			code:    errors.ErrRecipeNotFound,
			message: "no such recipe: deplyo",
			wantStr: "[RECIPE_NOT_FOUND] no such recipe: deplyo",
		},
		{
			name:    "invalid_package_ref",
			code:    errors.ErrPackageRef,
			message: "empty reference",
			wantStr: "[PACKAGE_REF_INVALID] empty reference",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrDirCreate, "cannot create %s with mode %o", "Documents", 0755)
	assert.Equal(t, "cannot create Documents with mode 755", err.Message)
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("permission denied")

	err := errors.Wrap(cause, errors.ErrSymlinkCreate, "failed to link plugin")
	require.NotNil(t, err)
	assert.Equal(t, "[SYMLINK_CREATE] failed to link plugin: permission denied", err.Error())
	assert.True(t, stderrors.Is(err, cause))

	assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "nothing"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "nothing %d", 1))
}

func TestWithDetails(t *testing.T) {
	err := errors.New(errors.ErrClone, "clone failed").
		WithDetail("url", "git@example.com:me/dotfiles.git").
		WithDetails(map[string]interface{}{"path": "/home/me/dotfiles", "exitCode": 128})

	details := errors.GetErrorDetails(err)
	assert.Equal(t, "git@example.com:me/dotfiles.git", details["url"])
	assert.Equal(t, "/home/me/dotfiles", details["path"])
	assert.Equal(t, 128, details["exitCode"])

	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestIs(t *testing.T) {
	err := errors.New(errors.ErrRecipeNotFound, "no such recipe: x")
	target := errors.New(errors.ErrRecipeNotFound, "other message")
	other := errors.New(errors.ErrRecipeInvalid, "no such recipe: x")

	assert.True(t, stderrors.Is(err, target))
	assert.False(t, stderrors.Is(err, other))
}

func TestIsErrorCodeThroughChain(t *testing.T) {
	inner := errors.New(errors.ErrStepApply, "step failed")
	outer := fmt.Errorf("activation aborted: %w", inner)

	assert.True(t, errors.IsErrorCode(outer, errors.ErrStepApply))
	assert.False(t, errors.IsErrorCode(outer, errors.ErrStepCheck))
	assert.Equal(t, errors.ErrStepApply, errors.GetErrorCode(outer))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
}
