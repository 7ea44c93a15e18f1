package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Package composition errors
	ErrPackageRef    ErrorCode = "PACKAGE_REF_INVALID"
	ErrPackageTarget ErrorCode = "PACKAGE_TARGET_INVALID"

	// Module fragment errors
	ErrFragmentLoad    ErrorCode = "FRAGMENT_LOAD"
	ErrFragmentInvalid ErrorCode = "FRAGMENT_INVALID"
	ErrRender          ErrorCode = "RENDER"

	// Activation errors
	ErrStepCheck     ErrorCode = "STEP_CHECK"
	ErrStepApply     ErrorCode = "STEP_APPLY"
	ErrClone         ErrorCode = "CLONE"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrSymlinkRemove ErrorCode = "SYMLINK_REMOVE"
	ErrDirCreate     ErrorCode = "DIR_CREATE"
	ErrChown         ErrorCode = "CHOWN"

	// Recipe errors
	ErrRecipeNotFound ErrorCode = "RECIPE_NOT_FOUND"
	ErrRecipeInvalid  ErrorCode = "RECIPE_INVALID"
	ErrToolStart      ErrorCode = "TOOL_START"

	// Validation and skills errors
	ErrValidation   ErrorCode = "VALIDATION"
	ErrSkillInvalid ErrorCode = "SKILL_INVALID"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
)

// DotctlError represents a structured error with code and details
type DotctlError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DotctlError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DotctlError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DotctlError) Is(target error) bool {
	var targetErr *DotctlError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DotctlError with the given code and message
func New(code ErrorCode, message string) *DotctlError {
	return &DotctlError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DotctlError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DotctlError {
	return &DotctlError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DotctlError
func Wrap(err error, code ErrorCode, message string) *DotctlError {
	if err == nil {
		return nil
	}
	return &DotctlError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DotctlError {
	if err == nil {
		return nil
	}
	return &DotctlError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DotctlError) WithDetail(key string, value interface{}) *DotctlError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *DotctlError) WithDetails(details map[string]interface{}) *DotctlError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var dotctlErr *DotctlError
	if errors.As(err, &dotctlErr) {
		return dotctlErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DotctlError
func GetErrorCode(err error) ErrorCode {
	var dotctlErr *DotctlError
	if errors.As(err, &dotctlErr) {
		return dotctlErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DotctlError
func GetErrorDetails(err error) map[string]interface{} {
	var dotctlErr *DotctlError
	if errors.As(err, &dotctlErr) {
		return dotctlErr.Details
	}
	return nil
}
