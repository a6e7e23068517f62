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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Bootstrap step errors
	ErrDistroDetect   ErrorCode = "DISTRO_DETECT"
	ErrPackageIndex   ErrorCode = "PACKAGE_INDEX"
	ErrPackageInstall ErrorCode = "PACKAGE_INSTALL"
	ErrPipBootstrap   ErrorCode = "PIP_BOOTSTRAP"
	ErrPipInstall     ErrorCode = "PIP_INSTALL"
	ErrRoleInstall    ErrorCode = "ROLE_INSTALL"
	ErrSSHKey         ErrorCode = "SSH_KEY"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrFileChmod    ErrorCode = "FILE_CHMOD"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
	ErrDirRemove    ErrorCode = "DIR_REMOVE"
)

// BootstrapError represents a structured error with code and details
type BootstrapError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *BootstrapError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *BootstrapError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *BootstrapError) Is(target error) bool {
	var targetErr *BootstrapError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new BootstrapError with the given code and message
func New(code ErrorCode, message string) *BootstrapError {
	return &BootstrapError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new BootstrapError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BootstrapError {
	return &BootstrapError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a BootstrapError
func Wrap(err error, code ErrorCode, message string) *BootstrapError {
	if err == nil {
		return nil
	}
	return &BootstrapError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *BootstrapError {
	if err == nil {
		return nil
	}
	return &BootstrapError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *BootstrapError) WithDetail(key string, value interface{}) *BootstrapError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var bErr *BootstrapError
	if errors.As(err, &bErr) {
		return bErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a BootstrapError
func GetErrorCode(err error) ErrorCode {
	var bErr *BootstrapError
	if errors.As(err, &bErr) {
		return bErr.Code
	}
	return ErrUnknown
}
