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
	ErrPermission   ErrorCode = "PERMISSION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Rule set errors
	ErrRulesLoad    ErrorCode = "RULES_LOAD"
	ErrRulesParse   ErrorCode = "RULES_PARSE"
	ErrRulesInvalid ErrorCode = "RULES_INVALID"
	ErrPlatform     ErrorCode = "PLATFORM_NOT_FOUND"

	// Link errors
	ErrLinkCreate  ErrorCode = "LINK_CREATE"
	ErrLinkQuery   ErrorCode = "LINK_QUERY"
	ErrHandleOpen  ErrorCode = "HANDLE_OPEN"
	ErrReparseData ErrorCode = "REPARSE_DATA"

	// Mirror errors
	ErrDirCreate    ErrorCode = "DIR_CREATE"
	ErrSetupInvalid ErrorCode = "SETUP_INVALID"
	ErrApply        ErrorCode = "APPLY"
	ErrWatch        ErrorCode = "WATCH"
)

// MirrorError represents a structured error with code and details
type MirrorError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *MirrorError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *MirrorError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *MirrorError) Is(target error) bool {
	var targetErr *MirrorError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new MirrorError with the given code and message
func New(code ErrorCode, message string) *MirrorError {
	return &MirrorError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new MirrorError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *MirrorError {
	return &MirrorError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a MirrorError
func Wrap(err error, code ErrorCode, message string) *MirrorError {
	if err == nil {
		return nil
	}
	return &MirrorError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *MirrorError {
	if err == nil {
		return nil
	}
	return &MirrorError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *MirrorError) WithDetail(key string, value interface{}) *MirrorError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *MirrorError) WithDetails(details map[string]interface{}) *MirrorError {
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
	var mirrorErr *MirrorError
	if errors.As(err, &mirrorErr) {
		return mirrorErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a MirrorError
func GetErrorCode(err error) ErrorCode {
	var mirrorErr *MirrorError
	if errors.As(err, &mirrorErr) {
		return mirrorErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a MirrorError
func GetErrorDetails(err error) map[string]interface{} {
	var mirrorErr *MirrorError
	if errors.As(err, &mirrorErr) {
		return mirrorErr.Details
	}
	return nil
}

// GetErrorMessage returns the message of the outermost MirrorError without
// its wrapped cause, or err.Error() for other errors
func GetErrorMessage(err error) string {
	var mirrorErr *MirrorError
	if errors.As(err, &mirrorErr) {
		return mirrorErr.Message
	}
	return err.Error()
}
