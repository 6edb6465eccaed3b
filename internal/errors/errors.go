package errors

import (
	"errors"
	"fmt"
)

// Error code constants
const (
	CodeConfiguration   = "CONFIGURATION_ERROR"
	CodeUnknownResource = "UNKNOWN_RESOURCE"
	CodeUnknownTool     = "UNKNOWN_TOOL"
	CodeInvalidParams   = "INVALID_PARAMS"
	CodeUpstream        = "UPSTREAM_ERROR"
	CodeUnexpected      = "UNEXPECTED_ERROR"
)

// Error represents an obsidian-mcp error with a code and message.
// It implements the error interface and supports error wrapping.
type Error struct {
	wrapped error
	Code    string
	Message string
}

// Error returns the error message, implementing the error interface.
func (e *Error) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.wrapped)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error, supporting errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.wrapped
}

// Detail returns the message without the code prefix.
// This is what MCP clients see, since the protocol carries its own error code.
func (e *Error) Detail() string {
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.wrapped)
	}
	return e.Message
}

// New creates a new error with the given code and message.
func New(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new error that wraps an underlying error.
func Wrap(code string, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		wrapped: err,
	}
}

// Code extracts the error code from an error.
// Returns an empty string if the error is not an obsidian-mcp error.
func Code(err error) string {
	if err == nil {
		return ""
	}
	var obsErr *Error
	if errors.As(err, &obsErr) {
		return obsErr.Code
	}
	return ""
}

// Is checks if an error has a specific error code.
func Is(err error, code string) bool {
	return Code(err) == code
}

// Convenience constructors for each error code

// MissingAPIKey creates a CONFIGURATION_ERROR for an absent bearer token.
func MissingAPIKey() *Error {
	return New(CodeConfiguration, "OBSIDIAN_API_KEY environment variable is required")
}

// InvalidConfig creates a CONFIGURATION_ERROR for a setting that cannot be used.
func InvalidConfig(key string, err error) *Error {
	return Wrap(CodeConfiguration, fmt.Sprintf("invalid value for %q", key), err)
}

// UnknownResource creates an UNKNOWN_RESOURCE error.
func UnknownResource(uri string) *Error {
	return New(CodeUnknownResource, fmt.Sprintf("unknown resource: %s", uri))
}

// UnknownTool creates an UNKNOWN_TOOL error.
func UnknownTool(name string) *Error {
	return New(CodeUnknownTool, fmt.Sprintf("unknown tool: %q", name))
}

// InvalidParams creates an INVALID_PARAMS error.
func InvalidParams(reason string) *Error {
	return New(CodeInvalidParams, reason)
}

// UpstreamFailed creates an UPSTREAM_ERROR wrapping the failed API call.
// operation is the human-readable prefix shown to the caller.
func UpstreamFailed(operation string, err error) *Error {
	return Wrap(CodeUpstream, operation, err)
}

// Unexpected creates an UNEXPECTED_ERROR for anything that is not classifiable.
func Unexpected(err error) *Error {
	return Wrap(CodeUnexpected, "unexpected error", err)
}
