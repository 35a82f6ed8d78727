// File: codes.go
// Title: Error Code Definitions
// Description: Defines the closed set of error codes reported by pier. Each code
//              names a distinct, user actionable condition.
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-03-02 v0.2.0: Replaced platform codes with the script registry codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Backing file
	CodeConfigRead  Code = "CONFIG_READ"
	CodeConfigWrite Code = "CONFIG_WRITE"
	CodeTomlParse   Code = "TOML_PARSE"

	// Registry
	CodeNoScriptsExists    Code = "NO_SCRIPTS_EXISTS"
	CodeAliasNotFound      Code = "ALIAS_NOT_FOUND"
	CodeAliasAlreadyExists Code = "ALIAS_ALREADY_EXISTS"

	// Execution
	CodeCommandFailed Code = "COMMAND_FAILED"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeConfigRead, CodeConfigWrite, CodeTomlParse:
		return "configuration"
	case CodeNoScriptsExists, CodeAliasNotFound, CodeAliasAlreadyExists:
		return "registry"
	case CodeInvalidInput:
		return "validation"
	case CodeCommandFailed:
		return "execution"
	default:
		return "generic"
	}
}
