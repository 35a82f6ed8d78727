// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels decide the log level an error is reported at.
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow covers user input problems: unknown aliases, duplicates
	SeverityLow Severity = iota

	// SeverityMedium covers failures with an obvious workaround
	SeverityMedium

	// SeverityHigh covers an unusable backing file
	SeverityHigh
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeConfigRead, CodeConfigWrite, CodeTomlParse, CodeInternal:
		return SeverityHigh
	case CodeNoScriptsExists, CodeAliasNotFound, CodeAliasAlreadyExists, CodeInvalidInput:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
