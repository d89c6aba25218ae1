// File: severity.go
// Title: Error Severity Levels
// Description: Severity classification used to pick a log level for errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-15 v0.2.0: Severity mapping for the layerdeck codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow is a user mistake: bad input, unknown position
	SeverityLow Severity = iota

	// SeverityMedium affects the current operation only
	SeverityMedium

	// SeverityHigh means the document or environment is unusable
	SeverityHigh

	// SeverityCritical means internal state can no longer be trusted
	SeverityCritical
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
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInvariantViolation, CodeInternal:
		return SeverityCritical
	case CodeIOError, CodeConfigError:
		return SeverityHigh
	case CodeParseSyntax, CodeParseIncomplete:
		return SeverityMedium
	case CodeInvalidInput, CodeNotFound, CodeInvalidOperation:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
