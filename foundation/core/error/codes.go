// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across layerdeck. Parse codes
//              mirror the two failure kinds of the combinator engine.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-15 v0.2.0: Replaced service codes with parser and document codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Parsing. PARSE_SYNTAX is a rejected token or unconsumed trailing input,
	// PARSE_INCOMPLETE is input that ended before a rule completed.
	CodeParseSyntax     Code = "PARSE_SYNTAX"
	CodeParseIncomplete Code = "PARSE_INCOMPLETE"

	// Document edits
	CodeInvalidOperation   Code = "INVALID_OPERATION"
	CodeInvariantViolation Code = "INVARIANT_VIOLATION"

	// Environment
	CodeConfigError Code = "CONFIG_ERROR"
	CodeIOError     Code = "IO_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid reports whether c is one of the known codes
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeParseSyntax, CodeParseIncomplete,
		CodeInvalidOperation, CodeInvariantViolation,
		CodeConfigError, CodeIOError:
		return true
	}
	return false
}
