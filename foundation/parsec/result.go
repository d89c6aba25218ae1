// File: result.go
// Title: Parser Results
// Description: The three-way parse result and its constructors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package parsec

import (
	"fmt"

	mdwerror "github.com/msto63/layerdeck/foundation/core/error"
)

// Status tells the three result kinds apart
type Status int

const (
	// StatusSuccess means the parser matched and consumed up to Next
	StatusSuccess Status = iota

	// StatusEOF means a token was needed but the input ended
	StatusEOF

	// StatusError means a token was examined and rejected
	StatusError
)

// String returns the name of the status
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "Success"
	case StatusEOF:
		return "Eof"
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Result is the outcome of running a parser. Next and Value are only
// meaningful when Status is StatusSuccess.
type Result[T any] struct {
	Status Status
	Next   int
	Value  T
}

// Success builds a successful result
func Success[T any](next int, value T) Result[T] {
	return Result[T]{Status: StatusSuccess, Next: next, Value: value}
}

// EndOfInput builds an EOF result
func EndOfInput[T any]() Result[T] {
	return Result[T]{Status: StatusEOF}
}

// Failure builds an Error result
func Failure[T any]() Result[T] {
	return Result[T]{Status: StatusError}
}

// IsSuccess reports whether the parser matched
func (r Result[T]) IsSuccess() bool {
	return r.Status == StatusSuccess
}

// String renders the result for diagnostics
func (r Result[T]) String() string {
	if r.Status == StatusSuccess {
		return fmt.Sprintf("Success(%d, %v)", r.Next, r.Value)
	}
	return r.Status.String()
}

// Err converts a failed result into a coded error: CodeParseSyntax for Error
// and CodeParseIncomplete for EOF. It returns nil for a success.
func (r Result[T]) Err(operation string) error {
	switch r.Status {
	case StatusSuccess:
		return nil
	case StatusEOF:
		return mdwerror.New("input ended before the rule completed").
			WithCode(mdwerror.CodeParseIncomplete).
			WithOperation(operation)
	default:
		return mdwerror.New("token rejected by the grammar").
			WithCode(mdwerror.CodeParseSyntax).
			WithOperation(operation)
	}
}

// propagate re-types a failed result
func propagate[U, T any](r Result[T]) Result[U] {
	return Result[U]{Status: r.Status}
}
