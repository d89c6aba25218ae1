// File: parser.go
// Title: Primitive Parsers
// Description: The Parser type, single-token primitives and the driver.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package parsec

// Parser parses input starting at index start
type Parser[I, T any] func(input []I, start int) Result[T]

// Run applies p to the whole input starting at index 0
func Run[I, T any](p Parser[I, T]) func(input []I) Result[T] {
	return func(input []I) Result[T] {
		return p(input, 0)
	}
}

// Test consumes one token when pred holds for it
func Test[I any](pred func(I) bool) Parser[I, I] {
	return func(input []I, start int) Result[I] {
		if start >= len(input) {
			return EndOfInput[I]()
		}
		if x := input[start]; pred(x) {
			return Success(start+1, x)
		}
		return Failure[I]()
	}
}

// TestMap consumes one token when mapping accepts it. A rejected token is an
// Error, running out of input is EOF.
func TestMap[I, T any](mapping func(I) (T, bool)) Parser[I, T] {
	return func(input []I, start int) Result[T] {
		if start >= len(input) {
			return EndOfInput[T]()
		}
		if v, ok := mapping(input[start]); ok {
			return Success(start+1, v)
		}
		return Failure[T]()
	}
}

// Any consumes any single token
func Any[I any]() Parser[I, I] {
	return Test(func(I) bool { return true })
}

// Literal matches the exact token sequence want. Input ending inside the
// sequence is EOF, a differing token is Error.
func Literal[I comparable](want ...I) Parser[I, []I] {
	return func(input []I, start int) Result[[]I] {
		for i, w := range want {
			pos := start + i
			if pos >= len(input) {
				return EndOfInput[[]I]()
			}
			if input[pos] != w {
				return Failure[[]I]()
			}
		}
		return Success(start+len(want), input[start:start+len(want)])
	}
}

// Succeed matches without consuming anything
func Succeed[I, T any](value T) Parser[I, T] {
	return func(_ []I, start int) Result[T] {
		return Success(start, value)
	}
}

// Fail always rejects
func Fail[I, T any]() Parser[I, T] {
	return func([]I, int) Result[T] {
		return Failure[T]()
	}
}
