// File: combinators.go
// Title: Parser Combinators
// Description: Sequencing, choice and repetition over Parser values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package parsec

// Map transforms the value of a successful result
func Map[I, T, U any](p Parser[I, T], mapping func(T) U) Parser[I, U] {
	return func(input []I, start int) Result[U] {
		res := p(input, start)
		if !res.IsSuccess() {
			return propagate[U](res)
		}
		return Success(res.Next, mapping(res.Value))
	}
}

// Chain runs p and continues with the parser f builds from its value
func Chain[I, T, U any](p Parser[I, T], f func(T) Parser[I, U]) Parser[I, U] {
	return func(input []I, start int) Result[U] {
		res := p(input, start)
		if !res.IsSuccess() {
			return propagate[U](res)
		}
		return f(res.Value)(input, res.Next)
	}
}

// Pipe2 runs p1 then p2 and combines both values
func Pipe2[I, T1, T2, U any](p1 Parser[I, T1], p2 Parser[I, T2], combine func(T1, T2) U) Parser[I, U] {
	return Chain(p1, func(v1 T1) Parser[I, U] {
		return Map(p2, func(v2 T2) U {
			return combine(v1, v2)
		})
	})
}

// Then runs p1 then p2 and keeps the value of p2
func Then[I, T1, T2 any](p1 Parser[I, T1], p2 Parser[I, T2]) Parser[I, T2] {
	return Pipe2(p1, p2, func(_ T1, v2 T2) T2 { return v2 })
}

// Trim runs p1 then p2 and keeps the value of p1
func Trim[I, T1, T2 any](p1 Parser[I, T1], p2 Parser[I, T2]) Parser[I, T1] {
	return Pipe2(p1, p2, func(v1 T1, _ T2) T1 { return v1 })
}

// Alt tries p1 and, if it does not succeed, p2 from the same start index.
// When both fail the result of p2 is returned, whatever p1 reported.
func Alt[I, T any](p1, p2 Parser[I, T]) Parser[I, T] {
	return func(input []I, start int) Result[T] {
		if res := p1(input, start); res.IsSuccess() {
			return res
		}
		return p2(input, start)
	}
}

// Many applies p as often as it succeeds and never fails. A success that
// consumes nothing ends the repetition.
func Many[I, T any](p Parser[I, T]) Parser[I, []T] {
	return func(input []I, start int) Result[[]T] {
		values := []T{}
		index := start
		for index < len(input) {
			res := p(input, index)
			if !res.IsSuccess() || res.Next <= index {
				break
			}
			values = append(values, res.Value)
			index = res.Next
		}
		return Success(index, values)
	}
}

// Many1 is Many requiring at least one match
func Many1[I, T any](p Parser[I, T]) Parser[I, []T] {
	return Pipe2(p, Many(p), func(first T, rest []T) []T {
		return append([]T{first}, rest...)
	})
}

// Option is the value of an optional match
type Option[T any] struct {
	Value T
	Ok    bool
}

// Opt matches p zero or one time
func Opt[I, T any](p Parser[I, T]) Parser[I, Option[T]] {
	return Alt(
		Map(p, func(v T) Option[T] { return Option[T]{Value: v, Ok: true} }),
		Succeed[I](Option[T]{}),
	)
}

// EOF succeeds only when p succeeds and consumed the whole input. Trailing
// tokens turn a success into an Error.
func EOF[I, T any](p Parser[I, T]) Parser[I, T] {
	return func(input []I, start int) Result[T] {
		res := p(input, start)
		if res.IsSuccess() && res.Next < len(input) {
			return Failure[T]()
		}
		return res
	}
}
