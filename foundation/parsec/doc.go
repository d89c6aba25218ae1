// Package parsec implements a small parser-combinator engine over indexed
// token slices.
//
// Package: parsec
// Title: Generic Token Parser Combinators
// Description: A parser is a function from (tokens, start index) to a
//              three-way Result: Success carrying the next index and a value,
//              EOF when a token was needed but the input was exhausted, and
//              Error when a token was examined and rejected. Keeping EOF and
//              Error apart lets callers report "incomplete" and "malformed"
//              input differently.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation
//
// The engine is generic over the token type: the identifier decoder runs it
// over runes, the catalog grammar over decoded layer tokens.
//
//	evens := parsec.Test(func(x int) bool { return x%2 == 0 })
//	p := parsec.EOF(parsec.Many(evens))
//	parsec.Run(p)([]int{2, 4, 8})    // Success(3, [2 4 8])
//	parsec.Run(p)([]int{2, 4, 8, 9}) // Error
//
// Parsers are pure functions of their input and start index and hold no state,
// so a grammar can be built once and shared freely.
package parsec
