// File: parsec_test.go
// Title: Parser Combinator Tests
// Description: Laws of the primitives and combinators over integer tokens.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package parsec

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	mdwerror "github.com/msto63/layerdeck/foundation/core/error"
)

func eq(n int) Parser[int, int] {
	return Test(func(x int) bool { return x == n })
}

var (
	evens = Test(func(x int) bool { return x%2 == 0 })
	odds  = Test(func(x int) bool { return x%2 != 0 })
)

func TestTest(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		start int
		want  Result[int]
	}{
		{"match", []int{1, 2, 3}, 0, Success(1, 1)},
		{"reject", []int{2, 3}, 0, Failure[int]()},
		{"exhausted", []int{1}, 1, EndOfInput[int]()},
		{"empty", nil, 0, EndOfInput[int]()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, eq(1)(tt.input, tt.start)); diff != "" {
				t.Errorf("Test() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTestMap(t *testing.T) {
	p := TestMap(func(x int) (string, bool) {
		if x < 0 {
			return "", false
		}
		return strconv.Itoa(x), true
	})

	if diff := cmp.Diff(Success(1, "7"), Run(p)([]int{7})); diff != "" {
		t.Errorf("TestMap() accept mismatch (-want +got):\n%s", diff)
	}
	if got := Run(p)([]int{-1}); got.Status != StatusError {
		t.Errorf("TestMap() on rejected token = %v, want Error", got)
	}
	if got := Run(p)(nil); got.Status != StatusEOF {
		t.Errorf("TestMap() on empty input = %v, want Eof", got)
	}
}

func TestAltPair(t *testing.T) {
	all := Alt(Alt(eq(3), eq(2)), eq(1))
	p := Pipe2(all, all, func(x1, x2 int) [2]int { return [2]int{x1, x2} })

	want := Success(2, [2]int{1, 2})
	if diff := cmp.Diff(want, Run(p)([]int{1, 2, 3})); diff != "" {
		t.Errorf("Alt() mismatch (-want +got):\n%s", diff)
	}
}

func TestAltReturnsSecondFailure(t *testing.T) {
	rejecting := eq(9)
	needsTwo := Then(Any[int](), Any[int]())

	// first branch reports Error, second reports Eof: Eof wins
	if got := Alt(rejecting, needsTwo)([]int{1}, 0); got.Status != StatusEOF {
		t.Errorf("Alt(error, eof) = %v, want Eof", got)
	}
	// and the other way round
	if got := Alt(needsTwo, rejecting)([]int{1}, 0); got.Status != StatusError {
		t.Errorf("Alt(eof, error) = %v, want Error", got)
	}
}

func TestPipe2WithMany(t *testing.T) {
	p := Pipe2(
		Map(eq(2), strconv.Itoa),
		Many(evens),
		func(first string, rest []int) struct {
			First string
			Rest  []int
		} {
			return struct {
				First string
				Rest  []int
			}{first, rest}
		},
	)

	got := Run(p)([]int{2, 4, 8, 1, 3, 5})
	if got.Status != StatusSuccess || got.Next != 3 {
		t.Fatalf("Pipe2() = %v, want Success at 3", got)
	}
	if got.Value.First != "2" || !cmp.Equal(got.Value.Rest, []int{4, 8}) {
		t.Errorf("Pipe2() value = %+v", got.Value)
	}
}

func TestManyAlternating(t *testing.T) {
	p := Pipe2(Many(evens), Many(odds), func(e, o []int) [][]int { return [][]int{e, o} })

	want := Success(6, [][]int{{2, 4, 8}, {1, 3, 5}})
	if diff := cmp.Diff(want, Run(p)([]int{2, 4, 8, 1, 3, 5, 10, 12})); diff != "" {
		t.Errorf("Many() mismatch (-want +got):\n%s", diff)
	}
}

func TestManyOfMany1(t *testing.T) {
	p := Many(Alt(Many1(evens), Many1(odds)))

	want := Success(8, [][]int{{2, 4, 8}, {1, 3, 5}, {10, 12}})
	if diff := cmp.Diff(want, Run(p)([]int{2, 4, 8, 1, 3, 5, 10, 12})); diff != "" {
		t.Errorf("Many(Many1) mismatch (-want +got):\n%s", diff)
	}
}

func TestManyNeverFails(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  Result[[]int]
	}{
		{"empty input", nil, Success(0, []int{})},
		{"no match", []int{1, 3}, Success(0, []int{})},
		{"partial", []int{2, 1}, Success(1, []int{2})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Run(Many(evens))(tt.input)); diff != "" {
				t.Errorf("Many() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestManyStopsOnZeroWidth(t *testing.T) {
	got := Run(Many(Succeed[int](1)))([]int{5, 6})
	if diff := cmp.Diff(Success(0, []int{}), got); diff != "" {
		t.Errorf("Many(Succeed) mismatch (-want +got):\n%s", diff)
	}
}

func TestMany1(t *testing.T) {
	if got := Run(Many1(evens))([]int{1}); got.Status != StatusError {
		t.Errorf("Many1() on no match = %v, want Error", got)
	}
	if got := Run(Many1(evens))(nil); got.Status != StatusEOF {
		t.Errorf("Many1() on empty input = %v, want Eof", got)
	}
}

func TestEOF(t *testing.T) {
	p := EOF(Many(evens))

	if got := Run(p)([]int{2, 4, 8, 9}); got.Status != StatusError {
		t.Errorf("EOF() with trailing token = %v, want Error", got)
	}
	if diff := cmp.Diff(Success(3, []int{2, 4, 8}), Run(p)([]int{2, 4, 8})); diff != "" {
		t.Errorf("EOF() mismatch (-want +got):\n%s", diff)
	}
}

func TestChainUsesValue(t *testing.T) {
	// the first token says how many tokens follow
	counted := Chain(Any[int](), func(n int) Parser[int, []int] {
		p := Succeed[int]([]int{})
		for i := 0; i < n; i++ {
			p = Pipe2(p, Any[int](), func(acc []int, x int) []int { return append(acc, x) })
		}
		return p
	})

	if diff := cmp.Diff(Success(3, []int{7, 8}), Run(counted)([]int{2, 7, 8, 9})); diff != "" {
		t.Errorf("Chain() mismatch (-want +got):\n%s", diff)
	}
	if got := Run(counted)([]int{3, 7}); got.Status != StatusEOF {
		t.Errorf("Chain() short input = %v, want Eof", got)
	}
}

func TestLiteralAndOpt(t *testing.T) {
	lit := Literal('a', 'b')

	if got := Run(lit)([]rune("abc")); got.Status != StatusSuccess || got.Next != 2 {
		t.Errorf("Literal() = %v, want Success at 2", got)
	}
	if got := Run(lit)([]rune("a")); got.Status != StatusEOF {
		t.Errorf("Literal() on short input = %v, want Eof", got)
	}
	if got := Run(lit)([]rune("ax")); got.Status != StatusError {
		t.Errorf("Literal() on mismatch = %v, want Error", got)
	}

	opt := Opt(lit)
	if got := Run(opt)([]rune("xy")); !got.IsSuccess() || got.Next != 0 || got.Value.Ok {
		t.Errorf("Opt() on mismatch = %v, want zero-width empty success", got)
	}
	if got := Run(opt)([]rune("ab")); !got.IsSuccess() || !got.Value.Ok {
		t.Errorf("Opt() on match = %v, want Ok", got)
	}
}

func TestTrimKeepsFirst(t *testing.T) {
	p := Trim(eq(1), eq(2))
	if diff := cmp.Diff(Success(2, 1), Run(p)([]int{1, 2})); diff != "" {
		t.Errorf("Trim() mismatch (-want +got):\n%s", diff)
	}
	if got := Run(p)([]int{1, 3}); got.Status != StatusError {
		t.Errorf("Trim() with failing second parser = %v, want Error", got)
	}
}

func TestResultErr(t *testing.T) {
	if err := Success(1, 0).Err("op"); err != nil {
		t.Errorf("Success.Err() = %v, want nil", err)
	}
	if err := Failure[int]().Err("op"); !mdwerror.HasCode(err, mdwerror.CodeParseSyntax) {
		t.Errorf("Failure.Err() = %v, want PARSE_SYNTAX", err)
	}
	if err := EndOfInput[int]().Err("op"); !mdwerror.HasCode(err, mdwerror.CodeParseIncomplete) {
		t.Errorf("EndOfInput.Err() = %v, want PARSE_INCOMPLETE", err)
	}
}

func TestFail(t *testing.T) {
	if got := Run(Fail[int, int]())([]int{1}); got.Status != StatusError {
		t.Errorf("Fail() = %v, want Error", got)
	}
}
