// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package csvrow

import "fmt"

// RowParser describes how to consume a prefix of a row and produce a
// value of type A, or fail.
//
// A RowParser is a description, not a result: building and composing
// parsers runs nothing. It is invoked against a concrete [State] by [Run]
// or [RunRow]. RowParsers hold no mutable state and may be reused for any
// number of rows, from any number of goroutines.
type RowParser[A any] func(s State) Result[A]

// Minimal algebra: Column, Transform, Combine, Emap, GuardMap and End.
// Every failure short-circuits the enclosing parser and is returned
// unchanged; nothing recovers or tries an alternative.

// Column consumes exactly one column and yields its raw text.
// On an empty remainder it fails with [RowExhaustionFailure] at the
// current position.
func Column() RowParser[string] {
	return consumeColumn
}

func consumeColumn(s State) Result[string] {
	if s.Exhausted() {
		return failed[string](&RowExhaustionFailure{Position: s.Pos})
	}
	v, next := s.advance()
	return succeed(v, next)
}

// Transform applies a total function to the success value.
// State and failure pass through untouched.
func Transform[A, B any](p RowParser[A], f func(A) B) RowParser[B] {
	return func(s State) Result[B] {
		r := p(s)
		if r.IsLeft() {
			return failed[B](r.left)
		}
		return succeed(f(r.right.Value), r.right.State)
	}
}

// Combine runs pf to obtain a function, then pa against the state pf left
// behind, and applies the function to pa's value. A failure from either
// step is returned as is.
func Combine[A, B any](pf RowParser[func(A) B], pa RowParser[A]) RowParser[B] {
	return func(s State) Result[B] {
		rf := pf(s)
		if rf.IsLeft() {
			return failed[B](rf.left)
		}
		ra := pa(rf.right.State)
		if ra.IsLeft() {
			return failed[B](ra.left)
		}
		return succeed(rf.right.Value(ra.right.Value), ra.right.State)
	}
}

// Emap feeds the value of p into f and runs the parser f returns against
// the state p left behind.
func Emap[A, B any](p RowParser[A], f func(A) RowParser[B]) RowParser[B] {
	return func(s State) Result[B] {
		r := p(s)
		if r.IsLeft() {
			return failed[B](r.left)
		}
		return f(r.right.Value)(r.right.State)
	}
}

// GuardMap applies a fallible conversion to the value of p.
//
// A conversion error becomes a [ColumnParseFailure] at the row of the
// current state and the column consumed last, so the failure names the
// column whose raw text was converted, not the next one. Chaining further
// GuardMaps keeps blaming the same column.
func GuardMap[A, B any](p RowParser[A], f func(A) (B, error)) RowParser[B] {
	return Emap(p, func(a A) RowParser[B] {
		return func(s State) Result[B] {
			b, err := f(a)
			if err != nil {
				return failed[B](&ColumnParseFailure{Cause: err, Position: s.blame()})
			}
			return succeed(b, s)
		}
	})
}

// End succeeds without consuming when no columns remain. Otherwise it
// fails with a [ColumnParseFailure] at the current position, where the
// unexpected data begins.
func End() RowParser[struct{}] {
	return endOfRow
}

func endOfRow(s State) Result[struct{}] {
	if s.Exhausted() {
		return succeed(struct{}{}, s)
	}
	return failed[struct{}](&ColumnParseFailure{
		Cause:    fmt.Errorf("%w: %d left", ErrTrailingColumns, len(s.Remainder)),
		Position: s.Pos,
	})
}

// Derived operations.

// Pure succeeds with a without consuming.
func Pure[A any](a A) RowParser[A] {
	return func(s State) Result[A] {
		return succeed(a, s)
	}
}

// Fail fails with f without consuming.
func Fail[A any](f ParseFailure) RowParser[A] {
	return func(State) Result[A] {
		return failed[A](f)
	}
}

// CurrentPos yields the current position without consuming.
func CurrentPos() RowParser[Pos] {
	return func(s State) Result[Pos] {
		return succeed(s.Pos, s)
	}
}

// Then runs p and then q, keeping q's value.
func Then[A, B any](p RowParser[A], q RowParser[B]) RowParser[B] {
	return Emap(p, func(A) RowParser[B] { return q })
}

// Skip runs p and then q, keeping p's value.
func Skip[A, B any](p RowParser[A], q RowParser[B]) RowParser[A] {
	return Combine(Transform(p, func(a A) func(B) A {
		return func(B) A { return a }
	}), q)
}

// Strict runs p and then requires the row to be fully consumed.
func Strict[A any](p RowParser[A]) RowParser[A] {
	return Skip(p, End())
}

// Map2 runs pa then pb and combines their values with f.
func Map2[A, B, C any](pa RowParser[A], pb RowParser[B], f func(A, B) C) RowParser[C] {
	return Combine(Transform(pa, func(a A) func(B) C {
		return func(b B) C { return f(a, b) }
	}), pb)
}

// Map3 runs pa, pb and pc in order and combines their values with f.
func Map3[A, B, C, D any](pa RowParser[A], pb RowParser[B], pc RowParser[C], f func(A, B, C) D) RowParser[D] {
	return Combine(Map2(pa, pb, func(a A, b B) func(C) D {
		return func(c C) D { return f(a, b, c) }
	}), pc)
}
