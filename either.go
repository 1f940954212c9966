// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package csvrow

// Either represents a value that is either Left (failure) or Right (success).
type Either[E, A any] struct {
	isRight bool
	left    E
	right   A
}

// Left creates a Left (failure) value.
func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{left: e}
}

// Right creates a Right (success) value.
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{isRight: true, right: a}
}

// IsRight returns true if this is a Right value.
func (e Either[E, A]) IsRight() bool { return e.isRight }

// IsLeft returns true if this is a Left value.
func (e Either[E, A]) IsLeft() bool { return !e.isRight }

// GetRight returns the Right value and true, or zero and false.
func (e Either[E, A]) GetRight() (A, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero A
	return zero, false
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[E, A]) GetLeft() (E, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero E
	return zero, false
}

// MatchEither pattern matches on the Either, calling onLeft or onRight.
func MatchEither[E, A, T any](e Either[E, A], onLeft func(E) T, onRight func(A) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapEither applies f to the Right value.
func MapEither[E, A, B any](e Either[E, A], f func(A) B) Either[E, B] {
	if e.isRight {
		return Right[E](f(e.right))
	}
	return Left[E, B](e.left)
}

// FlatMapEither sequences two Either computations.
func FlatMapEither[E, A, B any](e Either[E, A], f func(A) Either[E, B]) Either[E, B] {
	if e.isRight {
		return f(e.right)
	}
	return Left[E, B](e.left)
}

// MapLeftEither applies f to the Left value.
// The driver uses it to widen a [ParseFailure] into a [Failure].
func MapLeftEither[E, F, A any](e Either[E, A], f func(E) F) Either[F, A] {
	if e.isRight {
		return Right[F](e.right)
	}
	return Left[F, A](f(e.left))
}

// Parsed is the success payload of a [RowParser]: the produced value and
// the state the next parser continues from.
type Parsed[A any] struct {
	Value A
	State State
}

// Result is the outcome of running a [RowParser] against one [State].
type Result[A any] = Either[ParseFailure, Parsed[A]]

// succeed builds a successful Result.
func succeed[A any](a A, s State) Result[A] {
	return Right[ParseFailure](Parsed[A]{Value: a, State: s})
}

// failed builds a failed Result.
func failed[A any](f ParseFailure) Result[A] {
	return Left[ParseFailure, Parsed[A]](f)
}
