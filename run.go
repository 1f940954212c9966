// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package csvrow

// Row runners. A parser only runs when handed a concrete State.

// Run invokes p against s.
func Run[A any](p RowParser[A], s State) Result[A] {
	return p(s)
}

// RunRow runs p against the fresh state of row at rowIndex.
// Returns the value or failure, and the state parsing stopped at.
// On failure the returned state is the initial one: failures carry their
// own position.
func RunRow[A any](p RowParser[A], rowIndex int, row Row) (Either[ParseFailure, A], State) {
	initial := NewState(rowIndex, row)
	r := p(initial)
	if r.IsLeft() {
		return Left[ParseFailure, A](r.left), initial
	}
	return Right[ParseFailure](r.right.Value), r.right.State
}

// EvalRow runs p against row at rowIndex and returns only the value or
// failure.
func EvalRow[A any](p RowParser[A], rowIndex int, row Row) Either[ParseFailure, A] {
	result, _ := RunRow(p, rowIndex, row)
	return result
}
