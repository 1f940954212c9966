// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package csvrow

import "strconv"

// Row is the ordered list of column tokens split from one input line.
// Parsers re-slice a Row but never write to it.
type Row []string

// Pos locates a column within the input. Both indexes are zero-based:
// Row is the line number in the file and Col is the index of the next
// column to be consumed.
type Pos struct {
	Row int
	Col int
}

// String renders the position as "row R, column C".
func (p Pos) String() string {
	return "row " + strconv.Itoa(p.Row) + ", column " + strconv.Itoa(p.Col)
}

// State is threaded through every [RowParser].
//
// Remainder is always a suffix of the row being parsed. PrevCol is the
// column index immediately before the most recent successful consumption,
// so a conversion step can blame the column it converted while Pos.Col
// already points past it. PrevCol <= Pos.Col holds for every state.
//
// States are values. Advancing produces a new State; no combinator
// modifies one in place.
type State struct {
	Pos       Pos
	PrevCol   int
	Remainder Row
}

// NewState returns the initial state for the row at rowIndex.
func NewState(rowIndex int, row Row) State {
	return State{
		Pos:       Pos{Row: rowIndex},
		Remainder: row,
	}
}

// advance consumes the head of the remainder.
// The caller guarantees the remainder is non-empty.
func (s State) advance() (string, State) {
	return s.Remainder[0], State{
		Pos:       Pos{Row: s.Pos.Row, Col: s.Pos.Col + 1},
		PrevCol:   s.Pos.Col,
		Remainder: s.Remainder[1:],
	}
}

// blame is the position a conversion failure reports: the row of the
// current state and the column consumed last.
func (s State) blame() Pos {
	return Pos{Row: s.Pos.Row, Col: s.PrevCol}
}

// Exhausted reports whether no columns remain.
func (s State) Exhausted() bool { return len(s.Remainder) == 0 }
