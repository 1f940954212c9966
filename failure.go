// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package csvrow

import (
	"errors"
	"fmt"
)

// Failure taxonomy.
//
// Structured failures are concrete pointer types implementing error.
// Anything else reaching a caller through an error return is an
// unrecovered fault.

var (
	// ErrTrailingColumns is the cause of the failure raised by [End] when
	// columns remain after the last declared field.
	ErrTrailingColumns = errors.New("csvrow: unexpected trailing columns")

	// ErrNoParser reports a type without a registered default parser.
	ErrNoParser = errors.New("csvrow: no parser registered")

	// ErrBadConstructor reports a constructor that derivation cannot walk.
	ErrBadConstructor = errors.New("csvrow: unusable constructor")

	// ErrIsDirectory is the cause of the [IOFailure] reported for an input
	// path naming a directory.
	ErrIsDirectory = errors.New("csvrow: is a directory")
)

// Failure is the union of every structured failure: [*IOFailure] and
// [ParseFailure]. It is reported only at the outermost boundary.
type Failure interface {
	error
	failure()
}

// ParseFailure is a row or column failure carrying the blamed position.
// It is either [*ColumnParseFailure] or [*RowExhaustionFailure].
type ParseFailure interface {
	Failure
	Pos() Pos
}

// ColumnParseFailure reports a raw value that failed conversion, or data
// found after the last expected column.
type ColumnParseFailure struct {
	Cause    error
	Position Pos
}

func (f *ColumnParseFailure) Error() string {
	if f.Cause == nil {
		return "csvrow: cannot parse column at " + f.Position.String()
	}
	return fmt.Sprintf("csvrow: cannot parse column at %s: %v", f.Position, f.Cause)
}

// Unwrap returns the conversion cause.
func (f *ColumnParseFailure) Unwrap() error { return f.Cause }

// Pos returns the blamed position.
func (f *ColumnParseFailure) Pos() Pos { return f.Position }

func (*ColumnParseFailure) failure() {}

// RowExhaustionFailure reports a column expected on a row that had none
// left. Position.Col equals the number of columns the row holds.
type RowExhaustionFailure struct {
	Position Pos
}

func (f *RowExhaustionFailure) Error() string {
	return "csvrow: row exhausted at " + f.Position.String()
}

// Pos returns the blamed position.
func (f *RowExhaustionFailure) Pos() Pos { return f.Position }

func (*RowExhaustionFailure) failure() {}

// IOFailure reports an input file that does not exist, cannot be
// accessed or is a directory. Other I/O errors are faults and are not
// wrapped here.
type IOFailure struct {
	Path string
	Err  error
}

func (f *IOFailure) Error() string {
	return fmt.Sprintf("csvrow: cannot read %s: %v", f.Path, f.Err)
}

// Unwrap returns the underlying I/O error.
func (f *IOFailure) Unwrap() error { return f.Err }

func (*IOFailure) failure() {}

// widen lifts a ParseFailure into the Failure union.
func widen(f ParseFailure) Failure { return f }
