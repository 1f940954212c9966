// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package csvrow

import (
	"strconv"
	"time"
)

// DateLayout is the layout of [Date] columns.
const DateLayout = "2006-01-02"

// ColumnOf consumes one column and converts its raw text with conv.
// Conversion errors blame the consumed column.
func ColumnOf[A any](conv func(string) (A, error)) RowParser[A] {
	return GuardMap(Column(), conv)
}

// Optional consumes one column. An empty token yields nil; anything else
// is converted with conv.
func Optional[A any](conv func(string) (A, error)) RowParser[*A] {
	return ColumnOf(func(raw string) (*A, error) {
		if raw == "" {
			return nil, nil
		}
		v, err := conv(raw)
		if err != nil {
			return nil, err
		}
		return &v, nil
	})
}

// Default column parsers. DefaultRegistry registers each under its type.

// String yields the raw column text.
func String() RowParser[string] { return Column() }

// Int parses a base-10 int.
func Int() RowParser[int] { return ColumnOf(strconv.Atoi) }

// Int64 parses a base-10 int64.
func Int64() RowParser[int64] {
	return ColumnOf(func(raw string) (int64, error) {
		return strconv.ParseInt(raw, 10, 64)
	})
}

// Uint parses a base-10 uint.
func Uint() RowParser[uint] {
	return ColumnOf(func(raw string) (uint, error) {
		v, err := strconv.ParseUint(raw, 10, strconv.IntSize)
		return uint(v), err
	})
}

// Float64 parses a float64.
func Float64() RowParser[float64] {
	return ColumnOf(func(raw string) (float64, error) {
		return strconv.ParseFloat(raw, 64)
	})
}

// Bool parses the forms accepted by [strconv.ParseBool].
func Bool() RowParser[bool] { return ColumnOf(strconv.ParseBool) }

// Date parses a calendar date in [DateLayout], in UTC.
func Date() RowParser[time.Time] { return Time(DateLayout) }

// Time parses a timestamp in the given layout.
func Time(layout string) RowParser[time.Time] {
	return ColumnOf(func(raw string) (time.Time, error) {
		return time.Parse(layout, raw)
	})
}

// Duration parses the forms accepted by [time.ParseDuration].
func Duration() RowParser[time.Duration] { return ColumnOf(time.ParseDuration) }
