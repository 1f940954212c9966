// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package csvrow_test

import (
	"strconv"
	"testing"
	"time"

	"code.hybscloud.com/csvrow"
)

var benchRow = csvrow.Row{"1", "Ann", "1970-01-01"}

// BenchmarkColumn measures a single column consumption.
func BenchmarkColumn(b *testing.B) {
	p := csvrow.Column()
	for b.Loop() {
		_ = csvrow.EvalRow(p, 0, benchRow)
	}
}

// BenchmarkTypedRow measures a three-field row built with Map3.
func BenchmarkTypedRow(b *testing.B) {
	p := csvrow.Strict(csvrow.Map3(csvrow.Int(), csvrow.String(), csvrow.Date(), newPerson))
	for b.Loop() {
		_ = csvrow.EvalRow(p, 0, benchRow)
	}
}

// BenchmarkDerive3Row measures the same row through typed derivation.
func BenchmarkDerive3Row(b *testing.B) {
	p, err := csvrow.Derive3(csvrow.DefaultRegistry(), newPerson, csvrow.WithStrict())
	if err != nil {
		b.Fatal(err)
	}
	for b.Loop() {
		_ = csvrow.EvalRow(p, 0, benchRow)
	}
}

// BenchmarkDeriveCurriedRow measures the same row through reflective
// derivation of a curried constructor.
func BenchmarkDeriveCurriedRow(b *testing.B) {
	p, err := csvrow.Derive[person](csvrow.DefaultRegistry(), curriedPerson, csvrow.WithStrict())
	if err != nil {
		b.Fatal(err)
	}
	for b.Loop() {
		_ = csvrow.EvalRow(p, 0, benchRow)
	}
}

// BenchmarkDeriveConstruction measures building a parser, registry lookup
// included.
func BenchmarkDeriveConstruction(b *testing.B) {
	reg := csvrow.DefaultRegistry()
	for b.Loop() {
		_, _ = csvrow.Derive[person](reg, curriedPerson)
	}
}

// BenchmarkParseLines measures 1000 lines through a derived parser.
func BenchmarkParseLines(b *testing.B) {
	lines := make([]string, 1000)
	born := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range lines {
		lines[i] = strconv.Itoa(i) + ",name," + born.AddDate(0, 0, i).Format(csvrow.DateLayout)
	}
	p, err := csvrow.Derive3(csvrow.DefaultRegistry(), newPerson)
	if err != nil {
		b.Fatal(err)
	}
	for b.Loop() {
		_ = csvrow.ParseLines(p, lines)
	}
}
