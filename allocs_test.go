// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package csvrow_test

import (
	"testing"

	"code.hybscloud.com/csvrow"
)

func TestColumnAllocations(t *testing.T) {
	row := csvrow.Row{"abc", "de"}

	p := csvrow.Column()
	allocs := testing.AllocsPerRun(100, func() {
		_ = csvrow.EvalRow(p, 0, row)
	})
	if allocs > 0 {
		t.Errorf("EvalRow(Column) allocs = %v; want 0", allocs)
	}

	length := csvrow.Transform(csvrow.Column(), func(s string) int { return len(s) })
	allocs2 := testing.AllocsPerRun(100, func() {
		_ = csvrow.EvalRow(length, 0, row)
	})
	if allocs2 > 0 {
		t.Errorf("EvalRow(Transform(Column)) allocs = %v; want 0", allocs2)
	}
}
