// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package csvrow_test

import (
	"strconv"
	"testing"

	"code.hybscloud.com/csvrow"
)

func TestEither(t *testing.T) {
	r := csvrow.Right[string](42)
	if !r.IsRight() || r.IsLeft() {
		t.Fatal("Right is not Right")
	}
	if v, ok := r.GetRight(); !ok || v != 42 {
		t.Fatalf("got %d, %v; want 42, true", v, ok)
	}
	if _, ok := r.GetLeft(); ok {
		t.Fatal("GetLeft on Right reported a value")
	}

	l := csvrow.Left[string, int]("bad")
	if !l.IsLeft() || l.IsRight() {
		t.Fatal("Left is not Left")
	}
	if e, ok := l.GetLeft(); !ok || e != "bad" {
		t.Fatalf("got %q, %v; want bad, true", e, ok)
	}
}

func TestMatchEither(t *testing.T) {
	show := func(e csvrow.Either[string, int]) string {
		return csvrow.MatchEither(e,
			func(s string) string { return "left:" + s },
			func(n int) string { return "right:" + strconv.Itoa(n) },
		)
	}
	if got := show(csvrow.Right[string](1)); got != "right:1" {
		t.Fatalf("got %q, want %q", got, "right:1")
	}
	if got := show(csvrow.Left[string, int]("x")); got != "left:x" {
		t.Fatalf("got %q, want %q", got, "left:x")
	}
}

func TestEitherTransforms(t *testing.T) {
	double := func(n int) int { return n * 2 }
	if v, _ := csvrow.MapEither(csvrow.Right[string](3), double).GetRight(); v != 6 {
		t.Fatalf("MapEither: got %d, want 6", v)
	}
	if e, _ := csvrow.MapEither(csvrow.Left[string, int]("x"), double).GetLeft(); e != "x" {
		t.Fatalf("MapEither on Left: got %q, want %q", e, "x")
	}

	half := func(n int) csvrow.Either[string, int] {
		if n%2 != 0 {
			return csvrow.Left[string, int]("odd")
		}
		return csvrow.Right[string](n / 2)
	}
	if v, _ := csvrow.FlatMapEither(csvrow.Right[string](8), half).GetRight(); v != 4 {
		t.Fatalf("FlatMapEither: got %d, want 4", v)
	}
	if e, _ := csvrow.FlatMapEither(csvrow.Right[string](3), half).GetLeft(); e != "odd" {
		t.Fatalf("FlatMapEither: got %q, want odd", e)
	}

	length := func(s string) int { return len(s) }
	if e, _ := csvrow.MapLeftEither(csvrow.Left[string, bool]("four"), length).GetLeft(); e != 4 {
		t.Fatalf("MapLeftEither: got %d, want 4", e)
	}
	if v, _ := csvrow.MapLeftEither(csvrow.Right[string](true), length).GetRight(); !v {
		t.Fatal("MapLeftEither changed a Right")
	}
}
