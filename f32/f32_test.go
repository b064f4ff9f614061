// SPDX-License-Identifier: Unlicense OR MIT

package f32

import (
	"math"
	"testing"
)

func eq(p1, p2 Point) bool {
	tol := 1e-5
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	return math.Abs(math.Sqrt(float64(dx*dx+dy*dy))) < tol
}

func TestPointMulPoint(t *testing.T) {
	p := Pt(1, 2)
	if r := p.MulPoint(Pt(8, 16)); !eq(r, Pt(8, 32)) {
		t.Errorf("mulpoint mismatch: have %v, want (8,32)", r)
	}
}

func TestPointString(t *testing.T) {
	if got, want := Pt(1.5, -2).String(), "(1.5,-2)"; got != want {
		t.Errorf("String: have %q, want %q", got, want)
	}
}
