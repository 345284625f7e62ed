package core

import (
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)

	if got := a.Add(b); got != V(4, 2) {
		t.Errorf("Add = %+v, expected (4, 2)", got)
	}
	if got := a.Sub(b); got != V(2, 6) {
		t.Errorf("Sub = %+v, expected (2, 6)", got)
	}
	if got := a.Scale(0.5); got != V(1.5, 2) {
		t.Errorf("Scale = %+v, expected (1.5, 2)", got)
	}
	if a.LenSq() != 25 || a.Len() != 5 {
		t.Errorf("LenSq/Len = %f/%f, expected 25/5", a.LenSq(), a.Len())
	}
}

func TestVec2Normalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		want Vec2
	}{
		{"axis", V(0, -7), V(0, -1)},
		{"diagonal", V(3, 4), V(0.6, 0.8)},
		{"zero stays zero", Vec2{}, Vec2{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.v.Normalize()
			if math.Abs(got.X-tc.want.X) > 1e-9 || math.Abs(got.Y-tc.want.Y) > 1e-9 {
				t.Errorf("Normalize(%+v) = %+v, expected %+v", tc.v, got, tc.want)
			}
		})
	}
}

func TestRectEdgesAndCenter(t *testing.T) {
	// A 3x3 gap box on an 80x24 screen
	r := NewRect(34, 18, 3, 3)

	if r.Right() != 37 {
		t.Errorf("Right() = %f, expected 37", r.Right())
	}
	if r.Bottom() != 21 {
		t.Errorf("Bottom() = %f, expected 21", r.Bottom())
	}
	if c := r.Center(); c != V(35.5, 19.5) {
		t.Errorf("Center() = %+v, expected (35.5, 19.5)", c)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi int
		expected    int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
		{7, 4, 12, 7},
		{3, 4, 12, 4},
		{20, 4, 12, 12},
		{5, 8, 2, 8}, // Inverted bounds: lower bound wins
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}
