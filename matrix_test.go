package warp

import (
	"math"
	"testing"
)

const matrixEpsilon = 1e-12

func matrixNear(a, b Matrix) bool {
	return math.Abs(a.A-b.A) < matrixEpsilon &&
		math.Abs(a.B-b.B) < matrixEpsilon &&
		math.Abs(a.C-b.C) < matrixEpsilon &&
		math.Abs(a.D-b.D) < matrixEpsilon &&
		math.Abs(a.E-b.E) < matrixEpsilon &&
		math.Abs(a.F-b.F) < matrixEpsilon
}

func TestIsIdentity(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want bool
	}{
		{"identity", Identity(), true},
		{"zero translation", Translate(0, 0), true},
		{"unit scale", Scale(1, 1), true},
		{"negative zero coefficients", Matrix{A: 1, B: math.Copysign(0, -1), C: 0, D: 0, E: 1, F: 0}, true},
		{"translation", Translate(10, 20), false},
		{"scale", Scale(2, 2), false},
		{"rotation", Rotate(math.Pi / 4), false},
		{"near identity", Matrix{A: 1 + 1e-15, B: 0, C: 0, D: 0, E: 1, F: 0}, false},
		{"zero matrix", Matrix{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.IsIdentity(); got != tt.want {
				t.Errorf("Matrix%+v.IsIdentity() = %v, want %v", tt.m, got, tt.want)
			}
		})
	}
}

func TestMultiplyAppliesOtherFirst(t *testing.T) {
	// Translate(5,0) * Scale(2,2) scales first, then translates.
	m := Translate(5, 0).Multiply(Scale(2, 2))
	x, y := m.TransformPoint(1, 1)
	if x != 7 || y != 2 {
		t.Errorf("TransformPoint(1,1) = (%v, %v), want (7, 2)", x, y)
	}

	// The opposite order translates first, then scales.
	m = Scale(2, 2).Multiply(Translate(5, 0))
	x, y = m.TransformPoint(1, 1)
	if x != 12 || y != 2 {
		t.Errorf("TransformPoint(1,1) = (%v, %v), want (12, 2)", x, y)
	}
}

func TestLeftComposeMethods(t *testing.T) {
	// m.Translate(dx,dy) must equal Translate(dx,dy).Multiply(m).
	base := Rotate(0.3).Multiply(Scale(2, 3))

	tests := []struct {
		name string
		got  Matrix
		want Matrix
	}{
		{"translate", base.Translate(4, -7), Translate(4, -7).Multiply(base)},
		{"scale", base.Scale(0.5, 2), Scale(0.5, 2).Multiply(base)},
		{"rotate", base.Rotate(1.1), Rotate(1.1).Multiply(base)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}

func TestTransformPoint(t *testing.T) {
	tests := []struct {
		name         string
		m            Matrix
		x, y         float64
		wantX, wantY float64
	}{
		{"identity", Identity(), 3, 4, 3, 4},
		{"translate", Translate(10, -5), 3, 4, 13, -1},
		{"scale", Scale(2, 3), 3, 4, 6, 12},
		{"rotate quarter turn ccw", Rotate(math.Pi / 2), 1, 0, 0, 1},
		{"rotate half turn", Rotate(math.Pi), 1, 0, -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tt.m.TransformPoint(tt.x, tt.y)
			if math.Abs(x-tt.wantX) > matrixEpsilon || math.Abs(y-tt.wantY) > matrixEpsilon {
				t.Errorf("TransformPoint(%v, %v) = (%v, %v), want (%v, %v)",
					tt.x, tt.y, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestInvert(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"translation", Translate(10, -3)},
		{"scale", Scale(2, 0.5)},
		{"rotation", Rotate(0.7)},
		{"composed", Scale(3, 2).Multiply(Rotate(1.2)).Multiply(Translate(-4, 9))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, ok := tt.m.Invert()
			if !ok {
				t.Fatalf("Invert() reported singular for %+v", tt.m)
			}
			if got := tt.m.Multiply(inv); !matrixNear(got, Identity()) {
				t.Errorf("m * m^-1 = %+v, want identity", got)
			}
			if got := inv.Multiply(tt.m); !matrixNear(got, Identity()) {
				t.Errorf("m^-1 * m = %+v, want identity", got)
			}
		})
	}
}

func TestInvertSingular(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"zero matrix", Matrix{}},
		{"zero x scale", Scale(0, 1)},
		{"zero y scale", Scale(1, 0)},
		{"rank one", Matrix{A: 1, B: 2, C: 0, D: 2, E: 4, F: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := tt.m.Invert(); ok {
				t.Errorf("Invert() = ok for singular matrix %+v", tt.m)
			}
		})
	}
}

func TestInvertMapsPointsBack(t *testing.T) {
	m := Scale(1.7, 0.6).Multiply(Rotate(-0.4)).Multiply(Translate(3, -8))
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("Invert() reported singular")
	}

	points := [][2]float64{{0, 0}, {1, 0}, {0, 1}, {-5, 12}, {100, -3.5}}
	for _, p := range points {
		fx, fy := m.TransformPoint(p[0], p[1])
		bx, by := inv.TransformPoint(fx, fy)
		if math.Abs(bx-p[0]) > 1e-9 || math.Abs(by-p[1]) > 1e-9 {
			t.Errorf("round trip of (%v, %v) = (%v, %v)", p[0], p[1], bx, by)
		}
	}
}
