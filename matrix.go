package warp

import "math"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
//
// The implicit third row is | 0 0 1 |, so a Matrix is the affine subset of
// the 3x3 homogeneous transforms usually written for 2D graphics.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
// Positive angles rotate counter-clockwise.
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Multiply multiplies two matrices (m * other).
// The result applies 'other' first, then 'm'.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Translate left-composes a translation onto m, so the translation is
// applied after every transform already in m.
func (m Matrix) Translate(x, y float64) Matrix {
	return Translate(x, y).Multiply(m)
}

// Scale left-composes a scale onto m, so the scale is applied after every
// transform already in m.
func (m Matrix) Scale(x, y float64) Matrix {
	return Scale(x, y).Multiply(m)
}

// Rotate left-composes a rotation (angle in radians) onto m, so the
// rotation is applied after every transform already in m.
func (m Matrix) Rotate(angle float64) Matrix {
	return Rotate(angle).Multiply(m)
}

// TransformPoint applies the transformation to point (x, y).
// Returns the transformed coordinates (x', y').
func (m Matrix) TransformPoint(x, y float64) (float64, float64) {
	return m.A*x + m.B*y + m.C, m.D*x + m.E*y + m.F
}

// Invert returns the inverse transformation.
// Returns false if the matrix is singular (non-invertible).
func (m Matrix) Invert() (Matrix, bool) {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) < 1e-10 {
		return Matrix{}, false
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}, true
}

// IsIdentity returns true if the matrix is exactly the identity matrix.
// The comparison is bit-exact: a transform that merely rounds to identity
// does not take the resampler's copy fast path.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}
