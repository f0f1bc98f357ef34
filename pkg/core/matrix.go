package core

import (
	"fmt"
	"math"
	"strings"
)

// Matrix44 is a 4x4 affine transform stored row-major.
//
// Points and directions are treated as row vectors multiplied on the left,
// p' = p·M, so the translation lives in row 3. Under that convention
// a.Multiply(b) applies a first and then b.
//
// The zero value is not the identity; use Identity or one of the
// constructors below.
type Matrix44 [4][4]float64

// Identity returns the 4x4 identity matrix
func Identity() Matrix44 {
	return Matrix44{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// NewMatrix44 builds a matrix from 16 row-major values
func NewMatrix44(values [16]float64) Matrix44 {
	var m Matrix44
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m[i][j] = values[i*4+j]
		}
	}
	return m
}

// Multiply returns the matrix product m·r
func (m Matrix44) Multiply(r Matrix44) Matrix44 {
	var out Matrix44
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = m[i][0]*r[0][j] +
				m[i][1]*r[1][j] +
				m[i][2]*r[2][j] +
				m[i][3]*r[3][j]
		}
	}
	return out
}

// TransformPoint transforms p as a homogeneous point with w = 1. When the
// resulting w is neither 0 nor 1 the result is divided by w.
func (m Matrix44) TransformPoint(p Vec3) Vec3 {
	out := Vec3{
		X: p.X*m[0][0] + p.Y*m[1][0] + p.Z*m[2][0] + m[3][0],
		Y: p.X*m[0][1] + p.Y*m[1][1] + p.Z*m[2][1] + m[3][1],
		Z: p.X*m[0][2] + p.Y*m[1][2] + p.Z*m[2][2] + m[3][2],
	}
	w := p.X*m[0][3] + p.Y*m[1][3] + p.Z*m[2][3] + m[3][3]
	if w != 1 && w != 0 {
		out = out.Multiply(1 / w)
	}
	return out
}

// TransformDirection transforms d by the linear part of m only; directions
// are not displaced by translation and are never divided by w
func (m Matrix44) TransformDirection(d Vec3) Vec3 {
	return Vec3{
		X: d.X*m[0][0] + d.Y*m[1][0] + d.Z*m[2][0],
		Y: d.X*m[0][1] + d.Y*m[1][1] + d.Z*m[2][1],
		Z: d.X*m[0][2] + d.Y*m[1][2] + d.Z*m[2][2],
	}
}

// Transpose returns the transpose of m
func (m Matrix44) Transpose() Matrix44 {
	var out Matrix44
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = m[j][i]
		}
	}
	return out
}

// Inverse returns the inverse of m, or the identity matrix if m is singular.
// Callers that need to tell the two apart should use TryInverse.
func (m Matrix44) Inverse() Matrix44 {
	inv, _ := m.TryInverse()
	return inv
}

// TryInverse inverts m by Gauss-Jordan elimination with partial pivoting on
// the augmented system [m | I]. It reports false, together with the identity
// matrix, when a pivot or diagonal entry is exactly zero.
func (m Matrix44) TryInverse() (Matrix44, bool) {
	s := Identity()
	t := m

	// Forward elimination
	for i := 0; i < 3; i++ {
		pivot := i
		pivotSize := math.Abs(t[i][i])

		for j := i + 1; j < 4; j++ {
			if tmp := math.Abs(t[j][i]); tmp > pivotSize {
				pivot = j
				pivotSize = tmp
			}
		}

		if pivotSize == 0 {
			return Identity(), false
		}

		if pivot != i {
			t[i], t[pivot] = t[pivot], t[i]
			s[i], s[pivot] = s[pivot], s[i]
		}

		for j := i + 1; j < 4; j++ {
			f := t[j][i] / t[i][i]
			for k := 0; k < 4; k++ {
				t[j][k] -= f * t[i][k]
				s[j][k] -= f * s[i][k]
			}
		}
	}

	// Backward substitution
	for i := 3; i >= 0; i-- {
		f := t[i][i]
		if f == 0 {
			return Identity(), false
		}

		for j := 0; j < 4; j++ {
			t[i][j] /= f
			s[i][j] /= f
		}

		for j := 0; j < i; j++ {
			f = t[j][i]
			for k := 0; k < 4; k++ {
				t[j][k] -= f * t[i][k]
				s[j][k] -= f * s[i][k]
			}
		}
	}

	return s, true
}

// Translate returns a matrix that moves points by offset
func Translate(offset Vec3) Matrix44 {
	m := Identity()
	m[3][0] = offset.X
	m[3][1] = offset.Y
	m[3][2] = offset.Z
	return m
}

// Scale returns a matrix that scales each axis independently
func Scale(factors Vec3) Matrix44 {
	m := Identity()
	m[0][0] = factors.X
	m[1][1] = factors.Y
	m[2][2] = factors.Z
	return m
}

// RotateX returns a rotation of rad radians around the x-axis
func RotateX(rad float64) Matrix44 {
	sin, cos := math.Sincos(rad)
	m := Identity()
	m[1][1] = cos
	m[1][2] = sin
	m[2][1] = -sin
	m[2][2] = cos
	return m
}

// RotateY returns a rotation of rad radians around the y-axis
func RotateY(rad float64) Matrix44 {
	sin, cos := math.Sincos(rad)
	m := Identity()
	m[0][0] = cos
	m[0][2] = -sin
	m[2][0] = sin
	m[2][2] = cos
	return m
}

// RotateZ returns a rotation of rad radians around the z-axis
func RotateZ(rad float64) Matrix44 {
	sin, cos := math.Sincos(rad)
	m := Identity()
	m[0][0] = cos
	m[0][1] = sin
	m[1][0] = -sin
	m[1][1] = cos
	return m
}

// DegreesToRadians converts an angle in degrees to radians
func DegreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadiansToDegrees converts an angle in radians to degrees
func RadiansToDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// String formats the matrix as four bracketed rows
func (m Matrix44) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i := 0; i < 4; i++ {
		if i > 0 {
			sb.WriteString("\n ")
		}
		fmt.Fprintf(&sb, "%g %g %g %g", m[i][0], m[i][1], m[i][2], m[i][3])
	}
	sb.WriteString("}")
	return sb.String()
}
