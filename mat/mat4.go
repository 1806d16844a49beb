// Package mat implements 4x4 transform matrices and the vector types they act on.
package mat

import (
	"fmt"
)

// Matrix is a 4x4 matrix stored row-major, element (row, col) at index row*4+col.
// Vectors are rows multiplied from the left (v' = v*M), so translation lives in
// M41, M42 and M43, and A.Mul(B) applies A first.
type Matrix [16]float32

// Element indices of Matrix.
const (
	M11 = iota
	M12
	M13
	M14
	M21
	M22
	M23
	M24
	M31
	M32
	M33
	M34
	M41
	M42
	M43
	M44
)

func NewMatrix(
	m11, m12, m13, m14,
	m21, m22, m23, m24,
	m31, m32, m33, m34,
	m41, m42, m43, m44 float32,
) Matrix {
	return Matrix{
		m11, m12, m13, m14,
		m21, m22, m23, m24,
		m31, m32, m33, m34,
		m41, m42, m43, m44,
	}
}

// Identity returns the identity matrix. The zero value of Matrix is the zero
// matrix, not the identity.
func Identity() Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func (m Matrix) At(row, col int) float32 {
	return m[4*row+col]
}

func (m *Matrix) Set(row, col int, v float32) {
	m[4*row+col] = v
}

func (m Matrix) Row(row int) Vector4 {
	return Vector4{m[4*row], m[4*row+1], m[4*row+2], m[4*row+3]}
}

func (m Matrix) Translation() Vector3 {
	return Vector3{m[M41], m[M42], m[M43]}
}

// SetTranslation overwrites M41, M42 and M43 only.
func (m *Matrix) SetTranslation(v Vector3) {
	m[M41], m[M42], m[M43] = v.X, v.Y, v.Z
}

func (m Matrix) Right() Vector3 {
	return Vector3{m[M11], m[M12], m[M13]}
}

func (m Matrix) Left() Vector3 {
	return m.Right().Neg()
}

func (m Matrix) Up() Vector3 {
	return Vector3{m[M21], m[M22], m[M23]}
}

func (m Matrix) Down() Vector3 {
	return m.Up().Neg()
}

func (m Matrix) Backward() Vector3 {
	return Vector3{m[M31], m[M32], m[M33]}
}

func (m Matrix) Forward() Vector3 {
	return m.Backward().Neg()
}

func (m Matrix) Mul(a Matrix) Matrix {
	var out Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[4*i+k] * a[4*k+j]
			}
			out[4*i+j] = sum
		}
	}
	return out
}

func (m Matrix) MulScalar(s float32) Matrix {
	var out Matrix
	for i := range m {
		out[i] = m[i] * s
	}
	return out
}

func (m Matrix) Add(a Matrix) Matrix {
	var out Matrix
	for i := range m {
		out[i] = m[i] + a[i]
	}
	return out
}

func (m Matrix) Sub(a Matrix) Matrix {
	var out Matrix
	for i := range m {
		out[i] = m[i] - a[i]
	}
	return out
}

func (m Matrix) Neg() Matrix {
	var out Matrix
	for i := range m {
		out[i] = -m[i]
	}
	return out
}

// Equal compares element-wise with FloatEqual. A matrix holding NaN is never
// equal to any matrix, itself included.
func (m Matrix) Equal(a Matrix) bool {
	for i := range m {
		if !FloatEqual(m[i], a[i]) {
			return false
		}
	}
	return true
}

func (m Matrix) NotEqual(a Matrix) bool {
	return !m.Equal(a)
}

func (m Matrix) IsIdentity() bool {
	return m.Equal(Identity())
}

// Float32s returns a copy of the row-major elements.
func (m Matrix) Float32s() []float32 {
	return append([]float32(nil), m[:]...)
}

func (m Matrix) String() string {
	return fmt.Sprintf(
		"{ {M11:%g M12:%g M13:%g M14:%g} {M21:%g M22:%g M23:%g M24:%g} {M31:%g M32:%g M33:%g M34:%g} {M41:%g M42:%g M43:%g M44:%g} }",
		m[M11], m[M12], m[M13], m[M14],
		m[M21], m[M22], m[M23], m[M24],
		m[M31], m[M32], m[M33], m[M34],
		m[M41], m[M42], m[M43], m[M44],
	)
}
