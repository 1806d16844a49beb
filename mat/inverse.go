package mat

// InverseEpsilon is the absolute determinant magnitude above which HasInverse
// reports true. It does not scale with the matrix.
const InverseEpsilon = 0.0005

// subMatrix removes row and col, returning the remaining 3x3 row-major.
func (m Matrix) subMatrix(row, col int) [9]float32 {
	var out [9]float32
	n := 0
	for i := 0; i < 4; i++ {
		if i == row {
			continue
		}
		for j := 0; j < 4; j++ {
			if j == col {
				continue
			}
			out[n] = m[4*i+j]
			n++
		}
	}
	return out
}

func subMatrixDeterminant(s [9]float32) float32 {
	return s[0]*(s[4]*s[8]-s[5]*s[7]) -
		s[1]*(s[3]*s[8]-s[5]*s[6]) +
		s[2]*(s[3]*s[7]-s[4]*s[6])
}

// Determinant expands along the first row.
func (m Matrix) Determinant() float32 {
	var det float32
	sign := float32(1)
	for col := 0; col < 4; col++ {
		det += sign * m[col] * subMatrixDeterminant(m.subMatrix(0, col))
		sign = -sign
	}
	return det
}

func (m Matrix) HasInverse() bool {
	return abs(m.Determinant()) > InverseEpsilon
}

// Invert returns the adjugate divided by the determinant.
// A singular matrix yields NaN or Inf elements; no error is reported.
func Invert(m Matrix) Matrix {
	det := m.Determinant()
	var inv Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			sign := float32(1 - ((i+j)%2)*2)
			inv[i+4*j] = subMatrixDeterminant(m.subMatrix(i, j)) * sign / det
		}
	}
	return inv
}

// Invert replaces m with its inverse.
func (m *Matrix) Invert() {
	*m = Invert(*m)
}

func Transpose(m Matrix) Matrix {
	var out Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[4*j+i] = m[4*i+j]
		}
	}
	return out
}

// Transpose replaces m with its transpose.
func (m *Matrix) Transpose() {
	*m = Transpose(*m)
}
