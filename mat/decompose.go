package mat

const (
	// decomposeEpsilon bounds both the polar iteration step and the
	// determinant a decomposable rotation must exceed.
	decomposeEpsilon       = 0.0001
	decomposeMaxIterations = 100
)

// Decompose splits m into scale, rotation and translation such that
// Scale(scale) * FromQuaternion(rotation) * Translate(translation) rebuilds m.
//
// Only one negative scale axis can be recovered: when the linear part flips
// orientation, the sign is carried on scale.X and the remaining reflection is
// folded into rotation. ok is false when the linear part is (near) singular.
func Decompose(m Matrix) (scale Vector3, rotation Quaternion, translation Vector3, ok bool) {
	translation = m.Translation()

	linear := m
	linear[M14], linear[M24], linear[M34] = 0, 0, 0
	linear[M41], linear[M42], linear[M43] = 0, 0, 0
	linear[M44] = 1

	scale = Vector3{
		X: linear.Right().Length(),
		Y: linear.Up().Length(),
		Z: linear.Backward().Length(),
	}

	q := polar(linear)
	rot := Identity()
	for r := 0; r < 3; r++ {
		row := Vector3{q[4*r], q[4*r+1], q[4*r+2]}.Normalize()
		rot[4*r], rot[4*r+1], rot[4*r+2] = row.X, row.Y, row.Z
	}

	det := rot.Determinant()
	if det < 0 {
		scale.X = -scale.X
		rot[M11], rot[M12], rot[M13] = -rot[M11], -rot[M12], -rot[M13]
	}
	rotation = QuaternionFromRotationMatrix(rot)
	ok = abs(det) > decomposeEpsilon
	return
}

// polar returns the orthogonal factor of m by averaging m with its inverse
// transpose until the upper-left 3x3 settles.
func polar(m Matrix) Matrix {
	cur := m
	for i := 0; i < decomposeMaxIterations; i++ {
		next := cur.Add(Invert(Transpose(cur))).MulScalar(0.5)
		var change float32
		for r := 0; r < 3; r++ {
			var d float32
			for c := 0; c < 3; c++ {
				d += abs(cur[4*r+c] - next[4*r+c])
			}
			if d > change {
				change = d
			}
		}
		cur = next
		if change <= decomposeEpsilon {
			break
		}
	}
	return cur
}
