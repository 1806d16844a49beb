package mat

// Quaternion is a rotation (X, Y, Z) * sin(angle/2), W = cos(angle/2).
type Quaternion struct {
	X, Y, Z, W float32
}

func QuaternionIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1}
}

func QuaternionFromAxisAngle(axis Vector3, angle float32) Quaternion {
	s, c := sincos(angle / 2)
	a := axis.Normalize()
	return Quaternion{a.X * s, a.Y * s, a.Z * s, c}
}

// QuaternionFromYawPitchRoll rotates by roll around Z, then pitch around X,
// then yaw around Y, matching YawPitchRoll.
func QuaternionFromYawPitchRoll(yaw, pitch, roll float32) Quaternion {
	sr, cr := sincos(roll / 2)
	sp, cp := sincos(pitch / 2)
	sy, cy := sincos(yaw / 2)
	return Quaternion{
		X: cy*sp*cr + sy*cp*sr,
		Y: sy*cp*cr - cy*sp*sr,
		Z: cy*cp*sr - sy*sp*cr,
		W: cy*cp*cr + sy*sp*sr,
	}
}

// QuaternionFromRotationMatrix reads the upper-left 3x3 of m, which must be
// a proper rotation.
func QuaternionFromRotationMatrix(m Matrix) Quaternion {
	trace := m[M11] + m[M22] + m[M33]
	switch {
	case trace > 0:
		s := sqrt(trace + 1)
		inv := 0.5 / s
		return Quaternion{
			X: (m[M23] - m[M32]) * inv,
			Y: (m[M31] - m[M13]) * inv,
			Z: (m[M12] - m[M21]) * inv,
			W: s * 0.5,
		}
	case m[M11] >= m[M22] && m[M11] >= m[M33]:
		s := sqrt(1 + m[M11] - m[M22] - m[M33])
		inv := 0.5 / s
		return Quaternion{
			X: s * 0.5,
			Y: (m[M12] + m[M21]) * inv,
			Z: (m[M13] + m[M31]) * inv,
			W: (m[M23] - m[M32]) * inv,
		}
	case m[M22] > m[M33]:
		s := sqrt(1 + m[M22] - m[M11] - m[M33])
		inv := 0.5 / s
		return Quaternion{
			X: (m[M21] + m[M12]) * inv,
			Y: s * 0.5,
			Z: (m[M32] + m[M23]) * inv,
			W: (m[M31] - m[M13]) * inv,
		}
	default:
		s := sqrt(1 + m[M33] - m[M11] - m[M22])
		inv := 0.5 / s
		return Quaternion{
			X: (m[M31] + m[M13]) * inv,
			Y: (m[M32] + m[M23]) * inv,
			Z: s * 0.5,
			W: (m[M12] - m[M21]) * inv,
		}
	}
}

// Mul returns the rotation q followed by a.
func (q Quaternion) Mul(a Quaternion) Quaternion {
	return Quaternion{
		X: a.W*q.X + a.X*q.W + a.Y*q.Z - a.Z*q.Y,
		Y: a.W*q.Y - a.X*q.Z + a.Y*q.W + a.Z*q.X,
		Z: a.W*q.Z + a.X*q.Y - a.Y*q.X + a.Z*q.W,
		W: a.W*q.W - a.X*q.X - a.Y*q.Y - a.Z*q.Z,
	}
}

func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, q.W}
}

func (q Quaternion) Neg() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, -q.W}
}

func (q Quaternion) Dot(a Quaternion) float32 {
	return q.X*a.X + q.Y*a.Y + q.Z*a.Z + q.W*a.W
}

func (q Quaternion) Length() float32 {
	return sqrt(q.Dot(q))
}

func (q Quaternion) Normalize() Quaternion {
	l := 1 / q.Length()
	return Quaternion{q.X * l, q.Y * l, q.Z * l, q.W * l}
}

func (q Quaternion) Equal(a Quaternion) bool {
	return FloatEqual(q.X, a.X) && FloatEqual(q.Y, a.Y) &&
		FloatEqual(q.Z, a.Z) && FloatEqual(q.W, a.W)
}

// EqualRotation reports whether q and a describe the same rotation, that is
// q equals a or -a.
func (q Quaternion) EqualRotation(a Quaternion) bool {
	return q.Equal(a) || q.Equal(a.Neg())
}
