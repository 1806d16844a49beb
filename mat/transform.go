package mat

func Translate(x, y, z float32) Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

func TranslateV(v Vector3) Matrix {
	return Translate(v.X, v.Y, v.Z)
}

func Scale(x, y, z float32) Matrix {
	return Matrix{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

func ScaleUniform(s float32) Matrix {
	return Scale(s, s, s)
}

func ScaleV(v Vector3) Matrix {
	return Scale(v.X, v.Y, v.Z)
}

// ScaleAt scales about center, equivalent to
// Translate(-center) * Scale(x, y, z) * Translate(center).
func ScaleAt(x, y, z float32, center Vector3) Matrix {
	m := Scale(x, y, z)
	m[M41] = center.X * (1 - x)
	m[M42] = center.Y * (1 - y)
	m[M43] = center.Z * (1 - z)
	return m
}

func ScaleUniformAt(s float32, center Vector3) Matrix {
	return ScaleAt(s, s, s, center)
}

func ScaleVAt(v Vector3, center Vector3) Matrix {
	return ScaleAt(v.X, v.Y, v.Z, center)
}

func RotateX(ang float32) Matrix {
	s, c := sincos(ang)
	return Matrix{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

func RotateY(ang float32) Matrix {
	s, c := sincos(ang)
	return Matrix{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

func RotateZ(ang float32) Matrix {
	s, c := sincos(ang)
	return Matrix{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// RotateXAt rotates around the X parallel axis through center, equivalent to
// Translate(-center) * RotateX(ang) * Translate(center).
func RotateXAt(ang float32, center Vector3) Matrix {
	return pivot(RotateX(ang), center)
}

func RotateYAt(ang float32, center Vector3) Matrix {
	return pivot(RotateY(ang), center)
}

func RotateZAt(ang float32, center Vector3) Matrix {
	return pivot(RotateZ(ang), center)
}

// pivot moves the fixed point of the linear transform m to center.
func pivot(m Matrix, center Vector3) Matrix {
	m.SetTranslation(center.Sub(center.TransformNormal(m)))
	return m
}

// AxisAngle rotates by ang radians around axis. axis needs not be normalized.
func AxisAngle(axis Vector3, ang float32) Matrix {
	a := axis.Normalize()
	x, y, z := a.X, a.Y, a.Z
	s, c := sincos(ang)
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	return Matrix{
		xx + c*(1-xx), xy - c*xy + s*z, xz - c*xz - s*y, 0,
		xy - c*xy - s*z, yy + c*(1-yy), yz - c*yz + s*x, 0,
		xz - c*xz + s*y, yz - c*yz - s*x, zz + c*(1-zz), 0,
		0, 0, 0, 1,
	}
}

func FromQuaternion(q Quaternion) Matrix {
	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, zw := q.X*q.Y, q.Z*q.W
	xz, yw := q.X*q.Z, q.Y*q.W
	yz, xw := q.Y*q.Z, q.X*q.W
	return Matrix{
		1 - 2*(yy+zz), 2 * (xy + zw), 2 * (xz - yw), 0,
		2 * (xy - zw), 1 - 2*(zz+xx), 2 * (yz + xw), 0,
		2 * (xz + yw), 2 * (yz - xw), 1 - 2*(yy+xx), 0,
		0, 0, 0, 1,
	}
}

// YawPitchRoll applies roll around Z, then pitch around X, then yaw around Y.
func YawPitchRoll(yaw, pitch, roll float32) Matrix {
	return RotateZ(roll).Mul(RotateX(pitch)).Mul(RotateY(yaw))
}

// Transform appends the rotation q to m.
func Transform(m Matrix, q Quaternion) Matrix {
	return m.Mul(FromQuaternion(q))
}

// Lerp interpolates each element linearly.
func Lerp(a, b Matrix, amount float32) Matrix {
	var out Matrix
	for i := range a {
		out[i] = a[i] + (b[i]-a[i])*amount
	}
	return out
}
