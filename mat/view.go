package mat

// LookAt builds a right-handed view matrix with the camera at eye looking at
// target.
func LookAt(eye, target, up Vector3) Matrix {
	z := eye.Sub(target).Normalize()
	x := up.Cross(z).Normalize()
	y := z.Cross(x)
	return Matrix{
		x.X, y.X, z.X, 0,
		x.Y, y.Y, z.Y, 0,
		x.Z, y.Z, z.Z, 0,
		-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1,
	}
}

// World places an object at position facing forward. Rows are right, up,
// backward and position.
func World(position, forward, up Vector3) Matrix {
	f := forward.Normalize()
	right := f.Cross(up.Normalize()).Normalize()
	u := right.Cross(f).Normalize()
	return Matrix{
		right.X, right.Y, right.Z, 0,
		u.X, u.Y, u.Z, 0,
		-f.X, -f.Y, -f.Z, 0,
		position.X, position.Y, position.Z, 1,
	}
}
