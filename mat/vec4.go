package mat

type Vector4 struct {
	X, Y, Z, W float32
}

func NewVector4(x, y, z, w float32) Vector4 {
	return Vector4{x, y, z, w}
}

func (v Vector4) Dot(a Vector4) float32 {
	return v.X*a.X + v.Y*a.Y + v.Z*a.Z + v.W*a.W
}

func (v Vector4) XYZ() Vector3 {
	return Vector3{v.X, v.Y, v.Z}
}

func (v Vector4) Transform(m Matrix) Vector4 {
	return Vector4{
		v.X*m[M11] + v.Y*m[M21] + v.Z*m[M31] + v.W*m[M41],
		v.X*m[M12] + v.Y*m[M22] + v.Z*m[M32] + v.W*m[M42],
		v.X*m[M13] + v.Y*m[M23] + v.Z*m[M33] + v.W*m[M43],
		v.X*m[M14] + v.Y*m[M24] + v.Z*m[M34] + v.W*m[M44],
	}
}

func (v Vector4) Equal(a Vector4) bool {
	return FloatEqual(v.X, a.X) && FloatEqual(v.Y, a.Y) &&
		FloatEqual(v.Z, a.Z) && FloatEqual(v.W, a.W)
}
