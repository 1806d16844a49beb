package mat

type Vector3 struct {
	X, Y, Z float32
}

func NewVector3(x, y, z float32) Vector3 {
	return Vector3{x, y, z}
}

func (v Vector3) Add(a Vector3) Vector3 {
	return Vector3{v.X + a.X, v.Y + a.Y, v.Z + a.Z}
}

func (v Vector3) Sub(a Vector3) Vector3 {
	return Vector3{v.X - a.X, v.Y - a.Y, v.Z - a.Z}
}

func (v Vector3) Mul(a float32) Vector3 {
	return Vector3{v.X * a, v.Y * a, v.Z * a}
}

func (v Vector3) Neg() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

func (v Vector3) Dot(a Vector3) float32 {
	return v.X*a.X + v.Y*a.Y + v.Z*a.Z
}

func (v Vector3) Cross(a Vector3) Vector3 {
	return Vector3{
		v.Y*a.Z - v.Z*a.Y,
		v.Z*a.X - v.X*a.Z,
		v.X*a.Y - v.Y*a.X,
	}
}

func (v Vector3) LengthSquared() float32 {
	return v.Dot(v)
}

func (v Vector3) Length() float32 {
	return sqrt(v.LengthSquared())
}

// Normalize returns v scaled to unit length. The zero vector gives NaN.
func (v Vector3) Normalize() Vector3 {
	return v.Mul(1 / v.Length())
}

func (v Vector3) Equal(a Vector3) bool {
	return FloatEqual(v.X, a.X) && FloatEqual(v.Y, a.Y) && FloatEqual(v.Z, a.Z)
}

// TransformPoint returns (v, 1)*m without the homogeneous divide.
func (v Vector3) TransformPoint(m Matrix) Vector3 {
	return Vector3{
		v.X*m[M11] + v.Y*m[M21] + v.Z*m[M31] + m[M41],
		v.X*m[M12] + v.Y*m[M22] + v.Z*m[M32] + m[M42],
		v.X*m[M13] + v.Y*m[M23] + v.Z*m[M33] + m[M43],
	}
}

// TransformNormal returns (v, 0)*m.
func (v Vector3) TransformNormal(m Matrix) Vector3 {
	return Vector3{
		v.X*m[M11] + v.Y*m[M21] + v.Z*m[M31],
		v.X*m[M12] + v.Y*m[M22] + v.Z*m[M32],
		v.X*m[M13] + v.Y*m[M23] + v.Z*m[M33],
	}
}

// TransformCoord returns (v, 1)*m projected back to w = 1.
func (v Vector3) TransformCoord(m Matrix) Vector3 {
	o := Vector4{v.X, v.Y, v.Z, 1}.Transform(m)
	return Vector3{o.X / o.W, o.Y / o.W, o.Z / o.W}
}
