package mat

// Plane holds the points p satisfying Normal.Dot(p) + D = 0.
type Plane struct {
	Normal Vector3
	D      float32
}

func NewPlane(a, b, c, d float32) Plane {
	return Plane{Normal: Vector3{a, b, c}, D: d}
}

// PlaneFromVertices builds the plane through a, b and c, facing the side
// from which they appear counter-clockwise.
func PlaneFromVertices(a, b, c Vector3) Plane {
	n := b.Sub(a).Cross(c.Sub(a)).Normalize()
	return Plane{Normal: n, D: -n.Dot(a)}
}

func (p Plane) Normalize() Plane {
	l := 1 / p.Normal.Length()
	return Plane{Normal: p.Normal.Mul(l), D: p.D * l}
}

func (p Plane) Vector4() Vector4 {
	return Vector4{p.Normal.X, p.Normal.Y, p.Normal.Z, p.D}
}

// DotCoordinate is the signed distance of v when p is normalized.
func (p Plane) DotCoordinate(v Vector3) float32 {
	return p.Normal.Dot(v) + p.D
}

func (p Plane) DotNormal(v Vector3) float32 {
	return p.Normal.Dot(v)
}
