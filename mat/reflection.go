package mat

// Reflection mirrors points across plane. The plane is normalized first.
func Reflection(plane Plane) Matrix {
	p := plane.Normalize()
	a, b, c := p.Normal.X, p.Normal.Y, p.Normal.Z
	fa, fb, fc := -2*a, -2*b, -2*c
	return Matrix{
		fa*a + 1, fb * a, fc * a, 0,
		fa * b, fb*b + 1, fc * b, 0,
		fa * c, fb * c, fc*c + 1, 0,
		fa * p.D, fb * p.D, fc * p.D, 1,
	}
}

// Shadow flattens geometry onto plane along rays from light. light.W = 0 makes
// light.XYZ a direction, light.W = 1 a point light position. Results are
// homogeneous: divide by W after transforming.
func Shadow(light Vector4, plane Plane) Matrix {
	p := plane.Normalize()
	pv := p.Vector4()
	d := -pv.Dot(light)
	a, b, c, dd := pv.X, pv.Y, pv.Z, pv.W
	return Matrix{
		a*light.X + d, a * light.Y, a * light.Z, a * light.W,
		b * light.X, b*light.Y + d, b * light.Z, b * light.W,
		c * light.X, c * light.Y, c*light.Z + d, c * light.W,
		dd * light.X, dd * light.Y, dd * light.Z, dd*light.W + d,
	}
}
