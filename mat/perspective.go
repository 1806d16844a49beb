package mat

// Projections map view space z in [-near, -far] to depth [0, 1].

func checkDepthRange(near, far float32) {
	if near < 0 {
		panic("mat: near plane distance must be >= 0")
	}
	if far < 0 {
		panic("mat: far plane distance must be >= 0")
	}
	if near >= far {
		panic("mat: near plane distance must be less than far plane distance")
	}
}

// Perspective takes the view volume size at the near plane.
// It panics on an invalid depth range.
func Perspective(width, height, near, far float32) Matrix {
	checkDepthRange(near, far)
	return Matrix{
		2 * near / width, 0, 0, 0,
		0, 2 * near / height, 0, 0,
		0, 0, far / (near - far), -1,
		0, 0, near * far / (near - far), 0,
	}
}

// PerspectiveFieldOfView takes the vertical field of view in radians.
// It panics unless 0 < fov < Pi and the depth range is valid.
func PerspectiveFieldOfView(fov, aspect, near, far float32) Matrix {
	if fov <= 0 || fov >= Pi {
		panic("mat: field of view must be in (0, Pi)")
	}
	checkDepthRange(near, far)
	yScale := 1 / tan(fov/2)
	xScale := yScale / aspect
	return Matrix{
		xScale, 0, 0, 0,
		0, yScale, 0, 0,
		0, 0, far / (near - far), -1,
		0, 0, near * far / (near - far), 0,
	}
}

// PerspectiveOffCenter panics on an invalid depth range.
func PerspectiveOffCenter(left, right, bottom, top, near, far float32) Matrix {
	checkDepthRange(near, far)
	return Matrix{
		2 * near / (right - left), 0, 0, 0,
		0, 2 * near / (top - bottom), 0, 0,
		(left + right) / (right - left), (top + bottom) / (top - bottom), far / (near - far), -1,
		0, 0, near * far / (near - far), 0,
	}
}
