package mat

func Orthographic(width, height, near, far float32) Matrix {
	return Matrix{
		2 / width, 0, 0, 0,
		0, 2 / height, 0, 0,
		0, 0, 1 / (near - far), 0,
		0, 0, near / (near - far), 1,
	}
}

func OrthographicOffCenter(left, right, bottom, top, near, far float32) Matrix {
	return Matrix{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, 1 / (near - far), 0,
		(left + right) / (left - right), (top + bottom) / (bottom - top), near / (near - far), 1,
	}
}
