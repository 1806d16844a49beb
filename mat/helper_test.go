package mat

import (
	"testing"
)

func near(a, b, tol float32) bool {
	d := a - b
	return -tol <= d && d <= tol
}

func assertMatrixNear(t *testing.T, expected, got Matrix, tol float32) {
	t.Helper()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			a := 4*i + j
			if !near(expected[a], got[a], tol) {
				t.Errorf("m(%d, %d) expected to be %f, got %f", i+1, j+1, expected[a], got[a])
			}
		}
	}
}

func assertVector3Near(t *testing.T, expected, got Vector3, tol float32) {
	t.Helper()
	if !near(expected.X, got.X, tol) || !near(expected.Y, got.Y, tol) || !near(expected.Z, got.Z, tol) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func assertPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Error("Expected panic")
		}
	}()
	fn()
}

var testMatrices = map[string]Matrix{
	"Affine": Scale(1.1, 1.2, 1.3).
		Mul(RotateX(0.1)).
		Mul(RotateY(0.2)).
		Mul(RotateZ(0.3)).
		Mul(Translate(0.1, 0.2, 0.3)),
	"Projection": PerspectiveFieldOfView(PiOver4, 1.5, 0.1, 100),
	"View":       LookAt(Vector3{1, 2, 3}, Vector3{-1, 0, 0.5}, Vector3{0, 0, 1}),
	"General": {
		4, 2, 0, 1,
		1, 3, 2, 0,
		0, 1, 5, 2,
		2, 0, 1, 6,
	},
}
