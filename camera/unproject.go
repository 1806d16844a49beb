package camera

import (
	"github.com/seqsense/glfx/mat"
)

// Unproject returns the world space points at depth 0 and 1 under the screen
// position (x, y), measured in pixels from the top left corner.
func Unproject(viewProj mat.Matrix, x, y, width, height float64) (near, far mat.Vector3) {
	inv := mat.Invert(viewProj)
	nx := float32(2*x/width - 1)
	ny := float32(1 - 2*y/height)
	near = mat.NewVector3(nx, ny, 0).TransformCoord(inv)
	far = mat.NewVector3(nx, ny, 1).TransformCoord(inv)
	return near, far
}
