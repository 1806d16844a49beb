package camera

import (
	"testing"

	"github.com/seqsense/glfx/mat"
)

func TestUnproject(t *testing.T) {
	t.Run("Identity", func(t *testing.T) {
		near, far := Unproject(mat.Identity(), 0, 0, 200, 100)
		assertVector3Near(t, mat.Vector3{X: -1, Y: 1, Z: 0}, near, 1e-6)
		assertVector3Near(t, mat.Vector3{X: -1, Y: 1, Z: 1}, far, 1e-6)
	})
	t.Run("TopDown", func(t *testing.T) {
		o := NewOrbit()
		o.X, o.Y, o.Pitch, o.Distance = 5, -7, 0, 10
		o.Near, o.Far = 0.1, 100
		viewProj := o.View().Mul(o.ProjectionMatrix(640, 480))

		near, far := Unproject(viewProj, 320, 240, 640, 480)
		assertVector3Near(t, mat.Vector3{X: 5, Y: -7, Z: 9.9}, near, 1e-2)
		assertVector3Near(t, mat.Vector3{X: 5, Y: -7, Z: -90}, far, 1e-1)
	})
	t.Run("RoundTrip", func(t *testing.T) {
		o := NewOrbit()
		viewProj := o.View().Mul(o.ProjectionMatrix(640, 480))
		p := mat.Vector3{X: 3, Y: 4, Z: 1}
		s := p.TransformCoord(viewProj)
		x := (float64(s.X) + 1) / 2 * 640
		y := (1 - float64(s.Y)) / 2 * 480

		near, far := Unproject(viewProj, x, y, 640, 480)
		dir := far.Sub(near).Normalize()
		v := p.Sub(near)
		d := v.Dot(dir)
		if distSq := v.LengthSquared() - d*d; distSq > 1e-1 {
			t.Errorf("Ray must pass through %v, squared distance %f", p, distSq)
		}
	})
}
