// Package camera provides an orbiting view controller producing view and
// projection matrices.
package camera

import (
	"math"

	"github.com/seqsense/glfx/mat"
)

const (
	defaultDistance = 100.0
	defaultPitch    = math.Pi / 4
	defaultFOV      = math.Pi / 4
	defaultNear     = 0.1
	defaultFar      = 2000.0
	maxDistance     = 1000.0
	yDeadband       = 20
)

type ProjectionType int

const (
	ProjectionPerspective ProjectionType = iota
	ProjectionOrthographic
)

// Button follows the DOM MouseEvent.button numbering.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

type DragEvent struct {
	X, Y   float64
	Button Button
}

// Orbit looks at the target (X, Y, 0) from Distance away.
// Pitch 0 looks straight down the Z axis, Pi/2 is horizontal.
type Orbit struct {
	FOV        float64
	Near, Far  float64
	Projection ProjectionType

	X, Y, Yaw, Pitch float64
	Distance         float64

	x0, y0, yaw0, pitch0 float64
	drag0                *DragEvent
}

func NewOrbit() *Orbit {
	return &Orbit{
		FOV:      defaultFOV,
		Near:     defaultNear,
		Far:      defaultFar,
		Distance: defaultDistance,
		Pitch:    defaultPitch,
	}
}

func (o *Orbit) Reset() {
	o.Distance = defaultDistance
	o.Pitch = defaultPitch
}

// FPS moves the eye onto the target looking horizontally.
func (o *Orbit) FPS() {
	o.Distance = 0
	o.Pitch = math.Pi / 2
}

func (o *Orbit) SnapYaw() {
	o.Yaw = math.Round(o.Yaw/(math.Pi/2)) * (math.Pi / 2)
}

func (o *Orbit) SnapPitch() {
	o.Pitch = math.Round(o.Pitch/(math.Pi/2)) * (math.Pi / 2)
}

// Zoom changes the distance proportionally to the current distance.
func (o *Orbit) Zoom(delta float64) {
	o.Distance += delta * (o.Distance*0.05 + 0.1)
	if o.Distance < 0 {
		o.Distance = 0
	} else if o.Distance > maxDistance {
		o.Distance = maxDistance
	}
}

// Move translates the target in the yawed frame and turns by dyaw.
func (o *Orbit) Move(dx, dy, dyaw float64) {
	s, c := math.Sincos(o.Yaw)
	o.X += c*dy + s*dx
	o.Y += s*dy - c*dx
	o.Yaw += dyaw
	o.Yaw = math.Remainder(o.Yaw, 2*math.Pi)
}

func (o *Orbit) DragStart(e DragEvent) {
	o.drag0 = &e
	o.yaw0 = o.Yaw
	o.pitch0 = o.Pitch
	o.x0 = o.X
	o.y0 = o.Y
}

func (o *Orbit) DragEnd(e DragEvent) {
	if o.drag0 == nil {
		return
	}
	o.Drag(e)
	o.drag0 = nil
}

func (o *Orbit) Dragging() bool {
	return o.drag0 != nil
}

func (o *Orbit) Drag(e DragEvent) {
	if o.drag0 == nil {
		return
	}
	xDiff := e.X - o.drag0.X
	yDiff := e.Y - o.drag0.Y
	switch o.drag0.Button {
	case ButtonLeft:
		o.Yaw = o.yaw0 - 0.02*xDiff
		if yDiff < -yDeadband {
			yDiff += yDeadband
		} else if yDiff > yDeadband {
			yDiff -= yDeadband
		} else {
			yDiff = 0
		}
		o.Pitch = o.pitch0 - 0.02*yDiff
		if o.Pitch < 0 {
			o.Pitch = 0
		} else if o.Pitch > math.Pi {
			o.Pitch = math.Pi
		}
	case ButtonMiddle, ButtonRight:
		s, c := math.Sincos(o.Yaw)
		o.X = o.x0 + 0.1*(xDiff*c+yDiff*s)
		o.Y = o.y0 + 0.1*(xDiff*s-yDiff*c)
	}
}

func (o *Orbit) View() mat.Matrix {
	return mat.Translate(float32(-o.X), float32(-o.Y), 0).
		Mul(mat.RotateZ(float32(-o.Yaw))).
		Mul(mat.RotateX(float32(-o.Pitch))).
		Mul(mat.Translate(0, 0, float32(-o.Distance)))
}

func (o *Orbit) Eye() mat.Vector3 {
	return mat.Invert(o.View()).Translation()
}

// ProjectionMatrix builds the projection for a viewport of the given size.
// The orthographic volume matches the perspective frustum at the target.
// It panics on a non-positive viewport or an invalid depth range.
func (o *Orbit) ProjectionMatrix(width, height float64) mat.Matrix {
	if width <= 0 || height <= 0 {
		panic("camera: viewport size must be positive")
	}
	aspect := width / height
	switch o.Projection {
	case ProjectionOrthographic:
		d := o.Distance
		if d < o.Near {
			d = o.Near
		}
		h := 2 * d * math.Tan(o.FOV/2)
		return mat.Orthographic(float32(h*aspect), float32(h), float32(-o.Far), float32(o.Far))
	default:
		return mat.PerspectiveFieldOfView(float32(o.FOV), float32(aspect), float32(o.Near), float32(o.Far))
	}
}
