// Package effect holds the transform parameters shared by shader effects and
// uploads them to WebGL programs.
package effect

import (
	"github.com/seqsense/glfx/mat"
)

type dirtyFlag int

const (
	dirtyWorldView dirtyFlag = 1 << iota
	dirtyViewProjection
	dirtyWorldViewProjection
	dirtyWorldInverseTranspose
	dirtyEyePosition

	dirtyAll = dirtyWorldView | dirtyViewProjection | dirtyWorldViewProjection |
		dirtyWorldInverseTranspose | dirtyEyePosition
)

// Matrices caches the products derived from world, view and projection.
// Derived values are recomputed lazily, so a Matrices must not be shared
// between goroutines without locking.
type Matrices struct {
	world, view, projection mat.Matrix

	worldView             mat.Matrix
	viewProjection        mat.Matrix
	worldViewProjection   mat.Matrix
	worldInverseTranspose mat.Matrix
	eyePosition           mat.Vector3

	dirty dirtyFlag
}

func NewMatrices() *Matrices {
	id := mat.Identity()
	return &Matrices{
		world:      id,
		view:       id,
		projection: id,
		dirty:      dirtyAll,
	}
}

func (m *Matrices) World() mat.Matrix {
	return m.world
}

func (m *Matrices) SetWorld(w mat.Matrix) {
	m.world = w
	m.dirty |= dirtyWorldView | dirtyWorldViewProjection | dirtyWorldInverseTranspose
}

func (m *Matrices) View() mat.Matrix {
	return m.view
}

func (m *Matrices) SetView(v mat.Matrix) {
	m.view = v
	m.dirty |= dirtyWorldView | dirtyViewProjection | dirtyWorldViewProjection | dirtyEyePosition
}

func (m *Matrices) Projection() mat.Matrix {
	return m.projection
}

func (m *Matrices) SetProjection(p mat.Matrix) {
	m.projection = p
	m.dirty |= dirtyViewProjection | dirtyWorldViewProjection
}

func (m *Matrices) WorldView() mat.Matrix {
	if m.dirty&dirtyWorldView != 0 {
		m.worldView = m.world.Mul(m.view)
		m.dirty &^= dirtyWorldView
	}
	return m.worldView
}

func (m *Matrices) ViewProjection() mat.Matrix {
	if m.dirty&dirtyViewProjection != 0 {
		m.viewProjection = m.view.Mul(m.projection)
		m.dirty &^= dirtyViewProjection
	}
	return m.viewProjection
}

func (m *Matrices) WorldViewProjection() mat.Matrix {
	if m.dirty&dirtyWorldViewProjection != 0 {
		m.worldViewProjection = m.WorldView().Mul(m.projection)
		m.dirty &^= dirtyWorldViewProjection
	}
	return m.worldViewProjection
}

// WorldInverseTranspose transforms normals. A singular world matrix yields
// NaN elements.
func (m *Matrices) WorldInverseTranspose() mat.Matrix {
	if m.dirty&dirtyWorldInverseTranspose != 0 {
		m.worldInverseTranspose = mat.Transpose(mat.Invert(m.world))
		m.dirty &^= dirtyWorldInverseTranspose
	}
	return m.worldInverseTranspose
}

// EyePosition is the camera position in world space.
func (m *Matrices) EyePosition() mat.Vector3 {
	if m.dirty&dirtyEyePosition != 0 {
		m.eyePosition = mat.Invert(m.view).Translation()
		m.dirty &^= dirtyEyePosition
	}
	return m.eyePosition
}
