package effect

import (
	"math"
	"testing"

	"github.com/seqsense/glfx/mat"
)

func TestNewMatrices(t *testing.T) {
	m := NewMatrices()
	for name, got := range map[string]mat.Matrix{
		"World":                 m.World(),
		"View":                  m.View(),
		"Projection":            m.Projection(),
		"WorldView":             m.WorldView(),
		"ViewProjection":        m.ViewProjection(),
		"WorldViewProjection":   m.WorldViewProjection(),
		"WorldInverseTranspose": m.WorldInverseTranspose(),
	} {
		if !got.IsIdentity() {
			t.Errorf("%s expected to be identity, got %v", name, got)
		}
	}
	if e := m.EyePosition(); e != (mat.Vector3{}) {
		t.Errorf("EyePosition expected to be origin, got %v", e)
	}
}

func TestMatricesDerived(t *testing.T) {
	world := mat.Scale(1, 2, 3).Mul(mat.RotateY(0.4)).Mul(mat.Translate(5, 0, -2))
	eye := mat.Vector3{X: 0, Y: 3, Z: 10}
	view := mat.LookAt(eye, mat.Vector3{}, mat.Vector3{X: 0, Y: 1, Z: 0})
	proj := mat.PerspectiveFieldOfView(mat.PiOver4, 1.5, 0.1, 100)

	m := NewMatrices()
	m.SetWorld(world)
	m.SetView(view)
	m.SetProjection(proj)

	testCases := map[string]struct {
		got, expected mat.Matrix
	}{
		"WorldView":             {m.WorldView(), world.Mul(view)},
		"ViewProjection":        {m.ViewProjection(), view.Mul(proj)},
		"WorldViewProjection":   {m.WorldViewProjection(), world.Mul(view).Mul(proj)},
		"WorldInverseTranspose": {m.WorldInverseTranspose(), mat.Transpose(mat.Invert(world))},
	}
	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			if !tt.got.Equal(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}

	e := m.EyePosition()
	if d := e.Sub(eye).Length(); d > 1e-4 {
		t.Errorf("EyePosition expected to be %v, got %v", eye, e)
	}
}

func TestMatricesInvalidation(t *testing.T) {
	m := NewMatrices()
	_ = m.WorldViewProjection()
	_ = m.WorldInverseTranspose()
	_ = m.EyePosition()

	m.SetWorld(mat.Translate(1, 2, 3))
	if r := m.WorldViewProjection(); r != mat.Translate(1, 2, 3) {
		t.Errorf("SetWorld must invalidate WorldViewProjection, got %v", r)
	}
	if r := m.WorldInverseTranspose(); !r.Equal(mat.Transpose(mat.Translate(-1, -2, -3))) {
		t.Errorf("SetWorld must invalidate WorldInverseTranspose, got %v", r)
	}

	m.SetView(mat.Translate(0, 0, -5))
	if e := m.EyePosition(); e != (mat.Vector3{X: 0, Y: 0, Z: 5}) {
		t.Errorf("SetView must invalidate EyePosition, got %v", e)
	}

	m.SetProjection(mat.Scale(2, 2, 2))
	expected := mat.Translate(1, 2, 3).Mul(mat.Translate(0, 0, -5)).Mul(mat.Scale(2, 2, 2))
	if r := m.WorldViewProjection(); !r.Equal(expected) {
		t.Errorf("SetProjection must invalidate WorldViewProjection, got %v", r)
	}
}

func TestMatricesSingularWorld(t *testing.T) {
	m := NewMatrices()
	m.SetWorld(mat.Scale(0, 1, 1))
	nan := false
	for _, v := range m.WorldInverseTranspose() {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			nan = true
		}
	}
	if !nan {
		t.Error("Singular world matrix expected to propagate NaN/Inf")
	}
}
