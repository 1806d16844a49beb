package main

import (
	"image/color"

	"github.com/seqsense/glfx/camera"
	"github.com/seqsense/glfx/content"
	"github.com/seqsense/glfx/mat"
	"github.com/seqsense/glfx/pointcloud"
	"github.com/seqsense/pcgol/pc"
)

var (
	colorGrid = color.RGBA{0x40, 0x40, 0x40, 0xFF}
	colorX    = color.RGBA{0xFF, 0x40, 0x40, 0xFF}
	colorY    = color.RGBA{0x40, 0xFF, 0x40, 0xFF}
	colorZ    = color.RGBA{0x40, 0x80, 0xFF, 0xFF}
	colorLink = color.RGBA{0xA0, 0xA0, 0xA0, 0xFF}
	colorPt   = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
)

type segment struct {
	a, b mat.Vector3
	c    color.RGBA
}

type scene struct {
	segments []segment
	points   pc.Vec3Slice
}

func (s *scene) addGrid(size, step float32) {
	for v := -size; v <= size; v += step {
		s.segments = append(s.segments,
			segment{mat.Vector3{X: v, Y: -size}, mat.Vector3{X: v, Y: size}, colorGrid},
			segment{mat.Vector3{X: -size, Y: v}, mat.Vector3{X: size, Y: v}, colorGrid},
		)
	}
}

// addAxes draws the basis of m as unit length axes.
func (s *scene) addAxes(m mat.Matrix, length float32) {
	o := m.Translation()
	for _, a := range []struct {
		v mat.Vector3
		c color.RGBA
	}{
		{mat.Vector3{X: length}, colorX},
		{mat.Vector3{Y: length}, colorY},
		{mat.Vector3{Z: length}, colorZ},
	} {
		s.segments = append(s.segments, segment{o, a.v.TransformPoint(m), a.c})
	}
}

func (s *scene) addDocument(doc *content.Document, axisLength float32) error {
	world, err := doc.WorldTransforms()
	if err != nil {
		return err
	}
	for i, n := range doc.Nodes {
		s.addAxes(world[i], axisLength)
		for _, c := range n.Children {
			s.segments = append(s.segments, segment{
				world[i].Translation(), world[c].Translation(), colorLink,
			})
		}
	}
	return nil
}

func (s *scene) addPoints(ra pc.Vec3RandomAccessor) {
	for i := 0; i < ra.Len(); i++ {
		s.points = append(s.points, ra.Vec3At(i))
	}
}

// pick returns the point under the screen position (x, y).
func (s *scene) pick(viewProj mat.Matrix, x, y, width, height float64, maxDist float32) (mat.Vector3, bool) {
	near, far := camera.Unproject(viewProj, x, y, width, height)
	i, ok := pointcloud.Pick(s.points, near, far, maxDist)
	if !ok {
		return mat.Vector3{}, false
	}
	return mat.FromVec3(s.points[i]), true
}

// toScreen maps p by the view projection into pixel coordinates.
// ok is false when p is behind the eye or outside the depth range.
func toScreen(p mat.Vector3, viewProj mat.Matrix, width, height float32) (x, y float32, ok bool) {
	c := mat.Vector4{X: p.X, Y: p.Y, Z: p.Z, W: 1}.Transform(viewProj)
	if c.W <= 0 {
		return 0, 0, false
	}
	nx, ny, nz := c.X/c.W, c.Y/c.W, c.Z/c.W
	if nz < 0 || nz > 1 {
		return 0, 0, false
	}
	return (nx + 1) * width / 2, (1 - ny) * height / 2, true
}
