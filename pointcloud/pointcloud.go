// Package pointcloud applies transform matrices to PCD point clouds.
package pointcloud

import (
	"errors"
	"fmt"

	"github.com/seqsense/glfx/mat"
	pcmat "github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"
)

var ErrEmpty = errors.New("empty point cloud")

// TransformedAccessor transforms points of the wrapped accessor on read.
type TransformedAccessor struct {
	pc.Vec3RandomAccessor
	Matrix mat.Matrix
}

func (a *TransformedAccessor) Vec3At(i int) pcmat.Vec3 {
	return mat.FromVec3(a.Vec3RandomAccessor.Vec3At(i)).TransformPoint(a.Matrix).Vec3()
}

// Transform returns a copy of pp with x, y and z of each point multiplied by m.
// Other fields are copied unchanged.
func Transform(pp *pc.PointCloud, m mat.Matrix) (*pc.PointCloud, error) {
	out := &pc.PointCloud{
		PointCloudHeader: pp.PointCloudHeader.Clone(),
		Points:           pp.Points,
		Data:             append([]byte(nil), pp.Data...),
	}
	it, err := out.Vec3Iterator()
	if err != nil {
		return nil, fmt.Errorf("pointcloud: %w", err)
	}
	for ; it.IsValid(); it.Incr() {
		it.SetVec3(mat.FromVec3(it.Vec3()).TransformPoint(m).Vec3())
	}
	return out, nil
}

// Box is an axis aligned bounding box.
type Box struct {
	Min, Max mat.Vector3
}

func Bounds(ra pc.Vec3RandomAccessor) (Box, error) {
	if ra.Len() == 0 {
		return Box{}, ErrEmpty
	}
	min, max, err := pc.MinMaxVec3(ra)
	if err != nil {
		return Box{}, fmt.Errorf("pointcloud: %w", err)
	}
	return Box{Min: mat.FromVec3(min), Max: mat.FromVec3(max)}, nil
}

// TransformedBounds returns the bounds of the cloud after applying m.
func TransformedBounds(pp *pc.PointCloud, m mat.Matrix) (Box, error) {
	it, err := pp.Vec3Iterator()
	if err != nil {
		return Box{}, fmt.Errorf("pointcloud: %w", err)
	}
	return Bounds(&TransformedAccessor{Vec3RandomAccessor: it, Matrix: m})
}

func float32Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func float32Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Intersection may return an invalid box if a and b don't overlap.
func (b Box) Intersection(a Box) Box {
	return Box{
		Min: mat.Vector3{
			X: float32Max(a.Min.X, b.Min.X),
			Y: float32Max(a.Min.Y, b.Min.Y),
			Z: float32Max(a.Min.Z, b.Min.Z),
		},
		Max: mat.Vector3{
			X: float32Min(a.Max.X, b.Max.X),
			Y: float32Min(a.Max.Y, b.Max.Y),
			Z: float32Min(a.Max.Z, b.Max.Z),
		},
	}
}

func (b Box) IsValid() bool {
	return !(b.Min.X > b.Max.X ||
		b.Min.Y > b.Max.Y ||
		b.Min.Z > b.Max.Z)
}

func (b Box) Contains(v mat.Vector3) bool {
	return !(v.X < b.Min.X ||
		v.Y < b.Min.Y ||
		v.Z < b.Min.Z ||
		b.Max.X < v.X ||
		b.Max.Y < v.Y ||
		b.Max.Z < v.Z)
}

func (b Box) Center() mat.Vector3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b Box) Size() mat.Vector3 {
	return b.Max.Sub(b.Min)
}
