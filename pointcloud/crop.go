package pointcloud

import (
	"fmt"

	"github.com/seqsense/glfx/mat"
	"github.com/seqsense/pcgol/pc"
)

// Matrix maps the box onto the unit cube [0, 1]^3.
// The box must have a non-zero size on every axis.
func (b Box) Matrix() mat.Matrix {
	s := b.Size()
	return mat.TranslateV(b.Min.Neg()).Mul(mat.Scale(1/s.X, 1/s.Y, 1/s.Z))
}

func inUnitCube(p mat.Vector3) bool {
	return 0 <= p.X && p.X <= 1 &&
		0 <= p.Y && p.Y <= 1 &&
		0 <= p.Z && p.Z <= 1
}

// Crop keeps the points whose coordinates multiplied by m lie in the unit
// cube, or the points outside of it if inside is false.
func Crop(pp *pc.PointCloud, m mat.Matrix, inside bool) (*pc.PointCloud, error) {
	it, err := pp.Vec3Iterator()
	if err != nil {
		return nil, fmt.Errorf("pointcloud: %w", err)
	}
	return filterPoints(pp, func(i int) bool {
		return inUnitCube(mat.FromVec3(it.Vec3At(i)).TransformPoint(m)) == inside
	}), nil
}

// filterPoints copies the accepted points, batching consecutive runs.
func filterPoints(pp *pc.PointCloud, keep func(int) bool) *pc.PointCloud {
	out := &pc.PointCloud{
		PointCloudHeader: pp.PointCloudHeader.Clone(),
		Data:             make([]byte, len(pp.Data)),
		Points:           pp.Points,
	}
	n, start := 0, -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		pc.Copy(out, n, pp, start, end-start)
		n += end - start
		start = -1
	}
	for i := 0; i < pp.Points; i++ {
		if keep(i) {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
	}
	flush(pp.Points)

	out.Points = n
	out.Width = n
	out.Height = 1
	out.Data = out.Data[: n*out.Stride() : n*out.Stride()]
	return out
}
