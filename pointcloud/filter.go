package pointcloud

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/seqsense/glfx/mat"
	pcmat "github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"
	"github.com/seqsense/pcgol/pc/filter/voxelgrid"
	"github.com/seqsense/pcgol/pc/registration/icp"
	"github.com/seqsense/pcgol/pc/storage/kdtree"
)

var ErrTooFewPoints = errors.New("too few points")

// Downsample keeps one point per voxel of the given edge length.
func Downsample(pp *pc.PointCloud, resolution float32) (*pc.PointCloud, error) {
	if resolution <= 0 {
		return nil, fmt.Errorf("pointcloud: invalid voxel resolution %f", resolution)
	}
	vg := voxelgrid.New(pcmat.Vec3{resolution, resolution, resolution})
	out, err := vg.Filter(pp)
	if err != nil {
		return nil, fmt.Errorf("pointcloud: %w", err)
	}
	return out, nil
}

type AlignOptions struct {
	// MatchRange is the maximum distance of corresponding points.
	MatchRange   float32
	MaxPoints    int
	MaxIteration int
}

func (o *AlignOptions) withDefaults() AlignOptions {
	out := AlignOptions{
		MatchRange:   0.5,
		MaxPoints:    20000,
		MaxIteration: 50,
	}
	if o == nil {
		return out
	}
	if o.MatchRange > 0 {
		out.MatchRange = o.MatchRange
	}
	if o.MaxPoints > 0 {
		out.MaxPoints = o.MaxPoints
	}
	if o.MaxIteration > 0 {
		out.MaxIteration = o.MaxIteration
	}
	return out
}

const (
	gradientWeight    = 0.25
	gradientPosThresh = 0.001
	gradientRotThresh = 0.002
	minPairs          = 32
)

// Align estimates the rigid transform moving target onto base by point to
// point ICP. The result, applied to target with TransformPoint, overlaps base.
func Align(base, target pc.Vec3RandomAccessor, opts *AlignOptions) (mat.Matrix, error) {
	o := opts.withDefaults()
	if base.Len() < minPairs || target.Len() < minPairs {
		return mat.Matrix{}, ErrTooFewPoints
	}
	box, err := Bounds(base)
	if err != nil {
		return mat.Matrix{}, err
	}
	center := box.Center()

	sample := func(ra pc.Vec3RandomAccessor) pc.Vec3Slice {
		ratio := float32(o.MaxPoints) / float32(ra.Len())
		out := make(pc.Vec3Slice, 0, o.MaxPoints)
		for i := 0; i < ra.Len() && len(out) < o.MaxPoints; i++ {
			if ratio < 1 && rand.Float32() > ratio {
				continue
			}
			out = append(out, mat.FromVec3(ra.Vec3At(i)).Sub(center).Vec3())
		}
		return out
	}
	kdt := kdtree.New(sample(base))

	ppicp := &icp.PointToPointICPGradient{
		Evaluator: &icp.PointToPointEvaluator{
			Corresponder: &icp.NearestPointCorresponder{MaxDist: o.MatchRange},
			MinPairs:     minPairs,
			WeightFn: func(distSq float32) float32 {
				a := (1 - distSq/(o.MatchRange*o.MatchRange))
				return a * a
			},
		},
		UpdaterFactory: &icp.GradientDescentUpdaterFactory{
			Weight: pcmat.Vec6{
				gradientWeight, gradientWeight, gradientWeight,
				gradientWeight, gradientWeight, gradientWeight,
			},
			Threshold: pcmat.Vec6{
				gradientPosThresh, gradientPosThresh, gradientPosThresh,
				gradientRotThresh, gradientRotThresh, gradientRotThresh,
			},
			MaxIteration: o.MaxIteration,
		},
	}
	trans, stat, err := ppicp.Fit(kdt, sample(target))
	if err != nil {
		return mat.Matrix{}, fmt.Errorf("pointcloud: registration failed: %w, stat: %v", err, stat)
	}

	// Fit works around the base center.
	return mat.TranslateV(center.Neg()).
		Mul(mat.FromMat4(trans)).
		Mul(mat.TranslateV(center)), nil
}
