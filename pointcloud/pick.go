package pointcloud

import (
	"github.com/seqsense/glfx/mat"
	"github.com/seqsense/pcgol/pc"
)

// Pick returns the index of the point nearest to the ray from near through
// far, among the points within maxDist of the ray and in front of near.
// Points closer to near are preferred when several lie on the ray.
func Pick(ra pc.Vec3RandomAccessor, near, far mat.Vector3, maxDist float32) (int, bool) {
	dir := far.Sub(near)
	if dir.LengthSquared() == 0 {
		return 0, false
	}
	dir = dir.Normalize()
	maxDistSq := maxDist * maxDist

	selected := -1
	var best float32
	n := ra.Len()
	for i := 0; i < n; i++ {
		p := mat.FromVec3(ra.Vec3At(i)).Sub(near)
		d := p.Dot(dir)
		if d < 0 {
			continue
		}
		distSq := p.LengthSquared() - d*d
		if distSq > maxDistSq {
			continue
		}
		score := distSq + d*d/10000
		if selected < 0 || score < best {
			selected, best = i, score
		}
	}
	if selected < 0 {
		return 0, false
	}
	return selected, true
}
