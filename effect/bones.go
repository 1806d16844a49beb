package effect

import (
	"errors"
	"fmt"

	"github.com/seqsense/glfx/mat"
)

// MaxBones is the size of the bone uniform array in the skinned shader.
const MaxBones = 60

// WeightsPerVertex is the number of bone influences per skinned vertex.
const WeightsPerVertex = 4

var (
	ErrTooManyBones = errors.New("too many bone transforms")
	ErrBoneIndex    = errors.New("bone index out of range")
)

type Bones struct {
	transforms []mat.Matrix
}

// SetBoneTransforms copies ms. Bones beyond len(ms) keep identity.
func (b *Bones) SetBoneTransforms(ms []mat.Matrix) error {
	if len(ms) > MaxBones {
		return fmt.Errorf("%w: %d > %d", ErrTooManyBones, len(ms), MaxBones)
	}
	b.transforms = append(b.transforms[:0], ms...)
	return nil
}

func (b *Bones) BoneTransforms() []mat.Matrix {
	return append([]mat.Matrix(nil), b.transforms...)
}

func (b *Bones) Len() int {
	return len(b.transforms)
}

// Float32s flattens all MaxBones matrices row-major, padding with identity.
func (b *Bones) Float32s() []float32 {
	out := make([]float32, 0, 16*MaxBones)
	for i := 0; i < MaxBones; i++ {
		m := b.bone(i)
		out = append(out, m[:]...)
	}
	return out
}

func (b *Bones) bone(i int) mat.Matrix {
	if i < len(b.transforms) {
		return b.transforms[i]
	}
	return mat.Identity()
}

// Skin blends p by the weighted bone transforms the same way the skinned
// vertex shader does.
func (b *Bones) Skin(p mat.Vector3, indices [WeightsPerVertex]int, weights [WeightsPerVertex]float32) (mat.Vector3, error) {
	var skin mat.Matrix
	for i, idx := range indices {
		if weights[i] == 0 {
			continue
		}
		if idx < 0 || idx >= MaxBones {
			return mat.Vector3{}, fmt.Errorf("%w: %d", ErrBoneIndex, idx)
		}
		skin = skin.Add(b.bone(idx).MulScalar(weights[i]))
	}
	return p.TransformPoint(skin), nil
}
