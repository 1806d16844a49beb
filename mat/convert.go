package mat

import (
	"github.com/go-gl/mathgl/mgl32"
	pcmat "github.com/seqsense/pcgol/mat"
)

// pcgol and mgl32 both store column vectors column-major, which is the same
// flat array as row vectors stored row-major. Conversions are plain copies;
// only the meaning of multiplication order flips: A.Mul(B) == B.Mul4(A).

func FromMat4(m pcmat.Mat4) Matrix {
	return Matrix(m)
}

func (m Matrix) Mat4() pcmat.Mat4 {
	return pcmat.Mat4(m)
}

func FromVec3(v pcmat.Vec3) Vector3 {
	return Vector3{v[0], v[1], v[2]}
}

func (v Vector3) Vec3() pcmat.Vec3 {
	return pcmat.Vec3{v.X, v.Y, v.Z}
}

func FromMGL(m mgl32.Mat4) Matrix {
	return Matrix(m)
}

func (m Matrix) MGL() mgl32.Mat4 {
	return mgl32.Mat4(m)
}

func FromMGLVec3(v mgl32.Vec3) Vector3 {
	return Vector3{v[0], v[1], v[2]}
}

func (v Vector3) MGL() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

func FromMGLQuat(q mgl32.Quat) Quaternion {
	return Quaternion{q.V[0], q.V[1], q.V[2], q.W}
}

func (q Quaternion) MGL() mgl32.Quat {
	return mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}
}
