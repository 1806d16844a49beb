// Package content reads scene node and camera descriptions, a subset of
// glTF 2.0, and resolves them into transform matrices.
//
// Matrices are listed in storage order. glTF stores column vectors
// column-major, which is the same sequence of numbers.
package content

import (
	"errors"

	"github.com/seqsense/glfx/mat"
)

var (
	ErrUnknownFormat = errors.New("unknown content format")
	ErrNodeIndex     = errors.New("node index out of range")
	ErrSceneIndex    = errors.New("scene index out of range")
	ErrNodeHierarchy = errors.New("nodes do not form a forest")
	ErrNodeTransform = errors.New("invalid node transform")
	ErrCamera        = errors.New("invalid camera")
)

type Document struct {
	Nodes   []Node   `json:"nodes,omitempty" yaml:"nodes,omitempty"`
	Cameras []Camera `json:"cameras,omitempty" yaml:"cameras,omitempty"`
	Scenes  []Scene  `json:"scenes,omitempty" yaml:"scenes,omitempty"`
	// Scene is the default scene index.
	Scene *int `json:"scene,omitempty" yaml:"scene,omitempty"`
}

type Scene struct {
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Nodes []int  `json:"nodes,omitempty" yaml:"nodes,omitempty"`
}

type Node struct {
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Children []int  `json:"children,omitempty" yaml:"children,omitempty"`
	Camera   *int   `json:"camera,omitempty" yaml:"camera,omitempty"`

	Matrix      *mat.Matrix `json:"matrix,omitempty" yaml:"matrix,omitempty"`
	Translation []float32   `json:"translation,omitempty" yaml:"translation,omitempty"`
	// Rotation is a unit quaternion (x, y, z, w).
	Rotation []float32 `json:"rotation,omitempty" yaml:"rotation,omitempty"`
	Scale    []float32 `json:"scale,omitempty" yaml:"scale,omitempty"`
}

type Camera struct {
	Name         string        `json:"name,omitempty" yaml:"name,omitempty"`
	Type         string        `json:"type" yaml:"type"`
	Perspective  *Perspective  `json:"perspective,omitempty" yaml:"perspective,omitempty"`
	Orthographic *Orthographic `json:"orthographic,omitempty" yaml:"orthographic,omitempty"`
}

const (
	CameraPerspective  = "perspective"
	CameraOrthographic = "orthographic"
)

type Perspective struct {
	AspectRatio *float32 `json:"aspectRatio,omitempty" yaml:"aspectRatio,omitempty"`
	YFov        float32  `json:"yfov" yaml:"yfov"`
	ZNear       float32  `json:"znear" yaml:"znear"`
	// ZFar nil means an infinite projection, which is not supported.
	ZFar *float32 `json:"zfar,omitempty" yaml:"zfar,omitempty"`
}

// Orthographic magnifications are half the view volume size.
type Orthographic struct {
	XMag  float32 `json:"xmag" yaml:"xmag"`
	YMag  float32 `json:"ymag" yaml:"ymag"`
	ZNear float32 `json:"znear" yaml:"znear"`
	ZFar  float32 `json:"zfar" yaml:"zfar"`
}
