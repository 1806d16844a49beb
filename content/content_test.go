package content

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/seqsense/glfx/mat"
)

func near(a, b, tol float32) bool {
	d := a - b
	return -tol <= d && d <= tol
}

func assertVector3Near(t *testing.T, expected, got mat.Vector3) {
	t.Helper()
	const tol = 1e-4
	if !near(expected.X, got.X, tol) || !near(expected.Y, got.Y, tol) || !near(expected.Z, got.Z, tol) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func intPtr(i int) *int { return &i }

func TestLoad(t *testing.T) {
	docs := map[string]*Document{}
	for _, path := range []string{"testdata/scene.gltf", "testdata/scene.yaml"} {
		doc, err := Load(path)
		if err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		docs[path] = doc
	}
	if !reflect.DeepEqual(docs["testdata/scene.gltf"], docs["testdata/scene.yaml"]) {
		t.Errorf("JSON and YAML documents differ:\n%+v\n%+v",
			docs["testdata/scene.gltf"], docs["testdata/scene.yaml"])
	}

	doc := docs["testdata/scene.gltf"]
	if len(doc.Nodes) != 4 || len(doc.Cameras) != 2 || *doc.Scene != 0 {
		t.Fatalf("Unexpected document %+v", doc)
	}
	if m := doc.Nodes[2].Matrix; m == nil || m.Translation() != (mat.Vector3{X: 0, Y: 0, Z: 3}) {
		t.Errorf("Matrix expected to be read in storage order, got %v", m)
	}

	if _, err := Load("testdata/scene.txt"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}
}

func TestDecodeErrors(t *testing.T) {
	testCases := map[string]struct {
		input  string
		format Format
		err    error
	}{
		"ShortMatrix": {
			input:  `{"nodes": [{"matrix": [1, 0, 0]}]}`,
			format: FormatJSON,
			err:    mat.ErrMatrixLength,
		},
		"ShortTranslation": {
			input:  `{"nodes": [{"translation": [1, 0]}]}`,
			format: FormatJSON,
			err:    ErrNodeTransform,
		},
		"LongRotationYAML": {
			input:  "nodes:\n  - rotation: [0, 0, 0, 1, 0]\n",
			format: FormatYAML,
			err:    ErrNodeTransform,
		},
		"ChildIndex": {
			input:  `{"nodes": [{"children": [1]}]}`,
			format: FormatJSON,
			err:    ErrNodeIndex,
		},
		"SceneNodeIndex": {
			input:  "nodes: [{}]\nscenes:\n  - nodes: [2]\n",
			format: FormatYAML,
			err:    ErrNodeIndex,
		},
		"DefaultScene": {
			input:  `{"nodes": [{}], "scenes": [{"nodes": [0]}], "scene": 1}`,
			format: FormatJSON,
			err:    ErrSceneIndex,
		},
		"CameraIndex": {
			input:  `{"nodes": [{"camera": 0}]}`,
			format: FormatJSON,
			err:    ErrCamera,
		},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input), tt.format)
			if !errors.Is(err, tt.err) {
				t.Errorf("Expected error %v, got %v", tt.err, err)
			}
		})
	}

	if _, err := Decode(strings.NewReader("nodes:\n  - matrix: [1, 2]\n"), FormatYAML); err == nil {
		t.Error("Expected error on short YAML matrix")
	}
}

func TestLocalTransform(t *testing.T) {
	s := float32(0.70710678)
	testCases := map[string]struct {
		node     Node
		input    mat.Vector3
		expected mat.Vector3
	}{
		"Empty": {
			node:     Node{},
			input:    mat.Vector3{X: 1, Y: 2, Z: 3},
			expected: mat.Vector3{X: 1, Y: 2, Z: 3},
		},
		"TRS": {
			node: Node{
				Translation: []float32{1, 2, 3},
				Rotation:    []float32{0, 0, s, s},
				Scale:       []float32{2, 2, 2},
			},
			input:    mat.Vector3{X: 1, Y: 0, Z: 0},
			expected: mat.Vector3{X: 1, Y: 4, Z: 3},
		},
		"MatrixWins": {
			node: func() Node {
				m := mat.Translate(5, 0, 0)
				return Node{Matrix: &m, Translation: []float32{1, 2, 3}}
			}(),
			input:    mat.Vector3{},
			expected: mat.Vector3{X: 5, Y: 0, Z: 0},
		},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			assertVector3Near(t, tt.expected, tt.input.TransformPoint(tt.node.LocalTransform()))
		})
	}
}

func TestTRS(t *testing.T) {
	var n Node
	q := mat.QuaternionFromAxisAngle(mat.Vector3{X: 1, Y: 1, Z: 0}.Normalize(), 0.7)
	n.SetTRS(mat.Vector3{X: 1, Y: 2, Z: 3}, q, mat.Vector3{X: -4, Y: 5, Z: 6})

	scale, rotation, translation, ok := n.TRS()
	if !ok {
		t.Fatal("Expected to be decomposable")
	}
	assertVector3Near(t, mat.Vector3{X: 1, Y: 2, Z: 3}, scale)
	assertVector3Near(t, mat.Vector3{X: -4, Y: 5, Z: 6}, translation)
	if d := rotation.Dot(q); !near(d*d, 1, 1e-4) {
		t.Errorf("Expected rotation %v, got %v", q, rotation)
	}
}

func TestWorldTransforms(t *testing.T) {
	doc, err := Load("testdata/scene.gltf")
	if err != nil {
		t.Fatal(err)
	}
	world, err := doc.WorldTransforms()
	if err != nil {
		t.Fatal(err)
	}

	assertVector3Near(t, mat.Vector3{X: 10, Y: 0, Z: 0}, world[0].Translation())
	assertVector3Near(t, mat.Vector3{X: 10, Y: 1, Z: 0}, world[1].Translation())
	assertVector3Near(t, mat.Vector3{X: 10, Y: 1, Z: 6}, world[2].Translation())
	assertVector3Near(t,
		mat.Vector3{X: 10, Y: 3, Z: 6},
		mat.Vector3{X: 1, Y: 0, Z: 0}.TransformPoint(world[2]),
	)

	nodes, err := doc.SceneNodes(*doc.Scene)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual([]int{0, 3, 1, 2}, nodes) {
		t.Errorf("Unexpected scene nodes %v", nodes)
	}
	if _, err := doc.SceneNodes(len(doc.Scenes)); !errors.Is(err, ErrSceneIndex) {
		t.Errorf("Expected ErrSceneIndex, got %v", err)
	}
}

func TestWorldTransformsErrors(t *testing.T) {
	testCases := map[string]struct {
		nodes []Node
		err   error
	}{
		"ChildIndex": {
			nodes: []Node{{Children: []int{3}}},
			err:   ErrNodeIndex,
		},
		"SelfParent": {
			nodes: []Node{{Children: []int{0}}},
			err:   ErrNodeHierarchy,
		},
		"TwoParents": {
			nodes: []Node{{Children: []int{2}}, {Children: []int{2}}, {}},
			err:   ErrNodeHierarchy,
		},
		"Cycle": {
			nodes: []Node{{}, {Children: []int{2}}, {Children: []int{1}}},
			err:   ErrNodeHierarchy,
		},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			doc := &Document{Nodes: tt.nodes}
			if _, err := doc.WorldTransforms(); !errors.Is(err, tt.err) {
				t.Errorf("Expected error %v, got %v", tt.err, err)
			}
		})
	}
}

func TestView(t *testing.T) {
	doc, err := Load("testdata/scene.yaml")
	if err != nil {
		t.Fatal(err)
	}
	v, err := doc.View(3)
	if err != nil {
		t.Fatal(err)
	}
	if !v.Equal(mat.Translate(0, 0, -10)) {
		t.Errorf("Unexpected view %v", v)
	}
	if _, err := doc.View(4); !errors.Is(err, ErrNodeIndex) {
		t.Errorf("Expected ErrNodeIndex, got %v", err)
	}
}

func TestCameraProjection(t *testing.T) {
	f := func(v float32) *float32 { return &v }
	testCases := map[string]struct {
		camera   Camera
		aspect   float32
		expected mat.Matrix
		err      error
	}{
		"Perspective": {
			camera: Camera{Type: CameraPerspective, Perspective: &Perspective{
				YFov: mat.PiOver4, ZNear: 0.1, ZFar: f(100),
			}},
			aspect:   1.5,
			expected: mat.PerspectiveFieldOfView(mat.PiOver4, 1.5, 0.1, 100),
		},
		"PerspectiveOwnAspect": {
			camera: Camera{Type: CameraPerspective, Perspective: &Perspective{
				AspectRatio: f(2), YFov: mat.PiOver4, ZNear: 0.1, ZFar: f(100),
			}},
			aspect:   1.5,
			expected: mat.PerspectiveFieldOfView(mat.PiOver4, 2, 0.1, 100),
		},
		"Orthographic": {
			camera: Camera{Type: CameraOrthographic, Orthographic: &Orthographic{
				XMag: 2, YMag: 1, ZNear: 0, ZFar: 10,
			}},
			expected: mat.Orthographic(4, 2, 0, 10),
		},
		"Infinite": {
			camera: Camera{Type: CameraPerspective, Perspective: &Perspective{
				YFov: mat.PiOver4, ZNear: 0.1,
			}},
			aspect: 1,
			err:    ErrCamera,
		},
		"WideFov": {
			camera: Camera{Type: CameraPerspective, Perspective: &Perspective{
				YFov: 4, ZNear: 0.1, ZFar: f(100),
			}},
			aspect: 1,
			err:    ErrCamera,
		},
		"DepthRange": {
			camera: Camera{Type: CameraPerspective, Perspective: &Perspective{
				YFov: 1, ZNear: 10, ZFar: f(1),
			}},
			aspect: 1,
			err:    ErrCamera,
		},
		"ZeroAspect": {
			camera: Camera{Type: CameraPerspective, Perspective: &Perspective{
				YFov: 1, ZNear: 0.1, ZFar: f(1),
			}},
			err: ErrCamera,
		},
		"ZeroMag": {
			camera: Camera{Type: CameraOrthographic, Orthographic: &Orthographic{
				XMag: 0, YMag: 1, ZNear: 0, ZFar: 10,
			}},
			err: ErrCamera,
		},
		"MissingParameters": {
			camera: Camera{Type: CameraOrthographic},
			err:    ErrCamera,
		},
		"UnknownType": {
			camera: Camera{Type: "fisheye"},
			err:    ErrCamera,
		},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			p, err := tt.camera.Projection(tt.aspect)
			if !errors.Is(err, tt.err) {
				t.Fatalf("Expected error %v, got %v", tt.err, err)
			}
			if err == nil && p != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, p)
			}
		})
	}
}

func TestEncodeDecode(t *testing.T) {
	m := mat.Scale(2, 3, 4).Mul(mat.Translate(1, 2, 3))
	doc := &Document{
		Scene:  intPtr(0),
		Scenes: []Scene{{Name: "s", Nodes: []int{0}}},
		Nodes: []Node{
			{Name: "a", Children: []int{1}, Matrix: &m},
			{Name: "b", Translation: []float32{1, 2, 3}, Rotation: []float32{0, 0, 0, 1}},
		},
	}
	for name, f := range map[string]Format{"JSON": FormatJSON, "YAML": FormatYAML} {
		f := f
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, doc, f); err != nil {
				t.Fatal(err)
			}
			out, err := Decode(&buf, f)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(doc, out) {
				t.Errorf("Expected %+v, got %+v", doc, out)
			}
		})
	}
}
