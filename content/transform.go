package content

import (
	"fmt"

	"github.com/seqsense/glfx/mat"
)

// LocalTransform returns the node transform relative to its parent.
// An explicit matrix takes precedence over translation, rotation and scale.
func (n *Node) LocalTransform() mat.Matrix {
	if n.Matrix != nil {
		return *n.Matrix
	}
	m := mat.Identity()
	if len(n.Scale) == 3 {
		m = mat.Scale(n.Scale[0], n.Scale[1], n.Scale[2])
	}
	if len(n.Rotation) == 4 {
		q := mat.Quaternion{X: n.Rotation[0], Y: n.Rotation[1], Z: n.Rotation[2], W: n.Rotation[3]}
		m = m.Mul(mat.FromQuaternion(q))
	}
	if len(n.Translation) == 3 {
		m = m.Mul(mat.Translate(n.Translation[0], n.Translation[1], n.Translation[2]))
	}
	return m
}

// TRS splits the local transform. ok is false if it can't be decomposed.
func (n *Node) TRS() (scale mat.Vector3, rotation mat.Quaternion, translation mat.Vector3, ok bool) {
	return mat.Decompose(n.LocalTransform())
}

// SetTRS replaces the node transform by translation, rotation and scale.
func (n *Node) SetTRS(scale mat.Vector3, rotation mat.Quaternion, translation mat.Vector3) {
	n.Matrix = nil
	n.Scale = []float32{scale.X, scale.Y, scale.Z}
	n.Rotation = []float32{rotation.X, rotation.Y, rotation.Z, rotation.W}
	n.Translation = []float32{translation.X, translation.Y, translation.Z}
}

// Parents returns the parent index of each node, -1 for roots.
func (d *Document) Parents() ([]int, error) {
	parents := make([]int, len(d.Nodes))
	for i := range parents {
		parents[i] = -1
	}
	for i, n := range d.Nodes {
		for _, c := range n.Children {
			if c < 0 || c >= len(d.Nodes) {
				return nil, fmt.Errorf("node %d: child %d: %w", i, c, ErrNodeIndex)
			}
			if c == i || parents[c] != -1 {
				return nil, fmt.Errorf("node %d: %w", c, ErrNodeHierarchy)
			}
			parents[c] = i
		}
	}
	return parents, nil
}

// WorldTransforms accumulates local transforms from the roots down.
// Child world = child local * parent world.
func (d *Document) WorldTransforms() ([]mat.Matrix, error) {
	parents, err := d.Parents()
	if err != nil {
		return nil, err
	}
	world := make([]mat.Matrix, len(d.Nodes))
	visited := make([]bool, len(d.Nodes))
	var stack []int
	for i, p := range parents {
		if p == -1 {
			stack = append(stack, i)
			world[i] = d.Nodes[i].LocalTransform()
			visited[i] = true
		}
	}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range d.Nodes[i].Children {
			world[c] = d.Nodes[c].LocalTransform().Mul(world[i])
			visited[c] = true
			stack = append(stack, c)
		}
	}
	for i, v := range visited {
		if !v {
			return nil, fmt.Errorf("node %d is in a cycle: %w", i, ErrNodeHierarchy)
		}
	}
	return world, nil
}

// SceneNodes lists the nodes reachable from the roots of the scene,
// parents before children.
func (d *Document) SceneNodes(scene int) ([]int, error) {
	if scene < 0 || scene >= len(d.Scenes) {
		return nil, fmt.Errorf("scene %d: %w", scene, ErrSceneIndex)
	}
	var out []int
	stack := append([]int(nil), d.Scenes[scene].Nodes...)
	seen := make(map[int]bool)
	for len(stack) > 0 {
		i := stack[0]
		stack = stack[1:]
		if i < 0 || i >= len(d.Nodes) {
			return nil, fmt.Errorf("scene %d: node %d: %w", scene, i, ErrNodeIndex)
		}
		if seen[i] {
			return nil, fmt.Errorf("node %d: %w", i, ErrNodeHierarchy)
		}
		seen[i] = true
		out = append(out, i)
		stack = append(stack, d.Nodes[i].Children...)
	}
	return out, nil
}

// View returns the view matrix of a node carrying a camera.
// Cameras look along -Z of their node with +Y up.
func (d *Document) View(node int) (mat.Matrix, error) {
	if node < 0 || node >= len(d.Nodes) {
		return mat.Matrix{}, fmt.Errorf("node %d: %w", node, ErrNodeIndex)
	}
	world, err := d.WorldTransforms()
	if err != nil {
		return mat.Matrix{}, err
	}
	w := world[node]
	if !w.HasInverse() {
		return mat.Matrix{}, fmt.Errorf("node %d: %w: singular transform", node, ErrCamera)
	}
	return mat.Invert(w), nil
}
