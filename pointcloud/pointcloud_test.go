package pointcloud

import (
	"bytes"
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/seqsense/glfx/mat"
	pcmat "github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"
)

func newPointCloud(t *testing.T, vecs []pcmat.Vec3) *pc.PointCloud {
	t.Helper()
	pp := &pc.PointCloud{
		PointCloudHeader: pc.PointCloudHeader{
			Version: 0.7,
			Fields:  []string{"x", "y", "z"},
			Size:    []int{4, 4, 4},
			Type:    []string{"F", "F", "F"},
			Count:   []int{1, 1, 1},
			Width:   len(vecs),
			Height:  1,
		},
		Points: len(vecs),
		Data:   make([]byte, 4*3*len(vecs)),
	}
	it, err := pp.Vec3Iterator()
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range vecs {
		it.SetVec3(v)
		it.Incr()
	}
	return pp
}

func expectPointCloud(t *testing.T, pp *pc.PointCloud, vecs []pcmat.Vec3) {
	t.Helper()
	it, err := pp.Vec3Iterator()
	if err != nil {
		t.Fatal(err)
	}
	if len(vecs) != it.Len() {
		t.Fatalf("Expected %d points, has %d points", len(vecs), it.Len())
	}
	for i, v := range vecs {
		if p := it.Vec3At(i); p.Sub(v).Norm() > 1e-5 {
			t.Errorf("Expected point %d: %v, got: %v", i, v, p)
		}
	}
}

func TestTransformedAccessor(t *testing.T) {
	in := pc.Vec3Slice{
		{1, 2, 3},
		{2, 3, 4},
		{3, 4, 5},
	}
	ra := &TransformedAccessor{
		Vec3RandomAccessor: in,
		Matrix:             mat.Translate(1, -2, -4),
	}

	expected := pc.Vec3Slice{
		{2, 0, -1},
		{3, 1, 0},
		{4, 2, 1},
	}
	if ra.Len() != in.Len() {
		t.Fatalf("Input and output length must be same, in: %d, out: %d", in.Len(), ra.Len())
	}

	for i, e := range expected {
		v := ra.Vec3At(i)
		if !e.Equal(v) {
			t.Errorf("Expected Vec3At(%d): %v, got: %v", i, e, v)
		}
	}
}

func TestTransform(t *testing.T) {
	in := []pcmat.Vec3{{1, 0, 0}, {0, 2, 0}}
	pp := newPointCloud(t, in)

	out, err := Transform(pp, mat.RotateZ(mat.PiOver2).Mul(mat.Translate(0, 0, 1)))
	if err != nil {
		t.Fatal(err)
	}
	expectPointCloud(t, out, []pcmat.Vec3{{0, 1, 1}, {-2, 0, 1}})
	expectPointCloud(t, pp, in)
}

func TestBounds(t *testing.T) {
	pp := newPointCloud(t, []pcmat.Vec3{{1, 5, -1}, {-2, 3, 4}, {0, 0, 0}})

	it, err := pp.Vec3Iterator()
	if err != nil {
		t.Fatal(err)
	}
	b, err := Bounds(it)
	if err != nil {
		t.Fatal(err)
	}
	expected := Box{
		Min: mat.Vector3{X: -2, Y: 0, Z: -1},
		Max: mat.Vector3{X: 1, Y: 5, Z: 4},
	}
	if b != expected {
		t.Errorf("Expected %v, got %v", expected, b)
	}

	tb, err := TransformedBounds(pp, mat.Translate(10, 0, 0))
	if err != nil {
		t.Fatal(err)
	}
	expected.Min.X += 10
	expected.Max.X += 10
	if tb != expected {
		t.Errorf("Expected %v, got %v", expected, tb)
	}

	if _, err := Bounds(pc.Vec3Slice{}); !errors.Is(err, ErrEmpty) {
		t.Errorf("Expected ErrEmpty, got %v", err)
	}
}

func TestBoxIntersection(t *testing.T) {
	box := func(a, b [3]float32) Box {
		return Box{
			Min: mat.Vector3{X: a[0], Y: a[1], Z: a[2]},
			Max: mat.Vector3{X: b[0], Y: b[1], Z: b[2]},
		}
	}
	testCases := map[string]struct {
		a, b     Box
		expected Box
	}{
		"ABottomRight": {
			a:        box([3]float32{1, 2, 3}, [3]float32{5, 6, 7}),
			b:        box([3]float32{4, 5, 6}, [3]float32{7, 8, 9}),
			expected: box([3]float32{4, 5, 6}, [3]float32{5, 6, 7}),
		},
		"Mixed": {
			a:        box([3]float32{1, 2, 3}, [3]float32{5, 6, 7}),
			b:        box([3]float32{4, 3, 2}, [3]float32{6, 4, 10}),
			expected: box([3]float32{4, 3, 3}, [3]float32{5, 4, 7}),
		},
		"NoOverlap": {
			a:        box([3]float32{1, 2, 3}, [3]float32{3, 4, 5}),
			b:        box([3]float32{6, 7, 8}, [3]float32{9, 10, 11}),
			expected: box([3]float32{6, 7, 8}, [3]float32{3, 4, 5}),
		},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Run("Forward", func(t *testing.T) {
				out := tt.a.Intersection(tt.b)
				if !reflect.DeepEqual(tt.expected, out) {
					t.Errorf("Expected box: %v, got: %v", tt.expected, out)
				}
			})
			t.Run("Reverse", func(t *testing.T) {
				out := tt.b.Intersection(tt.a)
				if !reflect.DeepEqual(tt.expected, out) {
					t.Errorf("Expected box: %v, got: %v", tt.expected, out)
				}
			})
		})
	}
}

func TestBox(t *testing.T) {
	type containsCheck struct {
		p      mat.Vector3
		inside bool
	}

	testCases := map[string]struct {
		b        Box
		valid    bool
		contains map[string]containsCheck
	}{
		"Valid": {
			b:     Box{mat.Vector3{X: 4, Y: 5, Z: 6}, mat.Vector3{X: 5, Y: 6, Z: 7}},
			valid: true,
			contains: map[string]containsCheck{
				"Inside":   {p: mat.Vector3{X: 4.5, Y: 5.6, Z: 6.7}, inside: true},
				"Outside1": {p: mat.Vector3{X: 3.5, Y: 5.6, Z: 6.7}},
				"Outside2": {p: mat.Vector3{X: 5.5, Y: 5.6, Z: 6.7}},
				"Outside3": {p: mat.Vector3{X: 4.5, Y: 6.6, Z: 6.7}},
				"Outside4": {p: mat.Vector3{X: 4.5, Y: 5.6, Z: 7.7}},
			},
		},
		"Invalid": {
			b: Box{mat.Vector3{X: 6, Y: 7, Z: 8}, mat.Vector3{X: 3, Y: 4, Z: 5}},
			contains: map[string]containsCheck{
				"BetweenCorners": {p: mat.Vector3{X: 4, Y: 5, Z: 6}},
				"Outside":        {p: mat.Vector3{X: 10, Y: 10, Z: 10}},
			},
		},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			if ok := tt.b.IsValid(); ok != tt.valid {
				t.Errorf("IsValid expected to be %v", tt.valid)
			}
			for name, c := range tt.contains {
				c := c
				t.Run(name, func(t *testing.T) {
					if inside := tt.b.Contains(c.p); inside != c.inside {
						t.Errorf("Contains(%v) expected to be %v", c.p, c.inside)
					}
				})
			}
		})
	}

	b := Box{mat.Vector3{X: 1, Y: 2, Z: 3}, mat.Vector3{X: 3, Y: 6, Z: 9}}
	if c := b.Center(); c != (mat.Vector3{X: 2, Y: 4, Z: 6}) {
		t.Errorf("Unexpected center %v", c)
	}
	if s := b.Size(); s != (mat.Vector3{X: 2, Y: 4, Z: 6}) {
		t.Errorf("Unexpected size %v", s)
	}
}

func TestSaveLoad(t *testing.T) {
	vecs := []pcmat.Vec3{{1, 2, 3}, {4, 5, 6}}
	var buf bytes.Buffer
	if err := Save(&buf, newPointCloud(t, vecs)); err != nil {
		t.Fatal(err)
	}
	pp, err := Load(&buf)
	if err != nil {
		t.Fatal(err)
	}
	expectPointCloud(t, pp, vecs)

	if _, err := Load(bytes.NewReader([]byte("not a pcd"))); err == nil {
		t.Error("Expected error on broken input")
	}
}

func TestDownsample(t *testing.T) {
	pp := newPointCloud(t, []pcmat.Vec3{
		{0.50, 1.50, 0.10},
		{1.00, 1.00, 1.00},
		{0.52, 1.50, 0.12},
		{1.00, 0.00, 1.00},
	})
	out, err := Downsample(pp, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	if out.Points != 3 {
		t.Errorf("Expected 3 points, got %d", out.Points)
	}
	if _, err := Downsample(pp, 0); err == nil {
		t.Error("Expected error on zero resolution")
	}
}

func TestAlign(t *testing.T) {
	var grid pc.Vec3Slice
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			for z := 0; z < 2; z++ {
				grid = append(grid, pcmat.Vec3{float32(x) * 0.2, float32(y) * 0.3, float32(z) * 0.25})
			}
		}
	}

	m, err := Align(grid, grid, nil)
	if err != nil {
		t.Fatal(err)
	}
	id := mat.Identity()
	for i := range m {
		if d := m[i] - id[i]; d > 1e-2 || d < -1e-2 {
			t.Fatalf("Aligning identical clouds expected to give identity, got %v", m)
		}
	}

	t.Run("Offset", func(t *testing.T) {
		rnd := rand.New(rand.NewSource(1))
		base := make(pc.Vec3Slice, 512)
		for i := range base {
			base[i] = pcmat.Vec3{rnd.Float32() * 2, rnd.Float32() * 2, rnd.Float32() * 0.5}
		}
		offset := mat.RotateZ(0.05).Mul(mat.Translate(0.05, -0.03, 0.02))
		target := make(pc.Vec3Slice, len(base))
		for i, p := range base {
			target[i] = mat.FromVec3(p).TransformPoint(offset).Vec3()
		}

		m, err := Align(base, target, nil)
		if err != nil {
			t.Fatal(err)
		}
		for i := range target {
			p := mat.FromVec3(target[i]).TransformPoint(m)
			if d := p.Sub(mat.FromVec3(base[i])).Length(); d > 1e-2 {
				t.Fatalf("Point %d expected to be moved back onto %v, got %v", i, base[i], p)
			}
		}
	})

	if _, err := Align(grid[:3], grid, nil); !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("Expected ErrTooFewPoints, got %v", err)
	}
}
