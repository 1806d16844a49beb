package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/seqsense/glfx/content"
	"github.com/seqsense/glfx/mat"
	"github.com/seqsense/glfx/pointcloud"
	"gopkg.in/yaml.v3"
)

type trs struct {
	Matrix       mat.Matrix  `yaml:"matrix"`
	Determinant  float32     `yaml:"determinant"`
	Decomposable bool        `yaml:"decomposable"`
	Scale        []float32   `yaml:"scale,flow,omitempty"`
	Rotation     []float32   `yaml:"rotation,flow,omitempty"`
	Translation  []float32   `yaml:"translation,flow,omitempty"`
	Inverse      *mat.Matrix `yaml:"inverse,omitempty"`
}

func newTRS(m mat.Matrix) *trs {
	out := &trs{
		Matrix:      m,
		Determinant: m.Determinant(),
	}
	if m.HasInverse() {
		inv := mat.Invert(m)
		out.Inverse = &inv
	}
	s, r, t, ok := mat.Decompose(m)
	out.Decomposable = ok
	if ok {
		out.Scale = []float32{s.X, s.Y, s.Z}
		out.Rotation = []float32{r.X, r.Y, r.Z, r.W}
		out.Translation = []float32{t.X, t.Y, t.Z}
	}
	return out
}

func (t *trs) write(w io.Writer) error {
	return writeYAML(w, t)
}

type nodeReport struct {
	Index int    `yaml:"index"`
	Name  string `yaml:"name,omitempty"`
	Local *trs   `yaml:"local"`
	World *trs   `yaml:"world"`
}

type cameraReport struct {
	Node       int        `yaml:"node"`
	Name       string     `yaml:"name,omitempty"`
	View       mat.Matrix `yaml:"view"`
	Projection mat.Matrix `yaml:"projection"`
}

type report struct {
	Nodes   []nodeReport   `yaml:"nodes"`
	Cameras []cameraReport `yaml:"cameras,omitempty"`
}

func newReport(doc *content.Document, aspect float32) (*report, error) {
	world, err := doc.WorldTransforms()
	if err != nil {
		return nil, err
	}
	r := &report{}
	for i := range doc.Nodes {
		n := &doc.Nodes[i]
		r.Nodes = append(r.Nodes, nodeReport{
			Index: i,
			Name:  n.Name,
			Local: newTRS(n.LocalTransform()),
			World: newTRS(world[i]),
		})
		if n.Camera == nil {
			continue
		}
		c := doc.Cameras[*n.Camera]
		proj, err := c.Projection(aspect)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		view, err := doc.View(i)
		if err != nil {
			return nil, err
		}
		r.Cameras = append(r.Cameras, cameraReport{
			Node:       i,
			Name:       c.Name,
			View:       view,
			Projection: proj,
		})
	}
	return r, nil
}

func (r *report) write(w io.Writer) error {
	return writeYAML(w, r)
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func parseMatrix(s string) (mat.Matrix, error) {
	var m mat.Matrix
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	if len(fields) != len(m) {
		return m, fmt.Errorf("%w: got %d", mat.ErrMatrixLength, len(fields))
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return m, fmt.Errorf("element %d: %w", i, err)
		}
		m[i] = float32(v)
	}
	return m, nil
}

var errBox = errors.New("box needs 6 numbers with min below max")

// parseBox reads "x0,y0,z0,x1,y1,z1".
func parseBox(s string) (pointcloud.Box, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 6 {
		return pointcloud.Box{}, errBox
	}
	var v [6]float32
	for i, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
		if err != nil {
			return pointcloud.Box{}, fmt.Errorf("box element %d: %w", i, err)
		}
		v[i] = float32(x)
	}
	b := pointcloud.Box{
		Min: mat.Vector3{X: v[0], Y: v[1], Z: v[2]},
		Max: mat.Vector3{X: v[3], Y: v[4], Z: v[5]},
	}
	if sz := b.Size(); sz.X <= 0 || sz.Y <= 0 || sz.Z <= 0 {
		return pointcloud.Box{}, errBox
	}
	return b, nil
}
