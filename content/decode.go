package content

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatOf guesses the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".gltf":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

func Decode(r io.Reader, f Format) (*Document, error) {
	var doc Document
	switch f {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("content: decoding json: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("content: decoding yaml: %w", err)
		}
	default:
		return nil, ErrUnknownFormat
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

func Encode(w io.Writer, doc *Document, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return ErrUnknownFormat
	}
}

func Load(path string) (*Document, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return Decode(r, f)
}

// Validate checks indices and transform property lengths.
func (d *Document) Validate() error {
	for i, n := range d.Nodes {
		for _, c := range n.Children {
			if c < 0 || c >= len(d.Nodes) {
				return fmt.Errorf("node %d: child %d: %w", i, c, ErrNodeIndex)
			}
		}
		if n.Camera != nil && (*n.Camera < 0 || *n.Camera >= len(d.Cameras)) {
			return fmt.Errorf("node %d: camera %d: %w", i, *n.Camera, ErrCamera)
		}
		if err := n.validate(); err != nil {
			return fmt.Errorf("node %d: %w", i, err)
		}
	}
	for i, s := range d.Scenes {
		for _, n := range s.Nodes {
			if n < 0 || n >= len(d.Nodes) {
				return fmt.Errorf("scene %d: node %d: %w", i, n, ErrNodeIndex)
			}
		}
	}
	if d.Scene != nil && (*d.Scene < 0 || *d.Scene >= len(d.Scenes)) {
		return fmt.Errorf("scene %d: %w", *d.Scene, ErrSceneIndex)
	}
	return nil
}

func (n *Node) validate() error {
	for _, p := range []struct {
		name string
		v    []float32
		n    int
	}{
		{"translation", n.Translation, 3},
		{"rotation", n.Rotation, 4},
		{"scale", n.Scale, 3},
	} {
		if p.v != nil && len(p.v) != p.n {
			return fmt.Errorf("%w: %s must have %d elements, got %d", ErrNodeTransform, p.name, p.n, len(p.v))
		}
	}
	return nil
}
