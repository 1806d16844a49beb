package mat

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var ErrMatrixLength = errors.New("matrix must have exactly 16 elements")

// UnmarshalJSON reads 16 numbers in row-major order, the order they are
// stored in.
func (m *Matrix) UnmarshalJSON(b []byte) error {
	var fs []float32
	if err := json.Unmarshal(b, &fs); err != nil {
		return err
	}
	if len(fs) != len(m) {
		return fmt.Errorf("%w: got %d", ErrMatrixLength, len(fs))
	}
	copy(m[:], fs)
	return nil
}

func (m *Matrix) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: matrix must be a sequence", value.Line)
	}
	if len(value.Content) != len(m) {
		return fmt.Errorf("line %d: %w: got %d", value.Line, ErrMatrixLength, len(value.Content))
	}
	var fs []float32
	if err := value.Decode(&fs); err != nil {
		return err
	}
	copy(m[:], fs)
	return nil
}

func (m Matrix) MarshalYAML() (interface{}, error) {
	var n yaml.Node
	if err := n.Encode(m[:]); err != nil {
		return nil, err
	}
	n.Style = yaml.FlowStyle
	return &n, nil
}
