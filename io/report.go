package io

import (
	goio "io"

	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

// Vector is a 3-vector which is written as a single-line YAML sequence.
type Vector r3.Vec

func (v Vector) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{}
	if err := node.Encode([]float64{ v.X, v.Y, v.Z }); err != nil {
		return nil, err
	}
	node.Style = yaml.FlowStyle
	return node, nil
}

// Vectors converts vs for reporting.
func Vectors(vs []r3.Vec) []Vector {
	out := make([]Vector, len(vs))
	for i := range vs { out[i] = Vector(vs[i]) }
	return out
}

// WriteReport writes v to w as a YAML document.
func WriteReport(w goio.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil { return err }
	return enc.Close()
}
