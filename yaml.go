//go:build !noyaml

package recordio

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

const yamlEnabled = true

// decodeYAML decodes the only document in r. A sequence of records must be
// a single top-level sequence node; a stream of several documents is
// rejected.
func decodeYAML[V any](r io.Reader) (V, error) {
	var v V
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&v); err != nil {
		return v, err
	}
	var next yaml.Node
	if err := dec.Decode(&next); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errTrailingData
		}
		var zero V
		return zero, err
	}
	return v, nil
}

func encodeYAML(w io.Writer, v, indentFrom any) error {
	enc := yaml.NewEncoder(w)
	if indent, ok := indentOf(indentFrom); ok {
		enc.SetIndent(len(indent))
	}
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
