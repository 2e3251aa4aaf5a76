//go:build noyaml

package recordio

import "io"

const yamlEnabled = false

func decodeYAML[V any](io.Reader) (V, error) {
	var zero V
	return zero, errNotCompiled(YAML)
}

func encodeYAML(io.Writer, any, any) error { return errNotCompiled(YAML) }
