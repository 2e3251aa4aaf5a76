//go:build !notoml

package recordio

import (
	"io"

	"github.com/pelletier/go-toml/v2"
)

const tomlEnabled = true

// decodeTOML decodes a whole TOML document. TOML has no top-level array,
// so only single records are read this way.
func decodeTOML[V any](r io.Reader) (V, error) {
	var v V
	if err := toml.NewDecoder(r).Decode(&v); err != nil {
		var zero V
		return zero, err
	}
	return v, nil
}

func encodeTOML(w io.Writer, v any) error {
	return toml.NewEncoder(w).Encode(v)
}
