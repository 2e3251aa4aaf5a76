//go:build notoml

package recordio

import "io"

const tomlEnabled = false

func decodeTOML[V any](io.Reader) (V, error) {
	var zero V
	return zero, errNotCompiled(TOML)
}

func encodeTOML(io.Writer, any) error { return errNotCompiled(TOML) }
