//go:build nomsgpack

package recordio

import "io"

const msgpackEnabled = false

func decodeMsgPack[V any](io.Reader) (V, error) {
	var zero V
	return zero, errNotCompiled(MsgPack)
}

func encodeMsgPack(io.Writer, any) error { return errNotCompiled(MsgPack) }
