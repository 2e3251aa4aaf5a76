//go:build !nomsgpack

package recordio

import (
	"errors"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

const msgpackEnabled = true

// structTag is consulted for field names when a field has no msgpack tag,
// so records tagged for JSON keep their names.
const structTag = "json"

// decodeMsgPack decodes exactly one self-describing MessagePack value; a
// sequence of records is a single array value.
func decodeMsgPack[V any](r io.Reader) (V, error) {
	var v, zero V
	dec := msgpack.NewDecoder(r)
	dec.SetCustomStructTag(structTag)
	if err := dec.Decode(&v); err != nil {
		return zero, err
	}
	if _, err := dec.PeekCode(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errTrailingData
		}
		return zero, err
	}
	return v, nil
}

func encodeMsgPack(w io.Writer, v any) error {
	enc := msgpack.NewEncoder(w)
	enc.SetCustomStructTag(structTag)
	return enc.Encode(v)
}
