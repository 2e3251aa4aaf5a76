package recordio

import (
	"encoding/json"
	"errors"
	"io"
)

var errTrailingData = errors.New("unexpected data after top-level value")

// decodeJSON decodes exactly one top-level JSON value from r.
func decodeJSON[V any](r io.Reader) (V, error) {
	var v V
	dec := json.NewDecoder(r)
	if err := dec.Decode(&v); err != nil {
		return v, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errTrailingData
		}
		var zero V
		return zero, err
	}
	return v, nil
}

func encodeJSON(w io.Writer, v, indentFrom any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent, ok := indentOf(indentFrom); ok {
		enc.SetIndent("", indent)
	}
	return enc.Encode(v)
}
