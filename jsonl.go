package recordio

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"iter"
)

// MaxLineSize is the longest JSON Lines record that can be read.
const MaxLineSize = 64 << 20

func decodeJSONL[T any](r io.Reader) ([]T, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), MaxLineSize)
	records := make([]T, 0)
	line := 0
	for sc.Scan() {
		line++
		text := bytes.TrimSpace(sc.Bytes())
		if len(text) == 0 {
			continue
		}
		var record T
		if err := json.Unmarshal(text, &record); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, record)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", line+1, err)
	}
	return records, nil
}

// encodeJSONL writes one compact JSON line per record as seq yields them.
func encodeJSONL[T any](w io.Writer, seq iter.Seq[T]) (int, error) {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	count := 0
	var streamErr error
	seq(func(record T) bool {
		if err := enc.Encode(record); err != nil {
			streamErr = fmt.Errorf("record %d: %w", count+1, err)
			return false
		}
		count++
		return true
	})
	return count, streamErr
}
