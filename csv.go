//go:build !nocsv

package recordio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/jszwec/csvutil"
)

const csvEnabled = true

// fieldMap is the record type CSV decodes into without a struct definition:
// the header names the keys.
type fieldMap = map[string]string

// decodeCSV reads a header row and decodes every following row against it.
// Struct fields map through `csv` tags; a map[string]string record takes the
// header as its keys. Empty input holds no records.
func decodeCSV[T any](r io.Reader) ([]T, error) {
	var zero T
	cr := csv.NewReader(r)
	cr.Comma = delimiterOf(zero)
	if _, ok := any(zero).(fieldMap); ok {
		return decodeCSVMaps[T](cr)
	}

	dec, err := csvutil.NewDecoder(cr)
	if errors.Is(err, io.EOF) {
		return make([]T, 0), nil
	}
	if err != nil {
		return nil, err
	}
	records := make([]T, 0)
	for {
		var record T
		err := dec.Decode(&record)
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
}

func decodeCSVMaps[T any](cr *csv.Reader) ([]T, error) {
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return make([]T, 0), nil
	}
	if err != nil {
		return nil, err
	}
	records := make([]T, 0)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		record := make(fieldMap, len(header))
		for i, key := range header {
			record[key] = row[i]
		}
		records = append(records, any(record).(T))
	}
}

// encodeCSV writes the header derived from the record type, then one row
// per record. Values are stringified, so only types with a symmetric
// string form survive a round trip unchanged.
func encodeCSV[T any](w io.Writer, records []T) error {
	var zero T
	cw := csv.NewWriter(w)
	cw.Comma = delimiterOf(zero)
	if len(records) > 0 {
		cw.Comma = delimiterOf(records[0])
	}
	if _, ok := any(zero).(fieldMap); ok {
		return encodeCSVMaps(cw, records)
	}

	enc := csvutil.NewEncoder(cw)
	if len(records) == 0 {
		if err := enc.EncodeHeader(zero); err != nil {
			return err
		}
	}
	for _, record := range records {
		if err := enc.Encode(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// encodeCSVMaps writes the sorted union of all keys as the header. A key
// missing from a record is written as an empty field. No records means no
// header, which reads back as no records.
func encodeCSVMaps[T any](cw *csv.Writer, records []T) error {
	if len(records) == 0 {
		return nil
	}
	keys := make(map[string]struct{})
	for _, record := range records {
		for k := range any(record).(fieldMap) {
			keys[k] = struct{}{}
		}
	}
	header := slices.Sorted(maps.Keys(keys))
	if err := cw.Write(header); err != nil {
		return err
	}
	row := make([]string, len(header))
	for i, record := range records {
		m := any(record).(fieldMap)
		for j, k := range header {
			row[j] = m[k]
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// delimiterOf returns the CSV field delimiter declared by v, or a comma.
func delimiterOf(v any) rune {
	if d, ok := v.(Delimited); ok {
		return d.Delimiter()
	}
	return ','
}
