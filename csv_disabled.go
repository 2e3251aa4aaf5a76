//go:build nocsv

package recordio

import "io"

const csvEnabled = false

func decodeCSV[T any](io.Reader) ([]T, error) { return nil, errNotCompiled(CSV) }

func encodeCSV[T any](io.Writer, []T) error { return errNotCompiled(CSV) }
