package recordio

import (
	"io"
	"iter"
)

// WriteRecordsIter encodes the records produced by seq to w.
//
// JSON Lines writes each record as it arrives and never holds the whole
// sequence. The other formats need one complete value for the encoder, so
// the sequence is collected first.
func WriteRecordsIter[T any](w io.Writer, f Format, seq iter.Seq[T]) error {
	f, path, err := resolveStream(f, w, OpWriteRecords)
	if err != nil {
		return err
	}
	return writeRecords(w, f, path, seq)
}

// WriteRecordsChan encodes the records received from ch until it is
// closed. It is a thin wrapper around [WriteRecordsIter].
func WriteRecordsChan[T any](w io.Writer, f Format, ch <-chan T) error {
	return WriteRecordsIter(w, f, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
