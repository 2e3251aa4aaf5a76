package recordio

import (
	"bufio"
	"io"
	"iter"
	"slices"

	"go.uber.org/zap"
)

// WriteRecord encodes a single record to w.
//
// Output is buffered and flushed before WriteRecord returns. [Auto] follows
// the same rules as for [ReadRecord].
func WriteRecord[T any](w io.Writer, f Format, record T) error {
	f, path, err := resolveStream(f, w, OpWriteRecord)
	if err != nil {
		return err
	}
	return writeRecord(w, f, path, record)
}

// WriteRecords encodes records to w as one sequence.
func WriteRecords[T any](w io.Writer, f Format, records []T) error {
	f, path, err := resolveStream(f, w, OpWriteRecords)
	if err != nil {
		return err
	}
	return writeRecords(w, f, path, slices.Values(records))
}

func writeRecord[T any](w io.Writer, f Format, path string, record T) error {
	sink := &trackedWriter{w: w}
	bw := bufio.NewWriter(sink)

	var err error
	switch f {
	case JSON:
		err = encodeJSON(bw, record, record)
	case YAML:
		err = encodeYAML(bw, record, record)
	case MsgPack:
		err = encodeMsgPack(bw, record)
	case TOML:
		err = encodeTOML(bw, record)
	default:
		return &CapabilityError{Format: f, Op: OpWriteRecord}
	}
	if err != nil {
		return failure(f, OpWriteRecord, path, sink.err, err)
	}
	if err := bw.Flush(); err != nil {
		return ioError(OpWriteRecord, path, err)
	}
	logger().Debug("wrote record", zap.Stringer("format", f), zap.String("path", path))
	return nil
}

// writeRecords streams JSON Lines straight from seq. Every other format
// collects seq into one value and encodes it with a single call.
func writeRecords[T any](w io.Writer, f Format, path string, seq iter.Seq[T]) error {
	sink := &trackedWriter{w: w}
	bw := bufio.NewWriter(sink)

	var (
		count int
		err   error
	)
	if f == JSONL {
		count, err = encodeJSONL(bw, seq)
	} else {
		records := collect(seq)
		count = len(records)
		switch f {
		case JSON:
			err = encodeJSON(bw, records, first(records))
		case CSV:
			err = encodeCSV(bw, records)
		case YAML:
			err = encodeYAML(bw, records, first(records))
		case MsgPack:
			err = encodeMsgPack(bw, records)
		default:
			return &CapabilityError{Format: f, Op: OpWriteRecords}
		}
	}
	if err != nil {
		return failure(f, OpWriteRecords, path, sink.err, err)
	}
	if err := bw.Flush(); err != nil {
		return ioError(OpWriteRecords, path, err)
	}
	logger().Debug("wrote records",
		zap.Stringer("format", f),
		zap.String("path", path),
		zap.Int("count", count),
	)
	return nil
}

// collect gathers seq into a non-nil slice so an empty sequence encodes as
// an empty collection rather than null.
func collect[T any](seq iter.Seq[T]) []T {
	records := slices.Collect(seq)
	if records == nil {
		records = []T{}
	}
	return records
}

func first[T any](records []T) any {
	if len(records) == 0 {
		return nil
	}
	return records[0]
}
