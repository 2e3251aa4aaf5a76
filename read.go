package recordio

import (
	"bufio"
	"io"

	"go.uber.org/zap"
)

// ReadRecord decodes a single record from r.
//
// With [Auto], r must have a Name method (as *os.File does) whose result
// carries an extension. A stream without a name, or whose name has no
// extension, fails with ErrAutoNotSupported; an unknown extension fails with
// ErrUnsupportedFormat.
// Formats that cannot hold a bare record fail with ErrCapability before
// anything is read.
func ReadRecord[T any](r io.Reader, f Format) (T, error) {
	f, path, err := resolveStream(f, r, OpReadRecord)
	if err != nil {
		var zero T
		return zero, err
	}
	return readRecord[T](r, f, path)
}

// ReadRecords decodes a sequence of records from r. The call succeeds or
// fails as a whole; no records are returned with an error.
func ReadRecords[T any](r io.Reader, f Format) ([]T, error) {
	f, path, err := resolveStream(f, r, OpReadRecords)
	if err != nil {
		return nil, err
	}
	return readRecords[T](r, f, path)
}

func readRecord[T any](r io.Reader, f Format, path string) (T, error) {
	src := &trackedReader{r: r}
	br := bufio.NewReader(src)

	var (
		record T
		err    error
	)
	switch f {
	case JSON:
		record, err = decodeJSON[T](br)
	case YAML:
		record, err = decodeYAML[T](br)
	case MsgPack:
		record, err = decodeMsgPack[T](br)
	case TOML:
		record, err = decodeTOML[T](br)
	default:
		return record, &CapabilityError{Format: f, Op: OpReadRecord}
	}
	if err != nil {
		var zero T
		return zero, failure(f, OpReadRecord, path, src.err, err)
	}
	logger().Debug("read record", zap.Stringer("format", f), zap.String("path", path))
	return record, nil
}

func readRecords[T any](r io.Reader, f Format, path string) ([]T, error) {
	src := &trackedReader{r: r}
	br := bufio.NewReader(src)

	var (
		records []T
		err     error
	)
	switch f {
	case JSON:
		records, err = decodeJSON[[]T](br)
	case JSONL:
		records, err = decodeJSONL[T](br)
	case CSV:
		records, err = decodeCSV[T](br)
	case YAML:
		records, err = decodeYAML[[]T](br)
	case MsgPack:
		records, err = decodeMsgPack[[]T](br)
	default:
		return nil, &CapabilityError{Format: f, Op: OpReadRecords}
	}
	if err != nil {
		return nil, failure(f, OpReadRecords, path, src.err, err)
	}
	if records == nil {
		records = []T{}
	}
	logger().Debug("read records",
		zap.Stringer("format", f),
		zap.String("path", path),
		zap.Int("count", len(records)),
	)
	return records, nil
}
