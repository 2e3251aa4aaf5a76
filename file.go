package recordio

import (
	"os"
	"slices"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ReadRecordFromFile decodes a single record from the file at path. With
// [Auto] the format comes from the file extension.
func ReadRecordFromFile[T any](path string, f Format) (T, error) {
	var zero T
	f, err := resolveFor(f, path, OpReadRecord)
	if err != nil {
		return zero, err
	}
	file, err := openFile(path)
	if err != nil {
		return zero, err
	}
	defer file.Close()
	return readRecord[T](file, f, path)
}

// ReadRecordsFromFile decodes a sequence of records from the file at path.
func ReadRecordsFromFile[T any](path string, f Format) ([]T, error) {
	f, err := resolveFor(f, path, OpReadRecords)
	if err != nil {
		return nil, err
	}
	file, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return readRecords[T](file, f, path)
}

// WriteRecordToFile creates or truncates the file at path and encodes
// record into it. The format is resolved before the file is touched, so an
// unsupported extension leaves the file system unchanged.
func WriteRecordToFile[T any](path string, record T, f Format) (err error) {
	f, err = resolveFor(f, path, OpWriteRecord)
	if err != nil {
		return err
	}
	file, err := createFile(path)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, closeFile(file, path)) }()
	return writeRecord(file, f, path, record)
}

// WriteRecordsToFile creates or truncates the file at path and encodes
// records into it as one sequence.
func WriteRecordsToFile[T any](path string, records []T, f Format) (err error) {
	f, err = resolveFor(f, path, OpWriteRecords)
	if err != nil {
		return err
	}
	file, err := createFile(path)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, closeFile(file, path)) }()
	return writeRecords(file, f, path, slices.Values(records))
}

func openFile(path string) (*os.File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	logger().Debug("opened file", zap.String("path", path))
	return file, nil
}

func createFile(path string) (*os.File, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, &IOError{Op: "create", Path: path, Err: err}
	}
	logger().Debug("created file", zap.String("path", path))
	return file, nil
}

func closeFile(file *os.File, path string) error {
	if err := file.Close(); err != nil {
		return &IOError{Op: "close", Path: path, Err: err}
	}
	return nil
}
