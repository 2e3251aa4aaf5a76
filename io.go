package recordio

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"go.uber.org/zap"
)

// trackedReader remembers the first error of the wrapped reader other than
// io.EOF. Codecs report stream failures and malformed input alike; the
// recorded error tells them apart.
type trackedReader struct {
	r   io.Reader
	err error
}

func (t *trackedReader) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if err != nil && !errors.Is(err, io.EOF) && t.err == nil {
		t.err = err
	}
	return n, err
}

// trackedWriter is the write side of trackedReader.
type trackedWriter struct {
	w   io.Writer
	err error
}

func (t *trackedWriter) Write(p []byte) (int, error) {
	n, err := t.w.Write(p)
	if err != nil && t.err == nil {
		t.err = err
	}
	return n, err
}

// failure classifies err, returned while running op in format f, as an
// I/O or a codec error.
func failure(f Format, op Op, path string, streamErr, err error) error {
	if streamErr != nil {
		return ioError(op, path, streamErr)
	}
	var ioErr *IOError
	if errors.As(err, &ioErr) {
		return err
	}
	return &CodecError{Format: f, Op: op, Err: err}
}

func ioError(op Op, path string, err error) error {
	name := "write"
	if op.reads() {
		name = "read"
	}
	return &IOError{Op: name, Path: path, Err: err}
}

// nameOf returns the name of a stream that has one, such as *os.File.
func nameOf(stream any) string {
	if n, ok := stream.(interface{ Name() string }); ok {
		return n.Name()
	}
	return ""
}

// resolveStream resolves f for a reader or writer, taking the path from the
// stream's name. A stream whose name carries no extension, like /dev/stdout,
// gives Auto nothing to resolve from.
func resolveStream(f Format, stream any, op Op) (Format, string, error) {
	path := nameOf(stream)
	if f == Auto && path != "" && filepath.Ext(path) == "" {
		return "", path, fmt.Errorf("%w: stream %q has no extension", ErrAutoNotSupported, path)
	}
	resolved, err := resolveFor(f, path, op)
	return resolved, path, err
}

// resolveFor resolves f against path and checks that the result can run op.
func resolveFor(f Format, path string, op Op) (Format, error) {
	resolved, err := Resolve(f, path)
	if err != nil {
		return "", err
	}
	if !resolved.supports(op) {
		return "", &CapabilityError{Format: resolved, Op: op}
	}
	logger().Debug("resolved format",
		zap.Stringer("op", op),
		zap.Stringer("requested", f),
		zap.Stringer("format", resolved),
		zap.String("path", path),
	)
	return resolved, nil
}
