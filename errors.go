package recordio

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling. Every error returned by
// the package matches exactly one of them with [errors.Is].
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrAutoNotSupported  = errors.New("auto format requires a file path")
	ErrCapability        = errors.New("operation not supported by format")
	ErrIO                = errors.New("i/o failure")
	ErrCodec             = errors.New("codec failure")
)

// Op names a record operation.
type Op string

const (
	OpReadRecord   Op = "read record"
	OpReadRecords  Op = "read records"
	OpWriteRecord  Op = "write record"
	OpWriteRecords Op = "write records"
)

func (o Op) String() string { return string(o) }

func (o Op) single() bool { return o == OpReadRecord || o == OpWriteRecord }

func (o Op) reads() bool { return o == OpReadRecord || o == OpReadRecords }

// CapabilityError reports an operation the format cannot represent, such
// as a single record in JSON Lines. Nothing is read or written when it is
// returned.
type CapabilityError struct {
	Format Format
	Op     Op
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("%s: %s cannot %s", ErrCapability, e.Format, e.Op)
}

func (e *CapabilityError) Is(target error) bool { return target == ErrCapability }

// IOError reports a failure of the underlying stream or file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool { return target == ErrIO }

// CodecError wraps an error reported by the codec library of Format.
type CodecError struct {
	Format Format
	Op     Op
	Err    error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Format, e.Op, e.Err)
}

func (e *CodecError) Unwrap() error { return e.Err }

func (e *CodecError) Is(target error) bool { return target == ErrCodec }
