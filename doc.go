// Package recordio reads and writes structured records in multiple
// serialization formats behind one API.
//
// Supported formats are JSON, JSON Lines, CSV, YAML, MessagePack, and TOML.
// The encoding itself is done by each format's codec library; this package
// maps file extensions to formats, checks what each format can hold, and
// gives every format the same generic function surface:
//
//	users, err := recordio.ReadRecordsFromFile[User]("users.jsonl", recordio.Auto)
//	err = recordio.WriteRecords(os.Stdout, recordio.YAML, users)
//
// # Formats
//
//	Format    Extensions             Single  Multi
//	JSON      .json                  yes     yes
//	JSONL     .jsonl .jsl            no      yes
//	CSV       .csv                   no      yes
//	YAML      .yaml .yml             yes     yes
//	MsgPack   .msgpack .mpack .mpk   yes     yes
//	TOML      .toml                  yes     no
//
// Extensions match case-insensitively. A "single" format holds one bare
// record ([ReadRecord], [WriteRecord]); a "multi" format holds a sequence
// ([ReadRecords], [WriteRecords]). Asking a format for something it cannot
// hold fails with [ErrCapability] before any byte is read or written.
//
// # Auto Detection
//
// Pass [Auto] to take the format from a file extension. File functions use
// their path. Reader and writer functions use the stream's Name method when
// it has one, as *os.File does, and fail with [ErrAutoNotSupported] when it
// has none or the name has no extension (os.Stdout is "/dev/stdout"). The
// content is never inspected: a misnamed file fails when it is decoded.
//
// # Per-Format Notes
//
//   - JSON: a sequence is one top-level array.
//   - JSON Lines: one compact record per line; blank lines are skipped on
//     read. Writing streams records without building the whole document,
//     which [WriteRecordsIter] exposes for lazy sources.
//   - CSV: the first row is a header naming the fields, mapped through
//     `csv` struct tags. Every value travels as a string.
//   - YAML: a sequence is one top-level sequence node, not a stream of
//     documents.
//   - MessagePack: a sequence is one array value. Fields without a msgpack
//     tag use their `json` tag name.
//   - TOML: single records only; a document cannot be a bare array.
//
// Implement [Indented] on a record type to indent JSON and YAML output, and
// [Delimited] to change the CSV field delimiter. CSV also reads and writes
// map[string]string records: the header row holds the keys, sorted on write.
//
// # Build Tags
//
// JSON and JSON Lines are always available. The other codecs can be left
// out with the build tags nocsv, noyaml, nomsgpack, and notoml. A format
// that is not compiled in behaves like an unknown one: naming it, or a path
// with one of its extensions, fails with [ErrUnsupportedFormat].
//
// # Errors
//
// Every error matches one sentinel with [errors.Is]:
//
//   - [ErrUnsupportedFormat] — unknown or disabled format or extension
//   - [ErrAutoNotSupported] — [Auto] without a path to resolve it from
//   - [ErrCapability] — operation not valid for the format ([CapabilityError])
//   - [ErrIO] — stream or file failure ([IOError])
//   - [ErrCodec] — the codec library rejected the data ([CodecError])
//
// A failed call returns no partial result.
//
// # Logging
//
// The package is silent by default. [SetLogger] installs a zap logger that
// receives debug events for format resolution, file access, and record
// counts.
package recordio
