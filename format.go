package recordio

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies a record serialization format.
type Format string

const (
	JSON    Format = "json"
	JSONL   Format = "jsonl"
	CSV     Format = "csv"
	YAML    Format = "yaml"
	MsgPack Format = "msgpack"
	TOML    Format = "toml"

	// Auto asks for the format to be resolved from a file extension. It is
	// accepted wherever a Format is, but never returned by [Resolve].
	Auto Format = "auto"
)

type formatInfo struct {
	extensions []string
	single     bool
	multi      bool
	enabled    bool
}

var formats = []Format{JSON, JSONL, CSV, YAML, MsgPack, TOML}

var registry = map[Format]formatInfo{
	JSON:    {extensions: []string{"json"}, single: true, multi: true, enabled: true},
	JSONL:   {extensions: []string{"jsonl", "jsl"}, multi: true, enabled: true},
	CSV:     {extensions: []string{"csv"}, multi: true, enabled: csvEnabled},
	YAML:    {extensions: []string{"yaml", "yml"}, single: true, multi: true, enabled: yamlEnabled},
	MsgPack: {extensions: []string{"msgpack", "mpack", "mpk"}, single: true, multi: true, enabled: msgpackEnabled},
	TOML:    {extensions: []string{"toml"}, single: true, enabled: tomlEnabled},
}

// byExtension indexes every known extension, including those of formats
// left out of the build, so a disabled format reports why it failed.
var byExtension = func() map[string]Format {
	m := make(map[string]Format)
	for _, f := range formats {
		for _, ext := range registry[f].extensions {
			m[ext] = f
		}
	}
	return m
}()

// String returns the format name.
func (f Format) String() string { return string(f) }

// Enabled reports whether f is a concrete format compiled into this build.
func (f Format) Enabled() bool {
	info, ok := registry[f]
	return ok && info.enabled
}

// Extensions returns the file extensions recognized for f, without the
// leading dot. Auto and unknown formats have none.
func (f Format) Extensions() []string {
	exts := registry[f].extensions
	out := make([]string, len(exts))
	copy(out, exts)
	return out
}

// SupportsSingle reports whether f can hold a single bare record.
func (f Format) SupportsSingle() bool { return registry[f].single }

// SupportsMulti reports whether f can hold a sequence of records.
func (f Format) SupportsMulti() bool { return registry[f].multi }

func (f Format) supports(op Op) bool {
	if op.single() {
		return f.SupportsSingle()
	}
	return f.SupportsMulti()
}

// Formats returns the formats compiled into this build, in table order.
func Formats() []Format {
	out := make([]Format, 0, len(formats))
	for _, f := range formats {
		if f.Enabled() {
			out = append(out, f)
		}
	}
	return out
}

// ParseFormat parses a format name or file extension, ignoring case,
// surrounding space and a leading dot. "auto" parses to [Auto].
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))
	if Format(name) == Auto {
		return Auto, nil
	}
	f, ok := byExtension[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
	if !f.Enabled() {
		return "", errNotCompiled(f)
	}
	return f, nil
}

// Resolve returns the concrete format to use for path.
//
// An explicit format is returned as is and path is ignored. For [Auto] the
// format comes from the extension of path alone; the file content is never
// inspected.
func Resolve(f Format, path string) (Format, error) {
	if f != Auto {
		if _, ok := registry[f]; !ok {
			return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
		}
		if !f.Enabled() {
			return "", errNotCompiled(f)
		}
		return f, nil
	}
	if path == "" {
		return "", ErrAutoNotSupported
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: no extension in %q", ErrUnsupportedFormat, path)
	}
	resolved, ok := byExtension[strings.ToLower(ext)]
	if !ok {
		return "", fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, ext)
	}
	if !resolved.Enabled() {
		return "", errNotCompiled(resolved)
	}
	return resolved, nil
}

// FormatFromPath resolves the format of path from its extension.
func FormatFromPath(path string) (Format, error) {
	return Resolve(Auto, path)
}

func errNotCompiled(f Format) error {
	return fmt.Errorf("%w: %s is not compiled in", ErrUnsupportedFormat, f)
}

// Indented controls JSON and YAML indentation of the records written.
// Without it, JSON is compact and YAML uses its default indent. For a
// sequence, the first record decides.
type Indented interface {
	Indent() string
}

// Delimited sets the CSV field delimiter of the records read or written.
// Default: comma. Writing asks the first record; reading asks the zero
// value of the record type.
type Delimited interface {
	Delimiter() rune
}

func indentOf(v any) (string, bool) {
	if ind, ok := v.(Indented); ok {
		return ind.Indent(), true
	}
	return "", false
}
