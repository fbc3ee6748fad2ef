package yamlerr

import "fmt"

// FileError reports that an input file could not be opened or read. It is
// raised by the I/O collaborator before parsing begins, never by the core.
type FileError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *FileError) Error() string {
	return fmt.Sprintf("cannot open or read file: %s", e.Path)
}

// Unwrap exposes the underlying I/O error.
func (e *FileError) Unwrap() error { return e.Err }

// StructuralError reports malformed block structure: a missing ':', an
// empty or duplicate key, an unterminated bracket, or a malformed anchor
// name. Line is 1-based.
type StructuralError struct {
	Line int
	Msg  string
}

// Error implements the error interface.
func (e *StructuralError) Error() string {
	return fmt.Sprintf("syntax error at line %d: %s", e.Line, e.Msg)
}

// Structuralf builds a StructuralError from a format string.
func Structuralf(line int, format string, args ...any) *StructuralError {
	return &StructuralError{Line: line, Msg: fmt.Sprintf(format, args...)}
}

// TypeMismatchError reports access to the wrong variant of a value, or a
// merge whose target is not a mapping. Expected and Actual are kind names.
type TypeMismatchError struct {
	Expected string
	Actual   string
}

// Error implements the error interface.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected %s, got %s", e.Expected, e.Actual)
}

// KeyNotFoundError reports a lookup of a key absent from a mapping.
type KeyNotFoundError struct {
	Key string
}

// Error implements the error interface.
func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key not found: %q", e.Key)
}

// IndexOutOfRangeError reports a sequence index outside [0, Length).
type IndexOutOfRangeError struct {
	Index  int
	Length int
}

// Error implements the error interface.
func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range (sequence length %d)", e.Index, e.Length)
}

// ConversionError reports a numeric literal that matched a number pattern
// but could not be converted, typically because it overflows the
// representable range.
type ConversionError struct {
	Value  string
	Target string
	Err    error
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %q to %s", e.Value, e.Target)
}

// Unwrap exposes the strconv cause.
func (e *ConversionError) Unwrap() error { return e.Err }

// AnchorNotFoundError reports a dereference or merge of an anchor name
// that has not been defined earlier in the document.
type AnchorNotFoundError struct {
	Name string
}

// Error implements the error interface.
func (e *AnchorNotFoundError) Error() string {
	return fmt.Sprintf("anchor not found: %q", e.Name)
}
