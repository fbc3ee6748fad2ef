package yamlite

import (
	"context"
	"fmt"
	"io"

	"github.com/vk/yamlite/internal/decode"
	"github.com/vk/yamlite/internal/docpath"
	"github.com/vk/yamlite/internal/loader"
	"github.com/vk/yamlite/internal/parser"
	"github.com/vk/yamlite/internal/printer"
	"github.com/vk/yamlite/internal/value"
	"github.com/vk/yamlite/internal/yamlerr"
)

// Value is a node of a parsed document tree.
type Value = value.Value

// Kind identifies the active variant of a Value.
type Kind = value.Kind

const (
	KindAbsence  = value.KindAbsence
	KindText     = value.KindText
	KindInteger  = value.KindInteger
	KindFloat    = value.KindFloat
	KindBoolean  = value.KindBoolean
	KindSequence = value.KindSequence
	KindMapping  = value.KindMapping
)

// Document is a parsed document with its anchor table.
type Document = parser.Document

// Result pairs a loaded document with the file path it came from.
type Result = loader.Result

// Error types returned by parsing, loading and value access. Callers match
// them with errors.As.
type (
	FileError            = yamlerr.FileError
	StructuralError      = yamlerr.StructuralError
	TypeMismatchError    = yamlerr.TypeMismatchError
	KeyNotFoundError     = yamlerr.KeyNotFoundError
	IndexOutOfRangeError = yamlerr.IndexOutOfRangeError
	ConversionError      = yamlerr.ConversionError
	AnchorNotFoundError  = yamlerr.AnchorNotFoundError
)

// Parse reads a whole document from r.
func Parse(ctx context.Context, r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return loader.Bytes(ctx, data)
}

// ParseString parses a document held in a string.
func ParseString(ctx context.Context, text string) (*Document, error) {
	return loader.String(ctx, text)
}

// ParseBytes parses a document held in a byte slice.
func ParseBytes(ctx context.Context, data []byte) (*Document, error) {
	return loader.Bytes(ctx, data)
}

// ParseLines parses a document from pre-split lines.
func ParseLines(ctx context.Context, lines []string) (*Document, error) {
	return parser.Parse(ctx, lines)
}

// Load reads and parses the file at path. A file that cannot be read is
// reported as a *FileError.
func Load(ctx context.Context, path string) (*Document, error) {
	return loader.File(ctx, path)
}

// LoadDir finds every .yaml and .yml file under root and parses them
// concurrently. Results come back in sorted path order.
func LoadDir(ctx context.Context, root string) ([]Result, error) {
	return loader.Dir(ctx, root)
}

// Unmarshal parses data and decodes the resulting tree into the struct
// pointed to by target. Fields map to mapping keys by lowercased name,
// overridden by a `yaml:"name"` tag; `yaml:"-"` skips a field.
func Unmarshal(ctx context.Context, data []byte, target any) error {
	doc, err := loader.Bytes(ctx, data)
	if err != nil {
		return err
	}
	return decode.Unmarshal(ctx, doc.Root(), target)
}

// Lookup walks v along a dotted path such as "server.ports[0]" and returns
// the value it lands on.
func Lookup(v Value, path string) (Value, error) {
	return docpath.LookupString(v, path)
}

// Fprint writes v to w in normalized form: two-space indentation, sorted
// mapping keys, block scalars for multiline text.
func Fprint(w io.Writer, v Value) error {
	return printer.Fprint(w, v, 0)
}

// Sprint renders v to a string in the same form as Fprint.
func Sprint(v Value) (string, error) {
	return printer.Sprint(v, 0)
}
