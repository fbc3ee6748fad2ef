// Package printer serializes a value tree back to indented text lines.
// Output uses two-space indentation per nesting level and sorts mapping
// keys for deterministic output. Absence and empty text both render as
// the literal null; text that could be mistaken for structure or for a
// non-text scalar is wrapped in single quotes with embedded single
// quotes doubled.
package printer

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/vk/yamlite/internal/scalar"
	"github.com/vk/yamlite/internal/value"
)

// Fprint writes the rendering of v to w, starting at the given
// indentation column. Mappings and sequences render in block style;
// scalars render as a single line. Trees that block syntax cannot
// express, such as a mapping nested inside an inline sequence, fail
// with an error.
func Fprint(w io.Writer, v value.Value, indent int) error {
	p := &printer{w: w}
	p.value(v, indent)
	return p.err
}

// Sprint renders v to a string. It fails on the same trees Fprint does.
func Sprint(v value.Value, indent int) (string, error) {
	var b strings.Builder
	if err := Fprint(&b, v, indent); err != nil {
		return "", err
	}
	return b.String(), nil
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) writef(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) fail(format string, args ...any) {
	if p.err == nil {
		p.err = fmt.Errorf(format, args...)
	}
}

func (p *printer) value(v value.Value, indent int) {
	switch v.Kind() {
	case value.KindMapping:
		m, _ := v.AsMapping()
		p.mapping(m, indent)
	case value.KindSequence:
		s, _ := v.AsSequence()
		p.sequence(s, indent)
	default:
		p.writef("%s%s\n", pad(indent), p.scalarToken(v))
	}
}

func (p *printer) mapping(m value.Mapping, indent int) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := m[k]
		switch {
		case v.Kind() == value.KindMapping || v.Kind() == value.KindSequence:
			p.writef("%s%s:\n", pad(indent), k)
			p.value(v, indent+2)
		case isMultilineText(v):
			p.literalBlock(k, v, indent)
		default:
			p.writef("%s%s: %s\n", pad(indent), k, p.scalarToken(v))
		}
	}
}

func (p *printer) sequence(s value.Sequence, indent int) {
	for _, item := range s {
		switch item.Kind() {
		case value.KindMapping:
			// A bare dash followed by a deeper block keeps the item
			// recognizable as a mapping on re-parse.
			p.writef("%s-\n", pad(indent))
			p.value(item, indent+2)
		case value.KindSequence:
			p.writef("%s- %s\n", pad(indent), p.inline(item))
		default:
			if isMultilineText(item) {
				p.fail("cannot render multi-line text as a sequence item")
				return
			}
			p.writef("%s- %s\n", pad(indent), p.scalarToken(item))
		}
	}
}

// literalBlock renders multi-line text as a literal block scalar; the
// body indents two columns past the key.
func (p *printer) literalBlock(key string, v value.Value, indent int) {
	text, _ := v.AsText()
	p.writef("%s%s: |\n", pad(indent), key)
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		p.writef("%s%s\n", pad(indent+2), line)
	}
}

// inline renders a sequence in flow style for positions where block
// style has no syntax, i.e. sequences nested inside sequence items.
func (p *printer) inline(v value.Value) string {
	s, _ := v.AsSequence()
	parts := make([]string, len(s))
	for i, item := range s {
		switch item.Kind() {
		case value.KindSequence:
			parts[i] = p.inline(item)
		case value.KindMapping:
			p.fail("cannot render a mapping inside an inline sequence")
			return ""
		default:
			if isMultilineText(item) {
				p.fail("cannot render multi-line text inside an inline sequence")
				return ""
			}
			parts[i] = p.scalarToken(item)
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// scalarToken renders one scalar as it appears after "key: " or "- ".
func (p *printer) scalarToken(v value.Value) string {
	switch v.Kind() {
	case value.KindAbsence:
		return "null"
	case value.KindText:
		t, _ := v.AsText()
		if t == "" {
			return "null"
		}
		return quoteText(t)
	case value.KindInteger:
		n, _ := v.AsInt()
		return strconv.FormatInt(n, 10)
	case value.KindFloat:
		f, _ := v.AsFloat()
		return renderFloat(f)
	case value.KindBoolean:
		b, _ := v.AsBool()
		return strconv.FormatBool(b)
	default:
		return "null"
	}
}

// renderFloat formats a float so re-parsing keeps the float kind: the
// token always carries a literal decimal point.
func renderFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	case math.IsNaN(f):
		return ".nan"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.Contains(s, ".") {
		return s
	}
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		return s[:i] + ".0" + s[i:]
	}
	return s + ".0"
}

// quoteText wraps text in single quotes when printing it bare would
// change its meaning on re-parse: boolean and numeric lookalikes,
// structural characters, and leading or trailing whitespace. Embedded
// single quotes are doubled.
func quoteText(s string) string {
	if !needsQuoting(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func needsQuoting(s string) bool {
	if s == "" {
		return false
	}
	if s == "true" || s == "false" {
		return true
	}
	if scalar.IsInt(s) || scalar.IsFloat(s) {
		return true
	}
	if strings.ContainsAny(s, ":#,[]'\"") {
		return true
	}
	if s != strings.Trim(s, " \t") {
		return true
	}
	switch s[0] {
	case '-', '?', ':', '&', '*', '|', '>':
		return true
	}
	return false
}

func isMultilineText(v value.Value) bool {
	if v.Kind() != value.KindText {
		return false
	}
	t, _ := v.AsText()
	return strings.Contains(t, "\n")
}

func pad(n int) string {
	return strings.Repeat(" ", n)
}
