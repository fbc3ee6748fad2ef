package parser

import (
	"strings"

	"github.com/vk/yamlite/internal/linescan"
	"github.com/vk/yamlite/internal/scalar"
	"github.com/vk/yamlite/internal/value"
)

// parseInlineSeq parses a bracketed, comma-separated sequence. Elements
// that are themselves bracketed recurse; everything else goes through
// scalar inference. The value must already satisfy linescan.IsInlineSeq.
func parseInlineSeq(val string) (value.Value, error) {
	items := splitInline(val[1 : len(val)-1])

	seq := make(value.Sequence, 0, len(items))
	for _, item := range items {
		if linescan.IsInlineSeq(item) {
			nested, err := parseInlineSeq(item)
			if err != nil {
				return value.Value{}, err
			}
			seq = append(seq, nested)
			continue
		}
		v, err := scalar.Infer(item)
		if err != nil {
			return value.Value{}, err
		}
		seq = append(seq, v)
	}
	return value.Seq(seq), nil
}

// splitInline divides the bracket interior at top-level commas. Commas
// inside quotes or nested brackets do not split; quote characters stay
// part of the item so scalar inference can interpret them. A trailing
// comma yields no empty final item.
func splitInline(inner string) []string {
	var items []string
	var b strings.Builder
	inSingle, inDouble := false, false
	depth := 0

	for i := 0; i < len(inner); i++ {
		c := inner[i]
		switch {
		case c == '\'' && !inDouble:
			inSingle = !inSingle
			b.WriteByte(c)
		case c == '"' && !inSingle:
			inDouble = !inDouble
			b.WriteByte(c)
		case c == '[' && !inSingle && !inDouble:
			depth++
			b.WriteByte(c)
		case c == ']' && !inSingle && !inDouble:
			depth--
			b.WriteByte(c)
		case c == ',' && !inSingle && !inDouble && depth == 0:
			items = append(items, strings.TrimSpace(b.String()))
			b.Reset()
		default:
			b.WriteByte(c)
		}
	}
	if last := strings.TrimSpace(b.String()); last != "" {
		items = append(items, last)
	}
	return items
}
