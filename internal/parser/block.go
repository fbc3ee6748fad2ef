package parser

import (
	"strings"

	"github.com/vk/yamlite/internal/linescan"
)

// parseBlockScalar collects the body of a block scalar starting at start.
// A line continues the block while it is indented strictly deeper than
// the introducer line; blank lines continue it only when deeper content
// follows them, so trailing blanks after the body end the block instead
// of padding it. Each continuation line contributes its trimmed content.
// Literal style joins segments with newlines and keeps a trailing
// newline; folded style joins with single spaces and emits no trailing
// separator. Comment markers inside the body are content, not comments.
func (p *parser) parseBlockScalar(start, introIndent int, style byte) (string, int) {
	var segments []string

	i := start
	for i < len(p.lines) {
		line := p.lines[i]
		if linescan.IsBlank(line) {
			j := i
			for j < len(p.lines) && linescan.IsBlank(p.lines[j]) {
				j++
			}
			if j >= len(p.lines) || linescan.Indent(p.lines[j]) <= introIndent {
				break
			}
			for ; i < j; i++ {
				segments = append(segments, "")
			}
			continue
		}
		if linescan.Indent(line) <= introIndent {
			break
		}
		segments = append(segments, linescan.Trim(line))
		i++
	}

	if style == '|' {
		var b strings.Builder
		for _, seg := range segments {
			b.WriteString(seg)
			b.WriteByte('\n')
		}
		return b.String(), i
	}
	return strings.Join(segments, " "), i
}
