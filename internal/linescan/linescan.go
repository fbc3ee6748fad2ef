package linescan

import (
	"regexp"
	"strings"
)

// nameRe restricts anchor and alias names to a conservative identifier
// alphabet.
var nameRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Indent counts the leading space and tab characters of a raw line. The
// count is the column of the first significant character and is the only
// nesting signal the parser uses.
func Indent(line string) int {
	n := 0
	for n < len(line) && (line[n] == ' ' || line[n] == '\t') {
		n++
	}
	return n
}

// Trim strips spaces, tabs and carriage returns from both ends.
func Trim(line string) string {
	return strings.Trim(line, " \t\r")
}

// IsBlank reports whether the line holds no content after trimming.
func IsBlank(line string) bool {
	return Trim(line) == ""
}

// IsComment reports whether the line's first significant character is '#'.
func IsComment(line string) bool {
	return strings.HasPrefix(Trim(line), "#")
}

// IsSkippable reports whether the line carries no document content.
func IsSkippable(line string) bool {
	t := Trim(line)
	return t == "" || strings.HasPrefix(t, "#")
}

// IsBlockScalar reports whether a trimmed mapping value introduces a block
// scalar. Detection is deliberately permissive: anything after the leading
// '|' or '>' is ignored rather than rejected.
func IsBlockScalar(val string) bool {
	return val != "" && (val[0] == '|' || val[0] == '>')
}

// IsAnchor reports whether a trimmed mapping value declares an anchor.
func IsAnchor(val string) bool {
	return strings.HasPrefix(val, "&")
}

// IsAlias reports whether a trimmed mapping value references an anchor.
func IsAlias(val string) bool {
	return strings.HasPrefix(val, "*")
}

// IsMergeKey reports whether a mapping key is the merge marker.
func IsMergeKey(key string) bool {
	return key == "<<"
}

// IsInlineSeq reports whether a trimmed value is a bracketed inline
// sequence: both brackets present and at least one non-whitespace
// character between them. Bare "[]" is not a sequence and falls through
// to scalar handling.
func IsInlineSeq(val string) bool {
	if len(val) < 3 || val[0] != '[' || val[len(val)-1] != ']' {
		return false
	}
	return strings.TrimSpace(val[1:len(val)-1]) != ""
}

// HasInlineSeqStart reports whether a trimmed value opens a bracket,
// terminated or not.
func HasInlineSeqStart(val string) bool {
	return strings.HasPrefix(val, "[")
}

// HasDashLead reports whether a trimmed line is a sequence item line. Any
// leading dash counts; "-item" and "- item" both qualify.
func HasDashLead(trimmed string) bool {
	return strings.HasPrefix(trimmed, "-")
}

// DashPayload returns the item content after the dash, trimmed. The line
// must satisfy HasDashLead.
func DashPayload(trimmed string) string {
	return Trim(trimmed[1:])
}

// ValidName reports whether s is an acceptable anchor or alias name:
// non-empty ASCII letters, digits, underscores and hyphens.
func ValidName(s string) bool {
	return nameRe.MatchString(s)
}
