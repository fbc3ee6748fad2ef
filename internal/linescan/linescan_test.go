package linescan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vk/yamlite/internal/linescan"
)

func TestIndent(t *testing.T) {
	testCases := []struct {
		name string
		line string
		want int
	}{
		{name: "no indent", line: "key: value", want: 0},
		{name: "two spaces", line: "  key: value", want: 2},
		{name: "deep indent", line: "      - item", want: 6},
		{name: "tab counts as one column", line: "\tkey: value", want: 1},
		{name: "mixed spaces and tabs", line: "  \tkey", want: 3},
		{name: "empty line", line: "", want: 0},
		{name: "all spaces", line: "    ", want: 4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, linescan.Indent(tc.line))
		})
	}
}

func TestTrim(t *testing.T) {
	assert.Equal(t, "key: value", linescan.Trim("  key: value \t"))
	assert.Equal(t, "x", linescan.Trim("x\r"))
	assert.Equal(t, "", linescan.Trim(" \t\r"))
	assert.Equal(t, "a b", linescan.Trim("a b"))
}

func TestSkippable(t *testing.T) {
	testCases := []struct {
		name    string
		line    string
		blank   bool
		comment bool
	}{
		{name: "empty", line: "", blank: true, comment: false},
		{name: "whitespace only", line: "   \t", blank: true, comment: false},
		{name: "full comment", line: "# a note", blank: false, comment: true},
		{name: "indented comment", line: "    # nested note", blank: false, comment: true},
		{name: "content", line: "key: value", blank: false, comment: false},
		{name: "hash mid-line is not a comment line", line: "key: v # tail", blank: false, comment: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.blank, linescan.IsBlank(tc.line))
			assert.Equal(t, tc.comment, linescan.IsComment(tc.line))
			assert.Equal(t, tc.blank || tc.comment, linescan.IsSkippable(tc.line))
		})
	}
}

func TestValueMarkers(t *testing.T) {
	assert.True(t, linescan.IsBlockScalar("|"))
	assert.True(t, linescan.IsBlockScalar(">"))
	assert.True(t, linescan.IsBlockScalar("|-"))
	assert.True(t, linescan.IsBlockScalar(">trailing junk"))
	assert.False(t, linescan.IsBlockScalar(""))
	assert.False(t, linescan.IsBlockScalar("x|"))

	assert.True(t, linescan.IsAnchor("&base"))
	assert.False(t, linescan.IsAnchor("base"))

	assert.True(t, linescan.IsAlias("*base"))
	assert.False(t, linescan.IsAlias("base"))

	assert.True(t, linescan.IsMergeKey("<<"))
	assert.False(t, linescan.IsMergeKey("<<<"))
	assert.False(t, linescan.IsMergeKey("key"))
}

func TestInlineSeq(t *testing.T) {
	testCases := []struct {
		name  string
		val   string
		full  bool
		start bool
	}{
		{name: "terminated", val: "[a, b]", full: true, start: true},
		{name: "single element", val: "[x]", full: true, start: true},
		{name: "empty brackets are not a sequence", val: "[]", full: false, start: true},
		{name: "whitespace interior is not a sequence", val: "[  ]", full: false, start: true},
		{name: "unterminated", val: "[a, b", full: false, start: true},
		{name: "lone bracket", val: "[", full: false, start: true},
		{name: "plain scalar", val: "abc", full: false, start: false},
		{name: "closing only", val: "a]", full: false, start: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.full, linescan.IsInlineSeq(tc.val))
			assert.Equal(t, tc.start, linescan.HasInlineSeqStart(tc.val))
		})
	}
}

func TestDashLead(t *testing.T) {
	testCases := []struct {
		name    string
		trimmed string
		lead    bool
		payload string
	}{
		{name: "item with content", trimmed: "- apple", lead: true, payload: "apple"},
		{name: "bare dash", trimmed: "-", lead: true, payload: ""},
		{name: "dash without space still leads", trimmed: "-item", lead: true, payload: "item"},
		{name: "negative number payload", trimmed: "- -3", lead: true, payload: "-3"},
		{name: "plain line", trimmed: "key: value", lead: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.lead, linescan.HasDashLead(tc.trimmed))
			if tc.lead {
				assert.Equal(t, tc.payload, linescan.DashPayload(tc.trimmed))
			}
		})
	}
}

func TestValidName(t *testing.T) {
	assert.True(t, linescan.ValidName("base"))
	assert.True(t, linescan.ValidName("node-1_a"))
	assert.False(t, linescan.ValidName(""))
	assert.False(t, linescan.ValidName("has space"))
	assert.False(t, linescan.ValidName("dot.ted"))
	assert.False(t, linescan.ValidName("*deref"))
}
