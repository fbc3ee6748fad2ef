package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/yamlite/internal/app"
	"github.com/vk/yamlite/internal/testutil"
)

// Test for: literal and folded block scalars
func TestScalars_BlockScalarsThroughJSON(t *testing.T) {
	// --- Arrange ---
	files := map[string]string{
		"doc.yaml": `description: |
  line one
  line two
summary: >
  folded
  text
`,
	}

	// --- Act ---
	res := testutil.RunConversion(t, files, app.Config{
		InputPath: "doc.yaml",
		Format:    app.FormatJSON,
	})

	// --- Assert ---
	// Literal keeps newlines, folded joins with spaces.
	require.NoError(t, res.Err)
	expected := "{\n" +
		"  \"description\": \"line one\\nline two\\n\",\n" +
		"  \"summary\": \"folded text\"\n" +
		"}\n"
	assert.Equal(t, expected, res.Output)
}

// Test for: inline sequences keep scalar typing
func TestScalars_InlineSequenceTyping(t *testing.T) {
	// --- Arrange ---
	files := map[string]string{
		"doc.yaml": "mixed: [1, two, true, 'four', 2.5]\n",
	}

	// --- Act ---
	res := testutil.RunConversion(t, files, app.Config{
		InputPath: "doc.yaml",
		Format:    app.FormatJSON,
		GetPath:   "mixed",
	})

	// --- Assert ---
	require.NoError(t, res.Err)
	expected := "[\n" +
		"  1,\n" +
		"  \"two\",\n" +
		"  true,\n" +
		"  \"four\",\n" +
		"  2.5\n" +
		"]\n"
	assert.Equal(t, expected, res.Output)
}

// Test for: quoting suppresses type inference
func TestScalars_QuotedScalarsStayText(t *testing.T) {
	// --- Arrange ---
	files := map[string]string{
		"doc.yaml": `port: '8080'
enabled: "true"
version: 1.21
`,
	}

	// --- Act ---
	res := testutil.RunConversion(t, files, app.Config{
		InputPath: "doc.yaml",
		Format:    app.FormatJSON,
	})

	// --- Assert ---
	require.NoError(t, res.Err)
	expected := "{\n" +
		"  \"enabled\": \"true\",\n" +
		"  \"port\": \"8080\",\n" +
		"  \"version\": 1.21\n" +
		"}\n"
	assert.Equal(t, expected, res.Output)
}

// Test for: comments are stripped only outside quotes
func TestScalars_CommentHandling(t *testing.T) {
	// --- Arrange ---
	files := map[string]string{
		"doc.yaml": `plain: hello # trailing comment
quoted: 'keep # this'
`,
	}

	// --- Act ---
	res := testutil.RunConversion(t, files, app.Config{
		InputPath: "doc.yaml",
		Format:    app.FormatJSON,
	})

	// --- Assert ---
	require.NoError(t, res.Err)
	expected := "{\n" +
		"  \"plain\": \"hello\",\n" +
		"  \"quoted\": \"keep # this\"\n" +
		"}\n"
	assert.Equal(t, expected, res.Output)
}

// Test for: nested sequences of mappings
func TestScalars_SequenceOfMappings(t *testing.T) {
	// --- Arrange ---
	files := map[string]string{
		"doc.yaml": `clusters:
  - name: alpha
    replicas: 3
  - name: beta
    replicas: 5
`,
	}

	// --- Act ---
	res := testutil.RunConversion(t, files, app.Config{
		InputPath: "doc.yaml",
		Format:    app.FormatJSON,
		GetPath:   "clusters[1]",
	})

	// --- Assert ---
	require.NoError(t, res.Err)
	expected := "{\n" +
		"  \"name\": \"beta\",\n" +
		"  \"replicas\": 5\n" +
		"}\n"
	assert.Equal(t, expected, res.Output)
}
