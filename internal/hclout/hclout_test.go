package hclout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/yamlite/internal/value"
)

func TestRenderFlatMapping(t *testing.T) {
	doc := value.Map(value.Mapping{
		"name":  value.Text("demo"),
		"count": value.Int(3),
		"debug": value.Bool(true),
	})

	got, err := Render(doc)
	require.NoError(t, err)

	expected := "count = 3\ndebug = true\nname  = \"demo\"\n"
	assert.Equal(t, expected, string(got))
}

func TestRenderNestedContainers(t *testing.T) {
	doc := value.Map(value.Mapping{
		"server": value.Map(value.Mapping{
			"host": value.Text("localhost"),
			"port": value.Int(8080),
		}),
		"tags": value.Seq(value.Sequence{value.Text("a"), value.Text("b")}),
	})

	got, err := Render(doc)
	require.NoError(t, err)

	expected := "server = {\n" +
		"  host = \"localhost\"\n" +
		"  port = 8080\n" +
		"}\n" +
		"tags = [\"a\", \"b\"]\n"
	assert.Equal(t, expected, string(got))
}

func TestRenderSequenceRoot(t *testing.T) {
	doc := value.Seq(value.Sequence{value.Int(1), value.Int(2), value.Text("three")})

	got, err := Render(doc)
	require.NoError(t, err)

	assert.Equal(t, "items = [1, 2, \"three\"]\n", string(got))
}

func TestRenderScalarRoot(t *testing.T) {
	got, err := Render(value.Text("hello"))
	require.NoError(t, err)

	assert.Equal(t, "value = \"hello\"\n", string(got))
}

func TestRenderNullRoot(t *testing.T) {
	got, err := Render(value.Null())
	require.NoError(t, err)

	assert.Equal(t, "value = null\n", string(got))
}

func TestRenderEmptyContainers(t *testing.T) {
	doc := value.Map(value.Mapping{
		"obj":  value.Map(value.Mapping{}),
		"list": value.Seq(value.Sequence{}),
	})

	got, err := Render(doc)
	require.NoError(t, err)

	assert.Equal(t, "list = []\nobj  = {}\n", string(got))
}

func TestRenderRejectsInvalidRootKey(t *testing.T) {
	for _, key := range []string{"my key", "1abc", "a:b", ""} {
		t.Run(key, func(t *testing.T) {
			doc := value.Map(value.Mapping{key: value.Int(1)})
			_, err := Render(doc)
			assert.Error(t, err)
		})
	}
}

func TestRenderQuotesNestedNonIdentifierKeys(t *testing.T) {
	doc := value.Map(value.Mapping{
		"outer": value.Map(value.Mapping{"my key": value.Int(1)}),
	})

	got, err := Render(doc)
	require.NoError(t, err)

	expected := "outer = {\n  \"my key\" = 1\n}\n"
	assert.Equal(t, expected, string(got))
}

func TestRenderBlocks(t *testing.T) {
	docs := []Document{
		{Name: "app.yaml", Value: value.Map(value.Mapping{"name": value.Text("app")})},
		{Name: "sub/db.yml", Value: value.Map(value.Mapping{"port": value.Int(5432)})},
	}

	got, err := RenderBlocks(docs)
	require.NoError(t, err)

	expected := "document \"app.yaml\" {\n" +
		"  name = \"app\"\n" +
		"}\n" +
		"\n" +
		"document \"sub/db.yml\" {\n" +
		"  port = 5432\n" +
		"}\n"
	assert.Equal(t, expected, string(got))
}

func TestRenderBlocksInvalidNestedKey(t *testing.T) {
	docs := []Document{
		{Name: "bad.yaml", Value: value.Map(value.Mapping{"not an ident": value.Int(1)})},
	}

	_, err := RenderBlocks(docs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yaml")
}

func TestRenderValue(t *testing.T) {
	got, err := RenderValue("result", value.Seq(value.Sequence{value.Int(80), value.Int(443)}))
	require.NoError(t, err)
	assert.Equal(t, "result = [80, 443]\n", string(got))

	_, err = RenderValue("not valid", value.Int(1))
	assert.Error(t, err)
}
