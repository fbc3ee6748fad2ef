package yamlite_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/yamlite"
)

func TestParseString(t *testing.T) {
	t.Parallel()
	doc, err := yamlite.ParseString(context.Background(), "host: localhost\nport: 8080\n")
	require.NoError(t, err)

	host, err := doc.Get("host")
	require.NoError(t, err)
	text, err := host.AsText()
	require.NoError(t, err)
	assert.Equal(t, "localhost", text)

	port, err := doc.Get("port")
	require.NoError(t, err)
	n, err := port.AsInt()
	require.NoError(t, err)
	assert.Equal(t, int64(8080), n)
}

func TestParseReader(t *testing.T) {
	t.Parallel()
	doc, err := yamlite.Parse(context.Background(), strings.NewReader("flag: true\n"))
	require.NoError(t, err)

	flag, err := doc.Get("flag")
	require.NoError(t, err)
	assert.Equal(t, yamlite.KindBoolean, flag.Kind())
}

func TestLoadReportsFileError(t *testing.T) {
	t.Parallel()
	_, err := yamlite.Load(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)

	var fileErr *yamlite.FileError
	assert.ErrorAs(t, err, &fileErr)
}

func TestLoadDir(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("name: a\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yml"), []byte("name: b\n"), 0o644))

	results, err := yamlite.LoadDir(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, filepath.Join(dir, "a.yaml"), results[0].Path)
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()
	input := []byte("host: localhost\nport: 8080\ntags:\n  - a\n  - b\n")

	var cfg struct {
		Host string   `yaml:"host"`
		Port int      `yaml:"port"`
		Tags []string `yaml:"tags"`
	}
	require.NoError(t, yamlite.Unmarshal(context.Background(), input, &cfg))
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, []string{"a", "b"}, cfg.Tags)
}

func TestLookup(t *testing.T) {
	t.Parallel()
	doc, err := yamlite.ParseString(context.Background(), "server:\n  ports:\n    - 80\n    - 443\n")
	require.NoError(t, err)

	got, err := yamlite.Lookup(doc.Root(), "server.ports[1]")
	require.NoError(t, err)
	n, err := got.AsInt()
	require.NoError(t, err)
	assert.Equal(t, int64(443), n)

	_, err = yamlite.Lookup(doc.Root(), "server.missing")
	var notFound *yamlite.KeyNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestSprintNormalizes(t *testing.T) {
	t.Parallel()
	doc, err := yamlite.ParseString(context.Background(), "b: 2 # comment\na: 1\n")
	require.NoError(t, err)

	out, err := yamlite.Sprint(doc.Root())
	require.NoError(t, err)
	assert.Equal(t, "a: 1\nb: 2\n", out)
}

func TestFprint(t *testing.T) {
	t.Parallel()
	doc, err := yamlite.ParseString(context.Background(), "items:\n  - x\n  - y\n")
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, yamlite.Fprint(&sb, doc.Root()))
	assert.Equal(t, "items:\n  - x\n  - y\n", sb.String())
}
