package anchor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/yamlite/internal/anchor"
	"github.com/vk/yamlite/internal/value"
	"github.com/vk/yamlite/internal/yamlerr"
)

func TestDefineAndResolve(t *testing.T) {
	table := anchor.NewTable()
	table.Define("base", value.Map(value.Mapping{"timeout": value.Int(30)}))

	require.True(t, table.Has("base"))
	assert.Equal(t, 1, table.Len())

	got, err := table.Resolve("base")
	require.NoError(t, err)
	timeout, err := got.Get("timeout")
	require.NoError(t, err)
	n, err := timeout.AsInt()
	require.NoError(t, err)
	assert.Equal(t, int64(30), n)
}

func TestResolveUndefined(t *testing.T) {
	table := anchor.NewTable()

	_, err := table.Resolve("ghost")
	var notFound *yamlerr.AnchorNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "ghost", notFound.Name)
	assert.False(t, table.Has("ghost"))
}

func TestDefineStoresCopy(t *testing.T) {
	table := anchor.NewTable()
	source := value.Mapping{"k": value.Text("original")}
	table.Define("a", value.Map(source))

	// Mutating the source after definition must not leak into the table.
	source["k"] = value.Text("mutated")

	got, err := table.Resolve("a")
	require.NoError(t, err)
	k, err := got.Get("k")
	require.NoError(t, err)
	s, err := k.AsText()
	require.NoError(t, err)
	assert.Equal(t, "original", s)
}

func TestResolveReturnsIndependentCopies(t *testing.T) {
	table := anchor.NewTable()
	table.Define("a", value.Map(value.Mapping{"k": value.Int(1)}))

	first, err := table.Resolve("a")
	require.NoError(t, err)
	firstMap, err := first.AsMapping()
	require.NoError(t, err)
	firstMap["k"] = value.Int(99)

	second, err := table.Resolve("a")
	require.NoError(t, err)
	k, err := second.Get("k")
	require.NoError(t, err)
	n, err := k.AsInt()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestRedefinition(t *testing.T) {
	table := anchor.NewTable()
	table.Define("a", value.Int(1))

	early, err := table.Resolve("a")
	require.NoError(t, err)

	table.Define("b", value.Int(2))
	table.Define("a", value.Int(3))

	// Copies resolved before the redefinition keep the old value.
	n, err := early.AsInt()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	late, err := table.Resolve("a")
	require.NoError(t, err)
	n, err = late.AsInt()
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	// The name keeps its first-definition position.
	assert.Equal(t, []string{"a", "b"}, table.Names())
	assert.Equal(t, 2, table.Len())
}

func TestNamesIsACopy(t *testing.T) {
	table := anchor.NewTable()
	table.Define("x", value.Null())

	names := table.Names()
	names[0] = "tampered"

	assert.Equal(t, []string{"x"}, table.Names())
}
