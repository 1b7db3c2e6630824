package schemafile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const customYAML = `
classes:
  - fields:
      - name: irt
        type: name
        flags: primary_key
      - name: address
        flags: multiple
      - name: e-mail
        type: email
        flags: [multiple]
      - name: mnt-by
        type: name
        list: true
        flags: [lookup_key, multiple]
      - name: source
        type: source
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(customYAML))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version) // Default version
	require.Len(t, f.Classes, 1)

	c := f.Classes[0]
	assert.Equal(t, "irt", c.Class)
	assert.Equal(t, DefaultHook, c.Hook)
	require.Len(t, c.Fields, 5)

	assert.Equal(t, "text", c.Fields[1].Type)
	assert.Equal(t, StringOrArray{FlagPrimaryKey}, c.Fields[0].Flags)
	assert.Equal(t, StringOrArray{FlagMultiple}, c.Fields[2].Flags)
	assert.True(t, c.Fields[3].List)
	assert.Empty(t, c.Fields[4].Flags)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("classes: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse schema YAML")
}

func TestParse_FlagsNotStringOrList(t *testing.T) {
	_, err := Parse([]byte("classes:\n  - fields:\n      - name: a\n        flags: {x: y}\n"))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "irt.yaml")
	require.NoError(t, os.WriteFile(path, []byte(customYAML), 0o600))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "irt", f.Classes[0].Class)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read schema file")
}

func TestMarshal(t *testing.T) {
	f, err := Parse([]byte(customYAML))
	require.NoError(t, err)

	data, err := Marshal(f)
	require.NoError(t, err)
	assert.Contains(t, string(data), "flags: primary_key")
	assert.Contains(t, string(data), "- lookup_key")

	// Verify round-trip
	parsed, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, f, parsed)
}

func TestStringOrArray(t *testing.T) {
	single := StringOrArray{"optional"}
	data, err := single.MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, "optional", data)

	multi := StringOrArray{"optional", "multiple"}
	data, err = multi.MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, []string{"optional", "multiple"}, data)

	assert.True(t, multi.Contains("multiple"))
	assert.False(t, multi.Contains("primary_key"))
}
