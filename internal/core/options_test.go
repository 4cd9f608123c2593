package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOptions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	content := `
sim: elementary
options:
  w: 128
  h: 64
  rule: 0b01101110
  prefill: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	f, err := LoadOptions(path)
	require.NoError(t, err)
	assert.Equal(t, "elementary", f.Sim)

	m := f.StringMap()
	assert.Equal(t, "128", m["w"])
	assert.Equal(t, "64", m["h"])
	assert.Equal(t, "false", m["prefill"])
	assert.Contains(t, []string{"110", "0b01101110"}, m["rule"])
}

func TestParseOptionsRejectsUnknownFields(t *testing.T) {
	_, err := ParseOptions([]byte("sim: elementary\nspeed: 3\n"))
	require.Error(t, err)
}

func TestLoadOptionsMissingFile(t *testing.T) {
	_, err := LoadOptions(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read options")
}

func TestStringMapEmpty(t *testing.T) {
	f, err := ParseOptions([]byte("sim: elementary\n"))
	require.NoError(t, err)
	assert.Empty(t, f.StringMap())
}
