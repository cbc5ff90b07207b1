package fs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONRoundTrip(t *testing.T) {
	s := newTestService(t)
	path := filepath.Join(t.TempDir(), "settings.json")

	data := map[string]interface{}{
		"theme":     "dark",
		"font_size": 14,
		"plugins":   []interface{}{"lsp", "git"},
	}
	_, err := s.WriteJSON(path, data, true)
	require.NoError(t, err)

	got, err := s.ReadJSON(path)
	require.NoError(t, err)
	m, ok := got.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "dark", m["theme"])
	assert.Len(t, m["plugins"], 2)
}

func TestReadJSONMalformed(t *testing.T) {
	s := newTestService(t)
	path := filepath.Join(t.TempDir(), "broken.json")
	_, err := s.WriteFile(path, "{not json")
	require.NoError(t, err)

	_, err = s.ReadJSON(path)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindIOError, kind)
}

func TestYAMLRoundTrip(t *testing.T) {
	s := newTestService(t)
	path := filepath.Join(t.TempDir(), "config.yaml")

	data := map[string]interface{}{
		"name":    "codeforge",
		"workers": 4,
	}
	_, err := s.WriteYAML(path, data)
	require.NoError(t, err)

	got, err := s.ReadYAML(path)
	require.NoError(t, err)
	m, ok := got.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "codeforge", m["name"])
}

func TestTOMLRoundTrip(t *testing.T) {
	s := newTestService(t)
	path := filepath.Join(t.TempDir(), "project.toml")

	data := map[string]interface{}{
		"title":   "demo",
		"version": "0.1.0",
	}
	_, err := s.WriteTOML(path, data)
	require.NoError(t, err)

	got, err := s.ReadTOML(path)
	require.NoError(t, err)
	m, ok := got.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "demo", m["title"])
	assert.Equal(t, "0.1.0", m["version"])
}

func TestReadJSONNotFound(t *testing.T) {
	s := newTestService(t)

	_, err := s.ReadJSON(filepath.Join(t.TempDir(), "nope.json"))
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, kind)
}
