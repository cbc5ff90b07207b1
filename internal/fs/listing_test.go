package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDirectoryOrdering(t *testing.T) {
	s := newTestService(t)
	dir := t.TempDir()

	// Directories A and B, files a.txt and b.txt. Expected order puts
	// directories first, then files, each tier case-insensitive.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("b"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "A"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "B"), 0o755))

	listing, err := s.ListDirectory(dir, false)
	require.NoError(t, err)

	names := make([]string, len(listing.Entries))
	for i, e := range listing.Entries {
		names[i] = e.Name
	}
	assert.Equal(t, []string{"A", "B", "a.txt", "b.txt"}, names)
	assert.Equal(t, 4, listing.TotalCount)
	assert.Equal(t, 0, listing.HiddenCount)
}

func TestListDirectoryHidden(t *testing.T) {
	s := newTestService(t)
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "visible.txt"), []byte("v"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("h"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))

	listing, err := s.ListDirectory(dir, false)
	require.NoError(t, err)
	assert.Equal(t, 1, listing.TotalCount)
	assert.Equal(t, 2, listing.HiddenCount)
	for _, e := range listing.Entries {
		assert.NotEqual(t, byte('.'), e.Name[0])
	}

	// hidden_count is the same whether or not hidden entries are kept.
	listing, err = s.ListDirectory(dir, true)
	require.NoError(t, err)
	assert.Equal(t, 3, listing.TotalCount)
	assert.Equal(t, 2, listing.HiddenCount)
}

func TestListDirectoryEntryShape(t *testing.T) {
	s := newTestService(t)
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main\n"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "docs"), 0o755))

	listing, err := s.ListDirectory(dir, false)
	require.NoError(t, err)
	require.Len(t, listing.Entries, 2)

	docs := listing.Entries[0]
	assert.Equal(t, "docs", docs.Name)
	assert.True(t, docs.IsDirectory)
	assert.Nil(t, docs.Size)
	assert.Equal(t, "folder", docs.Icon)

	file := listing.Entries[1]
	assert.Equal(t, "main.go", file.Name)
	assert.False(t, file.IsDirectory)
	require.NotNil(t, file.Size)
	assert.Equal(t, uint64(len("package main\n")), *file.Size)
	assert.Equal(t, "go", file.Icon)
	assert.NotNil(t, file.Modified)
	assert.Equal(t, filepath.Join(dir, "main.go"), file.Path)
}

func TestListDirectoryNotFound(t *testing.T) {
	s := newTestService(t)

	_, err := s.ListDirectory(filepath.Join(t.TempDir(), "nope"), false)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, kind)
}

func TestListDirectoryOnFile(t *testing.T) {
	s := newTestService(t)
	path := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := s.ListDirectory(path, false)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindInvalidPath, kind)
}

func TestListDirectoryEmpty(t *testing.T) {
	s := newTestService(t)

	listing, err := s.ListDirectory(t.TempDir(), true)
	require.NoError(t, err)
	assert.Empty(t, listing.Entries)
	assert.Equal(t, 0, listing.TotalCount)
	assert.Equal(t, 0, listing.HiddenCount)
}
