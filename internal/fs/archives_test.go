package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTree(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "src")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("alpha"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "b.txt"), []byte("beta"), 0o644))
	return dir
}

func TestZipRoundTrip(t *testing.T) {
	s := newTestService(t)
	src := makeTree(t)
	archive := filepath.Join(t.TempDir(), "bundle.zip")
	out := filepath.Join(t.TempDir(), "out")

	res, err := s.CreateZip(src, archive)
	require.NoError(t, err)
	assert.True(t, res.Success)

	_, err = s.ExtractZip(archive, out)
	require.NoError(t, err)

	a, err := s.ReadFile(filepath.Join(out, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "alpha", a.Content)

	b, err := s.ReadFile(filepath.Join(out, "sub", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "beta", b.Content)
}

func TestZipSingleFile(t *testing.T) {
	s := newTestService(t)
	dir := t.TempDir()
	src := filepath.Join(dir, "solo.txt")
	require.NoError(t, os.WriteFile(src, []byte("just me"), 0o644))
	archive := filepath.Join(dir, "solo.zip")
	out := filepath.Join(dir, "out")

	_, err := s.CreateZip(src, archive)
	require.NoError(t, err)

	_, err = s.ExtractZip(archive, out)
	require.NoError(t, err)

	got, err := s.ReadFile(filepath.Join(out, "solo.txt"))
	require.NoError(t, err)
	assert.Equal(t, "just me", got.Content)
}

func TestTarGzRoundTrip(t *testing.T) {
	s := newTestService(t)
	src := makeTree(t)
	archive := filepath.Join(t.TempDir(), "bundle.tar.gz")
	out := filepath.Join(t.TempDir(), "out")

	_, err := s.CreateTarGz(src, archive)
	require.NoError(t, err)

	_, err = s.ExtractTarGz(archive, out)
	require.NoError(t, err)

	b, err := s.ReadFile(filepath.Join(out, "sub", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "beta", b.Content)
}

func TestCreateZipMissingSource(t *testing.T) {
	s := newTestService(t)

	_, err := s.CreateZip(filepath.Join(t.TempDir(), "nope"), filepath.Join(t.TempDir(), "x.zip"))
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, kind)
}

func TestSecurePath(t *testing.T) {
	base := filepath.Join(string(os.PathSeparator), "safe", "root")

	p, err := securePath(base, "inner/file.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "inner", "file.txt"), p)

	_, err = securePath(base, "../escape.txt")
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindInvalidPath, kind)
}
