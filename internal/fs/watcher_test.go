package fs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// waitForEvent reads the channel until an event of the given type and
// path arrives or the timeout expires.
func waitForEvent(t *testing.T, ch <-chan WatchEvent, typ WatchEventType, path string) bool {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return false
			}
			if ev.Type == typ && ev.Path == path {
				return true
			}
		case <-deadline:
			return false
		}
	}
}

func TestWatchDirectoryCreate(t *testing.T) {
	s := newTestService(t)
	dir := t.TempDir()

	h, err := s.WatchDirectory(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, h.Path())

	target := filepath.Join(dir, "new.txt")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))

	assert.True(t, waitForEvent(t, h.Events(), EventCreated, target),
		"expected a created event for %s", target)
}

func TestWatchDirectoryRecursive(t *testing.T) {
	s := newTestService(t)
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))

	h, err := s.WatchDirectory(dir)
	require.NoError(t, err)

	// Pre-existing subdirectory is covered by the walk at start.
	target := filepath.Join(sub, "deep.txt")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))
	assert.True(t, waitForEvent(t, h.Events(), EventCreated, target))
}

func TestWatchDirectoryNewSubdir(t *testing.T) {
	s := newTestService(t)
	dir := t.TempDir()

	h, err := s.WatchDirectory(dir)
	require.NoError(t, err)

	// Directories created after the watch starts must be picked up.
	sub := filepath.Join(dir, "later")
	require.NoError(t, os.Mkdir(sub, 0o755))
	require.True(t, waitForEvent(t, h.Events(), EventCreated, sub))

	// The watcher needs a moment to register the new directory.
	time.Sleep(100 * time.Millisecond)

	target := filepath.Join(sub, "inside.txt")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))
	assert.True(t, waitForEvent(t, h.Events(), EventCreated, target))
}

func TestWatchDirectoryDelete(t *testing.T) {
	s := newTestService(t)
	dir := t.TempDir()
	target := filepath.Join(dir, "doomed.txt")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))

	h, err := s.WatchDirectory(dir)
	require.NoError(t, err)

	require.NoError(t, os.Remove(target))
	assert.True(t, waitForEvent(t, h.Events(), EventDeleted, target))
}

func TestWatchDirectoryNotFound(t *testing.T) {
	s := newTestService(t)

	_, err := s.WatchDirectory(filepath.Join(t.TempDir(), "nope"))
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, kind)
}

func TestWatchDirectoryOnFile(t *testing.T) {
	s := newTestService(t)
	path := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := s.WatchDirectory(path)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindInvalidPath, kind)
}

func TestWatchReplacesExisting(t *testing.T) {
	s := newTestService(t)
	dir := t.TempDir()

	first, err := s.WatchDirectory(dir)
	require.NoError(t, err)

	second, err := s.WatchDirectory(dir)
	require.NoError(t, err)
	assert.NotSame(t, first, second)

	// The replaced watch's channel closes.
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-first.Events():
			return !ok
		default:
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)

	assert.Equal(t, []string{dir}, s.WatchedPaths())
}

func TestStopWatching(t *testing.T) {
	s := newTestService(t)
	dir := t.TempDir()

	h, err := s.WatchDirectory(dir)
	require.NoError(t, err)

	require.NoError(t, s.StopWatching(dir))
	assert.Empty(t, s.WatchedPaths())

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-h.Events():
			return !ok
		default:
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)
}

func TestStopWatchingUnknownPath(t *testing.T) {
	s := newTestService(t)

	err := s.StopWatching(t.TempDir())
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, kind)
}

func TestCloseStopsAllWatches(t *testing.T) {
	s := newTestService(t)

	h1, err := s.WatchDirectory(t.TempDir())
	require.NoError(t, err)
	h2, err := s.WatchDirectory(t.TempDir())
	require.NoError(t, err)

	s.Close()
	assert.Empty(t, s.WatchedPaths())

	for _, h := range []*WatchHandle{h1, h2} {
		require.Eventually(t, func() bool {
			select {
			case _, ok := <-h.Events():
				return !ok
			default:
				return false
			}
		}, 5*time.Second, 10*time.Millisecond)
	}
}

func TestMapEventType(t *testing.T) {
	tests := []struct {
		op   fsnotify.Op
		want WatchEventType
	}{
		{fsnotify.Create, EventCreated},
		{fsnotify.Write, EventModified},
		{fsnotify.Remove, EventDeleted},
		{fsnotify.Rename, EventRenamed},
		{fsnotify.Chmod, EventOther},
		{fsnotify.Create | fsnotify.Write, EventCreated},
		{fsnotify.Write | fsnotify.Chmod, EventModified},
		{0, EventOther},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mapEventType(tt.op), tt.op.String())
	}
}

func TestPublishDropsOldestWhenFull(t *testing.T) {
	h := &WatchHandle{events: make(chan WatchEvent, 2)}

	h.publish(WatchEvent{Path: "1"})
	h.publish(WatchEvent{Path: "2"})
	h.publish(WatchEvent{Path: "3"})

	first := <-h.events
	second := <-h.events
	assert.Equal(t, "2", first.Path)
	assert.Equal(t, "3", second.Path)
	assert.Empty(t, h.events)
}
