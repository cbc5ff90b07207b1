package fs

import (
	iofs "io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// defaultWatchBuffer is the per-watch event channel capacity. When the
// consumer falls behind, the oldest buffered event is dropped.
const defaultWatchBuffer = 256

// WatchHandle is one active recursive directory watch. Events are
// delivered on the channel returned by Events until the watch is
// stopped, at which point the channel is closed.
type WatchHandle struct {
	path    string
	watcher *fsnotify.Watcher
	events  chan WatchEvent
	once    sync.Once
	log     *zap.Logger
}

// Events returns the channel change notifications are delivered on.
func (h *WatchHandle) Events() <-chan WatchEvent {
	return h.events
}

// Path returns the watched root.
func (h *WatchHandle) Path() string {
	return h.path
}

func (h *WatchHandle) stop() {
	h.once.Do(func() {
		h.watcher.Close()
	})
}

// WatchDirectory starts a recursive watch rooted at path. Watching an
// already-watched path replaces the previous watch; its event channel
// is closed.
func (s *Service) WatchDirectory(path string) (*WatchHandle, error) {
	if err := validatePath(path); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, classify(err, "stat failed")
	}
	if !info.IsDir() {
		return nil, invalidPath()
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, ioError("create watcher: %v", err)
	}

	// Register the root and every existing subdirectory. fsnotify
	// watches are not recursive on their own.
	err = filepath.WalkDir(path, func(p string, d iofs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if werr := w.Add(p); werr != nil {
				return werr
			}
		}
		return nil
	})
	if err != nil {
		w.Close()
		return nil, classify(err, "watch add failed")
	}

	h := &WatchHandle{
		path:    path,
		watcher: w,
		events:  make(chan WatchEvent, s.watchBuffer),
		log:     s.log.Logger,
	}

	s.watchMu.Lock()
	prev := s.watchers[path]
	s.watchers[path] = h
	s.watchMu.Unlock()
	if prev != nil {
		prev.stop()
	}

	go h.run()

	s.log.Info("watch started", zap.String("path", path))
	return h, nil
}

// StopWatching stops the watch rooted at path. An unknown path fails
// with NOT_FOUND.
func (s *Service) StopWatching(path string) error {
	if err := validatePath(path); err != nil {
		return err
	}

	s.watchMu.Lock()
	h, ok := s.watchers[path]
	if ok {
		delete(s.watchers, path)
	}
	s.watchMu.Unlock()

	if !ok {
		return notFound()
	}
	h.stop()
	s.log.Info("watch stopped", zap.String("path", path))
	return nil
}

// WatchedPaths returns the roots of all active watches.
func (s *Service) WatchedPaths() []string {
	s.watchMu.Lock()
	defer s.watchMu.Unlock()
	paths := make([]string, 0, len(s.watchers))
	for p := range s.watchers {
		paths = append(paths, p)
	}
	return paths
}

// run pumps raw fsnotify events into typed WatchEvents until the
// underlying watcher is closed.
func (h *WatchHandle) run() {
	defer close(h.events)

	for {
		select {
		case ev, ok := <-h.watcher.Events:
			if !ok {
				return
			}
			// New directories created under the root must be added
			// explicitly to keep the watch recursive.
			if ev.Op.Has(fsnotify.Create) {
				if info, err := os.Lstat(ev.Name); err == nil && info.IsDir() {
					if err := h.watcher.Add(ev.Name); err != nil {
						h.log.Warn("watch add failed",
							zap.String("path", ev.Name), zap.Error(err))
					}
				}
			}
			h.publish(WatchEvent{
				Type:      mapEventType(ev.Op),
				Path:      ev.Name,
				Timestamp: time.Now().Unix(),
			})
		case err, ok := <-h.watcher.Errors:
			if !ok {
				return
			}
			if err != nil {
				h.log.Warn("watch error", zap.String("path", h.path), zap.Error(err))
			}
		}
	}
}

// publish delivers ev without ever blocking the event loop. When the
// buffer is full the oldest pending event is dropped to make room.
func (h *WatchHandle) publish(ev WatchEvent) {
	select {
	case h.events <- ev:
		return
	default:
	}
	select {
	case <-h.events:
	default:
	}
	select {
	case h.events <- ev:
	default:
	}
}

// mapEventType folds the fsnotify op bitmask into the event type.
// Rename takes precedence over the write bits fsnotify sometimes sets
// alongside it. Chmod carries no content change, so metadata-only
// events surface as EventOther rather than EventModified.
func mapEventType(op fsnotify.Op) WatchEventType {
	switch {
	case op.Has(fsnotify.Create):
		return EventCreated
	case op.Has(fsnotify.Remove):
		return EventDeleted
	case op.Has(fsnotify.Rename):
		return EventRenamed
	case op.Has(fsnotify.Write):
		return EventModified
	default:
		return EventOther
	}
}
