package fs

import (
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/codeforge-ide/codeforge/backend/internal/logging"
)

// Service is the filesystem service. It holds the mutable operation
// config and the registry of active watches. All methods are safe for
// concurrent use.
type Service struct {
	mu     sync.RWMutex
	config Config

	watchMu  sync.Mutex
	watchers map[string]*WatchHandle

	watchBuffer int
	log         *logging.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithConfig sets the initial operation config.
func WithConfig(cfg Config) Option {
	return func(s *Service) { s.config = cfg }
}

// WithWatchBuffer sets the per-watch event buffer capacity.
func WithWatchBuffer(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.watchBuffer = n
		}
	}
}

// NewService creates a filesystem service with default config.
func NewService(log *logging.Logger, opts ...Option) *Service {
	s := &Service{
		config:      DefaultConfig(),
		watchers:    make(map[string]*WatchHandle),
		watchBuffer: defaultWatchBuffer,
		log:         log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns a snapshot of the current operation config.
func (s *Service) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// SetConfig replaces the operation config. In-flight operations keep
// the snapshot they started with.
func (s *Service) SetConfig(cfg Config) {
	s.mu.Lock()
	s.config = cfg
	s.mu.Unlock()
	s.log.Info("filesystem config updated",
		zap.Bool("overwrite", cfg.Overwrite),
		zap.Bool("create_parent_dirs", cfg.CreateParentDirs))
}

// Close stops every active watch. The service remains usable for
// non-watch operations afterward.
func (s *Service) Close() {
	s.watchMu.Lock()
	handles := make([]*WatchHandle, 0, len(s.watchers))
	for _, h := range s.watchers {
		handles = append(handles, h)
	}
	s.watchers = make(map[string]*WatchHandle)
	s.watchMu.Unlock()

	for _, h := range handles {
		h.stop()
	}
}

// validatePath rejects paths the service refuses to touch before any
// OS call is made. Empty paths and paths with NUL bytes are invalid on
// every supported platform.
func validatePath(path string) error {
	if path == "" || strings.ContainsRune(path, 0) {
		return invalidPath()
	}
	return nil
}
