package fs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/codeforge-ide/codeforge/backend/internal/logging"
)

func newTestService(t *testing.T, opts ...Option) *Service {
	t.Helper()
	s := NewService(&logging.Logger{Logger: zap.NewNop()}, opts...)
	t.Cleanup(s.Close)
	return s
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Overwrite)
	assert.True(t, cfg.CreateParentDirs)
	assert.True(t, cfg.PreservePermissions)
	assert.False(t, cfg.FollowSymlinks)
}

func TestSetConfig(t *testing.T) {
	s := newTestService(t)

	cfg := s.Config()
	cfg.Overwrite = true
	cfg.CreateParentDirs = false
	s.SetConfig(cfg)

	got := s.Config()
	assert.True(t, got.Overwrite)
	assert.False(t, got.CreateParentDirs)
}

func TestValidatePath(t *testing.T) {
	assert.NoError(t, validatePath("/tmp/x"))
	assert.Error(t, validatePath(""))
	assert.Error(t, validatePath("bad\x00path"))

	kind, ok := KindOf(validatePath(""))
	assert.True(t, ok)
	assert.Equal(t, KindInvalidPath, kind)
}
