package fs

import (
	"errors"
	iofs "io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"not exist", iofs.ErrNotExist, KindNotFound},
		{"permission", iofs.ErrPermission, KindPermissionDenied},
		{"exist", iofs.ErrExist, KindAlreadyExists},
		{"other", errors.New("disk on fire"), KindIOError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err, "op failed")
			assert.Equal(t, tt.want, got.Kind)
		})
	}
}

func TestClassifyWrapped(t *testing.T) {
	// classify must see through fmt/os wrapping via errors.Is.
	wrapped := &iofs.PathError{Op: "open", Path: "/nope", Err: iofs.ErrNotExist}
	assert.Equal(t, KindNotFound, classify(wrapped, "open failed").Kind)
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "file or directory not found", notFound().Error())
	assert.Equal(t, "permission denied", permissionDenied().Error())
	assert.Equal(t, "file or directory already exists", alreadyExists().Error())
	assert.Equal(t, "invalid path", invalidPath().Error())
	assert.Equal(t, "io error: sync failed: boom", ioError("sync failed: %s", "boom").Error())
}

func TestKindOf(t *testing.T) {
	kind, ok := KindOf(notFound())
	assert.True(t, ok)
	assert.Equal(t, KindNotFound, kind)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)

	_, ok = KindOf(nil)
	assert.False(t, ok)
}
