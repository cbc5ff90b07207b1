package fs

import (
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Exists reports whether path refers to an existing entry. A stat
// failure other than non-existence is surfaced as an error.
func (s *Service) Exists(path string) (bool, error) {
	if err := validatePath(path); err != nil {
		return false, err
	}
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, classify(err, "stat failed")
}

// CreateDirectory creates a directory at path, including any missing
// parents. An existing entry fails with ALREADY_EXISTS.
func (s *Service) CreateDirectory(path string) (*OperationResult, error) {
	if err := validatePath(path); err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); err == nil {
		return nil, alreadyExists()
	}

	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, classify(err, "create directory failed")
	}

	p := path
	return &OperationResult{
		Success: true,
		Message: "directory created successfully",
		Path:    &p,
	}, nil
}

// DeleteFile removes a regular file. Directories are rejected with
// INVALID_PATH; a missing path fails with NOT_FOUND.
func (s *Service) DeleteFile(path string) (*OperationResult, error) {
	if err := validatePath(path); err != nil {
		return nil, err
	}

	info, err := os.Lstat(path)
	if err != nil {
		return nil, classify(err, "stat failed")
	}
	if info.IsDir() {
		return nil, invalidPath()
	}

	if err := os.Remove(path); err != nil {
		return nil, classify(err, "delete failed")
	}

	s.log.Debug("file deleted", zap.String("path", path))
	p := path
	return &OperationResult{
		Success: true,
		Message: "file deleted successfully",
		Path:    &p,
	}, nil
}

// DeleteDirectory removes a directory and everything under it. A
// missing path fails with NOT_FOUND; a non-directory with INVALID_PATH.
func (s *Service) DeleteDirectory(path string) (*OperationResult, error) {
	if err := validatePath(path); err != nil {
		return nil, err
	}

	info, err := os.Lstat(path)
	if err != nil {
		return nil, classify(err, "stat failed")
	}
	if !info.IsDir() {
		return nil, invalidPath()
	}

	if err := os.RemoveAll(path); err != nil {
		return nil, classify(err, "delete failed")
	}

	s.log.Debug("directory deleted", zap.String("path", path))
	p := path
	return &OperationResult{
		Success: true,
		Message: "directory deleted successfully",
		Path:    &p,
	}, nil
}

// Rename moves from to to. An existing destination fails with
// ALREADY_EXISTS unless Overwrite is set; on any failure both paths
// are left unchanged.
func (s *Service) Rename(from, to string) (*OperationResult, error) {
	if err := validatePath(from); err != nil {
		return nil, err
	}
	if err := validatePath(to); err != nil {
		return nil, err
	}
	cfg := s.Config()

	if _, err := os.Lstat(from); err != nil {
		return nil, classify(err, "stat failed")
	}
	if !cfg.Overwrite {
		if _, err := os.Lstat(to); err == nil {
			return nil, alreadyExists()
		}
	}

	if err := os.Rename(from, to); err != nil {
		return nil, classify(err, "rename failed")
	}

	p := to
	return &OperationResult{
		Success: true,
		Message: "renamed successfully",
		Path:    &p,
	}, nil
}

// CopyFile copies a regular file from from to to. An existing
// destination fails with ALREADY_EXISTS unless Overwrite is set.
// Parent directories of the destination are always created, and the
// copy receives the source's permission bits.
func (s *Service) CopyFile(from, to string) (*OperationResult, error) {
	if err := validatePath(from); err != nil {
		return nil, err
	}
	if err := validatePath(to); err != nil {
		return nil, err
	}
	cfg := s.Config()

	srcInfo, err := os.Stat(from)
	if err != nil {
		return nil, classify(err, "stat failed")
	}
	if !srcInfo.Mode().IsRegular() {
		return nil, invalidPath()
	}

	if !cfg.Overwrite {
		if _, err := os.Stat(to); err == nil {
			return nil, alreadyExists()
		}
	}

	if parent := filepath.Dir(to); parent != "" {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return nil, classify(err, "create parent dirs failed")
		}
	}

	src, err := os.Open(from)
	if err != nil {
		return nil, classify(err, "open source failed")
	}
	defer src.Close()

	dst, err := os.OpenFile(to, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return nil, classify(err, "open destination failed")
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return nil, classify(err, "copy failed")
	}
	if err := dst.Close(); err != nil {
		return nil, classify(err, "close failed")
	}
	if err := os.Chmod(to, srcInfo.Mode().Perm()); err != nil {
		return nil, classify(err, "chmod failed")
	}

	s.log.Debug("file copied", zap.String("from", from), zap.String("to", to))
	p := to
	return &OperationResult{
		Success: true,
		Message: "file copied successfully",
		Path:    &p,
	}, nil
}

// Move relocates an entry, falling back to copy-and-delete for regular
// files when a plain rename fails across filesystems. An existing
// destination fails with ALREADY_EXISTS unless Overwrite is set.
func (s *Service) Move(from, to string) (*OperationResult, error) {
	if err := validatePath(from); err != nil {
		return nil, err
	}
	if err := validatePath(to); err != nil {
		return nil, err
	}
	cfg := s.Config()

	info, err := os.Lstat(from)
	if err != nil {
		return nil, classify(err, "stat failed")
	}
	if !cfg.Overwrite {
		if _, err := os.Lstat(to); err == nil {
			return nil, alreadyExists()
		}
	}

	if err := os.Rename(from, to); err != nil {
		if info.IsDir() {
			return nil, classify(err, "move failed")
		}
		// Cross-device rename: copy then remove the original.
		if _, cerr := s.CopyFile(from, to); cerr != nil {
			return nil, cerr
		}
		if rerr := os.Remove(from); rerr != nil {
			return nil, classify(rerr, "remove source failed")
		}
	}

	p := to
	return &OperationResult{
		Success: true,
		Message: "moved successfully",
		Path:    &p,
	}, nil
}
