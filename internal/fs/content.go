package fs

import (
	"bytes"
	"os"
	"path/filepath"
	"unicode/utf8"

	"go.uber.org/zap"
)

// sniffLen is the number of leading bytes inspected when deciding
// whether a file is binary.
const sniffLen = 8192

// isBinary reports whether data looks like binary content. A NUL byte
// anywhere in the sniff window marks the file binary.
func isBinary(data []byte) bool {
	window := data
	if len(window) > sniffLen {
		window = window[:sniffLen]
	}
	return bytes.IndexByte(window, 0) >= 0
}

// ReadFile reads path and returns its content. Binary files yield an
// empty Content with Encoding "binary" and the true byte size; text
// files must be valid utf-8 or the read fails with an IO_ERROR.
func (s *Service) ReadFile(path string) (*FileContent, error) {
	if err := validatePath(path); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, classify(err, "stat failed")
	}
	if !info.Mode().IsRegular() {
		return nil, invalidPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, classify(err, "read failed")
	}

	if isBinary(data) {
		return &FileContent{
			Path:     path,
			Content:  "",
			Encoding: "binary",
			Size:     uint64(len(data)),
			IsBinary: true,
		}, nil
	}

	if !utf8.Valid(data) {
		return nil, ioError("file is not valid utf-8: %s", path)
	}

	return &FileContent{
		Path:     path,
		Content:  string(data),
		Encoding: "utf-8",
		Size:     uint64(len(data)),
	}, nil
}

// WriteFile writes content to path. Behavior follows the current
// config: parents are created when CreateParentDirs is set, and an
// existing file fails with ALREADY_EXISTS unless Overwrite is set.
func (s *Service) WriteFile(path, content string) (*OperationResult, error) {
	if err := validatePath(path); err != nil {
		return nil, err
	}
	cfg := s.Config()

	if cfg.CreateParentDirs {
		if parent := filepath.Dir(path); parent != "" {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return nil, classify(err, "create parent dirs failed")
			}
		}
	}

	if !cfg.Overwrite {
		if _, err := os.Stat(path); err == nil {
			return nil, alreadyExists()
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, classify(err, "open failed")
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return nil, classify(err, "write failed")
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return nil, classify(err, "sync failed")
	}
	if err := f.Close(); err != nil {
		return nil, classify(err, "close failed")
	}

	s.log.Debug("file written", zap.String("path", path), zap.Int("bytes", len(content)))
	p := path
	return &OperationResult{
		Success: true,
		Message: "file written successfully",
		Path:    &p,
	}, nil
}

// CreateFile creates an empty file at path. An existing entry always
// fails with ALREADY_EXISTS regardless of the Overwrite setting, and
// parent directories are always created.
func (s *Service) CreateFile(path string) (*OperationResult, error) {
	if err := validatePath(path); err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); err == nil {
		return nil, alreadyExists()
	}

	if parent := filepath.Dir(path); parent != "" {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return nil, classify(err, "create parent dirs failed")
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, classify(err, "create failed")
	}
	if err := f.Close(); err != nil {
		return nil, classify(err, "close failed")
	}

	p := path
	return &OperationResult{
		Success: true,
		Message: "file created successfully",
		Path:    &p,
	}, nil
}
