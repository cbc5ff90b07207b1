package fs

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"
	"github.com/gabriel-vasile/mimetype"
)

// Stat returns normalized metadata for path. Timestamps a platform
// cannot report are left nil instead of failing the call.
func (s *Service) Stat(path string) (*FileMetadata, error) {
	if err := validatePath(path); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, classify(err, "stat failed")
	}
	lstat, err := os.Lstat(path)
	if err != nil {
		return nil, classify(err, "stat failed")
	}

	created, modified, accessed := statTimes(info)
	ext := extensionOf(path)

	md := &FileMetadata{
		Path:        path,
		Name:        filepath.Base(path),
		Size:        uint64(info.Size()),
		IsDirectory: info.IsDir(),
		IsFile:      info.Mode().IsRegular(),
		IsSymlink:   lstat.Mode()&os.ModeSymlink != 0,
		Readonly:    info.Mode().Perm()&0o200 == 0,
		Hidden:      isHidden(path),
		Created:     created,
		Modified:    modified,
		Accessed:    accessed,
		Permissions: strconv.FormatUint(uint64(statMode(info)), 8),
		Extension:   ext,
	}
	if ext != nil {
		if mt := mimeTypeFor(*ext); mt != nil {
			md.MimeType = mt
		}
	}
	return md, nil
}

// DetectMimeType sniffs the actual content of a file instead of
// trusting its extension. Directories are rejected with INVALID_PATH.
func (s *Service) DetectMimeType(path string) (string, error) {
	if err := validatePath(path); err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", classify(err, "stat failed")
	}
	if !info.Mode().IsRegular() {
		return "", invalidPath()
	}

	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return "", classify(err, "detect failed")
	}
	return mt.String(), nil
}

// TotalSize walks a directory tree and sums the sizes of all regular
// files. Walk errors on individual children are skipped; only a failure
// to stat the root aborts.
func (s *Service) TotalSize(path string) (uint64, error) {
	if err := validatePath(path); err != nil {
		return 0, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, classify(err, "stat failed")
	}
	if !info.IsDir() {
		return uint64(info.Size()), nil
	}

	var total atomic.Uint64
	conf := fastwalk.Config{Follow: s.Config().FollowSymlinks}
	err = fastwalk.Walk(&conf, path, func(_ string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.Type().IsRegular() {
			if fi, err := d.Info(); err == nil {
				total.Add(uint64(fi.Size()))
			}
		}
		return nil
	})
	if err != nil {
		return 0, classify(err, "walk failed")
	}
	return total.Load(), nil
}

// isHidden reports whether the leaf name starts with a dot. Platform
// hidden-attribute bits are not considered.
func isHidden(path string) bool {
	name := filepath.Base(path)
	return name != "." && name != ".." && strings.HasPrefix(name, ".")
}

// extensionOf returns the extension after the last dot of the leaf
// name, or nil when there is none. A leading dot alone does not count
// as an extension.
func extensionOf(path string) *string {
	name := filepath.Base(path)
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 || idx == len(name)-1 {
		return nil
	}
	ext := name[idx+1:]
	return &ext
}

// mimeTypeFor maps a known extension to its MIME type. Unknown
// extensions return nil; callers fall back to content sniffing when
// they need more.
func mimeTypeFor(ext string) *string {
	mt, ok := mimeTypes[strings.ToLower(ext)]
	if !ok {
		return nil
	}
	return &mt
}

var mimeTypes = map[string]string{
	"txt":  "text/plain",
	"md":   "text/markdown",
	"html": "text/html",
	"css":  "text/css",
	"js":   "application/javascript",
	"json": "application/json",
	"xml":  "application/xml",
	"yaml": "application/yaml",
	"yml":  "application/yaml",
	"toml": "application/toml",
	"pdf":  "application/pdf",
	"zip":  "application/zip",
	"gz":   "application/gzip",
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"svg":  "image/svg+xml",
	"mp4":  "video/mp4",
	"mp3":  "audio/mpeg",
}

// iconFor returns the UI icon tag for an entry.
func iconFor(name string, isDirectory bool) string {
	if isDirectory {
		return "folder"
	}
	ext := ""
	if e := extensionOf(name); e != nil {
		ext = strings.ToLower(*e)
	}
	switch ext {
	case "go":
		return "go"
	case "rs":
		return "rust"
	case "js", "jsx":
		return "javascript"
	case "ts", "tsx":
		return "typescript"
	case "py":
		return "python"
	case "html":
		return "html"
	case "css":
		return "css"
	case "json":
		return "json"
	case "md":
		return "markdown"
	case "txt":
		return "text"
	case "png", "jpg", "jpeg", "gif", "svg":
		return "image"
	case "pdf":
		return "pdf"
	case "zip", "tar", "gz":
		return "archive"
	default:
		return "file"
	}
}
