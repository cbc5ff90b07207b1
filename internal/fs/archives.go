package fs

import (
	"archive/tar"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
	"go.uber.org/zap"
)

// CreateZip archives the file or directory at src into a zip file at
// dst. Directory entries are stored with paths relative to src.
func (s *Service) CreateZip(src, dst string) (*OperationResult, error) {
	if err := validatePath(src); err != nil {
		return nil, err
	}
	if err := validatePath(dst); err != nil {
		return nil, err
	}
	cfg := s.Config()

	info, err := os.Stat(src)
	if err != nil {
		return nil, classify(err, "stat failed")
	}
	if !cfg.Overwrite {
		if _, err := os.Stat(dst); err == nil {
			return nil, alreadyExists()
		}
	}
	if parent := filepath.Dir(dst); parent != "" {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return nil, classify(err, "create parent dirs failed")
		}
	}

	out, err := os.Create(dst)
	if err != nil {
		return nil, classify(err, "create archive failed")
	}
	zw := zip.NewWriter(out)

	addFile := func(path, name string, fi os.FileInfo) error {
		hdr, err := zip.FileInfoHeader(fi)
		if err != nil {
			return err
		}
		hdr.Name = name
		hdr.Method = zip.Deflate
		w, err := zw.CreateHeader(hdr)
		if err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = io.Copy(w, f)
		return err
	}

	if info.IsDir() {
		err = filepath.WalkDir(src, func(p string, d iofs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.Type().IsRegular() {
				return nil
			}
			rel, err := filepath.Rel(src, p)
			if err != nil {
				return err
			}
			fi, err := d.Info()
			if err != nil {
				return err
			}
			return addFile(p, filepath.ToSlash(rel), fi)
		})
	} else {
		err = addFile(src, filepath.Base(src), info)
	}
	if err != nil {
		zw.Close()
		out.Close()
		os.Remove(dst)
		return nil, classify(err, "archive failed")
	}

	if err := zw.Close(); err != nil {
		out.Close()
		return nil, classify(err, "archive failed")
	}
	if err := out.Close(); err != nil {
		return nil, classify(err, "close failed")
	}

	s.log.Debug("zip created", zap.String("src", src), zap.String("dst", dst))
	p := dst
	return &OperationResult{Success: true, Message: "archive created successfully", Path: &p}, nil
}

// ExtractZip unpacks the zip archive at src into the directory dst,
// creating it if needed. Entries that would escape dst are rejected.
func (s *Service) ExtractZip(src, dst string) (*OperationResult, error) {
	if err := validatePath(src); err != nil {
		return nil, err
	}
	if err := validatePath(dst); err != nil {
		return nil, err
	}

	zr, err := zip.OpenReader(src)
	if err != nil {
		return nil, classify(err, "open archive failed")
	}
	defer zr.Close()

	if err := os.MkdirAll(dst, 0o755); err != nil {
		return nil, classify(err, "create directory failed")
	}

	for _, f := range zr.File {
		target, err := securePath(dst, f.Name)
		if err != nil {
			return nil, err
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return nil, classify(err, "create directory failed")
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return nil, classify(err, "create parent dirs failed")
		}
		rc, err := f.Open()
		if err != nil {
			return nil, classify(err, "read archive failed")
		}
		if err := writeStream(target, rc, f.Mode().Perm()); err != nil {
			rc.Close()
			return nil, err
		}
		rc.Close()
	}

	p := dst
	return &OperationResult{Success: true, Message: "archive extracted successfully", Path: &p}, nil
}

// CreateTarGz archives src into a gzip-compressed tarball at dst.
func (s *Service) CreateTarGz(src, dst string) (*OperationResult, error) {
	if err := validatePath(src); err != nil {
		return nil, err
	}
	if err := validatePath(dst); err != nil {
		return nil, err
	}
	cfg := s.Config()

	info, err := os.Stat(src)
	if err != nil {
		return nil, classify(err, "stat failed")
	}
	if !cfg.Overwrite {
		if _, err := os.Stat(dst); err == nil {
			return nil, alreadyExists()
		}
	}
	if parent := filepath.Dir(dst); parent != "" {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return nil, classify(err, "create parent dirs failed")
		}
	}

	out, err := os.Create(dst)
	if err != nil {
		return nil, classify(err, "create archive failed")
	}
	gw := gzip.NewWriter(out)
	tw := tar.NewWriter(gw)

	addFile := func(path, name string, fi os.FileInfo) error {
		hdr, err := tar.FileInfoHeader(fi, "")
		if err != nil {
			return err
		}
		hdr.Name = name
		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}
		if !fi.Mode().IsRegular() {
			return nil
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = io.Copy(tw, f)
		return err
	}

	if info.IsDir() {
		err = filepath.WalkDir(src, func(p string, d iofs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.Type().IsRegular() && !d.IsDir() {
				return nil
			}
			rel, err := filepath.Rel(src, p)
			if err != nil {
				return err
			}
			if rel == "." {
				return nil
			}
			fi, err := d.Info()
			if err != nil {
				return err
			}
			return addFile(p, filepath.ToSlash(rel), fi)
		})
	} else {
		err = addFile(src, filepath.Base(src), info)
	}
	if err == nil {
		err = tw.Close()
	}
	if err == nil {
		err = gw.Close()
	}
	if err != nil {
		out.Close()
		os.Remove(dst)
		return nil, classify(err, "archive failed")
	}
	if err := out.Close(); err != nil {
		return nil, classify(err, "close failed")
	}

	p := dst
	return &OperationResult{Success: true, Message: "archive created successfully", Path: &p}, nil
}

// ExtractTarGz unpacks a gzip-compressed tarball at src into dst.
func (s *Service) ExtractTarGz(src, dst string) (*OperationResult, error) {
	if err := validatePath(src); err != nil {
		return nil, err
	}
	if err := validatePath(dst); err != nil {
		return nil, err
	}

	in, err := os.Open(src)
	if err != nil {
		return nil, classify(err, "open archive failed")
	}
	defer in.Close()

	gr, err := gzip.NewReader(in)
	if err != nil {
		return nil, ioError("read archive failed: %v", err)
	}
	defer gr.Close()

	if err := os.MkdirAll(dst, 0o755); err != nil {
		return nil, classify(err, "create directory failed")
	}

	tr := tar.NewReader(gr)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, ioError("read archive failed: %v", err)
		}
		target, err := securePath(dst, hdr.Name)
		if err != nil {
			return nil, err
		}
		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return nil, classify(err, "create directory failed")
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return nil, classify(err, "create parent dirs failed")
			}
			if err := writeStream(target, tr, os.FileMode(hdr.Mode).Perm()); err != nil {
				return nil, err
			}
		}
	}

	p := dst
	return &OperationResult{Success: true, Message: "archive extracted successfully", Path: &p}, nil
}

// securePath joins an archive member name onto base and rejects names
// that resolve outside it.
func securePath(base, name string) (string, error) {
	target := filepath.Join(base, filepath.FromSlash(name))
	if target != base && !strings.HasPrefix(target, base+string(os.PathSeparator)) {
		return "", invalidPath()
	}
	return target, nil
}

func writeStream(path string, r io.Reader, perm os.FileMode) error {
	if perm == 0 {
		perm = 0o644
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return classify(err, "create file failed")
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return classify(err, "write failed")
	}
	if err := f.Close(); err != nil {
		return classify(err, "close failed")
	}
	return nil
}
