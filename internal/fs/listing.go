package fs

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// ListDirectory enumerates the children of path. Hidden entries are
// counted whether or not they are included; entries are ordered
// directories first, then files, each tier alphabetical
// case-insensitive. One unreadable child aborts the whole listing.
func (s *Service) ListDirectory(path string, includeHidden bool) (*DirectoryListing, error) {
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

	children, err := os.ReadDir(path)
	if err != nil {
		return nil, classify(err, "read directory failed")
	}

	entries := make([]DirectoryEntry, 0, len(children))
	hiddenCount := 0

	for _, child := range children {
		name := child.Name()
		childPath := filepath.Join(path, name)

		if isHidden(childPath) {
			hiddenCount++
			if !includeHidden {
				continue
			}
		}

		fi, err := child.Info()
		if err != nil {
			return nil, classify(err, "stat failed")
		}

		entry := DirectoryEntry{
			Name:        name,
			Path:        childPath,
			IsDirectory: fi.IsDir(),
			Permissions: strconv.FormatUint(uint64(statMode(fi)), 8),
			Icon:        iconFor(name, fi.IsDir()),
		}
		if fi.Mode().IsRegular() {
			size := uint64(fi.Size())
			entry.Size = &size
		}
		m := fi.ModTime().Unix()
		entry.Modified = &m

		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.IsDirectory != b.IsDirectory {
			return a.IsDirectory
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})

	return &DirectoryListing{
		Path:        path,
		Entries:     entries,
		TotalCount:  len(entries),
		HiddenCount: hiddenCount,
	}, nil
}
