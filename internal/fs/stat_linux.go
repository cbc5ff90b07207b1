package fs

import (
	"os"
	"syscall"
)

// statTimes extracts created/modified/accessed as Unix seconds. Linux
// does not expose a creation time through stat, so created is nil.
func statTimes(info os.FileInfo) (created, modified, accessed *int64) {
	m := info.ModTime().Unix()
	modified = &m

	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		a := st.Atim.Sec
		accessed = &a
	}
	return nil, modified, accessed
}

// statMode returns the full Unix mode bits including the file type.
func statMode(info os.FileInfo) uint32 {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return st.Mode
	}
	return uint32(info.Mode().Perm())
}
