package fs

import (
	"os"
	"syscall"
)

// statTimes extracts created/modified/accessed as Unix seconds. Darwin
// reports birth time through Birthtimespec.
func statTimes(info os.FileInfo) (created, modified, accessed *int64) {
	m := info.ModTime().Unix()
	modified = &m

	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		c := st.Birthtimespec.Sec
		created = &c
		a := st.Atimespec.Sec
		accessed = &a
	}
	return created, modified, accessed
}

// statMode returns the full Unix mode bits including the file type.
func statMode(info os.FileInfo) uint32 {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return uint32(st.Mode)
	}
	return uint32(info.Mode().Perm())
}
