package fs

import (
	"os"
	"syscall"
	"time"
)

// statTimes extracts created/modified/accessed as Unix seconds from
// the Win32 file attribute data.
func statTimes(info os.FileInfo) (created, modified, accessed *int64) {
	m := info.ModTime().Unix()
	modified = &m

	if st, ok := info.Sys().(*syscall.Win32FileAttributeData); ok {
		c := filetimeUnix(st.CreationTime)
		created = &c
		a := filetimeUnix(st.LastAccessTime)
		accessed = &a
	}
	return created, modified, accessed
}

func filetimeUnix(ft syscall.Filetime) int64 {
	return time.Unix(0, ft.Nanoseconds()).Unix()
}

// statMode approximates Unix permission bits. Windows has no mode
// word, so a conventional 644/755 split is reported.
func statMode(info os.FileInfo) uint32 {
	if info.IsDir() {
		return 0o755
	}
	return 0o644
}
