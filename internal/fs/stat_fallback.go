//go:build !linux && !darwin && !windows

package fs

import "os"

// statTimes on platforms without a known Sys() layout reports only the
// portable modification time.
func statTimes(info os.FileInfo) (created, modified, accessed *int64) {
	m := info.ModTime().Unix()
	return nil, &m, nil
}

func statMode(info os.FileInfo) uint32 {
	return uint32(info.Mode().Perm())
}
