//go:build linux

package fs

import (
	"os"
	"syscall"
	"time"
)

// fileTimes reports access time; linux stat does not carry a birth time.
func fileTimes(info os.FileInfo) (accessed, created time.Time) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, time.Time{}
	}
	return time.Unix(st.Atim.Unix()), time.Time{}
}
