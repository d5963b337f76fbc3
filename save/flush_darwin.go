//go:build darwin

package save

import (
	"os"

	"golang.org/x/sys/unix"
)

// fdatasync performs file descriptor sync.
//
// On macOS, if fullfsync is true, use F_FULLFSYNC so the drive cache is
// flushed too. Otherwise, use regular fsync.
func fdatasync(f *os.File, fullfsync bool) error {
	if fullfsync {
		_, err := unix.FcntlInt(f.Fd(), unix.F_FULLFSYNC, 0)
		return err
	}
	// macOS doesn't have fdatasync, use fsync
	return unix.Fsync(int(f.Fd()))
}
