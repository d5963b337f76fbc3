//go:build !linux && !freebsd && !darwin

package save

import "os"

func fdatasync(f *os.File, _ bool) error {
	return f.Sync()
}
