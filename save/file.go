package save

import (
	"fmt"
	"os"

	"github.com/joshuapare/savekit/internal/mmfile"
	"github.com/joshuapare/savekit/pkg/types"
)

// File is an Accessor over a container on disk.
//
// No handle is kept between calls: each primitive opens the file, checks the
// offset against the current size, performs a positioned read or write and
// closes the file again.
type File struct {
	path string
}

// NewFile returns an accessor for the container at path. The path is not
// checked until the first access.
func NewFile(path string) *File {
	return &File{path: path}
}

// ReadU8 reads one byte at off.
func (f *File) ReadU8(off int) (uint8, error) {
	fh, err := os.Open(f.path)
	if err != nil {
		return 0, types.IOError("open container", err)
	}
	defer fh.Close()

	if err := checkRange(fh, off, 1); err != nil {
		return 0, err
	}
	var b [1]byte
	if _, err := fh.ReadAt(b[:], int64(off)); err != nil {
		return 0, types.IOError(fmt.Sprintf("read 0x%X", off), err)
	}
	return b[0], nil
}

// WriteU8 writes one byte at off. Writes never extend the container.
func (f *File) WriteU8(off int, v uint8) error {
	fh, err := os.OpenFile(f.path, os.O_RDWR, 0)
	if err != nil {
		return types.IOError("open container for write", err)
	}
	defer fh.Close()

	if err := checkRange(fh, off, 1); err != nil {
		return err
	}
	if _, err := fh.WriteAt([]byte{v}, int64(off)); err != nil {
		return types.IOError(fmt.Sprintf("write 0x%X", off), err)
	}
	return nil
}

// Snapshot maps the container and copies it out in one pass.
func (f *File) Snapshot() ([]byte, error) {
	data, cleanup, err := mmfile.Map(f.path)
	if err != nil {
		return nil, types.IOError("snapshot container", err)
	}
	defer cleanup()

	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Size reports the current container size.
func (f *File) Size() (int64, error) {
	info, err := os.Stat(f.path)
	if err != nil {
		return 0, types.IOError("stat container", err)
	}
	return info.Size(), nil
}

// Sync flushes the container's written pages to stable storage.
func (f *File) Sync() error {
	fh, err := os.OpenFile(f.path, os.O_RDWR, 0)
	if err != nil {
		return types.IOError("open container for sync", err)
	}
	defer fh.Close()

	if err := fdatasync(fh, false); err != nil {
		return types.IOError("sync container", err)
	}
	return nil
}

func checkRange(fh *os.File, off, n int) error {
	info, err := fh.Stat()
	if err != nil {
		return types.IOError("stat container", err)
	}
	if off < 0 || int64(off)+int64(n) > info.Size() {
		return types.OutOfRange(off, n, info.Size())
	}
	return nil
}
