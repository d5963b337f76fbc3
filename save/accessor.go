package save

import (
	"fmt"

	"github.com/joshuapare/savekit/internal/format"
)

// Accessor is byte-granular, offset-addressed access to a container.
//
// Offsets are absolute. Accesses outside the container fail with an error
// matching types.ErrOutOfRange; every other failure matches types.ErrIO.
type Accessor interface {
	ReadU8(off int) (uint8, error)
	WriteU8(off int, v uint8) error

	// Snapshot returns a private copy of the whole container.
	Snapshot() ([]byte, error)

	// Size reports the container size in bytes.
	Size() (int64, error)

	// Sync makes previous writes durable.
	Sync() error
}

// ReadU16 reads a little-endian uint16 at off.
func ReadU16(a Accessor, off int) (uint16, error) {
	var b [2]byte
	for i := range b {
		v, err := a.ReadU8(off + i)
		if err != nil {
			return 0, err
		}
		b[i] = v
	}
	return format.JoinU16(b), nil
}

// ReadU32 reads a little-endian uint32 at off.
func ReadU32(a Accessor, off int) (uint32, error) {
	var b [4]byte
	for i := range b {
		v, err := a.ReadU8(off + i)
		if err != nil {
			return 0, err
		}
		b[i] = v
	}
	return format.JoinU32(b), nil
}

// ReadI32 reads a little-endian int32 at off.
func ReadI32(a Accessor, off int) (int32, error) {
	v, err := ReadU32(a, off)
	return int32(v), err
}

// WriteU16 writes v little-endian at off. A failure on the second byte
// leaves the first one written.
func WriteU16(a Accessor, off int, v uint16) error {
	for i, b := range format.SplitU16(v) {
		if err := a.WriteU8(off+i, b); err != nil {
			return err
		}
	}
	return nil
}

// WriteU32 writes v little-endian at off. Failures part way through are not
// rolled back.
func WriteU32(a Accessor, off int, v uint32) error {
	for i, b := range format.SplitU32(v) {
		if err := a.WriteU8(off+i, b); err != nil {
			return err
		}
	}
	return nil
}

// WriteI32 writes v little-endian at off.
func WriteI32(a Accessor, off int, v int32) error {
	return WriteU32(a, off, uint32(v))
}

// ReadQuad reads the four bytes starting at off.
func ReadQuad(a Accessor, off int) ([4]byte, error) {
	var q [4]byte
	for i := range q {
		v, err := a.ReadU8(off + i)
		if err != nil {
			return q, fmt.Errorf("quad at 0x%X: %w", off, err)
		}
		q[i] = v
	}
	return q, nil
}
