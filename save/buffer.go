package save

import (
	"github.com/joshuapare/savekit/internal/buf"
	"github.com/joshuapare/savekit/pkg/types"
)

// Buffer is an Accessor over an in-memory container.
type Buffer struct {
	data []byte
}

// NewBuffer wraps data without copying it.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Bytes returns the backing slice.
func (b *Buffer) Bytes() []byte { return b.data }

func (b *Buffer) ReadU8(off int) (uint8, error) {
	if !buf.Has(b.data, off, 1) {
		return 0, types.OutOfRange(off, 1, int64(len(b.data)))
	}
	return b.data[off], nil
}

func (b *Buffer) WriteU8(off int, v uint8) error {
	if !buf.Has(b.data, off, 1) {
		return types.OutOfRange(off, 1, int64(len(b.data)))
	}
	b.data[off] = v
	return nil
}

func (b *Buffer) Snapshot() ([]byte, error) {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out, nil
}

func (b *Buffer) Size() (int64, error) { return int64(len(b.data)), nil }

func (b *Buffer) Sync() error { return nil }
