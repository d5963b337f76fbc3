package tr2

import (
	"testing"

	"github.com/joshuapare/savekit/internal/format"
	"github.com/joshuapare/savekit/save"
)

// newSlot builds a single-slot buffer saved on level with the slot at offset 0.
func newSlot(t *testing.T, level uint8) *save.Buffer {
	t.Helper()
	data := make([]byte, SlotSize)
	data[SlotStatusOffset] = 1
	data[LevelIndexOffset] = level
	return save.NewBuffer(data)
}

// plantHealth writes v at off and the signature Window bytes before it.
func plantHealth(t *testing.T, b *save.Buffer, off int, v uint16, sig [4]byte) {
	t.Helper()
	data := b.Bytes()
	copy(data[off-Scanner.Window:], sig[:])
	le := format.SplitU16(v)
	copy(data[off:], le[:])
}

// plantSentinels fills the quad run of level at record index with 0xFF,
// shifted by extra bytes.
func plantSentinels(t *testing.T, b *save.Buffer, level uint8, index, extra int) {
	t.Helper()
	q, ok := secondaryQuadsPC[level]
	if !ok {
		t.Fatalf("no quad for level %d", level)
	}
	for _, off := range q {
		b.Bytes()[off+index*secondaryRecordStride+extra] = format.Sentinel
	}
}

var standing = [4]byte{0x02, 0x00, 0x02, 0x00}
