package save

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/savekit/pkg/types"
)

// setupContainer writes a zero-filled container of size bytes and returns its path.
func setupContainer(t testing.TB, size int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "savegame.dat")
	if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
		t.Fatalf("Failed to write test container: %v", err)
	}
	return path
}

// accessors returns a file-backed and a memory-backed accessor of equal size.
func accessors(t *testing.T, size int) map[string]Accessor {
	t.Helper()
	return map[string]Accessor{
		"file":   NewFile(setupContainer(t, size)),
		"buffer": NewBuffer(make([]byte, size)),
	}
}

func Test_Accessor_RoundTrip(t *testing.T) {
	for name, a := range accessors(t, 64) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, a.WriteU8(0, 0xAB))
			require.NoError(t, WriteU16(a, 2, 0xBEEF))
			require.NoError(t, WriteU32(a, 8, 0xDEADBEEF))
			require.NoError(t, WriteI32(a, 12, -7))

			v8, err := a.ReadU8(0)
			require.NoError(t, err)
			assert.Equal(t, uint8(0xAB), v8)

			v16, err := ReadU16(a, 2)
			require.NoError(t, err)
			assert.Equal(t, uint16(0xBEEF), v16)

			v32, err := ReadU32(a, 8)
			require.NoError(t, err)
			assert.Equal(t, uint32(0xDEADBEEF), v32)

			i32, err := ReadI32(a, 12)
			require.NoError(t, err)
			assert.Equal(t, int32(-7), i32)

			snap, err := a.Snapshot()
			require.NoError(t, err)
			assert.Equal(t, []byte{0xEF, 0xBE}, snap[2:4], "u16 must be little-endian")

			size, err := a.Size()
			require.NoError(t, err)
			assert.Equal(t, int64(64), size)
			require.NoError(t, a.Sync())
		})
	}
}

func Test_Accessor_OutOfRange(t *testing.T) {
	for name, a := range accessors(t, 16) {
		t.Run(name, func(t *testing.T) {
			_, err := a.ReadU8(16)
			require.ErrorIs(t, err, types.ErrOutOfRange)

			_, err = a.ReadU8(-1)
			require.ErrorIs(t, err, types.ErrOutOfRange)

			err = a.WriteU8(100, 1)
			require.ErrorIs(t, err, types.ErrOutOfRange)

			// A u16 straddling the end fails on its second byte.
			_, err = ReadU16(a, 15)
			require.ErrorIs(t, err, types.ErrOutOfRange)

			size, err := a.Size()
			require.NoError(t, err)
			assert.Equal(t, int64(16), size, "writes must never grow the container")
		})
	}
}

func Test_File_MissingPathIsIO(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "missing.dat"))

	_, err := f.ReadU8(0)
	require.ErrorIs(t, err, types.ErrIO)
	require.ErrorIs(t, err, os.ErrNotExist)

	require.ErrorIs(t, f.WriteU8(0, 1), types.ErrIO)

	_, err = f.Snapshot()
	require.ErrorIs(t, err, types.ErrIO)
}

func Test_File_SharesFileWithOtherHandles(t *testing.T) {
	path := setupContainer(t, 8)
	f := NewFile(path)

	// An external holder keeps the file open for the whole edit.
	other, err := os.OpenFile(path, os.O_RDWR, 0)
	require.NoError(t, err)
	defer other.Close()

	require.NoError(t, WriteU16(f, 4, 1000))

	var b [2]byte
	_, err = other.ReadAt(b[:], 4)
	require.NoError(t, err)
	assert.Equal(t, [2]byte{0xE8, 0x03}, b)

	_, err = other.WriteAt([]byte{0x42}, 0)
	require.NoError(t, err)
	v, err := f.ReadU8(0)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x42), v)
}

func Test_Buffer_SnapshotIsPrivate(t *testing.T) {
	b := NewBuffer([]byte{1, 2, 3})
	snap, err := b.Snapshot()
	require.NoError(t, err)
	snap[0] = 9
	assert.Equal(t, byte(1), b.Bytes()[0])
}

func Test_ReadQuad(t *testing.T) {
	b := NewBuffer([]byte{0x02, 0x00, 0x02, 0x00, 0x01})
	q, err := ReadQuad(b, 0)
	require.NoError(t, err)
	assert.Equal(t, [4]byte{0x02, 0x00, 0x02, 0x00}, q)

	_, err = ReadQuad(b, 2)
	require.ErrorIs(t, err, types.ErrOutOfRange)
}
