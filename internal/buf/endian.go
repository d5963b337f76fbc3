// Package buf contains bounds and endian helpers for scanning in-memory containers.
package buf

import "encoding/binary"

// U16At reads a little-endian uint16 at off, reporting whether both bytes exist.
func U16At(b []byte, off int) (uint16, bool) {
	s, ok := Slice(b, off, 2)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint16(s), true
}

// I32At reads a little-endian int32 at off, reporting whether all four bytes exist.
func I32At(b []byte, off int) (int32, bool) {
	s, ok := Slice(b, off, 4)
	if !ok {
		return 0, false
	}
	return int32(binary.LittleEndian.Uint32(s)), true
}
