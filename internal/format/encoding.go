package format

// Multi-byte fields are little-endian and are composed from single-byte
// accesses, matching how the container is read and written on disk.

// SplitU16 returns the little-endian bytes of v.
func SplitU16(v uint16) [2]byte {
	return [2]byte{byte(v), byte(v >> 8)}
}

// SplitU32 returns the little-endian bytes of v.
func SplitU32(v uint32) [4]byte {
	return [4]byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

// JoinU16 assembles a little-endian uint16.
func JoinU16(b [2]byte) uint16 {
	return uint16(b[0]) | uint16(b[1])<<8
}

// JoinU32 assembles a little-endian uint32.
func JoinU32(b [4]byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// ShellsToAmmo converts displayed shotgun shells into the stored count.
// ok is false when the result does not fit in 16 bits.
func ShellsToAmmo(shells uint16) (uint16, bool) {
	v := uint32(shells) * ShellsPerUnit
	if v > 0xFFFF {
		return 0, false
	}
	return uint16(v), true
}

// AmmoToShells converts a stored shotgun count into displayed shells.
func AmmoToShells(ammo uint16) uint16 {
	return ammo / ShellsPerUnit
}
