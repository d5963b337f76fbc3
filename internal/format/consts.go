// Package format houses the low-level constants and byte composition rules
// shared by both savegame titles. Everything here is title independent; the
// per-title tables live with their codecs.
package format

const (
	// MinHealth and MaxHealth bound a plausible health value. Zero means dead,
	// anything above 1000 is not a health field.
	MinHealth = 1
	MaxHealth = 1000

	// SignatureLen is the size of the animation-state fingerprint that sits a
	// fixed distance before the health value.
	SignatureLen = 4

	// Sentinel marks an empty inventory record in the secondary ammo table.
	Sentinel = 0xFF

	// ShellsPerUnit converts displayed shotgun shells to stored ammo.
	ShellsPerUnit = 6
)

// HealthPercent renders a health value as a percentage of MaxHealth.
func HealthPercent(v uint16) float64 {
	return float64(v) * 100 / MaxHealth
}

// ValidHealth reports whether v lies in [MinHealth, MaxHealth].
func ValidHealth(v uint16) bool {
	return v >= MinHealth && v <= MaxHealth
}
