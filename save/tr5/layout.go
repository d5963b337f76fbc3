package tr5

import (
	"fmt"
	"strings"

	"github.com/joshuapare/savekit/save/health"
)

// Item offsets. Medipacks and flares are u16, secrets a single byte.
const (
	SmallMedipacksOffset = 0x1BE
	LargeMedipacksOffset = 0x1C0
	FlaresOffset         = 0x1C2
	SecretsOffset        = 0x474
)

// Ammo offsets (u16). The revolver and the Desert Eagle share a counter;
// which one it belongs to depends on the level.
const (
	UziAmmoOffset             = 0x1C6
	RevolverAmmoOffset        = 0x1C8
	DeagleAmmoOffset          = 0x1C8
	ShotgunNormalAmmoOffset   = 0x1CA
	ShotgunWideshotAmmoOffset = 0x1CC
	HKAmmoOffset              = 0x1CE
	GrapplingAmmoOffset       = 0x1D6
)

// Weapon presence byte offsets.
const (
	PistolsOffset   = 0x194
	UziOffset       = 0x195
	ShotgunOffset   = 0x196
	GrapplingOffset = 0x197
	HKOffset        = 0x198
	RevolverOffset  = 0x19A
	DeagleOffset    = 0x19A
)

// Feature is a bitmask of the inventory fields a level offers.
type Feature uint16

const (
	FeaturePistols Feature = 1 << iota
	FeatureRevolver
	FeatureDeagle
	FeatureUzi
	FeatureUziAmmo
	FeatureShotgun
	FeatureShotgunAmmo
	FeatureHK
	FeatureGrappling
	FeatureFlares
)

var featureNames = []struct {
	f    Feature
	name string
}{
	{FeaturePistols, "pistols"},
	{FeatureRevolver, "revolver"},
	{FeatureDeagle, "deagle"},
	{FeatureUzi, "uzi"},
	{FeatureUziAmmo, "uzi_ammo"},
	{FeatureShotgun, "shotgun"},
	{FeatureShotgunAmmo, "shotgun_ammo"},
	{FeatureHK, "hk"},
	{FeatureGrappling, "grappling"},
	{FeatureFlares, "flares"},
}

// Has reports whether every bit of f is set.
func (m Feature) Has(f Feature) bool { return m&f == f }

// Names lists the set features.
func (m Feature) Names() []string {
	var out []string
	for _, fn := range featureNames {
		if m.Has(fn.f) {
			out = append(out, fn.name)
		}
	}
	return out
}

func (m Feature) String() string {
	if m == 0 {
		return "none"
	}
	return strings.Join(m.Names(), ",")
}

// MarshalText renders the feature list.
func (m Feature) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

const outdoorKit = FeaturePistols | FeatureFlares | FeatureUziAmmo

var levelFeatures = map[uint8]Feature{
	1:  outdoorKit | FeatureRevolver | FeatureShotgunAmmo,
	2:  outdoorKit | FeatureRevolver | FeatureShotgun | FeatureShotgunAmmo,
	3:  outdoorKit | FeatureRevolver | FeatureUzi | FeatureShotgun | FeatureShotgunAmmo,
	4:  outdoorKit | FeatureDeagle | FeatureUzi,
	5:  outdoorKit | FeatureUzi | FeatureShotgun | FeatureShotgunAmmo,
	6:  outdoorKit | FeatureUzi | FeatureShotgun | FeatureShotgunAmmo,
	7:  outdoorKit | FeatureDeagle | FeatureUzi | FeatureShotgun | FeatureShotgunAmmo,
	8:  0,
	9:  0,
	10: 0,
	11: FeatureHK,
	12: FeatureHK,
	14: FeatureHK | FeatureGrappling,
}

var healthBrackets = map[uint8]health.Bracket{
	1:  {Min: 0x623, Max: 0x627},  // Streets of Rome
	2:  {Min: 0x6B7, Max: 0x886},  // Trajan's Markets
	3:  {Min: 0x605, Max: 0x886},  // The Colosseum
	4:  {Min: 0x752, Max: 0xBC9},  // The Base
	5:  {Min: 0x6E2, Max: 0x921},  // The Submarine
	6:  {Min: 0x3F8, Max: 0xB52},  // Deepsea Dive
	7:  {Min: 0x9A3, Max: 0xC1E},  // Sinking Submarine
	8:  {Min: 0x63B, Max: 0x71C},  // Gallows Tree
	9:  {Min: 0x693, Max: 0x813},  // Labyrinth
	10: {Min: 0x659, Max: 0x8C9},  // Old Mill
	11: {Min: 0x65B, Max: 0x65D},  // The 13th Floor
	12: {Min: 0xAC2, Max: 0x1BD7}, // Escape with the Iris
	14: {Min: 0x727, Max: 0x8C3},  // Red Alert!
}

// Layout is what varies per level: the health bracket and which fields
// the level offers.
type Layout struct {
	Level     uint8
	Supported bool
	Features  Feature
	Health    health.Bracket
}

// Resolve computes the layout for level.
func Resolve(level uint8) Layout {
	bracket, ok := healthBrackets[level]
	if !ok || !Profile.KnownLevel(level) {
		return Layout{Level: level}
	}
	return Layout{
		Level:     level,
		Supported: true,
		Features:  levelFeatures[level],
		Health:    bracket,
	}
}

// sidearm returns which weapon owns the shared revolver/deagle fields.
func (l Layout) sidearm() (Weapon, bool) {
	switch {
	case l.Features.Has(FeatureRevolver):
		return Revolver, true
	case l.Features.Has(FeatureDeagle):
		return Deagle, true
	}
	return 0, false
}

// Offers reports whether the level stores w. Only the revolver and the
// Desert Eagle depend on the level; they share one set of fields.
func (l Layout) Offers(w Weapon) bool {
	if !l.Supported {
		return false
	}
	if w != Revolver && w != Deagle {
		return true
	}
	s, ok := l.sidearm()
	return ok && s == w
}

// OffersAmmo reports whether the level stores counter a.
func (l Layout) OffersAmmo(a Ammo) bool {
	if owner, shared := sidearmAmmo[a]; shared {
		return l.Offers(owner)
	}
	return l.Supported
}

func (l Layout) String() string {
	if !l.Supported {
		return fmt.Sprintf("level %d (unsupported)", l.Level)
	}
	return fmt.Sprintf("level %d [%s] health 0x%X..0x%X", l.Level, l.Features, l.Health.Min, l.Health.Max)
}
