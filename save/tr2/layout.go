package tr2

import (
	"github.com/joshuapare/savekit/pkg/types"
	"github.com/joshuapare/savekit/save/health"
)

// RecordStride is the size of one per-level inventory record.
const RecordStride = 0x30

// Record field offsets before the level stride is applied.
const (
	autoPistolsAmmoBase     = 0x12
	uziAmmoBase             = 0x14
	shotgunAmmoBase         = 0x16
	m16AmmoBase             = 0x18
	grenadeLauncherAmmoBase = 0x1A
	harpoonGunAmmoBase      = 0x1C
	smallMedipacksBase      = 0x1E // u8
	largeMedipacksBase      = 0x1F // u8
	flaresBase              = 0x21 // u8
	weaponsConfigBase       = 0x3C // u8
)

var ammoBase = map[Weapon]int{
	AutoPistols:     autoPistolsAmmoBase,
	Uzis:            uziAmmoBase,
	Shotgun:         shotgunAmmoBase,
	M16:             m16AmmoBase,
	GrenadeLauncher: grenadeLauncherAmmoBase,
	HarpoonGun:      harpoonGunAmmoBase,
}

// Layout is the set of slot-relative field offsets for one level.
// An unsupported level yields a Layout with Supported false and no offsets.
type Layout struct {
	Level     uint8
	Supported bool

	SmallMedipacks int
	LargeMedipacks int
	Flares         int
	WeaponsConfig  int
	Ammo           map[Weapon]int

	// Health is the scan bracket for the health locator, already shifted
	// for the platform.
	Health health.Bracket
}

// Resolve computes the layout for level on platform.
func Resolve(level uint8, platform types.Platform) Layout {
	bracket, ok := healthBrackets[level]
	if !ok || !Profile.KnownLevel(level) {
		return Layout{Level: level}
	}
	if platform == types.PlatformConsole {
		bracket = bracket.Shift(consoleHealthShift)
	}

	rec := int(level) * RecordStride
	l := Layout{
		Level:          level,
		Supported:      true,
		SmallMedipacks: smallMedipacksBase + rec,
		LargeMedipacks: largeMedipacksBase + rec,
		Flares:         flaresBase + rec,
		WeaponsConfig:  weaponsConfigBase + rec,
		Ammo:           make(map[Weapon]int, len(ammoBase)),
		Health:         bracket,
	}
	for w, base := range ammoBase {
		l.Ammo[w] = base + rec
	}
	return l
}

// Available reports whether the level lets the player carry ammo for w.
// Home Sweet Home only has the shotgun; Nightmare in Vegas adds the
// automatic pistols and uzis.
func (l Layout) Available(w Weapon) bool {
	if !l.Supported {
		return false
	}
	switch l.Level {
	case LevelHomeSweetHome:
		return w == Shotgun
	case LevelNightmareInVegas:
		return w == Pistols || w == Shotgun || w == AutoPistols || w == Uzis
	}
	return true
}
