package tr2

import (
	"fmt"
	"strings"

	"github.com/joshuapare/savekit/pkg/types"
)

// Weapon identifies a Title A weapon.
type Weapon int

const (
	Pistols Weapon = iota
	AutoPistols
	Uzis
	Shotgun
	M16
	GrenadeLauncher
	HarpoonGun
)

// Weapons lists every weapon in weapons-config bit order.
var Weapons = []Weapon{Pistols, AutoPistols, Uzis, Shotgun, M16, GrenadeLauncher, HarpoonGun}

// AmmoWeapons lists the weapons with an ammo counter, in write order.
var AmmoWeapons = []Weapon{Shotgun, AutoPistols, Uzis, HarpoonGun, GrenadeLauncher, M16}

var weaponNames = map[Weapon]string{
	Pistols:         "pistols",
	AutoPistols:     "auto_pistols",
	Uzis:            "uzis",
	Shotgun:         "shotgun",
	M16:             "m16",
	GrenadeLauncher: "grenade_launcher",
	HarpoonGun:      "harpoon_gun",
}

func (w Weapon) String() string {
	if n, ok := weaponNames[w]; ok {
		return n
	}
	return fmt.Sprintf("UNKNOWN_WEAPON_%d", int(w))
}

// MarshalText lets weapons key JSON objects by name.
func (w Weapon) MarshalText() ([]byte, error) { return []byte(w.String()), nil }

// UnmarshalText parses a weapon name.
func (w *Weapon) UnmarshalText(b []byte) error {
	p, err := ParseWeapon(string(b))
	if err != nil {
		return err
	}
	*w = p
	return nil
}

// ParseWeapon resolves a weapon by name. Dashes and underscores are interchangeable.
func ParseWeapon(s string) (Weapon, error) {
	s = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for w, n := range weaponNames {
		if n == s {
			return w, nil
		}
	}
	return 0, types.Invalid("unknown tr2 weapon %q", s)
}

// Weapons-config bit flags. The stored byte is 1 plus the flags of every
// weapon carried; a byte of exactly 1 means no weapons.
const (
	configBase          = 1
	flagPistols         = 2
	flagAutoPistols     = 4
	flagUzis            = 8
	flagShotgun         = 16
	flagM16             = 32
	flagGrenadeLauncher = 64
	flagHarpoonGun      = 128
)

var weaponFlags = map[Weapon]uint8{
	Pistols:         flagPistols,
	AutoPistols:     flagAutoPistols,
	Uzis:            flagUzis,
	Shotgun:         flagShotgun,
	M16:             flagM16,
	GrenadeLauncher: flagGrenadeLauncher,
	HarpoonGun:      flagHarpoonGun,
}

// WeaponSet records which weapons a slot carries.
type WeaponSet map[Weapon]bool

// DecodeWeapons expands a weapons-config byte.
func DecodeWeapons(b uint8) WeaponSet {
	set := make(WeaponSet, len(Weapons))
	for _, w := range Weapons {
		set[w] = b != configBase && b&weaponFlags[w] != 0
	}
	return set
}

// Encode packs the set into a weapons-config byte.
func (s WeaponSet) Encode() uint8 {
	b := uint8(configBase)
	for _, w := range Weapons {
		if s[w] {
			b += weaponFlags[w]
		}
	}
	return b
}

// Has reports whether w is in the set.
func (s WeaponSet) Has(w Weapon) bool { return s[w] }
