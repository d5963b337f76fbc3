// Package tr2 is the codec for Title A savegames.
//
// Per-level inventory records sit at a fixed stride inside each slot, so
// every item, ammo and weapons-config offset is a linear function of the
// level index. Health and the mirrored ("secondary") ammo records have no
// fixed position and are located by scanning.
package tr2

import (
	"github.com/joshuapare/savekit/pkg/types"
	"github.com/joshuapare/savekit/save"
)

// Slot header offsets (relative to the slot start).
const (
	SlotStatusOffset = 0x004
	GameModeOffset   = 0x008
	SaveNumberOffset = 0x00C
	LevelIndexOffset = 0x628
)

// Container geometry.
const (
	BaseSlotOffset = 0x72000
	MaxSlotOffset  = 0xE2000
	SlotSize       = 0x3800
	MaxSlots       = 32
)

// Level indices with restricted inventories.
const (
	LevelHomeSweetHome    uint8 = 18
	LevelNightmareInVegas uint8 = 23
)

var levelNames = map[uint8]string{
	1:  "The Great Wall",
	2:  "Venice",
	3:  "Bartoli's Hideout",
	4:  "Opera House",
	5:  "Offshore Rig",
	6:  "Diving Area",
	7:  "40 Fathoms",
	8:  "Wreck of the Maria Doria",
	9:  "Living Quarters",
	10: "The Deck",
	11: "Tibetan Foothills",
	12: "Barkhang Monastery",
	13: "Catacombs of the Talion",
	14: "Ice Palace",
	15: "Temple of Xian",
	16: "Floating Islands",
	17: "The Dragon's Lair",
	18: "Home Sweet Home",
	19: "The Cold War",
	20: "Fool's Gold",
	21: "Furnace of the Gods",
	22: "Kingdom",
	23: "Nightmare in Vegas",
}

// Profile is the Title A container profile.
var Profile = &save.Profile{
	Title:            types.TitleTR2,
	StatusOffset:     SlotStatusOffset,
	SaveNumberOffset: SaveNumberOffset,
	GameModeOffset:   GameModeOffset,
	LevelOffset:      LevelIndexOffset,
	BaseOffset:       BaseSlotOffset,
	MaxOffset:        MaxSlotOffset,
	SlotSize:         SlotSize,
	MaxSlots:         MaxSlots,
	Levels:           levelNames,
}
