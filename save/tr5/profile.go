// Package tr5 is the codec for Title B savegames.
//
// Unlike Title A, every item, ammo and weapon field sits at a static
// slot-relative offset. Only the health field moves and is located by a
// byte-granular signature scan.
package tr5

import (
	"github.com/joshuapare/savekit/pkg/types"
	"github.com/joshuapare/savekit/save"
)

// Slot header offsets (relative to the slot start).
const (
	SlotStatusOffset = 0x004
	SaveNumberOffset = 0x008
	GameModeOffset   = 0x01C
	LevelIndexOffset = 0x26F
)

// Container geometry.
const (
	BaseSlotOffset = 0x14AE00
	MaxSlotOffset  = 0x33BB10
	SlotSize       = 0xA470
	MaxSlots       = 32
)

var levelNames = map[uint8]string{
	1:  "Streets of Rome",
	2:  "Trajan's Markets",
	3:  "The Colosseum",
	4:  "The Base",
	5:  "The Submarine",
	6:  "Deepsea Dive",
	7:  "Sinking Submarine",
	8:  "Gallows Tree",
	9:  "Labyrinth",
	10: "Old Mill",
	11: "The 13th Floor",
	12: "Escape with the Iris",
	14: "Red Alert!",
}

// Profile describes the Title B container.
var Profile = &save.Profile{
	Title:            types.TitleTR5,
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
