package tr2

import (
	"fmt"

	"github.com/joshuapare/savekit/internal/format"
	"github.com/joshuapare/savekit/pkg/types"
	"github.com/joshuapare/savekit/save"
)

// Some weapons picked up before a level mirror their ammo counter into a
// second inventory record. The record's index varies per save and is found
// by looking for a run of sentinel bytes.

const (
	// secondaryIndexCount is how many inventory records are probed.
	secondaryIndexCount = 25
	// secondaryRecordStride separates consecutive inventory records.
	secondaryRecordStride = 0xC
	// secondaryAltDelta is the offset of the alternate sentinel run.
	secondaryAltDelta = 0xA
)

// Quad holds the four probe offsets of a level, slot-relative.
type Quad [4]int

var secondaryQuadsPC = map[uint8]Quad{
	1:  {0x19BA, 0x19BB, 0x19BC, 0x19BD}, // The Great Wall
	2:  {0x1CFC, 0x1CFD, 0x1CFE, 0x1CFF}, // Venice
	3:  {0x1F10, 0x1F11, 0x1F12, 0x1F13}, // Bartoli's Hideout
	4:  {0x2A16, 0x2A17, 0x2A18, 0x2A19}, // Opera House
	5:  {0x1AEE, 0x1AEF, 0x1AF0, 0x1AF1}, // Offshore Rig
	6:  {0x1EBC, 0x1EBD, 0x1EBE, 0x1EBF}, // Diving Area
	7:  {0x1410, 0x1411, 0x1412, 0x1413}, // 40 Fathoms
	8:  {0x2598, 0x2599, 0x259A, 0x259B}, // Wreck of the Maria Doria
	9:  {0x17C2, 0x17C3, 0x17C4, 0x17C5}, // Living Quarters
	10: {0x1C0E, 0x1C0F, 0x1C10, 0x1C11}, // The Deck
	11: {0x1F62, 0x1F63, 0x1F64, 0x1F65}, // Tibetan Foothills
	12: {0x2B56, 0x2B57, 0x2B58, 0x2B59}, // Barkhang Monastery
	13: {0x2282, 0x2283, 0x2284, 0x2285}, // Catacombs of the Talion
	14: {0x1DEE, 0x1DEF, 0x1DF0, 0x1DF1}, // Ice Palace
	15: {0x2CB2, 0x2CB3, 0x2CB4, 0x2CB5}, // Temple of Xian
	16: {0x1E42, 0x1E43, 0x1E44, 0x1E45}, // Floating Islands
	17: {0x157C, 0x157D, 0x157E, 0x157F}, // The Dragon's Lair
	18: {0x1AB0, 0x1AB1, 0x1AB2, 0x1AB3}, // Home Sweet Home
	19: {0x2CFA, 0x2CFB, 0x2CFC, 0x2CFD}, // The Cold War
	20: {0x2CF2, 0x2CF3, 0x2CF4, 0x2CF5}, // Fool's Gold
	21: {0x2AF0, 0x2AF1, 0x2AF2, 0x2AF3}, // Furnace of the Gods
	22: {0x210A, 0x210B, 0x210C, 0x210D}, // Kingdom
	23: {0x2354, 0x2355, 0x2356, 0x2357}, // Nightmare in Vegas
}

// The console rows for levels 10, 15 and 18 are not a plain -4 of the PC
// rows. They are kept exactly as observed in console saves.
var secondaryQuadsConsole = map[uint8]Quad{
	1:  {0x19B6, 0x19B7, 0x19B8, 0x19B9}, // The Great Wall
	2:  {0x1CF8, 0x1CF9, 0x1CFA, 0x1CFB}, // Venice
	3:  {0x1F0C, 0x1F0D, 0x1F0E, 0x1F0F}, // Bartoli's Hideout
	4:  {0x2A12, 0x2A13, 0x2A14, 0x2A15}, // Opera House
	5:  {0x1AEA, 0x1AEB, 0x1AEC, 0x1AED}, // Offshore Rig
	6:  {0x1EB8, 0x1EB9, 0x1EBA, 0x1EBB}, // Diving Area
	7:  {0x140C, 0x140D, 0x140E, 0x140F}, // 40 Fathoms
	8:  {0x2594, 0x2595, 0x2596, 0x2597}, // Wreck of the Maria Doria
	9:  {0x17BE, 0x17BF, 0x17C0, 0x17C1}, // Living Quarters
	10: {0x1C0A, 0x1C0A, 0x1C0B, 0x1C0E}, // The Deck
	11: {0x1F5E, 0x1F5F, 0x1F60, 0x1F61}, // Tibetan Foothills
	12: {0x2B52, 0x2B53, 0x2B54, 0x2B55}, // Barkhang Monastery
	13: {0x227E, 0x227F, 0x2280, 0x2281}, // Catacombs of the Talion
	14: {0x1DEA, 0x1DEB, 0x1DEC, 0x1DED}, // Ice Palace
	15: {0x2CAE, 0x2CAB, 0x2CAC, 0x2CAD}, // Temple of Xian
	16: {0x1E3E, 0x1E3F, 0x1E40, 0x1E41}, // Floating Islands
	17: {0x1578, 0x1579, 0x157A, 0x157B}, // The Dragon's Lair
	18: {0x1AAC, 0x1AAB, 0x1AAC, 0x1AAD}, // Home Sweet Home
	19: {0x2CF6, 0x2CF7, 0x2CF8, 0x2CF9}, // The Cold War
	20: {0x2CEE, 0x2CEF, 0x2CF0, 0x2CF1}, // Fool's Gold
	21: {0x2AEC, 0x2AED, 0x2AEE, 0x2AEF}, // Furnace of the Gods
	22: {0x2106, 0x2107, 0x2108, 0x2109}, // Kingdom
	23: {0x2350, 0x2351, 0x2352, 0x2353}, // Nightmare in Vegas
}

// secondaryDelta is subtracted from the quad's first offset to reach each
// weapon's mirrored counter in record 0.
var secondaryDelta = map[Weapon]int{
	AutoPistols:     0xAC,
	Uzis:            0xA4,
	Shotgun:         0x9C,
	HarpoonGun:      0x94,
	GrenadeLauncher: 0x8C,
	M16:             0x7C,
}

// SecondaryQuad returns the probe quad for level on platform.
func SecondaryQuad(level uint8, platform types.Platform) (Quad, bool) {
	table := secondaryQuadsPC
	if platform == types.PlatformConsole {
		table = secondaryQuadsConsole
	}
	q, ok := table[level]
	return q, ok
}

// Secondary is a located mirror record.
type Secondary struct {
	Index int // 0..24
	Base  int // first quad offset, slot-relative
}

// Offset returns the slot-relative offset of w's mirrored ammo counter.
func (s Secondary) Offset(w Weapon) (int, bool) {
	d, ok := secondaryDelta[w]
	if !ok {
		return 0, false
	}
	return s.Base - d + s.Index*secondaryRecordStride, true
}

// LocateSecondary probes the inventory records of the slot at slotOff for a
// full run of sentinel bytes at either the quad offsets or the quad offsets
// plus 0xA. The first matching index wins. A level without a quad, or no
// matching index, yields an error matching types.ErrNotLocatable.
func LocateSecondary(a save.Accessor, slotOff int, level uint8, platform types.Platform) (Secondary, error) {
	q, ok := SecondaryQuad(level, platform)
	if !ok {
		return Secondary{}, types.NotLocatable("secondary ammo index")
	}

	for index := 0; index < secondaryIndexCount; index++ {
		rec := slotOff + index*secondaryRecordStride

		var primary, alt [4]int
		for i, off := range q {
			primary[i] = rec + off
			alt[i] = rec + off + secondaryAltDelta
		}

		hit, err := allSentinel(a, primary)
		if err != nil {
			return Secondary{}, fmt.Errorf("probe secondary index %d: %w", index, err)
		}
		if !hit {
			if hit, err = allSentinel(a, alt); err != nil {
				return Secondary{}, fmt.Errorf("probe secondary index %d: %w", index, err)
			}
		}
		if hit {
			return Secondary{Index: index, Base: q[0]}, nil
		}
	}
	return Secondary{}, types.NotLocatable("secondary ammo index")
}

func allSentinel(a save.Accessor, offs [4]int) (bool, error) {
	for _, off := range offs {
		b, err := a.ReadU8(off)
		if err != nil {
			return false, err
		}
		if b != format.Sentinel {
			return false, nil
		}
	}
	return true, nil
}
