package save

import "github.com/joshuapare/savekit/pkg/types"

// Profile holds the immutable per-title container constants.
//
// Slots sit at BaseOffset + index*SlotSize. Only slots starting below
// MaxOffset are considered part of the container.
type Profile struct {
	Title types.Title

	// Slot header fields, relative to the slot start.
	StatusOffset     int // u8, nonzero when a save is present
	SaveNumberOffset int // i32
	GameModeOffset   int // u8, 0 = Normal
	LevelOffset      int // u8, 1-based and sparse

	BaseOffset int
	MaxOffset  int
	SlotSize   int
	MaxSlots   int

	// Levels maps level index to display name. A level missing here is not
	// editable and slots saved on it are skipped.
	Levels map[uint8]string
}

// SlotOffset returns the absolute offset of slot index i.
func (p *Profile) SlotOffset(i int) int {
	return p.BaseOffset + i*p.SlotSize
}

// SlotIndex returns the slot index for an absolute slot offset.
func (p *Profile) SlotIndex(off int) int {
	return (off - p.BaseOffset) / p.SlotSize
}

// InContainer reports whether a slot starting at off lies below MaxOffset.
func (p *Profile) InContainer(off int) bool {
	return off >= p.BaseOffset && off < p.MaxOffset
}

// LevelName returns the display name for level, if known.
func (p *Profile) LevelName(level uint8) (string, bool) {
	name, ok := p.Levels[level]
	return name, ok
}

// KnownLevel reports whether level has an entry in the name table.
func (p *Profile) KnownLevel(level uint8) bool {
	_, ok := p.Levels[level]
	return ok
}

// Header is the decoded header of one slot.
type Header struct {
	Present    bool
	SaveNumber int32
	Level      uint8
	Mode       types.GameMode
}

// ReadHeader decodes the slot header at slotOff through a.
func (p *Profile) ReadHeader(a Accessor, slotOff int) (Header, error) {
	var h Header
	status, err := a.ReadU8(slotOff + p.StatusOffset)
	if err != nil {
		return h, err
	}
	h.Present = status != 0

	if h.SaveNumber, err = ReadI32(a, slotOff+p.SaveNumberOffset); err != nil {
		return h, err
	}
	if h.Level, err = a.ReadU8(slotOff + p.LevelOffset); err != nil {
		return h, err
	}
	mode, err := a.ReadU8(slotOff + p.GameModeOffset)
	if err != nil {
		return h, err
	}
	h.Mode = types.GameModeFromByte(mode)
	return h, nil
}

// Valid reports whether h describes a slot the codec can edit: present,
// saved on a known level, with a non-negative save number.
func (p *Profile) Valid(h Header) bool {
	return h.Present && p.KnownLevel(h.Level) && h.SaveNumber >= 0
}
