// Package catalog enumerates the save slots of a container.
//
// A slot is listed when its status byte is nonzero, its level is in the
// profile's level table and its save number is not negative. Each scan
// reads the container once; descriptors do not follow later writes.
package catalog

import (
	"fmt"
	"sort"

	"github.com/joshuapare/savekit/internal/buf"
	"github.com/joshuapare/savekit/pkg/types"
	"github.com/joshuapare/savekit/save"
)

// Descriptor is the display projection of one valid slot.
type Descriptor struct {
	Slot       int            `json:"slot"`
	Offset     int            `json:"offset"`
	SaveNumber int32          `json:"save_number"`
	Level      uint8          `json:"level"`
	LevelName  string         `json:"level_name"`
	Mode       types.GameMode `json:"mode"`
}

// DisplayName renders the descriptor as "Level Name - N", with " (+)"
// appended for Plus saves.
func (d Descriptor) DisplayName() string {
	name := fmt.Sprintf("%s - %d", d.LevelName, d.SaveNumber)
	if d.Mode == types.GameModePlus {
		name += " (+)"
	}
	return name
}

func (d Descriptor) String() string { return d.DisplayName() }

// Scan lists every valid slot in ascending slot order.
func Scan(a save.Accessor, p *save.Profile) ([]Descriptor, error) {
	return scan(a, p, nil)
}

// ScanMissing lists the valid slots whose index is not in known. It is used
// to top up a catalog that was populated earlier.
func ScanMissing(a save.Accessor, p *save.Profile, known []int) ([]Descriptor, error) {
	skip := make(map[int]bool, len(known))
	for _, i := range known {
		skip[i] = true
	}
	return scan(a, p, skip)
}

// Merge adds fresh descriptors to existing, keeping slot order and the
// existing entry when both hold the same slot.
func Merge(existing, fresh []Descriptor) []Descriptor {
	seen := make(map[int]bool, len(existing))
	out := make([]Descriptor, 0, len(existing)+len(fresh))
	for _, d := range existing {
		seen[d.Slot] = true
		out = append(out, d)
	}
	for _, d := range fresh {
		if !seen[d.Slot] {
			seen[d.Slot] = true
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Slot < out[j].Slot })
	return out
}

// Slots returns the slot indices of ds.
func Slots(ds []Descriptor) []int {
	out := make([]int, len(ds))
	for i, d := range ds {
		out[i] = d.Slot
	}
	return out
}

func scan(a save.Accessor, p *save.Profile, skip map[int]bool) ([]Descriptor, error) {
	data, err := a.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("snapshot container: %w", err)
	}

	var out []Descriptor
	for i := 0; i < p.MaxSlots; i++ {
		if skip[i] {
			continue
		}
		off := p.SlotOffset(i)
		if !p.InContainer(off) {
			break
		}
		d, ok := decode(data, p, i, off)
		if ok {
			out = append(out, d)
		}
	}
	return out, nil
}

// decode reads a slot header from the snapshot. Headers that run past the
// end of a short container are treated as empty slots.
func decode(data []byte, p *save.Profile, slot, off int) (Descriptor, bool) {
	status, ok := buf.Slice(data, off+p.StatusOffset, 1)
	if !ok || status[0] == 0 {
		return Descriptor{}, false
	}
	level, ok := buf.Slice(data, off+p.LevelOffset, 1)
	if !ok {
		return Descriptor{}, false
	}
	saveNumber, ok := buf.I32At(data, off+p.SaveNumberOffset)
	if !ok {
		return Descriptor{}, false
	}
	mode, ok := buf.Slice(data, off+p.GameModeOffset, 1)
	if !ok {
		return Descriptor{}, false
	}

	h := save.Header{
		Present:    true,
		SaveNumber: saveNumber,
		Level:      level[0],
		Mode:       types.GameModeFromByte(mode[0]),
	}
	if !p.Valid(h) {
		return Descriptor{}, false
	}
	name, _ := p.LevelName(h.Level)
	return Descriptor{
		Slot:       slot,
		Offset:     off,
		SaveNumber: h.SaveNumber,
		Level:      h.Level,
		LevelName:  name,
		Mode:       h.Mode,
	}, true
}
