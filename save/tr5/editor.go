package tr5

import (
	"errors"
	"fmt"

	"github.com/joshuapare/savekit/internal/format"
	"github.com/joshuapare/savekit/pkg/types"
	"github.com/joshuapare/savekit/save"
	"github.com/joshuapare/savekit/save/health"
)

// Editor reads and writes the fields of one Title B slot.
type Editor struct {
	a    save.Accessor
	slot int
}

// NewEditor returns an editor for the slot starting at slotOff.
func NewEditor(a save.Accessor, slotOff int) *Editor {
	return &Editor{a: a, slot: slotOff}
}

// Slot returns the absolute slot offset.
func (e *Editor) Slot() int { return e.slot }

// Header decodes the slot header.
func (e *Editor) Header() (save.Header, error) {
	return Profile.ReadHeader(e.a, e.slot)
}

// Layout resolves the slot's level.
func (e *Editor) Layout() (Layout, error) {
	level, err := e.a.ReadU8(e.slot + LevelIndexOffset)
	if err != nil {
		return Layout{}, fmt.Errorf("read level index: %w", err)
	}
	l := Resolve(level)
	if !l.Supported {
		return l, types.UnsupportedLevel(level)
	}
	return l, nil
}

// Health locates the health field. The returned offset is absolute.
func (e *Editor) Health() (health.Match, error) {
	l, err := e.Layout()
	if err != nil {
		return health.Match{}, err
	}
	return e.locateHealth(l)
}

func (e *Editor) locateHealth(l Layout) (health.Match, error) {
	data, err := e.a.Snapshot()
	if err != nil {
		return health.Match{}, fmt.Errorf("snapshot container: %w", err)
	}
	return Scanner.Locate(data, e.slot, l.Health)
}

// SetHealth writes v to the located health field.
func (e *Editor) SetHealth(v uint16) error {
	if !format.ValidHealth(v) {
		return types.Invalid("health %d outside %d..%d", v, format.MinHealth, format.MaxHealth)
	}
	m, err := e.Health()
	if err != nil {
		return err
	}
	return save.WriteU16(e.a, m.Offset, v)
}

// Present reports whether the presence byte of w is nonzero.
func (e *Editor) Present(w Weapon) (bool, error) {
	off, ok := presenceOffset[w]
	if !ok {
		return false, types.Invalid("unknown tr5 weapon %d", int(w))
	}
	b, err := e.a.ReadU8(e.slot + off)
	return b != FlagAbsent, err
}

// State is the editable view of a slot. Shotgun counters are in shells.
type State struct {
	Level     uint8          `json:"level"`
	LevelName string         `json:"level_name"`
	Mode      types.GameMode `json:"mode"`
	Supported bool           `json:"supported"`
	Features  Feature        `json:"features"`

	SaveNumber     int32  `json:"save_number"`
	SmallMedipacks uint16 `json:"small_medipacks"`
	LargeMedipacks uint16 `json:"large_medipacks"`
	Flares         uint16 `json:"flares"`
	Secrets        uint8  `json:"secrets"`

	Weapons map[Weapon]bool `json:"weapons"`
	Ammo    map[Ammo]uint16 `json:"ammo"`

	Health      uint16 `json:"health"`
	HealthKnown bool   `json:"health_known"`
	HealthState string `json:"health_state,omitempty"`
}

// Read decodes the slot. A slot on an unsupported level yields a State with
// only the header fields set and Supported false.
func (e *Editor) Read() (State, error) {
	h, err := e.Header()
	if err != nil {
		return State{}, err
	}
	s := State{Level: h.Level, Mode: h.Mode, SaveNumber: h.SaveNumber}
	s.LevelName, _ = Profile.LevelName(h.Level)

	l := Resolve(h.Level)
	if !l.Supported {
		return s, nil
	}
	s.Supported = true
	s.Features = l.Features

	if s.SmallMedipacks, err = save.ReadU16(e.a, e.slot+SmallMedipacksOffset); err != nil {
		return s, err
	}
	if s.LargeMedipacks, err = save.ReadU16(e.a, e.slot+LargeMedipacksOffset); err != nil {
		return s, err
	}
	if l.Features.Has(FeatureFlares) {
		if s.Flares, err = save.ReadU16(e.a, e.slot+FlaresOffset); err != nil {
			return s, err
		}
	}
	if s.Secrets, err = e.a.ReadU8(e.slot + SecretsOffset); err != nil {
		return s, err
	}

	s.Weapons = make(map[Weapon]bool, len(Weapons))
	for _, w := range Weapons {
		if !l.Offers(w) {
			s.Weapons[w] = false
			continue
		}
		if s.Weapons[w], err = e.Present(w); err != nil {
			return s, fmt.Errorf("read %s presence: %w", w, err)
		}
	}

	s.Ammo = make(map[Ammo]uint16, len(AmmoTypes))
	for _, a := range AmmoTypes {
		if !l.OffersAmmo(a) {
			s.Ammo[a] = 0
			continue
		}
		v, err := save.ReadU16(e.a, e.slot+ammoOffset[a])
		if err != nil {
			return s, fmt.Errorf("read %s ammo: %w", a, err)
		}
		if a.shells() {
			v = format.AmmoToShells(v)
		}
		s.Ammo[a] = v
	}

	m, err := e.locateHealth(l)
	switch {
	case err == nil:
		s.Health = m.Value
		s.HealthKnown = true
		s.HealthState = m.Signature.State
	case !errors.Is(err, types.ErrNotLocatable):
		return s, err
	}
	return s, nil
}

// Offers reports whether the slot's level stores w.
func (s State) Offers(w Weapon) bool { return s.layout().Offers(w) }

// OffersAmmo reports whether the slot's level stores counter a.
func (s State) OffersAmmo(a Ammo) bool { return s.layout().OffersAmmo(a) }

func (s State) layout() Layout {
	return Layout{Level: s.Level, Supported: s.Supported, Features: s.Features}
}

// Validate checks s for values the slot cannot hold.
func (s State) Validate() error {
	if s.HealthKnown && !format.ValidHealth(s.Health) {
		return types.Invalid("health %d outside %d..%d", s.Health, format.MinHealth, format.MaxHealth)
	}
	for _, a := range []Ammo{ShotgunNormalAmmo, ShotgunWideshotAmmo} {
		if _, ok := format.ShellsToAmmo(s.Ammo[a]); !ok {
			return types.Invalid("%d %s shells overflow the ammo counter", s.Ammo[a], a)
		}
	}
	return nil
}

// Write stores s into the slot. All values are validated before the first
// write; the writes themselves are independent and not rolled back.
//
// Flares and the revolver or Desert Eagle are written only on levels that
// offer them. Health is written only when s.HealthKnown is set and the field
// can still be located.
func (e *Editor) Write(s State) error {
	if err := s.Validate(); err != nil {
		return err
	}
	l, err := e.Layout()
	if err != nil {
		return err
	}
	prevHK, err := e.a.ReadU8(e.slot + HKOffset)
	if err != nil {
		return fmt.Errorf("read hk presence: %w", err)
	}

	if err := save.WriteI32(e.a, e.slot+SaveNumberOffset, s.SaveNumber); err != nil {
		return fmt.Errorf("write save number: %w", err)
	}
	if err := save.WriteU16(e.a, e.slot+SmallMedipacksOffset, s.SmallMedipacks); err != nil {
		return fmt.Errorf("write small medipacks: %w", err)
	}
	if err := save.WriteU16(e.a, e.slot+LargeMedipacksOffset, s.LargeMedipacks); err != nil {
		return fmt.Errorf("write large medipacks: %w", err)
	}
	if err := e.a.WriteU8(e.slot+SecretsOffset, s.Secrets); err != nil {
		return fmt.Errorf("write secrets: %w", err)
	}

	for _, w := range []Weapon{Pistols, Uzi, HK, Grappling, Shotgun} {
		prev := uint8(FlagAbsent)
		if w == HK {
			prev = prevHK
		}
		if err := e.writePresence(w, s.Weapons[w], prev); err != nil {
			return err
		}
	}

	for _, a := range []Ammo{UziAmmo, HKAmmo, GrapplingAmmo, ShotgunNormalAmmo, ShotgunWideshotAmmo} {
		if err := e.writeAmmo(a, s.Ammo[a]); err != nil {
			return err
		}
	}

	if l.Features.Has(FeatureFlares) {
		if err := save.WriteU16(e.a, e.slot+FlaresOffset, s.Flares); err != nil {
			return fmt.Errorf("write flares: %w", err)
		}
	}

	if w, ok := l.sidearm(); ok {
		prev, err := e.a.ReadU8(e.slot + presenceOffset[w])
		if err != nil {
			return fmt.Errorf("read %s presence: %w", w, err)
		}
		if err := e.writePresence(w, s.Weapons[w], prev); err != nil {
			return err
		}
		a := RevolverAmmo
		if w == Deagle {
			a = DeagleAmmo
		}
		if err := e.writeAmmo(a, s.Ammo[a]); err != nil {
			return err
		}
	}

	if !s.HealthKnown {
		return nil
	}
	m, err := e.locateHealth(l)
	if errors.Is(err, types.ErrNotLocatable) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := save.WriteU16(e.a, m.Offset, s.Health); err != nil {
		return fmt.Errorf("write health: %w", err)
	}
	return nil
}

func (e *Editor) writePresence(w Weapon, present bool, prev uint8) error {
	if err := e.a.WriteU8(e.slot+presenceOffset[w], PresenceFlag(w, present, prev)); err != nil {
		return fmt.Errorf("write %s presence: %w", w, err)
	}
	return nil
}

func (e *Editor) writeAmmo(a Ammo, v uint16) error {
	if a.shells() {
		v, _ = format.ShellsToAmmo(v)
	}
	if err := save.WriteU16(e.a, e.slot+ammoOffset[a], v); err != nil {
		return fmt.Errorf("write %s ammo: %w", a, err)
	}
	return nil
}
