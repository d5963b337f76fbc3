package tr2

import (
	"errors"
	"fmt"

	"github.com/joshuapare/savekit/internal/format"
	"github.com/joshuapare/savekit/pkg/types"
	"github.com/joshuapare/savekit/save"
	"github.com/joshuapare/savekit/save/health"
)

// Editor reads and writes the fields of one Title A slot.
//
// Nothing located is cached: every health or secondary lookup re-reads the
// container, so edits made in between are always observed.
type Editor struct {
	a        save.Accessor
	slot     int
	platform types.Platform
}

// NewEditor returns an editor for the slot starting at slotOff.
func NewEditor(a save.Accessor, slotOff int, platform types.Platform) *Editor {
	return &Editor{a: a, slot: slotOff, platform: platform}
}

// Slot returns the absolute slot offset.
func (e *Editor) Slot() int { return e.slot }

// Header decodes the slot header.
func (e *Editor) Header() (save.Header, error) {
	return Profile.ReadHeader(e.a, e.slot)
}

// Layout resolves the field offsets for the slot's current level.
func (e *Editor) Layout() (Layout, error) {
	level, err := e.a.ReadU8(e.slot + LevelIndexOffset)
	if err != nil {
		return Layout{}, fmt.Errorf("read level index: %w", err)
	}
	l := Resolve(level, e.platform)
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

// Secondary locates the mirrored ammo record of the slot.
func (e *Editor) Secondary() (Secondary, error) {
	h, err := e.Header()
	if err != nil {
		return Secondary{}, err
	}
	return LocateSecondary(e.a, e.slot, h.Level, e.platform)
}

// InVehicle re-reads the signature in front of the health value at the
// absolute offset healthOff and reports whether it is a vehicle state.
func (e *Editor) InVehicle(healthOff int) (bool, error) {
	q, err := save.ReadQuad(e.a, healthOff-Scanner.Window)
	if err != nil {
		return false, err
	}
	sig, ok := Scanner.Lookup(q)
	return ok && sig.Vehicle, nil
}

// Ammo returns the stored ammo count of w, or 0 when the level does not
// offer it. Shotgun ammo is returned as stored, not in shells.
func (e *Editor) Ammo(w Weapon) (uint16, error) {
	l, err := e.Layout()
	if err != nil {
		return 0, err
	}
	off, ok := l.Ammo[w]
	if !ok || !l.Available(w) {
		return 0, nil
	}
	return save.ReadU16(e.a, e.slot+off)
}

// SetAmmo writes the stored ammo count of w. When a secondary record exists
// it receives v if present is true and 0 otherwise. Weapons the level does
// not offer are rejected.
func (e *Editor) SetAmmo(w Weapon, present bool, v uint16) error {
	l, err := e.Layout()
	if err != nil {
		return err
	}
	if _, ok := l.Ammo[w]; !ok {
		return types.Invalid("%s has no ammo counter", w)
	}
	if !l.Available(w) {
		return types.Invalid("%s is not available on level %d", w, l.Level)
	}
	sec, err := LocateSecondary(e.a, e.slot, l.Level, e.platform)
	hasSec := err == nil
	if err != nil && !errors.Is(err, types.ErrNotLocatable) {
		return err
	}
	return e.writeAmmo(l, sec, hasSec, w, present, v)
}

func (e *Editor) writeAmmo(l Layout, sec Secondary, hasSec bool, w Weapon, present bool, v uint16) error {
	if err := save.WriteU16(e.a, e.slot+l.Ammo[w], v); err != nil {
		return fmt.Errorf("write %s ammo: %w", w, err)
	}
	if !hasSec {
		return nil
	}
	off, ok := sec.Offset(w)
	if !ok {
		return nil
	}
	if !present {
		v = 0
	}
	if err := save.WriteU16(e.a, e.slot+off, v); err != nil {
		return fmt.Errorf("write %s secondary ammo: %w", w, err)
	}
	return nil
}

// State is the editable view of a slot. Shotgun ammo is in shells.
type State struct {
	Level     uint8          `json:"level"`
	LevelName string         `json:"level_name"`
	Mode      types.GameMode `json:"mode"`
	Supported bool           `json:"supported"`

	SaveNumber     int32 `json:"save_number"`
	SmallMedipacks uint8 `json:"small_medipacks"`
	LargeMedipacks uint8 `json:"large_medipacks"`
	Flares         uint8 `json:"flares"`

	Weapons WeaponSet         `json:"weapons"`
	Ammo    map[Weapon]uint16 `json:"ammo"`

	Health      uint16 `json:"health"`
	HealthKnown bool   `json:"health_known"`
	HealthState string `json:"health_state,omitempty"`
	InVehicle   bool   `json:"in_vehicle"`

	// SecondaryIndex is the mirrored ammo record index, -1 when none was found.
	SecondaryIndex int `json:"secondary_index"`
}

// Read decodes the slot. A slot on an unsupported level yields a State with
// only the header fields set and Supported false.
func (e *Editor) Read() (State, error) {
	h, err := e.Header()
	if err != nil {
		return State{}, err
	}
	s := State{
		Level:          h.Level,
		Mode:           h.Mode,
		SaveNumber:     h.SaveNumber,
		SecondaryIndex: -1,
	}
	s.LevelName, _ = Profile.LevelName(h.Level)

	l := Resolve(h.Level, e.platform)
	if !l.Supported {
		return s, nil
	}
	s.Supported = true

	if s.SmallMedipacks, err = e.a.ReadU8(e.slot + l.SmallMedipacks); err != nil {
		return s, err
	}
	if s.LargeMedipacks, err = e.a.ReadU8(e.slot + l.LargeMedipacks); err != nil {
		return s, err
	}
	if s.Flares, err = e.a.ReadU8(e.slot + l.Flares); err != nil {
		return s, err
	}
	cfg, err := e.a.ReadU8(e.slot + l.WeaponsConfig)
	if err != nil {
		return s, err
	}
	s.Weapons = DecodeWeapons(cfg)

	s.Ammo = make(map[Weapon]uint16, len(AmmoWeapons))
	for _, w := range AmmoWeapons {
		if !l.Available(w) {
			s.Ammo[w] = 0
			continue
		}
		v, err := save.ReadU16(e.a, e.slot+l.Ammo[w])
		if err != nil {
			return s, fmt.Errorf("read %s ammo: %w", w, err)
		}
		if w == Shotgun {
			v = format.AmmoToShells(v)
		}
		s.Ammo[w] = v
	}

	m, err := e.locateHealth(l)
	switch {
	case err == nil:
		s.Health = m.Value
		s.HealthKnown = true
		s.HealthState = m.Signature.State
		s.InVehicle = m.Signature.Vehicle
	case !errors.Is(err, types.ErrNotLocatable):
		return s, err
	}

	sec, err := LocateSecondary(e.a, e.slot, h.Level, e.platform)
	switch {
	case err == nil:
		s.SecondaryIndex = sec.Index
	case !errors.Is(err, types.ErrNotLocatable):
		return s, err
	}
	return s, nil
}

// Available reports whether the slot's level offers ammo for w.
func (s State) Available(w Weapon) bool {
	return Layout{Level: s.Level, Supported: s.Supported}.Available(w)
}

// Validate checks s for values the slot cannot hold.
func (s State) Validate() error {
	if s.HealthKnown && !format.ValidHealth(s.Health) {
		return types.Invalid("health %d outside %d..%d", s.Health, format.MinHealth, format.MaxHealth)
	}
	if _, ok := format.ShellsToAmmo(s.Ammo[Shotgun]); !ok {
		return types.Invalid("%d shotgun shells overflow the ammo counter", s.Ammo[Shotgun])
	}
	return nil
}

// Write stores s into the slot. All values are validated before the first
// write; the writes themselves are independent and a failure part way
// leaves the earlier ones applied.
//
// Health is written only when s.HealthKnown is set and the field can still
// be located. Ammo of weapons the level does not offer is left untouched.
func (e *Editor) Write(s State) error {
	if err := s.Validate(); err != nil {
		return err
	}
	l, err := e.Layout()
	if err != nil {
		return err
	}

	if err := save.WriteI32(e.a, e.slot+SaveNumberOffset, s.SaveNumber); err != nil {
		return fmt.Errorf("write save number: %w", err)
	}
	if err := e.a.WriteU8(e.slot+l.SmallMedipacks, s.SmallMedipacks); err != nil {
		return fmt.Errorf("write small medipacks: %w", err)
	}
	if err := e.a.WriteU8(e.slot+l.LargeMedipacks, s.LargeMedipacks); err != nil {
		return fmt.Errorf("write large medipacks: %w", err)
	}
	if err := e.a.WriteU8(e.slot+l.Flares, s.Flares); err != nil {
		return fmt.Errorf("write flares: %w", err)
	}
	if err := e.a.WriteU8(e.slot+l.WeaponsConfig, s.Weapons.Encode()); err != nil {
		return fmt.Errorf("write weapons config: %w", err)
	}

	sec, err := LocateSecondary(e.a, e.slot, l.Level, e.platform)
	hasSec := err == nil
	if err != nil && !errors.Is(err, types.ErrNotLocatable) {
		return err
	}
	for _, w := range AmmoWeapons {
		if !l.Available(w) {
			continue
		}
		v := s.Ammo[w]
		if w == Shotgun {
			v, _ = format.ShellsToAmmo(v)
		}
		if err := e.writeAmmo(l, sec, hasSec, w, s.Weapons.Has(w), v); err != nil {
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
