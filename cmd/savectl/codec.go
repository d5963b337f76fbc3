package main

import (
	"fmt"
	"strconv"

	"github.com/joshuapare/savekit/internal/logger"
	"github.com/joshuapare/savekit/pkg/types"
	"github.com/joshuapare/savekit/save"
	"github.com/joshuapare/savekit/save/health"
	"github.com/joshuapare/savekit/save/tr2"
	"github.com/joshuapare/savekit/save/tr5"
)

// profile returns the container profile of the selected title.
func profile() *save.Profile {
	if settings.Title == types.TitleTR5 {
		return tr5.Profile
	}
	return tr2.Profile
}

// slotOffset parses a slot index argument and checks it against the profile.
func slotOffset(arg string) (int, int, error) {
	p := profile()
	i, err := strconv.Atoi(arg)
	if err != nil || i < 0 || i >= p.MaxSlots {
		return 0, 0, types.Invalid("slot %q is not an index in 0..%d", arg, p.MaxSlots-1)
	}
	off := p.SlotOffset(i)
	if !p.InContainer(off) {
		return 0, 0, types.Invalid("slot %d lies past the end of the %s container", i, p.Title)
	}
	return i, off, nil
}

// slotEditor is the title-independent surface the commands need.
type slotEditor interface {
	Header() (save.Header, error)
	Health() (health.Match, error)
	Vehicle(m health.Match) (bool, error)
	ReadState() (any, error)
	Apply(state any, field, value string) (any, error)
	WriteState(state any) error
}

func newSlotEditor(a save.Accessor, slotOff int) slotEditor {
	if settings.Title == types.TitleTR5 {
		return &tr5Slot{tr5.NewEditor(a, slotOff)}
	}
	return &tr2Slot{tr2.NewEditor(a, slotOff, settings.Platform)}
}

type tr2Slot struct{ *tr2.Editor }

func (s *tr2Slot) ReadState() (any, error) { return s.Read() }

func (s *tr2Slot) Vehicle(m health.Match) (bool, error) { return s.InVehicle(m.Offset) }

func (s *tr2Slot) WriteState(state any) error {
	st := state.(tr2.State)
	logger.Debug("write slot", "title", "tr2", "slot", s.Slot(), "level", st.Level)
	return s.Write(st)
}

func (s *tr2Slot) Apply(state any, field, value string) (any, error) {
	st := state.(tr2.State)
	err := applyTR2(&st, field, value)
	return st, err
}

type tr5Slot struct{ *tr5.Editor }

func (s *tr5Slot) ReadState() (any, error) { return s.Read() }

func (s *tr5Slot) Vehicle(health.Match) (bool, error) { return false, nil }

func (s *tr5Slot) WriteState(state any) error {
	st := state.(tr5.State)
	logger.Debug("write slot", "title", "tr5", "slot", s.Slot(), "level", st.Level)
	return s.Write(st)
}

func (s *tr5Slot) Apply(state any, field, value string) (any, error) {
	st := state.(tr5.State)
	err := applyTR5(&st, field, value)
	return st, err
}

// describeLevel renders a level for text output.
func describeLevel(level uint8) string {
	if name, ok := profile().LevelName(level); ok {
		return fmt.Sprintf("%s (%d)", name, level)
	}
	return fmt.Sprintf("unknown (%d)", level)
}
