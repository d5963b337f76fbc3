package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/savekit/internal/logger"
	"github.com/joshuapare/savekit/pkg/types"
	"github.com/joshuapare/savekit/save"
	"github.com/joshuapare/savekit/save/tr2"
)

func init() {
	rootCmd.AddCommand(newLocateCmd())
}

func newLocateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locate <container> <slot>",
		Short: "Locate the health field and mirrored ammo record of a slot",
		Long: `The locate command runs the health scan for the slot's level and, for tr2,
the secondary ammo record scan, and prints the offsets found.

Example:
  savectl locate savegame.dat 0
  savectl locate savegame.dat 0 --platform console --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocate(args)
		},
	}
	return cmd
}

// locateResult is the JSON shape of the locate command.
type locateResult struct {
	Slot            int            `json:"slot"`
	Offset          int            `json:"offset"`
	Level           uint8          `json:"level"`
	HealthFound     bool           `json:"health_found"`
	HealthOffset    int            `json:"health_offset,omitempty"`
	HealthRelative  int            `json:"health_relative,omitempty"`
	Health          uint16         `json:"health,omitempty"`
	State           string         `json:"state,omitempty"`
	InVehicle       bool           `json:"in_vehicle"`
	SecondaryFound  bool           `json:"secondary_found"`
	SecondaryIndex  int            `json:"secondary_index"`
	SecondaryOffset map[string]int `json:"secondary_offsets,omitempty"`
}

func runLocate(args []string) error {
	path := args[0]
	slot, off, err := slotOffset(args[1])
	if err != nil {
		return err
	}

	a := save.NewFile(path)
	ed := newSlotEditor(a, off)
	h, err := ed.Header()
	if err != nil {
		return fmt.Errorf("failed to read slot %d: %w", slot, err)
	}
	res := locateResult{Slot: slot, Offset: off, Level: h.Level, SecondaryIndex: -1}

	m, err := ed.Health()
	switch {
	case err == nil:
		res.HealthFound = true
		res.HealthOffset = m.Offset
		res.HealthRelative = m.Offset - off
		res.Health = m.Value
		res.State = m.Signature.State
		if res.InVehicle, err = ed.Vehicle(m); err != nil {
			return fmt.Errorf("failed to read vehicle state: %w", err)
		}
	case types.IsRecoverable(err):
		logger.Warn("health not located", "slot", slot, "level", h.Level, "err", err)
	default:
		return fmt.Errorf("failed to locate health: %w", err)
	}

	if t, ok := ed.(*tr2Slot); ok {
		sec, err := t.Secondary()
		switch {
		case err == nil:
			res.SecondaryFound = true
			res.SecondaryIndex = sec.Index
			res.SecondaryOffset = make(map[string]int, len(tr2.AmmoWeapons))
			for _, w := range tr2.AmmoWeapons {
				if o, ok := sec.Offset(w); ok {
					res.SecondaryOffset[w.String()] = off + o
				}
			}
		case !errors.Is(err, types.ErrNotLocatable):
			return fmt.Errorf("failed to locate secondary ammo: %w", err)
		}
	}
	logger.Info("locate", "slot", slot, "health_found", res.HealthFound, "secondary_index", res.SecondaryIndex)

	if jsonOut {
		return printJSON(res)
	}

	printInfo("\nSlot %d, %s:\n", slot, describeLevel(h.Level))
	if res.HealthFound {
		printInfo("  Health: %d at 0x%X (slot +0x%X), %s\n", res.Health, res.HealthOffset, res.HealthRelative, res.State)
		if res.InVehicle {
			printInfo("  In vehicle: yes\n")
		}
	} else {
		printInfo("  Health: not locatable\n")
	}
	if _, ok := ed.(*tr2Slot); ok {
		if !res.SecondaryFound {
			printInfo("  Secondary ammo: none\n")
			return nil
		}
		printInfo("  Secondary ammo index: %d\n", res.SecondaryIndex)
		for _, w := range tr2.AmmoWeapons {
			printInfo("    %-18s 0x%X\n", w.String(), res.SecondaryOffset[w.String()])
		}
	}
	return nil
}
