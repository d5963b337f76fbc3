package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/savekit/pkg/types"
	"github.com/joshuapare/savekit/save"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <container> <slot> <field>",
		Short: "Print a single slot field",
		Long: `The get command prints one decoded field of a slot.

Fields: save_number, small_medipacks, large_medipacks, flares, health,
secrets (tr5), weapon.<name> and ammo.<name>. Shotgun ammo is in shells.

Example:
  savectl get savegame.dat 0 health
  savectl get savegame.dat 0 ammo.shotgun
  savectl get savegame.dat 2 weapon.hk --title tr5`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	path, name := args[0], args[2]
	slot, off, err := slotOffset(args[1])
	if err != nil {
		return err
	}

	state, err := newSlotEditor(save.NewFile(path), off).ReadState()
	if err != nil {
		return fmt.Errorf("failed to read slot %d: %w", slot, err)
	}
	fields := fieldsOf(state)
	f, ok := lookupField(fields, name)
	if !ok {
		if len(fields) == headerFieldCount {
			return fmt.Errorf("field %q: %w", name, types.ErrUnsupportedLevel)
		}
		return types.Invalid("unknown field %q", name)
	}

	if jsonOut {
		return printJSON(f)
	}
	// Always printed, even with --quiet, so scripts can capture it.
	fmt.Fprintln(os.Stdout, f.Value)
	return nil
}
