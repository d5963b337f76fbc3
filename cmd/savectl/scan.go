package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/savekit/internal/logger"
	"github.com/joshuapare/savekit/save"
	"github.com/joshuapare/savekit/save/catalog"
)

func init() {
	rootCmd.AddCommand(newScanCmd())
}

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [container]",
		Short: "List the valid save slots of a container",
		Long: `The scan command lists every slot whose status is set, whose level is known
to the selected title and whose save number is not negative.

Example:
  savectl scan savegame.dat
  savectl scan savegame.dat --title tr5 --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(args)
		},
	}
	return cmd
}

func runScan(args []string) error {
	path, err := containerArg(args)
	if err != nil {
		return err
	}
	printVerbose("Scanning %s container: %s\n", settings.Title, path)

	slots, err := catalog.Scan(save.NewFile(path), profile())
	if err != nil {
		return fmt.Errorf("failed to scan container: %w", err)
	}
	logger.Info("scan", "container", path, "slots", len(slots))

	if jsonOut {
		if slots == nil {
			slots = []catalog.Descriptor{}
		}
		return printJSON(slots)
	}
	printSlots(path, slots)
	return nil
}

func printSlots(path string, slots []catalog.Descriptor) {
	printInfo("\n%s: %d slot(s)\n", path, len(slots))
	if len(slots) == 0 {
		return
	}
	rows := make([][]string, 0, len(slots))
	for _, d := range slots {
		rows = append(rows, []string{
			strconv.Itoa(d.Slot),
			fmt.Sprintf("0x%07X", d.Offset),
			d.Mode.String(),
			d.DisplayName(),
		})
	}
	printInfo("%s\n", renderTable([]string{"SLOT", "OFFSET", "MODE", "SAVE"}, rows, 1))
}
