package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/savekit/internal/logger"
	"github.com/joshuapare/savekit/save"
)

func init() {
	rootCmd.AddCommand(newBackupCmd())
}

func newBackupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup [container]",
		Short: "Copy a container to <container>.bak",
		Long: `The backup command writes an atomic copy of the container next to it.
An existing backup is replaced.

Example:
  savectl backup savegame.dat`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBackup(args)
		},
	}
	return cmd
}

func runBackup(args []string) error {
	path, err := containerArg(args)
	if err != nil {
		return err
	}
	bak, err := save.Backup(path)
	if err != nil {
		return fmt.Errorf("failed to back up container: %w", err)
	}
	logger.Info("backup", "container", path, "backup", bak)

	if jsonOut {
		return printJSON(map[string]any{"container": path, "backup": bak})
	}
	printInfo("Backup created: %s\n", bak)
	return nil
}
