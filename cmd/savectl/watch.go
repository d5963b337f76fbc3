package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/joshuapare/savekit/internal/logger"
	"github.com/joshuapare/savekit/save"
	"github.com/joshuapare/savekit/save/catalog"
)

var watchOpts watchOptions

func init() {
	cmd := newWatchCmd()
	cmd.Flags().DurationVar(&watchOpts.Debounce, "debounce", 200*time.Millisecond,
		"Wait this long after the last write before re-scanning")
	cmd.Flags().BoolVar(&watchOpts.TopUp, "top-up", false,
		"After a write only add newly filled slots; listed slots keep their first entry")
	rootCmd.AddCommand(cmd)
}

type watchOptions struct {
	Debounce time.Duration
	// TopUp merges newly valid slots into the previous catalog instead of
	// rebuilding it. A replaced container is always scanned in full.
	TopUp bool
}

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [container]",
		Short: "Re-scan a container every time it is written",
		Long: `The watch command prints the slot catalog, then prints it again whenever the
game (or another tool) writes the container. Stop it with Ctrl-C.

Example:
  savectl watch savegame.dat
  savectl watch savegame.dat --json --debounce 1s
  savectl watch savegame.dat --top-up`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := containerArg(args)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return watchContainer(ctx, path, profile(), watchOpts, printScan)
		},
	}
	return cmd
}

// scanEvent is one catalog refresh.
type scanEvent struct {
	Container string               `json:"container"`
	Time      time.Time            `json:"time"`
	Slots     []catalog.Descriptor `json:"slots"`
	Err       string               `json:"error,omitempty"`
}

func printScan(ev scanEvent) {
	if jsonOut {
		_ = printJSON(ev)
		return
	}
	if ev.Err != "" {
		fmt.Fprintf(os.Stderr, "Error: %s\n", ev.Err)
		return
	}
	printInfo("\n[%s]", ev.Time.Format(time.TimeOnly))
	printSlots(ev.Container, ev.Slots)
}

// watchContainer scans path once, then again after each burst of writes to
// it, until ctx is done. The parent directory is watched so the container
// can be replaced by rename.
func watchContainer(ctx context.Context, path string, p *save.Profile, opts watchOptions, emit func(scanEvent)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(abs); err != nil {
		return fmt.Errorf("failed to watch container: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	var slots []catalog.Descriptor
	scan := func(full bool) {
		ev := scanEvent{Container: path, Time: time.Now()}
		a := save.NewFile(abs)
		var err error
		if full {
			slots, err = catalog.Scan(a, p)
		} else {
			var fresh []catalog.Descriptor
			if fresh, err = catalog.ScanMissing(a, p, catalog.Slots(slots)); err == nil {
				slots = catalog.Merge(slots, fresh)
			}
		}
		if err != nil {
			ev.Err = err.Error()
		}
		ev.Slots = slots
		logger.Debug("watch scan", "container", abs, "full", full, "slots", len(slots), "err", err)
		emit(ev)
	}
	scan(true)

	timer := time.NewTimer(opts.Debounce)
	timer.Stop()
	defer timer.Stop()
	replaced := false

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Has(fsnotify.Create) {
				replaced = true
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				timer.Reset(opts.Debounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "container", abs, "err", err)
		case <-timer.C:
			scan(replaced || !opts.TopUp)
			replaced = false
		}
	}
}
