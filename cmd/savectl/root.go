package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/savekit/internal/config"
	"github.com/joshuapare/savekit/internal/logger"
	"github.com/joshuapare/savekit/pkg/types"
)

var (
	// Global flags
	verbose      bool
	quiet        bool
	jsonOut      bool
	debug        bool
	configPath   string
	titleFlag    string
	platformFlag string

	// settings is the config file merged with the flags above.
	settings = config.Default()

	// numbers formats counts and percentages for text output.
	numbers = message.NewPrinter(language.English)
)

var rootCmd = &cobra.Command{
	Use:   "savectl",
	Short: "Inspect and edit savegame containers",
	Long: `savectl reads and edits the save slots of Title A (tr2) and Title B (tr5)
savegame containers: inventory, weapons, ammo and health.

Defaults for the title, platform and write safety come from an ini file
(see --config); flags override the file.`,
	Version:           "0.1.0",
	SilenceUsage:      true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return setup(cmd) },
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Write a debug log to the state directory")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", config.DefaultPath(), "Path to the ini config file")
	rootCmd.PersistentFlags().StringVar(&titleFlag, "title", "", "Container title: tr2 or tr5")
	rootCmd.PersistentFlags().StringVar(&platformFlag, "platform", "", "Build platform: pc or console")
}

// setup loads the config file, applies flag overrides and starts the logger.
func setup(cmd *cobra.Command) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if titleFlag != "" {
		if c.Title, err = types.ParseTitle(titleFlag); err != nil {
			return err
		}
	}
	if platformFlag != "" {
		if c.Platform, err = types.ParsePlatform(platformFlag); err != nil {
			return err
		}
	}
	settings = c

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logPath, err := logger.Init(logger.Options{Enabled: debug, Level: level})
	if err != nil {
		return fmt.Errorf("init debug log: %w", err)
	}
	if logPath != "" {
		printVerbose("Debug log: %s\n", logPath)
	}
	logger.Info("command start",
		"cmd", cmd.Name(),
		"title", settings.Title.String(),
		"platform", settings.Platform.String(),
		"config", settings.Path,
	)
	return nil
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "err", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		numbers.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		numbers.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// containerArg returns the container path from args, falling back to the
// config file's container key.
func containerArg(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if settings.Container != "" {
		return settings.Container, nil
	}
	return "", fmt.Errorf("no container given and no container set in %s", configPath)
}
