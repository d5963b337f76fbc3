// Package logger holds the process-wide debug logger used by savectl.
//
// Library packages never log. The CLI enables logging with --debug, which
// writes JSON lines to a dated file in the state directory.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// L is the global logger instance. It discards all output until Init enables it.
var L = slog.New(slog.NewTextHandler(io.Discard, nil))

const (
	logPrefix     = "savectl-"
	logSuffix     = ".log"
	dateLayout    = "2006-01-02"
	retentionDays = 7
)

// Options configures the logger initialization.
type Options struct {
	Enabled bool       // If false, all logging is discarded
	LogDir  string     // Directory for log files. Default: DefaultDir()
	Level   slog.Level // Minimum log level. Default: LevelInfo when enabled
}

// DefaultDir returns $XDG_STATE_HOME/savekit, falling back to
// ~/.local/state/savekit and then to the temp dir.
func DefaultDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "savekit")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state", "savekit")
	}
	return filepath.Join(os.TempDir(), "savekit")
}

// Init configures logging. It returns the path of the log file, or "" when
// logging is disabled.
func Init(opts Options) (string, error) {
	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return "", nil
	}

	logDir := opts.LogDir
	if logDir == "" {
		logDir = DefaultDir()
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return "", err
	}

	// Best effort.
	cleanOldLogs(logDir, time.Now())

	filename := filepath.Join(logDir, logPrefix+time.Now().Format(dateLayout)+logSuffix)
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return "", err
	}

	level := opts.Level
	if level == 0 {
		level = slog.LevelInfo
	}
	L = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	return filename, nil
}

// cleanOldLogs removes log files older than retentionDays relative to now.
func cleanOldLogs(logDir string, now time.Time) {
	cutoff := now.AddDate(0, 0, -retentionDays)

	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, logPrefix) || !strings.HasSuffix(name, logSuffix) {
			continue
		}
		// savectl-2026-01-05.log
		dateStr := strings.TrimPrefix(strings.TrimSuffix(name, logSuffix), logPrefix)
		logDate, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			continue
		}
		if logDate.Before(cutoff) {
			os.Remove(filepath.Join(logDir, name))
		}
	}
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }
