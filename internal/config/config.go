// Package config loads savectl defaults from an ini file.
//
// All keys live in the default section:
//
//	title     = tr2        ; tr2 or tr5
//	platform  = pc         ; pc or console (tr2 health and secondary tables)
//	container = /path/to/savegame.dat
//	durable   = false      ; fdatasync after writes
//	backup    = true       ; copy the container to <path>.bak before writes
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"

	"github.com/joshuapare/savekit/pkg/types"
)

// FileName is the config file name inside the config directory.
const FileName = "savekit.ini"

// Config holds resolved settings.
type Config struct {
	Title     types.Title
	Platform  types.Platform
	Container string
	Durable   bool
	Backup    bool

	// Path is the file the values were read from, empty when defaults apply.
	Path string
}

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{
		Title:    types.TitleTR2,
		Platform: types.PlatformPC,
		Backup:   true,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/savekit/savekit.ini (or the
// platform's user config dir).
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "savekit", FileName)
}

// Load reads path. A missing file yields Default with no error; an
// unreadable or malformed file, or a bad title or platform, is an error.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return c, nil
	}

	cfg, err := ini.Load(path)
	if err != nil {
		return c, fmt.Errorf("load config %s: %w", path, err)
	}
	sec := cfg.Section("")

	if v := sec.Key("title").String(); v != "" {
		if c.Title, err = types.ParseTitle(v); err != nil {
			return c, fmt.Errorf("config %s: %w", path, err)
		}
	}
	if v := sec.Key("platform").String(); v != "" {
		if c.Platform, err = types.ParsePlatform(v); err != nil {
			return c, fmt.Errorf("config %s: %w", path, err)
		}
	}
	c.Container = sec.Key("container").String()
	c.Durable = sec.Key("durable").MustBool(c.Durable)
	c.Backup = sec.Key("backup").MustBool(c.Backup)
	c.Path = path
	return c, nil
}

// Save writes c to path, creating the parent directory.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	cfg := ini.Empty()
	sec := cfg.Section("")
	sec.Key("title").SetValue(c.Title.String())
	sec.Key("platform").SetValue(c.Platform.String())
	if c.Container != "" {
		sec.Key("container").SetValue(c.Container)
	}
	sec.Key("durable").SetValue(fmt.Sprint(c.Durable))
	sec.Key("backup").SetValue(fmt.Sprint(c.Backup))
	return cfg.SaveTo(path)
}
