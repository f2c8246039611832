// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/tuipractice/internal/model"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Practice PracticeConfig `toml:"practice"`
	Display  DisplayConfig  `toml:"display"`
	Theme    ThemeConfig    `toml:"theme"`
}

// PracticeConfig maps session behavior settings.
type PracticeConfig struct {
	KeepTrailingNewline *bool `toml:"keep-trailing-newline"`
	ExitOnComplete      *bool `toml:"exit-on-complete"`
}

// DisplayConfig maps layout settings.
type DisplayConfig struct {
	WidthPct *float64 `toml:"width-pct"`
	KeyHelp  *bool    `toml:"key-help"`
}

// ThemeConfig maps color overrides. Values are hex colors or ANSI color numbers.
type ThemeConfig struct {
	Typed      *string `toml:"typed"`
	MistypedFg *string `toml:"mistyped-fg"`
	MistypedBg *string `toml:"mistyped-bg"`
	CurrentFg  *string `toml:"current-fg"`
	CurrentBg  *string `toml:"current-bg"`
	Untyped    *string `toml:"untyped"`
	Footer     *string `toml:"footer"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// ApplyTheme overlays the configured colors onto base.
func (c ThemeConfig) ApplyTheme(base model.Theme) model.Theme {
	set := func(target *string, value *string) {
		if value != nil && *value != "" {
			*target = *value
		}
	}
	set(&base.Typed, c.Typed)
	set(&base.MistypedFg, c.MistypedFg)
	set(&base.MistypedBg, c.MistypedBg)
	set(&base.CurrentFg, c.CurrentFg)
	set(&base.CurrentBg, c.CurrentBg)
	set(&base.Untyped, c.Untyped)
	set(&base.Footer, c.Footer)
	return base
}
