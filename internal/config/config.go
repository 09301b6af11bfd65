// Package config provides configuration loading and saving for tscpgo.
//
// Configuration files are stored in ~/.tscpgo/config.toml using TOML
// format, following the teacher's internal/config package: same
// directory-permission/file-permission conventions, same "never fail,
// fall back to defaults" LoadConfig contract.
//
// Config directory permissions: 0755 (rwxr-xr-x)
// Config file permissions: 0644 (rw-r--r--)
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultTheme is the default display theme name.
const DefaultTheme = "classic"

// DefaultPostMode is the default search-progress reporting mode.
const DefaultPostMode = "console"

// Config holds the options the shell needs at startup.
type Config struct {
	// UseUnicode selects Unicode chess glyphs over ASCII letters.
	UseUnicode bool
	// ShowCoords shows file/rank labels around the board.
	ShowCoords bool
	// UseColors colors piece symbols.
	UseColors bool
	// Theme names the display color theme.
	Theme string

	// MaxDepth is the default per-move ply budget (the sd default).
	MaxDepth int
	// MaxTimeMS is the default per-move time budget in milliseconds
	// (the st default).
	MaxTimeMS int64
	// PostMode is the default search-progress reporting mode: "none",
	// "console", or "xboard".
	PostMode string
}

// DefaultConfig returns a Config with TSCP's own defaults: five seconds
// per move, depth capped at search.MaxLevelDepth, console posting on.
func DefaultConfig() Config {
	return Config{
		UseUnicode: false,
		ShowCoords: true,
		UseColors:  true,
		Theme:      DefaultTheme,
		MaxDepth:   32,
		MaxTimeMS:  5000,
		PostMode:   DefaultPostMode,
	}
}

// configFile mirrors Config as a TOML document with [display]/[engine]
// sections, ported from the teacher's ConfigFile split.
type configFile struct {
	Display displaySection `toml:"display"`
	Engine  engineSection  `toml:"engine"`
}

type displaySection struct {
	UseUnicode bool   `toml:"use_unicode"`
	ShowCoords bool   `toml:"show_coordinates"`
	UseColors  bool   `toml:"use_colors"`
	Theme      string `toml:"theme"`
}

type engineSection struct {
	MaxDepth  int    `toml:"max_depth"`
	MaxTimeMS int64  `toml:"max_time_ms"`
	PostMode  string `toml:"post_mode"`
}

func toConfigFile(c Config) configFile {
	theme := c.Theme
	if theme == "" {
		theme = DefaultTheme
	}
	postMode := c.PostMode
	if postMode == "" {
		postMode = DefaultPostMode
	}
	return configFile{
		Display: displaySection{
			UseUnicode: c.UseUnicode,
			ShowCoords: c.ShowCoords,
			UseColors:  c.UseColors,
			Theme:      theme,
		},
		Engine: engineSection{
			MaxDepth:  c.MaxDepth,
			MaxTimeMS: c.MaxTimeMS,
			PostMode:  postMode,
		},
	}
}

func fromConfigFile(cf configFile) Config {
	theme := cf.Display.Theme
	if theme == "" {
		theme = DefaultTheme
	}
	postMode := cf.Engine.PostMode
	if postMode == "" {
		postMode = DefaultPostMode
	}
	maxDepth := cf.Engine.MaxDepth
	if maxDepth == 0 {
		maxDepth = DefaultConfig().MaxDepth
	}
	maxTimeMS := cf.Engine.MaxTimeMS
	if maxTimeMS == 0 {
		maxTimeMS = DefaultConfig().MaxTimeMS
	}
	return Config{
		UseUnicode: cf.Display.UseUnicode,
		ShowCoords: cf.Display.ShowCoords,
		UseColors:  cf.Display.UseColors,
		Theme:      theme,
		MaxDepth:   maxDepth,
		MaxTimeMS:  maxTimeMS,
		PostMode:   postMode,
	}
}

// LoadConfig reads ~/.tscpgo/config.toml. If the file doesn't exist or
// can't be parsed, it returns DefaultConfig — this function never fails.
func LoadConfig() Config {
	configPath, err := getConfigFilePath()
	if err != nil {
		return DefaultConfig()
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig()
	}

	var cf configFile
	if _, err := toml.DecodeFile(configPath, &cf); err != nil {
		return DefaultConfig()
	}
	return fromConfigFile(cf)
}

// SaveConfig writes config to ~/.tscpgo/config.toml, creating the
// directory if necessary.
func SaveConfig(cfg Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath, err := getConfigFilePath()
	if err != nil {
		return fmt.Errorf("failed to get config file path: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(toConfigFile(cfg)); err != nil {
		return fmt.Errorf("failed to encode config to TOML: %w", err)
	}
	return nil
}
