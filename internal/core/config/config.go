// Package config handles configuration loading and validation for randwall.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hay-kot/randwall/internal/core/catalog"
	"github.com/hay-kot/randwall/internal/core/picker"
	"github.com/hay-kot/randwall/internal/core/wallpaper"
	"github.com/hay-kot/randwall/internal/pcmanfm"
)

// Config holds the application configuration.
type Config struct {
	FileManager    string   `yaml:"file_manager"`
	HistoryFile    string   `yaml:"history_file"`
	ResetThreshold int      `yaml:"reset_threshold"`
	WallpaperMode  string   `yaml:"wallpaper_mode"`
	Display        string   `yaml:"display"`
	PicturesDir    string   `yaml:"pictures_dir"`
	Include        []string `yaml:"include"`
	ImagesOnly     bool     `yaml:"images_only"`
}

// DefaultConfig returns a Config with sensible defaults. historyFile is
// the default history location, which depends on the program name.
func DefaultConfig(historyFile string) Config {
	return Config{
		FileManager:    pcmanfm.DefaultBinary,
		HistoryFile:    historyFile,
		ResetThreshold: picker.DefaultThreshold,
		WallpaperMode:  string(wallpaper.DefaultMode),
		Display:        wallpaper.DefaultDisplay,
		Include:        []string{},
	}
}

// Load reads configuration from configPath over the defaults.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath, historyFile string) (*Config, error) {
	cfg := DefaultConfig(historyFile)

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg.applyDefaults(historyFile)
	cfg.HistoryFile = expandHome(cfg.HistoryFile)
	cfg.PicturesDir = expandHome(cfg.PicturesDir)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults(historyFile string) {
	defaults := DefaultConfig(historyFile)
	if c.FileManager == "" {
		c.FileManager = defaults.FileManager
	}
	if c.HistoryFile == "" {
		c.HistoryFile = defaults.HistoryFile
	}
	if c.ResetThreshold == 0 {
		c.ResetThreshold = defaults.ResetThreshold
	}
	if c.WallpaperMode == "" {
		c.WallpaperMode = defaults.WallpaperMode
	}
	if c.Display == "" {
		c.Display = defaults.Display
	}
}

// Mode returns the configured wallpaper mode.
func (c *Config) Mode() wallpaper.Mode {
	return wallpaper.ModeOr(c.WallpaperMode, wallpaper.DefaultMode)
}

// ListOptions returns the candidate filters.
func (c *Config) ListOptions() catalog.Options {
	return catalog.Options{Include: c.Include, ImagesOnly: c.ImagesOnly}
}

func expandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}
