package config

import (
	"errors"
	"fmt"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/randwall/internal/core/catalog"
	"github.com/hay-kot/randwall/internal/core/wallpaper"
)

// Validate checks that the configuration is valid. Problems are reported as
// criterio.FieldErrors, one per offending key.
func (c *Config) Validate() error {
	var errs criterio.FieldErrors
	add := func(field string, err error) {
		errs = append(errs, criterio.FieldErrors{{Field: field, Err: err}}...)
	}

	if c.FileManager == "" {
		add("file_manager", errors.New("cannot be empty"))
	}

	if c.HistoryFile == "" {
		add("history_file", errors.New("cannot be empty"))
	}

	if c.ResetThreshold < 1 {
		add("reset_threshold", fmt.Errorf("must be at least 1, got %d", c.ResetThreshold))
	}

	if _, ok := wallpaper.ParseMode(c.WallpaperMode); !ok {
		add("wallpaper_mode", fmt.Errorf("%q is not one of %s", c.WallpaperMode, wallpaper.ModeNames(", ")))
	}

	if !wallpaper.ValidDisplay(c.Display) {
		add("display", fmt.Errorf("%q must look like :N", c.Display))
	}

	for _, p := range catalog.InvalidPatterns(c.Include) {
		add("include", fmt.Errorf("invalid pattern %q", p))
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
