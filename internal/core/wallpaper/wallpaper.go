// Package wallpaper defines the shared wallpaper domain types and error kinds.
package wallpaper

import (
	"errors"
	"strings"
)

var (
	// ErrPath is returned when a picture directory does not exist, is not a
	// directory, or cannot be read and traversed.
	ErrPath = errors.New("invalid picture directory")
	// ErrConfigDiscovery is returned when no picture directory can be resolved
	// from the environment or user-dirs configuration.
	ErrConfigDiscovery = errors.New("picture directory not found")
	// ErrToolMissing is returned when the file manager binary is not on PATH.
	ErrToolMissing = errors.New("file manager not installed")
	// ErrEmptyPool is returned when there are no files to choose from.
	ErrEmptyPool = errors.New("no wallpapers to choose from")
	// ErrWallpaperSet is returned when the file manager fails to set the wallpaper.
	ErrWallpaperSet = errors.New("wallpaper setting process failed")
	// ErrInterrupted is returned when the run is cancelled by a signal.
	ErrInterrupted = errors.New("terminated by user")
)

// Mode is a pcmanfm wallpaper display mode.
type Mode string

const (
	ModeColor   Mode = "color"
	ModeStretch Mode = "stretch"
	ModeFit     Mode = "fit"
	ModeCenter  Mode = "center"
	ModeTile    Mode = "tile"
)

// DefaultMode is used when no valid mode is given.
const DefaultMode = ModeCenter

// DefaultDisplay is the X display used when no valid display is given.
const DefaultDisplay = ":0"

// Modes returns every supported mode in help order.
func Modes() []Mode {
	return []Mode{ModeColor, ModeStretch, ModeFit, ModeCenter, ModeTile}
}

// ParseMode returns the mode named by s. The second result is false when s
// is not a supported mode.
func ParseMode(s string) (Mode, bool) {
	for _, m := range Modes() {
		if string(m) == s {
			return m, true
		}
	}
	return "", false
}

// ModeOr returns the mode named by s, or fallback when s is not valid.
func ModeOr(s string, fallback Mode) Mode {
	if m, ok := ParseMode(s); ok {
		return m
	}
	return fallback
}

// ValidDisplay reports whether s has the form ":N" with N a decimal number.
func ValidDisplay(s string) bool {
	num, ok := strings.CutPrefix(s, ":")
	if !ok || num == "" {
		return false
	}
	for _, r := range num {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// DisplayOr returns s when it is a valid display, otherwise fallback.
func DisplayOr(s, fallback string) string {
	if ValidDisplay(s) {
		return s
	}
	return fallback
}

// ModeNames returns the supported modes joined with sep.
func ModeNames(sep string) string {
	names := make([]string, 0, len(Modes()))
	for _, m := range Modes() {
		names = append(names, string(m))
	}
	return strings.Join(names, sep)
}
