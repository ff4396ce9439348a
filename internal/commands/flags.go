package commands

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hay-kot/randwall/internal/core/config"
	"github.com/hay-kot/randwall/internal/core/xdg"
	"github.com/hay-kot/randwall/internal/pcmanfm"
	"github.com/hay-kot/randwall/internal/store/textfile"
)

type Flags struct {
	LogLevel    string
	LogFile     string
	ConfigPath  string
	HistoryFile string

	// Populated in the Before hook and available to all commands
	Config   *config.Config
	History  *textfile.HistoryStore
	Setter   *pcmanfm.Setter
	Resolver *xdg.Resolver
}

// ProgramName returns the executable name without its extension.
func ProgramName() string {
	base := filepath.Base(os.Args[0])
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "randwall", "config.yaml")
}

// DefaultHistoryPath returns the history file in the temporary directory,
// named after the program.
func DefaultHistoryPath(program string) string {
	return filepath.Join(os.TempDir(), program+".tmp")
}
