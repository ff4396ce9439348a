// Package xdg resolves the user's pictures directory from the XDG
// environment and user-dirs configuration.
package xdg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hay-kot/randwall/internal/core/wallpaper"
)

const (
	// PicturesKey names the pictures directory in the environment and in
	// user-dirs.dirs.
	PicturesKey = "XDG_PICTURES_DIR"

	userDirsFile = "user-dirs.dirs"
)

// LookupEnv reports the value of an environment variable. os.LookupEnv
// satisfies it.
type LookupEnv func(key string) (string, bool)

// Resolver finds the pictures directory.
type Resolver struct {
	lookup LookupEnv
}

// NewResolver creates a Resolver reading variables through lookup.
func NewResolver(lookup LookupEnv) *Resolver {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &Resolver{lookup: lookup}
}

// PicturesDir returns XDG_PICTURES_DIR from the environment when it names a
// directory, otherwise the value configured in user-dirs.dirs.
func (r *Resolver) PicturesDir() (string, error) {
	if v, ok := r.lookup(PicturesKey); ok {
		dir := r.expand(v)
		if isDir(dir) {
			return dir, nil
		}
	}

	cfg, err := r.userDirsPath()
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(cfg)
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %v", wallpaper.ErrConfigDiscovery, cfg, err)
	}

	value, ok := ParseValue(string(data), PicturesKey)
	if !ok {
		return "", fmt.Errorf("%w: file %q doesn't contain a setting of %s", wallpaper.ErrConfigDiscovery, cfg, PicturesKey)
	}

	dir := r.expand(value)
	if dir == "" {
		return "", fmt.Errorf("%w: %s is empty in %q", wallpaper.ErrConfigDiscovery, PicturesKey, cfg)
	}

	return dir, nil
}

// UserDirsCandidates returns the config files searched, in order.
func (r *Resolver) UserDirsCandidates() []string {
	var paths []string
	if v, ok := r.lookup("XDG_CONFIG_HOME"); ok && v != "" {
		paths = append(paths, filepath.Join(v, userDirsFile))
	}
	if v, ok := r.lookup("HOME"); ok && v != "" {
		paths = append(paths, filepath.Join(v, ".config", userDirsFile))
	}
	return paths
}

func (r *Resolver) userDirsPath() (string, error) {
	candidates := r.UserDirsCandidates()
	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			return p, nil
		}
	}

	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: neither XDG_CONFIG_HOME nor HOME is set", wallpaper.ErrConfigDiscovery)
	}

	return "", fmt.Errorf("%w: file %q doesn't exist", wallpaper.ErrConfigDiscovery, candidates[len(candidates)-1])
}

func (r *Resolver) expand(s string) string {
	return os.Expand(s, func(key string) string {
		v, _ := r.lookup(key)
		return v
	})
}

// ParseValue finds the first non-comment line of a shell-style assignment
// file that contains key and returns the unquoted text after its first "=".
func ParseValue(data, key string) (string, bool) {
	for line := range strings.SplitSeq(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !strings.Contains(line, key) {
			continue
		}

		_, value, ok := strings.Cut(line, "=")
		if !ok {
			return "", false
		}

		value = strings.TrimSpace(value)
		value = strings.Trim(value, `"'`)
		return value, true
	}

	return "", false
}

func isDir(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
