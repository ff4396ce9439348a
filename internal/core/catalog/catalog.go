// Package catalog lists wallpaper candidates in a picture directory.
package catalog

import (
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder registration
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	_ "golang.org/x/image/bmp"  // BMP decoder registration
	_ "golang.org/x/image/tiff" // TIFF decoder registration
	_ "golang.org/x/image/webp" // WebP decoder registration
	"golang.org/x/sys/unix"

	"github.com/hay-kot/randwall/internal/core/wallpaper"
)

// Options filters the listed entries. The zero value lists every
// non-directory entry.
type Options struct {
	// Include holds doublestar patterns matched against the bare file name.
	// When non-empty, a file must match at least one.
	Include []string
	// ImagesOnly keeps only files with a decodable image header.
	ImagesOnly bool
}

// Lister lists candidates.
type Lister struct {
	opts Options
}

// New creates a Lister with the given filters.
func New(opts Options) *Lister {
	return &Lister{opts: opts}
}

// CheckDir verifies dir exists, is a directory, and is readable and
// traversable by the current user.
func CheckDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: path %q doesn't exist", wallpaper.ErrPath, dir)
		}
		return fmt.Errorf("%w: %v", wallpaper.ErrPath, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: path %q isn't a directory", wallpaper.ErrPath, dir)
	}

	if err := unix.Access(dir, unix.R_OK|unix.X_OK); err != nil {
		return fmt.Errorf("%w: you're not allowed to access %q", wallpaper.ErrPath, dir)
	}

	return nil
}

// List returns the names of entries in dir that are not directories, in
// directory order.
func (l *Lister) List(dir string) ([]string, error) {
	if err := CheckDir(dir); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: read %q: %v", wallpaper.ErrPath, dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())

		if isDir(entry, full) {
			continue
		}

		if !l.included(entry.Name()) {
			continue
		}

		if l.opts.ImagesOnly && !IsImage(full) {
			continue
		}

		names = append(names, entry.Name())
	}

	return names, nil
}

func (l *Lister) included(name string) bool {
	if len(l.opts.Include) == 0 {
		return true
	}
	for _, pattern := range l.opts.Include {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

// isDir follows symlinks; a dangling link counts as a file.
func isDir(entry os.DirEntry, full string) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(full)
	return err == nil && info.IsDir()
}

// IsImage reports whether path starts with a header of a registered image
// format.
func IsImage(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer func() { _ = f.Close() }()

	_, _, err = image.DecodeConfig(f)
	return err == nil
}

// InvalidPatterns returns the patterns that are not valid doublestar syntax.
func InvalidPatterns(patterns []string) (invalid []string) {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			invalid = append(invalid, p)
		}
	}
	return invalid
}
