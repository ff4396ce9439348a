// Package pcmanfm sets the LXDE desktop wallpaper through the pcmanfm file
// manager.
package pcmanfm

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hay-kot/randwall/internal/core/wallpaper"
	"github.com/hay-kot/randwall/pkg/executil"
)

// DefaultBinary is the LXDE file manager executable.
const DefaultBinary = "pcmanfm"

// Setter applies wallpapers by running the file manager.
type Setter struct {
	binary string
	exec   executil.Executor
	log    zerolog.Logger
	stdout io.Writer
	stderr io.Writer
}

// New creates a Setter running binary through exec.
func New(log zerolog.Logger, exec executil.Executor, binary string, stdout, stderr io.Writer) *Setter {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Setter{
		binary: binary,
		exec:   exec,
		log:    log,
		stdout: stdout,
		stderr: stderr,
	}
}

// Binary returns the file manager executable name.
func (s *Setter) Binary() string {
	return s.binary
}

// Check returns ErrToolMissing when the file manager is not on PATH.
func (s *Setter) Check(ctx context.Context) error {
	path, err := s.exec.LookPath(s.binary)
	if err != nil {
		return fmt.Errorf("%w: %q isn't installed or isn't in PATH", wallpaper.ErrToolMissing, s.binary)
	}
	s.log.Debug().Str("path", path).Msg("found file manager")
	return nil
}

// Args returns the file manager arguments for setting path as wallpaper.
func Args(path string, mode wallpaper.Mode, display string) []string {
	return []string{
		"--set-wallpaper=" + path,
		"--wallpaper-mode=" + string(mode),
		"--display=" + display,
	}
}

// Set runs the file manager and waits for it to exit.
func (s *Setter) Set(ctx context.Context, path string, mode wallpaper.Mode, display string) error {
	args := Args(path, mode, display)
	s.log.Debug().Str("cmd", s.binary+" "+strings.Join(args, " ")).Msg("setting wallpaper")

	if err := s.exec.RunStream(ctx, s.stdout, s.stderr, s.binary, args...); err != nil {
		if ctx.Err() != nil {
			return wallpaper.ErrInterrupted
		}
		return fmt.Errorf("%w: %v", wallpaper.ErrWallpaperSet, err)
	}

	return nil
}

// Version returns the first line of the file manager's --version output.
func (s *Setter) Version(ctx context.Context) (string, error) {
	out, err := s.exec.Run(ctx, s.binary, "--version")
	if err != nil {
		return "", err
	}
	line, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	return line, nil
}
