// Package rotation picks and applies the next desktop wallpaper.
package rotation

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/hay-kot/randwall/internal/core/history"
	"github.com/hay-kot/randwall/internal/core/picker"
	"github.com/hay-kot/randwall/internal/core/wallpaper"
)

// Lister lists wallpaper candidates in a directory.
type Lister interface {
	List(dir string) ([]string, error)
}

// Setter applies a wallpaper.
type Setter interface {
	Check(ctx context.Context) error
	Set(ctx context.Context, path string, mode wallpaper.Mode, display string) error
}

// DirResolver finds the default picture directory.
type DirResolver interface {
	PicturesDir() (string, error)
}

// Request describes one rotation.
type Request struct {
	Dir     string // Picture directory; resolved from the environment if empty
	Mode    wallpaper.Mode
	Display string
	DryRun  bool // Pick without recording history or touching the desktop
}

// Result describes the applied wallpaper.
type Result struct {
	Dir        string
	Name       string
	Path       string
	Mode       wallpaper.Mode
	Display    string
	Reset      bool
	Candidates int
	Pool       int
}

// Service orchestrates a rotation.
type Service struct {
	lister   Lister
	history  history.Store
	picker   *picker.Picker
	setter   Setter
	resolver DirResolver
	log      zerolog.Logger
}

// New creates a new Service.
func New(
	lister Lister,
	store history.Store,
	p *picker.Picker,
	setter Setter,
	resolver DirResolver,
	log zerolog.Logger,
) *Service {
	return &Service{
		lister:   lister,
		history:  store,
		picker:   p,
		setter:   setter,
		resolver: resolver,
		log:      log,
	}
}

// ResolveDir returns dir, or the discovered pictures directory when dir is empty.
func (s *Service) ResolveDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}

	found, err := s.resolver.PicturesDir()
	if err != nil {
		return "", err
	}
	s.log.Debug().Str("dir", found).Msg("discovered pictures directory")
	return found, nil
}

// Rotate lists the directory, picks a wallpaper avoiding recent ones,
// records it and applies it.
func (s *Service) Rotate(ctx context.Context, req Request) (*Result, error) {
	dir, err := s.ResolveDir(req.Dir)
	if err != nil {
		return nil, err
	}

	candidates, err := s.lister.List(dir)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Str("dir", dir).Int("candidates", len(candidates)).Msg("listed candidates")

	if !req.DryRun {
		if err := s.setter.Check(ctx); err != nil {
			return nil, err
		}
	}

	recent, err := s.history.Load(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("ignoring unreadable history")
		recent = nil
	}

	sel, err := s.picker.Pick(candidates, recent)
	if err != nil {
		return nil, fmt.Errorf("%w in %q", err, dir)
	}

	path, err := filepath.Abs(filepath.Join(dir, sel.Name))
	if err != nil {
		return nil, fmt.Errorf("resolve wallpaper path: %w", err)
	}

	res := &Result{
		Dir:        dir,
		Name:       sel.Name,
		Path:       path,
		Mode:       req.Mode,
		Display:    req.Display,
		Reset:      sel.Reset,
		Candidates: len(candidates),
		Pool:       sel.Pool,
	}

	s.log.Info().
		Str("name", sel.Name).
		Bool("reset", sel.Reset).
		Int("pool", sel.Pool).
		Int("history", len(recent)).
		Msg("selected wallpaper")

	if req.DryRun {
		return res, nil
	}

	if ctx.Err() != nil {
		return nil, wallpaper.ErrInterrupted
	}

	if err := history.Record(ctx, s.history, sel.Name, sel.Reset); err != nil {
		return nil, fmt.Errorf("record history: %w", err)
	}

	if err := s.setter.Set(ctx, path, req.Mode, req.Display); err != nil {
		return nil, err
	}

	return res, nil
}
