package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/randwall/internal/core/catalog"
	"github.com/hay-kot/randwall/internal/core/picker"
	"github.com/hay-kot/randwall/internal/core/wallpaper"
	"github.com/hay-kot/randwall/internal/printer"
	"github.com/hay-kot/randwall/internal/rotation"
)

// RotateCmd is the default action: pick and apply a wallpaper.
type RotateCmd struct {
	flags *Flags

	mode       string
	display    string
	dryRun     bool
	imagesOnly bool
	include    []string
}

// NewRotateCmd creates the rotate action.
func NewRotateCmd(flags *Flags) *RotateCmd {
	return &RotateCmd{flags: flags}
}

// Flags returns the flags for the rotate action, registered on the root command.
func (cmd *RotateCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "wallpaper-mode",
			Usage:       "wallpaper mode (" + wallpaper.ModeNames("|") + "); invalid values are ignored",
			Sources:     cli.EnvVars("RANDWALL_WALLPAPER_MODE"),
			Destination: &cmd.mode,
		},
		&cli.StringFlag{
			Name:        "display",
			Usage:       "X display to use, as :<display number>; invalid values are ignored",
			Sources:     cli.EnvVars("RANDWALL_DISPLAY"),
			Destination: &cmd.display,
		},
		&cli.BoolFlag{
			Name:        "dry-run",
			Aliases:     []string{"n"},
			Usage:       "print the selected wallpaper without recording or setting it",
			Destination: &cmd.dryRun,
		},
		&cli.BoolFlag{
			Name:        "images-only",
			Usage:       "skip files that are not decodable images",
			Destination: &cmd.imagesOnly,
		},
		&cli.StringSliceFlag{
			Name:        "include",
			Usage:       "only consider file names matching the glob `PATTERN` (repeatable)",
			Destination: &cmd.include,
		},
	}
}

// Run picks and applies a wallpaper.
func (cmd *RotateCmd) Run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)
	cfg := cmd.flags.Config

	dir, err := pictureDirArg(c.Args().Slice())
	if err != nil {
		return err
	}
	if dir == "" {
		dir = cfg.PicturesDir
	}

	opts := cfg.ListOptions()
	if cmd.imagesOnly {
		opts.ImagesOnly = true
	}
	if len(cmd.include) > 0 {
		opts.Include = cmd.include
		if invalid := catalog.InvalidPatterns(opts.Include); len(invalid) > 0 {
			return fmt.Errorf("invalid --include pattern %q", invalid[0])
		}
	}

	req := rotation.Request{
		Dir:     dir,
		Mode:    cmd.resolveMode(cfg.Mode()),
		Display: cmd.resolveDisplay(cfg.Display),
		DryRun:  cmd.dryRun,
	}

	svc := rotation.New(
		catalog.New(opts),
		cmd.flags.History,
		picker.New(picker.WithThreshold(cfg.ResetThreshold)),
		cmd.flags.Setter,
		cmd.flags.Resolver,
		log.With().Str("component", "rotation").Logger(),
	)

	res, err := svc.Rotate(ctx, req)
	if err != nil {
		return err
	}

	p.Infof("wallpaper directory: %s", res.Dir)
	if res.Reset {
		p.Infof("fewer than %d unused wallpapers left, history restarted", cfg.ResetThreshold)
	}
	if cmd.dryRun {
		p.Successf("would set wallpaper: %s (%s, %s)", res.Name, res.Mode, res.Display)
		return nil
	}
	p.Successf("selected wallpaper: %s", res.Name)
	return nil
}

func (cmd *RotateCmd) resolveMode(fallback wallpaper.Mode) wallpaper.Mode {
	if cmd.mode == "" {
		return fallback
	}
	m, ok := wallpaper.ParseMode(cmd.mode)
	if !ok {
		log.Debug().Str("mode", cmd.mode).Str("using", string(fallback)).Msg("ignoring unknown wallpaper mode")
		return fallback
	}
	return m
}

func (cmd *RotateCmd) resolveDisplay(fallback string) string {
	if cmd.display == "" {
		return fallback
	}
	if !wallpaper.ValidDisplay(cmd.display) {
		log.Debug().Str("display", cmd.display).Str("using", fallback).Msg("ignoring invalid display")
		return fallback
	}
	return cmd.display
}

// pictureDirArg returns the last positional argument. Every argument must
// exist on disk.
func pictureDirArg(args []string) (string, error) {
	dir := ""
	for _, arg := range args {
		if _, err := os.Stat(arg); err != nil {
			if os.IsNotExist(err) {
				return "", fmt.Errorf("%w: file %q doesn't exist", wallpaper.ErrPath, arg)
			}
			return "", fmt.Errorf("%w: %v", wallpaper.ErrPath, err)
		}
		dir = arg
	}
	return dir, nil
}
