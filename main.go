package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/randwall/internal/commands"
	"github.com/hay-kot/randwall/internal/core/config"
	"github.com/hay-kot/randwall/internal/core/wallpaper"
	"github.com/hay-kot/randwall/internal/core/xdg"
	"github.com/hay-kot/randwall/internal/pcmanfm"
	"github.com/hay-kot/randwall/internal/printer"
	"github.com/hay-kot/randwall/internal/store/textfile"
	"github.com/hay-kot/randwall/pkg/executil"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func main() {
	if err := setupLogger("warn", ""); err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		p     = printer.New(os.Stdout)
		flags = &commands.Flags{}
	)
	ctx = printer.NewContext(ctx, p)

	app := &cli.Command{
		Name:      "randwall",
		Usage:     "Set a random LXDE desktop wallpaper",
		UsageText: "randwall [options] [path to picture directory]",
		Description: `Sets a random wallpaper from a picture directory using pcmanfm, skipping
wallpapers shown recently. Once fewer than reset_threshold (default 5)
unused wallpapers remain the history starts over.

Without a directory argument the pictures_dir config key is used, then the
XDG_PICTURES_DIR environment variable, then XDG_PICTURES_DIR from
$XDG_CONFIG_HOME/user-dirs.dirs or ~/.config/user-dirs.dirs.

Meant to be run from cron, for example every 15 minutes:

  */15 * * * * DISPLAY=:0 randwall ~/Pictures/wallpapers`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("RANDWALL_LOG_LEVEL"),
				Value:       "warn",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (optional)",
				Sources:     cli.EnvVars("RANDWALL_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("RANDWALL_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "history-file",
				Usage:       "path to the recent wallpaper list (default: " + commands.DefaultHistoryPath(commands.ProgramName()) + ")",
				Sources:     cli.EnvVars("RANDWALL_HISTORY_FILE"),
				Destination: &flags.HistoryFile,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := setupLogger(flags.LogLevel, flags.LogFile); err != nil {
				return ctx, err
			}

			cfg, err := config.Load(flags.ConfigPath, commands.DefaultHistoryPath(commands.ProgramName()))
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			if flags.HistoryFile != "" {
				cfg.HistoryFile = flags.HistoryFile
			}
			flags.Config = cfg

			var (
				exec   = &executil.RealExecutor{}
				logger = log.With().Str("component", "pcmanfm").Logger()
			)

			flags.History = textfile.NewHistoryStore(cfg.HistoryFile)
			flags.Setter = pcmanfm.New(logger, exec, cfg.FileManager, os.Stdout, os.Stderr)
			flags.Resolver = xdg.NewResolver(os.LookupEnv)
			return ctx, nil
		},
	}

	rotateCmd := commands.NewRotateCmd(flags)

	app = commands.NewHistoryCmd(flags).Register(app)
	app = commands.NewDoctorCmd(flags).Register(app)

	app.Flags = append(app.Flags, rotateCmd.Flags()...)
	app.Action = rotateCmd.Run

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		if ctx.Err() != nil && !errors.Is(err, wallpaper.ErrInterrupted) {
			err = wallpaper.ErrInterrupted
		}
		printer.New(os.Stderr).FatalError(err)
		exitCode = 1
	}

	stop()
	os.Exit(exitCode)
}

func setupLogger(level string, logFile string) error {
	parsedLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}

	var output io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}

	if logFile != "" {
		// Create log directory if it doesn't exist
		logDir := filepath.Dir(logFile)
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}

		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}

		output = io.MultiWriter(
			zerolog.ConsoleWriter{Out: os.Stderr},
			file,
		)
	}

	log.Logger = log.Output(output).Level(parsedLevel)

	return nil
}
