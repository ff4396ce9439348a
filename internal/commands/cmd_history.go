package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/randwall/internal/printer"
)

type HistoryCmd struct {
	flags *Flags

	// Command-specific flags
	clear bool
}

// NewHistoryCmd creates a new history command
func NewHistoryCmd(flags *Flags) *HistoryCmd {
	return &HistoryCmd{flags: flags}
}

// Register adds the history command to the application
func (cmd *HistoryCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "history",
		Usage:     "View or clear recently used wallpapers",
		UsageText: "randwall history [options]",
		Description: `Lists the wallpapers that will be skipped on the next run, oldest first.

Use --clear to forget them so every file is eligible again.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "clear",
				Aliases:     []string{"c"},
				Usage:       "clear the wallpaper history",
				Destination: &cmd.clear,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *HistoryCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	if cmd.clear {
		return cmd.runClear(ctx, p)
	}

	return cmd.runList(ctx, c)
}

func (cmd *HistoryCmd) runList(ctx context.Context, c *cli.Command) error {
	names, err := cmd.flags.History.Load(ctx)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	if len(names) == 0 {
		printer.Ctx(ctx).Infof("No wallpaper history in %s", cmd.flags.History.Path())
		return nil
	}

	width := nameWidth()

	out := c.Root().Writer
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "#\tWALLPAPER")

	for i, name := range names {
		_, _ = fmt.Fprintf(w, "%d\t%s\n", i+1, truncate(name, width))
	}

	return w.Flush()
}

func (cmd *HistoryCmd) runClear(ctx context.Context, p *printer.Printer) error {
	if err := cmd.flags.History.Clear(ctx); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}

	p.Successf("Wallpaper history cleared")
	return nil
}

// nameWidth returns the room left for a name after the index column, or 0
// when stdout is not a terminal.
func nameWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	cols, _, err := term.GetSize(fd)
	if err != nil || cols < 20 {
		return 0
	}
	return cols - 8
}

// truncate shortens s to n runes with a trailing ellipsis. n <= 0 disables
// truncation.
func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
