package doctor

import (
	"context"
	"fmt"
	"slices"

	"github.com/shirou/gopsutil/v3/process"
)

// Proc is the subset of process information the desktop check needs.
type Proc struct {
	PID     int32
	Name    string
	Cmdline []string
}

// ProcessLister returns running processes.
type ProcessLister func(ctx context.Context) ([]Proc, error)

// DesktopCheck verifies a file manager instance is drawing the desktop.
// pcmanfm --set-wallpaper only has a visible effect when one is running.
type DesktopCheck struct {
	binary string
	list   ProcessLister
}

// NewDesktopCheck creates a desktop check. A nil list uses SystemProcesses.
func NewDesktopCheck(binary string, list ProcessLister) *DesktopCheck {
	if list == nil {
		list = SystemProcesses
	}
	return &DesktopCheck{binary: binary, list: list}
}

func (c *DesktopCheck) Name() string {
	return "Desktop"
}

func (c *DesktopCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	procs, err := c.list(ctx)
	if err != nil {
		result.warn("Desktop process", "cannot list processes: "+err.Error())
		return result
	}

	for _, p := range procs {
		if p.Name != c.binary {
			continue
		}
		if slices.Contains(p.Cmdline, "--desktop") {
			result.pass("Desktop process", fmt.Sprintf("%s --desktop (pid %d)", c.binary, p.PID))
			return result
		}
	}

	result.warn("Desktop process", fmt.Sprintf("no '%s --desktop' running; the wallpaper will not be visible", c.binary))
	return result
}

// SystemProcesses lists processes through gopsutil. Processes that vanish
// or cannot be inspected are skipped.
func SystemProcesses(ctx context.Context) ([]Proc, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Proc, 0, len(procs))
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		cmdline, _ := p.CmdlineSliceWithContext(ctx)
		out = append(out, Proc{PID: p.Pid, Name: name, Cmdline: cmdline})
	}

	return out, nil
}
