package doctor

import (
	"context"
	"fmt"

	"github.com/hay-kot/randwall/internal/core/history"
)

// HistoryCheck verifies the history file is readable.
type HistoryCheck struct {
	store history.Store
	path  string
}

// NewHistoryCheck creates a history check.
func NewHistoryCheck(store history.Store, path string) *HistoryCheck {
	return &HistoryCheck{store: store, path: path}
}

func (c *HistoryCheck) Name() string {
	return "History"
}

func (c *HistoryCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	names, err := c.store.Load(ctx)
	if err != nil {
		result.warn(c.path, err.Error()+" (treated as empty)")
		return result
	}

	result.pass(c.path, fmt.Sprintf("%d recent wallpaper(s)", len(names)))
	return result
}
