// Package history defines persistence for recently selected wallpapers.
package history

import "context"

// Store persists the names of recently selected wallpapers, oldest first.
//
// Implementations assume a single writer; no locking is performed.
type Store interface {
	// Load returns all recorded names, oldest first. A missing store yields
	// an empty list.
	Load(ctx context.Context) ([]string, error)
	// Append records name after the existing entries.
	Append(ctx context.Context, name string) error
	// Reset replaces all entries with name.
	Reset(ctx context.Context, name string) error
	// Clear removes all entries.
	Clear(ctx context.Context) error
}

// Record stores name, replacing the history when reset is true.
func Record(ctx context.Context, s Store, name string, reset bool) error {
	if reset {
		return s.Reset(ctx, name)
	}
	return s.Append(ctx, name)
}
