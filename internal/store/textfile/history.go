// Package textfile provides a plain text wallpaper history store.
package textfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// HistoryStore implements history.Store using a file with one name per line.
type HistoryStore struct {
	path string
}

// NewHistoryStore creates a history store backed by the file at path.
func NewHistoryStore(path string) *HistoryStore {
	return &HistoryStore{path: path}
}

// Path returns the backing file path.
func (s *HistoryStore) Path() string {
	return s.path
}

// Load returns the recorded names, oldest first.
// Returns an empty list if the file doesn't exist.
func (s *HistoryStore) Load(ctx context.Context) ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read history file: %w", err)
	}

	names := []string{}
	for line := range strings.SplitSeq(string(data), "\n") {
		if line == "" {
			continue
		}
		names = append(names, line)
	}

	return names, nil
}

// Append writes name on its own line at the end of the file, creating it if needed.
func (s *HistoryStore) Append(ctx context.Context, name string) error {
	return s.write(name, os.O_APPEND)
}

// Reset truncates the file so name is its only entry.
func (s *HistoryStore) Reset(ctx context.Context, name string) error {
	return s.write(name, os.O_TRUNC)
}

// Clear removes the history file. A missing file is not an error.
func (s *HistoryStore) Clear(ctx context.Context) error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove history file: %w", err)
	}
	return nil
}

func (s *HistoryStore) write(name string, mode int) error {
	if strings.ContainsAny(name, "\r\n") {
		return fmt.Errorf("history entry %q contains a line break", name)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|mode, 0o644)
	if err != nil {
		return fmt.Errorf("open history file: %w", err)
	}

	if _, err := f.WriteString(name + "\n"); err != nil {
		_ = f.Close()
		return fmt.Errorf("write history file: %w", err)
	}

	return f.Close()
}
