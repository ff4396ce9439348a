package doctor

import (
	"context"
	"fmt"
)

// DirResolver finds the default picture directory.
type DirResolver interface {
	PicturesDir() (string, error)
}

// Lister lists wallpaper candidates.
type Lister interface {
	List(dir string) ([]string, error)
}

// PicturesCheck verifies the picture directory resolves and has enough
// candidates for the history to work.
type PicturesCheck struct {
	dir       string
	resolver  DirResolver
	lister    Lister
	threshold int
}

// NewPicturesCheck creates a picture directory check. dir overrides discovery
// when non-empty.
func NewPicturesCheck(dir string, resolver DirResolver, lister Lister, threshold int) *PicturesCheck {
	return &PicturesCheck{dir: dir, resolver: resolver, lister: lister, threshold: threshold}
}

func (c *PicturesCheck) Name() string {
	return "Pictures"
}

func (c *PicturesCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	dir := c.dir
	if dir == "" {
		found, err := c.resolver.PicturesDir()
		if err != nil {
			result.fail("Directory", err.Error())
			return result
		}
		dir = found
	}

	names, err := c.lister.List(dir)
	if err != nil {
		result.fail("Directory", err.Error())
		return result
	}
	result.pass("Directory", dir)

	switch count := len(names); {
	case count == 0:
		result.fail("Candidates", "no files to choose from")
	case count <= c.threshold:
		result.warn("Candidates", fmt.Sprintf("%d file(s); history resets on every run below %d", count, c.threshold+1))
	default:
		result.pass("Candidates", fmt.Sprintf("%d file(s)", count))
	}

	return result
}
