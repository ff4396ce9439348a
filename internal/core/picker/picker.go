// Package picker chooses a wallpaper at random while avoiding recent picks.
package picker

import (
	"math/rand/v2"

	"github.com/hay-kot/randwall/internal/core/wallpaper"
)

// DefaultThreshold is the minimum number of not-recently-used candidates
// required to keep the history. Below it the history resets.
const DefaultThreshold = 5

// Selection is the outcome of a pick.
type Selection struct {
	// Name is the chosen file name, relative to the picture directory.
	Name string
	// Reset is true when the history must be replaced by Name instead of
	// appended to.
	Reset bool
	// Pool is the number of candidates the pick was drawn from.
	Pool int
}

// Picker selects wallpapers. The zero value is not usable; use New.
type Picker struct {
	threshold int
	intN      func(n int) int
}

// Option configures a Picker.
type Option func(*Picker)

// WithThreshold overrides DefaultThreshold.
func WithThreshold(n int) Option {
	return func(p *Picker) { p.threshold = n }
}

// WithIntN replaces the random source. intN must return a value in [0, n).
func WithIntN(intN func(n int) int) Option {
	return func(p *Picker) { p.intN = intN }
}

// New returns a Picker using math/rand/v2 and DefaultThreshold.
func New(opts ...Option) *Picker {
	p := &Picker{threshold: DefaultThreshold, intN: rand.IntN}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Threshold returns the reset threshold in use.
func (p *Picker) Threshold() int {
	return p.threshold
}

// Pick chooses one name from candidates, skipping names present in recent
// unless fewer than the threshold would remain.
func (p *Picker) Pick(candidates, recent []string) (Selection, error) {
	pool := Exclude(candidates, recent)

	sel := Selection{}
	if len(pool) < p.threshold {
		pool = candidates
		sel.Reset = true
	}

	if len(pool) == 0 {
		return Selection{}, wallpaper.ErrEmptyPool
	}

	sel.Name = pool[p.intN(len(pool))]
	sel.Pool = len(pool)
	return sel, nil
}

// Exclude returns candidates without any name found in recent, preserving
// order. Duplicate names in recent remove a candidate only once.
func Exclude(candidates, recent []string) []string {
	if len(recent) == 0 {
		return candidates
	}

	seen := make(map[string]struct{}, len(recent))
	for _, name := range recent {
		seen[name] = struct{}{}
	}

	removed := make(map[int]struct{})
	for i, name := range candidates {
		if _, ok := seen[name]; ok {
			removed[i] = struct{}{}
		}
	}

	kept := make([]string, 0, len(candidates)-len(removed))
	for i, name := range candidates {
		if _, ok := removed[i]; ok {
			continue
		}
		kept = append(kept, name)
	}

	return kept
}
