package picker

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/randwall/internal/core/wallpaper"
)

var six = []string{"a.jpg", "b.jpg", "c.jpg", "d.jpg", "e.jpg", "f.jpg"}

func seeded(seed uint64) Option {
	return WithIntN(rand.New(rand.NewPCG(seed, seed+1)).IntN)
}

func TestExclude(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		candidates []string
		recent     []string
		want       []string
	}{
		{
			name:       "no history",
			candidates: six,
			want:       six,
		},
		{
			name:       "removes recent",
			candidates: six,
			recent:     []string{"b.jpg", "e.jpg"},
			want:       []string{"a.jpg", "c.jpg", "d.jpg", "f.jpg"},
		},
		{
			name:       "duplicate history entries remove once",
			candidates: six,
			recent:     []string{"a.jpg", "a.jpg", "a.jpg"},
			want:       []string{"b.jpg", "c.jpg", "d.jpg", "e.jpg", "f.jpg"},
		},
		{
			name:       "history names not in directory are ignored",
			candidates: []string{"a.jpg", "b.jpg"},
			recent:     []string{"gone.jpg"},
			want:       []string{"a.jpg", "b.jpg"},
		},
		{
			name:       "exact match only",
			candidates: []string{"a.jpg", "A.jpg", "a.jpeg"},
			recent:     []string{"a.jpg"},
			want:       []string{"A.jpg", "a.jpeg"},
		},
		{
			name:       "everything recent",
			candidates: []string{"a.jpg"},
			recent:     []string{"a.jpg"},
			want:       []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Exclude(tt.candidates, tt.recent))
		})
	}
}

func TestExclude_Idempotent(t *testing.T) {
	recent := []string{"c.jpg", "a.jpg", "c.jpg"}

	once := Exclude(six, recent)
	twice := Exclude(once, recent)

	assert.Equal(t, once, twice)
}

func TestPick_EmptyPool(t *testing.T) {
	p := New()

	_, err := p.Pick(nil, nil)
	require.ErrorIs(t, err, wallpaper.ErrEmptyPool)

	_, err = p.Pick([]string{}, []string{"a.jpg"})
	require.ErrorIs(t, err, wallpaper.ErrEmptyPool)
}

func TestPick_NoReset(t *testing.T) {
	p := New(seeded(1))

	for range 200 {
		sel, err := p.Pick(six, []string{"a.jpg"})
		require.NoError(t, err)

		assert.False(t, sel.Reset)
		assert.Equal(t, 5, sel.Pool)
		assert.Contains(t, []string{"b.jpg", "c.jpg", "d.jpg", "e.jpg", "f.jpg"}, sel.Name)
	}
}

func TestPick_Reset(t *testing.T) {
	p := New(seeded(2))

	got := map[string]bool{}
	for range 500 {
		sel, err := p.Pick(six, []string{"a.jpg", "b.jpg"})
		require.NoError(t, err)

		assert.True(t, sel.Reset)
		assert.Equal(t, 6, sel.Pool)
		assert.Contains(t, six, sel.Name)
		got[sel.Name] = true
	}

	// after a reset every candidate is eligible again
	assert.Len(t, got, len(six))
}

func TestPick_FewCandidatesAlwaysReset(t *testing.T) {
	p := New(seeded(3))

	sel, err := p.Pick([]string{"only.png"}, nil)
	require.NoError(t, err)
	assert.True(t, sel.Reset)
	assert.Equal(t, "only.png", sel.Name)
}

func TestPick_NeverRecentWhenEnoughRemain(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	p := New(WithIntN(rng.IntN))

	for i := range 300 {
		n := 5 + rng.IntN(20)
		candidates := make([]string, n)
		for j := range candidates {
			candidates[j] = fmt.Sprintf("img%02d.jpg", j)
		}

		// recent covers at most n-5 distinct candidates plus unrelated names
		var recent []string
		for j := range rng.IntN(n - 4) {
			recent = append(recent, candidates[j], candidates[j])
		}
		recent = append(recent, "deleted.jpg")

		sel, err := p.Pick(candidates, recent)
		require.NoError(t, err, "iteration %d", i)
		assert.False(t, sel.Reset, "iteration %d", i)
		assert.NotContains(t, recent, sel.Name, "iteration %d", i)
	}
}

func TestPick_Threshold(t *testing.T) {
	p := New(WithThreshold(2), seeded(4))
	assert.Equal(t, 2, p.Threshold())

	sel, err := p.Pick(six, []string{"a.jpg", "b.jpg", "c.jpg", "d.jpg"})
	require.NoError(t, err)
	assert.False(t, sel.Reset)
	assert.Contains(t, []string{"e.jpg", "f.jpg"}, sel.Name)

	sel, err = p.Pick(six, []string{"a.jpg", "b.jpg", "c.jpg", "d.jpg", "e.jpg"})
	require.NoError(t, err)
	assert.True(t, sel.Reset)
}

func TestPick_UsesRandomSource(t *testing.T) {
	p := New(WithIntN(func(n int) int { return n - 1 }))

	sel, err := p.Pick(six, []string{"f.jpg"})
	require.NoError(t, err)
	assert.Equal(t, "e.jpg", sel.Name)
}
