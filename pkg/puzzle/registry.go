package puzzle

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// Registry maps (day, part) pairs to puzzle solutions.
type Registry struct {
	mu      sync.RWMutex
	puzzles map[string]Puzzle
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{puzzles: make(map[string]Puzzle)}
}

// Register adds p. Registering the same day and part twice is an error.
func (r *Registry) Register(p Puzzle) error {
	if p == nil {
		return errors.New("puzzle cannot be nil")
	}
	if p.Part() != 1 && p.Part() != 2 {
		return errors.Errorf("%s: part must be 1 or 2", Key(p.Day(), p.Part()))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := Key(p.Day(), p.Part())
	if _, ok := r.puzzles[key]; ok {
		return errors.Errorf("%s: already registered", key)
	}
	r.puzzles[key] = p
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(puzzles ...Puzzle) {
	for _, p := range puzzles {
		if err := r.Register(p); err != nil {
			panic(err)
		}
	}
}

// Lookup returns the puzzle for day and part.
func (r *Registry) Lookup(day, part int) (Puzzle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.puzzles[Key(day, part)]
	if !ok {
		return nil, unknown(day, part)
	}
	return p, nil
}

// All returns every registered puzzle ordered by day then part.
func (r *Registry) All() []Puzzle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]Puzzle, 0, len(r.puzzles))
	for _, p := range r.puzzles {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Day() != all[j].Day() {
			return all[i].Day() < all[j].Day()
		}
		return all[i].Part() < all[j].Part()
	})
	return all
}

// Days returns the distinct days with at least one registered puzzle.
func (r *Registry) Days() []int {
	var days []int
	for _, p := range r.All() {
		if len(days) == 0 || days[len(days)-1] != p.Day() {
			days = append(days, p.Day())
		}
	}
	return days
}
