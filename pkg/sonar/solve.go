package sonar

import (
	"context"

	"github.com/ccollicutt/adventofcode/internal/logger"
	"github.com/ccollicutt/adventofcode/pkg/input"
	"github.com/ccollicutt/adventofcode/pkg/puzzle"
)

// Increases solves part 1: count measurement-to-measurement increases.
type Increases struct{}

func (Increases) Day() int      { return 1 }
func (Increases) Part() int     { return 1 }
func (Increases) Title() string { return "Sonar Sweep: depth increases" }

// Solve implements puzzle.Puzzle.
func (p Increases) Solve(ctx context.Context, path string) (*puzzle.Answer, error) {
	depths, err := readDepths(ctx, path)
	if err != nil {
		return nil, err
	}

	log := logger.WithInput(p.Day(), p.Part(), path)
	log.Debug("depths read", "measurements", len(depths))

	count := CountIncreases(depths)
	return puzzle.NewAnswer(p, path, count,
		puzzle.Detail{Name: "measurements", Value: len(depths)},
	), nil
}

// WindowIncreases solves part 2: count increases of sliding window sums.
type WindowIncreases struct {
	// Size is the window length; zero means DefaultWindowSize.
	Size int
}

func (WindowIncreases) Day() int      { return 1 }
func (WindowIncreases) Part() int     { return 2 }
func (WindowIncreases) Title() string { return "Sonar Sweep: sliding window increases" }

// Solve implements puzzle.Puzzle.
func (p WindowIncreases) Solve(ctx context.Context, path string) (*puzzle.Answer, error) {
	depths, err := readDepths(ctx, path)
	if err != nil {
		return nil, err
	}

	size := p.Size
	if size == 0 {
		size = DefaultWindowSize
	}

	count, err := CountWindowIncreases(depths, size)
	if err != nil {
		return nil, err
	}

	logger.WithInput(p.Day(), p.Part(), path).Debug("windows compared",
		"measurements", len(depths), "window_size", size)

	return puzzle.NewAnswer(p, path, count,
		puzzle.Detail{Name: "measurements", Value: len(depths)},
		puzzle.Detail{Name: "window_size", Value: size},
	), nil
}

func readDepths(ctx context.Context, path string) ([]int, error) {
	depths, err := input.ReadAll[int](ctx, DepthParser{}, path)
	if err != nil {
		return nil, err
	}
	if len(depths) == 0 {
		return nil, puzzle.Computationf(puzzle.ExitNoResult, "input file does not contain any depth measurements")
	}
	return depths, nil
}
