package diagnostic

import (
	"context"

	"github.com/ccollicutt/adventofcode/internal/logger"
	"github.com/ccollicutt/adventofcode/pkg/input"
	"github.com/ccollicutt/adventofcode/pkg/puzzle"
)

// Power solves part 1: gamma rate times epsilon rate.
type Power struct{}

func (Power) Day() int      { return 3 }
func (Power) Part() int     { return 1 }
func (Power) Title() string { return "Binary Diagnostic: power consumption" }

// Solve implements puzzle.Puzzle.
func (p Power) Solve(ctx context.Context, path string) (*puzzle.Answer, error) {
	report, err := readReport(ctx, path)
	if err != nil {
		return nil, err
	}
	if len(report.Values) == 0 {
		return nil, puzzle.Computationf(puzzle.ExitNoResult, "diagnostic report is empty")
	}

	gamma, epsilon := PowerConsumption(report)
	logger.WithInput(p.Day(), p.Part(), path).Debug("rates computed",
		"codes", len(report.Values), "width", report.Width, "gamma", gamma, "epsilon", epsilon)

	return puzzle.NewAnswer(p, path, int(gamma)*int(epsilon),
		puzzle.Detail{Name: "gamma", Value: int(gamma)},
		puzzle.Detail{Name: "epsilon", Value: int(epsilon)},
	), nil
}

// LifeSupport solves part 2: oxygen generator rating times CO2 scrubber rating.
type LifeSupport struct{}

func (LifeSupport) Day() int      { return 3 }
func (LifeSupport) Part() int     { return 2 }
func (LifeSupport) Title() string { return "Binary Diagnostic: life support rating" }

// Solve implements puzzle.Puzzle.
func (p LifeSupport) Solve(ctx context.Context, path string) (*puzzle.Answer, error) {
	report, err := readReport(ctx, path)
	if err != nil {
		return nil, err
	}

	oxygen, err := Rating(report, MostCommonBit, puzzle.ExitNoResult)
	if err != nil {
		return nil, puzzle.Wrap(err, "oxygen generator rating")
	}
	co2, err := Rating(report, LeastCommonBit, puzzle.ExitNoSecondaryResult)
	if err != nil {
		return nil, puzzle.Wrap(err, "CO2 scrubber rating")
	}

	logger.WithInput(p.Day(), p.Part(), path).Debug("ratings computed",
		"codes", len(report.Values), "oxygen", oxygen, "co2", co2)

	return puzzle.NewAnswer(p, path, int(oxygen)*int(co2),
		puzzle.Detail{Name: "oxygen", Value: int(oxygen)},
		puzzle.Detail{Name: "co2", Value: int(co2)},
	), nil
}

func readReport(ctx context.Context, path string) (*Report, error) {
	codes, err := input.ReadAll[Code](ctx, CodeParser{}, path)
	if err != nil {
		return nil, err
	}
	return NewReport(codes), nil
}
