package bingo

import (
	"context"

	"github.com/ccollicutt/adventofcode/internal/logger"
	"github.com/ccollicutt/adventofcode/pkg/puzzle"
)

// First solves part 1: the score of the first board to win.
type First struct{}

func (First) Day() int      { return 4 }
func (First) Part() int     { return 1 }
func (First) Title() string { return "Giant Squid: first winning board" }

// Solve implements puzzle.Puzzle.
func (p First) Solve(ctx context.Context, path string) (*puzzle.Answer, error) {
	return solve(ctx, p, path, FirstWinner)
}

// Last solves part 2: the score of the last board to win.
type Last struct{}

func (Last) Day() int      { return 4 }
func (Last) Part() int     { return 2 }
func (Last) Title() string { return "Giant Squid: last winning board" }

// Solve implements puzzle.Puzzle.
func (p Last) Solve(ctx context.Context, path string) (*puzzle.Answer, error) {
	return solve(ctx, p, path, LastWinner)
}

func solve(ctx context.Context, p puzzle.Puzzle, path string, play func([]int, []*Board) (Win, error)) (*puzzle.Answer, error) {
	in, err := ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	log := logger.WithInput(p.Day(), p.Part(), path)
	log.Debug("bingo input read", "draws", len(in.Draws), "boards", len(in.Boards))

	win, err := play(in.Draws, in.Boards)
	if err != nil {
		return nil, err
	}
	log.Debug("winning board", "board", win.Board.ID, "draw", win.Draw, "round", win.Round)

	return puzzle.NewAnswer(p, path, win.Score(),
		puzzle.Detail{Name: "board", Value: win.Board.ID},
		puzzle.Detail{Name: "winning_number", Value: win.Draw},
		puzzle.Detail{Name: "round", Value: win.Round},
		puzzle.Detail{Name: "unmarked_sum", Value: win.Board.SumUnmarked()},
	), nil
}
