package dive

import (
	"context"
	"log/slog"

	"github.com/ccollicutt/adventofcode/internal/logger"
	"github.com/ccollicutt/adventofcode/pkg/input"
	"github.com/ccollicutt/adventofcode/pkg/puzzle"
)

// Course solves part 1.
type Course struct{}

func (Course) Day() int      { return 2 }
func (Course) Part() int     { return 1 }
func (Course) Title() string { return "Dive!: planned course" }

// Solve implements puzzle.Puzzle.
func (p Course) Solve(ctx context.Context, path string) (*puzzle.Answer, error) {
	pos, err := follow(ctx, path, Position{}, logger.WithInput(p.Day(), p.Part(), path))
	if err != nil {
		return nil, err
	}
	return puzzle.NewAnswer(p, path, pos.Product(),
		puzzle.Detail{Name: "x", Value: pos.X},
		puzzle.Detail{Name: "depth", Value: pos.Depth},
	), nil
}

// AimedCourse solves part 2.
type AimedCourse struct{}

func (AimedCourse) Day() int      { return 2 }
func (AimedCourse) Part() int     { return 2 }
func (AimedCourse) Title() string { return "Dive!: course with aim" }

// Solve implements puzzle.Puzzle.
func (p AimedCourse) Solve(ctx context.Context, path string) (*puzzle.Answer, error) {
	pos, err := follow(ctx, path, AimedPosition{}, logger.WithInput(p.Day(), p.Part(), path))
	if err != nil {
		return nil, err
	}
	return puzzle.NewAnswer(p, path, pos.Product(),
		puzzle.Detail{Name: "x", Value: pos.X},
		puzzle.Detail{Name: "depth", Value: pos.Depth},
		puzzle.Detail{Name: "aim", Value: pos.Aim},
	), nil
}

// follow streams the commands in path, transforming pos one command at a time.
func follow[P interface {
	Transform(Command) P
	String() string
}](ctx context.Context, path string, pos P, log *slog.Logger) (P, error) {
	for cmd, err := range input.Parse[Command](ctx, CommandParser{}, path) {
		if err != nil {
			return pos, err
		}
		next := pos.Transform(cmd)
		log.Debug("command applied", "from", pos.String(), "command", cmd.String(), "to", next.String())
		pos = next
	}
	if err := ctx.Err(); err != nil {
		return pos, err
	}
	return pos, nil
}
