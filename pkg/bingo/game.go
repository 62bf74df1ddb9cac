package bingo

import (
	"slices"

	"github.com/ccollicutt/adventofcode/pkg/puzzle"
)

// Game plays a set of boards. Boards leave the game as soon as they win.
type Game struct {
	boards  []*Board
	winners []*Board
}

// NewGame starts a game with boards.
func NewGame(boards []*Board) *Game {
	return &Game{boards: slices.Clone(boards)}
}

// PlayRound marks n on every remaining board and retires the winners, in
// board order. It returns false without doing anything when no boards remain.
func (g *Game) PlayRound(n int) bool {
	if len(g.boards) == 0 {
		return false
	}

	g.boards = slices.DeleteFunc(g.boards, func(b *Board) bool {
		b.Mark(n)
		if b.Won() {
			g.winners = append(g.winners, b)
			return true
		}
		return false
	})
	return true
}

// Remaining returns the number of boards that have not won yet.
func (g *Game) Remaining() int { return len(g.boards) }

// Winners returns the boards that have won, in winning order.
func (g *Game) Winners() []*Board { return g.winners }

// Win is a board and the number whose draw made it win.
type Win struct {
	Board *Board
	Draw  int
	// Round is the 1-based index of the winning draw.
	Round int
}

// Score returns the winning board's score.
func (w Win) Score() int { return w.Board.Score(w.Draw) }

func noWinner() error {
	return puzzle.Computationf(puzzle.ExitNoResult, "no winner found")
}

// FirstWinner marks draws in order and returns the first board to complete a
// row or column.
func FirstWinner(draws []int, boards []*Board) (Win, error) {
	for round, n := range draws {
		for _, b := range boards {
			b.Mark(n)
			if b.Won() {
				return Win{Board: b, Draw: n, Round: round + 1}, nil
			}
		}
	}
	return Win{}, noWinner()
}

// LastWinner plays draws until every board has won and returns the last one.
// If draws run out while boards remain there is no last winner.
func LastWinner(draws []int, boards []*Board) (Win, error) {
	g := NewGame(boards)
	for round, n := range draws {
		if !g.PlayRound(n) {
			break
		}
		if g.Remaining() == 0 {
			winners := g.Winners()
			return Win{Board: winners[len(winners)-1], Draw: n, Round: round + 1}, nil
		}
	}
	return Win{}, noWinner()
}
