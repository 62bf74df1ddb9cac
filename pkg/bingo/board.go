// Package bingo solves day 4: playing bingo against a giant squid.
package bingo

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Size is the number of rows and columns on a board.
const Size = 5

// Board is a 5x5 bingo card with its marks.
type Board struct {
	// ID is the 1-based position of the board in its input.
	ID int

	numbers [Size * Size]int
	marked  [Size * Size]bool
}

// NewBoard creates a board from its numbers in row-major order.
func NewBoard(id int, numbers []int) (*Board, error) {
	if len(numbers) != Size*Size {
		return nil, errors.Errorf("board needs %d numbers, got %d", Size*Size, len(numbers))
	}
	b := &Board{ID: id}
	copy(b.numbers[:], numbers)
	return b, nil
}

// Mark marks the first cell holding n and reports whether one was found.
func (b *Board) Mark(n int) bool {
	for i, v := range b.numbers {
		if v == n {
			b.marked[i] = true
			return true
		}
	}
	return false
}

// Won reports whether any full row or column is marked.
func (b *Board) Won() bool {
	for i := 0; i < Size; i++ {
		row, col := true, true
		for j := 0; j < Size; j++ {
			row = row && b.marked[i*Size+j]
			col = col && b.marked[j*Size+i]
		}
		if row || col {
			return true
		}
	}
	return false
}

// SumUnmarked returns the sum of all unmarked numbers.
func (b *Board) SumUnmarked() int {
	sum := 0
	for i, v := range b.numbers {
		if !b.marked[i] {
			sum += v
		}
	}
	return sum
}

// Score returns the unmarked sum multiplied by the last number drawn.
func (b *Board) Score(last int) int {
	return b.SumUnmarked() * last
}

// String renders the board with marked numbers in brackets.
func (b *Board) String() string {
	var sb strings.Builder
	for i, v := range b.numbers {
		if i > 0 && i%Size == 0 {
			sb.WriteByte('\n')
		} else if i > 0 {
			sb.WriteByte(' ')
		}
		if b.marked[i] {
			fmt.Fprintf(&sb, "[%2d]", v)
		} else {
			fmt.Fprintf(&sb, " %2d ", v)
		}
	}
	return sb.String()
}
