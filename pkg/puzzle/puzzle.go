// Package puzzle defines the contract every puzzle solution implements and
// the registry the CLI resolves them from.
package puzzle

import (
	"context"
	"fmt"
)

// Puzzle is one independent batch computation over one input file.
type Puzzle interface {
	// Day returns the puzzle day (1-based).
	Day() int

	// Part returns the puzzle part, 1 or 2.
	Part() int

	// Title returns a short human-readable description.
	Title() string

	// Solve reads the input file at path and computes the answer.
	Solve(ctx context.Context, path string) (*Answer, error)
}

// Detail is a named intermediate value reported alongside an answer.
type Detail struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Answer is the result of solving a puzzle.
type Answer struct {
	Day     int      `json:"day"`
	Part    int      `json:"part"`
	Title   string   `json:"title"`
	Input   string   `json:"input"`
	Value   int      `json:"value"`
	Details []Detail `json:"details,omitempty"`
}

// NewAnswer creates an answer for p computed from input.
func NewAnswer(p Puzzle, input string, value int, details ...Detail) *Answer {
	return &Answer{
		Day:     p.Day(),
		Part:    p.Part(),
		Title:   p.Title(),
		Input:   input,
		Value:   value,
		Details: details,
	}
}

// Key returns the puzzle identifier, e.g. "day3/part2".
func (a *Answer) Key() string {
	return Key(a.Day, a.Part)
}

// Detail returns the value of the named detail.
func (a *Answer) Detail(name string) (int, bool) {
	for _, d := range a.Details {
		if d.Name == name {
			return d.Value, true
		}
	}
	return 0, false
}

// Key formats a puzzle identifier.
func Key(day, part int) string {
	return fmt.Sprintf("day%d/part%d", day, part)
}
