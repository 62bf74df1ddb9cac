package dive

import "fmt"

// Position is the submarine position for part 1: down and up change depth
// directly.
type Position struct {
	X     int
	Depth int
}

// Transform returns the position after applying c.
func (p Position) Transform(c Command) Position {
	switch c.Direction {
	case Forward:
		p.X += c.Magnitude
	case Down:
		p.Depth += c.Magnitude
	case Up:
		p.Depth -= c.Magnitude
	}
	return p
}

// Product returns X multiplied by Depth.
func (p Position) Product() int {
	return p.X * p.Depth
}

func (p Position) String() string {
	return fmt.Sprintf("X: %d, Depth: %d", p.X, p.Depth)
}

// AimedPosition is the submarine position for part 2: down and up change the
// aim, and forward moves along it.
type AimedPosition struct {
	X     int
	Depth int
	Aim   int
}

// Transform returns the position after applying c.
func (p AimedPosition) Transform(c Command) AimedPosition {
	switch c.Direction {
	case Forward:
		p.X += c.Magnitude
		p.Depth += p.Aim * c.Magnitude
	case Down:
		p.Aim += c.Magnitude
	case Up:
		p.Aim -= c.Magnitude
	}
	return p
}

// Product returns X multiplied by Depth.
func (p AimedPosition) Product() int {
	return p.X * p.Depth
}

func (p AimedPosition) String() string {
	return fmt.Sprintf("X: %d, Depth: %d, Aim: %d", p.X, p.Depth, p.Aim)
}

// Fold applies commands in order starting from start.
func Fold[P interface{ Transform(Command) P }](start P, commands []Command) P {
	pos := start
	for _, c := range commands {
		pos = pos.Transform(c)
	}
	return pos
}
