// Package dive solves day 2: folding submarine commands into a position.
package dive

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Direction is the direction of a submarine command.
type Direction int

const (
	Forward Direction = iota + 1
	Down
	Up
)

var directionNames = map[Direction]string{
	Forward: "forward",
	Down:    "down",
	Up:      "up",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "Direction(" + strconv.Itoa(int(d)) + ")"
}

// ParseDirection parses a direction name. Matching is exact and case-sensitive.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "forward":
		return Forward, nil
	case "down":
		return Down, nil
	case "up":
		return Up, nil
	case "":
		return 0, errors.New("direction cannot be empty")
	default:
		return 0, errors.Errorf("unknown direction %q", s)
	}
}

// Command is one line of the course: a direction and a magnitude.
type Command struct {
	Direction Direction
	Magnitude int
}

func (c Command) String() string {
	return c.Direction.String() + " " + strconv.Itoa(c.Magnitude)
}

// CommandParser parses lines of the form "<direction> <magnitude>".
type CommandParser struct{}

// Parse implements input.Parser.
func (CommandParser) Parse(line string) (Command, error) {
	if !strings.Contains(line, " ") {
		return Command{}, errors.Errorf("expected \"<direction> <magnitude>\", got %q", line)
	}

	parts := strings.Split(line, " ")
	if len(parts) != 2 {
		return Command{}, errors.Errorf("expected exactly one space separating direction and magnitude, got %q", line)
	}

	direction, err := ParseDirection(parts[0])
	if err != nil {
		return Command{}, err
	}

	magnitude, err := strconv.Atoi(parts[1])
	if err != nil {
		return Command{}, errors.Wrapf(err, "magnitude %q is not an integer", parts[1])
	}
	if magnitude < 0 {
		return Command{}, errors.Errorf("magnitude %d is negative", magnitude)
	}

	return Command{Direction: direction, Magnitude: magnitude}, nil
}
