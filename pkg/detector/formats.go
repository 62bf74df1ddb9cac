package detector

import (
	"regexp"

	"github.com/ccollicutt/adventofcode/pkg/diagnostic"
	"github.com/ccollicutt/adventofcode/pkg/dive"
	"github.com/ccollicutt/adventofcode/pkg/sonar"
)

// InputFormat represents a known puzzle input format for detection.
type InputFormat struct {
	Name       string         // Human-readable name
	Day        int            // Puzzle day that reads this format
	Pattern    *regexp.Regexp // Compiled regex (set during init)
	PatternStr string         // Pattern string for display
	Examples   []string       // Example lines

	// Accept optionally runs the puzzle's own line parser after the
	// pattern matched.
	Accept func(line string) bool
}

func accepts[T any](p interface{ Parse(string) (T, error) }) func(string) bool {
	return func(line string) bool {
		_, err := p.Parse(line)
		return err == nil
	}
}

// DefaultFormats returns the built-in input formats to detect.
func DefaultFormats() []*InputFormat {
	formats := []*InputFormat{
		{
			Name:       "Depth measurements",
			Day:        1,
			PatternStr: `^\d+$`,
			Examples:   []string{"199", "200", "208"},
			Accept:     accepts[int](sonar.DepthParser{}),
		},
		{
			Name:       "Submarine commands",
			Day:        2,
			PatternStr: `^(forward|down|up) \d+$`,
			Examples:   []string{"forward 5", "down 5", "up 3"},
			Accept:     accepts[dive.Command](dive.CommandParser{}),
		},
		{
			Name:       "Diagnostic codes",
			Day:        3,
			PatternStr: `^[01]+$`,
			Examples:   []string{"00100", "11110"},
			Accept:     accepts[diagnostic.Code](diagnostic.CodeParser{}),
		},
		{
			// Either the draw line or a board row.
			Name:       "Bingo draws and boards",
			Day:        4,
			PatternStr: `^(\d+(,\d+)+|\s*\d+(\s+\d+){4}\s*)$`,
			Examples:   []string{"7,4,9,5,11,17", "22 13 17 11  0"},
		},
	}

	for _, f := range formats {
		f.Pattern = regexp.MustCompile(f.PatternStr)
	}

	return formats
}
