// Package diagnostic solves day 3: bit statistics over the submarine's binary
// diagnostic report.
package diagnostic

import "github.com/pkg/errors"

// MaxWidth is the widest code the parser accepts.
const MaxWidth = 32

// Code is one diagnostic code and the number of binary digits it was
// written with.
type Code struct {
	Value uint32
	Width int
}

// CodeParser parses a line of '0' and '1' characters, most significant bit
// first.
type CodeParser struct{}

// Parse implements input.Parser.
func (CodeParser) Parse(line string) (Code, error) {
	if len(line) == 0 {
		return Code{}, errors.New("diagnostic code cannot be empty")
	}
	if len(line) > MaxWidth {
		return Code{}, errors.Errorf("diagnostic code has %d digits, maximum is %d", len(line), MaxWidth)
	}

	var v uint32
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c != '0' && c != '1' {
			return Code{}, errors.Errorf("invalid character %q at position %d", c, i+1)
		}
		v <<= 1
		if c == '1' {
			v |= 1
		}
	}

	return Code{Value: v, Width: len(line)}, nil
}

// Report is the full set of diagnostic codes.
type Report struct {
	Values []uint32
	// Width is the widest code in the report. Narrower codes behave as if
	// padded with leading zeros.
	Width int
}

// NewReport collects codes into a report.
func NewReport(codes []Code) *Report {
	r := &Report{Values: make([]uint32, 0, len(codes))}
	for _, c := range codes {
		r.Values = append(r.Values, c.Value)
		if c.Width > r.Width {
			r.Width = c.Width
		}
	}
	return r
}
