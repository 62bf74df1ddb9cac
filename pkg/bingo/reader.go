package bingo

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/ccollicutt/adventofcode/pkg/input"
)

// Input is a parsed bingo subsystem input: the draw order and the boards.
type Input struct {
	Draws  []int
	Boards []*Board
}

// ReadFile reads a bingo input from path.
func ReadFile(ctx context.Context, path string) (*Input, error) {
	f, err := input.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(ctx, f, path)
}

// Read parses a bingo input. The first line holds the comma-separated draws.
// Each board follows as one blank line and five rows of five numbers.
// Trailing blank lines are ignored. Errors are reported against source and
// the 1-based line number as *input.MalformedLineError or *input.ParseError.
func Read(ctx context.Context, r io.Reader, source string) (*Input, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	p := &boardParser{source: source, in: &Input{}}
	first := true
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text := scanner.Text()
		if first {
			text = input.TrimBOM(text)
			first = false
		}
		if err := p.line(text); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", source)
	}
	if err := p.finish(); err != nil {
		return nil, err
	}

	return p.in, nil
}

type boardParser struct {
	source string
	in     *Input

	num       int
	rows      []int // numbers of the board being read
	separated bool  // a blank line has been read since the last board
	extraAt   int   // line of the first unexpected blank line, if any
}

func (p *boardParser) line(text string) error {
	p.num++

	if p.num == 1 {
		if text == "" {
			return p.malformed(p.num)
		}
		draws, err := parseDraws(text)
		if err != nil {
			return p.parseError(text, err)
		}
		p.in.Draws = draws
		return nil
	}

	if text == "" {
		switch {
		case len(p.rows) > 0:
			return p.malformed(p.num)
		case !p.separated:
			p.separated = true
		case p.extraAt == 0:
			p.extraAt = p.num
		}
		return nil
	}

	if !p.separated {
		return p.parseError(text, errors.New("expected a blank line before the next board"))
	}
	if p.extraAt != 0 {
		return p.malformed(p.extraAt)
	}

	row, err := parseRow(text)
	if err != nil {
		return p.parseError(text, err)
	}
	p.rows = append(p.rows, row...)

	if len(p.rows) == Size*Size {
		b, err := NewBoard(len(p.in.Boards)+1, p.rows)
		if err != nil {
			return p.parseError(text, err)
		}
		p.in.Boards = append(p.in.Boards, b)
		p.rows = nil
		p.separated = false
	}
	return nil
}

func (p *boardParser) finish() error {
	if p.num == 0 {
		return p.malformed(1)
	}
	if len(p.rows) > 0 {
		// the first missing row
		return p.malformed(p.num + 1)
	}
	return nil
}

func (p *boardParser) malformed(line int) error {
	return &input.MalformedLineError{Source: p.source, Line: line}
}

func (p *boardParser) parseError(text string, err error) error {
	return &input.ParseError{Source: p.source, Line: p.num, Text: text, Err: err}
}

func parseDraws(text string) ([]int, error) {
	parts := strings.Split(text, ",")
	draws := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, errors.Wrapf(err, "draw %q", part)
		}
		draws = append(draws, n)
	}
	return draws, nil
}

func parseRow(text string) ([]int, error) {
	fields := strings.Fields(text)
	if len(fields) != Size {
		return nil, errors.Errorf("board row needs %d numbers, got %d", Size, len(fields))
	}
	row := make([]int, 0, Size)
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(err, "board number %q", f)
		}
		row = append(row, n)
	}
	return row, nil
}
