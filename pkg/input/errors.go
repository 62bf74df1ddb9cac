package input

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors for the reader failure kinds. Use errors.Is to test for them.
var (
	// ErrInvalidArgument reports an empty path or a nil parser.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound reports an input file that does not exist or cannot be opened.
	ErrNotFound = errors.New("input file not found")

	// ErrMalformedLine reports an empty physical line.
	ErrMalformedLine = errors.New("malformed input line")

	// ErrParse reports a line rejected by the parser.
	ErrParse = errors.New("unable to parse input line")
)

// NotFoundError is returned when the input file cannot be opened.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("input file %q does not exist or is inaccessible: %v", e.Path, e.Err)
}

// Unwrap returns the underlying open error.
func (e *NotFoundError) Unwrap() error { return e.Err }

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// MalformedLineError is returned by LineReader when a physical line is empty.
type MalformedLineError struct {
	Source string
	Line   int
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("%s:%d: line is empty", e.Source, e.Line)
}

// Is reports whether target is ErrMalformedLine.
func (e *MalformedLineError) Is(target error) bool { return target == ErrMalformedLine }

// ParseError is returned by Reader when the parser rejects a line.
// Err holds the parser's own error.
type ParseError struct {
	Source string
	Line   int
	Text   string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: unable to parse %q: %v", e.Source, e.Line, e.Text, e.Err)
}

// Unwrap returns the parser error.
func (e *ParseError) Unwrap() error { return e.Err }

// Cause returns the parser error for use with errors.Cause.
func (e *ParseError) Cause() error { return e.Err }

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }
