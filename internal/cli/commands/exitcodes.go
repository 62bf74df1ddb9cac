package commands

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/ccollicutt/adventofcode/pkg/input"
	"github.com/ccollicutt/adventofcode/pkg/puzzle"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// Process exit codes. Computation failures use puzzle.ExitNoResult and
// puzzle.ExitNoSecondaryResult.
const (
	ExitOK              = 0
	ExitFailures        = 1 // a run finished with at least one failed solve
	ExitError           = 2 // configuration or runtime error
	ExitMissingArgument = -1
	ExitInputNotFound   = -2
	ExitMalformedInput  = -5
)

// classify maps a solve error to its exit code and the message printed after
// "[error] ".
func classify(err error, path string) (int, string) {
	if code, ok := puzzle.ExitCode(err); ok {
		return code, err.Error()
	}

	switch {
	case errors.Is(err, input.ErrInvalidArgument):
		return ExitMissingArgument, "Missing input filename argument"
	case errors.Is(err, input.ErrNotFound):
		return ExitInputNotFound, fmt.Sprintf("Input file does not exist or is inaccessible: %q", path)
	case errors.Is(err, input.ErrMalformedLine), errors.Is(err, input.ErrParse):
		return ExitMalformedInput, err.Error()
	case errors.Is(err, context.Canceled):
		return ExitError, "interrupted"
	case errors.Is(err, context.DeadlineExceeded):
		return ExitError, "timed out"
	default:
		return ExitError, err.Error()
	}
}
