package puzzle

import "github.com/pkg/errors"

// Exit codes reported for computation failures.
const (
	// ExitNoResult is used when the primary computation cannot produce an answer.
	ExitNoResult = -3

	// ExitNoSecondaryResult is used when a second, independent computation fails.
	ExitNoSecondaryResult = -4
)

// ComputationError reports a puzzle-specific failure after the input was read
// successfully, e.g. no winning board or an ambiguous rating filter.
type ComputationError struct {
	Code int
	Err  error
}

func (e *ComputationError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ComputationError) Unwrap() error { return e.Err }

// Computationf creates a ComputationError with the given exit code.
func Computationf(code int, format string, args ...any) error {
	return &ComputationError{Code: code, Err: errors.Errorf(format, args...)}
}

// ExitCode returns the exit code carried by err, if any.
func ExitCode(err error) (int, bool) {
	var ce *ComputationError
	if errors.As(err, &ce) {
		return ce.Code, true
	}
	return 0, false
}

// ErrUnknownPuzzle is returned by Registry.Lookup.
var ErrUnknownPuzzle = errors.New("unknown puzzle")

func unknown(day, part int) error {
	return errors.Wrapf(ErrUnknownPuzzle, "day %d part %d", day, part)
}

// Wrap adds context to a ComputationError while keeping its exit code.
// Other errors are wrapped as usual.
func Wrap(err error, message string) error {
	var ce *ComputationError
	if errors.As(err, &ce) {
		return &ComputationError{Code: ce.Code, Err: errors.Wrap(ce.Err, message)}
	}
	return errors.Wrap(err, message)
}
