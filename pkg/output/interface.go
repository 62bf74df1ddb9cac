package output

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

// Formatter renders puzzle results in a specific format.
type Formatter interface {
	// Format renders the report to the given writer.
	Format(ctx context.Context, report *Report, w io.Writer) error

	// Name returns the format name (text, json).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Verbose adds intermediate details and timings.
	Verbose bool

	// Quiet prints only the answer lines.
	Quiet bool

	// NoColor disables colored text output.
	NoColor bool
}

// New returns the formatter for name.
func New(name string, opts FormatOptions) (Formatter, error) {
	switch name {
	case "", "text":
		return NewTextFormatter(opts), nil
	case "json":
		return NewJSONFormatter(opts), nil
	default:
		return nil, errors.Errorf("unknown output format %q (must be text or json)", name)
	}
}
