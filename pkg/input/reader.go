package input

import (
	"context"
	"io"
	"iter"

	"github.com/pkg/errors"
)

// Reader enumerates the parsed values of an input file.
type Reader[T any] struct {
	parser Parser[T]
	lines  *LineReader
	line   int
}

// Open creates a Reader that parses each line of path with parser.
func Open[T any](parser Parser[T], path string) (*Reader[T], error) {
	if parser == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "parser cannot be nil")
	}
	if f, ok := parser.(ParserFunc[T]); ok && f == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "parser cannot be nil")
	}

	lines, err := OpenLines(path)
	if err != nil {
		return nil, err
	}

	return &Reader[T]{parser: parser, lines: lines}, nil
}

// Next returns the next parsed value.
// Returns io.EOF at end of file or once ctx is cancelled. Parser failures are
// returned as *ParseError and end the enumeration.
func (r *Reader[T]) Next(ctx context.Context) (T, error) {
	var zero T

	select {
	case <-ctx.Done():
		_ = r.lines.Close()
		return zero, io.EOF
	default:
	}

	line, err := r.lines.Next(ctx)
	if err != nil {
		return zero, err
	}

	// Tracked independently of line.Num.
	r.line++

	v, err := r.parser.Parse(line.Text)
	if err != nil {
		_ = r.lines.Close()
		return zero, &ParseError{
			Source: r.lines.Path(),
			Line:   r.line,
			Text:   line.Text,
			Err:    err,
		}
	}

	return v, nil
}

// Close releases the underlying file.
func (r *Reader[T]) Close() error {
	return r.lines.Close()
}

// Parse returns an iterator over the values parsed from path.
// Errors are yielded once as the final element.
func Parse[T any](ctx context.Context, parser Parser[T], path string) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T

		r, err := Open(parser, path)
		if err != nil {
			yield(zero, err)
			return
		}
		defer r.Close()

		for {
			v, err := r.Next(ctx)
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(zero, err)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

// ReadAll parses every line of path and returns the values in file order.
// If ctx is cancelled the partial result is discarded and ctx.Err() is
// returned.
func ReadAll[T any](ctx context.Context, parser Parser[T], path string) ([]T, error) {
	var values []T
	for v, err := range Parse(ctx, parser, path) {
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return values, nil
}
