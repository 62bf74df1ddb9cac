package input

import (
	"bufio"
	"context"
	"io"
	"iter"
	"os"

	"github.com/pkg/errors"
)

// maxLineSize is the longest line the scanner accepts.
const maxLineSize = 1024 * 1024

// LineReader enumerates the non-empty lines of a single input file.
// It is not safe for concurrent use and cannot be restarted.
type LineReader struct {
	path    string
	file    *os.File
	scanner *bufio.Scanner
	line    int
	done    bool
}

// OpenLines opens path for line enumeration.
// The path must be non-empty and refer to a readable regular file.
func OpenLines(path string) (*LineReader, error) {
	f, err := OpenFile(path)
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	return &LineReader{
		path:    path,
		file:    f,
		scanner: scanner,
	}, nil
}

// Path returns the file being read.
func (r *LineReader) Path() string {
	return r.path
}

// Next returns the next line of the file.
// Returns io.EOF at end of file or once ctx is cancelled.
// An empty line aborts the enumeration with a *MalformedLineError.
func (r *LineReader) Next(ctx context.Context) (Line, error) {
	if r.done {
		return Line{}, io.EOF
	}

	select {
	case <-ctx.Done():
		r.finish()
		return Line{}, io.EOF
	default:
	}

	if !r.scanner.Scan() {
		err := r.scanner.Err()
		r.finish()
		if err != nil {
			return Line{}, errors.Wrapf(err, "reading %s", r.path)
		}
		return Line{}, io.EOF
	}

	r.line++
	text := r.scanner.Text()
	if r.line == 1 {
		text = TrimBOM(text)
	}
	if text == "" {
		r.finish()
		return Line{}, &MalformedLineError{Source: r.path, Line: r.line}
	}

	return Line{Text: text, Source: r.path, Num: r.line}, nil
}

// Close releases the file. It is safe to call more than once.
func (r *LineReader) Close() error {
	r.done = true
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	r.scanner = nil
	return err
}

func (r *LineReader) finish() {
	_ = r.Close()
}

// Lines returns an iterator over the lines of path. The file is opened when
// iteration starts and closed when it ends, including on early break.
// Any error, including a precondition failure, is yielded once as the final
// element.
func Lines(ctx context.Context, path string) iter.Seq2[Line, error] {
	return func(yield func(Line, error) bool) {
		r, err := OpenLines(path)
		if err != nil {
			yield(Line{}, err)
			return
		}
		defer r.Close()

		for {
			line, err := r.Next(ctx)
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(Line{}, err)
				return
			}
			if !yield(line, nil) {
				return
			}
		}
	}
}
