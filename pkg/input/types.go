// Package input reads puzzle input files line by line and hands each line to
// a caller-supplied parser.
//
// Two enumerators are provided. LineReader yields the raw, non-empty lines
// of a file together with their 1-based line numbers. Reader wraps a
// LineReader with a Parser and yields parsed values, annotating any parser
// failure with the file name, line number and offending text.
//
// Both enumerators follow the same iteration contract: Next returns io.EOF
// once the input is exhausted or the context is cancelled, and the
// underlying file is released on every exit path.
package input

// Line is a single physical line of an input file.
type Line struct {
	// Text is the raw line content without the line terminator.
	Text string

	// Source is the file path this line came from.
	Source string

	// Num is the 1-based line number in the source file.
	Num int
}

// Parser converts one line of puzzle input into a value.
// Implementations should be stateless; the reader owns line bookkeeping.
type Parser[T any] interface {
	Parse(line string) (T, error)
}

// ParserFunc adapts an ordinary function to the Parser interface.
type ParserFunc[T any] func(line string) (T, error)

// Parse calls f(line).
func (f ParserFunc[T]) Parse(line string) (T, error) {
	return f(line)
}
