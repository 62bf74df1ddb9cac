// Package sonar solves day 1: counting how often a depth sweep increases.
package sonar

import (
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// DefaultWindowSize is the sliding window used by part 2.
const DefaultWindowSize = 3

// DepthParser parses one non-negative depth measurement per line.
type DepthParser struct{}

// Parse implements input.Parser.
func (DepthParser) Parse(line string) (int, error) {
	depth, err := strconv.Atoi(line)
	if err != nil {
		return 0, errors.Wrap(err, "depth is not an integer")
	}
	if depth < 0 {
		return 0, errors.Errorf("depth %d is negative", depth)
	}
	return depth, nil
}

// CountIncreases returns the number of values strictly greater than the
// value before them.
func CountIncreases[T constraints.Integer](values []T) int {
	count := 0
	for i := 1; i < len(values); i++ {
		if values[i] > values[i-1] {
			count++
		}
	}
	return count
}

// WindowSums returns the sum of every window of size consecutive values.
// Fewer values than size yields an empty result.
func WindowSums[T constraints.Integer](values []T, size int) ([]T, error) {
	if size < 1 {
		return nil, errors.Errorf("window size must be greater than zero, got %d", size)
	}
	if len(values) < size {
		return []T{}, nil
	}

	sums := make([]T, 0, len(values)-size+1)
	var sum T
	for i, v := range values {
		sum += v
		if i >= size {
			sum -= values[i-size]
		}
		if i >= size-1 {
			sums = append(sums, sum)
		}
	}
	return sums, nil
}

// CountWindowIncreases counts increases between consecutive window sums.
func CountWindowIncreases[T constraints.Integer](values []T, size int) (int, error) {
	sums, err := WindowSums(values, size)
	if err != nil {
		return 0, err
	}
	return CountIncreases(sums), nil
}
