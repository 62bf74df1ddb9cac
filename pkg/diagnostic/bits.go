package diagnostic

import (
	"github.com/ccollicutt/adventofcode/pkg/puzzle"
)

// BitCriteria picks the bit value (0 or 1) that candidates must have at bit
// position pos (0 is the least significant bit).
type BitCriteria func(values []uint32, pos int) uint32

func countBits(values []uint32, pos int) (ones, zeros int) {
	mask := uint32(1) << pos
	for _, v := range values {
		if v&mask != 0 {
			ones++
		} else {
			zeros++
		}
	}
	return ones, zeros
}

// MostCommonBit returns the most common bit at pos. Ties favour 1.
func MostCommonBit(values []uint32, pos int) uint32 {
	ones, zeros := countBits(values, pos)
	if ones >= zeros {
		return 1
	}
	return 0
}

// LeastCommonBit returns the least common bit at pos. Ties favour 0, and a
// position with no ones at all also yields 0.
func LeastCommonBit(values []uint32, pos int) uint32 {
	ones, zeros := countBits(values, pos)
	if ones == zeros || ones > zeros || ones == 0 {
		return 0
	}
	return 1
}

// PowerConsumption returns the gamma and epsilon rates of the report.
//
// A gamma bit is 1 only when ones strictly outnumber zeros. The epsilon bit is
// the inverse of the gamma bit, except where no ones were seen at all, in
// which case it is 0 as well.
func PowerConsumption(r *Report) (gamma, epsilon uint32) {
	for pos := r.Width - 1; pos >= 0; pos-- {
		ones, zeros := countBits(r.Values, pos)
		mask := uint32(1) << pos

		if ones > zeros {
			gamma |= mask
		} else if ones > 0 {
			epsilon |= mask
		}
	}
	return gamma, epsilon
}

// Rating filters the report one bit position at a time, most significant
// first, keeping only values whose bit matches criteria. It succeeds once
// exactly one value remains. Narrowing to no values, or never narrowing to
// one, is a computation error with the given exit code.
func Rating(r *Report, criteria BitCriteria, code int) (uint32, error) {
	if len(r.Values) == 0 {
		return 0, puzzle.Computationf(code, "diagnostic report is empty")
	}

	candidates := r.Values
	for pos := r.Width - 1; pos >= 0; pos-- {
		want := criteria(candidates, pos)
		candidates = filterBit(candidates, pos, want)

		switch len(candidates) {
		case 1:
			return candidates[0], nil
		case 0:
			return 0, puzzle.Computationf(code, "no candidates left after filtering bit %d", pos)
		}
	}

	return 0, puzzle.Computationf(code, "%d candidates left after filtering every bit", len(candidates))
}

func filterBit(values []uint32, pos int, want uint32) []uint32 {
	kept := make([]uint32, 0, len(values))
	for _, v := range values {
		if (v>>pos)&1 == want {
			kept = append(kept, v)
		}
	}
	return kept
}
