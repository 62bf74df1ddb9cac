// Package detector identifies which puzzle an input file was written for.
package detector

import (
	"bufio"
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/ccollicutt/adventofcode/pkg/input"
)

// DefaultSampleSize is the number of non-blank lines sampled.
const DefaultSampleSize = 100

// DetectionResult holds the result of analyzing an input file.
type DetectionResult struct {
	Matches       []FormatMatch // Formats that matched, sorted by confidence descending
	SampledLines  int           // Number of non-blank lines sampled
	BlankLines    int           // Blank lines seen while sampling
	ParsedLines   int           // Lines accepted by the best format
	AmbiguityNote string        // Set when the top formats tie
}

// FormatMatch represents a format that matched with its confidence score.
type FormatMatch struct {
	Format     *InputFormat
	Confidence float64 // 0.0 to 1.0 (fraction of sampled lines accepted)
	MatchCount int     // Number of lines accepted
	SampleLine string  // First accepted line
}

// Detector samples input files to identify their puzzle format.
type Detector struct {
	formats    []*InputFormat
	sampleSize int
}

// Option configures the Detector.
type Option func(*Detector)

// WithSampleSize sets the number of lines to sample (default 100).
func WithSampleSize(n int) Option {
	return func(d *Detector) {
		if n > 0 {
			d.sampleSize = n
		}
	}
}

// WithFormats replaces the formats to detect.
func WithFormats(formats ...*InputFormat) Option {
	return func(d *Detector) {
		d.formats = formats
	}
}

// New creates a new Detector with default formats.
func New(opts ...Option) *Detector {
	d := &Detector{
		formats:    DefaultFormats(),
		sampleSize: DefaultSampleSize,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DetectFromFile samples an input file and returns the formats it matches.
func (d *Detector) DetectFromFile(ctx context.Context, path string) (*DetectionResult, error) {
	lines, blanks, err := d.sampleFile(ctx, path)
	if err != nil {
		return nil, err
	}
	result := d.DetectFromLines(lines)
	result.BlankLines = blanks
	return result, nil
}

// DetectFromLines analyzes a slice of input lines. Blank lines are ignored.
func (d *Detector) DetectFromLines(lines []string) *DetectionResult {
	result := &DetectionResult{}

	type formatStats struct {
		format     *InputFormat
		matchCount int
		sampleLine string
	}
	stats := make(map[*InputFormat]*formatStats)

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		result.SampledLines++

		for _, format := range d.formats {
			if !format.Pattern.MatchString(line) {
				continue
			}
			if format.Accept != nil && !format.Accept(line) {
				continue
			}

			s := stats[format]
			if s == nil {
				s = &formatStats{format: format, sampleLine: line}
				stats[format] = s
			}
			s.matchCount++
		}
	}

	if result.SampledLines == 0 {
		return result
	}

	for _, s := range stats {
		result.Matches = append(result.Matches, FormatMatch{
			Format:     s.format,
			Confidence: float64(s.matchCount) / float64(result.SampledLines),
			MatchCount: s.matchCount,
			SampleLine: s.sampleLine,
		})
	}

	sort.Slice(result.Matches, func(i, j int) bool {
		if result.Matches[i].Confidence != result.Matches[j].Confidence {
			return result.Matches[i].Confidence > result.Matches[j].Confidence
		}
		// For same confidence, prefer longer patterns (more specific)
		return len(result.Matches[i].Format.PatternStr) > len(result.Matches[j].Format.PatternStr)
	})

	if len(result.Matches) > 0 {
		result.ParsedLines = result.Matches[0].MatchCount
	}

	if len(result.Matches) > 1 && result.Matches[0].Confidence == result.Matches[1].Confidence {
		var names []string
		for _, m := range result.Matches {
			if m.Confidence != result.Matches[0].Confidence {
				break
			}
			names = append(names, fmt.Sprintf("%s (day %d)", m.Format.Name, m.Format.Day))
		}
		result.AmbiguityNote = "Input matches several formats equally well: " + strings.Join(names, ", ") +
			". Lines of only 0 and 1 are valid depth measurements and diagnostic codes alike."
	}

	return result
}

// sampleFile reads up to sampleSize non-blank lines from a file and counts
// the blank lines it passed.
func (d *Detector) sampleFile(ctx context.Context, path string) ([]string, int, error) {
	file, err := input.OpenFile(path)
	if err != nil {
		return nil, 0, err
	}
	defer file.Close()

	var lines []string
	blanks := 0
	scanner := bufio.NewScanner(file)

	for n := 1; len(lines) < d.sampleSize && scanner.Scan(); n++ {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		line := scanner.Text()
		if n == 1 {
			line = input.TrimBOM(line)
		}
		if strings.TrimSpace(line) == "" {
			blanks++
			continue
		}
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, 0, errors.Wrapf(err, "reading %s", path)
	}

	return lines, blanks, nil
}

// BestMatch returns the highest confidence match, or nil if none found.
func (r *DetectionResult) BestMatch() *FormatMatch {
	if len(r.Matches) == 0 {
		return nil
	}
	return &r.Matches[0]
}

// HasMatch returns true if at least one format matched.
func (r *DetectionResult) HasMatch() bool {
	return len(r.Matches) > 0
}
