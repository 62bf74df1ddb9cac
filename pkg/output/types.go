// Package output provides formatting of puzzle answers and run reports.
package output

import (
	"time"

	"github.com/ccollicutt/adventofcode/pkg/puzzle"
)

// Report is the complete output of one or more solves.
type Report struct {
	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`

	// Results holds one entry per solved (or failed) puzzle input.
	Results []*Result `json:"results"`

	// Metadata provides context about the run.
	Metadata Metadata `json:"metadata"`
}

// Result is the outcome of solving one puzzle against one input.
type Result struct {
	// Run is the name of the run-file entry that produced the result.
	Run string `json:"run,omitempty"`

	Day   int    `json:"day"`
	Part  int    `json:"part"`
	Title string `json:"title"`
	Input string `json:"input"`

	// Answer is nil when the solve failed.
	Answer *puzzle.Answer `json:"answer,omitempty"`

	Error    string `json:"error,omitempty"`
	ExitCode int    `json:"exit_code,omitempty"`

	Duration time.Duration `json:"duration"`
}

// Failed reports whether the solve produced an error.
func (r *Result) Failed() bool {
	return r.Answer == nil
}

// Key returns the puzzle identifier, e.g. "day3/part2".
func (r *Result) Key() string {
	return puzzle.Key(r.Day, r.Part)
}

// Summary provides aggregate counts.
type Summary struct {
	Total  int `json:"total"`
	Solved int `json:"solved"`
	Failed int `json:"failed"`
}

// Metadata provides context about the run.
type Metadata struct {
	// ConfigFile is the run file, empty for a single command-line solve.
	ConfigFile string `json:"config_file,omitempty"`

	// Inputs lists the distinct input files in order of first use.
	Inputs []string `json:"inputs"`

	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
}

// NewReport creates a Report from results.
func NewReport(results []*Result, configFile string, startedAt time.Time) *Report {
	report := &Report{
		Results: results,
		Metadata: Metadata{
			ConfigFile: configFile,
			Inputs:     []string{},
			StartedAt:  startedAt,
			Duration:   time.Since(startedAt),
		},
	}

	seen := make(map[string]bool)
	for _, r := range results {
		report.Summary.Total++
		if r.Failed() {
			report.Summary.Failed++
		} else {
			report.Summary.Solved++
		}
		if !seen[r.Input] {
			seen[r.Input] = true
			report.Metadata.Inputs = append(report.Metadata.Inputs, r.Input)
		}
	}

	return report
}

// HasFailures returns true if any solve failed.
func (r *Report) HasFailures() bool {
	return r.Summary.Failed > 0
}
