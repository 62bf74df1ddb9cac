package output

import (
	"context"
	"encoding/json"
	"io"
)

// JSONFormatter formats reports as JSON.
type JSONFormatter struct {
	opts FormatOptions
}

// NewJSONFormatter creates a new JSON formatter with the given options.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format renders the report as JSON.
func (f *JSONFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if f.opts.Quiet {
		answers := make([]*puzzleValue, 0, len(report.Results))
		for _, r := range report.Results {
			answers = append(answers, newPuzzleValue(r))
		}
		return encoder.Encode(answers)
	}

	return encoder.Encode(report)
}

// puzzleValue is the quiet JSON form of a result.
type puzzleValue struct {
	Puzzle string `json:"puzzle"`
	Input  string `json:"input"`
	Value  *int   `json:"value"`
	Error  string `json:"error,omitempty"`
}

func newPuzzleValue(r *Result) *puzzleValue {
	v := &puzzleValue{Puzzle: r.Key(), Input: r.Input, Error: r.Error}
	if r.Answer != nil {
		v.Value = &r.Answer.Value
	}
	return v
}
