package output

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions

	answer *color.Color
	failed *color.Color
	header *color.Color
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	f := &TextFormatter{
		opts:   opts,
		answer: color.New(color.FgGreen, color.Bold),
		failed: color.New(color.FgRed),
		header: color.New(color.FgCyan),
	}
	if opts.NoColor {
		for _, c := range []*color.Color{f.answer, f.failed, f.header} {
			c.DisableColor()
		}
	}
	return f
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

// formatQuiet prints one "Puzzle answer" line per result, or an [error] line.
func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	for _, r := range report.Results {
		if r.Failed() {
			f.failed.Fprintf(w, "[error] %s\n", r.Error)
			continue
		}
		fmt.Fprint(w, "Puzzle answer: ")
		f.answer.Fprintf(w, "%d", r.Answer.Value)
		fmt.Fprintln(w)
	}
	return nil
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	fmt.Fprintln(w, "=== Advent of Code Report ===")
	fmt.Fprintln(w)

	for _, r := range report.Results {
		f.formatResult(r, w)
	}

	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Summary: %d solved, %d failed, %d total\n",
		report.Summary.Solved,
		report.Summary.Failed,
		report.Summary.Total)

	if f.opts.Verbose {
		fmt.Fprintf(w, "Inputs: %d\n", len(report.Metadata.Inputs))
		fmt.Fprintf(w, "Duration: %s\n", report.Metadata.Duration.Round(1e6))
	}

	return nil
}

func (f *TextFormatter) formatResult(r *Result, w io.Writer) {
	f.header.Fprintf(w, "[%s]", r.Key())
	fmt.Fprintf(w, " %s\n", r.Title)
	fmt.Fprintf(w, "  Input: %s\n", r.Input)
	if r.Run != "" && f.opts.Verbose {
		fmt.Fprintf(w, "  Run: %s\n", r.Run)
	}

	if r.Failed() {
		f.failed.Fprintf(w, "  [error] %s", r.Error)
		if r.ExitCode != 0 {
			fmt.Fprintf(w, " (exit %d)", r.ExitCode)
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w)
		return
	}

	fmt.Fprint(w, "  Puzzle answer: ")
	f.answer.Fprintf(w, "%d", r.Answer.Value)
	fmt.Fprintln(w)

	if f.opts.Verbose {
		for _, d := range r.Answer.Details {
			fmt.Fprintf(w, "    %s: %d\n", d.Name, d.Value)
		}
		fmt.Fprintf(w, "    Duration: %s\n", r.Duration)
	}

	fmt.Fprintln(w)
}
