package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ccollicutt/adventofcode/pkg/detector"
)

// DetectOptions holds command-line options for the detect command.
type DetectOptions struct {
	Output      string
	SampleSize  int
	ShowAll     bool
	WriteConfig string
}

// NewDetectCommand creates the detect command.
func NewDetectCommand() *cobra.Command {
	opts := &DetectOptions{}

	cmd := &cobra.Command{
		Use:   "detect <input-file>",
		Short: "Detect which puzzle an input file was written for",
		Long: `Sample an input file and report which puzzle input format it matches.

Each sampled line is tested against the line pattern of every known format
and then against the puzzle's own line parser. Blank lines are skipped.
Reports the best match with a confidence score and the command that solves it.

Optionally generates a starter run file with --write-config.

Formats:
  - Depth measurements (day 1)
  - Submarine commands (day 2)
  - Diagnostic codes (day 3)
  - Bingo draws and boards (day 4)

Example:
  aoc detect inputs/day1.txt
  aoc detect --sample 500 inputs/day3.txt
  aoc detect --write-config aoc.yaml inputs/day2.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().IntVarP(&opts.SampleSize, "sample", "n", detector.DefaultSampleSize, "Number of non-blank lines to sample")
	cmd.Flags().BoolVar(&opts.ShowAll, "all", false, "Show all detected formats, not just the best match")
	cmd.Flags().StringVarP(&opts.WriteConfig, "write-config", "w", "", "Write starter run file (will not overwrite)")

	return cmd
}

func runDetect(cmd *cobra.Command, args []string, opts *DetectOptions) error {
	inputFile := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	d := detector.New(detector.WithSampleSize(opts.SampleSize))

	result, err := d.DetectFromFile(ctx, inputFile)
	if err != nil {
		return errors.Wrap(err, "detection failed")
	}

	if opts.WriteConfig != "" {
		if err := writeStarterConfig(result, inputFile, opts.WriteConfig); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote starter run file to: %s\n\n", opts.WriteConfig)
	}

	switch opts.Output {
	case "json":
		return outputDetectJSON(out, result, inputFile, opts)
	default:
		return outputDetectText(out, result, inputFile, opts)
	}
}

func outputDetectText(w io.Writer, result *detector.DetectionResult, inputFile string, opts *DetectOptions) error {
	fmt.Fprintln(w, "=== Input Format Detection ===")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "File: %s\n", inputFile)
	fmt.Fprintf(w, "Lines sampled: %d (%d blank skipped)\n", result.SampledLines, result.BlankLines)
	fmt.Fprintf(w, "Lines accepted: %d\n", result.ParsedLines)
	fmt.Fprintln(w)

	if !result.HasMatch() {
		fmt.Fprintln(w, "No puzzle input format detected.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Tip: Check the first few lines manually; a stray header or")
		fmt.Fprintln(w, "trailing text on a line is enough to reject it.")
		return nil
	}

	best := result.BestMatch()
	fmt.Fprintf(w, "Detected Format: %s (day %d)\n", best.Format.Name, best.Format.Day)
	fmt.Fprintf(w, "Confidence: %.1f%% (%d/%d lines matched)\n",
		best.Confidence*100, best.MatchCount, result.SampledLines)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Sample match:\n  %s\n", best.SampleLine)
	fmt.Fprintln(w)

	if result.AmbiguityNote != "" {
		fmt.Fprintf(w, "Note: %s\n", result.AmbiguityNote)
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "--- Solve it with ---")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  aoc day%d %s\n", best.Format.Day, inputFile)
	fmt.Fprintf(w, "  aoc day%d --part 2 %s\n", best.Format.Day, inputFile)
	fmt.Fprintln(w)

	if opts.ShowAll && len(result.Matches) > 1 {
		fmt.Fprintln(w, "--- Alternative formats detected ---")
		for i, m := range result.Matches[1:] {
			fmt.Fprintf(w, "%d. %s, day %d (%.1f%% confidence)\n", i+2, m.Format.Name, m.Format.Day, m.Confidence*100)
			fmt.Fprintf(w, "   pattern: '%s'\n", m.Format.PatternStr)
		}
		fmt.Fprintln(w)
	}

	return nil
}

// JSONMatch represents a format match in JSON output.
type JSONMatch struct {
	Name       string  `json:"name"`
	Day        int     `json:"day"`
	Pattern    string  `json:"pattern"`
	Confidence float64 `json:"confidence"`
	MatchCount int     `json:"match_count"`
	SampleLine string  `json:"sample_line"`
}

// JSONOutput represents the full JSON output.
type JSONOutput struct {
	File          string      `json:"file"`
	Matches       []JSONMatch `json:"matches"`
	SampledLines  int         `json:"sampled_lines"`
	BlankLines    int         `json:"blank_lines"`
	ParsedLines   int         `json:"parsed_lines"`
	AmbiguityNote string      `json:"ambiguity_note,omitempty"`
}

func outputDetectJSON(w io.Writer, result *detector.DetectionResult, inputFile string, opts *DetectOptions) error {
	output := JSONOutput{
		File:          inputFile,
		SampledLines:  result.SampledLines,
		BlankLines:    result.BlankLines,
		ParsedLines:   result.ParsedLines,
		AmbiguityNote: result.AmbiguityNote,
		Matches:       make([]JSONMatch, 0),
	}

	matches := result.Matches
	if !opts.ShowAll && len(matches) > 1 {
		matches = matches[:1]
	}

	for _, m := range matches {
		output.Matches = append(output.Matches, JSONMatch{
			Name:       m.Format.Name,
			Day:        m.Format.Day,
			Pattern:    m.Format.PatternStr,
			Confidence: m.Confidence,
			MatchCount: m.MatchCount,
			SampleLine: m.SampleLine,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// writeStarterConfig generates a starter run file for the detected day.
func writeStarterConfig(result *detector.DetectionResult, inputFile, configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		return errors.Errorf("config file already exists: %s (will not overwrite)", configPath)
	}

	if !result.HasMatch() {
		return errors.New("cannot generate config: no puzzle input format detected")
	}

	content := generateStarterConfig(inputFile, result.BestMatch())

	// #nosec G306 - run files don't need restrictive permissions
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	return nil
}

// generateStarterConfig creates a YAML run file template.
func generateStarterConfig(inputFile string, match *detector.FormatMatch) string {
	absInput := inputFile
	if abs, err := filepath.Abs(inputFile); err == nil {
		absInput = abs
	}

	return fmt.Sprintf(`# aoc run file
# Generated by: aoc detect
# Detected format: %s (%.0f%% confidence)

output: text

runs:
  - name: day%d
    day: %d
    # Omit part to solve both parts.
    inputs:
      - %s
      # Add more inputs or use globs:
      # - inputs/day%d/*.txt
    timeout: 1m

# webhooks:
#   - name: ci
#     url: https://example.com/hooks/aoc
#     token: ${AOC_WEBHOOK_TOKEN}
#     trigger: on_failure
#     retries: 3
`, match.Format.Name, match.Confidence*100,
		match.Format.Day, match.Format.Day,
		absInput,
		match.Format.Day)
}
