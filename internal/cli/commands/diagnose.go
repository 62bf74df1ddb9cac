package commands

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/adventofcode/pkg/config"
	"github.com/ccollicutt/adventofcode/pkg/detector"
	"github.com/ccollicutt/adventofcode/pkg/puzzle"
)

// DiagnoseOptions holds options for the diagnose command
type DiagnoseOptions struct {
	Verbose bool
}

// DiagnosticResult represents the result of a single diagnostic check
type DiagnosticResult struct {
	Check    string
	Status   string // "ok", "warning", "error"
	Message  string
	Details  []string
	Suggests []string
}

// NewDiagnoseCommand creates the diagnose command
func NewDiagnoseCommand(reg *puzzle.Registry) *cobra.Command {
	opts := &DiagnoseOptions{}

	cmd := &cobra.Command{
		Use:   "diagnose <config-file>",
		Short: "Diagnose common run file issues",
		Long: `Diagnose common run file issues.

This command checks your run file for common problems:
- File syntax and structure
- Puzzles without a registered solution
- Input file existence and accessibility
- Input files that look like another day's puzzle
- Webhook configuration

Example:
  aoc diagnose aoc.yaml
  aoc diagnose -v aoc.yaml  # verbose output, also checks webhooks`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runDiagnose(ctx, cmd.OutOrStdout(), reg, args[0], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show detailed diagnostic output")

	return cmd
}

func runDiagnose(ctx context.Context, w io.Writer, reg *puzzle.Registry, configPath string, opts *DiagnoseOptions) error {
	results := []DiagnosticResult{}

	result := checkConfigExists(configPath)
	results = append(results, result)
	if result.Status == "error" {
		printDiagnostics(w, results, opts)
		return nil
	}

	cfg, result := checkConfigParseable(ctx, configPath)
	results = append(results, result)
	if result.Status == "error" {
		printDiagnostics(w, results, opts)
		return nil
	}

	results = append(results, checkPuzzles(cfg, reg)...)
	results = append(results, checkInputs(ctx, cfg, opts)...)
	results = append(results, checkWebhooks(ctx, cfg, opts)...)

	printDiagnostics(w, results, opts)
	return nil
}

func checkConfigExists(path string) DiagnosticResult {
	result := DiagnosticResult{
		Check: "Run File",
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		result.Status = "error"
		result.Message = fmt.Sprintf("Run file not found: %s", path)
		result.Suggests = []string{
			"Check the file path is correct",
			"Use 'aoc detect <input-file> --write-config aoc.yaml' to generate a starter run file",
		}
		return result
	}
	if err != nil {
		result.Status = "error"
		result.Message = fmt.Sprintf("Cannot access run file: %v", err)
		result.Suggests = []string{"Check file permissions"}
		return result
	}
	if info.IsDir() {
		result.Status = "error"
		result.Message = "Path is a directory, not a file"
		return result
	}
	if info.Size() == 0 {
		result.Status = "error"
		result.Message = "Run file is empty"
		result.Suggests = []string{
			"Use 'aoc detect <input-file> --write-config aoc.yaml' to generate a starter run file",
		}
		return result
	}

	result.Status = "ok"
	result.Message = fmt.Sprintf("Found: %s (%d bytes)", path, info.Size())
	return result
}

func checkConfigParseable(ctx context.Context, path string) (*config.Config, DiagnosticResult) {
	result := DiagnosticResult{
		Check: "Run File Syntax",
	}

	cfg, err := config.Load(ctx, path)
	if err != nil {
		result.Status = "error"
		result.Message = fmt.Sprintf("Failed to load run file: %v", err)
		if strings.Contains(err.Error(), "yaml") {
			result.Suggests = []string{
				"Check YAML syntax - ensure proper indentation (use spaces, not tabs)",
			}
		}
		return nil, result
	}

	result.Status = "ok"
	result.Message = "Run file parsed successfully"
	result.Details = []string{
		fmt.Sprintf("Runs: %d", len(cfg.Runs)),
		fmt.Sprintf("Webhooks: %d", len(cfg.Webhooks)),
	}
	return cfg, result
}

// checkPuzzles reports runs that name a day or part without a solution.
func checkPuzzles(cfg *config.Config, reg *puzzle.Registry) []DiagnosticResult {
	results := []DiagnosticResult{}

	for i := range cfg.Runs {
		run := &cfg.Runs[i]
		result := DiagnosticResult{
			Check: fmt.Sprintf("Puzzle: %s", run.Label()),
		}

		var missing []string
		for _, part := range run.Parts() {
			p, err := reg.Lookup(run.Day, part)
			if err != nil {
				missing = append(missing, puzzle.Key(run.Day, part))
				continue
			}
			result.Details = append(result.Details, fmt.Sprintf("part %d: %s", part, p.Title()))
		}

		if len(missing) > 0 {
			result.Status = "error"
			result.Message = fmt.Sprintf("No registered solution for %s", strings.Join(missing, ", "))
			result.Suggests = []string{
				"Run 'aoc list' to see the puzzles with a solution",
				fmt.Sprintf("Install a plugin named aoc-day%d to solve it externally", run.Day),
			}
		} else {
			result.Status = "ok"
			result.Message = fmt.Sprintf("Day %d, %s", run.Day, partsLabel(run))
		}

		results = append(results, result)
	}

	return results
}

// checkInputs verifies every run's inputs exist and look like the run's day.
func checkInputs(ctx context.Context, cfg *config.Config, opts *DiagnoseOptions) []DiagnosticResult {
	results := []DiagnosticResult{}
	d := detector.New()

	for i := range cfg.Runs {
		run := &cfg.Runs[i]

		files, err := cfg.ResolveInputs(run)
		if err != nil {
			results = append(results, DiagnosticResult{
				Check:   fmt.Sprintf("Inputs: %s", run.Label()),
				Status:  "error",
				Message: fmt.Sprintf("Invalid input pattern: %v", err),
			})
			continue
		}

		for _, f := range files {
			results = append(results, checkInputFile(ctx, d, run, f, opts))
		}
	}

	return results
}

func checkInputFile(ctx context.Context, d *detector.Detector, run *config.RunConfig, path string, opts *DiagnoseOptions) DiagnosticResult {
	result := DiagnosticResult{
		Check: fmt.Sprintf("Input: %s", path),
	}

	info, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		result.Status = "error"
		result.Message = "File does not exist"
		result.Suggests = []string{
			"Check if the input path is correct",
			"Relative inputs are resolved against input_dir when it is set",
		}
		return result
	case err != nil:
		result.Status = "error"
		result.Message = fmt.Sprintf("Cannot access file: %v", err)
		result.Suggests = []string{"Check file permissions"}
		return result
	case info.IsDir():
		result.Status = "error"
		result.Message = "Path is a directory, not a file"
		result.Suggests = []string{
			"Use a glob pattern to match files in directory",
			fmt.Sprintf("Example: inputs/day%d/*.txt", run.Day),
		}
		return result
	case info.Size() == 0:
		result.Status = "warning"
		result.Message = "File is empty (0 bytes)"
		result.Suggests = []string{"An empty input has no answer for any puzzle"}
		return result
	}

	detection, err := d.DetectFromFile(ctx, path)
	if err != nil {
		result.Status = "warning"
		result.Message = fmt.Sprintf("Cannot sample file: %v", err)
		return result
	}

	if !detection.HasMatch() {
		result.Status = "warning"
		result.Message = "No known puzzle input format detected"
		result.Suggests = []string{
			fmt.Sprintf("Run 'aoc detect %s' for details", path),
		}
		return result
	}

	best := detection.BestMatch()
	if opts.Verbose {
		result.Details = append(result.Details,
			fmt.Sprintf("Best match: %s (%.1f%%)", best.Format.Name, best.Confidence*100),
			fmt.Sprintf("Sample: %s", truncate(best.SampleLine, 60)))
	}

	if matchesDay(detection, run.Day) {
		result.Status = "ok"
		result.Message = fmt.Sprintf("File exists (%d bytes), looks like day %d input", info.Size(), run.Day)
		return result
	}

	result.Status = "warning"
	result.Message = fmt.Sprintf("Looks like day %d input (%s), but the run is for day %d",
		best.Format.Day, best.Format.Name, run.Day)
	result.Suggests = []string{
		"Check the input was downloaded for the right day",
	}
	return result
}

// matchesDay reports whether day is among the formats tied for the best match.
func matchesDay(detection *detector.DetectionResult, day int) bool {
	best := detection.BestMatch()
	for _, m := range detection.Matches {
		if m.Confidence != best.Confidence {
			break
		}
		if m.Format.Day == day {
			return true
		}
	}
	return false
}

func printDiagnostics(w io.Writer, results []DiagnosticResult, opts *DiagnoseOptions) {
	fmt.Fprintln(w, "=== aoc Run File Diagnostics ===")
	fmt.Fprintln(w)

	okCount := 0
	warnCount := 0
	errCount := 0

	for _, r := range results {
		var icon string
		switch r.Status {
		case "ok":
			icon = "PASS"
			okCount++
		case "warning":
			icon = "WARN"
			warnCount++
		case "error":
			icon = "FAIL"
			errCount++
		}

		fmt.Fprintf(w, "[%s] %s\n", icon, r.Check)
		fmt.Fprintf(w, "    %s\n", r.Message)

		if opts.Verbose || r.Status != "ok" {
			for _, d := range r.Details {
				fmt.Fprintf(w, "      - %s\n", d)
			}
		}

		for _, s := range r.Suggests {
			fmt.Fprintf(w, "      Hint: %s\n", s)
		}

		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Summary: %d passed, %d warnings, %d errors\n", okCount, warnCount, errCount)

	if errCount > 0 {
		fmt.Fprintln(w, "\nFix the errors above before running.")
	} else if warnCount > 0 {
		fmt.Fprintln(w, "\nRun file is usable but has warnings.")
	} else {
		fmt.Fprintln(w, "\nRun file looks good!")
	}
}

// checkWebhooks reports webhook settings. URL and trigger were validated on
// load, so only soft problems are left to find here.
func checkWebhooks(ctx context.Context, cfg *config.Config, opts *DiagnoseOptions) []DiagnosticResult {
	results := []DiagnosticResult{}

	if len(cfg.Webhooks) == 0 {
		if opts.Verbose {
			results = append(results, DiagnosticResult{
				Check:   "Webhooks",
				Status:  "ok",
				Message: "No webhooks configured (optional)",
			})
		}
		return results
	}

	for _, wh := range cfg.Webhooks {
		name := wh.Name
		if name == "" {
			name = wh.URL
		}

		result := DiagnosticResult{
			Check: fmt.Sprintf("Webhook: %s", name),
		}

		warnings := []string{}
		if wh.Token == "" && strings.HasPrefix(wh.URL, "https://") {
			warnings = append(warnings, "No token configured; the endpoint may reject unauthenticated reports")
		}
		if wh.Trigger == config.WebhookTriggerNever {
			warnings = append(warnings, "Trigger is 'never'; this webhook is disabled")
		}

		if len(warnings) > 0 {
			result.Status = "warning"
			result.Message = fmt.Sprintf("%d warning(s)", len(warnings))
			result.Details = warnings
		} else {
			result.Status = "ok"
			result.Message = fmt.Sprintf("Trigger: %s", wh.Trigger)
		}

		if opts.Verbose {
			result.Details = append(result.Details,
				fmt.Sprintf("URL: %s", wh.URL),
				fmt.Sprintf("Timeout: %s", wh.Timeout),
				fmt.Sprintf("Retries: %d", wh.Retries))
			if wh.Token != "" {
				result.Details = append(result.Details, "Token: configured")
			}
		}

		results = append(results, result)
	}

	if opts.Verbose {
		for _, wh := range cfg.Webhooks {
			name := wh.Name
			if name == "" {
				name = wh.URL
			}

			result := checkWebhookConnectivity(ctx, wh)
			result.Check = fmt.Sprintf("Webhook Connectivity: %s", name)
			results = append(results, result)
		}
	}

	return results
}

func checkWebhookConnectivity(ctx context.Context, wh config.WebhookConfig) DiagnosticResult {
	result := DiagnosticResult{}

	// A HEAD request is enough to see whether the endpoint is reachable.
	client := &http.Client{
		Timeout: 5 * time.Second,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, wh.URL, nil)
	if err != nil {
		result.Status = "warning"
		result.Message = fmt.Sprintf("Cannot create request: %v", err)
		return result
	}

	if wh.Token != "" {
		req.Header.Set("Authorization", "Bearer "+wh.Token)
	}

	resp, err := client.Do(req)
	if err != nil {
		result.Status = "warning"
		result.Message = fmt.Sprintf("Cannot connect: %v", err)
		result.Suggests = []string{
			"Check if the webhook URL is correct",
			"Verify network connectivity",
		}
		return result
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 400 {
		result.Status = "ok"
		result.Message = fmt.Sprintf("Reachable (status %d)", resp.StatusCode)
	} else {
		result.Status = "warning"
		result.Message = fmt.Sprintf("Reachable but returned status %d", resp.StatusCode)
		result.Suggests = []string{
			"The endpoint may require POST method (will work during actual webhook send)",
			"Check authentication if using a token",
		}
	}

	return result
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
