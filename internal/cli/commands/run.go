package commands

import (
	"context"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ccollicutt/adventofcode/internal/logger"
	"github.com/ccollicutt/adventofcode/pkg/config"
	"github.com/ccollicutt/adventofcode/pkg/output"
	"github.com/ccollicutt/adventofcode/pkg/puzzle"
	"github.com/ccollicutt/adventofcode/pkg/webhook"
)

// RunOptions holds command-line options for the run command.
type RunOptions struct {
	Output  string
	Runs    []string
	Verbose bool
	Quiet   bool

	// Webhook options
	WebhookURL     string
	WebhookToken   string
	WebhookTrigger string
}

// NewRunCommand creates the run command.
func NewRunCommand(reg *puzzle.Registry) *cobra.Command {
	opts := &RunOptions{}

	cmd := &cobra.Command{
		Use:   "run <config-file>",
		Short: "Solve every puzzle listed in a run file",
		Long: `Solve the puzzles listed in a run file against their inputs and print
one report.

Each run names a day, optionally a part (both parts when omitted), and one or
more input files or glob patterns. Puzzles are solved one after another.

Exit codes:
  0 - Every puzzle was solved
  1 - At least one puzzle failed
  2 - Configuration or runtime error`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, args, reg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output format (text|json), overrides the run file")
	cmd.Flags().StringSliceVar(&opts.Runs, "run", nil, "Solve specific run(s) only, by name or dayN (can be repeated)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show intermediate values and timing")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Answers only, no report")

	cmd.Flags().StringVar(&opts.WebhookURL, "webhook-url", "", "Webhook endpoint URL")
	cmd.Flags().StringVar(&opts.WebhookToken, "webhook-token", "", "Bearer token for webhook auth")
	cmd.Flags().StringVar(&opts.WebhookTrigger, "webhook-trigger", "on_failure", "When to fire webhook (on_failure|always|never)")

	return cmd
}

// job is one puzzle to solve against the inputs of one run.
type job struct {
	run    *config.RunConfig
	puzzle puzzle.Puzzle
	inputs []string
}

func runRun(cmd *cobra.Command, args []string, reg *puzzle.Registry, opts *RunOptions) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return errors.Wrap(err, "loading config")
	}

	jobs, err := planJobs(cfg, reg, opts.Runs)
	if err != nil {
		return err
	}

	format := cfg.Output
	if opts.Output != "" {
		format = opts.Output
	}
	formatter, err := output.New(format, output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	})
	if err != nil {
		return err
	}

	started := time.Now()
	var results []*output.Result
	for _, j := range jobs {
		for _, path := range j.inputs {
			solveCtx, cancel := context.WithTimeout(ctx, j.run.Timeout)
			results = append(results, solveOne(solveCtx, j.puzzle, path, j.run.Label()))
			cancel()

			if ctx.Err() != nil {
				return errors.Wrap(ctx.Err(), "run interrupted")
			}
		}
	}

	report := output.NewReport(results, configPath, started)
	logger.Info("run finished",
		"solved", report.Summary.Solved,
		"failed", report.Summary.Failed,
		"duration", report.Metadata.Duration)

	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return errors.Wrap(err, "formatting output")
	}

	// Webhook failures are reported but do not change the exit code.
	sendWebhooks(ctx, cfg, opts, report)

	if report.HasFailures() {
		ExitCode = ExitFailures
	}

	return nil
}

// planJobs resolves the puzzles and input files of every selected run before
// anything is solved, so configuration mistakes fail fast.
func planJobs(cfg *config.Config, reg *puzzle.Registry, only []string) ([]job, error) {
	var jobs []job

	for i := range cfg.Runs {
		run := &cfg.Runs[i]
		if len(only) > 0 && !slices.Contains(only, run.Label()) && !slices.Contains(only, fmt.Sprintf("day%d", run.Day)) {
			continue
		}

		inputs, err := cfg.ResolveInputs(run)
		if err != nil {
			return nil, errors.Wrapf(err, "runs[%d] (%s)", i, run.Label())
		}

		for _, part := range run.Parts() {
			p, err := reg.Lookup(run.Day, part)
			if err != nil {
				return nil, errors.Wrapf(err, "runs[%d] (%s)", i, run.Label())
			}
			jobs = append(jobs, job{run: run, puzzle: p, inputs: inputs})
		}
	}

	if len(jobs) == 0 {
		return nil, errors.Errorf("no runs selected (available: %v)", runLabels(cfg))
	}
	return jobs, nil
}

func runLabels(cfg *config.Config) []string {
	labels := make([]string, 0, len(cfg.Runs))
	for i := range cfg.Runs {
		labels = append(labels, cfg.Runs[i].Label())
	}
	return labels
}

// sendWebhooks sends the report to all configured webhooks.
// Errors are logged to stderr but don't fail the run.
func sendWebhooks(ctx context.Context, cfg *config.Config, opts *RunOptions, report *output.Report) {
	webhooks := collectWebhooks(cfg, opts)
	if len(webhooks) == 0 {
		return
	}

	client := webhook.NewClient()

	for _, wh := range webhooks {
		if !shouldFireWebhook(wh.Trigger, report.HasFailures()) {
			continue
		}

		resp := client.Send(ctx, report, webhook.SendOptions{
			URL:     wh.URL,
			Token:   wh.Token,
			Timeout: wh.Timeout,
			Retries: wh.Retries,
		})

		name := wh.Name
		if name == "" {
			name = wh.URL
		}

		if resp.Success() {
			fmt.Fprintf(os.Stderr, "Webhook %s: sent (%d, %s, %d attempt(s))\n", name, resp.StatusCode, resp.Duration, resp.Attempts)
		} else {
			fmt.Fprintf(os.Stderr, "Webhook %s: failed (%v)\n", name, resp.Error)
		}
	}
}

// collectWebhooks merges run file webhooks with the command-line webhook.
func collectWebhooks(cfg *config.Config, opts *RunOptions) []config.WebhookConfig {
	webhooks := make([]config.WebhookConfig, 0, len(cfg.Webhooks)+1)
	webhooks = append(webhooks, cfg.Webhooks...)

	if opts.WebhookURL != "" {
		trigger := config.WebhookTrigger(opts.WebhookTrigger)
		if trigger == "" {
			trigger = config.WebhookTriggerOnFailure
		}

		webhooks = append(webhooks, config.WebhookConfig{
			Name:    "cli",
			URL:     opts.WebhookURL,
			Token:   opts.WebhookToken,
			Trigger: trigger,
			Timeout: config.DefaultWebhookTimeout,
		})
	}

	return webhooks
}

// shouldFireWebhook determines if a webhook should fire based on trigger and failures.
func shouldFireWebhook(trigger config.WebhookTrigger, hasFailures bool) bool {
	switch trigger {
	case config.WebhookTriggerAlways:
		return true
	case config.WebhookTriggerNever:
		return false
	default:
		return hasFailures
	}
}
