package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ccollicutt/adventofcode/internal/logger"
	"github.com/ccollicutt/adventofcode/pkg/output"
	"github.com/ccollicutt/adventofcode/pkg/puzzle"
)

// SolveOptions holds command-line options for the day commands.
type SolveOptions struct {
	Part    int
	Output  string
	Verbose bool
}

// NewDayCommands creates one command per day with a registered solution.
func NewDayCommands(reg *puzzle.Registry) []*cobra.Command {
	var cmds []*cobra.Command
	for _, day := range reg.Days() {
		cmds = append(cmds, NewDayCommand(reg, day))
	}
	return cmds
}

// NewDayCommand creates the command that solves one day's puzzle.
func NewDayCommand(reg *puzzle.Registry, day int) *cobra.Command {
	opts := &SolveOptions{}

	var parts []string
	for _, p := range reg.All() {
		if p.Day() == day {
			parts = append(parts, fmt.Sprintf("  part %d: %s", p.Part(), p.Title()))
		}
	}

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("day%d <input-file>", day),
		Short: fmt.Sprintf("Solve the day %d puzzle", day),
		Long: fmt.Sprintf(`Solve the day %d puzzle for an input file and print the answer.

%s

Exit codes:
   0 - Answer printed
  -1 - Missing input filename argument
  -2 - Input file does not exist or is inaccessible
  -3 - The puzzle has no answer for this input
  -4 - The second computation of the puzzle failed
  -5 - Malformed or unparseable input line
   2 - Usage or runtime error`, day, strings.Join(parts, "\n")),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDay(cmd, args, reg, day, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Part, "part", "p", 1, "Puzzle part (1|2)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show intermediate values and timing")

	return cmd
}

func runDay(cmd *cobra.Command, args []string, reg *puzzle.Registry, day int, opts *SolveOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		fmt.Fprintln(out, "[error] Missing input filename argument")
		ExitCode = ExitMissingArgument
		return nil
	}

	p, err := reg.Lookup(day, opts.Part)
	if err != nil {
		return err
	}

	formatter, err := output.New(opts.Output, output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   !opts.Verbose,
	})
	if err != nil {
		return err
	}

	started := time.Now()
	result := solveOne(ctx, p, args[0], "")
	report := output.NewReport([]*output.Result{result}, "", started)

	if err := formatter.Format(ctx, report, out); err != nil {
		return errors.Wrap(err, "formatting output")
	}

	if result.Failed() {
		ExitCode = result.ExitCode
	}
	return nil
}

// solveOne solves p against path and records the outcome.
func solveOne(ctx context.Context, p puzzle.Puzzle, path, run string) *output.Result {
	log := logger.WithInput(p.Day(), p.Part(), path)
	log.Info("solving puzzle")

	start := time.Now()
	ans, err := p.Solve(ctx, path)

	r := &output.Result{
		Run:      run,
		Day:      p.Day(),
		Part:     p.Part(),
		Title:    p.Title(),
		Input:    path,
		Duration: time.Since(start),
	}

	if err != nil {
		r.ExitCode, r.Error = classify(err, path)
		log.Warn("puzzle failed", "error", err, "exit_code", r.ExitCode)
		return r
	}

	r.Answer = ans
	log.Info("puzzle solved", "answer", ans.Value, "duration", r.Duration)
	return r
}
