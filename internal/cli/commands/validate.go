package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ccollicutt/adventofcode/pkg/config"
	"github.com/ccollicutt/adventofcode/pkg/puzzle"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(reg *puzzle.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a run file",
		Long: `Validate a run file without solving anything.

Checks:
  - YAML syntax
  - Required fields, day and part ranges
  - Glob pattern validity
  - Every run names a puzzle with a registered solution
  - Input file existence (warning only)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args, reg)
		},
	}
}

func runValidate(cmd *cobra.Command, args []string, reg *puzzle.Registry) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return errors.Wrap(err, "validation failed")
	}

	if err := checkRegistered(cfg, reg); err != nil {
		return errors.Wrap(err, "validation failed")
	}

	fmt.Fprintf(out, "\nConfiguration valid!\n")
	fmt.Fprintf(out, "  Runs:     %d\n", len(cfg.Runs))
	fmt.Fprintf(out, "  Webhooks: %d\n", len(cfg.Webhooks))

	fmt.Fprintf(out, "\nRuns:\n")
	for i := range cfg.Runs {
		run := &cfg.Runs[i]
		fmt.Fprintf(out, "  %d. [day %d, %s] %s\n", i+1, run.Day, partsLabel(run), run.Label())

		// Missing inputs are warnings only; they may be created before the run.
		files, err := cfg.ResolveInputs(run)
		if err != nil {
			fmt.Fprintf(out, "     Warning: %v\n", err)
			continue
		}
		for _, f := range files {
			if _, err := os.Stat(f); err != nil {
				fmt.Fprintf(out, "     Warning: input not found: %s\n", f)
			} else {
				fmt.Fprintf(out, "     - %s\n", f)
			}
		}
	}

	return nil
}

// checkRegistered reports every run whose puzzle has no registered solution.
func checkRegistered(cfg *config.Config, reg *puzzle.Registry) error {
	var result *multierror.Error
	for i := range cfg.Runs {
		run := &cfg.Runs[i]
		for _, part := range run.Parts() {
			if _, err := reg.Lookup(run.Day, part); err != nil {
				result = multierror.Append(result, errors.Wrapf(err, "runs[%d] (%s)", i, run.Label()))
			}
		}
	}
	return result.ErrorOrNil()
}

func partsLabel(run *config.RunConfig) string {
	if run.Part == 0 {
		return "both parts"
	}
	return fmt.Sprintf("part %d", run.Part)
}
