// Package cli provides the command-line interface for aoc.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ccollicutt/adventofcode/internal/cli/commands"
	"github.com/ccollicutt/adventofcode/internal/cli/plugins"
	"github.com/ccollicutt/adventofcode/internal/logger"
	"github.com/ccollicutt/adventofcode/internal/registry"
	"github.com/ccollicutt/adventofcode/pkg/puzzle"
)

// GlobalOptions holds the persistent flags shared by every command.
type GlobalOptions struct {
	LogLevel  string
	LogFormat string
	NoColor   bool
}

// Execute runs the root command and returns the exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := NewRootCommand(registry.Default())

	// Check if the first argument might be a plugin command
	if len(os.Args) > 1 {
		potentialCommand := os.Args[1]
		if len(potentialCommand) > 0 && potentialCommand[0] != '-' {
			if !isBuiltinCommand(rootCmd, potentialCommand) {
				if pluginPath, err := plugins.FindPlugin(potentialCommand); err == nil {
					return plugins.Execute(ctx, pluginPath, os.Args[2:])
				}
				// Plugin not found - fall through to cobra, which reports the error
			}
		}
	}

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if len(os.Args) > 1 {
			potentialCommand := os.Args[1]
			if len(potentialCommand) > 0 && potentialCommand[0] != '-' {
				if !isBuiltinCommand(rootCmd, potentialCommand) {
					_, _ = fmt.Fprintln(os.Stderr, plugins.FormatNotFoundError(potentialCommand))
					return commands.ExitError
				}
			}
		}
		// SilenceErrors prevents cobra from printing this itself
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return commands.ExitError
	}
	return commands.ExitCode
}

// isBuiltinCommand checks if a command name is a built-in cobra command.
func isBuiltinCommand(rootCmd *cobra.Command, name string) bool {
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == name || cmd.HasAlias(name) {
			return true
		}
	}
	return name == "help" || name == "completion"
}

// NewRootCommand creates the root cobra command with a command per solved
// day plus the run file commands.
func NewRootCommand(reg *puzzle.Registry) *cobra.Command {
	opts := &GlobalOptions{}

	rootCmd := &cobra.Command{
		Use:   "aoc",
		Short: "Solve Advent of Code 2021 puzzles",
		Long: `aoc solves Advent of Code 2021 puzzles from their input files.

Each dayN command reads one input file and prints the answer:
  aoc day1 inputs/day1.txt
  aoc day3 --part 2 inputs/day3.txt

Run files solve many puzzles at once and print one report:
  aoc run aoc.yaml

Answers go to stdout; logs go to stderr.

PLUGINS:
  aoc supports plugins for days without a built-in solution. Plugins are
  standalone binaries named aoc-<command> that are automatically discovered
  and invoked, e.g. aoc-day5.

  Plugin locations (searched in order):
    1. Same directory as the aoc binary
    2. ~/.aoc/plugins/
    3. Anywhere in PATH`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return configureGlobals(opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "warn", "Log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "text", "Log format (text|json)")
	rootCmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(commands.NewDayCommands(reg)...)
	rootCmd.AddCommand(commands.NewRunCommand(reg))
	rootCmd.AddCommand(commands.NewValidateCommand(reg))
	rootCmd.AddCommand(commands.NewDiagnoseCommand(reg))
	rootCmd.AddCommand(commands.NewDetectCommand())
	rootCmd.AddCommand(commands.NewListCommand(reg))
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}

func configureGlobals(opts *GlobalOptions) error {
	level, err := logger.ParseLevel(opts.LogLevel)
	if err != nil {
		return err
	}
	format, err := logger.ParseFormat(opts.LogFormat)
	if err != nil {
		return err
	}
	logger.Configure(os.Stderr, level, format)

	if opts.NoColor {
		color.NoColor = true
	}
	return nil
}
