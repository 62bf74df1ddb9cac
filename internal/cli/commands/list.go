package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ccollicutt/adventofcode/pkg/puzzle"
)

// ListOptions holds command-line options for the list command.
type ListOptions struct {
	Output string
}

// NewListCommand creates the list command.
func NewListCommand(reg *puzzle.Registry) *cobra.Command {
	opts := &ListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the puzzles with a registered solution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, reg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")

	return cmd
}

// puzzleInfo represents a registered puzzle in JSON output.
type puzzleInfo struct {
	Day     int    `json:"day"`
	Part    int    `json:"part"`
	Title   string `json:"title"`
	Command string `json:"command"`
}

func runList(cmd *cobra.Command, reg *puzzle.Registry, opts *ListOptions) error {
	out := cmd.OutOrStdout()
	all := reg.All()

	switch opts.Output {
	case "json":
		infos := make([]puzzleInfo, 0, len(all))
		for _, p := range all {
			infos = append(infos, puzzleInfo{
				Day:     p.Day(),
				Part:    p.Part(),
				Title:   p.Title(),
				Command: fmt.Sprintf("aoc day%d --part %d", p.Day(), p.Part()),
			})
		}
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(infos)
	case "text":
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "DAY\tPART\tTITLE")
		for _, p := range all {
			fmt.Fprintf(tw, "%d\t%d\t%s\n", p.Day(), p.Part(), p.Title())
		}
		return tw.Flush()
	default:
		return errors.Errorf("unknown output format: %s", opts.Output)
	}
}
