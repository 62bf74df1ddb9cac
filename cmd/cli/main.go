// aoc - Advent of Code 2021 puzzle solver
//
// aoc reads puzzle input files, computes each puzzle's answer and prints it.
// Run files solve many puzzles at once and report the results.
package main

import (
	"os"

	"github.com/ccollicutt/adventofcode/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
