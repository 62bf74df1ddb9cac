package output

import (
	"time"

	"github.com/ccollicutt/adventofcode/pkg/puzzle"
)

func createTestReport() *Report {
	started := time.Date(2021, 12, 4, 6, 0, 0, 0, time.UTC)
	results := []*Result{
		{
			Run:   "sonar",
			Day:   1,
			Part:  1,
			Title: "Sonar Sweep: depth increases",
			Input: "day1.txt",
			Answer: &puzzle.Answer{
				Day: 1, Part: 1, Title: "Sonar Sweep: depth increases", Input: "day1.txt", Value: 7,
				Details: []puzzle.Detail{{Name: "measurements", Value: 10}},
			},
			Duration: 2 * time.Millisecond,
		},
		{
			Run:      "bingo",
			Day:      4,
			Part:     2,
			Title:    "Giant Squid: last winning board",
			Input:    "day4.txt",
			Error:    "no winner found",
			ExitCode: puzzle.ExitNoResult,
		},
		{
			Day:   1,
			Part:  2,
			Title: "Sonar Sweep: sliding window increases",
			Input: "day1.txt",
			Answer: &puzzle.Answer{
				Day: 1, Part: 2, Title: "Sonar Sweep: sliding window increases", Input: "day1.txt", Value: 5,
			},
		},
	}
	return NewReport(results, "run.yaml", started)
}
