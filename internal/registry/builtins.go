// Package registry wires the built-in puzzle solutions into a puzzle.Registry.
package registry

import (
	"github.com/ccollicutt/adventofcode/pkg/bingo"
	"github.com/ccollicutt/adventofcode/pkg/diagnostic"
	"github.com/ccollicutt/adventofcode/pkg/dive"
	"github.com/ccollicutt/adventofcode/pkg/puzzle"
	"github.com/ccollicutt/adventofcode/pkg/sonar"
)

// Builtins returns every puzzle solution shipped with aoc.
func Builtins() []puzzle.Puzzle {
	return []puzzle.Puzzle{
		sonar.Increases{},
		sonar.WindowIncreases{Size: sonar.DefaultWindowSize},
		dive.Course{},
		dive.AimedCourse{},
		diagnostic.Power{},
		diagnostic.LifeSupport{},
		bingo.First{},
		bingo.Last{},
	}
}

// Default returns a new registry holding the built-in solutions.
func Default() *puzzle.Registry {
	r := puzzle.NewRegistry()
	r.MustRegister(Builtins()...)
	return r
}
