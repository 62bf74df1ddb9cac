package dive

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/ccollicutt/adventofcode/pkg/input"
)

const exampleCourse = `forward 5
down 5
forward 8
up 3
down 8
forward 2
`

var exampleCommands = []Command{
	{Forward, 5},
	{Down, 5},
	{Forward, 8},
	{Up, 3},
	{Down, 8},
	{Forward, 2},
}

func writeCourse(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "course.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCommandParser(t *testing.T) {
	tests := []struct {
		line    string
		want    Command
		wantErr bool
	}{
		{"forward 5", Command{Forward, 5}, false},
		{"down 0", Command{Down, 0}, false},
		{"up 12", Command{Up, 12}, false},
		{"Forward 5", Command{}, true},
		{"forward", Command{}, true},
		{"forward  5", Command{}, true},
		{"forward 5 6", Command{}, true},
		{" 5", Command{}, true},
		{"sideways 5", Command{}, true},
		{"down -3", Command{}, true},
		{"down x", Command{}, true},
		{"down ", Command{}, true},
	}

	p := CommandParser{}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := p.Parse(tt.line)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.line, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestDirection_String(t *testing.T) {
	if Forward.String() != "forward" || Down.String() != "down" || Up.String() != "up" {
		t.Errorf("unexpected direction names: %s %s %s", Forward, Down, Up)
	}
	if Direction(42).String() != "Direction(42)" {
		t.Errorf("Direction(42).String() = %q", Direction(42).String())
	}
}

func TestFold_Position(t *testing.T) {
	got := Fold(Position{}, exampleCommands)
	want := Position{X: 15, Depth: 10}
	if got != want {
		t.Errorf("Fold() = %v, want %v", got, want)
	}
	if got.Product() != 150 {
		t.Errorf("Product() = %d, want 150", got.Product())
	}
}

func TestFold_AimedPosition(t *testing.T) {
	got := Fold(AimedPosition{}, exampleCommands)
	want := AimedPosition{X: 15, Depth: 60, Aim: 10}
	if got != want {
		t.Errorf("Fold() = %v, want %v", got, want)
	}
	if got.Product() != 900 {
		t.Errorf("Product() = %d, want 900", got.Product())
	}
}

func TestAimedPosition_Transitions(t *testing.T) {
	var got []AimedPosition
	pos := AimedPosition{}
	for _, c := range exampleCommands {
		pos = pos.Transform(c)
		got = append(got, pos)
	}

	want := []AimedPosition{
		{X: 5, Depth: 0, Aim: 0},
		{X: 5, Depth: 0, Aim: 5},
		{X: 13, Depth: 40, Aim: 5},
		{X: 13, Depth: 40, Aim: 2},
		{X: 13, Depth: 40, Aim: 10},
		{X: 15, Depth: 60, Aim: 10},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("transitions mismatch (-want +got):\n%s", diff)
	}
}

func TestSolve(t *testing.T) {
	path := writeCourse(t, exampleCourse)
	ctx := context.Background()

	a, err := Course{}.Solve(ctx, path)
	if err != nil {
		t.Fatalf("Course.Solve() error = %v", err)
	}
	if a.Value != 150 {
		t.Errorf("Course answer = %d, want 150", a.Value)
	}

	a, err = AimedCourse{}.Solve(ctx, path)
	if err != nil {
		t.Fatalf("AimedCourse.Solve() error = %v", err)
	}
	if a.Value != 900 {
		t.Errorf("AimedCourse answer = %d, want 900", a.Value)
	}
	if d, _ := a.Detail("depth"); d != 60 {
		t.Errorf("depth = %d, want 60", d)
	}
}

func TestSolve_BadCommand(t *testing.T) {
	path := writeCourse(t, "forward 5\nbackward 2\n")

	_, err := Course{}.Solve(context.Background(), path)
	var pe *input.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Solve() error = %v, want *input.ParseError", err)
	}
	if pe.Line != 2 || pe.Text != "backward 2" {
		t.Errorf("ParseError = line %d text %q", pe.Line, pe.Text)
	}
}

func TestSolve_Cancelled(t *testing.T) {
	path := writeCourse(t, exampleCourse)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := (Course{}).Solve(ctx, path); !errors.Is(err, context.Canceled) {
		t.Errorf("Solve() error = %v, want context.Canceled", err)
	}
}
