package bingo

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/ccollicutt/adventofcode/pkg/input"
	"github.com/ccollicutt/adventofcode/pkg/puzzle"
)

const example = `7,4,9,5,11,17,23,2,0,14,21,24,10,16,13,6,15,25,12,22,18,20,8,19,3,26,1

22 13 17 11  0
 8  2 23  4 24
21  9 14 16  7
 6 10  3 18  5
 1 12 20 15 19

 3 15  0  2 22
 9 18 13 17  5
19  8  7 25 23
20 11 10 24  4
14 21 16 12  6

14 21 17 24  4
10 16 15  9 19
18  8 23 26 20
22 11 13  6  5
 2  0 12  3  7
`

func readExample(t *testing.T) *Input {
	t.Helper()
	in, err := Read(context.Background(), strings.NewReader(example), "example")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	return in
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bingo.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func seq(from, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = from + i
	}
	return out
}

func TestNewBoard(t *testing.T) {
	if _, err := NewBoard(1, seq(0, 24)); err == nil {
		t.Error("NewBoard() with 24 numbers expected error")
	}
	b, err := NewBoard(7, seq(1, 25))
	if err != nil {
		t.Fatalf("NewBoard() error = %v", err)
	}
	if b.ID != 7 {
		t.Errorf("ID = %d, want 7", b.ID)
	}
	if got := b.SumUnmarked(); got != 325 {
		t.Errorf("SumUnmarked() = %d, want 325", got)
	}
}

func TestBoardWon(t *testing.T) {
	tests := []struct {
		name string
		mark []int
		want bool
	}{
		{"nothing marked", nil, false},
		{"first row", []int{1, 2, 3, 4, 5}, true},
		{"last row", []int{21, 22, 23, 24, 25}, true},
		{"first column", []int{1, 6, 11, 16, 21}, true},
		{"last column", []int{5, 10, 15, 20, 25}, true},
		{"diagonal does not count", []int{1, 7, 13, 19, 25}, false},
		{"four in a row", []int{1, 2, 3, 4}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBoard(1, seq(1, 25))
			if err != nil {
				t.Fatal(err)
			}
			for _, n := range tt.mark {
				if !b.Mark(n) {
					t.Fatalf("Mark(%d) = false", n)
				}
			}
			if got := b.Won(); got != tt.want {
				t.Errorf("Won() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoardMarkFirstOccurrence(t *testing.T) {
	numbers := seq(1, 25)
	numbers[24] = 1
	b, err := NewBoard(1, numbers)
	if err != nil {
		t.Fatal(err)
	}

	if b.Mark(99) {
		t.Error("Mark(99) = true, want false")
	}
	b.Mark(1)
	// Only the first 1 is marked; the duplicate in the last cell still counts.
	if got, want := b.SumUnmarked(), 325-25+1-1; got != want {
		t.Errorf("SumUnmarked() = %d, want %d", got, want)
	}
	if got := b.Score(2); got != 2*b.SumUnmarked() {
		t.Errorf("Score(2) = %d, want %d", got, 2*b.SumUnmarked())
	}
}

func TestRead(t *testing.T) {
	in := readExample(t)

	if len(in.Draws) != 27 || in.Draws[0] != 7 || in.Draws[26] != 1 {
		t.Errorf("Draws = %v", in.Draws)
	}
	if len(in.Boards) != 3 {
		t.Fatalf("len(Boards) = %d, want 3", len(in.Boards))
	}
	var ids []int
	for _, b := range in.Boards {
		ids = append(ids, b.ID)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, ids); diff != "" {
		t.Errorf("board IDs mismatch (-want +got):\n%s", diff)
	}
}

func TestReadTrailingBlankLines(t *testing.T) {
	if _, err := Read(context.Background(), strings.NewReader(example+"\n\n"), "example"); err != nil {
		t.Errorf("Read() error = %v", err)
	}
}

func TestReadErrors(t *testing.T) {
	rows := "1 2 3 4 5\n6 7 8 9 10\n11 12 13 14 15\n16 17 18 19 20\n21 22 23 24 25\n"

	tests := []struct {
		name      string
		content   string
		wantLine  int
		malformed bool
	}{
		{"empty input", "", 1, true},
		{"blank draw line", "\n\n" + rows, 1, true},
		{"bad draw", "1,x,3\n\n" + rows, 1, false},
		{"missing separator", "1,2\n" + rows, 2, false},
		{"short row", "1,2\n\n1 2 3 4\n", 3, false},
		{"bad number", "1,2\n\n1 2 3 4 x\n", 3, false},
		{"blank inside board", "1,2\n\n1 2 3 4 5\n\n", 4, true},
		{"incomplete board", "1,2\n\n1 2 3 4 5\n6 7 8 9 10\n", 5, true},
		{"double separator", "1,2\n\n" + rows + "\n\n" + rows, 9, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(context.Background(), strings.NewReader(tt.content), "bingo.txt")
			if err == nil {
				t.Fatal("Read() expected error")
			}

			if tt.malformed {
				var me *input.MalformedLineError
				if !errors.As(err, &me) {
					t.Fatalf("error = %v, want *input.MalformedLineError", err)
				}
				if me.Line != tt.wantLine {
					t.Errorf("Line = %d, want %d", me.Line, tt.wantLine)
				}
				return
			}

			var pe *input.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error = %v, want *input.ParseError", err)
			}
			if pe.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", pe.Line, tt.wantLine)
			}
			if pe.Source != "bingo.txt" {
				t.Errorf("Source = %q, want bingo.txt", pe.Source)
			}
		})
	}
}

func TestReadFileErrors(t *testing.T) {
	if _, err := ReadFile(context.Background(), ""); !errors.Is(err, input.ErrInvalidArgument) {
		t.Errorf("ReadFile(\"\") error = %v, want ErrInvalidArgument", err)
	}
	missing := filepath.Join(t.TempDir(), "missing.txt")
	if _, err := ReadFile(context.Background(), missing); !errors.Is(err, input.ErrNotFound) {
		t.Errorf("ReadFile(missing) error = %v, want ErrNotFound", err)
	}
	if _, err := ReadFile(context.Background(), t.TempDir()); !errors.Is(err, input.ErrNotFound) {
		t.Errorf("ReadFile(directory) error = %v, want ErrNotFound", err)
	}
}

func TestReadByteOrderMark(t *testing.T) {
	content := "\ufeff" + strings.ReplaceAll(example, "\n", "\r\n")
	in, err := ReadFile(context.Background(), writeInput(t, content))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if diff := cmp.Diff(readExample(t), in, cmp.AllowUnexported(Board{})); diff != "" {
		t.Errorf("input mismatch (-want +got):\n%s", diff)
	}
}

func TestReadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Read(ctx, strings.NewReader(example), "example"); !errors.Is(err, context.Canceled) {
		t.Errorf("Read() error = %v, want context.Canceled", err)
	}
}

func TestFirstWinner(t *testing.T) {
	in := readExample(t)
	win, err := FirstWinner(in.Draws, in.Boards)
	if err != nil {
		t.Fatalf("FirstWinner() error = %v", err)
	}
	if win.Board.ID != 3 || win.Draw != 24 || win.Round != 12 {
		t.Errorf("win = board %d draw %d round %d, want board 3 draw 24 round 12", win.Board.ID, win.Draw, win.Round)
	}
	if got := win.Board.SumUnmarked(); got != 188 {
		t.Errorf("SumUnmarked() = %d, want 188", got)
	}
	if got := win.Score(); got != 4512 {
		t.Errorf("Score() = %d, want 4512", got)
	}
}

func TestLastWinner(t *testing.T) {
	in := readExample(t)
	win, err := LastWinner(in.Draws, in.Boards)
	if err != nil {
		t.Fatalf("LastWinner() error = %v", err)
	}
	if win.Board.ID != 2 || win.Draw != 13 {
		t.Errorf("win = board %d draw %d, want board 2 draw 13", win.Board.ID, win.Draw)
	}
	if got := win.Board.SumUnmarked(); got != 148 {
		t.Errorf("SumUnmarked() = %d, want 148", got)
	}
	if got := win.Score(); got != 1924 {
		t.Errorf("Score() = %d, want 1924", got)
	}
}

func TestNoWinner(t *testing.T) {
	tests := []struct {
		name  string
		play  func([]int, []*Board) (Win, error)
		draws []int
	}{
		{"first, draws exhausted", FirstWinner, []int{1, 2, 3}},
		{"last, draws exhausted", LastWinner, []int{1, 2, 3, 4, 5}},
		{"first, no draws", FirstWinner, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := NewBoard(1, seq(1, 25))
			b, _ := NewBoard(2, seq(26, 25))
			_, err := tt.play(tt.draws, []*Board{a, b})
			code, ok := puzzle.ExitCode(err)
			if !ok || code != puzzle.ExitNoResult {
				t.Errorf("ExitCode(%v) = (%d, %v), want (%d, true)", err, code, ok, puzzle.ExitNoResult)
			}
		})
	}

	if _, err := LastWinner([]int{1, 2}, nil); err == nil {
		t.Error("LastWinner() with no boards expected error")
	}
}

func TestGame(t *testing.T) {
	a, _ := NewBoard(1, seq(1, 25))
	b, _ := NewBoard(2, seq(1, 25))
	c, _ := NewBoard(3, seq(26, 25))
	g := NewGame([]*Board{a, b, c})

	for _, n := range []int{1, 2, 3, 4} {
		if !g.PlayRound(n) {
			t.Fatalf("PlayRound(%d) = false", n)
		}
	}
	if g.Remaining() != 3 {
		t.Errorf("Remaining() = %d, want 3", g.Remaining())
	}

	g.PlayRound(5)
	if g.Remaining() != 1 {
		t.Errorf("Remaining() = %d, want 1", g.Remaining())
	}
	var ids []int
	for _, w := range g.Winners() {
		ids = append(ids, w.ID)
	}
	if diff := cmp.Diff([]int{1, 2}, ids); diff != "" {
		t.Errorf("winners mismatch (-want +got):\n%s", diff)
	}

	for _, n := range []int{26, 27, 28, 29, 30} {
		g.PlayRound(n)
	}
	if g.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", g.Remaining())
	}
	if g.PlayRound(31) {
		t.Error("PlayRound() with no boards left = true, want false")
	}
}

func TestSolve(t *testing.T) {
	path := writeInput(t, example)

	tests := []struct {
		puzzle puzzle.Puzzle
		want   int
		board  int
	}{
		{First{}, 4512, 3},
		{Last{}, 1924, 2},
	}

	for _, tt := range tests {
		t.Run(tt.puzzle.Title(), func(t *testing.T) {
			ans, err := tt.puzzle.Solve(context.Background(), path)
			if err != nil {
				t.Fatalf("Solve() error = %v", err)
			}
			if ans.Value != tt.want {
				t.Errorf("Value = %d, want %d", ans.Value, tt.want)
			}
			if got, _ := ans.Detail("board"); got != tt.board {
				t.Errorf("board detail = %d, want %d", got, tt.board)
			}
		})
	}
}
