package detector

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/ccollicutt/adventofcode/pkg/input"
)

func TestDetector_DetectFromLines_Depths(t *testing.T) {
	lines := []string{"199", "200", "208", "210", "200"}

	result := New().DetectFromLines(lines)

	if !result.HasMatch() {
		t.Fatal("Expected to detect a format")
	}
	best := result.BestMatch()
	if best.Format.Day != 1 {
		t.Errorf("Expected day 1, got %s (day %d)", best.Format.Name, best.Format.Day)
	}
	if best.Confidence != 1.0 {
		t.Errorf("Expected 100%% confidence, got %.1f%%", best.Confidence*100)
	}
	if result.AmbiguityNote != "" {
		t.Errorf("Unexpected ambiguity note: %s", result.AmbiguityNote)
	}
}

func TestDetector_DetectFromLines_Commands(t *testing.T) {
	lines := []string{"forward 5", "down 5", "forward 8", "up 3", "down 8", "forward 2"}

	result := New().DetectFromLines(lines)

	best := result.BestMatch()
	if best == nil || best.Format.Day != 2 {
		t.Fatalf("Expected day 2, got %+v", best)
	}
	if best.MatchCount != 6 {
		t.Errorf("Expected 6 matches, got %d", best.MatchCount)
	}
	if best.SampleLine != "forward 5" {
		t.Errorf("SampleLine = %q, want %q", best.SampleLine, "forward 5")
	}
}

func TestDetector_DetectFromLines_DiagnosticIsAmbiguous(t *testing.T) {
	lines := []string{"00100", "11110", "10110"}

	result := New().DetectFromLines(lines)

	if len(result.Matches) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(result.Matches))
	}
	if result.BestMatch().Format.Day != 3 {
		t.Errorf("Expected the more specific day 3 format first, got day %d", result.BestMatch().Format.Day)
	}
	if !strings.Contains(result.AmbiguityNote, "Depth measurements (day 1)") {
		t.Errorf("AmbiguityNote = %q, want mention of depth measurements", result.AmbiguityNote)
	}
}

func TestDetector_DetectFromLines_Bingo(t *testing.T) {
	lines := []string{
		"7,4,9,5,11,17,23,2,0,14,21,24",
		"",
		"22 13 17 11  0",
		" 8  2 23  4 24",
		"21  9 14 16  7",
		" 6 10  3 18  5",
		" 1 12 20 15 19",
	}

	result := New().DetectFromLines(lines)

	if result.SampledLines != 6 {
		t.Errorf("SampledLines = %d, want 6", result.SampledLines)
	}
	best := result.BestMatch()
	if best == nil || best.Format.Day != 4 || best.Confidence != 1.0 {
		t.Fatalf("Expected day 4 at full confidence, got %+v", best)
	}
}

func TestDetector_DetectFromLines_ParserRejects(t *testing.T) {
	// 33 binary digits: matches the diagnostic pattern but not its parser.
	lines := []string{"forward 5", strings.Repeat("1", 33)}

	result := New().DetectFromLines(lines)

	for _, m := range result.Matches {
		if m.Format.Day == 3 {
			t.Errorf("Day 3 format should reject over-long codes")
		}
	}
	if best := result.BestMatch(); best.Confidence != 0.5 {
		t.Errorf("Confidence = %v, want 0.5", best.Confidence)
	}
}

func TestDetector_DetectFromLines_NoMatch(t *testing.T) {
	result := New().DetectFromLines([]string{"hello world", "sideways 3"})

	if result.HasMatch() {
		t.Errorf("Expected no match, got %+v", result.BestMatch())
	}
	if result.BestMatch() != nil {
		t.Error("BestMatch() should be nil")
	}
}

func TestDetector_DetectFromLines_Empty(t *testing.T) {
	result := New().DetectFromLines(nil)
	if result.HasMatch() || result.SampledLines != 0 {
		t.Errorf("Expected empty result, got %+v", result)
	}
}

func TestDetector_WithFormats(t *testing.T) {
	d := New(WithFormats(DefaultFormats()[1]))
	result := d.DetectFromLines([]string{"199", "200"})
	if result.HasMatch() {
		t.Error("Expected no match with only the command format")
	}
}

func TestDetector_DetectFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	content := "1,2,3\n\n1 2 3 4 5\n\n\n6 7 8 9 10\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	result, err := New(WithSampleSize(2)).DetectFromFile(context.Background(), path)
	if err != nil {
		t.Fatalf("DetectFromFile() error = %v", err)
	}
	if result.SampledLines != 2 {
		t.Errorf("SampledLines = %d, want 2", result.SampledLines)
	}
	if result.BlankLines != 1 {
		t.Errorf("BlankLines = %d, want 1", result.BlankLines)
	}
	if result.BestMatch().Format.Day != 4 {
		t.Errorf("Expected day 4, got day %d", result.BestMatch().Format.Day)
	}
}

func TestDetector_DetectFromFile_Errors(t *testing.T) {
	d := New()

	if _, err := d.DetectFromFile(context.Background(), ""); !errors.Is(err, input.ErrInvalidArgument) {
		t.Errorf("empty path error = %v, want ErrInvalidArgument", err)
	}

	missing := filepath.Join(t.TempDir(), "missing.txt")
	if _, err := d.DetectFromFile(context.Background(), missing); !errors.Is(err, input.ErrNotFound) {
		t.Errorf("missing file error = %v, want ErrNotFound", err)
	}

	if _, err := d.DetectFromFile(context.Background(), t.TempDir()); !errors.Is(err, input.ErrNotFound) {
		t.Errorf("directory error = %v, want ErrNotFound", err)
	}
}

func TestDetector_DetectFromFile_ByteOrderMark(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("\ufeffforward 5\r\ndown 5\r\nup 3\r\n"), 0644); err != nil {
		t.Fatal(err)
	}

	result, err := New().DetectFromFile(context.Background(), path)
	if err != nil {
		t.Fatalf("DetectFromFile() error = %v", err)
	}
	if !result.HasMatch() || result.BestMatch().Format.Day != 2 {
		t.Errorf("Expected day 2 match, got %+v", result.Matches)
	}
}

func TestDefaultFormats(t *testing.T) {
	for _, f := range DefaultFormats() {
		if f.Pattern == nil {
			t.Errorf("%s: pattern not compiled", f.Name)
		}
		for _, ex := range f.Examples {
			if !f.Pattern.MatchString(ex) {
				t.Errorf("%s: example %q does not match its pattern", f.Name, ex)
			}
			if f.Accept != nil && !f.Accept(ex) {
				t.Errorf("%s: example %q rejected by its parser", f.Name, ex)
			}
		}
	}
}
