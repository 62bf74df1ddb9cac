package test

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// getProjectRoot returns the project root directory based on this test file's location.
func getProjectRoot() string {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return "."
	}
	return filepath.Dir(filepath.Dir(filename))
}

// goFiles returns the .go files under dir, relative to the project root,
// selected by keep. Hidden, vendor and underscore directories are skipped.
func goFiles(t *testing.T, dir string, keep func(path string) bool) []string {
	t.Helper()
	var files []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			name := info.Name()
			if path != dir && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "vendor" || name == "testdata") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, ".go") && keep(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to walk directory: %v", err)
	}
	return files
}

// scanForbidden reports every non-comment line of files containing one of patterns.
func scanForbidden(t *testing.T, files, patterns []string) []string {
	t.Helper()
	var violations []string

	for _, file := range files {
		f, err := os.Open(file)
		if err != nil {
			t.Fatalf("Failed to open %s: %v", file, err)
		}

		scanner := bufio.NewScanner(f)
		lineNum := 0
		for scanner.Scan() {
			lineNum++
			line := scanner.Text()
			if strings.HasPrefix(strings.TrimSpace(line), "//") {
				continue
			}
			for _, pattern := range patterns {
				if strings.Contains(line, pattern) {
					violations = append(violations, fmt.Sprintf("%s:%d: contains forbidden pattern '%s'", file, lineNum, pattern))
				}
			}
		}
		f.Close()

		if err := scanner.Err(); err != nil {
			t.Fatalf("Error scanning %s: %v", file, err)
		}
	}

	return violations
}

// TestNoSkippedTests ensures no test files contain t.Skip() calls.
// Skipped tests hide failures - tests should either pass or fail, never skip.
func TestNoSkippedTests(t *testing.T) {
	testFiles := goFiles(t, getProjectRoot(), func(path string) bool {
		return strings.HasSuffix(path, "_test.go") && !strings.HasSuffix(path, "quality_test.go")
	})

	violations := scanForbidden(t, testFiles, []string{"t.Skip(", "t.SkipNow(", "testing.Short()"})
	if len(violations) > 0 {
		t.Errorf("Found %d test skip violation(s):", len(violations))
		for _, v := range violations {
			t.Errorf("  %s", v)
		}
		t.Error("Tests should not be skipped. Fix the cause, use t.Fatalf() for missing resources, or remove the test.")
	}
}

// TestNoStdoutInLibraries ensures packages under pkg/ never write to stdout.
// Stdout carries puzzle answers; only the CLI may print to it.
func TestNoStdoutInLibraries(t *testing.T) {
	files := goFiles(t, filepath.Join(getProjectRoot(), "pkg"), func(path string) bool {
		return !strings.HasSuffix(path, "_test.go")
	})
	if len(files) == 0 {
		t.Fatal("No library files found - something is wrong with file discovery")
	}

	violations := scanForbidden(t, files, []string{"fmt.Print", "os.Stdout"})
	for _, v := range violations {
		t.Errorf("  %s", v)
	}
}

// TestEveryPackageHasTests ensures each package directory with Go code has a test file.
func TestEveryPackageHasTests(t *testing.T) {
	root := getProjectRoot()
	sources := make(map[string]bool)
	tests := make(map[string]bool)

	for _, path := range goFiles(t, root, func(string) bool { return true }) {
		dir := filepath.Dir(path)
		if strings.HasSuffix(path, "_test.go") {
			tests[dir] = true
		} else {
			sources[dir] = true
		}
	}

	for dir := range sources {
		rel, _ := filepath.Rel(root, dir)
		if strings.HasPrefix(rel, "cmd") {
			continue
		}
		if !tests[dir] {
			t.Errorf("package %s has no tests", rel)
		}
	}
}
