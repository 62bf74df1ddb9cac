// Package plugins provides exec-based plugin support for aoc.
// Plugins are separate binaries named aoc-<command> that are discovered
// and executed when an unknown command is invoked, typically to solve a day
// without a built-in solution (aoc-day5, aoc-day6, ...).
//
// This follows the same pattern used by kubectl and git for plugins.
package plugins

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
)

// Prefix is prepended to a command name to form the plugin binary name.
const Prefix = "aoc-"

// ErrPluginNotFound is returned when no plugin binary can be located.
var ErrPluginNotFound = errors.New("plugin not found")

var dayCommand = regexp.MustCompile(`^day\d+$`)

// FindPlugin searches for a plugin binary named aoc-<command>.
// It searches in the following locations in order:
//  1. Same directory as the aoc binary
//  2. ~/.aoc/plugins/
//  3. Anywhere in PATH
//
// Returns the full path to the plugin binary if found.
func FindPlugin(command string) (string, error) {
	pluginName := Prefix + command

	if execPath, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(execPath), pluginName)
		if isExecutable(candidate) {
			return candidate, nil
		}
	}

	if dir, err := Dir(); err == nil {
		candidate := filepath.Join(dir, pluginName)
		if isExecutable(candidate) {
			return candidate, nil
		}
	}

	if path, err := exec.LookPath(pluginName); err == nil {
		return path, nil
	}

	return "", ErrPluginNotFound
}

// Dir returns the per-user plugin directory, ~/.aoc/plugins.
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".aoc", "plugins"), nil
}

// Execute runs a plugin with the given arguments.
// It connects stdin, stdout, and stderr to the plugin process
// and returns the plugin's exit code. Cancelling ctx kills the plugin.
func Execute(ctx context.Context, pluginPath string, args []string) int {
	cmd := exec.CommandContext(ctx, pluginPath, args...) // #nosec G204 - plugin path comes from FindPlugin
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing plugin: %v\n", err)
		return 1
	}

	return 0
}

// FormatNotFoundError returns a helpful error message when a plugin is not found.
// Unknown dayN commands get a hint that the day has no built-in solution.
func FormatNotFoundError(command string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("unknown command %q for \"aoc\"\n", command))

	if dayCommand.MatchString(command) {
		sb.WriteString(fmt.Sprintf("\n%q has no built-in solution. Run 'aoc list' to see the solved puzzles.\n", command))
		sb.WriteString("To solve it with an external program, install the binary as one of:\n")
	} else {
		sb.WriteString("\nIf this is a plugin, install the binary as one of:\n")
	}

	sb.WriteString(fmt.Sprintf("  - %s%s in the same directory as aoc\n", Prefix, command))
	sb.WriteString(fmt.Sprintf("  - ~/.aoc/plugins/%s%s\n", Prefix, command))
	sb.WriteString(fmt.Sprintf("  - %s%s anywhere in your PATH\n", Prefix, command))

	sb.WriteString("\nRun 'aoc --help' for usage.")

	return sb.String()
}

// isExecutable checks if a file exists and is executable.
func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	if info.Mode().IsRegular() {
		return info.Mode()&0111 != 0
	}

	return false
}
