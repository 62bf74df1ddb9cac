package config

import (
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
)

// ExpandGlobs expands file paths and glob patterns into a sorted, deduplicated
// list of paths. Patterns that match nothing are kept as literal paths so the
// caller reports them as missing inputs.
func ExpandGlobs(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid glob pattern %q", pattern)
		}

		if len(matches) == 0 {
			matches = []string{pattern}
		}

		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				result = append(result, match)
			}
		}
	}

	sort.Strings(result)

	return result, nil
}

// ResolveInputs returns the input files for run, with relative patterns
// anchored at the configured input directory.
func (c *Config) ResolveInputs(run *RunConfig) ([]string, error) {
	base := c.InputDir
	if base != "" && !filepath.IsAbs(base) && c.dir != "" {
		base = filepath.Join(c.dir, base)
	}

	patterns := make([]string, 0, len(run.Inputs))
	for _, in := range run.Inputs {
		if base != "" && !filepath.IsAbs(in) {
			in = filepath.Join(base, in)
		}
		patterns = append(patterns, in)
	}

	return ExpandGlobs(patterns)
}
