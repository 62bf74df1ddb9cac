package config

import (
	"fmt"
	"os"
	"time"
)

// Default values for configuration.
const (
	DefaultOutput         = "text"
	DefaultRunTimeout     = 60 * time.Second
	DefaultWebhookTimeout = 10 * time.Second
	MaxDay                = 25
)

// Environment variable names.
const (
	EnvInputDir = "AOC_INPUT_DIR"
	EnvOutput   = "AOC_OUTPUT"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Output: DefaultOutput,
		Runs:   []RunConfig{},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if dir := os.Getenv(EnvInputDir); dir != "" {
		c.InputDir = dir
	}
	if out := os.Getenv(EnvOutput); out != "" {
		c.Output = out
	}
}

func dayLabel(day int) string {
	return fmt.Sprintf("day%d", day)
}
