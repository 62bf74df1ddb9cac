// Package config provides loading and validation of aoc run files.
package config

import "time"

// Config is the root of a run file loaded from YAML.
type Config struct {
	// InputDir is the base directory for relative inputs. A relative InputDir
	// is itself resolved against the directory of the run file.
	InputDir string `yaml:"input_dir,omitempty"`

	// Output is the report format, "text" or "json".
	Output string `yaml:"output,omitempty"`

	Runs     []RunConfig     `yaml:"runs"`
	Webhooks []WebhookConfig `yaml:"webhooks,omitempty"`

	// dir is the directory of the loaded run file.
	dir string
}

// RunConfig selects one puzzle (or both parts of a day) and its inputs.
type RunConfig struct {
	Name string `yaml:"name,omitempty"`
	Day  int    `yaml:"day"`

	// Part is 1 or 2. Zero runs both parts.
	Part int `yaml:"part,omitempty"`

	// Inputs are file paths or glob patterns.
	Inputs []string `yaml:"inputs"`

	// Timeout bounds each solve. Defaults to DefaultRunTimeout.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// Parts returns the parts selected by the run.
func (r *RunConfig) Parts() []int {
	if r.Part == 0 {
		return []int{1, 2}
	}
	return []int{r.Part}
}

// Label returns the run name, or "day<N>" when it has none.
func (r *RunConfig) Label() string {
	if r.Name != "" {
		return r.Name
	}
	return dayLabel(r.Day)
}

// WebhookTrigger determines when a webhook fires.
type WebhookTrigger string

const (
	// WebhookTriggerOnFailure fires only when at least one solve failed (default).
	WebhookTriggerOnFailure WebhookTrigger = "on_failure"
	// WebhookTriggerAlways fires after every run.
	WebhookTriggerAlways WebhookTrigger = "always"
	// WebhookTriggerNever disables the webhook.
	WebhookTriggerNever WebhookTrigger = "never"
)

// WebhookConfig defines an endpoint that receives the JSON run report.
type WebhookConfig struct {
	Name string `yaml:"name,omitempty"`

	// URL is the webhook endpoint (required).
	URL string `yaml:"url"`

	// Token is an optional bearer token. ${VAR} and $VAR are expanded.
	Token string `yaml:"token,omitempty"`

	// Trigger defaults to on_failure.
	Trigger WebhookTrigger `yaml:"trigger,omitempty"`

	// Timeout is the per-request timeout. Defaults to DefaultWebhookTimeout.
	Timeout time.Duration `yaml:"timeout,omitempty"`

	// Retries is the number of extra attempts after a failed delivery.
	Retries int `yaml:"retries,omitempty"`
}
