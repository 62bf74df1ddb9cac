package config

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Load reads and validates a run file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "parsing config file")
	}
	cfg.dir = filepath.Dir(path)

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, errors.Wrap(err, "validating config")
	}

	return cfg, nil
}

// Validate checks a configuration and fills in defaults. Every problem found
// is reported in the returned *multierror.Error.
func Validate(cfg *Config) error {
	var result *multierror.Error

	switch cfg.Output {
	case "":
		cfg.Output = DefaultOutput
	case "text", "json":
	default:
		result = multierror.Append(result, errors.Errorf("output: invalid format %q (must be text or json)", cfg.Output))
	}

	if len(cfg.Runs) == 0 {
		result = multierror.Append(result, errors.New("runs: at least one run is required"))
	}

	for i := range cfg.Runs {
		run := &cfg.Runs[i]
		for _, err := range validateRun(run) {
			result = multierror.Append(result, errors.Wrapf(err, "runs[%d] (%s)", i, run.Label()))
		}
	}

	for i := range cfg.Webhooks {
		if err := validateWebhook(&cfg.Webhooks[i]); err != nil {
			name := cfg.Webhooks[i].Name
			if name == "" {
				name = cfg.Webhooks[i].URL
			}
			result = multierror.Append(result, errors.Wrapf(err, "webhooks[%d] (%s)", i, name))
		}
	}

	return result.ErrorOrNil()
}

func validateRun(run *RunConfig) []error {
	var errs []error

	if run.Day < 1 || run.Day > MaxDay {
		errs = append(errs, errors.Errorf("day must be between 1 and %d, got %d", MaxDay, run.Day))
	}
	if run.Part < 0 || run.Part > 2 {
		errs = append(errs, errors.Errorf("part must be 1 or 2 (or omitted for both), got %d", run.Part))
	}

	if len(run.Inputs) == 0 {
		errs = append(errs, errors.New("inputs: at least one input is required"))
	}
	for j, in := range run.Inputs {
		if strings.TrimSpace(in) == "" {
			errs = append(errs, errors.Errorf("inputs[%d]: path cannot be empty", j))
			continue
		}
		if _, err := filepath.Match(in, ""); err != nil {
			errs = append(errs, errors.Errorf("inputs[%d]: invalid glob pattern %q", j, in))
		}
	}

	if run.Timeout < 0 {
		errs = append(errs, errors.Errorf("timeout cannot be negative, got %s", run.Timeout))
	} else if run.Timeout == 0 {
		run.Timeout = DefaultRunTimeout
	}

	return errs
}

func validateWebhook(wh *WebhookConfig) error {
	if wh.URL == "" {
		return errors.New("url is required")
	}

	u, err := url.Parse(wh.URL)
	if err != nil {
		return errors.Wrap(err, "invalid url")
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.Errorf("url scheme must be http or https, got %q", u.Scheme)
	}

	if u.Host == "" {
		return errors.New("url must have a host")
	}

	wh.Token = expandEnvVar(wh.Token)

	switch wh.Trigger {
	case "":
		wh.Trigger = WebhookTriggerOnFailure
	case WebhookTriggerOnFailure, WebhookTriggerAlways, WebhookTriggerNever:
	default:
		return errors.Errorf("invalid trigger %q (must be on_failure, always, or never)", wh.Trigger)
	}

	if wh.Timeout <= 0 {
		wh.Timeout = DefaultWebhookTimeout
	}
	if wh.Retries < 0 {
		return errors.Errorf("retries cannot be negative, got %d", wh.Retries)
	}

	return nil
}

// expandEnvVar expands environment variables in the format ${VAR} or $VAR.
func expandEnvVar(s string) string {
	if s == "" {
		return s
	}

	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		return os.Getenv(s[2 : len(s)-1])
	}

	if strings.HasPrefix(s, "$") && !strings.HasPrefix(s, "${") {
		return os.Getenv(s[1:])
	}

	return s
}
