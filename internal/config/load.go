package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bianoble/hasher/internal/digest"
)

// minTypesLen is the shortest digest.types value taken into account;
// anything shorter falls back to the default algorithms.
const minTypesLen = 3

// Load reads and validates a single hasher.yaml configuration file.
func Load(path string) (*Config, error) {
	cfg, err := Parse(path)
	if err != nil {
		return nil, err
	}

	if errs := Validate(cfg); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	return cfg, nil
}

// Parse reads a configuration file without validating it.
func Parse(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return &cfg, nil
}

// ValidationError holds multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// IsValidationError reports whether err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Validate checks a Config for semantic correctness.
// Returns a list of validation error messages (empty if valid).
func Validate(cfg *Config) []string {
	var errs []string

	if len(cfg.Extensions) == 0 {
		errs = append(errs, "'file.extensions' is required — add 'file.extensions: .txt,.zip' to the config")
	}

	if _, err := cfg.DigestSpec(); err != nil {
		errs = append(errs, fmt.Sprintf("'digest.types': %s", err))
	}

	return errs
}

// DigestSpec returns the algorithms to compute. A missing or too short
// digest.types selects all four standard algorithms.
func (c *Config) DigestSpec() (digest.Spec, error) {
	raw := c.Types.String()
	if len(raw) < minTypesLen {
		return digest.Defaults(), nil
	}
	return digest.ParseSpec(raw)
}

// ExtensionList returns the configured file suffixes.
func (c *Config) ExtensionList() []string {
	out := make([]string, len(c.Extensions))
	copy(out, c.Extensions)
	return out
}
