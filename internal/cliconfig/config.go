// Package cliconfig assembles the binfastq CLI configuration from defaults,
// a TOML file, BINFASTQ_* environment variables and flags.
package cliconfig

import (
	"fmt"
	"strconv"
	"time"

	"github.com/bft-labs/binfastq/internal/domain"
	"github.com/bft-labs/binfastq/pkg/fastq"
	"github.com/bft-labs/binfastq/pkg/log"
)

// Config holds CLI configuration for binfastq.
type Config struct {
	Input          string
	FragmentLength int

	// Output is the report destination; empty or "-" means stdout.
	Output     string
	ReadName   string
	SummaryDir string

	LogLevel      string
	Watch         bool
	DebounceDelay time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		ReadName:      fastq.DefaultReadName,
		LogLevel:      "info",
		DebounceDelay: 100 * time.Millisecond,
	}
}

// Validate checks the configuration for errors.
// The fragment length is checked against the input size by the conversion
// itself, so only its presence matters here.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: input file is required", domain.ErrInvalidConfig)
	}
	if c.ReadName == "" {
		c.ReadName = fastq.DefaultReadName
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q: %v", domain.ErrInvalidConfig, c.LogLevel, err)
	}
	if c.Watch && c.DebounceDelay <= 0 {
		return fmt.Errorf("%w: debounce delay must be positive", domain.ErrInvalidConfig)
	}
	return nil
}

// UsesStdout reports whether the report goes to standard output.
func (c *Config) UsesStdout() bool {
	return c.Output == "" || c.Output == "-"
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if non-zero and flag not changed.
// Negative values are kept so the conversion can reject them with a proper diagnostic.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value == 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
