package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (BINFASTQ_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("input", os.Getenv("BINFASTQ_INPUT"), &cfg.Input)
	s.setString("output", os.Getenv("BINFASTQ_OUTPUT"), &cfg.Output)
	s.setString("read-name", os.Getenv("BINFASTQ_READ_NAME"), &cfg.ReadName)
	s.setString("summary-dir", os.Getenv("BINFASTQ_SUMMARY_DIR"), &cfg.SummaryDir)
	s.setString("log-level", os.Getenv("BINFASTQ_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setIntFromString("fragment-length", os.Getenv("BINFASTQ_FRAGMENT_LENGTH"), &cfg.FragmentLength); err != nil {
		return err
	}
	if err := s.setDuration("debounce", os.Getenv("BINFASTQ_DEBOUNCE_DELAY"), &cfg.DebounceDelay); err != nil {
		return err
	}

	s.setBoolFromString("watch", os.Getenv("BINFASTQ_WATCH"), &cfg.Watch)
	return nil
}
