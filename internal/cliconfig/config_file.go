package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	Input          string `toml:"input"`
	FragmentLength int    `toml:"fragment_length"`
	Output         string `toml:"output"`
	ReadName       string `toml:"read_name"`
	SummaryDir     string `toml:"summary_dir"`
	LogLevel       string `toml:"log_level"`
	Watch          *bool  `toml:"watch"`
	DebounceDelay  string `toml:"debounce_delay"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.binfastq/config.toml, or "" without a home directory.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".binfastq", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("input", fc.Input, &cfg.Input)
	s.setString("output", fc.Output, &cfg.Output)
	s.setString("read-name", fc.ReadName, &cfg.ReadName)
	s.setString("summary-dir", fc.SummaryDir, &cfg.SummaryDir)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	s.setInt("fragment-length", fc.FragmentLength, &cfg.FragmentLength)
	s.setBool("watch", fc.Watch, &cfg.Watch)

	return s.setDuration("debounce", fc.DebounceDelay, &cfg.DebounceDelay)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
