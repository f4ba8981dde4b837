package cliconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
		wantErr    bool
	}{
		{
			name: "applies all valid config values",
			fileConfig: FileConfig{
				Input:          "/data/in.bin",
				FragmentLength: 150,
				Output:         "/data/out.fastq",
				ReadName:       "FRAG",
				SummaryDir:     "/data/summary",
				LogLevel:       "debug",
				Watch:          &trueVal,
				DebounceDelay:  "250ms",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				Input:          "/data/in.bin",
				FragmentLength: 150,
				Output:         "/data/out.fastq",
				ReadName:       "FRAG",
				SummaryDir:     "/data/summary",
				LogLevel:       "debug",
				Watch:          true,
				DebounceDelay:  250 * time.Millisecond,
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				Input:          "/config/in.bin",
				FragmentLength: 10,
			},
			changed: map[string]bool{"input": true},
			initial: Config{Input: "/flag/in.bin"},
			expected: Config{
				Input:          "/flag/in.bin",
				FragmentLength: 10,
			},
		},
		{
			name:       "empty values keep initial config",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			initial:    DefaultConfig(),
			expected:   DefaultConfig(),
		},
		{
			name:       "returns error for invalid duration",
			fileConfig: FileConfig{DebounceDelay: "soon"},
			changed:    map[string]bool{},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApplyFileConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if cfg != tt.expected {
				t.Errorf("config = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test-config.toml")

	tomlContent := `
input = "/tmp/in.bin"
fragment_length = 8
read_name = "SYN"
watch = true
debounce_delay = "1s"
`

	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	fc, err := LoadFileConfig(configPath)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}

	if fc.Input != "/tmp/in.bin" {
		t.Errorf("Input = %v, want /tmp/in.bin", fc.Input)
	}
	if fc.FragmentLength != 8 {
		t.Errorf("FragmentLength = %v, want 8", fc.FragmentLength)
	}
	if fc.ReadName != "SYN" {
		t.Errorf("ReadName = %v, want SYN", fc.ReadName)
	}
	if fc.Watch == nil || !*fc.Watch {
		t.Errorf("Watch = %v, want true", fc.Watch)
	}
	if fc.DebounceDelay != "1s" {
		t.Errorf("DebounceDelay = %v, want 1s", fc.DebounceDelay)
	}
}

func TestLoadFileConfig_InvalidFile(t *testing.T) {
	_, err := LoadFileConfig("/nonexistent/path/config.toml")
	if err == nil {
		t.Error("LoadFileConfig() expected error for nonexistent file")
	}
}

func TestLoadFileConfig_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.toml")

	invalidContent := `
input = "/test"
this is not valid toml
`

	if err := os.WriteFile(configPath, []byte(invalidContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	if _, err := LoadFileConfig(configPath); err == nil {
		t.Error("LoadFileConfig() expected error for invalid TOML")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	if path != "" && !strings.Contains(path, ".binfastq") {
		t.Errorf("DefaultConfigPath() = %v, should contain .binfastq", path)
	}
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	existingFile := filepath.Join(tmpDir, "exists.txt")

	if err := os.WriteFile(existingFile, []byte("test"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if !FileExists(existingFile) {
		t.Error("FileExists() = false, want true for existing file")
	}
	if FileExists(filepath.Join(tmpDir, "nonexistent.txt")) {
		t.Error("FileExists() = true, want false for nonexistent file")
	}
}
