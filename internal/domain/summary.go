package domain

import "time"

// Summary describes a finished conversion.
// It is written to disk after each successful run when a summary directory is configured.
type Summary struct {
	// Input is the name of the converted input (a file path for file sources)
	Input string `json:"input"`

	// InputBytes is the number of bytes read from the input
	InputBytes int64 `json:"input_bytes"`

	// FragmentLength is the number of bytes per read
	FragmentLength int `json:"fragment_length"`

	// Fragments is the number of records emitted
	Fragments int `json:"fragments"`

	// StartedAt is when the conversion began
	StartedAt time.Time `json:"started_at"`

	// FinishedAt is when the last record was flushed
	FinishedAt time.Time `json:"finished_at"`
}

// IsEmpty returns true if the summary has not been initialized.
func (s Summary) IsEmpty() bool {
	return s.Input == "" && s.FinishedAt.IsZero()
}

// Duration returns how long the conversion took.
func (s Summary) Duration() time.Duration {
	if s.FinishedAt.Before(s.StartedAt) {
		return 0
	}
	return s.FinishedAt.Sub(s.StartedAt)
}
