package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/bft-labs/binfastq/internal/domain"
)

const summaryFileName = "summary.json"

// SummaryFileRepository implements ports.SummaryRepository using a JSON file.
type SummaryFileRepository struct {
	dir string
}

// NewSummaryFileRepository creates a repository storing summary.json in dir.
func NewSummaryFileRepository(dir string) *SummaryFileRepository {
	return &SummaryFileRepository{dir: dir}
}

// Load retrieves the last saved summary from disk.
// Returns an empty summary and nil error if no summary file exists.
func (r *SummaryFileRepository) Load(ctx context.Context) (domain.Summary, error) {
	data, err := os.ReadFile(r.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Summary{}, nil
		}
		return domain.Summary{}, err
	}

	var s domain.Summary
	if err := json.Unmarshal(data, &s); err != nil {
		return domain.Summary{}, err
	}
	return s, nil
}

// Save persists the summary via a temp file and rename.
func (r *SummaryFileRepository) Save(ctx context.Context, s domain.Summary) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	path := r.Path()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Path returns the full path to the summary file.
func (r *SummaryFileRepository) Path() string {
	return filepath.Join(r.dir, summaryFileName)
}
