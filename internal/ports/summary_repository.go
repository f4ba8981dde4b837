package ports

import (
	"context"

	"github.com/bft-labs/binfastq/internal/domain"
)

// SummaryRepository persists the summary of the last finished conversion.
type SummaryRepository interface {
	// Load retrieves the last saved summary.
	// Returns an empty summary and nil error if none exists.
	Load(ctx context.Context) (domain.Summary, error)

	// Save persists the summary atomically.
	Save(ctx context.Context, summary domain.Summary) error
}
