package ports

import "github.com/bft-labs/binfastq/internal/domain"

// RecordSink receives fragments in order and renders them as read records.
// *fastq.Writer satisfies this interface.
type RecordSink interface {
	// WriteFragment renders one fragment.
	WriteFragment(f domain.Fragment) error

	// Flush writes out anything buffered.
	Flush() error
}
