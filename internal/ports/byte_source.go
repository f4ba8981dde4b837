package ports

import (
	"context"
	"io"
)

// ByteSource supplies the bytes of one conversion.
// The length is needed up front so the fragment length can be validated
// before anything is decoded.
type ByteSource interface {
	// Name identifies the input in logs and summaries.
	Name() string

	// Open returns a reader over the input and its total length in bytes.
	// The caller closes the reader.
	Open(ctx context.Context) (io.ReadCloser, int64, error)
}
