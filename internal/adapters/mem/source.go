// Package mem implements ports backed by memory.
package mem

import (
	"bytes"
	"context"
	"io"
)

// BytesSource implements ports.ByteSource over an in-memory slice.
type BytesSource struct {
	name string
	data []byte
}

// NewBytesSource creates a source over data. name is used in logs and summaries.
func NewBytesSource(name string, data []byte) *BytesSource {
	return &BytesSource{name: name, data: data}
}

// Name returns the configured name.
func (s *BytesSource) Name() string {
	return s.name
}

// Open returns a reader over the bytes and their length.
func (s *BytesSource) Open(ctx context.Context) (io.ReadCloser, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	return io.NopCloser(bytes.NewReader(s.data)), int64(len(s.data)), nil
}
