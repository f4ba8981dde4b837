// Package fs implements ports backed by the local file system.
package fs

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
)

// FileSource implements ports.ByteSource for a file on disk.
type FileSource struct {
	path string
}

// NewFileSource creates a source reading path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name returns the file path.
func (s *FileSource) Name() string {
	return s.path
}

// Open opens the file and reports its size.
// Pipes, devices and other non-regular files have no reliable size, so they
// are read into memory first and the byte count read is reported.
func (s *FileSource) Open(ctx context.Context) (io.ReadCloser, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, 0, fmt.Errorf("open input: %w", err)
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("stat input: %w", err)
	}
	if st.IsDir() {
		f.Close()
		return nil, 0, fmt.Errorf("open input: %s is a directory", s.path)
	}
	if !st.Mode().IsRegular() {
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, 0, fmt.Errorf("read input: %w", err)
		}
		return io.NopCloser(bytes.NewReader(data)), int64(len(data)), nil
	}
	return f, st.Size(), nil
}
