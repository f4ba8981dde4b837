package fastq

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"syscall"

	"github.com/bft-labs/binfastq/internal/domain"
)

// DefaultReadName is the read-name prefix used in record headers.
const DefaultReadName = "READ"

// Writer writes fragments as read records to an underlying io.Writer.
// Call Flush once all fragments have been written.
type Writer struct {
	w        *bufio.Writer
	readName string
	records  int
}

// Option configures a Writer.
type Option func(*Writer)

// WithReadName sets the read-name prefix. An empty name keeps the default.
func WithReadName(name string) Option {
	return func(w *Writer) {
		if name != "" {
			w.readName = name
		}
	}
}

// NewWriter creates a Writer over w.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	out := &Writer{
		w:        bufio.NewWriter(w),
		readName: DefaultReadName,
	}
	for _, opt := range opts {
		opt(out)
	}
	return out
}

// WriteFragment writes one record for f, using f.Index as the read number.
func (w *Writer) WriteFragment(f domain.Fragment) error {
	if _, err := w.w.Write(appendRecord(nil, f, w.readName)); err != nil {
		return err
	}
	w.records++
	return nil
}

// Flush writes any buffered records to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// Records returns the number of records written so far.
func (w *Writer) Records() int {
	return w.records
}

// Format renders a single record for f, including the trailing newline.
func Format(f domain.Fragment, readName string) string {
	if readName == "" {
		readName = DefaultReadName
	}
	return string(appendRecord(nil, f, readName))
}

func appendRecord(dst []byte, f domain.Fragment, readName string) []byte {
	id := strconv.Itoa(f.Index)

	dst = append(dst, '@')
	dst = append(dst, readName...)
	dst = append(dst, '_')
	dst = append(dst, id...)
	dst = append(dst, '\n')
	for _, d := range f.Bytes {
		dst = append(dst, d.Base)
	}
	dst = append(dst, '\n', '+')
	dst = append(dst, readName...)
	dst = append(dst, '_')
	dst = append(dst, id...)
	dst = append(dst, '\n')
	for _, d := range f.Bytes {
		dst = append(dst, d.Quality)
	}
	return append(dst, '\n')
}

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Useful when downstream consumers (like `head`) close early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
