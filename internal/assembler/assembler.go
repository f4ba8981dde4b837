// Package assembler groups decoded bytes into fixed-length fragments.
package assembler

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bft-labs/binfastq/internal/domain"
	"github.com/bft-labs/binfastq/pkg/codec"
)

// ValidateLength reports whether fragmentLength splits inputLength bytes into
// equal fragments. It runs on the raw byte count, before any decoding.
func ValidateLength(inputLength int64, fragmentLength int) error {
	if fragmentLength <= 0 || inputLength%int64(fragmentLength) != 0 {
		return &domain.FragmentLengthError{FragmentLength: fragmentLength, InputLength: inputLength}
	}
	return nil
}

// Split partitions decoded into consecutive fragments of fragmentLength bytes.
// Fragment indices start at 1.
func Split(decoded []domain.DecodedByte, fragmentLength int) ([]domain.Fragment, error) {
	if err := ValidateLength(int64(len(decoded)), fragmentLength); err != nil {
		return nil, err
	}

	fragments := make([]domain.Fragment, 0, len(decoded)/fragmentLength)
	for start := 0; start < len(decoded); start += fragmentLength {
		fragments = append(fragments, domain.Fragment{
			Index: len(fragments) + 1,
			Bytes: decoded[start : start+fragmentLength : start+fragmentLength],
		})
	}
	return fragments, nil
}

// Assemble validates, decodes and splits data in one call.
func Assemble(data []byte, fragmentLength int) (domain.Run, error) {
	if err := ValidateLength(int64(len(data)), fragmentLength); err != nil {
		return domain.Run{}, err
	}
	fragments, err := Split(codec.DecodeAll(data), fragmentLength)
	if err != nil {
		return domain.Run{}, err
	}
	return domain.Run{FragmentLength: fragmentLength, Fragments: fragments}, nil
}

// Assembler reads fragments from a stream one at a time.
// The caller is expected to have validated the stream length with
// ValidateLength; a short final fragment is reported as io.ErrUnexpectedEOF.
type Assembler struct {
	r              *bufio.Reader
	fragmentLength int
	buf            []byte
	next           int
}

// New creates an Assembler reading fragmentLength-byte fragments from r.
func New(r io.Reader, fragmentLength int) (*Assembler, error) {
	if fragmentLength <= 0 {
		return nil, &domain.FragmentLengthError{FragmentLength: fragmentLength}
	}
	return &Assembler{
		r:              bufio.NewReader(r),
		fragmentLength: fragmentLength,
		buf:            make([]byte, fragmentLength),
		next:           1,
	}, nil
}

// Next returns the next fragment.
// Returns io.EOF when the stream ends on a fragment boundary.
func (a *Assembler) Next() (domain.Fragment, error) {
	n, err := io.ReadFull(a.r, a.buf)
	switch {
	case err == io.EOF:
		return domain.Fragment{}, io.EOF
	case errors.Is(err, io.ErrUnexpectedEOF):
		return domain.Fragment{}, fmt.Errorf("fragment %d: read %d of %d bytes: %w",
			a.next, n, a.fragmentLength, io.ErrUnexpectedEOF)
	case err != nil:
		return domain.Fragment{}, fmt.Errorf("fragment %d: %w", a.next, err)
	}

	f := domain.Fragment{Index: a.next, Bytes: codec.DecodeAll(a.buf)}
	a.next++
	return f, nil
}

// Each calls fn for every fragment in order until the stream is exhausted,
// fn returns an error, or ctx is canceled. It returns the number of fragments
// passed to fn.
func (a *Assembler) Each(ctx context.Context, fn func(domain.Fragment) error) (int, error) {
	count := 0
	for {
		if err := ctx.Err(); err != nil {
			return count, err
		}
		f, err := a.Next()
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return count, err
		}
		if err := fn(f); err != nil {
			return count, fmt.Errorf("fragment %d: %w", f.Index, err)
		}
		count++
	}
}
