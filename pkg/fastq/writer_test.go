package fastq

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"syscall"
	"testing"

	"github.com/bft-labs/binfastq/internal/domain"
	"github.com/bft-labs/binfastq/pkg/codec"
)

func fragment(index int, data ...byte) domain.Fragment {
	return domain.Fragment{Index: index, Bytes: codec.DecodeAll(data)}
}

func TestFormatRoundTripScenario(t *testing.T) {
	got := Format(fragment(1, 0x21, 0x62), "")
	want := "@READ_1\nAC\n+READ_1\nBC\n"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestWriterEmitsRecordsInOrder(t *testing.T) {
	var sb strings.Builder
	w := NewWriter(&sb)
	for _, f := range []domain.Fragment{fragment(1, 0x00, 0x41), fragment(2, 0x82, 0xC3)} {
		if err := w.WriteFragment(f); err != nil {
			t.Fatalf("WriteFragment: %v", err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	want := "@READ_1\nAC\n+READ_1\n!\"\n" +
		"@READ_2\nGT\n+READ_2\n#$\n"
	if sb.String() != want {
		t.Errorf("output = %q, want %q", sb.String(), want)
	}
	if w.Records() != 2 {
		t.Errorf("Records() = %d, want 2", w.Records())
	}
}

func TestWriterLineLengths(t *testing.T) {
	var sb strings.Builder
	w := NewWriter(&sb)
	data := []byte("binary\x00\xff\x7f")
	if err := w.WriteFragment(fragment(7, data...)); err != nil {
		t.Fatalf("WriteFragment: %v", err)
	}
	_ = w.Flush()

	lines := strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	if lines[0] != "@READ_7" || lines[2] != "+READ_7" {
		t.Errorf("headers = %q, %q", lines[0], lines[2])
	}
	if len(lines[1]) != len(data) || len(lines[3]) != len(data) {
		t.Errorf("line lengths = %d, %d; want %d", len(lines[1]), len(lines[3]), len(data))
	}
}

func TestWithReadName(t *testing.T) {
	var sb strings.Builder
	w := NewWriter(&sb, WithReadName("FRAG"))
	_ = w.WriteFragment(fragment(3, 0xFF))
	_ = w.Flush()
	if want := "@FRAG_3\nT\n+FRAG_3\n`\n"; sb.String() != want {
		t.Errorf("output = %q, want %q", sb.String(), want)
	}
}

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

func TestFlushPropagatesError(t *testing.T) {
	w := NewWriter(failingWriter{err: syscall.EPIPE})
	_ = w.WriteFragment(fragment(1, 0))
	err := w.Flush()
	if !IsBrokenPipe(err) {
		t.Fatalf("Flush error = %v, want broken pipe", err)
	}
}

func TestIsBrokenPipe(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("boom"), false},
		{syscall.EPIPE, true},
		{io.ErrClosedPipe, true},
		{fmt.Errorf("write stdout: %w", syscall.EPIPE), true},
	}
	for _, tt := range tests {
		if got := IsBrokenPipe(tt.err); got != tt.want {
			t.Errorf("IsBrokenPipe(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
