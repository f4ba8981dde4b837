package binfastq

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer is a bytes.Buffer safe for the watcher goroutine and the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}

func TestWatchReconvertsOnWrite(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.bin")
	if err := os.WriteFile(input, []byte{0x21, 0x62}, 0o644); err != nil {
		t.Fatal(err)
	}

	out := &syncBuffer{}
	c, err := New(Config{Input: input, FragmentLength: 2, DebounceDelay: 20 * time.Millisecond}, WithOutput(out))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Watch(ctx) }()

	waitFor(t, 2*time.Second, func() bool {
		return strings.Contains(out.String(), "@READ_1\nAC\n")
	})

	if err := os.WriteFile(input, []byte{0xFF, 0xFF}, 0o644); err != nil {
		t.Fatal(err)
	}
	waitFor(t, 2*time.Second, func() bool {
		return strings.Contains(out.String(), "@READ_1\nTT\n")
	})

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch returned %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatchRequiresFileInput(t *testing.T) {
	c, err := New(Config{FragmentLength: 1}, WithSource(BytesSource("mem", []byte{1})))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := c.Watch(context.Background()); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Watch error = %v, want ErrInvalidConfig", err)
	}
}

func TestDebouncerCoalesces(t *testing.T) {
	d := newDebouncer(30 * time.Millisecond)
	defer d.stop()

	for i := 0; i < 5; i++ {
		d.trigger()
	}
	select {
	case <-d.C():
	case <-time.After(time.Second):
		t.Fatal("no debounced signal")
	}
	select {
	case <-d.C():
		t.Fatal("burst produced more than one signal")
	case <-time.After(100 * time.Millisecond):
	}
}
