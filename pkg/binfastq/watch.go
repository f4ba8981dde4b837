package binfastq

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/binfastq/pkg/fastq"
	"github.com/bft-labs/binfastq/pkg/log"
)

// Watch converts the input once and then again each time the input file is
// written or recreated, until ctx is canceled. Conversion failures are
// logged and do not stop the watcher.
// Returns nil when ctx is canceled.
func (c *Converter) Watch(ctx context.Context) error {
	if c.opts.source != nil {
		return fmt.Errorf("%w: watch needs a file input", ErrInvalidConfig)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	input, err := filepath.Abs(c.config.Input)
	if err != nil {
		return fmt.Errorf("resolve input: %w", err)
	}
	dir, name := filepath.Split(input)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	c.opts.logger.Info("watching input", log.String("input", input))
	c.runLogged(ctx)

	d := newDebouncer(c.config.DebounceDelay)
	defer d.stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			d.trigger()

		case <-d.C():
			c.runLogged(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			c.opts.logger.Warn("watcher error", log.Err(err))
		}
	}
}

func (c *Converter) runLogged(ctx context.Context) {
	_, err := c.Run(ctx)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
	case fastq.IsBrokenPipe(err):
		c.opts.logger.Warn("output closed", log.Err(err))
	default:
		c.opts.logger.Error("conversion failed", log.String("input", c.config.Input), log.Err(err))
	}
}

// debouncer coalesces bursts of triggers into one signal on C after delay.
type debouncer struct {
	delay time.Duration
	ch    chan struct{}

	mu    sync.Mutex
	timer *time.Timer
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{delay: delay, ch: make(chan struct{}, 1)}
}

func (d *debouncer) C() <-chan struct{} {
	return d.ch
}

func (d *debouncer) trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		select {
		case d.ch <- struct{}{}:
		default:
		}
	})
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
}
