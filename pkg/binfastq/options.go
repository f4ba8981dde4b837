package binfastq

import (
	"io"

	"github.com/bft-labs/binfastq/internal/ports"
	"github.com/bft-labs/binfastq/pkg/log"
)

// Source supplies the bytes of a conversion.
type Source = ports.ByteSource

// SummaryRepository persists the summary of the last successful conversion.
type SummaryRepository = ports.SummaryRepository

// Option configures optional behavior of a Converter.
type Option func(*options)

// options holds the optional configuration for a Converter.
type options struct {
	logger       log.Logger
	output       io.Writer
	source       Source
	summaryRepo  SummaryRepository
	eventHandler EventHandler
}

func defaultOptions() options {
	return options{
		logger: log.NewNoopLogger(),
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithOutput sets the writer receiving records when Config.Output is empty.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// WithSource replaces the input file with a custom source.
// Config.Input is not required when a source is given.
func WithSource(src Source) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithSummaryRepository overrides where summaries are saved.
func WithSummaryRepository(repo SummaryRepository) Option {
	return func(o *options) {
		o.summaryRepo = repo
	}
}

// WithEventHandler sets a handler for conversion events.
// Events are called synchronously at the end of each run.
func WithEventHandler(handler EventHandler) Option {
	return func(o *options) {
		o.eventHandler = handler
	}
}
