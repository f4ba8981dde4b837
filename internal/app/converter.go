// Package app orchestrates a conversion from a byte source to read records.
package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/bft-labs/binfastq/internal/assembler"
	"github.com/bft-labs/binfastq/internal/domain"
	"github.com/bft-labs/binfastq/internal/ports"
)

// ConverterConfig contains configuration for a conversion.
type ConverterConfig struct {
	FragmentLength int
}

// EventEmitter is notified when a conversion finishes.
type EventEmitter interface {
	OnConvertSuccess(summary domain.Summary)
	OnConvertError(err error)
}

// Converter runs the validate → decode → assemble → report pipeline.
type Converter struct {
	config      ConverterConfig
	source      ports.ByteSource
	sink        ports.RecordSink
	summaryRepo ports.SummaryRepository
	logger      ports.Logger
	emitter     EventEmitter
	now         func() time.Time
}

// NewConverter creates a converter with the given dependencies.
// summaryRepo and emitter may be nil.
func NewConverter(
	config ConverterConfig,
	source ports.ByteSource,
	sink ports.RecordSink,
	summaryRepo ports.SummaryRepository,
	logger ports.Logger,
	emitter EventEmitter,
) *Converter {
	return &Converter{
		config:      config,
		source:      source,
		sink:        sink,
		summaryRepo: summaryRepo,
		logger:      logger,
		emitter:     emitter,
		now:         time.Now,
	}
}

// Run performs one conversion.
// The fragment length is checked against the input size before any byte is
// decoded; on failure nothing is written to the sink.
func (c *Converter) Run(ctx context.Context) (domain.Summary, error) {
	summary, err := c.run(ctx)
	if c.emitter != nil {
		if err != nil {
			c.emitter.OnConvertError(err)
		} else {
			c.emitter.OnConvertSuccess(summary)
		}
	}
	return summary, err
}

func (c *Converter) run(ctx context.Context) (domain.Summary, error) {
	summary := domain.Summary{
		Input:          c.source.Name(),
		FragmentLength: c.config.FragmentLength,
		StartedAt:      c.now(),
	}

	rc, size, err := c.source.Open(ctx)
	if err != nil {
		return summary, err
	}
	defer rc.Close()
	summary.InputBytes = size

	if err := assembler.ValidateLength(size, c.config.FragmentLength); err != nil {
		c.logger.Debug("fragment length rejected",
			ports.String("input", summary.Input),
			ports.Int64("input_bytes", size),
			ports.Int("fragment_length", c.config.FragmentLength))
		return summary, err
	}

	// Only the validated byte count is decoded, even if the input grows.
	asm, err := assembler.New(io.LimitReader(rc, size), c.config.FragmentLength)
	if err != nil {
		return summary, err
	}

	n, err := asm.Each(ctx, c.sink.WriteFragment)
	summary.Fragments = n
	if err != nil {
		return summary, err
	}
	if err := c.sink.Flush(); err != nil {
		return summary, fmt.Errorf("flush records: %w", err)
	}
	summary.FinishedAt = c.now()

	c.logger.Info("conversion finished",
		ports.String("input", summary.Input),
		ports.Int64("input_bytes", summary.InputBytes),
		ports.Int("fragment_length", summary.FragmentLength),
		ports.Int("fragments", summary.Fragments),
		ports.Duration("took", summary.Duration()))

	if c.summaryRepo != nil {
		if err := c.summaryRepo.Save(ctx, summary); err != nil {
			// Records are already out; summary failures only warn.
			c.logger.Warn("failed to save summary", ports.Err(err))
		}
	}
	return summary, nil
}
