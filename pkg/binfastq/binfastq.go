package binfastq

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bft-labs/binfastq/internal/adapters/fs"
	"github.com/bft-labs/binfastq/internal/adapters/mem"
	"github.com/bft-labs/binfastq/internal/app"
	"github.com/bft-labs/binfastq/internal/assembler"
	"github.com/bft-labs/binfastq/internal/domain"
	"github.com/bft-labs/binfastq/internal/ports"
	"github.com/bft-labs/binfastq/pkg/fastq"
)

// Re-exported domain types and errors.
type (
	// Summary describes a finished conversion.
	Summary = domain.Summary

	// FragmentLengthError reports a fragment length that does not split the input.
	FragmentLengthError = domain.FragmentLengthError
)

var (
	// ErrInvalidFragmentLength is wrapped by every FragmentLengthError.
	ErrInvalidFragmentLength = domain.ErrInvalidFragmentLength

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = domain.ErrInvalidConfig
)

// Config holds the configuration for a Converter.
type Config struct {
	// Input is the path of the binary file to convert.
	Input string

	// FragmentLength is the number of bytes per read.
	FragmentLength int

	// Output is the path of the report file. Empty means the writer given
	// by WithOutput, or standard output.
	Output string

	// ReadName is the read-name prefix in record headers. Default: READ
	ReadName string

	// SummaryDir, when set, receives summary.json after each successful run.
	SummaryDir string

	// DebounceDelay is how long Watch waits after a write before converting.
	// Default: 100ms
	DebounceDelay time.Duration
}

// DefaultConfig returns a Config with default values.
// Input and FragmentLength must still be set.
func DefaultConfig() Config {
	return Config{
		ReadName:      fastq.DefaultReadName,
		DebounceDelay: 100 * time.Millisecond,
	}
}

// SetDefaults fills zero-valued optional fields.
func (c *Config) SetDefaults() {
	if c.ReadName == "" {
		c.ReadName = fastq.DefaultReadName
	}
	if c.DebounceDelay <= 0 {
		c.DebounceDelay = 100 * time.Millisecond
	}
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: input is required", ErrInvalidConfig)
	}
	return nil
}

// Converter converts one input into a read report.
// Use New to create one, then Run or Watch.
type Converter struct {
	config      Config
	opts        options
	summaryRepo ports.SummaryRepository
	emitter     eventEmitterWrapper
}

// New creates a Converter with the given configuration.
// Returns an error if the configuration is invalid.
func New(cfg Config, opts ...Option) (*Converter, error) {
	cfg.SetDefaults()

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.source == nil {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	var repo ports.SummaryRepository
	switch {
	case o.summaryRepo != nil:
		repo = o.summaryRepo
	case cfg.SummaryDir != "":
		repo = fs.NewSummaryFileRepository(cfg.SummaryDir)
	}

	return &Converter{
		config:      cfg,
		opts:        o,
		summaryRepo: repo,
		emitter:     eventEmitterWrapper{handler: o.eventHandler},
	}, nil
}

// Run performs one conversion and returns its summary.
func (c *Converter) Run(ctx context.Context) (Summary, error) {
	var (
		out  io.Writer
		file *atomicFile
	)
	switch {
	case c.config.Output != "":
		f, err := createAtomic(c.config.Output)
		if err != nil {
			return Summary{}, fmt.Errorf("create output: %w", err)
		}
		file, out = f, f
	case c.opts.output != nil:
		out = c.opts.output
	default:
		out = os.Stdout
	}

	sink := fastq.NewWriter(out, fastq.WithReadName(c.config.ReadName))
	conv := app.NewConverter(
		app.ConverterConfig{FragmentLength: c.config.FragmentLength},
		c.source(),
		sink,
		c.summaryRepo,
		c.opts.logger,
		&c.emitter,
	)

	summary, err := conv.Run(ctx)
	if file != nil {
		if err != nil {
			_ = file.Abort()
			return summary, err
		}
		if err := file.Commit(); err != nil {
			return summary, fmt.Errorf("commit output: %w", err)
		}
	}
	return summary, err
}

func (c *Converter) source() ports.ByteSource {
	if c.opts.source != nil {
		return c.opts.source
	}
	return fs.NewFileSource(c.config.Input)
}

// ConvertBytes writes the read report for data to w.
// On an invalid fragment length nothing is written.
func ConvertBytes(data []byte, fragmentLength int, w io.Writer) error {
	run, err := assembler.Assemble(data, fragmentLength)
	if err != nil {
		return err
	}
	sink := fastq.NewWriter(w)
	for _, f := range run.Fragments {
		if err := sink.WriteFragment(f); err != nil {
			return err
		}
	}
	return sink.Flush()
}

// BytesSource returns a Source over in-memory data for use with WithSource.
func BytesSource(name string, data []byte) Source {
	return mem.NewBytesSource(name, data)
}
