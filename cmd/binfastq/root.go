package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/binfastq/internal/cliconfig"
	"github.com/bft-labs/binfastq/pkg/binfastq"
	"github.com/bft-labs/binfastq/pkg/fastq"
	"github.com/bft-labs/binfastq/pkg/log"
)

const longHelp = `Decode a binary file into a synthetic DNA-read report.

Each byte becomes one base (top two bits: A, C, G, T) and one quality
character (low six bits + 33). Bytes are grouped into reads of
<fragment-length> bytes, which must divide the file size exactly.

Configuration is read from $HOME/.binfastq/config.toml (or --config),
then BINFASTQ_* environment variables, then flags.`

var exampleUsage = strings.TrimSpace(`
  binfastq data.bin 150 > reads.fastq
  binfastq data.bin 4 --output reads.fastq --summary-dir ./run
  binfastq data.bin 4 --watch --log-level debug
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// execute runs the CLI and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	logger := log.NewConsoleLogger(stderr, zerolog.InfoLevel)

	root := newRootCmd(stdout, stderr, &logger)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		logger.Error().Err(err).Msg("binfastq")
		return 1
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer, logger *zerolog.Logger) *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "binfastq <input-file> <fragment-length>",
		Short:         "Decode a binary file into a synthetic DNA-read report",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Build set of changed flags; positional arguments count as flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if len(args) > 0 {
				cfg.Input = args[0]
				changed["input"] = true
			}
			if len(args) > 1 {
				n, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("fragment length %q is not a number", args[1])
				}
				cfg.FragmentLength = n
				changed["fragment-length"] = true
			}

			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}
			if cfgFile != "" && (cliconfig.FileExists(cfgFile) || changed["config"]) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			// Environment overrides file config; flags override both
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			level, err := log.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			*logger = logger.Level(level)
			logger.Debug().Interface("config", cfg).Msg("configuration")

			libCfg := binfastq.Config{
				Input:          cfg.Input,
				FragmentLength: cfg.FragmentLength,
				ReadName:       cfg.ReadName,
				SummaryDir:     cfg.SummaryDir,
				DebounceDelay:  cfg.DebounceDelay,
			}
			if !cfg.UsesStdout() {
				libCfg.Output = cfg.Output
			}

			c, err := binfastq.New(libCfg,
				binfastq.WithLogger(log.NewZerologAdapterWithLogger(*logger)),
				binfastq.WithOutput(stdout),
			)
			if err != nil {
				return fmt.Errorf("create converter: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if cfg.Watch {
				return c.Watch(ctx)
			}

			if _, err := c.Run(ctx); err != nil {
				if fastq.IsBrokenPipe(err) {
					return nil
				}
				if errors.Is(err, context.Canceled) {
					logger.Info().Msg("interrupted")
				}
				return err
			}
			return nil
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)
	// "binfastq data.bin -2" parses -2 as a shorthand flag.
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		if strings.Contains(err.Error(), "shorthand flag") {
			return fmt.Errorf("%w (put -- before a negative fragment length)", err)
		}
		return err
	})

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.binfastq/config.toml)")
	root.Flags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "write the report to this file instead of stdout")
	root.Flags().StringVar(&cfg.ReadName, "read-name", cfg.ReadName, "read-name prefix in record headers")
	root.Flags().StringVar(&cfg.SummaryDir, "summary-dir", cfg.SummaryDir, "directory receiving summary.json after each run")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "convert again whenever the input file changes")
	root.Flags().DurationVar(&cfg.DebounceDelay, "debounce", cfg.DebounceDelay, "delay after a change before converting (with --watch)")

	return root
}
