// Package binfastq turns arbitrary binary files into synthetic read reports.
//
// Every input byte becomes one base (its two most significant bits select A,
// C, G or T) and one quality character (its six least significant bits plus
// 33). Bytes are grouped into fragments of a fixed length and each fragment
// is written as a four-line record:
//
//	@READ_1
//	AC
//	+READ_1
//	BC
//
// # Basic Usage
//
// For in-memory data use [ConvertBytes]:
//
//	err := binfastq.ConvertBytes([]byte{0x21, 0x62}, 2, os.Stdout)
//
// To convert a file with logging, summaries and an output file:
//
//	cfg := binfastq.DefaultConfig()
//	cfg.Input = "data.bin"
//	cfg.FragmentLength = 150
//	cfg.Output = "reads.fastq"
//
//	c, err := binfastq.New(cfg, binfastq.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	summary, err := c.Run(ctx)
//
// # Fragment Length
//
// The fragment length must be positive and divide the input size exactly.
// This is checked before anything is decoded; on failure the returned error
// is a [*FragmentLengthError] naming both numbers and no record is written.
//
// # Output
//
// With Config.Output set, records go to a temporary file next to the target
// that is renamed into place only after a successful run. Otherwise records
// go to the writer given by [WithOutput], or to standard output.
//
// # Watching
//
// [Converter.Watch] converts once and then again whenever the input file is
// written, until the context is canceled.
//
// # Event Handling
//
// Implement [EventHandler] and pass it via [WithEventHandler] to be told
// about each finished or failed conversion.
package binfastq
