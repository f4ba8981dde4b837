// Package log provides the logging abstraction used by binfastq components.
//
// Library code logs through the [Logger] interface so embedders can plug in
// their own logging. A zerolog adapter and a no-op logger are provided:
//
//	logger := log.NewZerologAdapterWithLogger(log.NewConsoleLogger(os.Stderr, zerolog.InfoLevel))
//	logger.Info("converted", log.String("input", path), log.Int("fragments", n))
//
// The no-op logger is the default for library use and tests:
//
//	logger := log.NewNoopLogger()
//
// Diagnostics go to stderr. Records produced by a conversion never pass
// through a Logger.
package log
