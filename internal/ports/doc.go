// Package ports defines the interfaces that connect the application layer to
// infrastructure adapters.
//
// # Port Interfaces
//
//   - [ByteSource]: Supplies the input bytes and their total length
//   - [RecordSink]: Receives fragments and renders them as read records
//   - [SummaryRepository]: Persists the summary of a finished conversion
//   - [Logger]: Structured logging abstraction
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters, pkg/fastq) implement them with
// files, buffered writers and zerolog.
package ports
