// Package domain contains the core entities and value objects for binfastq.
//
// This package is the innermost layer of the application. It has no
// dependencies on infrastructure concerns (files, logging, CLI) and contains
// only the symbols, records and invariants of the byte-to-read transform.
//
// # Entities
//
//   - [DecodedByte]: one input byte split into a base symbol and a quality character
//   - [Fragment]: a fixed-length, 1-based group of decoded bytes rendered as one read
//   - [Run]: all fragments produced from one input
//   - [Summary]: what a finished conversion did, persisted for inspection
//
// # Design Principles
//
// Domain entities are:
//   - Immutable after construction
//   - Free of infrastructure dependencies
//   - Testable without mocks or external systems
package domain
