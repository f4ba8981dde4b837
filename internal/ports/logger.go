package ports

import "github.com/bft-labs/binfastq/pkg/log"

// Logger is the structured logging port.
type Logger = log.Logger

// Field is a structured log field.
type Field = log.Field

// Field constructors re-exported for application code.
var (
	String   = log.String
	Int      = log.Int
	Int64    = log.Int64
	Duration = log.Duration
	Err      = log.Err
)
