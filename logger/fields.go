package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Components
	FieldComponent = "component"

	// Lookups
	FieldNotation  = "notation"  // raw notation as typed
	FieldName      = "name"      // decoded name
	FieldModifiers = "modifiers" // decoded modifier tokens
	FieldSymbol    = "symbol"    // resolved symbol
	FieldScore     = "score"

	// Tables
	FieldTable   = "table"  // table source (path or "builtin")
	FieldDigest  = "digest" // xxhash64 of the table contents
	FieldEntries = "entries"

	// Errors
	FieldError = "error"

	// Counts
	FieldCount = "count"

	// Files
	FieldPath = "path"
	FieldOp   = "op"

	// Build and setup
	FieldVersion  = "version"
	FieldLogLevel = "log_level"
)

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	r, err := resolve.New(t, resolve.WithLogger(logger.ComponentLogger("resolve")))
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
//
// Example:
//
//	tableLog := logger.ChildLogger(baseLogger, logger.FieldTable, path)
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
