// Package errors provides error handling for glyphnote.
//
// This package re-exports github.com/cockroachdb/errors, providing stack
// traces, wrapping with context, and user-facing hints.
//
// Usage:
//
//	if err := t.validate(); err != nil {
//	    return errors.Wrapf(err, "entry %d", i)
//	}
//
//	return errors.WithHint(err, "modifiers are at most 8 bytes")
//
//	if errors.Is(err, errors.ErrInvalidTable) {
//	    // handle a rejected table
//	}
//
// Lookups never return errors; a missing symbol is a plain (zero, false)
// result. Errors only come out of setup: configuration, table construction
// and table loading.
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is            = crdb.Is
	IsAny         = crdb.IsAny
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	UnwrapAll     = crdb.UnwrapAll
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
	FlattenHints  = crdb.FlattenHints
	Mark          = crdb.Mark
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for setup failures.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrModifierTooLong indicates a modifier token exceeds the 8-byte capacity
	ErrModifierTooLong = New("modifier too long")

	// ErrInvalidTable indicates a symbol table failed validation
	ErrInvalidTable = New("invalid symbol table")

	// ErrInvalidConfig indicates the configuration failed validation
	ErrInvalidConfig = New("invalid configuration")

	// ErrUnsupportedFormat indicates a table file format that has no loader
	ErrUnsupportedFormat = New("unsupported table format")
)

// IsModifierTooLongError checks if an error is or wraps ErrModifierTooLong
func IsModifierTooLongError(err error) bool {
	return err != nil && Is(err, ErrModifierTooLong)
}

// IsInvalidTableError checks if an error is or wraps ErrInvalidTable
func IsInvalidTableError(err error) bool {
	return err != nil && Is(err, ErrInvalidTable)
}

// IsInvalidConfigError checks if an error is or wraps ErrInvalidConfig
func IsInvalidConfigError(err error) bool {
	return err != nil && Is(err, ErrInvalidConfig)
}

// NewInvalidTableError creates an invalid-table error with a formatted message
func NewInvalidTableError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidTable, Newf(format, args...).Error())
}

// NewInvalidConfigError creates an invalid-config error with a formatted message
func NewInvalidConfigError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidConfig, Newf(format, args...).Error())
}
