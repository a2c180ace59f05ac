package dataprocessing

import "errors"

// Pipeline error taxonomy. All three are terminal for the operation that
// raised them: they indicate a structural problem the caller must fix, not a
// transient fault, so callers never retry.
var (
	// ErrSourceUnavailable indicates the input path does not exist or
	// cannot be read.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrSchemaMismatch indicates a required column is absent from the
	// source header.
	ErrSchemaMismatch = errors.New("schema mismatch")

	// ErrUndefinedAggregate indicates aggregation was requested over an
	// empty record set.
	ErrUndefinedAggregate = errors.New("undefined aggregate over empty record set")
)
