package spanner

import "github.com/cockroachdb/errors"

// Sentinel error kinds returned by BuildSpannerAndClusters. Callers should
// classify failures with errors.Is, since the returned error is wrapped with
// additional context via errors.Wrapf.
var (
	// ErrInvalidShape is returned when the input is not a sequence of
	// d-length inner sequences, or when len(infos) != len(points).
	ErrInvalidShape = errors.New("spanner: input is not a sequence of d-length point vectors")

	// ErrInvalidStretch is returned when stretch <= 1.
	ErrInvalidStretch = errors.New("spanner: stretch must be > 1")

	// ErrEmptyInput is returned when N == 0 or d == 0.
	ErrEmptyInput = errors.New("spanner: dimension and point count must both be > 0")

	// ErrNonFinite is returned when any coordinate is NaN or infinite.
	ErrNonFinite = errors.New("spanner: point coordinates must be finite")

	// ErrInternal indicates a structural invariant was violated. It is not
	// recoverable by the caller; it is surfaced rather than panicked so that
	// callers (CLI, HTTP server) can report it cleanly instead of crashing.
	ErrInternal = errors.New("spanner: internal invariant violated")
)
