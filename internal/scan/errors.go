package scan

import (
	"errors"
	"fmt"
)

// FailureKind categorises the ways a scan can fail. Callers and tests
// branch on the kind rather than parsing messages.
type FailureKind string

const (
	// FailureInsufficientLines means too few lines were detected to form
	// two grid orientation families of at least 4 lines each.
	FailureInsufficientLines FailureKind = "insufficient_lines"

	// FailureNotOrthogonal means the two dominant line orientations are
	// not within tolerance of 90 degrees apart.
	FailureNotOrthogonal FailureKind = "not_orthogonal"

	// FailureWrongLineCount means merging a family did not produce
	// exactly 4 grid boundary lines.
	FailureWrongLineCount FailureKind = "wrong_line_count"

	// FailureDegenerateGeometry means two centre lines were near-parallel
	// and their intersection could not be computed.
	FailureDegenerateGeometry FailureKind = "degenerate_geometry"

	// FailureOutOfBounds means a computed facelet centre lies outside the
	// source image.
	FailureOutOfBounds FailureKind = "out_of_bounds"
)

// ScanError is a structured pipeline failure. It records which invariant
// was violated so callers can report a generic "scan failed" while tests
// and diagnostics still see the exact cause.
type ScanError struct {
	Kind    FailureKind
	Message string
}

// Error implements the error interface.
func (e *ScanError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// failf builds a ScanError with a formatted message.
func failf(kind FailureKind, format string, args ...interface{}) *ScanError {
	return &ScanError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is, or wraps, a ScanError of the given kind.
func IsKind(err error, kind FailureKind) bool {
	var se *ScanError
	if errors.As(err, &se) {
		return se.Kind == kind
	}
	return false
}
