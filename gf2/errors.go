// Package gf2: sentinel error set.
// All kernels return these sentinels (possibly wrapped with operation
// context via fmt.Errorf %w); tests and callers match them with errors.Is.
// No kernel panics on user-triggered conditions.
package gf2

import "errors"

var (
	// ErrInvalidDimensions indicates a requested dimension is non-positive.
	ErrInvalidDimensions = errors.New("gf2: dimensions must be > 0")

	// ErrEmptyMatrix indicates an input matrix has no rows or no columns.
	ErrEmptyMatrix = errors.New("gf2: matrix must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gf2: all rows must have the same length")

	// ErrNonBinary indicates an entry outside {0,1}.
	ErrNonBinary = errors.New("gf2: entries must be 0 or 1")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. HConcat with differing row counts or MulVec with a wrong-length vector.
	ErrDimensionMismatch = errors.New("gf2: dimension mismatch")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("gf2: index out of range")

	// ErrParse indicates malformed boundary text (empty after trimming,
	// a non-bit entry, or ragged rows).
	ErrParse = errors.New("gf2: malformed matrix text")
)
