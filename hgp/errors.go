package hgp

import "errors"

// Sentinel errors for hgp operations.
var (
	// ErrNilCode indicates a nil classical code argument or nil Code receiver.
	ErrNilCode = errors.New("hgp: code is nil")

	// ErrRankDeficient indicates WithRankCheck() rejected a parity-check
	// matrix whose rows are linearly dependent over GF(2).
	ErrRankDeficient = errors.New("hgp: parity-check matrix is rank-deficient")

	// ErrQubitOutOfRange indicates a qubit index outside [0, N).
	ErrQubitOutOfRange = errors.New("hgp: qubit index out of range")

	// ErrCheckOutOfRange indicates a check index outside the valid range.
	ErrCheckOutOfRange = errors.New("hgp: check index out of range")

	// ErrBlockType indicates a Position with an unknown block tag.
	ErrBlockType = errors.New("hgp: unknown block type")

	// ErrCommutation indicates a record violating HX·HZᵀ ≡ 0 (mod 2).
	ErrCommutation = errors.New("hgp: check matrices do not commute")
)
