// Package classical: preset code constructors.
//
// Contract:
//   - Deterministic output for a given parameter; no RNG anywhere.
//   - Parameter domains validated up front; only sentinel errors returned,
//     wrapped with preset context via fmt.Errorf %w.
//   - Check rows are emitted in ascending bit order.
package classical

import (
	"fmt"

	"github.com/yezhuoyang/HGPCode/gf2"
)

// File-local minimums (no magic numbers; stable preset tags for context).
const (
	presetRepetition = "Repetition"
	presetRing       = "Ring"

	minRepetitionBits = 2
	minRingBits       = 3
)

// Repetition returns the length-n repetition code: n−1 checks, each
// comparing two adjacent bits (row i has ones at columns i and i+1).
// H has full row rank, so k = 1; the distance is exactly n and is declared.
// Returns ErrTooFewBits when n < 2.
// Complexity: O(n²) for the matrix allocation.
func Repetition(n int) (*Code, error) {
	if n < minRepetitionBits {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", presetRepetition, n, minRepetitionBits, ErrTooFewBits)
	}

	h, err := gf2.New(n-1, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", presetRepetition, err)
	}
	for i := 0; i < n-1; i++ {
		_ = h.Set(i, i, 1)
		_ = h.Set(i, i+1, 1)
	}

	return New(h, WithDistance(n))
}

// Ring returns the length-n cyclic repetition code: n checks comparing
// adjacent bits around a ring (row i has ones at columns i and (i+1) mod n).
// The closing row is the GF(2) sum of the others, so H is rank-deficient
// by one and K() over-reports the dimension — the canonical exhibit of the
// full-row-rank caveat. Returns ErrTooFewBits when n < 3.
// Complexity: O(n²).
func Ring(n int) (*Code, error) {
	if n < minRingBits {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", presetRing, n, minRingBits, ErrTooFewBits)
	}

	h, err := gf2.New(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", presetRing, err)
	}
	for i := 0; i < n; i++ {
		_ = h.Set(i, i, 1)
		_ = h.Set(i, (i+1)%n, 1)
	}

	return New(h, WithDistance(n))
}

// Hamming74 returns the [7,4,3] Hamming code. Column j (1-based) of H is
// the 3-bit binary expansion of j, so every single-bit error produces a
// distinct syndrome.
// Complexity: O(1) (fixed 3×7 matrix).
func Hamming74() (*Code, error) {
	h, err := gf2.FromRows([][]byte{
		{0, 0, 0, 1, 1, 1, 1},
		{0, 1, 1, 0, 0, 1, 1},
		{1, 0, 1, 0, 1, 0, 1},
	})
	if err != nil {
		return nil, fmt.Errorf("Hamming74: %w", err)
	}

	return New(h, WithDistance(3))
}
