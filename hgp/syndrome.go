// Package hgp: syndrome extraction.
// Both syndromes are full recomputations — O(checks·N) per call. The
// interactive toggling rate is human-speed and N stays small for teaching
// codes, so incremental maintenance would buy nothing.
package hgp

import (
	"fmt"

	"github.com/yezhuoyang/HGPCode/gf2"
)

// ZSyndrome returns HX·zErrors mod 2: the X-check outcomes produced by a
// phase-flip error pattern. zErrors must have length N.
// Returns gf2.ErrDimensionMismatch on a wrong-length vector.
// Complexity: O(NumXChecks·N).
func (c *Code) ZSyndrome(zErrors []byte) ([]byte, error) {
	syn, err := gf2.MulVec(c.HX, zErrors)
	if err != nil {
		return nil, fmt.Errorf("ZSyndrome: %w", err)
	}

	return syn, nil
}

// XSyndrome returns HZ·xErrors mod 2: the Z-check outcomes produced by a
// bit-flip error pattern. xErrors must have length N.
// Returns gf2.ErrDimensionMismatch on a wrong-length vector.
// Complexity: O(NumZChecks·N).
func (c *Code) XSyndrome(xErrors []byte) ([]byte, error) {
	syn, err := gf2.MulVec(c.HZ, xErrors)
	if err != nil {
		return nil, fmt.Errorf("XSyndrome: %w", err)
	}

	return syn, nil
}

// XCheckQubits returns, in ascending order, the qubit indices touched by
// X-check `check` (the support of row `check` of HX).
// Returns ErrCheckOutOfRange outside [0, NumXChecks).
// Complexity: O(N).
func (c *Code) XCheckQubits(check int) ([]int, error) {
	if check < 0 || check >= c.NumXChecks {
		return nil, fmt.Errorf("XCheckQubits(%d): max=%d: %w", check, c.NumXChecks, ErrCheckOutOfRange)
	}

	return rowSupport(c.HX, check), nil
}

// ZCheckQubits returns, in ascending order, the qubit indices touched by
// Z-check `check` (the support of row `check` of HZ).
// Returns ErrCheckOutOfRange outside [0, NumZChecks).
// Complexity: O(N).
func (c *Code) ZCheckQubits(check int) ([]int, error) {
	if check < 0 || check >= c.NumZChecks {
		return nil, fmt.Errorf("ZCheckQubits(%d): max=%d: %w", check, c.NumZChecks, ErrCheckOutOfRange)
	}

	return rowSupport(c.HZ, check), nil
}

// rowSupport collects the column indices holding a 1 in row i.
// Caller guarantees i is in range.
func rowSupport(m *gf2.Matrix, i int) []int {
	row, _ := m.Row(i)
	support := make([]int, 0, len(row))
	for j, v := range row {
		if v == 1 {
			support = append(support, j)
		}
	}

	return support
}
