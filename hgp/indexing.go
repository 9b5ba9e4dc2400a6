// Package hgp: flat-index ↔ grid mapping for physical qubits.
// Data qubits occupy [0, n1·n2) row-major on an n1×n2 grid; check qubits
// occupy [n1·n2, N) row-major on an r1×r2 grid. QubitToGrid and
// GridToQubit are exact two-sided inverses over their valid domains.
package hgp

import "fmt"

// QubitToGrid maps a flat qubit index to its (block, row, col) position.
// Returns ErrQubitOutOfRange when q is negative or ≥ N.
// Complexity: O(1).
func (c *Code) QubitToGrid(q int) (Position, error) {
	if q < 0 || q >= c.N {
		return Position{}, fmt.Errorf("QubitToGrid(%d): N=%d: %w", q, c.N, ErrQubitOutOfRange)
	}

	data := c.DataQubits()
	if q < data {
		return Position{Block: DataBlock, Row: q / c.N2, Col: q % c.N2}, nil
	}

	q -= data

	return Position{Block: CheckBlock, Row: q / c.R2, Col: q % c.R2}, nil
}

// GridToQubit maps a (block, row, col) position back to its flat index.
// Returns ErrBlockType on an unknown block tag and ErrQubitOutOfRange on
// a row or column outside the block's grid.
// Complexity: O(1).
func (c *Code) GridToQubit(p Position) (int, error) {
	switch p.Block {
	case DataBlock:
		if p.Row < 0 || p.Row >= c.N1 || p.Col < 0 || p.Col >= c.N2 {
			return 0, fmt.Errorf("GridToQubit(data %d,%d): grid %dx%d: %w", p.Row, p.Col, c.N1, c.N2, ErrQubitOutOfRange)
		}

		return p.Row*c.N2 + p.Col, nil

	case CheckBlock:
		if p.Row < 0 || p.Row >= c.R1 || p.Col < 0 || p.Col >= c.R2 {
			return 0, fmt.Errorf("GridToQubit(check %d,%d): grid %dx%d: %w", p.Row, p.Col, c.R1, c.R2, ErrQubitOutOfRange)
		}

		return c.DataQubits() + p.Row*c.R2 + p.Col, nil

	default:
		return 0, fmt.Errorf("GridToQubit(%v): %w", p.Block, ErrBlockType)
	}
}
