// Package gf2: Matrix is a dense, row-major binary matrix.
// The flat backing slice keeps entry access cache-friendly; every public
// constructor validates shape and entry domain so downstream kernels can
// assume a well-formed operand.
package gf2

import "fmt"

// Matrix is a rectangular matrix over GF(2), stored row-major in a flat
// byte slice. Entries are always 0 or 1. The zero value is not usable;
// construct via New, FromRows, Identity, or Parse.
type Matrix struct {
	rows, cols int
	data       []byte // length rows*cols, row-major
}

// matrixErrorf wraps err with method context, preserving the sentinel for errors.Is.
func matrixErrorf(method string, err error) error {
	return fmt.Errorf("gf2.%s: %w", method, err)
}

// New returns a rows×cols matrix initialized to all zeros.
// Returns ErrInvalidDimensions when either dimension is non-positive.
// Complexity: O(rows·cols) time and memory.
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf("New", ErrInvalidDimensions)
	}

	return &Matrix{rows: rows, cols: cols, data: make([]byte, rows*cols)}, nil
}

// FromRows builds a matrix from a 2D slice, deep-copying the input.
// Returns ErrEmptyMatrix on no rows / no columns, ErrNonRectangular on
// ragged rows, ErrNonBinary on an entry outside {0,1}.
// Complexity: O(rows·cols).
func FromRows(rows [][]byte) (*Matrix, error) {
	// Validate shape before any allocation.
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf("FromRows", ErrEmptyMatrix)
	}
	cols := len(rows[0])
	for _, row := range rows {
		if len(row) != cols {
			return nil, matrixErrorf("FromRows", ErrNonRectangular)
		}
		for _, v := range row {
			if v > 1 {
				return nil, matrixErrorf("FromRows", ErrNonBinary)
			}
		}
	}

	// Deep copy into flat storage; callers keep ownership of their slice.
	m := &Matrix{rows: len(rows), cols: cols, data: make([]byte, len(rows)*cols)}
	for i, row := range rows {
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Rows returns the number of rows.
// Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
// Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// At returns the entry at (row, col), or ErrOutOfRange on bad indices.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (byte, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, matrixErrorf("At", ErrOutOfRange)
	}

	return m.data[row*m.cols+col], nil
}

// Set assigns the entry at (row, col). Returns ErrOutOfRange on bad
// indices and ErrNonBinary when v is neither 0 nor 1.
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v byte) error {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return matrixErrorf("Set", ErrOutOfRange)
	}
	if v > 1 {
		return matrixErrorf("Set", ErrNonBinary)
	}
	m.data[row*m.cols+col] = v

	return nil
}

// Row returns a copy of row i, or ErrOutOfRange when i is out of bounds.
// The copy keeps the matrix immutable from the caller's side.
// Complexity: O(cols).
func (m *Matrix) Row(i int) ([]byte, error) {
	if i < 0 || i >= m.rows {
		return nil, matrixErrorf("Row", ErrOutOfRange)
	}
	out := make([]byte, m.cols)
	copy(out, m.data[i*m.cols:(i+1)*m.cols])

	return out, nil
}

// Clone returns an independent deep copy.
// Complexity: O(rows·cols).
func (m *Matrix) Clone() *Matrix {
	data := make([]byte, len(m.data))
	copy(data, m.data)

	return &Matrix{rows: m.rows, cols: m.cols, data: data}
}

// Equal reports whether m and other have identical shape and entries.
// Complexity: O(rows·cols).
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// at is the unchecked accessor used by kernels that already validated shape.
func (m *Matrix) at(row, col int) byte {
	return m.data[row*m.cols+col]
}

// set is the unchecked setter counterpart of at.
func (m *Matrix) set(row, col int, v byte) {
	m.data[row*m.cols+col] = v
}
