// Package gf2: pure linear-algebra kernels over GF(2).
// Every kernel validates its operands, allocates a fresh result, and
// leaves its inputs untouched. Addition is XOR, multiplication is AND.
package gf2

// Identity returns the n×n identity matrix.
// Returns ErrInvalidDimensions when n ≤ 0.
// Complexity: O(n²) time and memory.
func Identity(n int) (*Matrix, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, matrixErrorf("Identity", ErrInvalidDimensions)
	}
	for i := 0; i < n; i++ {
		m.set(i, i, 1)
	}

	return m, nil
}

// Transpose returns Mᵀ.
// Complexity: O(rows·cols).
func Transpose(m *Matrix) *Matrix {
	out := &Matrix{rows: m.cols, cols: m.rows, data: make([]byte, len(m.data))}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.set(j, i, m.at(i, j))
		}
	}

	return out
}

// Kronecker returns the tensor product A ⊗ B with shape
// (A.rows·B.rows) × (A.cols·B.cols): the (i·B.rows+k, j·B.cols+l) entry
// is A[i][j]·B[k][l] mod 2.
// Complexity: O(A.rows·B.rows·A.cols·B.cols) time and memory.
func Kronecker(a, b *Matrix) *Matrix {
	out := &Matrix{
		rows: a.rows * b.rows,
		cols: a.cols * b.cols,
		data: make([]byte, a.rows*b.rows*a.cols*b.cols),
	}
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			// A zero entry of A zeroes the whole block; skip it.
			if a.at(i, j) == 0 {
				continue
			}
			for k := 0; k < b.rows; k++ {
				for l := 0; l < b.cols; l++ {
					out.set(i*b.rows+k, j*b.cols+l, b.at(k, l))
				}
			}
		}
	}

	return out
}

// HConcat returns the horizontal concatenation [A | B].
// Returns ErrDimensionMismatch when row counts differ.
// Complexity: O(rows·(A.cols+B.cols)).
func HConcat(a, b *Matrix) (*Matrix, error) {
	if a.rows != b.rows {
		return nil, matrixErrorf("HConcat", ErrDimensionMismatch)
	}
	out := &Matrix{rows: a.rows, cols: a.cols + b.cols, data: make([]byte, a.rows*(a.cols+b.cols))}
	for i := 0; i < a.rows; i++ {
		copy(out.data[i*out.cols:], a.data[i*a.cols:(i+1)*a.cols])
		copy(out.data[i*out.cols+a.cols:], b.data[i*b.cols:(i+1)*b.cols])
	}

	return out, nil
}

// Mul returns the mod-2 matrix product A·B.
// Returns ErrDimensionMismatch when A.cols ≠ B.rows.
// Complexity: O(A.rows·A.cols·B.cols).
func Mul(a, b *Matrix) (*Matrix, error) {
	if a.cols != b.rows {
		return nil, matrixErrorf("Mul", ErrDimensionMismatch)
	}
	out := &Matrix{rows: a.rows, cols: b.cols, data: make([]byte, a.rows*b.cols)}
	for i := 0; i < a.rows; i++ {
		for k := 0; k < a.cols; k++ {
			// Row-times-row accumulation: skip zero pivots of A.
			if a.at(i, k) == 0 {
				continue
			}
			for j := 0; j < b.cols; j++ {
				out.data[i*out.cols+j] ^= b.at(k, j)
			}
		}
	}

	return out, nil
}

// MulVec returns M·v mod 2 as a fresh vector of length M.rows.
// Returns ErrDimensionMismatch when len(v) ≠ M.cols.
// Complexity: O(rows·cols).
func MulVec(m *Matrix, v []byte) ([]byte, error) {
	if len(v) != m.cols {
		return nil, matrixErrorf("MulVec", ErrDimensionMismatch)
	}
	out := make([]byte, m.rows)
	for i := 0; i < m.rows; i++ {
		var acc byte
		row := m.data[i*m.cols : (i+1)*m.cols]
		for j, e := range row {
			acc ^= e & v[j]
		}
		out[i] = acc
	}

	return out, nil
}

// IsZero reports whether every entry of m is 0.
// Complexity: O(rows·cols).
func IsZero(m *Matrix) bool {
	for _, v := range m.data {
		if v != 0 {
			return false
		}
	}

	return true
}
