// Package gf2 provides dense binary matrices and the GF(2) linear-algebra
// kernels needed by hypergraph-product code construction.
//
// What:
//
//   - Matrix: a rectangular row-major matrix with entries in {0,1}.
//   - Kernels: Identity, Transpose, Kronecker, HConcat, Mul, MulVec — all
//     pure functions that allocate fresh results and never mutate operands.
//   - Rank: GF(2) rank via forward Gaussian elimination.
//   - Parse/String: the "1,1,0;0,1,1" boundary text format (rows joined by
//     ';', entries by ',').
//
// Why:
//
//   - Parity-check matrices of classical codes live over GF(2); every
//     quantity downstream (check matrices, syndromes) is a mod-2 product.
//   - Keeping the field arithmetic in one tiny package keeps the code
//     constructor and syndrome engine free of bit bookkeeping.
//
// Arithmetic:
//
//   - Addition is XOR, multiplication is AND. No floating point anywhere.
//
// Complexity:
//
//   - Kronecker: O(ra·rb·ca·cb) time and memory.
//   - Mul: O(ra·ca·cb), MulVec: O(r·c), Rank: O(r²·c).
//
// Errors:
//
//   - ErrInvalidDimensions: requested shape has a non-positive dimension.
//   - ErrEmptyMatrix: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNonBinary: an entry outside {0,1} was observed.
//   - ErrDimensionMismatch: operand shapes incompatible for the operation.
//   - ErrOutOfRange: row/column index outside valid bounds.
//   - ErrParse: boundary text could not be parsed.
package gf2
