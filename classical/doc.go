// Package classical represents classical binary linear codes by their
// parity-check matrices, plus a few deterministic preset constructors.
//
// What:
//
//   - Code wraps a parity-check matrix H (r×n) and derived parameters:
//     length N (columns), checks R (rows), dimension K = N − R.
//   - An optional declared distance D travels with the code (0 = unknown).
//     Nothing in this package computes a distance; it is caller-supplied
//     metadata.
//   - Presets: Repetition(n), Ring(n), Hamming74().
//
// Why:
//
//   - The hypergraph product consumes exactly two parity-check matrices;
//     a small named record keeps classical parameters next to H instead of
//     recomputing them at every call site.
//
// Caveat:
//
//   - K = N − R is correct only when H has full row rank. New does not
//     verify rank; rank-deficient inputs (e.g. Ring) report an inflated K.
//     Callers wanting the guarantee can check gf2.HasFullRowRank themselves
//     or pass hgp.WithRankCheck() at construction of the quantum code.
//
// Errors:
//
//   - ErrNilMatrix: New received a nil parity-check matrix.
//   - ErrTooFewBits: a preset was asked for fewer bits than it supports.
package classical
