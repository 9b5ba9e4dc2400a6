// Package hgp builds quantum CSS codes from pairs of classical binary
// codes via the hypergraph product, and computes measurement syndromes
// from error patterns.
//
// What:
//
//   - Construct combines two parity-check matrices H1 (r1×n1) and
//     H2 (r2×n2) into the quantum check matrices
//
//     HX = [ H1 ⊗ I_n2 | I_r1 ⊗ H2ᵀ ]   (r1·n2 × N)
//     HZ = [ I_n1 ⊗ H2  | H1ᵀ ⊗ I_r2 ]  (n1·r2 × N)
//
//     over N = n1·n2 + r1·r2 physical qubits encoding K = k1·k2 logical
//     qubits.
//   - QubitToGrid / GridToQubit map a flat qubit index to its (block,
//     row, column) position: qubits [0, n1·n2) form the data block laid
//     out row-major on an n1×n2 grid, the rest form the check block on an
//     r1×r2 grid.
//   - XSyndrome / ZSyndrome compute HZ·x mod 2 and HX·z mod 2 from
//     caller-owned error vectors; XCheckQubits / ZCheckQubits report which
//     qubits a given check touches.
//
// Why:
//
//   - The transpose in each right block makes every X-check anticommute an
//     even number of times with every Z-check, so HX·HZᵀ ≡ 0 (mod 2) holds
//     for any two input codes — the CSS commutation invariant that makes
//     the product a valid stabilizer code. Validate checks it entrywise.
//
// Caveat:
//
//   - k_i = n_i − r_i assumes full row rank of H_i and is not verified by
//     default; pass WithRankCheck() to make Construct fail on
//     rank-deficient inputs instead.
//
// Concurrency:
//
//   - A Code is immutable once constructed and every function here is a
//     pure function of its arguments, so concurrent use needs no locking.
//
// Complexity:
//
//   - Construct: O(N²) time and memory (Kronecker blocks dominate).
//   - Syndromes: O(checks·N) per call, full recomputation.
//
// Errors:
//
//   - ErrNilCode: a nil classical code or nil Code receiver.
//   - ErrRankDeficient: WithRankCheck() found a dependent check row.
//   - ErrQubitOutOfRange, ErrCheckOutOfRange: index outside [0,N) or the
//     check range.
//   - ErrBlockType: a Position carries an unknown block tag.
//   - ErrCommutation: Validate found HX·HZᵀ ≠ 0 (cannot occur for codes
//     built by Construct; guards hand-assembled records).
package hgp
