// Package hgpcode turns two classical binary linear codes into a quantum
// low-density parity-check code via the hypergraph product, and lets a
// caller place single-qubit errors and observe the measurement syndrome.
//
// 🚀 What is HGPCode?
//
//	A small library for teaching-scale CSS codes:
//		• GF(2) primitives: Kronecker products, mod-2 products, rank
//		• The hypergraph-product constructor with its commutation guarantee
//		• Flat-index ⇄ grid mapping for data and check qubits
//		• Syndrome extraction from bit-flip and phase-flip error patterns
//		• Error-placement sessions and an HTML lattice visualization
//
// ✨ Why choose HGPCode?
//
//   - Pure functions — every construction and syndrome call is a total
//     function of its arguments, safe to call concurrently
//   - Sentinel errors everywhere, matched with errors.Is
//   - No floating point — everything stays in {0,1}
//
// Everything is organized under five subpackages:
//
//	gf2/       — binary matrices, mod-2 kernels, the text boundary format
//	classical/ — classical code records and presets (repetition, Hamming)
//	hgp/       — the hypergraph-product constructor and syndrome engine
//	sim/       — mutable error-placement sessions over immutable codes
//	viz/       — go-echarts HTML rendering of the code lattice
//
// Quick ASCII example — the 13-qubit product of two repetition codes:
//
//	    d─X─d─X─d          d = data qubit (3×3 block)
//	    Z c Z c Z          c = check qubit (2×2 block)
//	    d─X─d─X─d          X,Z = stabilizer checks
//	    Z c Z c Z
//	    d─X─d─X─d
//
// Not here on purpose: minimum-distance computation (intractable in
// general; distances are caller-declared metadata), decoding, and rank
// verification by default (opt in with hgp.WithRankCheck).
//
//	go get github.com/yezhuoyang/HGPCode
package hgpcode
