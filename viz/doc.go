// Package viz renders an error-placement session as a standalone HTML
// page (go-echarts), realizing the visualization the construction was
// built for without any interactive canvas machinery.
//
// What:
//
//   - A graph chart laying the code out on the canonical HGP lattice:
//     data qubits at even-even coordinates (n1×n2 grid), check qubits at
//     odd-odd (r1×r2 grid), X-checks at odd-even and Z-checks at even-odd
//     between them, with an edge from every check to each qubit in its
//     support. Qubits carrying errors and violated checks are recolored.
//   - Two bar charts showing the X- and Z-syndrome bit patterns.
//
// Why:
//
//   - The lattice picture is how hypergraph-product codes are taught; a
//     static HTML export needs no UI layer and opens anywhere.
//
// Errors:
//
//   - ErrNilSession: RenderHTML received a nil session.
package viz
