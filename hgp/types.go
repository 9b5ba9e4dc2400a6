package hgp

import (
	"fmt"

	"github.com/yezhuoyang/HGPCode/gf2"
)

// BlockType selects which tensor block a physical qubit belongs to.
type BlockType int

const (
	// DataBlock holds the n1×n2 qubits indexed by (bit of code 1, bit of code 2).
	DataBlock BlockType = iota
	// CheckBlock holds the r1×r2 qubits indexed by (check of code 1, check of code 2).
	CheckBlock
)

// String returns "data" or "check" for known tags, "block(i)" otherwise.
func (b BlockType) String() string {
	switch b {
	case DataBlock:
		return "data"
	case CheckBlock:
		return "check"
	default:
		return fmt.Sprintf("block(%d)", int(b))
	}
}

// Position is the grid location of a physical qubit inside its block.
type Position struct {
	Block BlockType
	Row   int
	Col   int
}

// Code is a hypergraph-product quantum code. Immutable once constructed;
// callers must treat HX and HZ as read-only. Any change to the underlying
// classical codes means constructing a fresh Code — there is no
// partial-update path.
type Code struct {
	// Classical parameters of the two input codes; Ki = Ni − Ri
	// (full-row-rank caveat, see package doc).
	N1, R1, K1 int
	N2, R2, K2 int

	// N is the number of physical qubits: n1·n2 data + r1·r2 check.
	N int
	// K is the number of logical qubits: k1·k2.
	K int
	// D is min of the declared classical distances when both are known,
	// 0 otherwise. Never computed.
	D int

	// HX has shape NumXChecks × N, HZ has shape NumZChecks × N.
	HX, HZ *gf2.Matrix

	NumXChecks int // r1·n2
	NumZChecks int // n1·r2
}

// DataQubits returns the size of the data block, n1·n2.
func (c *Code) DataQubits() int { return c.N1 * c.N2 }

// CheckQubits returns the size of the check block, r1·r2.
func (c *Code) CheckQubits() int { return c.R1 * c.R2 }

// String renders the quantum parameters in [[N,K,D]] convention,
// with D printed as "?" when unknown.
func (c *Code) String() string {
	if c.D == 0 {
		return fmt.Sprintf("[[%d,%d,?]]", c.N, c.K)
	}

	return fmt.Sprintf("[[%d,%d,%d]]", c.N, c.K, c.D)
}
