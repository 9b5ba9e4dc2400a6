// File: hgp/example_test.go
package hgp_test

import (
	"fmt"

	"github.com/yezhuoyang/HGPCode/classical"
	"github.com/yezhuoyang/HGPCode/hgp"
)

// ExampleConstruct builds the textbook 13-qubit code from two copies of
// the 3-bit repetition code and prints its parameters.
// Scenario:
//
//   - H1 = H2 = [[1,1,0],[0,1,1]] (n=3, r=2, k=1, d=3)
//   - Data block 3×3 = 9 qubits, check block 2×2 = 4 qubits
//   - Six X-checks, six Z-checks, one logical qubit
func ExampleConstruct() {
	rep, _ := classical.Repetition(3)
	code, _ := hgp.Construct(rep, rep)

	fmt.Println("code:", code)
	fmt.Println("qubits:", code.N, "=", code.DataQubits(), "data +", code.CheckQubits(), "check")
	fmt.Println("checks:", code.NumXChecks, "X,", code.NumZChecks, "Z")

	// Output:
	// code: [[13,1,3]]
	// qubits: 13 = 9 data + 4 check
	// checks: 6 X, 6 Z
}

// ExampleCode_QubitToGrid walks the boundary between the data and check
// blocks of the 13-qubit code.
func ExampleCode_QubitToGrid() {
	rep, _ := classical.Repetition(3)
	code, _ := hgp.Construct(rep, rep)

	for _, q := range []int{0, 5, 8, 9, 12} {
		pos, _ := code.QubitToGrid(q)
		fmt.Printf("qubit %2d → %s (%d,%d)\n", q, pos.Block, pos.Row, pos.Col)
	}

	// Output:
	// qubit  0 → data (0,0)
	// qubit  5 → data (1,2)
	// qubit  8 → data (2,2)
	// qubit  9 → check (0,0)
	// qubit 12 → check (1,1)
}

// ExampleCode_XSyndrome shows a single bit-flip lighting the Z-checks
// adjacent to the flipped qubit.
func ExampleCode_XSyndrome() {
	rep, _ := classical.Repetition(3)
	code, _ := hgp.Construct(rep, rep)

	errs := make([]byte, code.N)
	errs[4] = 1 // bit-flip the center data qubit (1,1)

	syn, _ := code.XSyndrome(errs)
	fmt.Println("syndrome:", syn)
	for check, bit := range syn {
		if bit == 1 {
			qubits, _ := code.ZCheckQubits(check)
			fmt.Printf("Z-check %d violated; touches qubits %v\n", check, qubits)
		}
	}

	// Output:
	// syndrome: [0 0 1 1 0 0]
	// Z-check 2 violated; touches qubits [3 4 9 11]
	// Z-check 3 violated; touches qubits [4 5 10 12]
}
