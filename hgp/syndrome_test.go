package hgp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yezhuoyang/HGPCode/hgp"
)

// buildRep3 constructs the 13-qubit repetition-pair code.
func buildRep3(t *testing.T) *hgp.Code {
	t.Helper()
	rep := repetition3(t)
	code, err := hgp.Construct(rep, rep)
	require.NoError(t, err)
	return code
}

// TestSyndrome_ZeroErrors: error-free vectors produce all-zero syndromes.
func TestSyndrome_ZeroErrors(t *testing.T) {
	code := buildRep3(t)
	zeros := make([]byte, code.N)

	xSyn, err := code.XSyndrome(zeros)
	require.NoError(t, err)
	assert.Equal(t, make([]byte, code.NumZChecks), xSyn)

	zSyn, err := code.ZSyndrome(zeros)
	require.NoError(t, err)
	assert.Equal(t, make([]byte, code.NumXChecks), zSyn)
}

// TestSyndrome_SingleBitFlip pins the single-error case: a bit-flip
// on data qubit 0 (grid (0,0)) lights exactly the Z-checks whose HZ row
// has a 1 in column 0.
func TestSyndrome_SingleBitFlip(t *testing.T) {
	code := buildRep3(t)

	e := make([]byte, code.N)
	e[0] = 1
	syn, err := code.XSyndrome(e)
	require.NoError(t, err)

	for check := 0; check < code.NumZChecks; check++ {
		want, atErr := code.HZ.At(check, 0)
		require.NoError(t, atErr)
		assert.Equal(t, want, syn[check], "Z-check %d", check)
	}

	// For the repetition pair only the first Z-check touches qubit 0.
	assert.Equal(t, []byte{1, 0, 0, 0, 0, 0}, syn)
}

// TestSyndrome_ToggleTwiceRestores: flipping the same qubit twice returns
// the syndrome to its previous value (XOR self-inverse).
func TestSyndrome_ToggleTwiceRestores(t *testing.T) {
	code := buildRep3(t)

	e := make([]byte, code.N)
	e[4] = 1
	e[10] = 1
	before, err := code.ZSyndrome(e)
	require.NoError(t, err)

	e[7] ^= 1
	e[7] ^= 1
	after, err := code.ZSyndrome(e)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

// TestSyndrome_Linearity: syndrome(e1 XOR e2) = syndrome(e1) XOR syndrome(e2).
func TestSyndrome_Linearity(t *testing.T) {
	code := buildRep3(t)

	e1 := make([]byte, code.N)
	e2 := make([]byte, code.N)
	e1[0], e1[5], e1[9] = 1, 1, 1
	e2[5], e2[12] = 1, 1

	sum := make([]byte, code.N)
	for i := range sum {
		sum[i] = e1[i] ^ e2[i]
	}

	s1, err := code.XSyndrome(e1)
	require.NoError(t, err)
	s2, err := code.XSyndrome(e2)
	require.NoError(t, err)
	sSum, err := code.XSyndrome(sum)
	require.NoError(t, err)

	for i := range sSum {
		assert.Equal(t, s1[i]^s2[i], sSum[i], "Z-check %d", i)
	}
}

// TestSyndrome_LengthMismatch rejects wrong-length error vectors.
func TestSyndrome_LengthMismatch(t *testing.T) {
	code := buildRep3(t)

	short := make([]byte, code.N-1)
	_, err := code.XSyndrome(short)
	assert.Error(t, err)
	_, err = code.ZSyndrome(short)
	assert.Error(t, err)
}

//----------------------------------------------------------------------------//
// Check-support queries
//----------------------------------------------------------------------------//

// TestCheckQubits_Supports verifies supports against the gold matrices and
// that every X-check of the repetition pair touches its row neighbors plus
// the check-block qubits.
func TestCheckQubits_Supports(t *testing.T) {
	code := buildRep3(t)

	// Row 0 of HX is 1,0,0,1,0,0,0,0,0,1,0,0,0 → support {0, 3, 9}.
	xs, err := code.XCheckQubits(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 9}, xs)

	// Row 2 of HZ is 0,0,0,1,1,0,0,0,0,1,0,1,0 → support {3, 4, 9, 11}.
	zs, err := code.ZCheckQubits(2)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 9, 11}, zs)

	// Supports must agree with the matrix rows for every check.
	for check := 0; check < code.NumXChecks; check++ {
		support, sErr := code.XCheckQubits(check)
		require.NoError(t, sErr)
		seen := make(map[int]bool, len(support))
		for _, q := range support {
			seen[q] = true
		}
		for col := 0; col < code.N; col++ {
			v, _ := code.HX.At(check, col)
			assert.Equal(t, v == 1, seen[col], "X-check %d qubit %d", check, col)
		}
	}
}

// TestCheckQubits_Errors covers the ErrCheckOutOfRange paths.
func TestCheckQubits_Errors(t *testing.T) {
	code := buildRep3(t)

	for _, check := range []int{-1, code.NumXChecks} {
		_, err := code.XCheckQubits(check)
		assert.ErrorIs(t, err, hgp.ErrCheckOutOfRange, "XCheckQubits(%d)", check)
	}
	for _, check := range []int{-2, code.NumZChecks + 1} {
		_, err := code.ZCheckQubits(check)
		assert.ErrorIs(t, err, hgp.ErrCheckOutOfRange, "ZCheckQubits(%d)", check)
	}
}
