// Package hgp: the hypergraph-product constructor.
//
// Contract:
//   - Construct is pure: a failure leaves no partially-built record.
//   - Only sentinel errors are returned, wrapped with stage context.
//   - No operation here panics on user-triggered conditions.
package hgp

import (
	"fmt"

	"github.com/yezhuoyang/HGPCode/classical"
	"github.com/yezhuoyang/HGPCode/gf2"
)

// Option customizes Construct.
type Option func(*config)

type config struct {
	rankCheck bool
}

// WithRankCheck makes Construct verify that both parity-check matrices
// have full row rank over GF(2), failing with ErrRankDeficient otherwise.
// Off by default: k_i = n_i − r_i is then reported as-is, matching the
// documented caveat.
func WithRankCheck() Option {
	return func(c *config) {
		c.rankCheck = true
	}
}

// Construct builds the hypergraph product of two classical codes:
//
//	HX = [ H1 ⊗ I_n2 | I_r1 ⊗ H2ᵀ ]
//	HZ = [ I_n1 ⊗ H2  | H1ᵀ ⊗ I_r2 ]
//
// The left blocks act on the n1×n2 data-qubit grid (row-major), the right
// blocks on the r1×r2 check-qubit grid. The transpose in each right block
// pairs a code with its transpose code on the complementary tensor factor,
// which is what forces HX·HZᵀ ≡ 0 (mod 2).
//
// Stage 1 (Validate): nil checks, optional rank verification.
// Stage 2 (Assemble): Kronecker blocks, then horizontal concatenation.
// Stage 3 (Finalize): populate the immutable Code record.
//
// Complexity: O(N²) time and memory, N = n1·n2 + r1·r2.
func Construct(c1, c2 *classical.Code, opts ...Option) (*Code, error) {
	if c1 == nil || c2 == nil {
		return nil, fmt.Errorf("Construct: %w", ErrNilCode)
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rankCheck {
		if !gf2.HasFullRowRank(c1.H()) {
			return nil, fmt.Errorf("Construct: H1: %w", ErrRankDeficient)
		}
		if !gf2.HasFullRowRank(c2.H()) {
			return nil, fmt.Errorf("Construct: H2: %w", ErrRankDeficient)
		}
	}

	h1, h2 := c1.H(), c2.H()
	n1, r1 := c1.N(), c1.R()
	n2, r2 := c2.N(), c2.R()

	// Identity factors for the four Kronecker blocks.
	iN1, err := gf2.Identity(n1)
	if err != nil {
		return nil, fmt.Errorf("Construct: I_n1: %w", err)
	}
	iN2, err := gf2.Identity(n2)
	if err != nil {
		return nil, fmt.Errorf("Construct: I_n2: %w", err)
	}
	iR1, err := gf2.Identity(r1)
	if err != nil {
		return nil, fmt.Errorf("Construct: I_r1: %w", err)
	}
	iR2, err := gf2.Identity(r2)
	if err != nil {
		return nil, fmt.Errorf("Construct: I_r2: %w", err)
	}

	// HX = [ H1 ⊗ I_n2 | I_r1 ⊗ H2ᵀ ], shape r1·n2 × N.
	hx, err := gf2.HConcat(gf2.Kronecker(h1, iN2), gf2.Kronecker(iR1, gf2.Transpose(h2)))
	if err != nil {
		// Internal-consistency path: both blocks have r1·n2 rows by
		// construction, so this cannot fire for valid inputs.
		return nil, fmt.Errorf("Construct: HX: %w", err)
	}

	// HZ = [ I_n1 ⊗ H2 | H1ᵀ ⊗ I_r2 ], shape n1·r2 × N.
	hz, err := gf2.HConcat(gf2.Kronecker(iN1, h2), gf2.Kronecker(gf2.Transpose(h1), iR2))
	if err != nil {
		return nil, fmt.Errorf("Construct: HZ: %w", err)
	}

	// Distance metadata: min of the declared classical distances when both
	// are known; otherwise unknown. Never computed.
	d := 0
	if c1.D() > 0 && c2.D() > 0 {
		d = min(c1.D(), c2.D())
	}

	return &Code{
		N1: n1, R1: r1, K1: c1.K(),
		N2: n2, R2: r2, K2: c2.K(),
		N:          n1*n2 + r1*r2,
		K:          c1.K() * c2.K(),
		D:          d,
		HX:         hx,
		HZ:         hz,
		NumXChecks: r1 * n2,
		NumZChecks: n1 * r2,
	}, nil
}

// Validate checks the CSS commutation invariant HX·HZᵀ ≡ 0 (mod 2)
// entrywise. Codes built by Construct always pass; this guards
// hand-assembled or deserialized records.
// Complexity: O(NumXChecks·N·NumZChecks).
func Validate(c *Code) error {
	if c == nil || c.HX == nil || c.HZ == nil {
		return fmt.Errorf("Validate: %w", ErrNilCode)
	}

	prod, err := gf2.Mul(c.HX, gf2.Transpose(c.HZ))
	if err != nil {
		return fmt.Errorf("Validate: %w", err)
	}
	if !gf2.IsZero(prod) {
		return fmt.Errorf("Validate: %w", ErrCommutation)
	}

	return nil
}
