package classical

import (
	"errors"
	"fmt"

	"github.com/yezhuoyang/HGPCode/gf2"
)

var (
	// ErrNilMatrix indicates a nil parity-check matrix was passed to New.
	ErrNilMatrix = errors.New("classical: parity-check matrix is nil")

	// ErrTooFewBits indicates a preset was requested below its minimum length.
	ErrTooFewBits = errors.New("classical: code length too small")
)

// Code is a classical binary linear code, represented solely by its
// parity-check matrix. Immutable once constructed.
type Code struct {
	h *gf2.Matrix // r×n parity-check matrix, deep-copied at construction
	d int         // declared minimum distance, 0 = unknown (never computed)
}

// Option customizes a Code during construction.
type Option func(*Code)

// WithDistance declares the code's minimum distance. The value is carried
// as metadata only; no operation verifies or computes it.
// Panics on d < 1 to surface programmer error early (options validate,
// algorithms never panic).
func WithDistance(d int) Option {
	if d < 1 {
		panic("classical: WithDistance requires d >= 1")
	}
	return func(c *Code) {
		c.d = d
	}
}

// New builds a Code from a parity-check matrix, deep-copying it so later
// mutation of the argument cannot reach the record. The matrix is
// re-validated defensively even though gf2 constructors enforce shape:
// a nil matrix fails with ErrNilMatrix.
// Complexity: O(r·n) for the copy.
func New(h *gf2.Matrix, opts ...Option) (*Code, error) {
	if h == nil {
		return nil, ErrNilMatrix
	}
	c := &Code{h: h.Clone()}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// H returns the parity-check matrix. Callers must treat it as read-only;
// the record shares it to avoid copying on every construction.
func (c *Code) H() *gf2.Matrix { return c.h }

// N returns the code length (number of bits).
func (c *Code) N() int { return c.h.Cols() }

// R returns the number of parity checks.
func (c *Code) R() int { return c.h.Rows() }

// K returns the code dimension computed as N − R.
// Correct only when H has full row rank (not verified here).
func (c *Code) K() int { return c.h.Cols() - c.h.Rows() }

// D returns the declared minimum distance, or 0 when unknown.
func (c *Code) D() int { return c.d }

// String renders the classical parameters in [n,k,d] convention,
// with d printed as "?" when undeclared.
func (c *Code) String() string {
	if c.d == 0 {
		return fmt.Sprintf("[%d,%d,?]", c.N(), c.K())
	}

	return fmt.Sprintf("[%d,%d,%d]", c.N(), c.K(), c.d)
}
