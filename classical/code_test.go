package classical_test

import (
	"errors"
	"testing"

	"github.com/yezhuoyang/HGPCode/classical"
	"github.com/yezhuoyang/HGPCode/gf2"
)

// TestNew_NilMatrix verifies the defensive nil check.
func TestNew_NilMatrix(t *testing.T) {
	if _, err := classical.New(nil); !errors.Is(err, classical.ErrNilMatrix) {
		t.Errorf("New(nil) error = %v; want ErrNilMatrix", err)
	}
}

// TestNew_Parameters checks N/R/K derivation from the matrix shape.
func TestNew_Parameters(t *testing.T) {
	h, err := gf2.Parse("1,1,0;0,1,1")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	c, err := classical.New(h)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	if c.N() != 3 || c.R() != 2 || c.K() != 1 {
		t.Errorf("parameters = [n=%d r=%d k=%d]; want [3 2 1]", c.N(), c.R(), c.K())
	}
	if c.D() != 0 {
		t.Errorf("D() = %d without declaration; want 0", c.D())
	}
	if got := c.String(); got != "[3,1,?]" {
		t.Errorf("String() = %q; want \"[3,1,?]\"", got)
	}
}

// TestNew_DeepCopies ensures the record is insulated from later mutation
// of the argument matrix.
func TestNew_DeepCopies(t *testing.T) {
	h, _ := gf2.Parse("1,1,0;0,1,1")
	c, err := classical.New(h)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	_ = h.Set(0, 0, 0)
	got, _ := c.H().At(0, 0)
	if got != 1 {
		t.Error("mutating the input matrix reached the Code record")
	}
}

// TestWithDistance covers declaration and the panic contract on bad input.
func TestWithDistance(t *testing.T) {
	h, _ := gf2.Parse("1,1,0;0,1,1")
	c, err := classical.New(h, classical.WithDistance(3))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if c.D() != 3 {
		t.Errorf("D() = %d; want 3", c.D())
	}
	if got := c.String(); got != "[3,1,3]" {
		t.Errorf("String() = %q; want \"[3,1,3]\"", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("WithDistance(0) did not panic")
		}
	}()
	_ = classical.WithDistance(0)
}
