package gatelib_test

import (
	"testing"

	gs "github.com/db47h/gatesim"
	gl "github.com/db47h/gatesim/gatelib"
)

func TestFullAdder(t *testing.T) {
	c := gs.New()
	a, b, cin := c.Input("a"), c.Input("b"), c.Input("cin")
	sum, cout := c.Wire("sum"), c.Wire("cout")
	if err := gl.FullAdder(c, "fa", a, b, cin, sum, cout); err != nil {
		t.Fatal(err)
	}
	if err := c.Check(); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 8; i++ {
		va, vb, vc := i>>2&1, i>>1&1, i&1
		c.SetInput(a, gs.FromBool(va != 0))
		c.SetInput(b, gs.FromBool(vb != 0))
		c.SetInput(cin, gs.FromBool(vc != 0))
		c.Run()
		n := va + vb + vc
		if got := sum.Value(); got != gs.FromBool(n&1 != 0) {
			t.Errorf("a=%d b=%d cin=%d: sum = %v, want %d", va, vb, vc, got, n&1)
		}
		if got := cout.Value(); got != gs.FromBool(n > 1) {
			t.Errorf("a=%d b=%d cin=%d: cout = %v, want %d", va, vb, vc, got, n>>1)
		}
	}
}

// With cin still Unknown the sum is Unknown, but the carry is already
// decided when both operand bits agree.
func TestFullAdder_unknownCarry(t *testing.T) {
	c := gs.New()
	a, b, cin := c.Input("a"), c.Input("b"), c.Input("cin")
	sum, cout := c.Wire("sum"), c.Wire("cout")
	if err := gl.FullAdder(c, "fa", a, b, cin, sum, cout); err != nil {
		t.Fatal(err)
	}
	c.SetInput(a, gs.Hi)
	c.SetInput(b, gs.Hi)
	c.Run()
	if got := sum.Value(); got != gs.Unknown {
		t.Errorf("sum = %v, want X", got)
	}
	if got := cout.Value(); got != gs.Hi {
		t.Errorf("cout = %v, want 1", got)
	}
}
