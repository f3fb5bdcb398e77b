package gatelib_test

import (
	"strings"
	"testing"

	gs "github.com/db47h/gatesim"
	gl "github.com/db47h/gatesim/gatelib"
)

func TestMux2(t *testing.T) {
	c := gs.New()
	d0, d1, sel := c.Input("d0"), c.Input("d1"), c.Input("sel")
	out := c.Wire("out")
	if err := gl.Mux2(c, "mux", d0, d1, sel, out); err != nil {
		t.Fatal(err)
	}

	td := []struct {
		d0, d1, sel, want gs.Value
	}{
		{gs.Lo, gs.Lo, gs.Lo, gs.Lo},
		{gs.Lo, gs.Hi, gs.Lo, gs.Lo},
		{gs.Hi, gs.Lo, gs.Lo, gs.Hi},
		{gs.Hi, gs.Hi, gs.Lo, gs.Hi},
		{gs.Lo, gs.Lo, gs.Hi, gs.Lo},
		{gs.Lo, gs.Hi, gs.Hi, gs.Hi},
		{gs.Hi, gs.Lo, gs.Hi, gs.Lo},
		{gs.Hi, gs.Hi, gs.Hi, gs.Hi},
		// an Unknown select is not special-cased away: it leaks
		// through unless the AND/OR rules absorb it
		{gs.Lo, gs.Lo, gs.Unknown, gs.Lo},
		{gs.Hi, gs.Hi, gs.Unknown, gs.Unknown},
		{gs.Hi, gs.Lo, gs.Unknown, gs.Unknown},
	}
	for _, d := range td {
		c.SetInput(d0, d.d0)
		c.SetInput(d1, d.d1)
		c.SetInput(sel, d.sel)
		c.Run()
		if got := out.Value(); got != d.want {
			t.Errorf("mux2(%v, %v, sel=%v) = %v, want %v", d.d0, d.d1, d.sel, got, d.want)
		}
	}
}

func TestMux4(t *testing.T) {
	c := gs.New()
	var data [4]*gs.Signal
	for i := range data {
		data[i] = c.Input("d" + string(rune('0'+i)))
	}
	sel0, sel1 := c.Input("sel0"), c.Input("sel1")
	out := c.Wire("out")
	if err := gl.Mux4(c, "mux", data[0], data[1], data[2], data[3], sel0, sel1, out); err != nil {
		t.Fatal(err)
	}

	// drive a one-hot pattern and check that each select picks its line
	for hot := 0; hot < 4; hot++ {
		for _, s := range data {
			c.SetInput(s, gs.Lo)
		}
		c.SetInput(data[hot], gs.Hi)
		for sel := 0; sel < 4; sel++ {
			c.SetInput(sel0, gs.FromBool(sel&1 != 0))
			c.SetInput(sel1, gs.FromBool(sel&2 != 0))
			c.Run()
			want := gs.FromBool(sel == hot)
			if got := out.Value(); got != want {
				t.Errorf("hot=%d sel=%d: out = %v, want %v", hot, sel, got, want)
			}
		}
	}
}

func TestOrTree(t *testing.T) {
	for _, width := range []int{1, 2, 3, 5, 8, 32} {
		c := gs.New()
		in := c.InputBus("in", width)
		out := c.Wire("out")
		if err := gl.OrTree(c, "or", out, in...); err != nil {
			t.Fatal(err)
		}
		// all low, then exactly one bit high
		c.SetBus(in, 0)
		c.Run()
		if got := out.Value(); got != gs.Lo {
			t.Errorf("width %d: OR(0) = %v", width, got)
		}
		for bit := 0; bit < width; bit++ {
			c.SetBus(in, 1<<uint(bit))
			c.Run()
			if got := out.Value(); got != gs.Hi {
				t.Errorf("width %d: OR(bit %d) = %v", width, bit, got)
			}
		}
	}
}

func TestOrTree_empty(t *testing.T) {
	c := gs.New()
	err := gl.OrTree(c, "or", c.Wire("out"))
	if err == nil || !strings.Contains(err.Error(), "no inputs") {
		t.Fatalf("OrTree() = %v, want no-inputs error", err)
	}
}
