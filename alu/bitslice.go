// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package alu

import (
	"strconv"

	"github.com/db47h/gatesim"
	"github.com/db47h/gatesim/gatelib"
)

// A BitSlice is one column of the ALU. It computes the AND and OR of
// its operand bits, conditions operand b on op[2] (unmodified for
// addition, complemented for subtraction), runs a full adder over a,
// the conditioned operand and the carry-in, and selects the column
// result on op[1:0]:
//
//	op[1:0] = 00	AND
//	op[1:0] = 01	OR
//	op[1:0] = 10	sum/difference bit
//	op[1:0] = 11	the less input
//
type BitSlice struct {
	Out  *gatesim.Signal // selected column result
	Set  *gatesim.Signal // raw sum bit, the less-than candidate
	Cout *gatesim.Signal // carry out, feeds the next slice's carry in
}

// NewBitSlice wires ALU column idx into c. a and b are the operand
// bits, cin the carry in, less the externally routed less-than bit and
// op the 3 opcode bits, low bit first.
//
func NewBitSlice(c *gatesim.Circuit, idx int, a, b, cin, less *gatesim.Signal, op [3]*gatesim.Signal) (*BitSlice, error) {
	n := "slice" + strconv.Itoa(idx)
	andOut := c.Wire(n + ".and")
	orOut := c.Wire(n + ".or")
	notB := c.Wire(n + ".nb")
	bSel := c.Wire(n + ".bsel")
	set := c.Wire(n + ".set")
	cout := c.Wire(n + ".cout")
	out := c.Wire(n + ".out")

	if _, err := c.AndGate(gatelib.DelayAnd, andOut, a, b); err != nil {
		return nil, err
	}
	if _, err := c.OrGate(gatelib.DelayOr, orOut, a, b); err != nil {
		return nil, err
	}
	if _, err := c.NotGate(gatelib.DelayNot, notB, b); err != nil {
		return nil, err
	}
	if err := gatelib.Mux2(c, n+".bmux", b, notB, op[2], bSel); err != nil {
		return nil, err
	}
	if err := gatelib.FullAdder(c, n+".add", a, bSel, cin, set, cout); err != nil {
		return nil, err
	}
	if err := gatelib.Mux4(c, n+".omux", andOut, orOut, set, less, op[0], op[1], out); err != nil {
		return nil, err
	}
	return &BitSlice{Out: out, Set: set, Cout: cout}, nil
}
