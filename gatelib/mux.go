// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatelib

import (
	"github.com/db47h/gatesim"
	"github.com/pkg/errors"
)

// Mux2 wires a 2-way multiplexer into c under the given instance name.
//
//	Inputs: d0, d1, sel
//	Outputs: out
//	Function: if sel == 0 { out = d0 } else { out = d1 }
//
// Built as (d0 AND NOT sel) OR (d1 AND sel). An Unknown sel yields
// Unknown on out unless both data inputs agree at 0.
//
func Mux2(c *gatesim.Circuit, name string, d0, d1, sel, out *gatesim.Signal) error {
	nsel := c.Wire(name + ".nsel")
	w0 := c.Wire(name + ".w0")
	w1 := c.Wire(name + ".w1")
	if _, err := c.NotGate(DelayNot, nsel, sel); err != nil {
		return errors.Wrap(err, name)
	}
	if _, err := c.AndGate(DelayAnd, w0, d0, nsel); err != nil {
		return errors.Wrap(err, name)
	}
	if _, err := c.AndGate(DelayAnd, w1, d1, sel); err != nil {
		return errors.Wrap(err, name)
	}
	if _, err := c.OrGate(DelayOr, out, w0, w1); err != nil {
		return errors.Wrap(err, name)
	}
	return nil
}

// Mux4 wires a 4-way multiplexer into c as a binary select tree of
// three Mux2 instances: two first-level muxes select within each half
// on sel0, a final mux selects between the half results on sel1.
//
//	Inputs: d0, d1, d2, d3, sel0, sel1
//	Outputs: out
//	Function: out = d[sel1:sel0]
//
func Mux4(c *gatesim.Circuit, name string, d0, d1, d2, d3, sel0, sel1, out *gatesim.Signal) error {
	m0 := c.Wire(name + ".m0")
	m1 := c.Wire(name + ".m1")
	if err := Mux2(c, name+".l0", d0, d1, sel0, m0); err != nil {
		return err
	}
	if err := Mux2(c, name+".l1", d2, d3, sel0, m1); err != nil {
		return err
	}
	return Mux2(c, name+".hi", m0, m1, sel1, out)
}

// OrTree wires a balanced reduction tree of 2-input OR gates computing
// the OR of all ins onto out.
//
//	Inputs: ins[n]
//	Outputs: out
//	Function: out = ins[0] | ins[1] | ... | ins[n-1]
//
func OrTree(c *gatesim.Circuit, name string, out *gatesim.Signal, ins ...*gatesim.Signal) error {
	switch len(ins) {
	case 0:
		return errors.Errorf("%s: OR tree with no inputs", name)
	case 1:
		// degenerate tree: out = in | in
		_, err := c.OrGate(DelayOr, out, ins[0], ins[0])
		return errors.Wrap(err, name)
	case 2:
		_, err := c.OrGate(DelayOr, out, ins[0], ins[1])
		return errors.Wrap(err, name)
	}
	h := len(ins) / 2
	lo := c.Wire(name + ".l")
	hi := c.Wire(name + ".r")
	if err := OrTree(c, name+".l", lo, ins[:h]...); err != nil {
		return err
	}
	if err := OrTree(c, name+".r", hi, ins[h:]...); err != nil {
		return err
	}
	_, err := c.OrGate(DelayOr, out, lo, hi)
	return errors.Wrap(err, name)
}
