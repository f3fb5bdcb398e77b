// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatelib

import (
	"github.com/db47h/gatesim"
	"github.com/pkg/errors"
)

// FullAdder wires a 1-bit full adder into c under the given instance
// name.
//
//	Inputs: a, b, cin
//	Outputs: sum, cout
//	Function: sum = a xor b xor cin
//	          cout = a&b | a&cin | b&cin
//
// The adder is built from 2 XOR, 3 AND and one 3-input OR gate.
//
func FullAdder(c *gatesim.Circuit, name string, a, b, cin, sum, cout *gatesim.Signal) error {
	axb := c.Wire(name + ".axb")
	ab := c.Wire(name + ".ab")
	ac := c.Wire(name + ".ac")
	bc := c.Wire(name + ".bc")
	if _, err := c.XorGate(DelayXor, axb, a, b); err != nil {
		return errors.Wrap(err, name)
	}
	if _, err := c.XorGate(DelayXor, sum, axb, cin); err != nil {
		return errors.Wrap(err, name)
	}
	if _, err := c.AndGate(DelayAnd, ab, a, b); err != nil {
		return errors.Wrap(err, name)
	}
	if _, err := c.AndGate(DelayAnd, ac, a, cin); err != nil {
		return errors.Wrap(err, name)
	}
	if _, err := c.AndGate(DelayAnd, bc, b, cin); err != nil {
		return errors.Wrap(err, name)
	}
	if _, err := c.OrGate(DelayOr, cout, ab, ac, bc); err != nil {
		return errors.Wrap(err, name)
	}
	return nil
}
