// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package alu assembles a 32-bit arithmetic/logic unit from gatesim
// primitives: 32 chained bit slices, an OR reduction tree for the zero
// flag, and the overflow/set-less-than correction network.
//
package alu

import (
	"github.com/db47h/gatesim"
	"github.com/db47h/gatesim/gatelib"
	"github.com/pkg/errors"
)

// Bits is the ALU operand width.
const Bits = 32

// Opcodes. The three op bits drive two independent selects: op[2]
// conditions operand b for the adder chain (and seeds its carry in),
// op[1:0] selects the per-bit result. All 8 encodings are structurally
// defined; the unused ones simply combine the two selects (100 behaves
// as AND, 101 as OR, 011 routes the sign of a+b).
//
const (
	OpAnd uint8 = 0 // 000
	OpOr  uint8 = 1 // 001
	OpAdd uint8 = 2 // 010
	OpSub uint8 = 6 // 110
	OpSlt uint8 = 7 // 111
)

// An ALU is a settled-signal view over a 32-bit ALU netlist. It owns
// the circuit the netlist was built in.
//
// The driver workflow is SetInputs, Settle, Read: outputs are only
// meaningful once the circuit is quiescent.
//
type ALU struct {
	A  []*gatesim.Signal // operand a, primary inputs, low bit first
	B  []*gatesim.Signal // operand b, primary inputs, low bit first
	Op []*gatesim.Signal // opcode, primary inputs, low bit first

	Out      []*gatesim.Signal // per-bit results, low bit first
	Zero     *gatesim.Signal   // 1 iff every bit of Out is 0
	Overflow *gatesim.Signal   // cout[30] xor cout[31]
	Cout     *gatesim.Signal   // bit 31 carry out

	c      *gatesim.Circuit
	slices [Bits]*BitSlice
}

// New builds the ALU netlist in a fresh circuit.
//
// Bit i's carry in is bit i-1's carry out; bit 0's carry in is op[2],
// so subtraction seeds the ripple chain with the two's-complement +1.
// The set-less-than bit (overflow-corrected sign of a-b) is routed back
// as the less input of bit 0 only; the less inputs of bits 1..31 are
// tied to the constant low rail.
//
func New() (*ALU, error) {
	c := gatesim.New()
	u := &ALU{
		A:   c.InputBus("a", Bits),
		B:   c.InputBus("b", Bits),
		Op:  c.InputBus("op", 3),
		Out: make([]*gatesim.Signal, Bits),
		c:   c,
	}
	var op [3]*gatesim.Signal
	copy(op[:], u.Op)

	slt := c.Wire("slt")
	cin := op[2]
	for i := 0; i < Bits; i++ {
		less := c.Low()
		if i == 0 {
			less = slt
		}
		s, err := NewBitSlice(c, i, u.A[i], u.B[i], cin, less, op)
		if err != nil {
			return nil, errors.Wrapf(err, "alu: bit %d", i)
		}
		u.slices[i] = s
		u.Out[i] = s.Out
		cin = s.Cout
	}

	// zero = !(out[0] | out[1] | ... | out[31])
	orAll := c.Wire("orAll")
	u.Zero = c.Wire("zero")
	if err := gatelib.OrTree(c, "orAll", orAll, u.Out...); err != nil {
		return nil, errors.Wrap(err, "alu: zero flag")
	}
	if _, err := c.NotGate(gatelib.DelayNot, u.Zero, orAll); err != nil {
		return nil, errors.Wrap(err, "alu: zero flag")
	}

	// overflow = cout[30] ^ cout[31], the usual two's-complement
	// overflow test. The flag mirrors the adder chain for every opcode;
	// it is only meaningful for add/sub/slt.
	u.Overflow = c.Wire("overflow")
	if _, err := c.XorGate(gatelib.DelayXor, u.Overflow, u.slices[Bits-2].Cout, u.slices[Bits-1].Cout); err != nil {
		return nil, errors.Wrap(err, "alu: overflow flag")
	}

	// slt = overflow ^ set[31]: the sign of a-b corrected for overflow,
	// broadcast back into bit 0's result mux.
	if _, err := c.XorGate(gatelib.DelayXor, slt, u.Overflow, u.slices[Bits-1].Set); err != nil {
		return nil, errors.Wrap(err, "alu: slt")
	}

	u.Cout = u.slices[Bits-1].Cout
	if err := c.Check(); err != nil {
		return nil, errors.Wrap(err, "alu")
	}
	return u, nil
}

// Circuit returns the circuit the ALU netlist lives in.
//
func (u *ALU) Circuit() *gatesim.Circuit { return u.c }

// SetInputs drives all primary inputs at the current simulation time
// and triggers propagation. It does not run the simulation: call
// Settle.
//
func (u *ALU) SetInputs(a, b uint32, op uint8) {
	u.c.SetBus(u.A, uint64(a))
	u.c.SetBus(u.B, uint64(b))
	u.c.SetBus(u.Op, uint64(op&7))
}

// Settle drains the event queue and returns the number of settle
// events. It returns 0 when called again with no new inputs.
//
func (u *ALU) Settle() int { return u.c.Run() }

// A Result holds the ALU outputs read at quiescence. The flags keep
// their tri-state levels: a flag fed from an Unknown region of the
// netlist reads Unknown rather than defaulting to 0.
//
type Result struct {
	Out      uint32
	Zero     gatesim.Value
	Overflow gatesim.Value
	Cout     gatesim.Value
}

// Read returns the current outputs. known is false while any bit of Out
// is still Unknown; Out then holds the known bits only.
//
func (u *ALU) Read() (r Result, known bool) {
	v, known := gatesim.ReadBus(u.Out)
	return Result{
		Out:      uint32(v),
		Zero:     u.Zero.Value(),
		Overflow: u.Overflow.Value(),
		Cout:     u.Cout.Value(),
	}, known
}
