// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

import (
	"strconv"

	"github.com/pkg/errors"
)

// A Circuit owns the signals and gates of a netlist and runs the
// discrete-event simulation over them.
//
// A circuit is built by allocating signals with Wire, Input and Bus,
// then wiring gates between them with NewGate. Structural errors
// (wrong arity, unconnected inputs, two gates driving the same signal)
// are reported at construction time; a circuit whose construction
// succeeded cannot fail during simulation.
//
type Circuit struct {
	signals []*Signal
	gates   []*Gate
	low     *Signal

	queue eventQueue
	now   int64
	seq   uint64
}

// New returns an empty circuit. The constant-low rail (see Low) is
// pre-allocated.
//
func New() *Circuit {
	c := &Circuit{}
	c.low = c.Wire("low")
	c.low.val = Lo
	return c
}

// Wire allocates a named internal signal. Its level starts Unknown and
// can only change through gate evaluation.
//
func (c *Circuit) Wire(name string) *Signal {
	s := &Signal{name: name, c: c}
	c.signals = append(c.signals, s)
	return s
}

// Input allocates a named primary input signal, settable by the driver
// through SetInput.
//
func (c *Circuit) Input(name string) *Signal {
	s := c.Wire(name)
	s.input = true
	return s
}

// Bus allocates n internal signals named name[0] .. name[n-1], low bit
// first.
//
func (c *Circuit) Bus(name string, n int) []*Signal {
	b := make([]*Signal, n)
	for i := range b {
		b[i] = c.Wire(busBitName(name, i))
	}
	return b
}

// InputBus allocates n primary input signals named name[0] ..
// name[n-1], low bit first.
//
func (c *Circuit) InputBus(name string, n int) []*Signal {
	b := c.Bus(name, n)
	for _, s := range b {
		s.input = true
	}
	return b
}

func busBitName(name string, i int) string {
	return name + "[" + strconv.Itoa(i) + "]"
}

// Low returns the constant-low rail: a signal that reads 0 forever.
// It has no driver and is not a primary input.
//
func (c *Circuit) Low() *Signal { return c.low }

// Probe registers fn to run whenever s settles to a new level.
//
func (c *Circuit) Probe(s *Signal, fn ProbeFn) {
	s.probes = append(s.probes, fn)
}

// NewGate wires a gate of kind k driving out from ins, with the given
// propagation delay, and registers it with the circuit. NOT takes
// exactly one input; all other kinds take two or more.
//
func (c *Circuit) NewGate(k Kind, delay int64, out *Signal, ins ...*Signal) (*Gate, error) {
	if out == nil {
		return nil, errors.Errorf("%v gate: no output signal", k)
	}
	if out.c != c {
		return nil, errors.Errorf("%v gate: output %s belongs to another circuit", k, out.name)
	}
	if out.input {
		return nil, errors.Errorf("%v gate: output %s is a primary input", k, out.name)
	}
	if out == c.low {
		return nil, errors.Errorf("%v gate: output connected to the constant low rail", k)
	}
	if out.driver != nil {
		return nil, errors.Errorf("%v gate: signal %s already driven by a %v gate", k, out.name, out.driver.kind)
	}
	if delay < 0 {
		return nil, errors.Errorf("%v gate %s: negative delay %d", k, out.name, delay)
	}
	switch {
	case k == Not && len(ins) != 1:
		return nil, errors.Errorf("NOT gate %s: want 1 input, got %d", out.name, len(ins))
	case k != Not && len(ins) < 2:
		return nil, errors.Errorf("%v gate %s: want at least 2 inputs, got %d", k, out.name, len(ins))
	}
	for i, in := range ins {
		if in == nil {
			return nil, errors.Errorf("%v gate %s: input %d not connected", k, out.name, i)
		}
		if in.c != c {
			return nil, errors.Errorf("%v gate %s: input %s belongs to another circuit", k, out.name, in.name)
		}
	}
	g := &Gate{kind: k, in: ins, out: out, delay: delay, id: len(c.gates)}
	c.gates = append(c.gates, g)
	out.driver = g
	for _, in := range ins {
		in.fanout = append(in.fanout, g)
	}
	return g, nil
}

// NotGate wires out = NOT in.
//
func (c *Circuit) NotGate(delay int64, out, in *Signal) (*Gate, error) {
	return c.NewGate(Not, delay, out, in)
}

// AndGate wires out = AND(ins...).
//
func (c *Circuit) AndGate(delay int64, out *Signal, ins ...*Signal) (*Gate, error) {
	return c.NewGate(And, delay, out, ins...)
}

// OrGate wires out = OR(ins...).
//
func (c *Circuit) OrGate(delay int64, out *Signal, ins ...*Signal) (*Gate, error) {
	return c.NewGate(Or, delay, out, ins...)
}

// XorGate wires out = XOR(ins...).
//
func (c *Circuit) XorGate(delay int64, out *Signal, ins ...*Signal) (*Gate, error) {
	return c.NewGate(Xor, delay, out, ins...)
}

// Check verifies that the netlist is structurally complete: every
// signal read by a gate is a primary input, a constant rail, or driven
// by some gate. Wiring functions may legitimately read a signal before
// its driver is wired, so this runs once the netlist is fully built.
//
func (c *Circuit) Check() error {
	for _, s := range c.signals {
		if len(s.fanout) > 0 && s.driver == nil && !s.input && s != c.low {
			return errors.Errorf("signal %s not connected to any gate output", s.name)
		}
	}
	return nil
}

// Size returns the gate count of the circuit.
//
func (c *Circuit) Size() int { return len(c.gates) }

// SetBus drives the primary-input bus b with the low len(b) bits of v,
// low bit first.
//
func (c *Circuit) SetBus(b []*Signal, v uint64) {
	for i, s := range b {
		c.SetInput(s, FromBool(v&(1<<uint(i)) != 0))
	}
}

// ReadBus assembles the levels of b into an integer, low bit first.
// known is false if any bit is Unknown, in which case v holds the known
// bits only.
//
func ReadBus(b []*Signal) (v uint64, known bool) {
	known = true
	for i, s := range b {
		bit, k := s.val.Bool()
		if !k {
			known = false
		}
		if bit {
			v |= 1 << uint(i)
		}
	}
	return v, known
}
