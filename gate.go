// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

// A Kind selects the logic function of a Gate.
//
type Kind uint8

// Gate kinds.
//
const (
	And Kind = iota
	Or
	Xor
	Not
)

func (k Kind) String() string {
	switch k {
	case And:
		return "AND"
	case Or:
		return "OR"
	case Xor:
		return "XOR"
	case Not:
		return "NOT"
	}
	return "?"
}

// A Gate is a primitive logic element with a fixed input list, one
// output signal and a propagation delay. Gates are created with
// Circuit.NewGate and registered with the circuit that owns them; they
// do not own their input and output signals, which are shared
// references into the netlist.
//
type Gate struct {
	kind  Kind
	in    []*Signal
	out   *Signal
	delay int64
	id    int // index in Circuit.gates
}

// Kind returns the gate's logic function.
//
func (g *Gate) Kind() Kind { return g.kind }

// Output returns the signal driven by g.
//
func (g *Gate) Output() *Signal { return g.out }

// Delay returns the gate's propagation delay.
//
func (g *Gate) Delay() int64 { return g.delay }

// eval computes the gate's output level from its current input levels.
// It is pure: the scheduler applies the result at the gate's due time.
func (g *Gate) eval() Value {
	switch g.kind {
	case Not:
		return g.in[0].val.Not()
	case And:
		v := g.in[0].val
		for _, in := range g.in[1:] {
			v = v.And(in.val)
		}
		return v
	case Or:
		v := g.in[0].val
		for _, in := range g.in[1:] {
			v = v.Or(in.val)
		}
		return v
	case Xor:
		v := g.in[0].val
		for _, in := range g.in[1:] {
			v = v.Xor(in.val)
		}
		return v
	}
	panic("gatesim: gate " + g.out.name + " has unknown kind")
}
