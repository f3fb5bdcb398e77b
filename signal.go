// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

// A ProbeFn observes signal changes. See Circuit.Probe.
//
type ProbeFn func(s *Signal, v Value, at int64)

// A Signal is a single-bit wire in a circuit.
//
// A signal remembers its current level, the simulation time of its last
// level change and the gates that read it. Signals are allocated once,
// when the netlist is built, and persist for the lifetime of the
// circuit; only their level changes. Levels change exclusively through
// scheduler-driven gate evaluation, except for primary inputs, which
// the driver sets through Circuit.SetInput.
//
type Signal struct {
	name    string
	val     Value
	changed int64 // time of the last level change
	fanout  []*Gate
	probes  []ProbeFn
	driver  *Gate // gate driving this signal, nil for inputs and constants
	input   bool
	c       *Circuit
}

// Name returns the name the signal was allocated under.
//
func (s *Signal) Name() string { return s.name }

// Value returns the current level of s.
//
func (s *Signal) Value() Value { return s.val }

// LastChange returns the simulation time at which s last changed level.
// It returns 0 for a signal that never changed.
//
func (s *Signal) LastChange() int64 { return s.changed }

// IsInput reports whether s is a primary input.
//
func (s *Signal) IsInput() bool { return s.input }

// apply records a new level and notifies probes. Scheduling of the
// fanout is the caller's business.
func (s *Signal) apply(v Value, at int64) {
	s.val = v
	s.changed = at
	for _, p := range s.probes {
		p(s, v, at)
	}
}
