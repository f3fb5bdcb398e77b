// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

import "container/heap"

// An event schedules the re-evaluation of a gate at a point in
// simulation time. Events at the same time are processed in enqueue
// order, which makes a run fully deterministic.
type event struct {
	time int64
	seq  uint64
	gate *Gate
}

type eventQueue []event

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	if q[i].time != q[j].time {
		return q[i].time < q[j].time
	}
	return q[i].seq < q[j].seq
}

func (q eventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *eventQueue) Push(x interface{}) { *q = append(*q, x.(event)) }

func (q *eventQueue) Pop() interface{} {
	old := *q
	n := len(old)
	ev := old[n-1]
	*q = old[:n-1]
	return ev
}

// schedule enqueues gate g for evaluation at time t. A gate not
// registered with this circuit cannot be reached from a correctly built
// netlist, so this is a fatal invariant violation, not an error.
func (c *Circuit) schedule(g *Gate, t int64) {
	if g.id < 0 || g.id >= len(c.gates) || c.gates[g.id] != g {
		panic("gatesim: scheduling a gate not registered with this circuit")
	}
	c.seq++
	heap.Push(&c.queue, event{time: t, seq: c.seq, gate: g})
}

// SetInput sets the level of the primary input s at the current
// simulation time and schedules every gate reading s for immediate
// evaluation. It panics if s is not a primary input: internal signals
// change only through gate evaluation.
//
func (c *Circuit) SetInput(s *Signal, v Value) {
	if !s.input {
		panic("gatesim: SetInput on non-input signal " + s.name)
	}
	if s.val != v {
		s.apply(v, c.now)
	}
	for _, g := range s.fanout {
		c.schedule(g, c.now)
	}
}

// Run drains the event queue until quiescence. Each event evaluates its
// gate with the input levels current at the event time; if the computed
// level differs from the output's current level, the output settles to
// it and every gate g in the output's fanout is scheduled at the event
// time plus g's own delay. Run returns the number of settle events,
// i.e. evaluations that actually changed a signal.
//
func (c *Circuit) Run() int {
	settles := 0
	for c.queue.Len() > 0 {
		ev := heap.Pop(&c.queue).(event)
		c.now = ev.time
		g := ev.gate
		v := g.eval()
		if v == g.out.val {
			continue
		}
		g.out.apply(v, ev.time)
		settles++
		for _, dep := range g.out.fanout {
			c.schedule(dep, ev.time+dep.delay)
		}
	}
	return settles
}

// Now returns the current simulation time: the time of the last
// processed event, or of the last SetInput if no event ran since.
//
func (c *Circuit) Now() int64 { return c.now }

// Quiescent reports whether the event queue is empty. Output levels are
// only meaningful at quiescence.
//
func (c *Circuit) Quiescent() bool { return c.queue.Len() == 0 }
