/*
Package gatesim provides a small discrete-event simulator for netlists
of logic primitives (AND, OR, XOR, NOT), using Go as a structural
hardware description language.

Signals are single-bit tri-state wires; gates carry a propagation delay
and are re-evaluated through a time-ordered event queue, so a change on
a signal is not observed by a dependent gate's output before that gate's
delay has elapsed. Netlists are strictly combinational: there is no
clock and no feedback, and a simulation always reaches quiescence.

*/
package gatesim
