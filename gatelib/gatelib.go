// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package gatelib provides a library of reusable combinational parts
// for gatesim.
//
// Parts are plain wiring functions: they allocate their internal wires
// in the caller's circuit and connect gates between the signal handles
// they are given. A part has no behavior of its own beyond the gates it
// wires.
//
package gatelib

// Default gate propagation delays, in simulation time units. Parts in
// this package wire their gates with these; callers wiring their own
// gates are free to pick others.
//
const (
	DelayNot int64 = 2
	DelayAnd int64 = 3
	DelayXor int64 = 4
	DelayOr  int64 = 5
)
