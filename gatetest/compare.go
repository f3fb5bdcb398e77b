// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package gatetest provides utility functions for testing circuits.
//
package gatetest

import (
	"math/rand"
	"testing"

	"github.com/db47h/gatesim"
	"github.com/stretchr/testify/require"
)

// CompareBus drives the primary-input buses of a circuit with n random
// vectors, settles the circuit after each, and checks the output bus
// against the reference function ref, which receives the driven input
// values in bus order.
//
// Widths above 64 bits are not supported; bus values are masked to the
// bus width before driving.
//
func CompareBus(t *testing.T, c *gatesim.Circuit, in [][]*gatesim.Signal, out []*gatesim.Signal, n int, seed int64, ref func(in []uint64) uint64) {
	t.Helper()

	rng := rand.New(rand.NewSource(seed))
	vals := make([]uint64, len(in))
	mask := uint64(1)<<uint(len(out)) - 1

	drive := func() {
		for i, bus := range in {
			c.SetBus(bus, vals[i])
		}
		c.Run()
		require.True(t, c.Quiescent())
		got, known := gatesim.ReadBus(out)
		require.True(t, known, "output bus has Unknown bits for inputs %v", vals)
		require.Equal(t, ref(vals)&mask, got, "inputs %v", vals)
	}

	// corner vectors first: all zeros, all ones.
	drive()
	for i, bus := range in {
		vals[i] = 1<<uint(len(bus)) - 1
	}
	drive()

	for i := 0; i < n; i++ {
		for j, bus := range in {
			vals[j] = rng.Uint64() & (1<<uint(len(bus)) - 1)
		}
		drive()
	}
}
