// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

// A Value is the tri-state level carried by a Signal.
//
// The zero value is Unknown: a signal that no gate evaluation has
// reached yet reads as Unknown, never as a default 0 or 1.
//
type Value uint8

// Signal levels.
//
const (
	Unknown Value = iota
	Lo
	Hi
)

func (v Value) String() string {
	switch v {
	case Lo:
		return "0"
	case Hi:
		return "1"
	}
	return "X"
}

// FromBool converts a Go bool to a known Value.
//
func FromBool(b bool) Value {
	if b {
		return Hi
	}
	return Lo
}

// Bool converts v to a Go bool. known is false if v is Unknown, in
// which case b is meaningless.
//
func (v Value) Bool() (b, known bool) {
	return v == Hi, v != Unknown
}

// And returns the ternary AND of v and w: a Lo input forces Lo, then
// Unknown propagates.
//
func (v Value) And(w Value) Value {
	if v == Lo || w == Lo {
		return Lo
	}
	if v == Unknown || w == Unknown {
		return Unknown
	}
	return Hi
}

// Or returns the ternary OR of v and w: a Hi input forces Hi, then
// Unknown propagates.
//
func (v Value) Or(w Value) Value {
	if v == Hi || w == Hi {
		return Hi
	}
	if v == Unknown || w == Unknown {
		return Unknown
	}
	return Lo
}

// Xor returns the ternary XOR of v and w: any Unknown input yields
// Unknown, otherwise the parity of Hi inputs.
//
func (v Value) Xor(w Value) Value {
	if v == Unknown || w == Unknown {
		return Unknown
	}
	if v != w {
		return Hi
	}
	return Lo
}

// Not returns the ternary complement of v. Unknown maps to Unknown.
//
func (v Value) Not() Value {
	switch v {
	case Lo:
		return Hi
	case Hi:
		return Lo
	}
	return Unknown
}
