package gatesim_test

import (
	"strings"
	"testing"

	gs "github.com/db47h/gatesim"
)

func TestNewGate_errors(t *testing.T) {
	c := gs.New()
	in := c.Input("in")
	w := c.Wire("w")
	if _, err := c.NotGate(1, w, in); err != nil {
		t.Fatal(err)
	}
	other := gs.New()

	td := []struct {
		name string
		fn   func() error
		want string
	}{
		{"no output", func() error {
			_, err := c.NotGate(1, nil, in)
			return err
		}, "no output signal"},
		{"output is input", func() error {
			_, err := c.NotGate(1, in, w)
			return err
		}, "primary input"},
		{"output is low rail", func() error {
			_, err := c.NotGate(1, c.Low(), in)
			return err
		}, "constant low rail"},
		{"double driver", func() error {
			_, err := c.AndGate(1, w, in, in)
			return err
		}, "already driven"},
		{"not arity", func() error {
			_, err := c.NewGate(gs.Not, 1, c.Wire("x"), in, w)
			return err
		}, "want 1 input"},
		{"and arity", func() error {
			_, err := c.AndGate(1, c.Wire("x"), in)
			return err
		}, "at least 2 inputs"},
		{"nil input", func() error {
			_, err := c.OrGate(1, c.Wire("x"), in, nil)
			return err
		}, "not connected"},
		{"negative delay", func() error {
			_, err := c.NotGate(-1, c.Wire("x"), in)
			return err
		}, "negative delay"},
		{"foreign output", func() error {
			_, err := c.NotGate(1, other.Wire("x"), in)
			return err
		}, "another circuit"},
		{"foreign input", func() error {
			_, err := c.NotGate(1, c.Wire("x"), other.Wire("y"))
			return err
		}, "another circuit"},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			err := d.fn()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), d.want) {
				t.Errorf("error %q does not mention %q", err, d.want)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	c := gs.New()
	in := c.Input("in")
	dangling := c.Wire("dangling")
	w := c.Wire("w")
	if _, err := c.AndGate(1, w, in, dangling); err != nil {
		t.Fatal(err)
	}
	err := c.Check()
	if err == nil || !strings.Contains(err.Error(), "dangling") {
		t.Fatalf("Check() = %v, want dangling signal error", err)
	}
	// wiring the driver afterwards fixes it
	if _, err := c.NotGate(1, dangling, in); err != nil {
		t.Fatal(err)
	}
	if err := c.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestSetInput_nonInput(t *testing.T) {
	c := gs.New()
	w := c.Wire("w")
	defer func() {
		if recover() == nil {
			t.Error("SetInput on a non-input signal did not panic")
		}
	}()
	c.SetInput(w, gs.Hi)
}

func TestLowRail(t *testing.T) {
	c := gs.New()
	if v := c.Low().Value(); v != gs.Lo {
		t.Fatalf("low rail reads %v", v)
	}
	if c.Low().IsInput() {
		t.Fatal("low rail is a primary input")
	}
}

func TestBus(t *testing.T) {
	c := gs.New()
	b := c.InputBus("a", 4)
	if len(b) != 4 {
		t.Fatalf("got %d signals", len(b))
	}
	if b[2].Name() != "a[2]" {
		t.Errorf("bit 2 named %q", b[2].Name())
	}
	c.SetBus(b, 0b1010)
	if v, known := gs.ReadBus(b); !known || v != 0b1010 {
		t.Errorf("ReadBus = %x, %v", v, known)
	}
	// SetBus drives exactly len(b) bits, higher value bits are dropped
	c.SetBus(b, 0x1f)
	if v, _ := gs.ReadBus(b); v != 0xf {
		t.Errorf("ReadBus = %x after driving 0x1f", v)
	}
}
