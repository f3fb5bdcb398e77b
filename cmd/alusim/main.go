// Command alusim is a stimulus/monitor harness for the gatesim 32-bit
// ALU. It drives random operand vectors through the ALU netlist,
// checks the settled outputs against a plain-integer reference model,
// and reports timing statistics.
//
// The harness is a driver external to the simulation core: it only ever
// writes primary inputs and reads settled outputs.
package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/db47h/gatesim"
	"github.com/db47h/gatesim/alu"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var opNames = map[string]uint8{
	"and": alu.OpAnd,
	"or":  alu.OpOr,
	"add": alu.OpAdd,
	"sub": alu.OpSub,
	"slt": alu.OpSlt,
}

var (
	vectors int
	seed    int64
	opName  string
	trace   bool
)

var rootCmd = &cobra.Command{
	Use:          "alusim",
	Short:        "drive random vectors through the gate-level 32-bit ALU",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().IntVarP(&vectors, "vectors", "n", 1000, "number of random vectors per opcode")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 seeds from the clock)")
	rootCmd.Flags().StringVar(&opName, "op", "", "restrict to one opcode (and, or, add, sub, slt)")
	rootCmd.Flags().BoolVar(&trace, "trace", false, "log every flag settlement")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// reference is the plain-integer model of the ALU netlist, including
// the behavior of the unused opcode encodings.
func reference(a, b uint32, op uint8) alu.Result {
	bc := b
	if op&4 != 0 {
		bc = ^b
	}
	s64 := uint64(a) + uint64(bc) + uint64(op>>2&1)
	sum := uint32(s64)
	ovf := ((a^sum)&(bc^sum))>>31 != 0
	slt := ovf != (sum>>31 != 0)

	var out uint32
	switch op & 3 {
	case 0:
		out = a & b
	case 1:
		out = a | b
	case 2:
		out = sum
	case 3:
		if slt {
			out = 1
		}
	}
	return alu.Result{
		Out:      out,
		Zero:     gatesim.FromBool(out == 0),
		Overflow: gatesim.FromBool(ovf),
		Cout:     gatesim.FromBool(s64>>32 != 0),
	}
}

func run(cmd *cobra.Command, args []string) error {
	log := logrus.New()
	if trace {
		log.SetLevel(logrus.DebugLevel)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	u, err := alu.New()
	if err != nil {
		return errors.Wrap(err, "building ALU netlist")
	}
	log.WithFields(logrus.Fields{"gates": u.Circuit().Size(), "seed": seed}).
		Info("netlist built")

	if trace {
		for name, s := range map[string]*gatesim.Signal{
			"zero": u.Zero, "overflow": u.Overflow, "cout": u.Cout,
		} {
			name := name
			u.Circuit().Probe(s, func(_ *gatesim.Signal, v gatesim.Value, at int64) {
				log.WithFields(logrus.Fields{"signal": name, "value": v.String(), "t": at}).
					Debug("settle")
			})
		}
	}

	var opcodes []uint8
	if opName != "" {
		op, ok := opNames[opName]
		if !ok {
			return errors.Errorf("unknown opcode %q", opName)
		}
		opcodes = []uint8{op}
	} else {
		opcodes = []uint8{alu.OpAnd, alu.OpOr, alu.OpAdd, alu.OpSub, alu.OpSlt}
	}

	start := time.Now()
	var settles, mismatches int
	for _, op := range opcodes {
		for i := 0; i < vectors; i++ {
			a, b := rng.Uint32(), rng.Uint32()
			u.SetInputs(a, b, op)
			settles += u.Settle()
			got, known := u.Read()
			want := reference(a, b, op)
			if !known || got != want {
				mismatches++
				log.WithFields(logrus.Fields{
					"a": a, "b": b, "op": op,
					"got": got, "want": want, "known": known,
				}).Error("output mismatch")
			}
		}
	}
	elapsed := time.Since(start)
	log.WithFields(logrus.Fields{
		"vectors":  vectors * len(opcodes),
		"settles":  settles,
		"simTime":  u.Circuit().Now(),
		"elapsed":  elapsed,
		"mismatch": mismatches,
	}).Info("done")
	if mismatches > 0 {
		return errors.Errorf("%d mismatches against reference model", mismatches)
	}
	return nil
}
