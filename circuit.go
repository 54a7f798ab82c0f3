package qrect

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// Gate types used by the SWAP-test circuit.
const (
	GatePrep    = "PREP"    // install the prepared superposition, spans all wires
	GateH       = "H"       // Hadamard
	GateCSWAP   = "CSWAP"   // controlled swap of Target and Target2
	GateMeasure = "MEASURE" // terminal readout
)

// Gate represents one operation placed on the circuit.
type Gate struct {
	Type    string
	Target  int // primary wire, -1 for gates spanning all wires
	Target2 int // second swap wire for CSWAP, -1 otherwise
	Control int // control wire for CSWAP, -1 otherwise
	Step    int // position in the circuit timeline
}

// Circuit holds the gate schedule for one oracle invocation, plus the
// superposition the PREP column installs.
type Circuit struct {
	NumQubits int
	Gates     []Gate
	MaxSteps  int
	initial   []Complex
}

// AddGate appends a single-wire gate to the circuit.
func (c *Circuit) AddGate(gateType string, target, step int) {
	c.Gates = append(c.Gates, Gate{
		Type:    gateType,
		Target:  target,
		Target2: -1,
		Control: -1,
		Step:    step,
	})
	if step >= c.MaxSteps {
		c.MaxSteps = step + 1
	}
}

// AddCSWAP appends a controlled swap of wires a and b to the circuit.
func (c *Circuit) AddCSWAP(control, a, b, step int) {
	c.Gates = append(c.Gates, Gate{
		Type:    GateCSWAP,
		Target:  a,
		Target2: b,
		Control: control,
		Step:    step,
	})
	if step >= c.MaxSteps {
		c.MaxSteps = step + 1
	}
}

// AddPrep appends the state-preparation column installing the given amplitudes.
func (c *Circuit) AddPrep(amps []Complex, step int) {
	c.initial = amps
	c.Gates = append(c.Gates, Gate{
		Type:    GatePrep,
		Target:  -1, // spans all wires
		Target2: -1,
		Control: -1,
		Step:    step,
	})
	if step >= c.MaxSteps {
		c.MaxSteps = step + 1
	}
}

// Run executes the circuit on a fresh register and returns the final state.
func (c *Circuit) Run() (*StateVector, error) {
	state := NewStateVector(c.NumQubits)

	gates := slices.Clone(c.Gates)
	slices.SortStableFunc(gates, func(a, b Gate) int { return a.Step - b.Step })

	for _, gate := range gates {
		switch gate.Type {
		case GatePrep:
			if err := state.Prepare(c.initial); err != nil {
				return nil, err
			}
		case GateH:
			state.ApplyH(gate.Target)
		case GateCSWAP:
			state.ApplyCSWAP(gate.Control, gate.Target, gate.Target2)
		case GateMeasure:
			// Readout happens on the returned state.
		default:
			return nil, errors.Wrapf(ErrSimulation, "unknown gate type %q", gate.Type)
		}
	}

	return state, nil
}

// ToQASM generates OPENQASM 2.0 output from the circuit. The prepared
// superposition has no gate-level representation and is emitted as a
// comment; the controlled swap is expanded into its cx/ccx decomposition
// so the output does not depend on qelib1's composite cswap.
func (c *Circuit) ToQASM() string {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n", c.NumQubits)
	sb.WriteString("creg c[1];\n\n")

	gates := slices.Clone(c.Gates)
	slices.SortStableFunc(gates, func(a, b Gate) int { return a.Step - b.Step })

	for _, gate := range gates {
		switch gate.Type {
		case GatePrep:
			populated := 0
			for _, amp := range c.initial {
				if amp != 0 {
					populated++
				}
			}
			fmt.Fprintf(&sb, "// prepare equal superposition over %d basis states\n", populated)
		case GateH:
			fmt.Fprintf(&sb, "h q[%d];\n", gate.Target)
		case GateCSWAP:
			fmt.Fprintf(&sb, "// cswap q[%d], q[%d], q[%d]\n", gate.Control, gate.Target, gate.Target2)
			fmt.Fprintf(&sb, "cx q[%d], q[%d];\n", gate.Target2, gate.Target)
			fmt.Fprintf(&sb, "ccx q[%d], q[%d], q[%d];\n", gate.Control, gate.Target, gate.Target2)
			fmt.Fprintf(&sb, "cx q[%d], q[%d];\n", gate.Target2, gate.Target)
		case GateMeasure:
			fmt.Fprintf(&sb, "measure q[%d] -> c[0];\n", gate.Target)
		}
	}

	return sb.String()
}
