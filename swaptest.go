package qrect

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Tolerance is the absolute tolerance used when comparing simulated
// probabilities against exact values.
const Tolerance = 1e-9

// DefaultMaxWires bounds the dense statevector simulation. A register of
// 21 wires covers side lengths up to 31; wider oracles fall back to the
// closed-form overlap, which is exact for this circuit family.
const DefaultMaxWires = 21

// maxDenseWires is the hard cap on explicit circuit construction: past it
// the amplitude vector alone would exceed a quarter gigabyte.
const maxDenseWires = 24

// IsClose reports whether two probabilities agree within Tolerance.
func IsClose(a, b float64) bool {
	return math.Abs(a-b) <= Tolerance
}

// Pair is an ordered pair of equal-width binary strings standing for the
// unordered set {U, V}. The oracle is insensitive to the order of U and V.
type Pair struct {
	U, V string
}

// SimContext configures one oracle invocation. It replaces any notion of a
// process-wide quantum device: every call builds its register from scratch.
type SimContext struct {
	// MaxWires is the widest register simulated with a dense statevector.
	// Wider registers use the closed-form SWAP-test overlap instead.
	MaxWires int

	// Logger receives oracle diagnostics. Nil disables logging.
	Logger *zap.Logger
}

func NewSimContext() *SimContext {
	return &SimContext{MaxWires: DefaultMaxWires}
}

func (ctx *SimContext) logger() *zap.Logger {
	if ctx.Logger == nil {
		return zap.NewNop()
	}
	return ctx.Logger
}

// jointStates returns the distinct joint basis strings of the SWAP-test
// superposition: '0' + c1 + c2 for each reordering c1 of pair1 and c2 of
// pair2. Duplicates collapse when a pair holds two equal strings.
func jointStates(pair1, pair2 Pair) []string {
	combos1 := []string{pair1.U + pair1.V, pair1.V + pair1.U}
	combos2 := []string{pair2.U + pair2.V, pair2.V + pair2.U}

	var states []string
	for _, c1 := range combos1 {
		for _, c2 := range combos2 {
			s := "0" + c1 + c2
			if !contains(states, s) {
				states = append(states, s)
			}
		}
	}
	return states
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

// distinct returns the deduplicated reorderings u+v, v+u of one pair.
func distinct(p Pair) []string {
	if p.U == p.V {
		return []string{p.U + p.V}
	}
	return []string{p.U + p.V, p.V + p.U}
}

// validatePairs checks that all four strings are non-empty bit strings of a
// common width and returns that width.
func validatePairs(pair1, pair2 Pair) (int, error) {
	width := len(pair1.U)
	if width == 0 {
		return 0, errors.Wrap(ErrInvalidInput, "empty binary string")
	}
	for _, s := range []string{pair1.U, pair1.V, pair2.U, pair2.V} {
		if len(s) != width {
			return 0, errors.Wrapf(ErrInvalidInput,
				"binary strings have mixed widths %d and %d", width, len(s))
		}
		for _, r := range s {
			if r != '0' && r != '1' {
				return 0, errors.Wrapf(ErrInvalidInput, "%q is not a binary string", s)
			}
		}
	}
	return width, nil
}

// BuildSwapTestCircuit constructs the circuit comparing the superposition
// (|uv> + |vu>) against (|yz> + |zy>): state preparation, a Hadamard on the
// ancilla, one controlled swap per register position, a second Hadamard,
// and a measurement of the ancilla.
func BuildSwapTestCircuit(pair1, pair2 Pair) (*Circuit, error) {
	width, err := validatePairs(pair1, pair2)
	if err != nil {
		return nil, err
	}

	regWidth := 2 * width   // wires per encoded pair
	wires := 1 + 2*regWidth // ancilla + two pair registers
	if wires > maxDenseWires {
		return nil, errors.Wrapf(ErrSimulation,
			"register of %d wires exceeds the %d-wire dense limit", wires, maxDenseWires)
	}

	states := jointStates(pair1, pair2)
	amplitude := complex(1/math.Sqrt(float64(len(states))), 0)

	amps := make([]Complex, 1<<wires)
	for _, s := range states {
		index, err := strconv.ParseInt(s, 2, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrSimulation, "bad basis string %q", s)
		}
		amps[index] = amplitude
	}

	circ := &Circuit{NumQubits: wires}
	circ.AddPrep(amps, 0)
	circ.AddGate(GateH, 0, 1)
	for i := 1; i <= regWidth; i++ {
		circ.AddCSWAP(0, i, i+regWidth, 1+i)
	}
	circ.AddGate(GateH, 0, 2+regWidth)
	circ.AddGate(GateMeasure, 0, 3+regWidth)
	return circ, nil
}

// EqualityProbability runs the SWAP test between the two pair states and
// returns the probability of measuring |0> on the ancilla: 1 when the pairs
// hold the same multiset of values, 0.5 otherwise.
func (ctx *SimContext) EqualityProbability(pair1, pair2 Pair) (float64, error) {
	width, err := validatePairs(pair1, pair2)
	if err != nil {
		return 0, err
	}
	wires := 1 + 4*width

	if wires > ctx.MaxWires {
		p := overlapProbability(pair1, pair2)
		ctx.logger().Debug("swap test (closed form)",
			zap.Int("wires", wires),
			zap.Float64("prob0", p))
		return p, nil
	}

	circ, err := BuildSwapTestCircuit(pair1, pair2)
	if err != nil {
		return 0, err
	}
	state, err := circ.Run()
	if err != nil {
		return 0, err
	}
	p := state.ProbZero(0)
	ctx.logger().Debug("swap test",
		zap.Int("wires", wires),
		zap.Strings("pair1", []string{pair1.U, pair1.V}),
		zap.Strings("pair2", []string{pair2.U, pair2.V}),
		zap.Float64("prob0", p))
	return p, nil
}

// overlapProbability computes P(0) = 1/2 + |<psi1|psi2>|^2 / 2 directly
// from the two pair superpositions. Each pair state is an equal
// superposition over its distinct reorderings, so the overlap is the
// shared-string count over sqrt(k1*k2).
func overlapProbability(pair1, pair2 Pair) float64 {
	s1 := distinct(pair1)
	s2 := distinct(pair2)

	shared := 0
	for _, s := range s1 {
		if contains(s2, s) {
			shared++
		}
	}

	overlap := float64(shared) / math.Sqrt(float64(len(s1)*len(s2)))
	return 0.5 + 0.5*overlap*overlap
}
