package qrect

import (
	"math"
	"math/cmplx"

	"github.com/pkg/errors"
)

// ErrSimulation is returned when a register cannot be driven to a valid
// state, e.g. on a dimension mismatch during state preparation.
var ErrSimulation = errors.New("quantum simulation failed")

type Complex = complex128

// StateVector is a dense amplitude vector over NumQubits wires.
//
// Wire 0 is the most significant bit of a basis index, so a basis string
// reads left to right as wire 0, wire 1, ... This keeps the ancilla on
// wire 0 at the top of the drawn circuit.
type StateVector struct {
	Amplitudes []Complex
	NumQubits  int
}

func NewStateVector(numQubits int) *StateVector {
	n := 1 << numQubits
	amps := make([]Complex, n)
	amps[0] = 1
	return &StateVector{Amplitudes: amps, NumQubits: numQubits}
}

// mask returns the basis-index bit carrying the given wire.
func (s *StateVector) mask(wire int) int {
	return 1 << (s.NumQubits - 1 - wire)
}

// Prepare overwrites the register with the given amplitudes. The vector
// must have the register's dimension and unit norm.
func (s *StateVector) Prepare(amps []Complex) error {
	if len(amps) != len(s.Amplitudes) {
		return errors.Wrapf(ErrSimulation,
			"prepared state has dimension %d, register has dimension %d",
			len(amps), len(s.Amplitudes))
	}
	norm := 0.0
	for _, a := range amps {
		norm += real(a * cmplx.Conj(a))
	}
	if math.Abs(norm-1) > Tolerance {
		return errors.Wrapf(ErrSimulation, "prepared state has norm %g", norm)
	}
	copy(s.Amplitudes, amps)
	return nil
}

func (s *StateVector) ApplyH(wire int) {
	hFactor := complex(1.0/math.Sqrt2, 0)
	n := len(s.Amplitudes)
	bit := s.mask(wire)
	newAmps := make([]Complex, n)
	for i := 0; i < n; i++ {
		if i&bit == 0 {
			j := i | bit
			newAmps[i] = hFactor * (s.Amplitudes[i] + s.Amplitudes[j])
			newAmps[j] = hFactor * (s.Amplitudes[i] - s.Amplitudes[j])
		}
	}
	s.Amplitudes = newAmps
}

// ApplyCSWAP swaps wires a and b on the branches where control is |1>.
func (s *StateVector) ApplyCSWAP(control, a, b int) {
	n := len(s.Amplitudes)
	cBit := s.mask(control)
	aBit := s.mask(a)
	bBit := s.mask(b)
	for i := 0; i < n; i++ {
		if i&cBit != 0 && i&aBit != 0 && i&bBit == 0 {
			j := (i & ^aBit) | bBit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

// ProbZero returns the marginal probability of measuring |0> on the wire.
func (s *StateVector) ProbZero(wire int) float64 {
	bit := s.mask(wire)
	p := 0.0
	for i, amp := range s.Amplitudes {
		if i&bit == 0 {
			p += real(amp * cmplx.Conj(amp))
		}
	}
	return p
}

type QubitProbability struct {
	Prob0 float64
	Prob1 float64
}

// GetQubitProbabilities returns the marginal |0>/|1> probabilities of every wire.
func (s *StateVector) GetQubitProbabilities() []QubitProbability {
	probs := make([]QubitProbability, s.NumQubits)
	n := len(s.Amplitudes)

	for i := 0; i < n; i++ {
		prob := real(s.Amplitudes[i] * cmplx.Conj(s.Amplitudes[i]))
		for q := 0; q < s.NumQubits; q++ {
			if i&s.mask(q) != 0 {
				probs[q].Prob1 += prob
			} else {
				probs[q].Prob0 += prob
			}
		}
	}

	return probs
}
