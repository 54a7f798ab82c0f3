package qrect

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestBuildSwapTestCircuitShape(t *testing.T) {
	circ, err := BuildSwapTestCircuit(Pair{"10", "11"}, Pair{"11", "10"})
	if err != nil {
		t.Fatalf("BuildSwapTestCircuit error: %v", err)
	}

	// width 2 -> 4 wires per register, plus the ancilla
	if circ.NumQubits != 9 {
		t.Errorf("NumQubits = %d, want 9", circ.NumQubits)
	}

	// PREP + H + 4 CSWAP + H + MEASURE
	if len(circ.Gates) != 8 {
		t.Fatalf("got %d gates, want 8", len(circ.Gates))
	}

	wantSwaps := [][2]int{{1, 5}, {2, 6}, {3, 7}, {4, 8}}
	var gotSwaps [][2]int
	for _, g := range circ.Gates {
		if g.Type == GateCSWAP {
			if g.Control != 0 {
				t.Errorf("CSWAP control = %d, want 0", g.Control)
			}
			gotSwaps = append(gotSwaps, [2]int{g.Target, g.Target2})
		}
	}
	if len(gotSwaps) != len(wantSwaps) {
		t.Fatalf("got %d CSWAPs, want %d", len(gotSwaps), len(wantSwaps))
	}
	for i := range wantSwaps {
		if gotSwaps[i] != wantSwaps[i] {
			t.Errorf("CSWAP %d targets %v, want %v", i, gotSwaps[i], wantSwaps[i])
		}
	}
}

func TestBuildSwapTestCircuitSuperposition(t *testing.T) {
	// Four distinct reorderings, each with amplitude 1/2.
	circ, err := BuildSwapTestCircuit(Pair{"10", "01"}, Pair{"11", "00"})
	if err != nil {
		t.Fatalf("BuildSwapTestCircuit error: %v", err)
	}
	populated := 0
	for _, amp := range circ.initial {
		if amp != 0 {
			populated++
			if math.Abs(real(amp)-0.5) > 1e-12 {
				t.Errorf("amplitude = %v, want 0.5", amp)
			}
		}
	}
	if populated != 4 {
		t.Errorf("populated basis states = %d, want 4", populated)
	}
}

func TestBuildSwapTestCircuitCollapsesDuplicates(t *testing.T) {
	// u == v and y == z: all four reorderings coincide, normalization holds.
	circ, err := BuildSwapTestCircuit(Pair{"1", "1"}, Pair{"1", "1"})
	if err != nil {
		t.Fatalf("BuildSwapTestCircuit error: %v", err)
	}
	populated := 0
	for _, amp := range circ.initial {
		if amp != 0 {
			populated++
			if math.Abs(real(amp)-1) > 1e-12 {
				t.Errorf("amplitude = %v, want 1", amp)
			}
		}
	}
	if populated != 1 {
		t.Errorf("populated basis states = %d, want 1", populated)
	}
}

func TestBuildSwapTestCircuitRejectsBadPairs(t *testing.T) {
	cases := []struct {
		name  string
		pair1 Pair
		pair2 Pair
	}{
		{"mixed widths", Pair{"10", "1"}, Pair{"01", "10"}},
		{"not binary", Pair{"1x", "10"}, Pair{"01", "10"}},
		{"empty", Pair{"", ""}, Pair{"", ""}},
	}
	for _, tt := range cases {
		if _, err := BuildSwapTestCircuit(tt.pair1, tt.pair2); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: want ErrInvalidInput, got %v", tt.name, err)
		}
	}
}

func TestBuildSwapTestCircuitRejectsWideRegisters(t *testing.T) {
	// 7-bit strings need 29 wires, past the dense construction cap.
	wide := strings.Repeat("1", 7)
	_, err := BuildSwapTestCircuit(Pair{wide, wide}, Pair{wide, wide})
	if !errors.Is(err, ErrSimulation) {
		t.Errorf("want ErrSimulation, got %v", err)
	}
}

func TestCircuitRunGround(t *testing.T) {
	circ := &Circuit{NumQubits: 2}
	state, err := circ.Run()
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if state.Amplitudes[0] != 1 {
		t.Errorf("ground amplitude = %v, want 1", state.Amplitudes[0])
	}
}

func TestToQASM(t *testing.T) {
	circ, err := BuildSwapTestCircuit(Pair{"1", "0"}, Pair{"0", "1"})
	if err != nil {
		t.Fatalf("BuildSwapTestCircuit error: %v", err)
	}
	qasm := circ.ToQASM()

	for _, want := range []string{
		"OPENQASM 2.0;",
		"include \"qelib1.inc\";",
		"qreg q[5];",
		"creg c[1];",
		"h q[0];",
		"measure q[0] -> c[0];",
	} {
		if !strings.Contains(qasm, want) {
			t.Errorf("QASM missing %q:\n%s", want, qasm)
		}
	}

	// Each of the two controlled swaps decomposes into cx, ccx, cx.
	if got := strings.Count(qasm, "ccx q[0]"); got != 2 {
		t.Errorf("ccx count = %d, want 2:\n%s", got, qasm)
	}
	if got := strings.Count(qasm, "\ncx "); got != 4 {
		t.Errorf("cx count = %d, want 4:\n%s", got, qasm)
	}
	if got := strings.Count(qasm, "h q[0];"); got != 2 {
		t.Errorf("hadamard count = %d, want 2:\n%s", got, qasm)
	}
}
