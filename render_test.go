package qrect

import (
	"strings"
	"testing"
)

func TestDrawTextLayout(t *testing.T) {
	circ, err := BuildSwapTestCircuit(Pair{"1", "0"}, Pair{"0", "1"})
	if err != nil {
		t.Fatalf("BuildSwapTestCircuit error: %v", err)
	}

	got := circ.DrawText()
	lines := strings.Split(got, "\n")

	// Header plus 3 lines per wire; 5 wires for single-bit pairs.
	if want := 1 + 3*circ.NumQubits; len(lines) != want {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), want, got)
	}

	for wire := 0; wire < circ.NumQubits; wire++ {
		label := "q[" + string(rune('0'+wire)) + "]"
		if !strings.Contains(got, label) {
			t.Errorf("diagram missing wire label %s", label)
		}
	}

	for _, sym := range []string{"ψ", "H", "M", "×", "●"} {
		if !strings.Contains(got, sym) {
			t.Errorf("diagram missing %q:\n%s", sym, got)
		}
	}

	if strings.Contains(got, "\x1b") {
		t.Error("plain drawer emitted ANSI escapes")
	}
}

func TestDrawStyledSameSymbols(t *testing.T) {
	circ, err := BuildSwapTestCircuit(Pair{"10", "11"}, Pair{"11", "10"})
	if err != nil {
		t.Fatalf("BuildSwapTestCircuit error: %v", err)
	}

	got := circ.DrawStyled()
	for _, sym := range []string{"ψ", "H", "M", "×", "●"} {
		if !strings.Contains(got, sym) {
			t.Errorf("styled diagram missing %q", sym)
		}
	}
}

func TestPadCenter(t *testing.T) {
	tests := []struct {
		s     string
		width int
		want  string
	}{
		{"H", 3, " H "},
		{"M", 5, "  M  "},
		{"ψ", 3, " ψ "},
		{"CSWAP", 3, "CSW"},
		{"", 2, "  "},
	}
	for _, tt := range tests {
		if got := padCenter(tt.s, tt.width); got != tt.want {
			t.Errorf("padCenter(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
		}
	}
}
