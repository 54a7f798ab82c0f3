package qrect

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// DrawMode selects the optional circuit rendering performed by IsRectangle
// for the first candidate pairing. Rendering never touches the simulation.
type DrawMode int

const (
	DrawNone   DrawMode = iota
	DrawText            // plain unicode diagram
	DrawStyled          // lipgloss-colored diagram
)

// PairingResult records the oracle outcome for one candidate pairing.
type PairingResult struct {
	Label       string
	Pair1       Pair
	Pair2       Pair
	Probability float64
	Match       bool
}

// pairings returns the three ways to partition four encoded lengths into
// two unordered pairs. The last partition is implied by the first two for
// any four lengths, but testing it keeps the partition coverage explicit.
func pairings(enc []string) [3][2]Pair {
	return [3][2]Pair{
		{{U: enc[0], V: enc[1]}, {U: enc[2], V: enc[3]}},
		{{U: enc[0], V: enc[2]}, {U: enc[1], V: enc[3]}},
		{{U: enc[0], V: enc[3]}, {U: enc[1], V: enc[2]}},
	}
}

var pairingLabels = [3]string{"{A,B} | {C,D}", "{A,C} | {B,D}", "{A,D} | {B,C}"}

// IsRectangle reports whether a rectangle can be built from the four side
// lengths, in any order. It returns "1" when some partition of the lengths
// into two pairs passes the SWAP-test equality oracle, "0" otherwise.
// Non-positive lengths yield ErrInvalidInput, never a silent "0".
func (ctx *SimContext) IsRectangle(a, b, c, d int, draw DrawMode) (string, error) {
	return ctx.isRectangle(a, b, c, d, draw, os.Stdout)
}

func (ctx *SimContext) isRectangle(a, b, c, d int, draw DrawMode, w io.Writer) (string, error) {
	enc, err := EncodeLengths([]int{a, b, c, d})
	if err != nil {
		return "", err
	}
	ctx.logger().Debug("encoded side lengths",
		zap.Ints("lengths", []int{a, b, c, d}),
		zap.Strings("encoded", enc),
		zap.Int("width", len(enc[0])))

	combos := pairings(enc)

	if draw != DrawNone {
		// Drawing is a side channel: a register too wide to draw must not
		// change the verdict the closed-form oracle can still deliver.
		circ, err := BuildSwapTestCircuit(combos[0][0], combos[0][1])
		if err != nil {
			ctx.logger().Warn("skipping circuit diagram", zap.Error(err))
		} else {
			diagram := circ.DrawText()
			if draw == DrawStyled {
				diagram = circ.DrawStyled()
			}
			fmt.Fprintln(w, diagram)
		}
	}

	for i, combo := range combos {
		p, err := ctx.EqualityProbability(combo[0], combo[1])
		if err != nil {
			return "", err
		}
		ctx.logger().Debug("pairing tested",
			zap.String("pairing", pairingLabels[i]),
			zap.Float64("prob0", p))
		if IsClose(p, 1) {
			return "1", nil
		}
	}
	return "0", nil
}

// PairingProbabilities evaluates the oracle on all three partitions without
// short-circuiting, for reporting and inspection.
func (ctx *SimContext) PairingProbabilities(a, b, c, d int) ([]PairingResult, error) {
	enc, err := EncodeLengths([]int{a, b, c, d})
	if err != nil {
		return nil, err
	}

	combos := pairings(enc)
	results := make([]PairingResult, 0, len(combos))
	for i, combo := range combos {
		p, err := ctx.EqualityProbability(combo[0], combo[1])
		if err != nil {
			return nil, err
		}
		results = append(results, PairingResult{
			Label:       pairingLabels[i],
			Pair1:       combo[0],
			Pair2:       combo[1],
			Probability: p,
			Match:       IsClose(p, 1),
		})
	}
	return results, nil
}
