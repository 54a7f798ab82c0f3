package qrect

import (
	"fmt"
	"strings"
)

// DrawText renders the circuit as a plain unicode diagram, the analogue of
// a textual circuit printer.
func (c *Circuit) DrawText() string {
	return c.render(plainStyles())
}

// DrawStyled renders the circuit with the terminal color theme, the
// analogue of a graphical circuit figure.
func (c *Circuit) DrawStyled() string {
	return c.render(themeStyles())
}

// padCenter centres a string within the given visual width. Widths count
// runes, not bytes, so the ψ preparation box lines up with ASCII gates.
func padCenter(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	total := width - len(runes)
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// gateDisplayName returns the short display name drawn inside a gate box.
func gateDisplayName(gateType string) string {
	switch gateType {
	case GateMeasure:
		return "M"
	case GatePrep:
		return "ψ"
	default:
		return gateType
	}
}

func (c *Circuit) render(st diagramStyles) string {
	var sb strings.Builder

	// Step number header
	header := strings.Repeat(" ", labelVisualW)
	for step := 0; step < c.MaxSteps; step++ {
		header += st.dim.Render(padCenter(fmt.Sprintf("%d", step), cellW))
	}
	sb.WriteString(header + "\n")

	// Each wire is rendered as 3 lines so gate boxes have room.
	for wire := 0; wire < c.NumQubits; wire++ {
		label := fmt.Sprintf("q[%d]", wire)
		topLine := strings.Repeat(" ", labelVisualW)
		midLine := st.label.Render(fmt.Sprintf("%-5s", label)) + "──"
		botLine := strings.Repeat(" ", labelVisualW)

		for step := 0; step < c.MaxSteps; step++ {
			top, mid, bot := c.renderCell(step, wire, st)
			topLine += top
			midLine += mid
			botLine += bot
		}

		sb.WriteString(topLine + "\n")
		sb.WriteString(midLine + "\n")
		sb.WriteString(botLine + "\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

// renderCell returns 3 lines (top, mid, bot) for the cell at (step, wire),
// each exactly cellW visual characters wide.
func (c *Circuit) renderCell(step, wire int, st diagramStyles) (top, mid, bot string) {
	emptyRow := strings.Repeat(" ", cellW)
	wireRow := strings.Repeat("─", cellW)
	halfW := cellW / 2
	vertRow := strings.Repeat(" ", halfW) + "│" + strings.Repeat(" ", cellW-halfW-1)
	dashL := halfW
	dashR := cellW - dashL - 1

	box := func(name string) (string, string, string) {
		margin := (cellW - gateBoxW) / 2
		rightMargin := cellW - margin - gateBoxW
		padded := padCenter(name, gateNameW)
		return strings.Repeat(" ", margin) + st.gate.Render("┌"+strings.Repeat("─", gateNameW)+"┐") + strings.Repeat(" ", rightMargin),
			strings.Repeat("─", margin) + st.gate.Render("┤"+padded+"├") + strings.Repeat("─", rightMargin),
			strings.Repeat(" ", margin) + st.gate.Render("└"+strings.Repeat("─", gateNameW)+"┘") + strings.Repeat(" ", rightMargin)
	}

	var gate *Gate
	for i := range c.Gates {
		if c.Gates[i].Step == step {
			gate = &c.Gates[i]
			break
		}
	}
	if gate == nil {
		return emptyRow, wireRow, emptyRow
	}

	switch gate.Type {
	case GatePrep:
		// State preparation spans every wire.
		return box(gateDisplayName(GatePrep))

	case GateCSWAP:
		minQ := gate.Control
		maxQ := gate.Target2
		switch {
		case wire == gate.Control:
			top = emptyRow
			mid = strings.Repeat("─", dashL) + st.gate.Render("●") + strings.Repeat("─", dashR)
			bot = vertRow
		case wire == gate.Target || wire == gate.Target2:
			top = vertRow
			mid = strings.Repeat("─", dashL) + st.gate.Render("×") + strings.Repeat("─", dashR)
			bot = emptyRow
			if wire < maxQ {
				bot = vertRow
			}
		case wire > minQ && wire < maxQ:
			top = vertRow
			mid = strings.Repeat("─", dashL) + "┼" + strings.Repeat("─", dashR)
			bot = vertRow
		default:
			top, mid, bot = emptyRow, wireRow, emptyRow
		}
		return

	default: // H, MEASURE
		if gate.Target == wire {
			return box(gateDisplayName(gate.Type))
		}
		return emptyRow, wireRow, emptyRow
	}
}
