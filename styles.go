package qrect

import "github.com/charmbracelet/lipgloss"

// Layout constants for the circuit diagram.
const (
	cellW        = 7 // width of each step column in characters
	labelVisualW = 7 // visual width of the wire label area
	gateNameW    = 3 // width of a gate name inside its box
	gateBoxW     = 5 // ┤ + gateNameW + ├
)

// diagramStyles carries the lipgloss styles a diagram is rendered with.
type diagramStyles struct {
	gate  lipgloss.Style
	label lipgloss.Style
	dim   lipgloss.Style
}

// plainStyles renders without any coloring, for piping and logs.
func plainStyles() diagramStyles {
	return diagramStyles{
		gate:  lipgloss.NewStyle(),
		label: lipgloss.NewStyle(),
		dim:   lipgloss.NewStyle(),
	}
}

// themeStyles is the colored variant used by DrawStyled and the inspector.
func themeStyles() diagramStyles {
	return diagramStyles{
		gate: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#73daca")),
		label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7dcfff")),
		dim: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89")),
	}
}
