package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"qrect"
)

// Lipgloss styles used by the inspector.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff9e64"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff9e64"))

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0caf5"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))

	matchStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#9ece6a"))

	missStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f7768e"))
)

// inspectorModel shows the SWAP-test circuit for each candidate pairing
// together with its measured ancilla probability.
type inspectorModel struct {
	sides     []int
	verdict   string
	results   []qrect.PairingResult
	circuits  []*qrect.Circuit
	wireProbs [][]qrect.QubitProbability
	selected  int
	viewport  viewport.Model
	ready     bool
}

func newInspector(ctx *qrect.SimContext, sides []int) (*inspectorModel, error) {
	results, err := ctx.PairingProbabilities(sides[0], sides[1], sides[2], sides[3])
	if err != nil {
		return nil, err
	}
	verdict, err := ctx.IsRectangle(sides[0], sides[1], sides[2], sides[3], qrect.DrawNone)
	if err != nil {
		return nil, err
	}

	circuits := make([]*qrect.Circuit, len(results))
	wireProbs := make([][]qrect.QubitProbability, len(results))
	for i, r := range results {
		circ, err := qrect.BuildSwapTestCircuit(r.Pair1, r.Pair2)
		if err != nil {
			return nil, err
		}
		circuits[i] = circ

		state, err := circ.Run()
		if err != nil {
			return nil, err
		}
		wireProbs[i] = state.GetQubitProbabilities()
	}

	return &inspectorModel{
		sides:     sides,
		verdict:   verdict,
		results:   results,
		circuits:  circuits,
		wireProbs: wireProbs,
	}, nil
}

func (m *inspectorModel) Init() tea.Cmd {
	return nil
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab", "right", "l":
			m.selected = (m.selected + 1) % len(m.results)
			m.viewport.SetContent(m.circuits[m.selected].DrawStyled())
		case "shift+tab", "left", "h":
			m.selected = (m.selected + len(m.results) - 1) % len(m.results)
			m.viewport.SetContent(m.circuits[m.selected].DrawStyled())
		}

	case tea.WindowSizeMsg:
		width := max(msg.Width-4, 20)
		height := max(msg.Height-10-len(m.results), 5)
		if !m.ready {
			m.viewport = viewport.New(width, height)
			m.viewport.SetContent(m.circuits[m.selected].DrawStyled())
			m.ready = true
		} else {
			m.viewport.Width = width
			m.viewport.Height = height
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *inspectorModel) View() string {
	if !m.ready {
		return "loading..."
	}

	var sb strings.Builder
	title := fmt.Sprintf("SWAP-Test Inspector · sides %v · rectangle: %s", m.sides, m.verdict)
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n\n")

	for i, r := range m.results {
		marker := missStyle.Render("·")
		if r.Match {
			marker = matchStyle.Render("✓")
		}
		line := fmt.Sprintf("%s  P(0) = %.6f", r.Label, r.Probability)
		style := normalStyle
		if i == m.selected {
			style = selectedStyle
		}
		fmt.Fprintf(&sb, "  %s %s\n", marker, style.Render(line))
	}

	sb.WriteString("\n")
	sb.WriteString(panelStyle.Render(m.viewport.View()))
	sb.WriteString("\n")

	// Per-wire |1> probabilities of the selected pairing's final state.
	var probLine strings.Builder
	probLine.WriteString("P(1):")
	for q, p := range m.wireProbs[m.selected] {
		fmt.Fprintf(&probLine, "  q[%d] %.2f", q, p.Prob1)
	}
	sb.WriteString(dimStyle.Render(probLine.String()))
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("tab/←→ switch pairing  ↑↓ scroll  q quit"))
	return sb.String()
}

// runInspector opens the interactive circuit inspector.
func runInspector(ctx *qrect.SimContext, sides []int) error {
	m, err := newInspector(ctx, sides)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
