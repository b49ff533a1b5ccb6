package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/adarshrangare/portfolio/terminal"
)

const (
	Prompt = "guest@adarsh-dev:~$"
	Title  = "adarsh@portfolio:~"

	// header line plus the input line
	inputHeight = 2
)

// Styles holds the lipgloss styles of the terminal view.
type Styles struct {
	Header    lipgloss.Style
	Prompt    lipgloss.Style
	Command   lipgloss.Style
	Timestamp lipgloss.Style
	Output    lipgloss.Style
}

// DefaultStyles mirrors the web terminal's palette.
func DefaultStyles() Styles {
	return Styles{
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("#d1d5db")).Bold(true),
		Prompt:    lipgloss.NewStyle().Foreground(lipgloss.Color("#c084fc")),
		Command:   lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")),
		Timestamp: lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")),
		Output:    lipgloss.NewStyle().Foreground(lipgloss.Color("#4ade80")),
	}
}

// renderTranscript draws every entry as its prompt line followed by its
// output. Output lines are printed as stored, never wrapped or trimmed.
func renderTranscript(entries []terminal.Entry, st Styles) string {
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		if !e.Banner {
			b.WriteString(st.Prompt.Render(Prompt))
			b.WriteString(" ")
			b.WriteString(st.Command.Render(e.Input))
			b.WriteString("  ")
			b.WriteString(st.Timestamp.Render(e.Timestamp))
			b.WriteString("\n")
		}
		for _, line := range e.Output {
			b.WriteString("  ")
			b.WriteString(st.Output.Render(line))
			b.WriteString("\n")
		}
	}
	return b.String()
}
