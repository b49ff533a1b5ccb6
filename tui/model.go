package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/adarshrangare/portfolio/terminal"
)

// focusMsg is delivered by the deferred focus timer.
type focusMsg struct{}

// Model is the Bubble Tea model wrapping a terminal session.
type Model struct {
	session  *terminal.Session
	focus    *terminal.FocusTimer
	input    textinput.Model
	viewport viewport.Model
	styles   Styles

	width    int
	height   int
	ready    bool
	quitting bool
}

// NewModel creates a model over session. focus may be nil, in which case
// the input is focused immediately.
func NewModel(session *terminal.Session, focus *terminal.FocusTimer) Model {
	styles := DefaultStyles()

	ti := textinput.New()
	ti.Prompt = styles.Prompt.Render(Prompt) + " "
	ti.Placeholder = "Type a command..."
	ti.CharLimit = 0
	if focus == nil {
		ti.Focus()
	}

	return Model{
		session:  session,
		focus:    focus,
		input:    ti,
		viewport: viewport.New(80, 20),
		styles:   styles,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-inputHeight, 1)
		m.input.Width = max(msg.Width-len(Prompt)-2, 10)
		if !m.ready {
			// first layout is the moment the terminal becomes visible
			m.ready = true
			cmds = append(cmds, m.apply(m.session.Handle(terminal.VisibleEvent{})))
		}
		m.refresh()
		return m, tea.Batch(cmds...)

	case focusMsg:
		return m, m.input.Focus()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			m.apply(m.session.Handle(terminal.TeardownEvent{}))
			return m, tea.Quit

		case tea.KeyEnter:
			out := m.session.Handle(terminal.SubmitEvent{Line: m.input.Value()})
			if out.Submitted {
				m.input.SetValue(m.session.Input())
			}
			return m, m.apply(out)

		case tea.KeyUp:
			m.session.Handle(terminal.KeyEvent{Key: terminal.KeyArrowUp})
			m.syncInput()
			return m, nil

		case tea.KeyDown:
			m.session.Handle(terminal.KeyEvent{Key: terminal.KeyArrowDown})
			m.syncInput()
			return m, nil

		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.session.Handle(terminal.InputEvent{Text: m.input.Value()})
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// syncInput copies a recalled line into the text field.
func (m *Model) syncInput() {
	m.input.SetValue(m.session.Input())
	m.input.CursorEnd()
}

// apply carries out the effects of an outcome.
func (m *Model) apply(out terminal.Outcome) tea.Cmd {
	var cmd tea.Cmd
	for _, e := range out.Effects {
		switch e {
		case terminal.ScrollToBottom:
			m.refresh()
		case terminal.FocusInput:
			cmd = m.input.Focus()
		case terminal.ScheduleFocus:
			if m.focus == nil {
				cmd = m.input.Focus()
				continue
			}
			m.focus.Schedule()
		case terminal.CancelFocus:
			if m.focus != nil {
				m.focus.Cancel()
			}
		}
	}
	return cmd
}

// refresh re-renders the transcript and keeps the view pinned to the end.
func (m *Model) refresh() {
	m.viewport.SetContent(renderTranscript(m.session.Transcript(), m.styles))
	m.viewport.GotoBottom()
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.styles.Header.Render(Title))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	return b.String()
}

// Session returns the underlying terminal session.
func (m Model) Session() *terminal.Session { return m.session }

// Run starts the TUI and blocks until the visitor quits.
func Run(session *terminal.Session, focusDelay time.Duration) error {
	var p *tea.Program
	focus := terminal.NewFocusTimer(focusDelay, func() { p.Send(focusMsg{}) })
	p = tea.NewProgram(NewModel(session, focus), tea.WithAltScreen())
	_, err := p.Run()
	focus.Cancel()
	return err
}
