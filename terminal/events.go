package terminal

// Key names as reported by the input surface.
const (
	KeyArrowUp   = "ArrowUp"
	KeyArrowDown = "ArrowDown"
)

// Effect is a UI side effect the front-end should carry out. Applying an
// effect twice must leave the view as applying it once.
type Effect string

const (
	ScrollToBottom Effect = "terminal:scroll"
	FocusInput     Effect = "terminal:focus"
	ScheduleFocus  Effect = "terminal:schedule-focus"
	CancelFocus    Effect = "terminal:cancel-focus"
)

// Event is an input to Session.Handle.
type Event interface {
	isEvent()
}

// SubmitEvent is the visitor pressing Enter on Line.
type SubmitEvent struct{ Line string }

// KeyEvent is a key press in the input field.
type KeyEvent struct{ Key string }

// InputEvent is the input field's text changing.
type InputEvent struct{ Text string }

// VisibleEvent is the widget scrolling into view.
type VisibleEvent struct{}

// ClickEvent is a click anywhere on the transcript.
type ClickEvent struct{}

// TeardownEvent is the widget being removed.
type TeardownEvent struct{}

func (SubmitEvent) isEvent()   {}
func (KeyEvent) isEvent()      {}
func (InputEvent) isEvent()    {}
func (VisibleEvent) isEvent()  {}
func (ClickEvent) isEvent()    {}
func (TeardownEvent) isEvent() {}

// Outcome reports what handling an event produced.
type Outcome struct {
	Effects []Effect
	// PreventDefault is set when the platform's default key action
	// (cursor movement) must be suppressed.
	PreventDefault bool
	// Submitted is set when a SubmitEvent reached the resolver.
	Submitted bool
	Result    Result
}

// Handle applies ev to the session and returns the resulting intents.
// Events after a TeardownEvent are ignored.
func (s *Session) Handle(ev Event) Outcome {
	if s.tornDown {
		return Outcome{}
	}
	switch ev := ev.(type) {
	case SubmitEvent:
		res, ok := s.Submit(ev.Line)
		if !ok {
			return Outcome{}
		}
		return Outcome{
			Effects:   []Effect{ScrollToBottom, FocusInput},
			Submitted: true,
			Result:    res,
		}
	case KeyEvent:
		switch ev.Key {
		case KeyArrowUp:
			s.RecallPrevious()
			return Outcome{PreventDefault: true}
		case KeyArrowDown:
			s.RecallNext()
			return Outcome{PreventDefault: true}
		}
	case InputEvent:
		s.SetInput(ev.Text)
	case VisibleEvent:
		if s.visible {
			return Outcome{}
		}
		s.visible = true
		return Outcome{Effects: []Effect{ScrollToBottom, ScheduleFocus}}
	case ClickEvent:
		return Outcome{Effects: []Effect{FocusInput}}
	case TeardownEvent:
		s.tornDown = true
		return Outcome{Effects: []Effect{CancelFocus}}
	}
	return Outcome{}
}

// Visible reports whether the widget has been shown at least once.
func (s *Session) Visible() bool { return s.visible }

// Closed reports whether the session has been torn down.
func (s *Session) Closed() bool { return s.tornDown }
