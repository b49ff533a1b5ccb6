package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandle_Submit(t *testing.T) {
	s := newTestSession()
	out := s.Handle(SubmitEvent{Line: "help"})
	assert.True(t, out.Submitted)
	assert.Equal(t, []Effect{ScrollToBottom, FocusInput}, out.Effects)
	assert.Equal(t, "help", out.Result.Command)

	out = s.Handle(SubmitEvent{Line: "  "})
	assert.False(t, out.Submitted)
	assert.Empty(t, out.Effects)
}

func TestHandle_ArrowKeysPreventDefault(t *testing.T) {
	s := newTestSession()
	s.Handle(SubmitEvent{Line: "about"})

	out := s.Handle(KeyEvent{Key: KeyArrowUp})
	assert.True(t, out.PreventDefault)
	assert.Equal(t, "about", s.Input())

	out = s.Handle(KeyEvent{Key: KeyArrowDown})
	assert.True(t, out.PreventDefault)
	assert.Equal(t, "", s.Input())

	out = s.Handle(KeyEvent{Key: "Tab"})
	assert.False(t, out.PreventDefault)
}

func TestHandle_InputEvent(t *testing.T) {
	s := newTestSession()
	s.Handle(InputEvent{Text: "proj"})
	assert.Equal(t, "proj", s.Input())
}

func TestHandle_VisibleOnce(t *testing.T) {
	s := newTestSession()
	out := s.Handle(VisibleEvent{})
	assert.Equal(t, []Effect{ScrollToBottom, ScheduleFocus}, out.Effects)
	assert.True(t, s.Visible())

	assert.Empty(t, s.Handle(VisibleEvent{}).Effects)
}

func TestHandle_Click(t *testing.T) {
	s := newTestSession()
	assert.Equal(t, []Effect{FocusInput}, s.Handle(ClickEvent{}).Effects)
}

func TestHandle_Teardown(t *testing.T) {
	s := newTestSession()
	out := s.Handle(TeardownEvent{})
	assert.Equal(t, []Effect{CancelFocus}, out.Effects)
	assert.True(t, s.Closed())

	out = s.Handle(SubmitEvent{Line: "help"})
	assert.False(t, out.Submitted)
	assert.Len(t, s.Transcript(), 1)
}
