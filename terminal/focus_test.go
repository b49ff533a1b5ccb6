package terminal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAfter struct {
	delay   time.Duration
	pending []func()
	stopped int
}

func (f *fakeAfter) afterFunc(d time.Duration, fn func()) func() bool {
	f.delay = d
	f.pending = append(f.pending, fn)
	return func() bool {
		f.stopped++
		return true
	}
}

func (f *fakeAfter) fireAll() {
	fns := f.pending
	f.pending = nil
	for _, fn := range fns {
		fn()
	}
}

func newFakeTimer(fired *int) (*FocusTimer, *fakeAfter) {
	fa := &fakeAfter{}
	ft := NewFocusTimer(0, func() { *fired++ })
	ft.afterFunc = fa.afterFunc
	return ft, fa
}

func TestFocusTimer_Fires(t *testing.T) {
	var fired int
	ft, fa := newFakeTimer(&fired)

	ft.Schedule()
	assert.True(t, ft.Pending())
	assert.Equal(t, DefaultFocusDelay, fa.delay)

	fa.fireAll()
	assert.Equal(t, 1, fired)
	assert.False(t, ft.Pending())
}

func TestFocusTimer_CancelSuppressesFire(t *testing.T) {
	var fired int
	ft, fa := newFakeTimer(&fired)

	ft.Schedule()
	assert.True(t, ft.Cancel())
	assert.Equal(t, 1, fa.stopped)

	// the underlying timer may already have been dispatched
	fa.fireAll()
	assert.Equal(t, 0, fired)
	assert.False(t, ft.Cancel())
}

func TestFocusTimer_RescheduleReplaces(t *testing.T) {
	var fired int
	ft, fa := newFakeTimer(&fired)

	ft.Schedule()
	ft.Schedule()
	fa.fireAll()
	assert.Equal(t, 1, fired)
}

func TestFocusTimer_Apply(t *testing.T) {
	var fired int
	ft, fa := newFakeTimer(&fired)

	ft.Apply([]Effect{ScrollToBottom, ScheduleFocus})
	require.True(t, ft.Pending())
	ft.Apply([]Effect{CancelFocus})
	fa.fireAll()
	assert.Equal(t, 0, fired)
}

func TestFocusTimer_RealClock(t *testing.T) {
	done := make(chan struct{})
	ft := NewFocusTimer(5*time.Millisecond, func() { close(done) })
	ft.Schedule()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("focus timer never fired")
	}
}

func TestFocusTimer_SessionLifecycle(t *testing.T) {
	var fired int
	ft, fa := newFakeTimer(&fired)
	s := newTestSession()

	ft.Apply(s.Handle(VisibleEvent{}).Effects)
	ft.Apply(s.Handle(TeardownEvent{}).Effects)
	fa.fireAll()
	assert.Equal(t, 0, fired)
}
