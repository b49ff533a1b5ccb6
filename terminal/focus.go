package terminal

import (
	"sync"
	"time"
)

// DefaultFocusDelay lets the reveal transition finish before focusing,
// which would otherwise make the page jump.
const DefaultFocusDelay = 500 * time.Millisecond

// AfterFunc schedules f after d and returns a function that stops it.
type AfterFunc func(d time.Duration, f func()) (stop func() bool)

func timeAfterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

// FocusTimer is a one-shot deferred focus. Cancel suppresses a pending
// fire; a fire that races with Cancel is dropped as well.
type FocusTimer struct {
	mu        sync.Mutex
	delay     time.Duration
	fire      func()
	afterFunc AfterFunc
	stop      func() bool
	gen       uint64
}

// NewFocusTimer returns a timer that calls fire delay after Schedule.
func NewFocusTimer(delay time.Duration, fire func()) *FocusTimer {
	if delay <= 0 {
		delay = DefaultFocusDelay
	}
	return &FocusTimer{delay: delay, fire: fire, afterFunc: timeAfterFunc}
}

// Schedule arms the timer, replacing any pending schedule.
func (t *FocusTimer) Schedule() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop != nil {
		t.stop()
	}
	t.gen++
	gen := t.gen
	t.stop = t.afterFunc(t.delay, func() {
		t.mu.Lock()
		live := t.gen == gen && t.stop != nil
		if live {
			t.stop = nil
		}
		t.mu.Unlock()
		if live {
			t.fire()
		}
	})
}

// Cancel drops the pending fire. It reports whether one was pending.
func (t *FocusTimer) Cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop == nil {
		return false
	}
	t.stop()
	t.stop = nil
	t.gen++
	return true
}

// Pending reports whether a fire is scheduled.
func (t *FocusTimer) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stop != nil
}

// Apply carries out the timer-related effects and ignores the rest.
func (t *FocusTimer) Apply(effects []Effect) {
	for _, e := range effects {
		switch e {
		case ScheduleFocus:
			t.Schedule()
		case CancelFocus:
			t.Cancel()
		}
	}
}
