package terminal

import (
	"strings"
	"time"
)

// TimestampLayout formats the time shown next to each prompt line.
const TimestampLayout = "3:04:05 PM"

// Entry is one submitted line and its output. Entries are never modified
// once appended to a transcript.
type Entry struct {
	Input     string
	Output    []string
	Timestamp string
	// Banner marks the bootstrap welcome entry whose prompt is not echoed.
	Banner bool
}

// Clock supplies the wall-clock time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// Option configures a Session.
type Option func(*Session)

// WithClock overrides the wall clock.
func WithClock(c Clock) Option {
	return func(s *Session) { s.clock = c }
}

// WithoutBanner starts the session with an empty transcript.
func WithoutBanner() Option {
	return func(s *Session) { s.banner = false }
}

// Session owns one visitor's transcript, recall buffer and input buffer.
// It is not safe for concurrent use; callers drive it one event at a time.
type Session struct {
	table  *Table
	clock  Clock
	banner bool

	transcript   []Entry
	recall       []string
	historyIndex int
	input        string

	visible  bool
	tornDown bool
}

// NewSession creates a session over table, seeded with the welcome banner.
func NewSession(table *Table, opts ...Option) *Session {
	if table == nil {
		table = DefaultTable()
	}
	s := &Session{
		table:        table,
		clock:        systemClock{},
		banner:       true,
		historyIndex: -1,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.banner {
		s.transcript = append(s.transcript, Entry{
			Input:     "welcome",
			Output:    append([]string(nil), WelcomeLines...),
			Timestamp: s.clock.Now().Format(TimestampLayout),
			Banner:    true,
		})
	}
	return s
}

// Submit runs line through the resolver. Blank lines are ignored and
// reported with ok == false.
func (s *Session) Submit(line string) (res Result, ok bool) {
	if strings.TrimSpace(line) == "" {
		return Result{}, false
	}
	now := s.clock.Now()
	res = Resolve(s.table, line, now)
	if res.Reset {
		s.transcript = nil
	} else {
		s.transcript = append(s.transcript, Entry{
			Input:     line,
			Output:    res.Lines,
			Timestamp: now.Format(TimestampLayout),
		})
	}
	// clear is recalled like any other input; only the transcript is reset.
	s.recall = append(s.recall, line)
	s.historyIndex = -1
	s.input = ""
	return res, true
}

// RecallPrevious moves one step back in the recall buffer, most recent
// first. At the oldest entry it does nothing.
func (s *Session) RecallPrevious() {
	if s.historyIndex+1 >= len(s.recall) {
		return
	}
	s.historyIndex++
	s.input = s.recall[len(s.recall)-1-s.historyIndex]
}

// RecallNext moves one step forward in the recall buffer. Stepping past the
// most recent entry clears the input buffer.
func (s *Session) RecallNext() {
	switch {
	case s.historyIndex > 0:
		s.historyIndex--
		s.input = s.recall[len(s.recall)-1-s.historyIndex]
	case s.historyIndex == 0:
		s.historyIndex = -1
		s.input = ""
	}
}

// SetInput replaces the input buffer, as when the visitor types.
func (s *Session) SetInput(text string) { s.input = text }

// Input returns the current input buffer.
func (s *Session) Input() string { return s.input }

// HistoryIndex returns the recall cursor, -1 when not browsing.
func (s *Session) HistoryIndex() int { return s.historyIndex }

// Transcript returns a copy of the transcript in execution order.
func (s *Session) Transcript() []Entry {
	out := make([]Entry, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// History returns a copy of the recall buffer in submission order.
func (s *Session) History() []string {
	out := make([]string, len(s.recall))
	copy(out, s.recall)
	return out
}

// Table returns the command table the session resolves against.
func (s *Session) Table() *Table { return s.table }
