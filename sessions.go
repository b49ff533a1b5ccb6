package main

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/adarshrangare/portfolio/terminal"
)

// visitorSession is one browser's terminal. Its mutex serialises the
// requests of a single visitor so the session sees one event at a time.
type visitorSession struct {
	mu       sync.Mutex
	session  *terminal.Session
	lastSeen time.Time
}

// sessionRegistry keeps terminal sessions in memory only; nothing survives
// a restart.
type sessionRegistry struct {
	mu       sync.Mutex
	table    *terminal.Table
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]*visitorSession
	onChange func(active int)
}

func newSessionRegistry(table *terminal.Table, ttl time.Duration) *sessionRegistry {
	return &sessionRegistry{
		table:    table,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*visitorSession),
		onChange: func(int) {},
	}
}

// get returns the live session for id, dropping it if it has been idle
// longer than the TTL.
func (r *sessionRegistry) get(id string) (*visitorSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	vs, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	now := r.now()
	if r.expired(vs, now) {
		delete(r.sessions, id)
		r.onChange(len(r.sessions))
		return nil, false
	}
	vs.lastSeen = now
	return vs, true
}

func (r *sessionRegistry) create() (string, *visitorSession) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	for id, vs := range r.sessions {
		if r.expired(vs, now) {
			delete(r.sessions, id)
		}
	}
	id := uuid.NewString()
	vs := &visitorSession{
		session:  terminal.NewSession(r.table, terminal.WithClock(terminal.ClockFunc(r.now))),
		lastSeen: now,
	}
	r.sessions[id] = vs
	r.onChange(len(r.sessions))
	return id, vs
}

func (r *sessionRegistry) remove(id string) (*visitorSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	vs, ok := r.sessions[id]
	if ok {
		delete(r.sessions, id)
		r.onChange(len(r.sessions))
	}
	return vs, ok
}

func (r *sessionRegistry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *sessionRegistry) expired(vs *visitorSession, now time.Time) bool {
	return r.ttl > 0 && now.Sub(vs.lastSeen) > r.ttl
}
