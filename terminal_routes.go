package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/adarshrangare/portfolio/terminal"
)

const (
	sessionCookie = "terminal_session"
	prompt        = "guest@adarsh-dev:~$"
)

// terminalView is the data behind the terminal.html fragment.
type terminalView struct {
	Prompt  string
	Entries []terminal.Entry
	Input   string
	// Effects is the space separated list the page applies after the swap.
	Effects string
}

// keyResponse tells the page what to put in the input field after an
// arrow key.
type keyResponse struct {
	Input          string `json:"input"`
	HistoryIndex   int    `json:"history_index"`
	PreventDefault bool   `json:"prevent_default"`
}

func (s *Server) setupTerminalRoutes(r *gin.Engine) {
	// Fragment requested once the terminal section scrolls into view
	r.GET("/terminal", func(c *gin.Context) {
		vs := s.sessionFor(c)
		vs.mu.Lock()
		defer vs.mu.Unlock()
		out := vs.session.Handle(terminal.VisibleEvent{})
		s.renderTerminal(c, vs.session, out.Effects)
	})

	r.POST("/terminal/submit", func(c *gin.Context) {
		line := c.PostForm("command")
		vs := s.sessionFor(c)
		vs.mu.Lock()
		defer vs.mu.Unlock()

		out := vs.session.Handle(terminal.SubmitEvent{Line: line})
		if out.Submitted {
			s.metrics.observe(out.Result)
			command, outcome := classify(out.Result)
			s.trackCommand(c, command, outcome)
			s.log.Debug("terminal command", "command", command, "outcome", outcome)
		} else {
			// blank submissions keep whatever the visitor typed
			vs.session.Handle(terminal.InputEvent{Text: line})
		}
		s.renderTerminal(c, vs.session, out.Effects)
	})

	r.POST("/terminal/key", func(c *gin.Context) {
		vs := s.sessionFor(c)
		vs.mu.Lock()
		defer vs.mu.Unlock()

		// the field may have been edited since the last round trip
		if text, ok := c.GetPostForm("input"); ok {
			vs.session.Handle(terminal.InputEvent{Text: text})
		}
		out := vs.session.Handle(terminal.KeyEvent{Key: c.PostForm("key")})
		c.JSON(http.StatusOK, keyResponse{
			Input:          vs.session.Input(),
			HistoryIndex:   vs.session.HistoryIndex(),
			PreventDefault: out.PreventDefault,
		})
	})

	r.DELETE("/terminal", func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err == nil {
			if vs, ok := s.sessions.remove(id); ok {
				vs.mu.Lock()
				out := vs.session.Handle(terminal.TeardownEvent{})
				vs.mu.Unlock()
				setTrigger(c, out.Effects)
			}
		}
		c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
		c.Status(http.StatusNoContent)
	})
}

// sessionFor returns the visitor's session, starting a new one when the
// cookie is missing or the old session expired. The cookie is re-issued on
// every request so it expires together with the server-side idle timer.
func (s *Server) sessionFor(c *gin.Context) *visitorSession {
	if id, err := c.Cookie(sessionCookie); err == nil {
		if vs, ok := s.sessions.get(id); ok {
			s.setSessionCookie(c, id)
			return vs
		}
	}
	id, vs := s.sessions.create()
	s.setSessionCookie(c, id)
	return vs
}

func (s *Server) setSessionCookie(c *gin.Context, id string) {
	c.SetCookie(sessionCookie, id, int(s.cfg.SessionTTL.Seconds()), "/", "", false, true)
}

func (s *Server) renderTerminal(c *gin.Context, sess *terminal.Session, effects []terminal.Effect) {
	setTrigger(c, effects)
	c.HTML(http.StatusOK, "terminal.html", terminalView{
		Prompt:  prompt,
		Entries: sess.Transcript(),
		Input:   sess.Input(),
		Effects: strings.Join(effectNames(effects), " "),
	})
}

// setTrigger also reports effects as htmx client events for callers that
// are not the page itself.
func setTrigger(c *gin.Context, effects []terminal.Effect) {
	if len(effects) == 0 {
		return
	}
	c.Header("HX-Trigger", strings.Join(effectNames(effects), ", "))
}

func effectNames(effects []terminal.Effect) []string {
	names := make([]string, len(effects))
	for i, e := range effects {
		names[i] = string(e)
	}
	return names
}
