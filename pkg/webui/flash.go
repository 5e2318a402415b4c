package webui

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const sessionName = "battrack"

const (
	noticeSuccess = "success"
	noticeError   = "error"
)

// Notice is a one-shot user-facing message rendered on the next page view.
type Notice struct {
	Kind    string
	Message string
}

// flash queues a notice for the next render.
func (s *Server) flash(c *gin.Context, kind, message string) {
	sess, err := s.sessions.Get(c.Request, sessionName)
	if err != nil {
		// A stale or tampered cookie yields a fresh session; carry on.
		logrus.Debugf("flash session decode failed: %v", err)
	}
	sess.AddFlash(message, kind)
	if err := sess.Save(c.Request, c.Writer); err != nil {
		logrus.Errorf("failed to save flash session: %v", err)
	}
}

// notices drains and returns all queued notices, success first.
func (s *Server) notices(c *gin.Context) []Notice {
	sess, err := s.sessions.Get(c.Request, sessionName)
	if err != nil {
		logrus.Debugf("flash session decode failed: %v", err)
	}

	var out []Notice
	for _, kind := range []string{noticeSuccess, noticeError} {
		for _, f := range sess.Flashes(kind) {
			if msg, ok := f.(string); ok {
				out = append(out, Notice{Kind: kind, Message: msg})
			}
		}
	}

	// Flashes mutates the session; persist the drained state.
	if err := sess.Save(c.Request, c.Writer); err != nil {
		logrus.Errorf("failed to save flash session: %v", err)
	}
	return out
}
