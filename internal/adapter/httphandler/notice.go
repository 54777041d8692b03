package httphandler

import "sync"

// An ImageFailureNotice counts broken image loads within one UI
// session and fires a single "images are failing" notice when the
// count reaches the threshold. State is session-local, never shared
// across requests of different sessions.
type ImageFailureNotice struct {
	threshold int
	count     int
	fired     bool
}

func NewImageFailureNotice(threshold int) *ImageFailureNotice {
	if threshold < 1 {
		threshold = 1
	}
	return &ImageFailureNotice{threshold: threshold}
}

// Observe records one failed image load and reports whether the
// one-time notice should be shown now.
func (n *ImageFailureNotice) Observe() bool {
	n.count++
	if n.fired || n.count < n.threshold {
		return false
	}
	n.fired = true
	return true
}

func (n *ImageFailureNotice) Count() int {
	return n.count
}

// SessionNotices keeps one ImageFailureNotice per UI session.
type SessionNotices struct {
	mu        sync.Mutex
	threshold int
	bySession map[string]*ImageFailureNotice
}

func NewSessionNotices(threshold int) *SessionNotices {
	return &SessionNotices{
		threshold: threshold,
		bySession: make(map[string]*ImageFailureNotice),
	}
}

// Observe records one failure for the session and reports whether its
// one-time notice fires now.
func (s *SessionNotices) Observe(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.bySession[sessionID]
	if !ok {
		n = NewImageFailureNotice(s.threshold)
		s.bySession[sessionID] = n
	}
	return n.Observe()
}
