package models

// Flash categories.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// Session is the server-side state bound to a browser cookie.
// UserID is zero for anonymous sessions.
type Session struct {
	ID      string  `json:"id"`
	UserID  int64   `json:"user_id,omitempty"`
	Flashes []Flash `json:"flashes,omitempty"`
}

// AddFlash queues a message for the next render.
func (s *Session) AddFlash(category, message string) {
	s.Flashes = append(s.Flashes, Flash{Category: category, Message: message})
}

// PopFlashes returns the queued messages and empties the queue.
func (s *Session) PopFlashes() []Flash {
	flashes := s.Flashes
	s.Flashes = nil
	return flashes
}

// Authenticated reports whether a user is bound to the session.
func (s *Session) Authenticated() bool {
	return s.UserID != 0
}
