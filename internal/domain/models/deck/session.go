package deck

// DefaultSessionID is used when a caller does not identify its session.
const DefaultSessionID = "default"

// Session is the editing context of one caller. CurrentDeckID is the deck
// implicitly targeted by operations that take no deck id; empty means none.
type Session struct {
	ID            string `json:"id"`
	CurrentDeckID string `json:"current_deck_id,omitempty"`
}

// HasCurrent reports whether the session has a current deck.
func (s *Session) HasCurrent() bool {
	return s != nil && s.CurrentDeckID != ""
}
