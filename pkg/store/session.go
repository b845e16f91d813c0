package store

// Message roles. The single system message is stored separately from the
// transcript so it can never be truncated out of a completion request.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one conversation message in provider-agnostic form.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Contact holds the visitor details captured before the chat starts.
// Format validation happens at the transport boundary, not here.
type Contact struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
	Country string `json:"country"`
}

// Session is the in-memory state of one conversation. It is owned by exactly
// one interaction at a time and is never persisted across restarts.
type Session struct {
	ID      string  `json:"id"`
	Contact Contact `json:"contact"`

	// SystemInstruction is immutable for the session lifetime.
	SystemInstruction string `json:"system_instruction"`

	// History is append-only and excludes the system message.
	History []Message `json:"history"`

	UserMessageCount  int  `json:"user_message_count"`
	HandoffOfferShown bool `json:"handoff_offer_shown"`
}

// NewSession creates a session with the given id, contact details and
// system instruction.
func NewSession(id string, contact Contact, systemInstruction string) *Session {
	return &Session{
		ID:                id,
		Contact:           contact,
		SystemInstruction: systemInstruction,
	}
}

// Append adds a message to the transcript. User messages bump the counter
// used by the handoff threshold rule.
func (s *Session) Append(msg Message) {
	s.History = append(s.History, msg)
	if msg.Role == RoleUser {
		s.UserMessageCount++
	}
}

// WindowedHistory returns the system message followed by the most recent
// maxRecent transcript messages. The system message survives any truncation.
func (s *Session) WindowedHistory(maxRecent int) []Message {
	recent := s.History
	if maxRecent >= 0 && len(recent) > maxRecent {
		recent = recent[len(recent)-maxRecent:]
	}

	window := make([]Message, 0, len(recent)+1)
	window = append(window, Message{Role: RoleSystem, Content: s.SystemInstruction})
	window = append(window, recent...)
	return window
}
