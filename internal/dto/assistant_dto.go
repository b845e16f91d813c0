package dto

import "time"

// CreateSessionRequest carries the contact details captured before chatting.
type CreateSessionRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Company string `json:"company" validate:"max=150"`
	Phone   string `json:"phone" validate:"required,e164|numeric"`
	Country string `json:"country" validate:"required,min=2,max=60"`
}

type CreateSessionResponse struct {
	Id       string `json:"id"`
	Greeting string `json:"greeting"`
}

type SendChatRequest struct {
	SessionId string `json:"session_id" validate:"required,uuid4"`
	Message   string `json:"message" validate:"required,max=4000"`
}

type ChatMessageDTO struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type SendChatResponse struct {
	SessionId string         `json:"session_id"`
	Sent      ChatMessageDTO `json:"sent"`
	Reply     ChatMessageDTO `json:"reply"`

	// HandoffCTA tells the presentation layer to render the human-handoff
	// call-to-action separately from the text answer.
	HandoffCTA bool   `json:"handoff_cta"`
	BookingRef string `json:"booking_ref,omitempty"`

	MessageNumber int       `json:"message_number"`
	CreatedAt     time.Time `json:"created_at"`
}

type GetHistoryResponse struct {
	SessionId string           `json:"session_id"`
	Messages  []ChatMessageDTO `json:"messages"`
}
