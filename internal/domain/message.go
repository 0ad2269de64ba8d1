package domain

import "time"

// Message is one entry of an assistant conversation.
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	IsUser    bool      `json:"isUser"`
	Timestamp time.Time `json:"timestamp"`
}

type ChatRequest struct {
	Message      string `json:"message" validate:"required,max=4000"`
	ActiveNoteID string `json:"active_note_id"`
}

type ChatResponse struct {
	UserMessage      *Message `json:"user_message"`
	AssistantMessage *Message `json:"assistant_message"`
}
