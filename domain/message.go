package domain

import (
	"time"

	"github.com/google/uuid"
)

// Attachment references an already-uploaded file. The core never touches the
// bytes; upload and serving live outside this repository.
type Attachment struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

type Message struct {
	ID          uuid.UUID    `json:"id"`
	ChannelID   string       `json:"channel_id"`
	SenderID    string       `json:"sender_id"`
	Content     string       `json:"content"`
	ReplyTo     *uuid.UUID   `json:"reply_to,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

// ReactionAggregate is the per-message emoji tally broadcast after every
// add/remove. Users lists who reacted so clients can render their own state.
type ReactionAggregate struct {
	MessageID uuid.UUID           `json:"message_id"`
	ChannelID string              `json:"channel_id"`
	Counts    map[string]int      `json:"counts"`
	Users     map[string][]string `json:"users"`
}
