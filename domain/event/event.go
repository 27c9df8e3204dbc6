// Package event defines the outbound event union fanned out to connections.
// Every event knows its wire name; the gateway wraps it in an envelope
// {"type": ..., "payload": ...} before writing it to the socket.
package event

import (
	"encoding/json"
	"time"

	"parley/domain"
)

type DomainEvent interface {
	EventType() string
}

type Authenticated struct {
	UserID       string `json:"userId"`
	ConnectionID string `json:"connectionId"`
}

func (Authenticated) EventType() string { return "authenticated" }

type AuthError struct {
	Reason string `json:"reason"`
}

func (AuthError) EventType() string { return "auth_error" }

// ErrorEvent is the user-scoped failure notice. Code carries the taxonomy
// name (permission_denied, not_found, ...), Op names the rejected operation.
type ErrorEvent struct {
	Code    string `json:"code"`
	Op      string `json:"op"`
	Message string `json:"message"`
}

func (ErrorEvent) EventType() string { return "error" }

type RateLimited struct {
	Op         string `json:"op"`
	RetryAfter int64  `json:"retryAfterMs"`
}

func (RateLimited) EventType() string { return "rate_limited" }

type NewMessage struct {
	Message domain.Message `json:"message"`
}

func (NewMessage) EventType() string { return "new_message" }

type ReactionUpdated struct {
	Aggregate domain.ReactionAggregate `json:"aggregate"`
}

func (ReactionUpdated) EventType() string { return "reaction_updated" }

type UserTyping struct {
	ChannelID string    `json:"channelId"`
	UserID    string    `json:"userId"`
	At        time.Time `json:"at"`
}

func (UserTyping) EventType() string { return "user_typing" }

type PresenceChanged struct {
	UserID string `json:"userId"`
	Status string `json:"status"` // "online" | "offline"
}

func (PresenceChanged) EventType() string { return "presence_changed" }

// VoiceChannelJoined goes to the joiner only: the participant snapshot it
// needs to start peer negotiation client-side.
type VoiceChannelJoined struct {
	ChannelID    string                    `json:"channelId"`
	Participants []domain.VoiceParticipant `json:"participants"`
}

func (VoiceChannelJoined) EventType() string { return "voice-channel-joined" }

type UserJoinedVoice struct {
	ChannelID   string                  `json:"channelId"`
	Participant domain.VoiceParticipant `json:"participant"`
}

func (UserJoinedVoice) EventType() string { return "user-joined-voice" }

type UserLeftVoice struct {
	ChannelID string `json:"channelId"`
	UserID    string `json:"userId"`
}

func (UserLeftVoice) EventType() string { return "user-left-voice" }

type VoiceStateChanged struct {
	ChannelID  string `json:"channelId"`
	UserID     string `json:"userId"`
	IsMuted    bool   `json:"isMuted"`
	IsDeafened bool   `json:"isDeafened"`
}

func (VoiceStateChanged) EventType() string { return "voice-state-changed" }

// Signal is a relayed negotiation payload. The blob is never inspected;
// only the two endpoints understand it.
type Signal struct {
	ChannelID string          `json:"channelId"`
	From      string          `json:"from"` // sender's connection id
	Payload   json.RawMessage `json:"signal"`
}

func (Signal) EventType() string { return "signal" }
