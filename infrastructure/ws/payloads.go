package ws

import (
	"encoding/json"

	"parley/domain"
)

// Envelope is the wire frame in both directions:
// {"type": "...", "payload": {...}}. Unknown inbound types are rejected at
// the dispatch boundary, never silently ignored.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Inbound event names.
const (
	evtAuthenticate     = "authenticate"
	evtJoinChannel      = "join_channel"
	evtLeaveChannel     = "leave_channel"
	evtSendMessage      = "send_message"
	evtAddReaction      = "add_reaction"
	evtRemoveReaction   = "remove_reaction"
	evtTyping           = "typing"
	evtJoinVoice        = "join-voice-channel"
	evtSignal           = "signal"
	evtVoiceStateChange = "voice-state-change"
	evtLeaveVoice       = "leave-voice-channel"
)

type authenticatePayload struct {
	Token string `json:"token" validate:"required"`
}

type channelPayload struct {
	ChannelID string `json:"channelId" validate:"required"`
}

type sendMessagePayload struct {
	ChannelID   string              `json:"channelId" validate:"required"`
	Content     string              `json:"content" validate:"required,max=4000"`
	ReplyTo     *string             `json:"replyTo,omitempty"`
	Attachments []domain.Attachment `json:"attachments,omitempty" validate:"max=10"`
}

type reactionPayload struct {
	ChannelID string `json:"channelId" validate:"required"`
	MessageID string `json:"messageId" validate:"required,uuid"`
	Emoji     string `json:"emoji" validate:"required,max=64"`
}

type signalPayload struct {
	To        string          `json:"to" validate:"required"`
	ChannelID string          `json:"channelId" validate:"required"`
	Signal    json.RawMessage `json:"signal" validate:"required"`
}

type voiceStatePayload struct {
	ChannelID  string `json:"channelId" validate:"required"`
	IsMuted    bool   `json:"isMuted"`
	IsDeafened bool   `json:"isDeafened"`
}
