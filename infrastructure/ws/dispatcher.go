package ws

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"parley/domain/event"
	"parley/errors"
	"parley/runtime"
	"parley/services"
	"parley/sink"
)

// Session is one socket's dispatch state. Conn stays nil until the
// authenticate handshake binds a verified user.
type Session struct {
	Sink *sink.WsSink
	Conn *runtime.Connection
}

func (s *Session) authenticated() bool { return s.Conn != nil }

// Dispatcher is the per-event handler boundary. Every inbound frame passes
// the rate limiter, then (where applicable) authorization inside the
// services, then mutates core state. Failures become a user-scoped error
// event; only a store outage during the handshake is fatal to the socket.
type Dispatcher struct {
	log          *slog.Logger
	orchestrator *runtime.Orchestrator
	authService  services.IAuthService
	chat         services.IChatService
	voice        services.IVoiceService
	validate     *validator.Validate
}

func NewDispatcher(log *slog.Logger, orchestrator *runtime.Orchestrator,
	authService services.IAuthService, chat services.IChatService, voice services.IVoiceService) *Dispatcher {
	return &Dispatcher{
		log:          log,
		orchestrator: orchestrator,
		authService:  authService,
		chat:         chat,
		voice:        voice,
		validate:     validator.New(),
	}
}

// Handle processes one inbound frame. A non-nil return means the connection
// must be closed; every other failure has already been answered with a
// scoped error event on the session's sink.
func (d *Dispatcher) Handle(ctx context.Context, s *Session, raw []byte) error {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		d.sendError(ctx, s, "", fmt.Errorf("%w: malformed envelope", errors.ErrInvalidPayload))
		return nil
	}

	if env.Type == evtAuthenticate {
		return d.handleAuthenticate(ctx, s, env.Payload)
	}
	if !s.authenticated() {
		d.sendError(ctx, s, env.Type, fmt.Errorf("%w: authenticate first", errors.ErrAuthentication))
		return nil
	}

	// Handler work runs under the connection's lifetime context: a
	// disconnect mid-flight cancels pending store lookups.
	ctx = s.Conn.Context()

	if allowed, retryAfter := d.orchestrator.Limiter().Allow(s.Conn.ID, env.Type); !allowed {
		d.orchestrator.Monitoring().IncrRateLimited()
		d.consume(ctx, s, event.RateLimited{Op: env.Type, RetryAfter: retryAfter.Milliseconds()})
		return nil
	}

	var err error
	switch env.Type {
	case evtJoinChannel:
		err = withPayload(d, env.Payload, func(p channelPayload) error {
			return d.chat.JoinChannel(ctx, s.Conn, p.ChannelID)
		})
	case evtLeaveChannel:
		err = withPayload(d, env.Payload, func(p channelPayload) error {
			return d.chat.LeaveChannel(s.Conn, p.ChannelID)
		})
	case evtSendMessage:
		err = withPayload(d, env.Payload, func(p sendMessagePayload) error {
			cmd, convErr := toSendCommand(p)
			if convErr != nil {
				return convErr
			}
			_, sendErr := d.chat.SendMessage(ctx, s.Conn, cmd)
			return sendErr
		})
	case evtAddReaction:
		err = withPayload(d, env.Payload, func(p reactionPayload) error {
			return d.chat.AddReaction(ctx, s.Conn, toReactionCommand(p))
		})
	case evtRemoveReaction:
		err = withPayload(d, env.Payload, func(p reactionPayload) error {
			return d.chat.RemoveReaction(ctx, s.Conn, toReactionCommand(p))
		})
	case evtTyping:
		err = withPayload(d, env.Payload, func(p channelPayload) error {
			return d.chat.Typing(ctx, s.Conn, p.ChannelID)
		})
	case evtJoinVoice:
		err = withPayload(d, env.Payload, func(p channelPayload) error {
			return d.voice.JoinVoice(ctx, s.Conn, p.ChannelID)
		})
	case evtSignal:
		err = withPayload(d, env.Payload, func(p signalPayload) error {
			return d.voice.RelaySignal(ctx, s.Conn, p.To, p.ChannelID, p.Signal)
		})
	case evtVoiceStateChange:
		err = withPayload(d, env.Payload, func(p voiceStatePayload) error {
			return d.voice.SetVoiceState(ctx, s.Conn, p.ChannelID, p.IsMuted, p.IsDeafened)
		})
	case evtLeaveVoice:
		err = withPayload(d, env.Payload, func(p channelPayload) error {
			return d.voice.LeaveVoice(ctx, s.Conn, p.ChannelID)
		})
	default:
		err = fmt.Errorf("%w: %q", errors.ErrUnknownEvent, env.Type)
	}

	if err != nil {
		d.sendError(ctx, s, env.Type, err)
	}
	return nil
}

// handleAuthenticate binds a verified user to the session. Bad tokens leave
// the socket open for a retry; a store outage closes it.
func (d *Dispatcher) handleAuthenticate(ctx context.Context, s *Session, payload json.RawMessage) error {
	if s.authenticated() {
		d.sendError(ctx, s, evtAuthenticate, fmt.Errorf("%w: already authenticated", errors.ErrStateConflict))
		return nil
	}

	var p authenticatePayload
	if err := json.Unmarshal(payload, &p); err == nil {
		err = d.validate.Struct(p)
		if err != nil {
			d.consume(ctx, s, event.AuthError{Reason: "token required"})
			return nil
		}
	} else {
		d.consume(ctx, s, event.AuthError{Reason: "token required"})
		return nil
	}

	userID, _, err := d.authService.Authenticate(ctx, p.Token)
	if err != nil {
		if stderrors.Is(err, errors.ErrStoreUnavailable) {
			d.consume(ctx, s, event.AuthError{Reason: "temporarily unavailable"})
			return err
		}
		d.consume(ctx, s, event.AuthError{Reason: "invalid token"})
		return nil
	}

	s.Conn = runtime.NewConnection(ctx, userID, s.Sink)
	d.orchestrator.Connect(ctx, s.Conn)
	d.consume(ctx, s, event.Authenticated{UserID: userID, ConnectionID: s.Conn.ID})
	return nil
}

// Disconnect runs the cleanup cascade for an authenticated session. Safe to
// call twice.
func (d *Dispatcher) Disconnect(s *Session) {
	if s.Conn != nil {
		d.orchestrator.Disconnect(s.Conn)
	}
}

// withPayload unmarshals and validates an event payload before invoking the
// handler, so every malformed frame fails the same way.
func withPayload[T any](d *Dispatcher, raw json.RawMessage, fn func(T) error) error {
	var p T
	if err := json.Unmarshal(raw, &p); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	if err := d.validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	return fn(p)
}

func toSendCommand(p sendMessagePayload) (services.SendMessageCommand, error) {
	cmd := services.SendMessageCommand{
		ChannelID:   p.ChannelID,
		Content:     p.Content,
		Attachments: p.Attachments,
	}
	if p.ReplyTo != nil {
		id, err := uuid.Parse(*p.ReplyTo)
		if err != nil {
			return cmd, fmt.Errorf("%w: bad replyTo id", errors.ErrInvalidPayload)
		}
		cmd.ReplyTo = &id
	}
	return cmd, nil
}

func toReactionCommand(p reactionPayload) services.ReactionCommand {
	// MessageID format already validated by the uuid tag.
	id, _ := uuid.Parse(p.MessageID)
	return services.ReactionCommand{
		ChannelID: p.ChannelID,
		MessageID: id,
		Emoji:     p.Emoji,
	}
}

func (d *Dispatcher) sendError(ctx context.Context, s *Session, op string, err error) {
	d.consume(ctx, s, event.ErrorEvent{Code: errors.EventCode(err), Op: op, Message: err.Error()})
}

func (d *Dispatcher) consume(ctx context.Context, s *Session, e event.DomainEvent) {
	if err := s.Sink.Consume(ctx, e); err != nil {
		d.log.Debug("Outbound event dropped", "event", e.EventType(), "error", err)
	}
}
