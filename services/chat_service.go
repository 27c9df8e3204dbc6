package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"parley/contract"
	"parley/domain"
	"parley/domain/event"
	"parley/errors"
	"parley/runtime"
)

type IChatService interface {
	JoinChannel(ctx context.Context, conn *runtime.Connection, channelID string) error
	LeaveChannel(conn *runtime.Connection, channelID string) error
	SendMessage(ctx context.Context, conn *runtime.Connection, cmd SendMessageCommand) (domain.Message, error)
	Typing(ctx context.Context, conn *runtime.Connection, channelID string) error
	AddReaction(ctx context.Context, conn *runtime.Connection, cmd ReactionCommand) error
	RemoveReaction(ctx context.Context, conn *runtime.Connection, cmd ReactionCommand) error
}

type SendMessageCommand struct {
	ChannelID   string
	Content     string
	ReplyTo     *uuid.UUID
	Attachments []domain.Attachment
}

type ReactionCommand struct {
	ChannelID string
	MessageID uuid.UUID
	Emoji     string
}

// ChatService drives text-room traffic: subscription, message fanout, typing
// and reaction aggregates. Authorization happens here, before any router
// state is touched, so a rejected mutation is never half applied.
type ChatService struct {
	orchestrator *runtime.Orchestrator
	permissions  IPermissionService
	store        contract.Store
	log          *slog.Logger

	mu        sync.Mutex
	reactions map[uuid.UUID]*domain.ReactionAggregate
}

func NewChatService(log *slog.Logger, orchestrator *runtime.Orchestrator,
	permissions IPermissionService, store contract.Store) *ChatService {
	return &ChatService{
		orchestrator: orchestrator,
		permissions:  permissions,
		store:        store,
		log:          log,
		reactions:    make(map[uuid.UUID]*domain.ReactionAggregate),
	}
}

// JoinChannel subscribes the connection to the channel room, gated by server
// membership.
func (s *ChatService) JoinChannel(ctx context.Context, conn *runtime.Connection, channelID string) error {
	channel, err := s.store.GetChannel(ctx, channelID)
	if err != nil {
		return err
	}
	member, err := s.store.IsMember(ctx, channel.ServerID, conn.UserID)
	if err != nil {
		return err
	}
	if !member {
		return fmt.Errorf("channel %s: %w", channelID, errors.ErrPermissionDenied)
	}
	s.orchestrator.Router().Join(conn, domain.RoomID(channelID))
	return nil
}

func (s *ChatService) LeaveChannel(conn *runtime.Connection, channelID string) error {
	s.orchestrator.Router().Leave(conn.ID, domain.RoomID(channelID))
	return nil
}

// SendMessage broadcasts new_message to every subscriber of the channel,
// the sender's other devices included.
func (s *ChatService) SendMessage(ctx context.Context, conn *runtime.Connection, cmd SendMessageCommand) (domain.Message, error) {
	channel, err := s.store.GetChannel(ctx, cmd.ChannelID)
	if err != nil {
		return domain.Message{}, err
	}
	if err := s.permissions.Require(ctx, conn.UserID, channel.ServerID, domain.PermSendMessages); err != nil {
		return domain.Message{}, err
	}

	message := domain.Message{
		ID:          uuid.New(),
		ChannelID:   cmd.ChannelID,
		SenderID:    conn.UserID,
		Content:     cmd.Content,
		ReplyTo:     cmd.ReplyTo,
		Attachments: cmd.Attachments,
		CreatedAt:   time.Now().UTC(),
	}
	s.orchestrator.Router().Publish(ctx, domain.RoomID(cmd.ChannelID), event.NewMessage{Message: message})
	return message, nil
}

// Typing excludes the sender: your own keyboard needs no indicator.
func (s *ChatService) Typing(ctx context.Context, conn *runtime.Connection, channelID string) error {
	s.orchestrator.Router().Publish(ctx, domain.RoomID(channelID), event.UserTyping{
		ChannelID: channelID,
		UserID:    conn.UserID,
		At:        time.Now().UTC(),
	}, conn.ID)
	return nil
}

func (s *ChatService) AddReaction(ctx context.Context, conn *runtime.Connection, cmd ReactionCommand) error {
	return s.updateReaction(ctx, conn, cmd, true)
}

func (s *ChatService) RemoveReaction(ctx context.Context, conn *runtime.Connection, cmd ReactionCommand) error {
	return s.updateReaction(ctx, conn, cmd, false)
}

// updateReaction mutates the in-memory aggregate and broadcasts the new
// tally to the message's channel room, sender included.
func (s *ChatService) updateReaction(ctx context.Context, conn *runtime.Connection, cmd ReactionCommand, add bool) error {
	channel, err := s.store.GetChannel(ctx, cmd.ChannelID)
	if err != nil {
		return err
	}
	if err := s.permissions.Require(ctx, conn.UserID, channel.ServerID, domain.PermAddReactions); err != nil {
		return err
	}

	s.mu.Lock()
	agg, ok := s.reactions[cmd.MessageID]
	if !ok {
		if !add {
			s.mu.Unlock()
			return fmt.Errorf("reaction on message %s: %w", cmd.MessageID, errors.ErrNotFound)
		}
		agg = &domain.ReactionAggregate{
			MessageID: cmd.MessageID,
			ChannelID: cmd.ChannelID,
			Counts:    make(map[string]int),
			Users:     make(map[string][]string),
		}
		s.reactions[cmd.MessageID] = agg
	}

	if add {
		if !lo.Contains(agg.Users[cmd.Emoji], conn.UserID) {
			agg.Users[cmd.Emoji] = append(agg.Users[cmd.Emoji], conn.UserID)
			agg.Counts[cmd.Emoji]++
		}
	} else {
		if lo.Contains(agg.Users[cmd.Emoji], conn.UserID) {
			agg.Users[cmd.Emoji] = lo.Without(agg.Users[cmd.Emoji], conn.UserID)
			agg.Counts[cmd.Emoji]--
			if agg.Counts[cmd.Emoji] <= 0 {
				delete(agg.Counts, cmd.Emoji)
				delete(agg.Users, cmd.Emoji)
			}
		}
	}
	snapshot := copyAggregate(*agg)
	s.mu.Unlock()

	s.orchestrator.Router().Publish(ctx, domain.RoomID(cmd.ChannelID), event.ReactionUpdated{Aggregate: snapshot})
	return nil
}

func copyAggregate(a domain.ReactionAggregate) domain.ReactionAggregate {
	out := domain.ReactionAggregate{
		MessageID: a.MessageID,
		ChannelID: a.ChannelID,
		Counts:    make(map[string]int, len(a.Counts)),
		Users:     make(map[string][]string, len(a.Users)),
	}
	for k, v := range a.Counts {
		out.Counts[k] = v
	}
	for k, v := range a.Users {
		out.Users[k] = append([]string(nil), v...)
	}
	return out
}
