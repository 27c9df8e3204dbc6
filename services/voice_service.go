package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"parley/contract"
	"parley/domain"
	"parley/domain/event"
	"parley/errors"
	"parley/runtime"
)

type IVoiceService interface {
	JoinVoice(ctx context.Context, conn *runtime.Connection, channelID string) error
	RelaySignal(ctx context.Context, conn *runtime.Connection, toConnID, channelID string, payload json.RawMessage) error
	SetVoiceState(ctx context.Context, conn *runtime.Connection, channelID string, muted, deafened bool) error
	LeaveVoice(ctx context.Context, conn *runtime.Connection, channelID string) error
}

// VoiceService fronts the coordinator with the CONNECT permission gate and
// the joiner's snapshot delivery.
type VoiceService struct {
	orchestrator *runtime.Orchestrator
	permissions  IPermissionService
	store        contract.Store
	log          *slog.Logger
}

func NewVoiceService(log *slog.Logger, orchestrator *runtime.Orchestrator,
	permissions IPermissionService, store contract.Store) *VoiceService {
	return &VoiceService{
		orchestrator: orchestrator,
		permissions:  permissions,
		store:        store,
		log:          log,
	}
}

// JoinVoice checks CONNECT, joins (evicting any prior room) and hands the
// joiner the participant snapshot needed to start peer negotiation.
func (s *VoiceService) JoinVoice(ctx context.Context, conn *runtime.Connection, channelID string) error {
	channel, err := s.store.GetChannel(ctx, channelID)
	if err != nil {
		return err
	}
	if channel.Kind != domain.ChannelVoice {
		return fmt.Errorf("channel %s is not a voice channel: %w", channelID, errors.ErrStateConflict)
	}
	if err := s.permissions.Require(ctx, conn.UserID, channel.ServerID, domain.PermConnect); err != nil {
		return err
	}

	snapshot, err := s.orchestrator.Voice().Join(ctx, conn, channelID)
	if err != nil {
		return err
	}

	if err := conn.Sink.Consume(ctx, event.VoiceChannelJoined{
		ChannelID:    channelID,
		Participants: snapshot,
	}); err != nil {
		s.log.Warn("Joiner snapshot dropped", "conn_id", conn.ID, "channel_id", channelID, "error", err)
	}
	return nil
}

func (s *VoiceService) RelaySignal(ctx context.Context, conn *runtime.Connection, toConnID, channelID string, payload json.RawMessage) error {
	return s.orchestrator.Voice().RelaySignal(ctx, conn, toConnID, channelID, payload)
}

func (s *VoiceService) SetVoiceState(ctx context.Context, conn *runtime.Connection, channelID string, muted, deafened bool) error {
	return s.orchestrator.Voice().SetState(ctx, conn.UserID, channelID, muted, deafened)
}

func (s *VoiceService) LeaveVoice(ctx context.Context, conn *runtime.Connection, channelID string) error {
	return s.orchestrator.Voice().Leave(ctx, conn.UserID, channelID)
}
