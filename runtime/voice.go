package runtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"parley/contract"
	"parley/domain"
	"parley/domain/event"
	"parley/errors"
	"parley/observability"
)

// VoiceRoom is the fanout scope of a voice channel's signaling traffic,
// distinct from the text room of the same channel id.
func VoiceRoom(channelID string) domain.RoomID {
	return domain.RoomID("voice:" + channelID)
}

type voiceMember struct {
	participant domain.VoiceParticipant
	phase       domain.VoicePhase
}

// VoiceCoordinator manages voice-room membership, relays opaque negotiation
// payloads between exactly two peers, and replicates mute/deafen state.
//
// Invariant: a user occupies at most one voice room; joining a new one evicts
// the old membership first, and the eviction broadcast precedes the join
// broadcast. In-memory state mutates atomically under one mutex; the store
// mirror and all broadcasts happen after the lock is released, so a slow
// store never stalls other connections' signaling.
type VoiceCoordinator struct {
	mu     sync.Mutex
	rooms  map[string]map[string]*voiceMember // channelID -> userID -> member
	byUser map[string]string                  // userID -> channelID

	registry   *Registry
	router     *Router
	store      contract.Store
	log        *slog.Logger
	monitoring *observability.MonitoringManager
}

func NewVoiceCoordinator(log *slog.Logger, registry *Registry, router *Router,
	store contract.Store, monitoring *observability.MonitoringManager) *VoiceCoordinator {
	return &VoiceCoordinator{
		rooms:      make(map[string]map[string]*voiceMember),
		byUser:     make(map[string]string),
		registry:   registry,
		router:     router,
		store:      store,
		log:        log,
		monitoring: monitoring,
	}
}

// Join moves the user into channelID and returns a snapshot of the
// participants that were already there, so the joiner can start peer
// negotiation against each of them. A prior membership in another channel is
// evicted first; joining the channel the user is already in is a conflict.
func (v *VoiceCoordinator) Join(ctx context.Context, conn *Connection, channelID string) ([]domain.VoiceParticipant, error) {
	v.mu.Lock()
	if current, ok := v.byUser[conn.UserID]; ok && current == channelID {
		v.mu.Unlock()
		return nil, errors.ErrStateConflict
	}

	evicted, hadPrior := v.removeLocked(conn.UserID)

	members, ok := v.rooms[channelID]
	if !ok {
		members = make(map[string]*voiceMember)
		v.rooms[channelID] = members
	}

	snapshot := make([]domain.VoiceParticipant, 0, len(members))
	for _, m := range members {
		if m.phase == domain.VoiceActive {
			snapshot = append(snapshot, m.participant)
		}
	}

	participant := domain.VoiceParticipant{
		UserID:       conn.UserID,
		ChannelID:    channelID,
		ConnectionID: conn.ID,
	}
	members[conn.UserID] = &voiceMember{participant: participant, phase: domain.VoiceActive}
	v.byUser[conn.UserID] = channelID
	v.mu.Unlock()

	// Eviction is observable before the new join, in this order.
	if hadPrior {
		v.finishLeave(ctx, evicted)
	}

	v.router.Join(conn, VoiceRoom(channelID))
	v.router.Publish(ctx, VoiceRoom(channelID), event.UserJoinedVoice{
		ChannelID:   channelID,
		Participant: participant,
	}, conn.ID)

	v.monitoring.IncrVoiceJoins()
	if err := v.store.JoinVoiceChannel(ctx, participant); err != nil {
		v.log.Warn("Voice join not persisted", "channel_id", channelID, "user_id", conn.UserID, "error", err)
	}
	return snapshot, nil
}

// RelaySignal forwards an opaque negotiation payload to one target
// connection. Both endpoints must be Active members of the same voice room;
// a stale target connection id is a conflict and nothing is broadcast.
func (v *VoiceCoordinator) RelaySignal(ctx context.Context, from *Connection, toConnID, channelID string, payload json.RawMessage) error {
	v.mu.Lock()
	members, ok := v.rooms[channelID]
	if !ok {
		v.mu.Unlock()
		return errors.ErrNotFound
	}

	sender, ok := members[from.UserID]
	if !ok || sender.phase != domain.VoiceActive || sender.participant.ConnectionID != from.ID {
		v.mu.Unlock()
		return errors.ErrStateConflict
	}

	var target *voiceMember
	for _, m := range members {
		if m.participant.ConnectionID == toConnID && m.phase == domain.VoiceActive {
			target = m
			break
		}
	}
	v.mu.Unlock()

	if target == nil {
		return errors.ErrStateConflict
	}

	targetConn, ok := v.registry.Get(toConnID)
	if !ok {
		return errors.ErrStateConflict
	}
	return targetConn.Sink.Consume(ctx, event.Signal{
		ChannelID: channelID,
		From:      from.ID,
		Payload:   payload,
	})
}

// SetState updates mute/deafen flags and broadcasts the change.
func (v *VoiceCoordinator) SetState(ctx context.Context, userID, channelID string, muted, deafened bool) error {
	v.mu.Lock()
	members, ok := v.rooms[channelID]
	if !ok {
		v.mu.Unlock()
		return errors.ErrNotFound
	}
	member, ok := members[userID]
	if !ok || member.phase != domain.VoiceActive {
		v.mu.Unlock()
		return errors.ErrNotFound
	}
	member.participant.IsMuted = muted
	member.participant.IsDeafened = deafened
	participant := member.participant
	v.mu.Unlock()

	v.router.Publish(ctx, VoiceRoom(channelID), event.VoiceStateChanged{
		ChannelID:  channelID,
		UserID:     userID,
		IsMuted:    muted,
		IsDeafened: deafened,
	})
	if err := v.store.UpdateVoiceState(ctx, participant); err != nil {
		v.log.Warn("Voice state not persisted", "channel_id", channelID, "user_id", userID, "error", err)
	}
	return nil
}

// Leave removes the user from channelID. Leaving a channel the user does not
// occupy is a scoped NotFound, so the caller can tell a stale request from a
// successful one.
func (v *VoiceCoordinator) Leave(ctx context.Context, userID, channelID string) error {
	v.mu.Lock()
	if v.byUser[userID] != channelID {
		v.mu.Unlock()
		return errors.ErrNotFound
	}
	removed, _ := v.removeLocked(userID)
	v.mu.Unlock()

	v.finishLeave(ctx, removed)
	return nil
}

// DisconnectCleanup is the disconnect path. Idempotent: racing an explicit
// leave is a no-op, and a different live connection of the same user is left
// untouched.
func (v *VoiceCoordinator) DisconnectCleanup(ctx context.Context, conn *Connection) {
	v.mu.Lock()
	channelID, ok := v.byUser[conn.UserID]
	if !ok {
		v.mu.Unlock()
		return
	}
	member := v.rooms[channelID][conn.UserID]
	if member.participant.ConnectionID != conn.ID {
		v.mu.Unlock()
		return
	}
	removed, _ := v.removeLocked(conn.UserID)
	v.mu.Unlock()

	v.finishLeave(ctx, removed)
}

// Occupancy reports the number of non-empty voice rooms.
func (v *VoiceCoordinator) Occupancy() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.rooms)
}

// removeLocked drops the user's membership, garbage-collecting an emptied
// room. Caller holds v.mu.
func (v *VoiceCoordinator) removeLocked(userID string) (domain.VoiceParticipant, bool) {
	channelID, ok := v.byUser[userID]
	if !ok {
		return domain.VoiceParticipant{}, false
	}
	members := v.rooms[channelID]
	member := members[userID]
	member.phase = domain.VoiceLeaving
	delete(members, userID)
	delete(v.byUser, userID)
	if len(members) == 0 {
		delete(v.rooms, channelID)
	}
	return member.participant, true
}

// finishLeave runs the out-of-lock half of a removal: broadcast, router
// unsubscription and the store mirror.
func (v *VoiceCoordinator) finishLeave(ctx context.Context, p domain.VoiceParticipant) {
	v.router.Publish(ctx, VoiceRoom(p.ChannelID), event.UserLeftVoice{
		ChannelID: p.ChannelID,
		UserID:    p.UserID,
	}, p.ConnectionID)
	v.router.Leave(p.ConnectionID, VoiceRoom(p.ChannelID))
	if err := v.store.LeaveVoiceChannel(ctx, p.ChannelID, p.UserID); err != nil {
		v.log.Warn("Voice leave not persisted", "channel_id", p.ChannelID, "user_id", p.UserID, "error", err)
	}
}
