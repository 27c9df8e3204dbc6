// Package runtime holds the realtime core: connection/presence tracking,
// room fanout, voice signaling and inbound rate limiting. It contains no
// transport and no business rules; services drive it and the gateway feeds
// it events.
package runtime

import (
	"context"
	"log/slog"
	"time"

	"parley/contract"
	"parley/domain"
	"parley/domain/event"
	"parley/observability"
)

// Orchestrator owns the core components and the disconnect cascade. It is
// constructed once at startup and injected; there are no ambient globals.
type Orchestrator struct {
	log        *slog.Logger
	registry   *Registry
	router     *Router
	voice      *VoiceCoordinator
	limiter    *RateLimiter
	monitoring *observability.MonitoringManager
}

func NewOrchestrator(log *slog.Logger, store contract.Store,
	monitoring *observability.MonitoringManager, limiter *RateLimiter) *Orchestrator {
	registry := NewRegistry()
	router := NewRouter(log, monitoring)
	voice := NewVoiceCoordinator(log, registry, router, store, monitoring)
	return &Orchestrator{
		log:        log,
		registry:   registry,
		router:     router,
		voice:      voice,
		limiter:    limiter,
		monitoring: monitoring,
	}
}

func (o *Orchestrator) Registry() *Registry      { return o.registry }
func (o *Orchestrator) Router() *Router          { return o.router }
func (o *Orchestrator) Voice() *VoiceCoordinator { return o.voice }
func (o *Orchestrator) Limiter() *RateLimiter    { return o.limiter }

func (o *Orchestrator) Monitoring() *observability.MonitoringManager { return o.monitoring }

// Connect registers an authenticated connection, subscribes it to the
// presence room and, on a 0→1 edge, broadcasts the user coming online.
func (o *Orchestrator) Connect(ctx context.Context, conn *Connection) {
	wasOffline := o.registry.Register(conn)
	o.router.Join(conn, domain.PresenceRoom)
	if wasOffline {
		o.monitoring.IncrPresenceEdges()
		o.router.Publish(ctx, domain.PresenceRoom, event.PresenceChanged{
			UserID: conn.UserID,
			Status: "online",
		})
	}
	o.log.Info("Connection registered",
		"conn_id", conn.ID, "user_id", conn.UserID, "was_offline", wasOffline)
}

// Disconnect runs the full cleanup cascade: voice eviction, room
// unsubscription, registry removal and the offline presence edge. Safe to
// call twice; the second call is a no-op.
func (o *Orchestrator) Disconnect(conn *Connection) {
	// The connection context is about to die with the registry entry;
	// cleanup broadcasts use a short independent context instead.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	o.voice.DisconnectCleanup(ctx, conn)
	o.router.LeaveAll(conn.ID)
	o.limiter.Forget(conn.ID)

	userID, isNowOffline, ok := o.registry.Unregister(conn.ID)
	if !ok {
		return
	}
	if isNowOffline {
		o.monitoring.IncrPresenceEdges()
		o.router.Publish(ctx, domain.PresenceRoom, event.PresenceChanged{
			UserID: userID,
			Status: "offline",
		})
	}
	o.log.Info("Connection unregistered",
		"conn_id", conn.ID, "user_id", userID, "now_offline", isNowOffline)
}

// CollectStats refreshes the monitoring snapshot from the live gauges.
func (o *Orchestrator) CollectStats() {
	o.monitoring.Collect(o.registry.ConnectionCount(), o.router.RoomCount(), o.voice.Occupancy())
}
