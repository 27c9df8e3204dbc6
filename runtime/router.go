package runtime

import (
	"context"
	"log/slog"
	"sync"

	"parley/domain"
	"parley/domain/event"
	"parley/observability"
)

// Router maps room ids to subscribed connections and fans out events in
// publish order. Ordering holds per room: Publish enqueues into every member
// sink while holding that room's lock, so two publishes to the same room can
// never interleave, and a connection joining mid-stream only sees events
// published after its Join.
type Router struct {
	mu     sync.RWMutex
	rooms  map[domain.RoomID]*room
	byConn map[string]map[domain.RoomID]struct{} // connID -> subscribed rooms

	log        *slog.Logger
	monitoring *observability.MonitoringManager
}

type room struct {
	mu      sync.Mutex
	members map[string]*Connection // connID -> conn
}

func NewRouter(log *slog.Logger, monitoring *observability.MonitoringManager) *Router {
	return &Router{
		rooms:      make(map[domain.RoomID]*room),
		byConn:     make(map[string]map[domain.RoomID]struct{}),
		log:        log,
		monitoring: monitoring,
	}
}

// Join subscribes the connection to a room. Idempotent. The member insert
// happens while still holding r.mu: releasing it first would let a racing
// last-member Leave collect the room entry and strand the joiner on an
// orphaned room object. Room locks nest under r.mu, never the reverse.
func (r *Router) Join(conn *Connection, roomID domain.RoomID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rm, ok := r.rooms[roomID]
	if !ok {
		rm = &room{members: make(map[string]*Connection)}
		r.rooms[roomID] = rm
	}
	subs, ok := r.byConn[conn.ID]
	if !ok {
		subs = make(map[domain.RoomID]struct{})
		r.byConn[conn.ID] = subs
	}
	subs[roomID] = struct{}{}

	rm.mu.Lock()
	rm.members[conn.ID] = conn
	rm.mu.Unlock()
}

// Leave unsubscribes the connection from a room. Idempotent; empty rooms are
// garbage collected so the map does not grow with channel churn.
func (r *Router) Leave(connID string, roomID domain.RoomID) {
	r.mu.Lock()
	rm, ok := r.rooms[roomID]
	if subs, exists := r.byConn[connID]; exists {
		delete(subs, roomID)
		if len(subs) == 0 {
			delete(r.byConn, connID)
		}
	}
	r.mu.Unlock()
	if !ok {
		return
	}

	rm.mu.Lock()
	delete(rm.members, connID)
	empty := len(rm.members) == 0
	rm.mu.Unlock()

	if empty {
		r.collect(roomID)
	}
}

// LeaveAll removes a connection from every room it subscribed, used on the
// disconnect path. Idempotent.
func (r *Router) LeaveAll(connID string) {
	r.mu.Lock()
	subs := r.byConn[connID]
	delete(r.byConn, connID)
	roomIDs := make([]domain.RoomID, 0, len(subs))
	for roomID := range subs {
		roomIDs = append(roomIDs, roomID)
	}
	r.mu.Unlock()

	for _, roomID := range roomIDs {
		r.mu.RLock()
		rm, ok := r.rooms[roomID]
		r.mu.RUnlock()
		if !ok {
			continue
		}
		rm.mu.Lock()
		delete(rm.members, connID)
		empty := len(rm.members) == 0
		rm.mu.Unlock()
		if empty {
			r.collect(roomID)
		}
	}
}

// Publish delivers an event to every current member of the room, optionally
// excluding connections (typing indicators exclude the sender; message and
// reaction broadcasts include it for cross-device consistency).
func (r *Router) Publish(ctx context.Context, roomID domain.RoomID, e event.DomainEvent, exclude ...string) {
	r.mu.RLock()
	rm, ok := r.rooms[roomID]
	r.mu.RUnlock()
	if !ok {
		return
	}

	excluded := make(map[string]struct{}, len(exclude))
	for _, id := range exclude {
		excluded[id] = struct{}{}
	}

	// The room lock is the serialization point: enqueues into member sinks
	// happen under it, in call order. Sinks never block (they drop when
	// full), so holding the lock across the loop is cheap.
	rm.mu.Lock()
	defer rm.mu.Unlock()
	for connID, conn := range rm.members {
		if _, skip := excluded[connID]; skip {
			continue
		}
		if err := conn.Sink.Consume(ctx, e); err != nil {
			r.monitoring.IncrDroppedEvents()
			r.log.Warn("Dropping event for slow consumer",
				"conn_id", connID, "room_id", roomID, "event", e.EventType(), "error", err)
			continue
		}
		r.monitoring.IncrFannedEvents()
	}
}

// RoomCount is the number of live rooms.
func (r *Router) RoomCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms)
}

// Members returns the current member connection ids of a room.
func (r *Router) Members(roomID domain.RoomID) []string {
	r.mu.RLock()
	rm, ok := r.rooms[roomID]
	r.mu.RUnlock()
	if !ok {
		return nil
	}
	rm.mu.Lock()
	defer rm.mu.Unlock()
	ids := make([]string, 0, len(rm.members))
	for id := range rm.members {
		ids = append(ids, id)
	}
	return ids
}

// collect drops a room entry if it is still empty. Rechecked under both
// locks because a Join may have raced the emptiness observation.
func (r *Router) collect(roomID domain.RoomID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rm, ok := r.rooms[roomID]; ok {
		rm.mu.Lock()
		empty := len(rm.members) == 0
		rm.mu.Unlock()
		if empty {
			delete(r.rooms, roomID)
		}
	}
}
