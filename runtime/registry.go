package runtime

import (
	"sync"
)

// Registry tracks which live connections belong to which user and computes
// online/offline edges. A user is online iff their connection set is
// non-empty; Register/Unregister report only the 0↔1 transitions so multi
// device sessions never produce redundant presence churn.
type Registry struct {
	mu     sync.RWMutex
	byUser map[string]map[string]*Connection // userID -> connID -> conn
	byConn map[string]*Connection
}

func NewRegistry() *Registry {
	return &Registry{
		byUser: make(map[string]map[string]*Connection),
		byConn: make(map[string]*Connection),
	}
}

// Register adds a connection to its user's set. It returns true only if the
// set was empty before, i.e. the user just came online.
func (r *Registry) Register(conn *Connection) (wasOffline bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.byUser[conn.UserID]
	if !ok {
		set = make(map[string]*Connection)
		r.byUser[conn.UserID] = set
	}
	wasOffline = len(set) == 0
	set[conn.ID] = conn
	r.byConn[conn.ID] = conn
	return wasOffline
}

// Unregister removes the connection and cancels its lifetime context.
// Idempotent: a second call for the same id reports ok=false and changes
// nothing, which lets the explicit-leave and disconnect paths race safely.
func (r *Registry) Unregister(connID string) (userID string, isNowOffline bool, ok bool) {
	r.mu.Lock()
	conn, exists := r.byConn[connID]
	if !exists {
		r.mu.Unlock()
		return "", false, false
	}
	delete(r.byConn, connID)

	set := r.byUser[conn.UserID]
	delete(set, connID)
	isNowOffline = len(set) == 0
	if isNowOffline {
		delete(r.byUser, conn.UserID)
	}
	r.mu.Unlock()

	conn.cancel()
	return conn.UserID, isNowOffline, true
}

// Get resolves a live connection by id.
func (r *Registry) Get(connID string) (*Connection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	conn, ok := r.byConn[connID]
	return conn, ok
}

// PrimaryConnection returns an arbitrary live connection of the user, used
// for server-initiated pushes targeting a user rather than a room.
func (r *Registry) PrimaryConnection(userID string) (*Connection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, conn := range r.byUser[userID] {
		return conn, true
	}
	return nil, false
}

// IsOnline reports derived presence.
func (r *Registry) IsOnline(userID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byUser[userID]) > 0
}

// ConnectionCount is the number of live connections across all users.
func (r *Registry) ConnectionCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byConn)
}
