package runtime

import (
	"context"
	"time"

	"github.com/google/uuid"

	"parley/contract"
)

// Connection is one live transport session. It is owned exclusively by the
// Registry; once Unregister ran, the lifetime context is canceled so in-flight
// handler work tied to it gets discarded.
type Connection struct {
	ID        string
	UserID    string
	CreatedAt time.Time
	Sink      contract.EventSink

	ctx    context.Context
	cancel context.CancelFunc
}

func NewConnection(parent context.Context, userID string, sink contract.EventSink) *Connection {
	ctx, cancel := context.WithCancel(parent)
	return &Connection{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
		Sink:      sink,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Context is canceled when the connection is unregistered. Every per-event
// handler derives from it so a disconnect cancels pending store calls.
func (c *Connection) Context() context.Context {
	return c.ctx
}
