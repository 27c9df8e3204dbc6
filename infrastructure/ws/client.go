package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	"parley/domain/event"
	"parley/sink"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024
)

// Client owns one websocket: a read pump feeding the dispatcher and a write
// pump draining the session sink. Both exit on the first failure, and the
// read pump always runs the disconnect cascade on its way out.
type Client struct {
	conn        *websocket.Conn
	session     *Session
	dispatcher  *Dispatcher
	log         *slog.Logger
	authTimeout time.Duration
}

func NewClient(conn *websocket.Conn, dispatcher *Dispatcher, log *slog.Logger,
	bufferSize int, authTimeout time.Duration) *Client {
	return &Client{
		conn:        conn,
		session:     &Session{Sink: sink.NewWsSink(log, bufferSize)},
		dispatcher:  dispatcher,
		log:         log,
		authTimeout: authTimeout,
	}
}

// Run blocks until the connection dies. ctx bounds the session; closing the
// underlying socket stops both pumps.
func (c *Client) Run(ctx context.Context) {
	go c.writePump(ctx)
	c.readPump(ctx)
}

func (c *Client) readPump(ctx context.Context) {
	defer func() {
		c.dispatcher.Disconnect(c.session)
		c.session.Sink.Close()
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// The handshake must arrive promptly; an unauthenticated socket is
	// closed once the timer fires.
	authTimer := time.AfterFunc(c.authTimeout, func() {
		if !c.session.authenticated() {
			c.log.Warn("Authentication timeout, closing connection")
			_ = c.conn.Close()
		}
	})
	defer authTimer.Stop()

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.Warn("Unexpected close", "error", err)
			}
			return
		}

		if err := c.dispatcher.Handle(ctx, c.session, raw); err != nil {
			c.log.Error("Fatal handshake failure, closing connection", "error", err)
			return
		}
	}
}

func (c *Client) writePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.session.Sink.Closed():
			// Drain what is already buffered before closing.
			for {
				select {
				case e := <-c.session.Sink.Events:
					if err := c.writeEvent(e); err != nil {
						return
					}
				default:
					_ = c.conn.WriteControl(websocket.CloseMessage,
						websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
					return
				}
			}
		case e := <-c.session.Sink.Events:
			if err := c.writeEvent(e); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) writeEvent(e event.DomainEvent) error {
	payload, err := json.Marshal(e)
	if err != nil {
		c.log.Error("Failed to marshal event", "event", e.EventType(), "error", err)
		return nil
	}
	frame, err := json.Marshal(Envelope{Type: e.EventType(), Payload: payload})
	if err != nil {
		return nil
	}
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.TextMessage, frame)
}
