// Package sink provides EventSink implementations. The websocket sink is the
// per-connection bridge between room fanout and the write pump.
package sink

import (
	"context"
	"log/slog"
	"sync"

	"parley/domain/event"
	"parley/errors"
)

// WsSink buffers outbound events for one connection. Consume never blocks
// the publisher: when the buffer is full the event is dropped and the
// publisher told, which is the slow-consumer policy for the whole system.
// Events leave the buffer in the order they were consumed, preserving the
// router's per-room ordering.
type WsSink struct {
	Events chan event.DomainEvent

	log       *slog.Logger
	closeOnce sync.Once
	closed    chan struct{}
}

func NewWsSink(log *slog.Logger, bufferSize int) *WsSink {
	return &WsSink{
		Events: make(chan event.DomainEvent, bufferSize),
		log:    log,
		closed: make(chan struct{}),
	}
}

func (s *WsSink) Consume(ctx context.Context, e event.DomainEvent) error {
	select {
	case <-s.closed:
		return errors.ErrSinkFull
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	select {
	case s.Events <- e:
		return nil
	default:
		return errors.ErrSinkFull
	}
}

// Close stops accepting events. The write pump drains what is already
// buffered and exits when the channel is empty and closed flagged.
func (s *WsSink) Close() {
	s.closeOnce.Do(func() { close(s.closed) })
}

// Closed reports whether Close ran, letting the write pump stop draining.
func (s *WsSink) Closed() <-chan struct{} {
	return s.closed
}
