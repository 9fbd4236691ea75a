package bus

import (
	"context"
	"errors"
	"sync/atomic"

	"main/internal/engine"
	"main/internal/fix"
)

var (
	ErrQueueFull   = errors.New("delivery queue full")
	ErrQueueClosed = errors.New("delivery queue closed")
)

// Delivery is one inbound message bound for a session's dispatch point.
type Delivery struct {
	SessionID engine.SessionID
	Msg       fix.Message
}

// Queue is a bounded, non-blocking delivery queue. The demo runner feeds
// scripted messages through it; per-session order is the channel order.
type Queue struct {
	ch     chan Delivery
	closed uint32
}

// NewQueue allocates a queue with the given capacity.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = 1
	}
	return &Queue{ch: make(chan Delivery, capacity)}
}

// TryPublish enqueues a delivery without blocking.
func (q *Queue) TryPublish(d Delivery) error {
	if atomic.LoadUint32(&q.closed) != 0 {
		return ErrQueueClosed
	}
	select {
	case q.ch <- d:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops the queue from accepting new deliveries.
func (q *Queue) Close() {
	if atomic.CompareAndSwapUint32(&q.closed, 0, 1) {
		close(q.ch)
	}
}

// Run consumes deliveries until the context is done or the queue is closed.
func (q *Queue) Run(ctx context.Context, handler func(Delivery)) {
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-q.ch:
			if !ok {
				return
			}
			handler(d)
		}
	}
}
