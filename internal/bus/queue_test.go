package bus

import (
	"context"
	"errors"
	"testing"
	"time"

	"main/internal/fix"
)

func TestQueuePreservesOrder(t *testing.T) {
	q := NewQueue(8)
	for i := 0; i < 3; i++ {
		if err := q.TryPublish(Delivery{SessionID: "s", Msg: fix.SequenceReset{NewSeqNo: i + 1}}); err != nil {
			t.Fatalf("publish %d, err: %+v", i, err)
		}
	}
	q.Close()

	var seen []int
	done := make(chan struct{})
	go func() {
		defer close(done)
		q.Run(context.Background(), func(d Delivery) {
			seen = append(seen, d.Msg.(fix.SequenceReset).NewSeqNo)
		})
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("run did not drain")
	}
	if len(seen) != 3 || seen[0] != 1 || seen[1] != 2 || seen[2] != 3 {
		t.Fatalf("order broken: %v", seen)
	}
}

func TestQueueFullDoesNotBlock(t *testing.T) {
	q := NewQueue(1)
	if err := q.TryPublish(Delivery{SessionID: "s", Msg: fix.Heartbeat{}}); err != nil {
		t.Fatalf("publish, err: %+v", err)
	}
	if err := q.TryPublish(Delivery{SessionID: "s", Msg: fix.Heartbeat{}}); !errors.Is(err, ErrQueueFull) {
		t.Fatalf("want ErrQueueFull, got %+v", err)
	}
}

func TestQueueClosedRejectsPublish(t *testing.T) {
	q := NewQueue(1)
	q.Close()
	q.Close() // idempotent

	if err := q.TryPublish(Delivery{SessionID: "s", Msg: fix.Heartbeat{}}); !errors.Is(err, ErrQueueClosed) {
		t.Fatalf("want ErrQueueClosed, got %+v", err)
	}
}

func TestQueueRunStopsOnContext(t *testing.T) {
	q := NewQueue(1)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		q.Run(ctx, func(Delivery) {})
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("run did not stop on context cancel")
	}
}
