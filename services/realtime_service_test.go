package services

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"bigode_server/structs"

	"github.com/MonkyMars/gecho"
)

// ---------- STUBS & FAKES ----------

type fakeConn struct {
	events   []structs.OrderEvent
	writeErr error
	closed   bool
}

func (fc *fakeConn) WriteJSON(v any) error {
	if fc.writeErr != nil {
		return fc.writeErr
	}
	fc.events = append(fc.events, v.(structs.OrderEvent))
	return nil
}

func (fc *fakeConn) Close() error {
	fc.closed = true
	return nil
}

// overlapConn trips when two WriteJSON calls run at the same time, which
// gorilla/websocket treats as a fatal concurrent-write error.
type overlapConn struct {
	inFlight   atomic.Int32
	overlapped atomic.Bool
	writes     atomic.Int32
}

func (oc *overlapConn) WriteJSON(v any) error {
	if oc.inFlight.Add(1) > 1 {
		oc.overlapped.Store(true)
	}
	time.Sleep(time.Millisecond) // widen the window
	oc.inFlight.Add(-1)
	oc.writes.Add(1)
	return nil
}

func (oc *overlapConn) Close() error { return nil }

func newTestRealtimeService() *RealtimeService {
	logger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(false)))
	return NewRealtimeService(logger)
}

// ---------- TESTS ----------

func TestPublishFanout(t *testing.T) {
	rs := newTestRealtimeService()

	all := &fakeConn{}
	tracked := &fakeConn{}
	other := &fakeConn{}

	rs.Subscribe("admin", all, "")
	rs.Subscribe("tracker", tracked, "order-1")
	rs.Subscribe("stranger", other, "order-2")

	event := structs.OrderEvent{Type: "update", OrderId: "order-1", Status: "preparing"}
	rs.Publish(event)

	if len(all.events) != 1 {
		t.Errorf("firehose subscriber got %d events, want 1", len(all.events))
	}
	if len(tracked.events) != 1 {
		t.Errorf("matching tracker got %d events, want 1", len(tracked.events))
	}
	if len(other.events) != 0 {
		t.Errorf("non-matching tracker got %d events, want 0", len(other.events))
	}
	if tracked.events[0].Status != "preparing" {
		t.Errorf("event status = %s", tracked.events[0].Status)
	}
}

func TestPublishDropsFailedSubscriber(t *testing.T) {
	rs := newTestRealtimeService()

	broken := &fakeConn{writeErr: errors.New("connection reset")}
	healthy := &fakeConn{}

	rs.Subscribe("broken", broken, "")
	rs.Subscribe("healthy", healthy, "")

	rs.Publish(structs.OrderEvent{Type: "insert", OrderId: "order-9"})

	if rs.SubscriberCount() != 1 {
		t.Errorf("SubscriberCount = %d, want 1 after drop", rs.SubscriberCount())
	}
	if !broken.closed {
		t.Error("dropped subscriber not closed")
	}
	if len(healthy.events) != 1 {
		t.Errorf("healthy subscriber got %d events, want 1", len(healthy.events))
	}
}

func TestUnsubscribe(t *testing.T) {
	rs := newTestRealtimeService()
	conn := &fakeConn{}

	rs.Subscribe("c1", conn, "")
	rs.Unsubscribe("c1")

	if !conn.closed {
		t.Error("connection not closed on unsubscribe")
	}
	if rs.SubscriberCount() != 0 {
		t.Errorf("SubscriberCount = %d, want 0", rs.SubscriberCount())
	}

	// Unsubscribing twice is a no-op.
	rs.Unsubscribe("c1")
}

func TestConcurrentWritesSerializedPerConnection(t *testing.T) {
	rs := newTestRealtimeService()
	conn := &overlapConn{}
	rs.Subscribe("c1", conn, "")

	const publishers = 4
	var wg sync.WaitGroup
	for i := 0; i < publishers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rs.Publish(structs.OrderEvent{Type: "update", OrderId: "order-1"})
			rs.Send("c1", map[string]string{"type": "pong"})
		}()
	}
	wg.Wait()

	if conn.overlapped.Load() {
		t.Error("two writes entered the connection at the same time")
	}
	if got := conn.writes.Load(); got != publishers*2 {
		t.Errorf("writes = %d, want %d", got, publishers*2)
	}
}

func TestSendUnknownSubscriber(t *testing.T) {
	rs := newTestRealtimeService()

	if err := rs.Send("ghost", map[string]string{"type": "pong"}); err == nil {
		t.Error("expected error for unknown subscriber id")
	}
}

func TestSubscribeReplacesId(t *testing.T) {
	rs := newTestRealtimeService()

	rs.Subscribe("c1", &fakeConn{}, "")
	rs.Subscribe("c1", &fakeConn{}, "order-1")

	if rs.SubscriberCount() != 1 {
		t.Errorf("SubscriberCount = %d, want 1", rs.SubscriberCount())
	}
}
