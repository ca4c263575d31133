package realtime

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bigode_server/services"
	"bigode_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

func startFeedServer(t *testing.T) (*httptest.Server, *services.RealtimeService) {
	t.Helper()

	logger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(false)))
	rs := services.NewRealtimeService(logger)

	r := chi.NewRouter()
	NewRealtimeRoutesManager(logger, &structs.Config{}, rs).RegisterRoutes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, rs
}

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/orders" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForSubscribers(t *testing.T, rs *services.RealtimeService, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for rs.SubscriberCount() != n {
		if time.Now().After(deadline) {
			t.Fatalf("subscriber count stuck at %d, want %d", rs.SubscriberCount(), n)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestOrdersFeedReceivesEvents(t *testing.T) {
	srv, rs := startFeedServer(t)
	conn := dial(t, srv, "")
	waitForSubscribers(t, rs, 1)

	event := structs.OrderEvent{
		Type:      "update",
		OrderId:   uuid.NewString(),
		Status:    "preparing",
		Timestamp: time.Now(),
	}
	rs.Publish(event)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got structs.OrderEvent
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if got.OrderId != event.OrderId || got.Status != "preparing" {
		t.Errorf("got event %+v", got)
	}
}

func TestOrdersFeedFiltersByOrderId(t *testing.T) {
	srv, rs := startFeedServer(t)

	trackedId := uuid.NewString()
	conn := dial(t, srv, "?order_id="+trackedId)
	waitForSubscribers(t, rs, 1)

	rs.Publish(structs.OrderEvent{Type: "update", OrderId: uuid.NewString(), Status: "ready"})
	rs.Publish(structs.OrderEvent{Type: "update", OrderId: trackedId, Status: "delivered"})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got structs.OrderEvent
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if got.OrderId != trackedId {
		t.Errorf("received event for foreign order: %+v", got)
	}
}

func TestOrdersFeedPingPong(t *testing.T) {
	srv, rs := startFeedServer(t)
	conn := dial(t, srv, "")
	waitForSubscribers(t, rs, 1)

	if err := conn.WriteJSON(map[string]string{"type": "ping"}); err != nil {
		t.Fatal(err)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var reply map[string]string
	if err := conn.ReadJSON(&reply); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if reply["type"] != "pong" {
		t.Errorf("reply = %v", reply)
	}
}

func TestOrdersFeedRejectsBadOrderId(t *testing.T) {
	srv, _ := startFeedServer(t)

	resp, err := http.Get(srv.URL + "/ws/orders?order_id=not-a-uuid")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestOrdersFeedUnsubscribesOnClose(t *testing.T) {
	srv, rs := startFeedServer(t)
	conn := dial(t, srv, "")
	waitForSubscribers(t, rs, 1)

	conn.Close()
	waitForSubscribers(t, rs, 0)
}
