package services

import (
	"fmt"
	"sync"
	"time"

	"bigode_server/structs"

	"github.com/MonkyMars/gecho"
)

// subscriberConn is the slice of a websocket connection the hub needs.
// *websocket.Conn satisfies it; tests use an in-memory fake.
type subscriberConn interface {
	WriteJSON(v any) error
	Close() error
}

// subscriber is one connected client. OrderId narrows the feed to a single
// order (the public tracking page); empty means all order changes (admin
// list and kanban board). writeMu serializes writes: gorilla/websocket
// allows only one concurrent writer per connection, and both Publish and
// the read loop's pong reply go through it.
type subscriber struct {
	conn     subscriberConn
	orderId  string
	writeMu  sync.Mutex
	lastPing int64 // Unix seconds
}

func (s *subscriber) write(v any) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.WriteJSON(v)
}

// RealtimeService fans order change events out to websocket subscribers.
// Subscribers re-fetch on receipt; events never carry row data beyond the
// order id and status, so a missed event costs at most one refresh.
type RealtimeService struct {
	logger *gecho.Logger

	mu          sync.RWMutex
	subscribers map[string]*subscriber // key: connection id
}

func NewRealtimeService(logger *gecho.Logger) *RealtimeService {
	return &RealtimeService{
		logger:      logger,
		subscribers: make(map[string]*subscriber),
	}
}

// Subscribe registers a connection. orderId is empty for the firehose feed.
func (rs *RealtimeService) Subscribe(id string, conn subscriberConn, orderId string) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	rs.subscribers[id] = &subscriber{
		conn:     conn,
		orderId:  orderId,
		lastPing: time.Now().Unix(),
	}
}

func (rs *RealtimeService) Unsubscribe(id string) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	if sub, ok := rs.subscribers[id]; ok {
		sub.conn.Close()
		delete(rs.subscribers, id)
	}
}

// Touch refreshes a subscriber's liveness on ping.
func (rs *RealtimeService) Touch(id string) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	if sub, ok := rs.subscribers[id]; ok {
		sub.lastPing = time.Now().Unix()
	}
}

// Publish delivers the event to every subscriber whose filter matches. Write
// failures drop the subscriber; the client reconnects and re-fetches.
func (rs *RealtimeService) Publish(event structs.OrderEvent) {
	rs.mu.RLock()
	matched := make(map[string]*subscriber)
	for id, sub := range rs.subscribers {
		if sub.orderId != "" && sub.orderId != event.OrderId {
			continue
		}
		matched[id] = sub
	}
	rs.mu.RUnlock()

	var stale []string
	for id, sub := range matched {
		if err := sub.write(event); err != nil {
			stale = append(stale, id)
		}
	}

	for _, id := range stale {
		rs.logger.Warn("Dropping unreachable realtime subscriber", gecho.Field("id", id))
		rs.Unsubscribe(id)
	}
}

// Send writes a payload to a single subscriber, serialized with Publish so
// the connection never sees two concurrent writers.
func (rs *RealtimeService) Send(id string, v any) error {
	rs.mu.RLock()
	sub, ok := rs.subscribers[id]
	rs.mu.RUnlock()

	if !ok {
		return fmt.Errorf("unknown realtime subscriber: %s", id)
	}
	return sub.write(v)
}

// SubscriberCount is used by the health endpoint.
func (rs *RealtimeService) SubscriberCount() int {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return len(rs.subscribers)
}

// StartStaleSweeper closes connections that missed their pings. Runs until
// the process exits.
func (rs *RealtimeService) StartStaleSweeper(interval time.Duration, maxAge time.Duration) {
	go func() {
		for {
			time.Sleep(interval)
			now := time.Now().Unix()

			rs.mu.Lock()
			for id, sub := range rs.subscribers {
				if now-sub.lastPing > int64(maxAge.Seconds()) {
					sub.conn.Close()
					delete(rs.subscribers, id)
				}
			}
			rs.mu.Unlock()
		}
	}()
}
