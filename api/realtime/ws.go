package realtime

import (
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var wsUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// CORS does not apply to websockets; the feed carries only order ids
		// and statuses, which the tracking page already exposes.
		return true
	},
}

// HandleOrdersFeed upgrades the connection and streams order change events.
// An order_id query narrows the feed to one order (the tracking page); no
// filter means every change (the kanban board).
func (rrm *RealtimeRoutesManager) HandleOrdersFeed(w http.ResponseWriter, r *http.Request) {
	orderId := r.URL.Query().Get("order_id")
	if orderId != "" {
		if _, err := uuid.Parse(orderId); err != nil {
			gecho.BadRequest(w, gecho.WithMessage("Invalid order id"), gecho.Send())
			return
		}
	}

	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		rrm.logger.Warn("Websocket upgrade failed", gecho.Field("error", err))
		return
	}

	connId := uuid.NewString()
	rrm.realtimeService.Subscribe(connId, conn, orderId)
	rrm.logger.Debug("Realtime subscriber connected",
		gecho.Field("conn_id", connId),
		gecho.Field("order_id", orderId),
	)

	defer func() {
		rrm.realtimeService.Unsubscribe(connId)
		rrm.logger.Debug("Realtime subscriber disconnected", gecho.Field("conn_id", connId))
	}()

	for {
		var msg struct {
			Type string `json:"type"` // ping
		}

		// Client disconnects surface as read errors; that is the normal exit.
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}

		if msg.Type == "ping" {
			rrm.realtimeService.Touch(connId)
			// Replying through the service keeps this write serialized with
			// concurrent Publish calls on the same connection.
			if err := rrm.realtimeService.Send(connId, map[string]string{"type": "pong"}); err != nil {
				return
			}
		}
	}
}
