package httpapi

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/blogadmin/internal/server/models"
	"github.com/dmitrijs2005/blogadmin/internal/server/query"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const writeTimeout = 5 * time.Second

// Origins are checked by the CORS layer for plain requests; the stream is
// read-only so any origin may open it.
var wsUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StreamMessage is sent on connect and after every change to the feed.
type StreamMessage struct {
	Type          string                `json:"type"`
	Unread        int                   `json:"unread"`
	Notifications []models.Notification `json:"notifications"`
}

func snapshotMessage(list []models.Notification) StreamMessage {
	return StreamMessage{Type: "snapshot", Unread: query.UnreadCount(list), Notifications: list}
}

// handleStream pushes the notification feed to a websocket client. Only the
// latest snapshot is kept for a slow client; intermediate ones are dropped.
func (s *HTTPServer) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	clientID := uuid.New()
	ctx := r.Context()

	updates := make(chan []models.Notification, 1)
	sub := s.feed.Subscribe(func(snapshot []models.Notification) {
		for {
			select {
			case updates <- snapshot:
				return
			default:
			}
			select {
			case <-updates:
			default:
			}
		}
	})
	defer sub.Unsubscribe()

	s.logger.Info(ctx, "stream client connected", "client", clientID.String())
	defer s.logger.Info(ctx, "stream client disconnected", "client", clientID.String())

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	send := func(list []models.Notification) bool {
		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		return conn.WriteJSON(snapshotMessage(list)) == nil
	}

	if !send(s.feed.List()) {
		return
	}

	for {
		select {
		case <-closed:
			return
		case <-ctx.Done():
			return
		case snapshot := <-updates:
			if !send(snapshot) {
				return
			}
		}
	}
}
