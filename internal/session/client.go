package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/coder/websocket"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
	maxMsgSize = 64 * 1024
)

// Watcher is a read-only websocket observer of one session.
type Watcher struct {
	hub      *Hub
	conn     *websocket.Conn
	send     chan []byte
	session  *Session
	ClientID string
}

func NewWatcher(hub *Hub, conn *websocket.Conn, sess *Session, clientID string) *Watcher {
	return &Watcher{
		hub:      hub,
		conn:     conn,
		send:     make(chan []byte, 256),
		session:  sess,
		ClientID: clientID,
	}
}

func (w *Watcher) ReadPump(ctx context.Context) {
	defer func() {
		w.hub.unregister <- w
		w.conn.Close(websocket.StatusNormalClosure, "")
	}()

	w.conn.SetReadLimit(maxMsgSize)

	for {
		_, data, err := w.conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure ||
				websocket.CloseStatus(err) == websocket.StatusGoingAway {
				return
			}
			slog.Debug("read error", "error", err, "client", w.ClientID)
			return
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("invalid message", "error", err, "client", w.ClientID)
			continue
		}

		w.hub.handleMessage(w, &msg)
	}
}

func (w *Watcher) WritePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		w.conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		select {
		case message, ok := <-w.send:
			if !ok {
				return
			}

			writeCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := w.conn.Write(writeCtx, websocket.MessageText, message)
			cancel()
			if err != nil {
				slog.Debug("write error", "error", err, "client", w.ClientID)
				return
			}

		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := w.conn.Ping(pingCtx)
			cancel()
			if err != nil {
				return
			}

		case <-ctx.Done():
			return
		}
	}
}

func (w *Watcher) Send(msg *Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("marshal message", "error", err)
		return
	}

	select {
	case w.send <- data:
	default:
		slog.Warn("watcher send buffer full, dropping message", "client", w.ClientID)
	}
}
