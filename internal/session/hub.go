package session

import (
	"encoding/json"
	"log/slog"
	"sync"
)

type room struct {
	sessionID string
	watchers  map[string]*Watcher // clientID -> watcher
}

func newRoom(sessionID string) *room {
	return &room{
		sessionID: sessionID,
		watchers:  make(map[string]*Watcher),
	}
}

// Hub fans canvas state out to session watchers. Watchers are read-only
// observers: all mutation goes through the HTTP operation surface, the
// hub only broadcasts the results.
type Hub struct {
	mu         sync.RWMutex
	rooms      map[string]*room // sessionID -> room
	register   chan *Watcher
	unregister chan *Watcher
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]*room),
		register:   make(chan *Watcher),
		unregister: make(chan *Watcher),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case w := <-h.register:
			h.addWatcher(w)
		case w := <-h.unregister:
			h.removeWatcher(w)
		}
	}
}

func (h *Hub) Register(w *Watcher) {
	h.register <- w
}

func (h *Hub) addWatcher(w *Watcher) {
	h.mu.Lock()
	r, ok := h.rooms[w.session.ID]
	if !ok {
		r = newRoom(w.session.ID)
		h.rooms[w.session.ID] = r
	}
	r.watchers[w.ClientID] = w
	h.mu.Unlock()

	// New watchers start from a full snapshot.
	w.Send(stateMessage(TypeStateSync, w.session))

	slog.Info("watcher joined", "client", w.ClientID, "session", w.session.ID)
}

func (h *Hub) removeWatcher(w *Watcher) {
	h.mu.Lock()
	r, ok := h.rooms[w.session.ID]
	if !ok {
		h.mu.Unlock()
		return
	}

	if _, present := r.watchers[w.ClientID]; present {
		delete(r.watchers, w.ClientID)
		close(w.send)
	}
	if len(r.watchers) == 0 {
		delete(h.rooms, w.session.ID)
	}
	h.mu.Unlock()

	slog.Info("watcher left", "client", w.ClientID, "session", w.session.ID)
}

func (h *Hub) handleMessage(w *Watcher, msg *Message) {
	switch msg.Type {
	case TypeStateRequest:
		w.Send(stateMessage(TypeStateSync, w.session))
	default:
		slog.Warn("unknown message type", "type", msg.Type, "client", w.ClientID)
	}
}

// BroadcastState sends the session's current state to every watcher.
func (h *Hub) BroadcastState(sess *Session) {
	h.mu.RLock()
	r, ok := h.rooms[sess.ID]
	if !ok {
		h.mu.RUnlock()
		return
	}
	watchers := make([]*Watcher, 0, len(r.watchers))
	for _, w := range r.watchers {
		watchers = append(watchers, w)
	}
	h.mu.RUnlock()

	msg := stateMessage(TypeCanvasUpdate, sess)
	for _, w := range watchers {
		w.Send(msg)
	}
}

// CloseSession disconnects every watcher of a deleted session.
func (h *Hub) CloseSession(sessionID string) {
	h.mu.Lock()
	r, ok := h.rooms[sessionID]
	if ok {
		for _, w := range r.watchers {
			close(w.send)
		}
		delete(h.rooms, sessionID)
	}
	h.mu.Unlock()
}

func stateMessage(msgType string, sess *Session) *Message {
	state := sess.State()
	payload, err := json.Marshal(state)
	if err != nil {
		slog.Error("marshal session state", "error", err)
		return &Message{Type: TypeError}
	}
	return &Message{
		Type:      msgType,
		SessionID: sess.ID,
		Rev:       state.Rev,
		Payload:   payload,
	}
}
