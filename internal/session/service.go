package session

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/stationhq/station/backend-go/internal/canvas"
	"github.com/stationhq/station/backend-go/internal/element"
	"github.com/stationhq/station/backend-go/internal/store"
)

var ErrNotFound = errors.New("session not found")

// Service owns the open canvas sessions. Sessions are in-memory state:
// persistence happens through templates, not through sessions.
type Service struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	store *store.Store
	hub   *Hub
}

func NewService(st *store.Store, hub *Hub) *Service {
	return &Service{
		sessions: make(map[string]*Session),
		store:    st,
		hub:      hub,
	}
}

// Create opens a new session. When presetID names a catalog preset the
// canvas takes its dimensions; otherwise width and height are used
// directly.
func (s *Service) Create(name, presetID string, width, height int) *Session {
	size := canvas.Size{Width: width, Height: height}
	sess := newSession(name, size)
	if presetID != "" {
		sess.Apply(Op{Type: OpCanvasPreset, PresetID: presetID})
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	if s.store != nil {
		s.store.LogActivity("session.created", "session", sess.ID, name)
	}
	return sess
}

// Get returns a session by ID.
func (s *Service) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return sess, nil
}

// List returns all open sessions, newest first.
func (s *Service) List() []*Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, sess)
	}
	sort.Slice(out, func(a, b int) bool {
		return out[a].CreatedAt.After(out[b].CreatedAt)
	})
	return out
}

// Delete closes a session and disconnects its watchers.
func (s *Service) Delete(id string) error {
	s.mu.Lock()
	_, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	if !ok {
		return ErrNotFound
	}

	if s.hub != nil {
		s.hub.CloseSession(id)
	}
	if s.store != nil {
		s.store.LogActivity("session.deleted", "session", id, "")
	}
	return nil
}

// ApplyTemplate replaces a session's canvas contents with a template's
// elements and dimensions, then broadcasts the new state.
func (s *Service) ApplyTemplate(sessionID string, width, height int, defs []element.Element) (int64, error) {
	sess, err := s.Get(sessionID)
	if err != nil {
		return 0, err
	}

	rev := sess.ApplyTemplate(width, height, defs)
	if s.hub != nil {
		s.hub.BroadcastState(sess)
	}
	return rev, nil
}

// Apply dispatches an operation onto a session's canvas and broadcasts
// the resulting state to its watchers.
func (s *Service) Apply(sessionID string, op Op) (int64, error) {
	sess, err := s.Get(sessionID)
	if err != nil {
		return 0, err
	}

	rev, err := sess.Apply(op)
	if err != nil {
		return 0, fmt.Errorf("apply %s: %w", op.Type, err)
	}

	if s.hub != nil {
		s.hub.BroadcastState(sess)
	}
	return rev, nil
}
