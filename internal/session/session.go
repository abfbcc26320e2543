package session

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/stationhq/station/backend-go/internal/canvas"
	"github.com/stationhq/station/backend-go/internal/element"
	"github.com/stationhq/station/backend-go/internal/render"
	"github.com/stationhq/station/backend-go/internal/typeid"
)

// Session owns the authoritative canvas state for one open design. The
// canvas itself is single-owner, unsynchronized state; the session
// serializes all access behind its lock and stamps every applied
// operation with a monotonically increasing revision.
type Session struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`

	mu     sync.RWMutex
	canvas *canvas.Canvas
	rev    int64
}

func newSession(name string, size canvas.Size) *Session {
	return &Session{
		ID:        typeid.NewCanvasID(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
		canvas:    canvas.New(size),
	}
}

// Apply dispatches one operation onto the canvas and returns the new
// revision. Unknown operation types are wire errors; operations whose
// target is missing or whose preconditions are unmet (bad element ID,
// undersized selection) are silent no-ops per the canvas contract.
func (s *Session) Apply(op Op) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.applyLocked(op); err != nil {
		return 0, err
	}

	s.rev++
	return s.rev, nil
}

func (s *Session) applyLocked(op Op) error {
	c := s.canvas

	switch op.Type {
	case OpElementAdd:
		var el element.Element
		if err := json.Unmarshal(op.Element, &el); err != nil {
			return fmt.Errorf("invalid element: %w", err)
		}
		if el.ID == "" {
			el.ID = typeid.NewElementID()
		}
		c.AddElement(el)

	case OpElementUpdate:
		c.UpdateElement(op.ElementID, op.Changes)

	case OpElementRemove:
		c.RemoveElement(op.ElementID)

	case OpElementReorder:
		c.Reorder(op.ElementID, canvas.ReorderDirection(op.Direction))

	case OpElementVisible:
		c.ToggleVisibility(op.ElementID)

	case OpElementLock:
		c.ToggleLock(op.ElementID)

	case OpSelectionSet:
		c.SelectMultiple(op.IDs)

	case OpSelectionOne:
		c.SetSelectedID(op.ElementID)

	case OpSelectionAdd:
		c.AddToSelection(op.ElementID)

	case OpSelectionToggle:
		c.ToggleSelection(op.ElementID)

	case OpSelectionClear:
		c.ClearSelection()

	case OpClipboardCopy:
		c.CopySelection()

	case OpClipboardPaste:
		c.PasteClipboard()

	case OpDuplicate:
		c.DuplicateSelection()

	case OpDelete:
		c.DeleteSelection()

	case OpHistoryUndo:
		c.Undo()

	case OpHistoryRedo:
		c.Redo()

	case OpHistoryPush:
		c.PushHistory()

	case OpAlign:
		c.AlignElements(canvas.AlignDirection(op.Direction))

	case OpDistribute:
		c.DistributeElements(canvas.DistributeAxis(op.Axis))

	case OpCanvasResize:
		c.SetSize(op.Width, op.Height)

	case OpCanvasPreset:
		c.ApplyPreset(op.PresetID)

	case OpCanvasZoom:
		if op.Zoom != nil {
			c.SetZoom(*op.Zoom)
		}

	case OpCanvasGrid:
		if op.ShowGrid != nil {
			c.SetShowGrid(*op.ShowGrid)
		}
		if op.SnapToGrid != nil {
			c.SetSnapToGrid(*op.SnapToGrid)
		}
		if op.GridSize != nil {
			c.SetGridSize(*op.GridSize)
		}

	default:
		return fmt.Errorf("unknown operation type: %s", op.Type)
	}

	return nil
}

// State returns the full observable canvas state.
func (s *Session) State() StatePayload {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c := s.canvas
	return StatePayload{
		SessionID:  s.ID,
		Name:       s.Name,
		Rev:        s.rev,
		Elements:   c.Elements(),
		Selection:  c.SelectedIDs(),
		CanvasSize: c.Size(),
		Preset:     c.Preset(),
		Zoom:       c.Zoom(),
		ShowGrid:   c.ShowGrid(),
		SnapToGrid: c.SnapToGrid(),
		GridSize:   c.GridSize(),
		CanUndo:    c.CanUndo(),
		CanRedo:    c.CanRedo(),
	}
}

// RenderCommands compiles the current element set into draw commands:
// the read-only, consistent input an export layer renders from.
func (s *Session) RenderCommands() []render.DrawCommand {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return render.CompileDrawCommands(s.canvas.Elements())
}

// Describe returns the textual canvas summary for the AI assistant.
func (s *Session) Describe() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.canvas.Describe()
}

// ApplyTemplate applies a template's dimensions and elements as one
// coalesced operation and returns the new revision.
func (s *Session) ApplyTemplate(width, height int, defs []element.Element) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.canvas.ApplyTemplate(width, height, defs)
	s.rev++
	return s.rev
}

// ExportTemplate produces the save-as-template shape.
func (s *Session) ExportTemplate() (width, height int, defs []element.Element) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.canvas.ExportTemplate()
}
