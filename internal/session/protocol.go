package session

import (
	"encoding/json"

	"github.com/stationhq/station/backend-go/internal/canvas"
	"github.com/stationhq/station/backend-go/internal/element"
)

// Message is the wire envelope sent to session watchers.
type Message struct {
	Type      string          `json:"type"`
	SessionID string          `json:"sessionId,omitempty"`
	Rev       int64           `json:"rev,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

const (
	// TypeStateSync carries the full canvas state; sent once when a
	// watcher joins and on request.
	TypeStateSync = "state.sync"
	// TypeCanvasUpdate carries the full canvas state after an applied
	// operation. Documents are small (tens of elements), so snapshots
	// beat diffs in simplicity.
	TypeCanvasUpdate = "canvas.update"
	// TypeStateRequest asks the hub to resend state.sync.
	TypeStateRequest = "state.request"
	TypeError        = "error"
)

// Operation mutation types dispatched by Session.Apply.
const (
	OpElementAdd      = "element.add"
	OpElementUpdate   = "element.update"
	OpElementRemove   = "element.remove"
	OpElementReorder  = "element.reorder"
	OpElementVisible  = "element.visibility"
	OpElementLock     = "element.lock"
	OpSelectionSet    = "selection.set"
	OpSelectionOne    = "selection.select"
	OpSelectionAdd    = "selection.add"
	OpSelectionToggle = "selection.toggle"
	OpSelectionClear  = "selection.clear"
	OpClipboardCopy   = "clipboard.copy"
	OpClipboardPaste  = "clipboard.paste"
	OpDuplicate       = "selection.duplicate"
	OpDelete          = "selection.delete"
	OpHistoryUndo     = "history.undo"
	OpHistoryRedo     = "history.redo"
	OpHistoryPush     = "history.push"
	OpAlign           = "geometry.align"
	OpDistribute      = "geometry.distribute"
	OpCanvasResize    = "canvas.resize"
	OpCanvasPreset    = "canvas.preset"
	OpCanvasZoom      = "canvas.zoom"
	OpCanvasGrid      = "canvas.grid"
)

// Op is one canvas mutation. Only the fields matching the op type are
// read; the rest are ignored.
type Op struct {
	Type      string          `json:"type"`
	ElementID string          `json:"elementId,omitempty"`
	Element   json.RawMessage `json:"element,omitempty"`
	Changes   map[string]any  `json:"changes,omitempty"`
	Direction string          `json:"direction,omitempty"`
	Axis      string          `json:"axis,omitempty"`
	IDs       []string        `json:"ids,omitempty"`

	// Canvas configuration
	Width      int      `json:"width,omitempty"`
	Height     int      `json:"height,omitempty"`
	PresetID   string   `json:"presetId,omitempty"`
	Zoom       *float64 `json:"zoom,omitempty"`
	ShowGrid   *bool    `json:"showGrid,omitempty"`
	SnapToGrid *bool    `json:"snapToGrid,omitempty"`
	GridSize   *float64 `json:"gridSize,omitempty"`
}

// StatePayload is the full observable canvas state of a session.
type StatePayload struct {
	SessionID  string            `json:"sessionId"`
	Name       string            `json:"name"`
	Rev        int64             `json:"rev"`
	Elements   []element.Element `json:"elements"`
	Selection  []string          `json:"selection"`
	CanvasSize canvas.Size       `json:"canvasSize"`
	Preset     string            `json:"preset"`
	Zoom       float64           `json:"zoom"`
	ShowGrid   bool              `json:"showGrid"`
	SnapToGrid bool              `json:"snapToGrid"`
	GridSize   float64           `json:"gridSize"`
	CanUndo    bool              `json:"canUndo"`
	CanRedo    bool              `json:"canRedo"`
}
