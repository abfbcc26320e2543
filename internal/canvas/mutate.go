package canvas

import (
	"github.com/stationhq/station/backend-go/internal/element"
	"github.com/stationhq/station/backend-go/internal/typeid"
)

// ReorderDirection moves an element one step through the render order.
type ReorderDirection string

const (
	ReorderUp   ReorderDirection = "up"   // toward the front
	ReorderDown ReorderDirection = "down" // toward the back
)

const (
	pasteOffset = 20.0
	copySuffix  = " copy"
)

// AddElement appends an element to the live set, selects it, and commits a
// history entry. An element whose ID already exists in the live set is
// rejected as a no-op: IDs are unique for the element's lifetime.
func (c *Canvas) AddElement(el element.Element) {
	if c.find(el.ID) != nil {
		return
	}
	c.elements = append(c.elements, el.Clone())
	c.selection = []string{el.ID}
	c.commit()
	c.notify()
}

// UpdateElement merges partial changes into the matching element without
// committing history. Continuous interactions (dragging, resizing) call
// this per frame and PushHistory once at gesture end. Unknown IDs no-op.
func (c *Canvas) UpdateElement(id string, changes map[string]any) {
	el := c.find(id)
	if el == nil {
		return
	}
	el.Apply(changes)
	c.notify()
}

// RemoveElement deletes the element, drops it from the selection if
// present, and commits. Unknown IDs no-op.
func (c *Canvas) RemoveElement(id string) {
	idx := c.indexOf(id)
	if idx < 0 {
		return
	}
	c.elements = append(c.elements[:idx], c.elements[idx+1:]...)
	c.removeFromSelection(id)
	c.commit()
	c.notify()
}

// Reorder swaps the element with its immediate neighbor in the render
// order. No-op at either boundary or for unknown IDs. Reordering commits
// history: every structural edit is undoable.
func (c *Canvas) Reorder(id string, dir ReorderDirection) {
	idx := c.indexOf(id)
	if idx < 0 {
		return
	}

	switch dir {
	case ReorderUp:
		if idx == len(c.elements)-1 {
			return
		}
		c.elements[idx], c.elements[idx+1] = c.elements[idx+1], c.elements[idx]
	case ReorderDown:
		if idx == 0 {
			return
		}
		c.elements[idx], c.elements[idx-1] = c.elements[idx-1], c.elements[idx]
	default:
		return
	}

	c.commit()
	c.notify()
}

// CopySelection deep-copies the selected live elements into the clipboard.
// The clipboard is detached state: it survives undo/redo and is only
// replaced by the next copy or paste. No history effect.
func (c *Canvas) CopySelection() {
	sel := c.SelectedElements()
	if len(sel) == 0 {
		return
	}
	c.clipboard = sel
	c.notify()
}

// PasteClipboard inserts clones of the clipboard contents with fresh IDs,
// offset by a fixed delta and renamed with a copy suffix. The pasted
// elements become the new selection, and the clipboard is refreshed to the
// pasted copies so repeated paste cascades the offset. Commits history.
func (c *Canvas) PasteClipboard() {
	if len(c.clipboard) == 0 {
		return
	}

	pasted := cloneForInsert(c.clipboard)
	c.insertClones(pasted)
	c.clipboard = element.CloneSlice(pasted)
	c.commit()
	c.notify()
}

// DuplicateSelection is copy+paste in one step, except the clipboard is
// left untouched. Commits history.
func (c *Canvas) DuplicateSelection() {
	sel := c.SelectedElements()
	if len(sel) == 0 {
		return
	}

	pasted := cloneForInsert(sel)
	c.insertClones(pasted)
	c.commit()
	c.notify()
}

// DeleteSelection removes every selected live element, clears the
// selection, and commits. No-op when nothing selected exists.
func (c *Canvas) DeleteSelection() {
	set := c.selectedSet()
	kept := c.elements[:0]
	removed := false
	for _, el := range c.elements {
		if set[el.ID] {
			removed = true
			continue
		}
		kept = append(kept, el)
	}
	if !removed {
		return
	}

	c.elements = kept
	c.selection = nil
	c.commit()
	c.notify()
}

// ToggleVisibility flips the element's visible flag. Commits history:
// every structural edit is undoable. Unknown IDs no-op.
func (c *Canvas) ToggleVisibility(id string) {
	el := c.find(id)
	if el == nil {
		return
	}
	el.Visible = !el.Visible
	c.commit()
	c.notify()
}

// ToggleLock flips the element's locked flag. Locking blocks mutation in
// the UI layer only; the direct API ignores it. Commits history.
func (c *Canvas) ToggleLock(id string) {
	el := c.find(id)
	if el == nil {
		return
	}
	el.Locked = !el.Locked
	c.commit()
	c.notify()
}

// cloneForInsert prepares paste/duplicate clones: fresh unique IDs, a
// fixed positive offset, and a copy-suffixed name.
func cloneForInsert(source []element.Element) []element.Element {
	out := make([]element.Element, len(source))
	for i, el := range source {
		clone := el.Clone()
		clone.ID = typeid.NewElementID()
		clone.X += pasteOffset
		clone.Y += pasteOffset
		clone.Name += copySuffix
		out[i] = clone
	}
	return out
}

func (c *Canvas) insertClones(clones []element.Element) {
	ids := make([]string, len(clones))
	for i, el := range clones {
		c.elements = append(c.elements, el.Clone())
		ids[i] = el.ID
	}
	c.selection = ids
}

func (c *Canvas) removeFromSelection(id string) {
	for i, s := range c.selection {
		if s == id {
			c.selection = append(c.selection[:i], c.selection[i+1:]...)
			return
		}
	}
}
