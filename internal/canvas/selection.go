package canvas

import "github.com/stationhq/station/backend-go/internal/element"

// Selection state is pure UI state: it is never recorded in undo history,
// and it may reference elements that no longer exist. Every reader filters
// against the live element set first.

// SetSelectedID replaces the selection with zero (empty id) or one element.
func (c *Canvas) SetSelectedID(id string) {
	if id == "" {
		c.selection = nil
	} else {
		c.selection = []string{id}
	}
	c.notify()
}

// SelectMultiple replaces the selection with an explicit ID list. The
// caller is responsible for deduplication.
func (c *Canvas) SelectMultiple(ids []string) {
	c.selection = append([]string(nil), ids...)
	c.notify()
}

// AddToSelection inserts an ID into the selection. Idempotent.
func (c *Canvas) AddToSelection(id string) {
	for _, s := range c.selection {
		if s == id {
			return
		}
	}
	c.selection = append(c.selection, id)
	c.notify()
}

// ToggleSelection inserts the ID if absent, removes it if present.
func (c *Canvas) ToggleSelection(id string) {
	for i, s := range c.selection {
		if s == id {
			c.selection = append(c.selection[:i], c.selection[i+1:]...)
			c.notify()
			return
		}
	}
	c.selection = append(c.selection, id)
	c.notify()
}

// ClearSelection empties the selection.
func (c *Canvas) ClearSelection() {
	c.selection = nil
	c.notify()
}

// SelectedIDs returns a copy of the raw selection, which may contain
// dangling IDs.
func (c *Canvas) SelectedIDs() []string {
	return append([]string(nil), c.selection...)
}

func (c *Canvas) selectedSet() map[string]bool {
	set := make(map[string]bool, len(c.selection))
	for _, id := range c.selection {
		set[id] = true
	}
	return set
}

// selectedIndices returns the positions of selected live elements in
// render order. Dangling selection IDs are dropped.
func (c *Canvas) selectedIndices() []int {
	set := c.selectedSet()
	var idxs []int
	for i := range c.elements {
		if set[c.elements[i].ID] {
			idxs = append(idxs, i)
		}
	}
	return idxs
}

// SelectedElements returns deep copies of the selected live elements in
// render order.
func (c *Canvas) SelectedElements() []element.Element {
	idxs := c.selectedIndices()
	out := make([]element.Element, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, c.elements[i].Clone())
	}
	return out
}

// SelectionBounds returns the union bounding box of the selected live
// elements. The second return is false when nothing selected exists.
func (c *Canvas) SelectionBounds() (element.Rect, bool) {
	idxs := c.selectedIndices()
	if len(idxs) == 0 {
		return element.Rect{}, false
	}
	sel := make([]element.Element, len(idxs))
	for i, idx := range idxs {
		sel[i] = c.elements[idx]
	}
	return element.BoundsOf(sel)
}
