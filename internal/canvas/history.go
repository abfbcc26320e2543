package canvas

import "github.com/stationhq/station/backend-go/internal/element"

// commit records the live element set as a new history snapshot, discarding
// any redo branch beyond the cursor. Every commit is exactly one entry;
// there is no coalescing here — callers batching a gesture use the
// non-committing update path and PushHistory once at gesture end.
func (c *Canvas) commit() {
	snapshot := element.CloneSlice(c.elements)
	c.history = append(c.history[:c.historyIndex+1], snapshot)
	c.historyIndex = len(c.history) - 1
}

// PushHistory commits the current live element set as a new snapshot
// without changing it. Callers performing mutations outside the standard
// helpers (live drags, batch edits) call this once when done.
func (c *Canvas) PushHistory() {
	c.commit()
	c.notify()
}

// CanUndo reports whether an earlier snapshot exists.
func (c *Canvas) CanUndo() bool {
	return c.historyIndex > 0
}

// CanRedo reports whether a later snapshot exists.
func (c *Canvas) CanRedo() bool {
	return c.historyIndex < len(c.history)-1
}

// Undo steps the cursor back one snapshot and restores it as the live
// element set. No-op at the beginning of history. Selection is cleared:
// it is not meaningfully preserved across time travel.
func (c *Canvas) Undo() {
	if c.historyIndex == 0 {
		return
	}
	c.historyIndex--
	c.elements = element.CloneSlice(c.history[c.historyIndex])
	c.selection = nil
	c.notify()
}

// Redo steps the cursor forward one snapshot. No-op at the end of history.
func (c *Canvas) Redo() {
	if c.historyIndex == len(c.history)-1 {
		return
	}
	c.historyIndex++
	c.elements = element.CloneSlice(c.history[c.historyIndex])
	c.selection = nil
	c.notify()
}

// HistoryLen returns the number of snapshots in history.
func (c *Canvas) HistoryLen() int {
	return len(c.history)
}

// HistoryIndex returns the cursor position into history.
func (c *Canvas) HistoryIndex() int {
	return c.historyIndex
}
