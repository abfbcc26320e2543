package canvas

import (
	"github.com/stationhq/station/backend-go/internal/element"
)

// Size is the canvas pixel dimensions.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Canvas is the authoritative state of one design document: the element
// set, selection, clipboard, undo history, and viewport configuration.
//
// A Canvas is the single mutation surface for its state — callers never
// touch the element array directly. It is not synchronized; the owning
// layer serializes access.
type Canvas struct {
	elements  []element.Element
	selection []string
	clipboard []element.Element

	// history is a sequence of full element-set snapshots. history[0] is
	// the initial snapshot taken at creation; historyIndex always points
	// at the snapshot matching the live set after the last commit.
	history      [][]element.Element
	historyIndex int

	size       Size
	preset     string
	zoom       float64
	showGrid   bool
	snapToGrid bool
	gridSize   float64

	subscribers map[int]func()
	nextSubID   int
}

// New creates an empty canvas with the given pixel size. The empty initial
// snapshot is committed immediately so undo never runs out of history.
func New(size Size) *Canvas {
	c := &Canvas{
		size:        size,
		preset:      PresetCustom,
		zoom:        1.0,
		gridSize:    20,
		subscribers: make(map[int]func()),
	}
	c.history = [][]element.Element{{}}
	c.historyIndex = 0
	return c
}

// Subscribe registers a callback invoked after every state change. The
// returned function unsubscribes.
func (c *Canvas) Subscribe(fn func()) func() {
	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = fn
	return func() { delete(c.subscribers, id) }
}

func (c *Canvas) notify() {
	for _, fn := range c.subscribers {
		fn()
	}
}

// Elements returns a deep copy of the live element set, in render order
// (back to front).
func (c *Canvas) Elements() []element.Element {
	return element.CloneSlice(c.elements)
}

// Element returns a copy of the element with the given ID.
func (c *Canvas) Element(id string) (element.Element, bool) {
	if el := c.find(id); el != nil {
		return el.Clone(), true
	}
	return element.Element{}, false
}

// Len returns the number of live elements.
func (c *Canvas) Len() int {
	return len(c.elements)
}

func (c *Canvas) find(id string) *element.Element {
	for i := range c.elements {
		if c.elements[i].ID == id {
			return &c.elements[i]
		}
	}
	return nil
}

func (c *Canvas) indexOf(id string) int {
	for i := range c.elements {
		if c.elements[i].ID == id {
			return i
		}
	}
	return -1
}
