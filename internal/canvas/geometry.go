package canvas

import (
	"sort"

	"github.com/stationhq/station/backend-go/internal/element"
)

// AlignDirection selects which edge or center line of the selection
// bounding box elements are aligned to.
type AlignDirection string

const (
	AlignLeft   AlignDirection = "left"
	AlignCenter AlignDirection = "center"
	AlignRight  AlignDirection = "right"
	AlignTop    AlignDirection = "top"
	AlignMiddle AlignDirection = "middle"
	AlignBottom AlignDirection = "bottom"
)

// DistributeAxis selects the axis along which selection gaps are equalized.
type DistributeAxis string

const (
	DistributeHorizontal DistributeAxis = "horizontal"
	DistributeVertical   DistributeAxis = "vertical"
)

// AlignElements aligns every selected element against the union bounding
// box of the selection. Requires at least two selected live elements;
// otherwise a no-op with no history entry. Unselected elements are
// untouched. One history commit for the whole batch.
func (c *Canvas) AlignElements(dir AlignDirection) {
	idxs := c.selectedIndices()
	if len(idxs) < 2 {
		return
	}

	sel := make([]element.Element, len(idxs))
	for i, idx := range idxs {
		sel[i] = c.elements[idx]
	}
	box, _ := element.BoundsOf(sel)
	centerX, centerY := box.Center()

	for _, idx := range idxs {
		el := &c.elements[idx]
		switch dir {
		case AlignLeft:
			el.X = box.X
		case AlignCenter:
			el.X = centerX - el.Width/2
		case AlignRight:
			el.X = box.X + box.Width - el.Width
		case AlignTop:
			el.Y = box.Y
		case AlignMiddle:
			el.Y = centerY - el.Height/2
		case AlignBottom:
			el.Y = box.Y + box.Height - el.Height
		default:
			return
		}
	}

	c.commit()
	c.notify()
}

// DistributeElements repositions the interior selected elements so that
// the visual gaps between adjacent bounding boxes are equal. The extreme
// elements keep their positions. Requires at least three selected live
// elements; otherwise a no-op with no history entry. A negative gap
// (elements overflow their span) simply produces overlap. One commit.
func (c *Canvas) DistributeElements(axis DistributeAxis) {
	idxs := c.selectedIndices()
	if len(idxs) < 3 {
		return
	}
	if axis != DistributeHorizontal && axis != DistributeVertical {
		return
	}

	pos := func(el *element.Element) float64 {
		if axis == DistributeHorizontal {
			return el.X
		}
		return el.Y
	}
	size := func(el *element.Element) float64 {
		if axis == DistributeHorizontal {
			return el.Width
		}
		return el.Height
	}

	sort.Slice(idxs, func(a, b int) bool {
		return pos(&c.elements[idxs[a]]) < pos(&c.elements[idxs[b]])
	})

	first := &c.elements[idxs[0]]
	last := &c.elements[idxs[len(idxs)-1]]

	totalSpan := pos(last) + size(last) - pos(first)
	totalElementSize := 0.0
	for _, idx := range idxs {
		totalElementSize += size(&c.elements[idx])
	}
	gap := (totalSpan - totalElementSize) / float64(len(idxs)-1)

	cursor := pos(first)
	for _, idx := range idxs {
		el := &c.elements[idx]
		if axis == DistributeHorizontal {
			el.X = cursor
		} else {
			el.Y = cursor
		}
		cursor += size(el) + gap
	}

	c.commit()
	c.notify()
}
